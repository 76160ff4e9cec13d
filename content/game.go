package main

import (
	"fmt"
	"strconv"
	"strings"

	"snake/content/config"
	"snake/content/game"
	game_log "snake/content/log"
	"snake/content/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/math/f64"
)

// Game 把控制器接到 ebiten 上。ebiten 以 DefaultTPS 轮询输入，
// 每 stepEvery 帧把攒下的事件交给控制器推进一步
type Game struct {
	cfg  *config.Config
	ctrl *game.Controller
	lgr  *game_log.Logger

	pending   []game.Event
	frame     int
	stepEvery int
	snap      game.Snapshot
	debug     bool
}

func NewGame(cfg *config.Config, ctrl *game.Controller, lgr *game_log.Logger, debug bool) *Game {
	return &Game{
		cfg:       cfg,
		ctrl:      ctrl,
		lgr:       lgr,
		stepEvery: max(1, ebiten.DefaultTPS/cfg.TPS),
		snap:      ctrl.Snapshot(),
		debug:     debug,
	}
}

func (g *Game) Update() error {
	g.pending = append(g.pending, pollEvents()...)
	g.frame++
	// 退出不等下一步
	if g.frame%g.stepEvery != 0 && !hasQuit(g.pending) {
		return nil
	}

	events := g.pending
	g.pending = nil
	if g.ctrl.Tick(events) {
		return ebiten.Termination
	}
	g.snap = g.ctrl.Snapshot()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	switch g.snap.Mode {
	case game.ModeMenu:
		g.drawMenu(screen)
	case game.ModePlay:
		g.drawPlay(screen)
	case game.ModeGameOver:
		g.drawPlay(screen)
		g.drawGameOver(screen)
	}

	if g.debug {
		s := debugText(g.snap, ebiten.ActualTPS(), ebiten.ActualFPS())
		lines := strings.Count(s, "\n") + 1
		ebitenutil.DebugPrintAt(screen, s, 0, g.cfg.ScreenHeight()-lines*debugLineHeight)
	}
}

// debugText 左下角的调试信息，游戏中附带会话和方向
func debugText(snap game.Snapshot, tps, fps float64) string {
	s := fmt.Sprintf("TPS: %0.2f FPS: %0.2f", tps, fps)
	if snap.Session != "" {
		s += "\nsession: " + snap.Session
	}
	if snap.Mode == game.ModePlay {
		s += "\ndir: " + snap.Direction.String()
	}
	return s
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	h := float64(g.cfg.ScreenHeight())
	drawCentered(screen, "Snake Game", textFace, utils.Anchor(g.cfg, 0.5, -h/4), textColor)
	drawMenu(screen, g.cfg, g.snap.MenuLabels, g.snap.MenuSelected, 0, menuSpacing)
}

func (g *Game) drawPlay(screen *ebiten.Image) {
	for _, c := range g.snap.Body {
		drawCell(screen, g.cfg, snakeImage, c)
	}
	drawCell(screen, g.cfg, foodImage, g.snap.Food)
	drawTopLeft(screen, "Score: "+strconv.Itoa(g.snap.Score), textFace, f64.Vec2{10, 10}, textColor)
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	drawCentered(screen, "Game Over", titleFace, utils.Anchor(g.cfg, 0.5, -90), gameOverColor)
	drawCentered(screen, "Score : "+strconv.Itoa(g.snap.Score), textFace, utils.Anchor(g.cfg, 0.5, -5), textColor)
	drawMenu(screen, g.cfg, g.snap.MenuLabels, g.snap.MenuSelected, 80, overSpacing)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth(), g.cfg.ScreenHeight()
}
