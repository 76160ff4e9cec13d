package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"snake/content/config"
	"snake/content/game"
	game_log "snake/content/log"
	"snake/content/snake"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// 测试中替换
var isTerminal = term.IsTerminal

var (
	termSnakeStyle    = tcell.StyleDefault.Background(tcell.ColorGreen)
	termFoodStyle     = tcell.StyleDefault.Background(tcell.ColorRed)
	termTextStyle     = tcell.StyleDefault
	termSelectedStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	termGameOverStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// terminal 终端前端，每个格子占两列，最后一行显示分数
type terminal struct {
	screen tcell.Screen
	cfg    *config.Config
	ctrl   *game.Controller
	lgr    *game_log.Logger
}

func runTerminal(rng snake.Rand, lgr *game_log.Logger) error {
	if !isTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal")
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer s.Fini()

	return newTerminal(s, rng, lgr).run()
}

func newTerminal(s tcell.Screen, rng snake.Rand, lgr *game_log.Logger) *terminal {
	cols, rows := s.Size()
	cfg := config.New(cols/2, rows-1, 1)
	return &terminal{
		screen: s,
		cfg:    cfg,
		ctrl:   game.NewController(cfg, rng, lgr),
		lgr:    lgr,
	}
}

func (t *terminal) run() error {
	ticker := time.NewTicker(time.Second / time.Duration(t.cfg.TPS))
	defer ticker.Stop()
	return t.loop(ticker.C)
}

// loop 按到达顺序缓存输入，每收到一次 tick 推进一步并重绘，退出事件立即处理
func (t *terminal) loop(tick <-chan time.Time) error {
	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	var pending []game.Event
	t.render(t.ctrl.Snapshot())
	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				cols, rows := t.screen.Size()
				t.lgr.Debugf("terminal resized to %dx%d, grid stays %dx%d", cols, rows, t.cfg.GridWidth, t.cfg.GridHeight)
				t.screen.Sync()
				continue
			}
			e, ok := translateEvent(ev)
			if !ok {
				continue
			}
			pending = append(pending, e)
			if _, quit := e.(game.QuitEvent); quit {
				t.ctrl.Tick(pending)
				return nil
			}
		case <-tick:
			quit := t.ctrl.Tick(pending)
			pending = pending[:0]
			if quit {
				return nil
			}
			t.render(t.ctrl.Snapshot())
		}
	}
}

// translateEvent 把终端按键转换为控制器事件
func translateEvent(ev tcell.Event) (game.Event, bool) {
	k, ok := ev.(*tcell.EventKey)
	if !ok {
		return nil, false
	}
	switch k.Key() {
	case tcell.KeyUp:
		return game.Press(game.KeyUp), true
	case tcell.KeyDown:
		return game.Press(game.KeyDown), true
	case tcell.KeyLeft:
		return game.Press(game.KeyLeft), true
	case tcell.KeyRight:
		return game.Press(game.KeyRight), true
	case tcell.KeyEnter:
		return game.Press(game.KeyConfirm), true
	case tcell.KeyEscape:
		return game.Press(game.KeyBack), true
	case tcell.KeyCtrlC:
		return game.Quit(), true
	case tcell.KeyRune:
		switch k.Rune() {
		case 'w', 'W':
			return game.Press(game.KeyUp), true
		case 's', 'S':
			return game.Press(game.KeyDown), true
		case 'a', 'A':
			return game.Press(game.KeyLeft), true
		case 'd', 'D':
			return game.Press(game.KeyRight), true
		case ' ':
			return game.Press(game.KeyRestart), true
		case 'q', 'Q':
			return game.Quit(), true
		}
	}
	return nil, false
}

func (t *terminal) render(snap game.Snapshot) {
	t.screen.Clear()
	h := t.cfg.GridHeight

	switch snap.Mode {
	case game.ModeMenu:
		t.drawCentered(h/4, "Snake Game", termTextStyle)
		t.drawMenu(snap, h/2, 2)
	case game.ModePlay:
		t.drawBoard(snap)
	case game.ModeGameOver:
		t.drawBoard(snap)
		t.drawCentered(h/2-4, "Game Over", termGameOverStyle)
		t.drawCentered(h/2-2, "Score : "+strconv.Itoa(snap.Score), termTextStyle)
		t.drawMenu(snap, h/2+1, 1)
	}
	t.screen.Show()
}

func (t *terminal) drawBoard(snap game.Snapshot) {
	for _, c := range snap.Body {
		t.drawCell(c, termSnakeStyle)
	}
	t.drawCell(snap.Food, termFoodStyle)
	t.drawText(0, t.cfg.GridHeight, "Score: "+strconv.Itoa(snap.Score), termTextStyle)
}

func (t *terminal) drawMenu(snap game.Snapshot, top, spacing int) {
	for i, label := range snap.MenuLabels {
		st := termTextStyle
		if i == snap.MenuSelected {
			label = "> " + label + " <"
			st = termSelectedStyle
		}
		t.drawCentered(top+i*spacing, label, st)
	}
}

func (t *terminal) drawCell(c snake.Cell, st tcell.Style) {
	t.screen.SetContent(c.X*2, c.Y, ' ', nil, st)
	t.screen.SetContent(c.X*2+1, c.Y, ' ', nil, st)
}

func (t *terminal) drawText(x, y int, s string, st tcell.Style) {
	for i, ch := range []rune(s) {
		t.screen.SetContent(x+i, y, ch, nil, st)
	}
}

func (t *terminal) drawCentered(y int, s string, st tcell.Style) {
	x := t.cfg.GridWidth - len([]rune(s))/2
	t.drawText(max(0, x), y, s, st)
}
