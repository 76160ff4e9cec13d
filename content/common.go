package main

import (
	"image/color"

	"snake/content/config"
	"snake/content/snake"
	"snake/content/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/math/f64"
)

// drawCentered 以 pos 为中心绘制一行文字
func drawCentered(screen *ebiten.Image, s string, face text.Face, pos f64.Vec2, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos[0], pos[1])
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}

// drawTopLeft 以 pos 为左上角绘制一行文字
func drawTopLeft(screen *ebiten.Image, s string, face text.Face, pos f64.Vec2, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos[0], pos[1])
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

func drawCell(screen *ebiten.Image, cfg *config.Config, img *ebiten.Image, c snake.Cell) {
	pos := utils.ReNormalize(cfg, c.X, c.Y)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos[0], pos[1])
	screen.DrawImage(img, op)
}

// drawMenu 选项从 top 开始每隔 spacing 向下排列，选中项高亮
func drawMenu(screen *ebiten.Image, cfg *config.Config, labels []string, selected int, top, spacing float64) {
	for i, label := range labels {
		clr := color.Color(textColor)
		if i == selected {
			clr = selectedColor
		}
		drawCentered(screen, label, textFace, utils.Anchor(cfg, 0.5, top+float64(i)*spacing), clr)
	}
}
