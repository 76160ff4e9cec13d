package main

import "image/color"

const (
	fallbackWidth  = 800 // 取不到显示器尺寸时使用
	fallbackHeight = 600
	titleFontSize  = fontSize * 2
	fontSize       = 18
	menuSpacing    = 50 // 主菜单选项的行距
	overSpacing    = 40

	debugLineHeight = 16 // ebitenutil 调试字体的行高
)

var (
	backgroundColor = color.White
	textColor       = color.Black
	selectedColor   = color.RGBA{0x00, 0xFF, 0x00, 0xFF}
	snakeColor      = color.RGBA{0x00, 0xFF, 0x00, 0xFF}
	foodColor       = color.RGBA{0xFF, 0x00, 0x00, 0xFF}
	gameOverColor   = color.RGBA{0xFF, 0x00, 0x00, 0xFF}
)
