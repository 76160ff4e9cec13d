package utils

import (
	"snake/content/config"

	"golang.org/x/image/math/f64"
)

// ReNormalize 格子坐标转换为格子左上角的像素坐标
func ReNormalize(cfg *config.Config, col, row int) f64.Vec2 {
	return f64.Vec2{float64(col * cfg.CellSize), float64(row * cfg.CellSize)}
}

// Anchor 以屏幕中心为基准的偏移位置，用于居中绘制文字
func Anchor(cfg *config.Config, fx, dy float64) f64.Vec2 {
	return f64.Vec2{float64(cfg.ScreenWidth()) * fx, float64(cfg.ScreenHeight())/2 + dy}
}
