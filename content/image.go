package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	snakeImage *ebiten.Image
	foodImage  *ebiten.Image
)

// InitImage 生成一个格子大小的纯色贴图
func InitImage(cellSize int) {
	snakeImage = ebiten.NewImage(cellSize, cellSize)
	snakeImage.Fill(snakeColor)

	foodImage = ebiten.NewImage(cellSize, cellSize)
	foodImage.Fill(foodColor)
}
