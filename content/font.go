package main

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	textFace  *text.GoTextFace
	titleFace *text.GoTextFace
)

func InitFont() error {
	// 加载字体
	s, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	textFace = &text.GoTextFace{Source: s, Size: fontSize}
	titleFace = &text.GoTextFace{Source: s, Size: titleFontSize}
	return nil
}
