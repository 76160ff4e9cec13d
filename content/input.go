package main

import (
	"snake/content/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 测试中替换
var (
	isKeyJustPressed    = inpututil.IsKeyJustPressed
	isWindowBeingClosed = ebiten.IsWindowBeingClosed
	screenSize          = ebiten.ScreenSizeInFullscreen
)

// 同一帧按下多个键时按表中顺序产生事件
var keyBindings = []struct {
	key    ebiten.Key
	action game.Key
}{
	{ebiten.KeyArrowUp, game.KeyUp},
	{ebiten.KeyW, game.KeyUp},
	{ebiten.KeyArrowDown, game.KeyDown},
	{ebiten.KeyS, game.KeyDown},
	{ebiten.KeyArrowLeft, game.KeyLeft},
	{ebiten.KeyA, game.KeyLeft},
	{ebiten.KeyArrowRight, game.KeyRight},
	{ebiten.KeyD, game.KeyRight},
	{ebiten.KeyEnter, game.KeyConfirm},
	{ebiten.KeyNumpadEnter, game.KeyConfirm},
	{ebiten.KeyEscape, game.KeyBack},
	{ebiten.KeySpace, game.KeyRestart},
}

// pollEvents 收集本帧新产生的输入事件，退出排在最后
func pollEvents() []game.Event {
	var events []game.Event
	for _, b := range keyBindings {
		if isKeyJustPressed(b.key) {
			events = append(events, game.Press(b.action))
		}
	}
	if isKeyJustPressed(ebiten.KeyQ) || isWindowBeingClosed() {
		events = append(events, game.Quit())
	}
	return events
}

func hasQuit(events []game.Event) bool {
	for _, ev := range events {
		if _, ok := ev.(game.QuitEvent); ok {
			return true
		}
	}
	return false
}
