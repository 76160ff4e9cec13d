// Copyright 2018 The Ebiten Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"snake/content/config"
	"snake/content/game"
	game_log "snake/content/log"
	"snake/content/snake"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/exp/rand"
)

var (
	useTerminal = flag.Bool("term", false, "run in the terminal instead of a window")
	logLevel    = flag.String("log-level", "error", "log level: debug, info, warn, error or none")
	logFile     = flag.String("log-file", "", "append logs to this file instead of stderr")
	seed        = flag.Uint64("seed", 0, "seed for food placement, 0 uses the current time")
	debug       = flag.Bool("debug", false, "show TPS and FPS in the window")
)

func Init(cellSize int) error {
	InitImage(cellSize)
	return InitFont()
}

// newRand 固定种子时食物位置可复现
func newRand(seed uint64) snake.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// newLogger 终端模式下不写 stderr，以免弄乱画面
func newLogger(level game_log.Level, path string, terminal bool) (*game_log.Logger, io.Closer, error) {
	if path == "" {
		if terminal {
			return game_log.Discard(), nil, nil
		}
		return game_log.New(os.Stderr, level), nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return game_log.New(f, level), f, nil
}

// displaySize 部分平台在窗口创建前取不到显示器尺寸
func displaySize(lgr *game_log.Logger) (int, int) {
	w, h := screenSize()
	if w <= 0 || h <= 0 {
		lgr.Warnf("display size %dx%d unknown, using %dx%d", w, h, fallbackWidth, fallbackHeight)
		return fallbackWidth, fallbackHeight
	}
	return w, h
}

func runWindow(rng snake.Rand, lgr *game_log.Logger) error {
	w, h := displaySize(lgr)
	cfg := config.New(w, h, config.CellSize)
	if err := Init(cfg.CellSize); err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.ScreenWidth(), cfg.ScreenHeight())
	ebiten.SetWindowTitle("Snake Game")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(ebiten.DefaultTPS)

	g := NewGame(cfg, game.NewController(cfg, rng, lgr), lgr, *debug)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func main() {
	flag.Parse()

	lgr, closer, err := newLogger(game_log.LevelFromString(*logLevel), *logFile, *useTerminal)
	if err != nil {
		log.Fatal(err)
	}
	if closer != nil {
		defer closer.Close()
	}

	rng := newRand(*seed)
	if *useTerminal {
		err = runTerminal(rng, lgr)
	} else {
		err = runWindow(rng, lgr)
	}
	if err != nil {
		lgr.Errorf("%v", err)
		log.Fatal(err)
	}
}
