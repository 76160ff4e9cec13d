package snake

import "snake/content/config"

// Rand 食物位置的随机数来源，*rand.Rand (golang.org/x/exp/rand) 满足该接口
type Rand interface {
	Intn(n int) int
}

type Food struct {
	cfg      *config.Config
	rng      Rand
	position Cell
}

// NewFood 创建时即随机放置
func NewFood(cfg *config.Config, rng Rand) *Food {
	f := &Food{cfg: cfg, rng: rng}
	f.RandomizePosition()
	return f
}

// RandomizePosition 在整个网格上均匀随机取一个格子，不排除蛇身所在的格子
func (f *Food) RandomizePosition() {
	f.position = Cell{
		X: f.rng.Intn(f.cfg.GridWidth),
		Y: f.rng.Intn(f.cfg.GridHeight),
	}
}

// PlaceAt 把食物固定在指定格子
func (f *Food) PlaceAt(c Cell) {
	f.position = c
}

func (f *Food) Position() Cell {
	return f.position
}
