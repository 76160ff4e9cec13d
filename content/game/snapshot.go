package game

import (
	"snake/content/snake"

	"github.com/google/uuid"
)

// Snapshot 渲染需要读取的全部状态，与控制器不共享内存
type Snapshot struct {
	Mode      Mode
	Session   string
	Body      []snake.Cell // 头在前
	Food      snake.Cell
	Score     int
	Direction snake.Direction

	// 当前生效的菜单：菜单模式下是主菜单，游戏结束时是重开菜单，游戏中为空
	MenuLabels   []string
	MenuSelected int
}

func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Mode:      c.Mode(),
		Body:      c.Snake().Body(),
		Food:      c.Food().Position(),
		Score:     c.Score(),
		Direction: c.Snake().Direction(),
	}
	if c.session != uuid.Nil {
		s.Session = c.session.String()
	}

	switch c.mode {
	case ModeMenu:
		s.MenuLabels = c.mainMenu.Labels()
		s.MenuSelected = c.mainMenu.Selected()
	case ModeGameOver:
		s.MenuLabels = c.overMenu.Labels()
		s.MenuSelected = c.overMenu.Selected()
	}
	return s
}
