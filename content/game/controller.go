package game

import (
	"snake/content/config"
	"snake/content/log"
	"snake/content/menu"
	"snake/content/snake"

	"github.com/google/uuid"
)

const (
	LabelPlay  = "Play"
	LabelQuit  = "Quit"
	LabelRetry = "Retry"
)

// 菜单下标对应的动作
const (
	mainPlay  = 0
	mainQuit  = 1
	overRetry = 0
	overQuit  = 1
)

var directionKeys = map[Key]snake.Direction{
	KeyUp:    snake.Up,
	KeyDown:  snake.Down,
	KeyLeft:  snake.Left,
	KeyRight: snake.Right,
}

// Controller 持有一局游戏的全部状态，只能在一个 goroutine 中使用
type Controller struct {
	cfg *config.Config
	rng snake.Rand
	lgr *log.Logger

	mode      Mode
	snake     *snake.Snake
	food      *snake.Food
	score     int
	session   uuid.UUID
	restarted bool // 本次 Tick 中重新开局，不再移动

	mainMenu *menu.Menu
	overMenu *menu.Menu
}

func NewController(cfg *config.Config, rng snake.Rand, lgr *log.Logger) *Controller {
	c := &Controller{
		cfg:      cfg,
		rng:      rng,
		lgr:      lgr,
		mode:     ModeMenu,
		mainMenu: menu.New(LabelPlay, LabelQuit),
		overMenu: menu.New(LabelRetry, LabelQuit),
	}
	c.snake = snake.New(cfg)
	c.food = snake.NewFood(cfg, rng)
	c.lgr.Infof("grid %dx%d, cell %dpx, %d tps", cfg.GridWidth, cfg.GridHeight, cfg.CellSize, cfg.TPS)
	return c
}

// Tick 按到达顺序处理本帧的全部输入，然后推进一步。返回 true 表示退出
func (c *Controller) Tick(events []Event) bool {
	c.restarted = false
	for _, ev := range events {
		switch ev := ev.(type) {
		case QuitEvent:
			c.lgr.Infof("quit in %v mode", c.mode)
			return true
		case KeyEvent:
			if c.handleKey(ev.Key) {
				return true
			}
		}
	}

	if c.mode == ModePlay && !c.restarted {
		c.update()
	}
	return false
}

func (c *Controller) handleKey(k Key) bool {
	switch c.mode {
	case ModeMenu:
		switch k {
		case KeyUp:
			c.mainMenu.Navigate(-1)
		case KeyDown:
			c.mainMenu.Navigate(1)
		case KeyConfirm:
			switch i, _ := c.mainMenu.Activate(); i {
			case mainPlay:
				c.restart()
			case mainQuit:
				c.lgr.Infof("quit from menu")
				return true
			}
		}
	case ModePlay:
		if d, ok := directionKeys[k]; ok {
			c.snake.ChangeDirection(d)
			return false
		}
		if k == KeyBack {
			c.setMode(ModeMenu)
			c.mainMenu.Reset()
		}
	case ModeGameOver:
		switch k {
		case KeyUp:
			c.overMenu.Navigate(-1)
		case KeyDown:
			c.overMenu.Navigate(1)
		case KeyConfirm:
			switch i, _ := c.overMenu.Activate(); i {
			case overRetry:
				c.restart()
			case overQuit:
				c.lgr.Infof("quit after game over, score %d", c.score)
				return true
			}
		case KeyRestart:
			c.restart()
		case KeyBack:
			c.setMode(ModeMenu)
			c.mainMenu.Reset()
		}
	}
	return false
}

// update 移动、吃食物、检查碰撞，顺序不能变
func (c *Controller) update() {
	c.snake.Move()

	if c.snake.HeadPosition() == c.food.Position() {
		c.snake.Grow()
		c.food.RandomizePosition()
		c.score++
		c.lgr.Debugf("session %s: ate food, score %d, next food at %v", c.session, c.score, c.food.Position())
	}

	var cause string
	switch {
	case c.snake.CollidesWithWall():
		cause = "wall"
	case c.snake.CollidesWithSelf():
		cause = "self"
	default:
		return
	}
	c.lgr.Infof("session %s: hit %s at %v, score %d, length %d", c.session, cause, c.snake.HeadPosition(), c.score, c.snake.Len())
	c.overMenu.Reset()
	c.setMode(ModeGameOver)
}

// restart 丢弃上一局的蛇和食物，重新开始
func (c *Controller) restart() {
	c.snake = snake.New(c.cfg)
	c.food = snake.NewFood(c.cfg, c.rng)
	c.score = 0
	c.session = uuid.New()
	c.restarted = true
	c.lgr.Infof("session %s started", c.session)
	c.setMode(ModePlay)
}

func (c *Controller) setMode(m Mode) {
	if c.mode != m {
		c.lgr.Debugf("mode %v -> %v", c.mode, m)
	}
	c.mode = m
}

func (c *Controller) Mode() Mode {
	return c.mode
}

func (c *Controller) Score() int {
	return c.score
}

func (c *Controller) Snake() *snake.Snake {
	return c.snake
}

func (c *Controller) Food() *snake.Food {
	return c.food
}
