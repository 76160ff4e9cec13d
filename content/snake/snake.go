package snake

import (
	"snake/content/config"

	"github.com/gammazero/deque"
)

// 初始身体，头在前
var startBody = []Cell{{5, 10}, {4, 10}, {3, 10}}

type Snake struct {
	cfg       *config.Config
	body      *deque.Deque[Cell] // 头部在 Front
	direction Direction
	grow      bool // 下一次移动是否变长，只生效一次
}

// New 默认的蛇：长度 3，向右移动
func New(cfg *config.Config) *Snake {
	return NewWithBody(cfg, startBody, Right)
}

// NewWithBody 用指定的身体和方向创建蛇，body 不能为空
func NewWithBody(cfg *config.Config, body []Cell, dir Direction) *Snake {
	if len(body) == 0 {
		panic("snake: empty body")
	}
	d := deque.New[Cell](len(body) + 1)
	for _, c := range body {
		d.PushBack(c)
	}
	return &Snake{cfg: cfg, body: d, direction: dir}
}

// Move 头部沿当前方向前进一格，不做边界检查
func (s *Snake) Move() {
	s.body.PushFront(s.body.Front().Add(s.direction))
	if s.grow {
		s.grow = false
		return
	}
	s.body.PopBack()
}

// ChangeDirection 反方向的请求会被忽略
func (s *Snake) ChangeDirection(d Direction) {
	if d == s.direction.Opposite() {
		return
	}
	s.direction = d
}

func (s *Snake) CollidesWithWall() bool {
	head := s.body.Front()
	return !s.cfg.Contains(head.X, head.Y)
}

func (s *Snake) CollidesWithSelf() bool {
	head := s.body.Front()
	for i := 1; i < s.body.Len(); i++ {
		if s.body.At(i) == head {
			return true
		}
	}
	return false
}

func (s *Snake) HeadPosition() Cell {
	return s.body.Front()
}

// Grow 标记下一次移动时变长
func (s *Snake) Grow() {
	s.grow = true
}

func (s *Snake) Growing() bool {
	return s.grow
}

func (s *Snake) Direction() Direction {
	return s.direction
}

func (s *Snake) Len() int {
	return s.body.Len()
}

// Body 返回身体的拷贝，头在前
func (s *Snake) Body() []Cell {
	out := make([]Cell, s.body.Len())
	for i := range out {
		out[i] = s.body.At(i)
	}
	return out
}
