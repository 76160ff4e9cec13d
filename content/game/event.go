package game

// Key 控制器能识别的按键
type Key int

const (
	KeyUp Key = iota + 1
	KeyDown
	KeyLeft
	KeyRight
	KeyConfirm
	KeyBack
	KeyRestart // 游戏结束时直接重开
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyConfirm:
		return "confirm"
	case KeyBack:
		return "back"
	case KeyRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event 输入事件，只有 QuitEvent 和 KeyEvent 两种
type Event interface {
	event()
}

type QuitEvent struct{}

type KeyEvent struct {
	Key Key
}

func (QuitEvent) event() {}
func (KeyEvent) event() {}

func Press(k Key) Event {
	return KeyEvent{Key: k}
}

func Quit() Event {
	return QuitEvent{}
}
