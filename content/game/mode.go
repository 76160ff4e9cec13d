package game

type Mode int

const (
	ModeMenu Mode = iota
	ModePlay
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlay:
		return "play"
	case ModeGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}
