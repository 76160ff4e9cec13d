package game

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"snake/content/config"
	game_log "snake/content/log"
	"snake/content/snake"
)

var testLogger = game_log.Discard()

// zeroRand 食物总是出现在 (0,0)，远离蛇的行进路线
type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

func newTestController(w, h int) *Controller {
	cfg := &config.Config{GridWidth: w, GridHeight: h, CellSize: 1, TPS: config.DefaultTPS}
	return NewController(cfg, zeroRand{}, testLogger)
}

func startPlay(t *testing.T, c *Controller) {
	t.Helper()
	if quit := c.Tick([]Event{Press(KeyConfirm)}); quit {
		t.Fatalf("confirm on Play quit the game")
	}
	if c.Mode() != ModePlay {
		t.Fatalf("mode = %v, want play", c.Mode())
	}
}

func TestStartsInMenu(t *testing.T) {
	c := newTestController(20, 20)
	if c.Mode() != ModeMenu {
		t.Fatalf("mode = %v, want menu", c.Mode())
	}
	snap := c.Snapshot()
	if !reflect.DeepEqual(snap.MenuLabels, []string{LabelPlay, LabelQuit}) || snap.MenuSelected != 0 {
		t.Fatalf("menu = %v selected %d", snap.MenuLabels, snap.MenuSelected)
	}
	if snap.Session != "" {
		t.Fatalf("session before first game = %q", snap.Session)
	}
}

func TestMenuDoesNotAdvanceSnake(t *testing.T) {
	c := newTestController(20, 20)
	before := c.Snake().Body()
	for i := 0; i < 5; i++ {
		c.Tick(nil)
	}
	c.Tick([]Event{Press(KeyLeft), Press(KeyRight)})
	if !reflect.DeepEqual(c.Snake().Body(), before) || c.Score() != 0 {
		t.Fatalf("snake moved in menu: %v", c.Snake().Body())
	}
}

func TestMenuNavigationWraps(t *testing.T) {
	c := newTestController(20, 20)
	c.Tick([]Event{Press(KeyUp)})
	if got := c.Snapshot().MenuSelected; got != 1 {
		t.Fatalf("up from 0 = %d, want 1", got)
	}
	c.Tick([]Event{Press(KeyDown)})
	if got := c.Snapshot().MenuSelected; got != 0 {
		t.Fatalf("down from last = %d, want 0", got)
	}
}

func TestMenuQuit(t *testing.T) {
	c := newTestController(20, 20)
	if !c.Tick([]Event{Press(KeyDown), Press(KeyConfirm)}) {
		t.Fatalf("selecting Quit should end the session")
	}
}

func TestQuitEventStopsProcessing(t *testing.T) {
	c := newTestController(20, 20)
	if !c.Tick([]Event{Quit(), Press(KeyConfirm)}) {
		t.Fatalf("quit event ignored")
	}
	if c.Mode() != ModeMenu {
		t.Fatalf("events after quit were processed: mode %v", c.Mode())
	}

	c = newTestController(20, 20)
	startPlay(t, c)
	head := c.Snake().HeadPosition()
	if !c.Tick([]Event{Quit()}) {
		t.Fatalf("quit event ignored in play")
	}
	if c.Snake().HeadPosition() != head {
		t.Fatalf("snake moved on the quitting tick")
	}
}

func TestPlayStartsFreshAndMovesNextTick(t *testing.T) {
	c := newTestController(20, 20)
	startPlay(t, c)
	want := []snake.Cell{{X: 5, Y: 10}, {X: 4, Y: 10}, {X: 3, Y: 10}}
	if !reflect.DeepEqual(c.Snake().Body(), want) {
		t.Fatalf("body on start tick = %v", c.Snake().Body())
	}
	if c.Score() != 0 || c.Snapshot().Session == "" {
		t.Fatalf("score %d session %q", c.Score(), c.Snapshot().Session)
	}
	c.Tick(nil)
	if c.Snake().HeadPosition() != (snake.Cell{X: 6, Y: 10}) {
		t.Fatalf("head = %v, want (6,10)", c.Snake().HeadPosition())
	}
}

func TestEatingGrowsOnNextMove(t *testing.T) {
	c := newTestController(40, 30)
	startPlay(t, c)
	c.Food().PlaceAt(snake.Cell{X: 6, Y: 10})

	c.Tick(nil)
	if c.Score() != 1 {
		t.Fatalf("score = %d, want 1", c.Score())
	}
	if !c.Snake().Growing() {
		t.Fatalf("pending growth not set")
	}
	if c.Food().Position() == (snake.Cell{X: 6, Y: 10}) {
		t.Fatalf("food not relocated")
	}
	if c.Snake().Len() != 3 {
		t.Fatalf("length on eating tick = %d, want 3", c.Snake().Len())
	}

	c.Tick(nil)
	if c.Snake().Len() != 4 || c.Snake().HeadPosition() != (snake.Cell{X: 7, Y: 10}) {
		t.Fatalf("after growth: len %d head %v", c.Snake().Len(), c.Snake().HeadPosition())
	}
}

func TestWallCollisionEndsGame(t *testing.T) {
	c := newTestController(8, 12)
	startPlay(t, c)
	c.Tick(nil) // (6,10)
	c.Tick(nil) // (7,10)
	if c.Mode() != ModePlay {
		t.Fatalf("mode = %v before reaching the wall", c.Mode())
	}
	c.Tick(nil) // (8,10)
	if c.Mode() != ModeGameOver {
		t.Fatalf("mode = %v, want game over", c.Mode())
	}

	snap := c.Snapshot()
	if !reflect.DeepEqual(snap.MenuLabels, []string{LabelRetry, LabelQuit}) || snap.MenuSelected != 0 {
		t.Fatalf("game over menu = %v selected %d", snap.MenuLabels, snap.MenuSelected)
	}

	head := c.Snake().HeadPosition()
	c.Tick([]Event{Press(KeyLeft)})
	c.Tick(nil)
	if c.Snake().HeadPosition() != head || c.Snake().Direction() != snake.Right {
		t.Fatalf("snake changed after game over: head %v dir %v", c.Snake().HeadPosition(), c.Snake().Direction())
	}
}

func TestLeftWallScenario(t *testing.T) {
	c := newTestController(40, 30)
	startPlay(t, c)
	c.snake = snake.NewWithBody(c.cfg, []snake.Cell{{X: 0, Y: 10}, {X: 1, Y: 10}, {X: 2, Y: 10}}, snake.Left)
	c.Tick(nil)
	if c.Snake().HeadPosition() != (snake.Cell{X: -1, Y: 10}) || c.Mode() != ModeGameOver {
		t.Fatalf("head %v mode %v", c.Snake().HeadPosition(), c.Mode())
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	c := newTestController(40, 30)
	startPlay(t, c)
	c.snake = snake.NewWithBody(c.cfg, []snake.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}, {X: 2, Y: 5}, {X: 1, Y: 5}}, snake.Right)
	c.Tick([]Event{Press(KeyDown)})
	c.Tick([]Event{Press(KeyLeft)})
	if c.Mode() != ModePlay {
		t.Fatalf("mode = %v too early", c.Mode())
	}
	c.Tick([]Event{Press(KeyUp)})
	if c.Mode() != ModeGameOver {
		t.Fatalf("mode = %v, want game over", c.Mode())
	}
}

func TestEatThenCollideStillEats(t *testing.T) {
	c := newTestController(40, 30)
	startPlay(t, c)
	c.snake = snake.NewWithBody(c.cfg, []snake.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}, {X: 2, Y: 5}, {X: 1, Y: 5}}, snake.Right)
	c.Tick([]Event{Press(KeyDown)})
	c.Tick([]Event{Press(KeyLeft)})
	c.Food().PlaceAt(snake.Cell{X: 4, Y: 5})
	c.Tick([]Event{Press(KeyUp)})
	if c.Score() != 1 {
		t.Fatalf("score = %d, want 1", c.Score())
	}
	if c.Mode() != ModeGameOver {
		t.Fatalf("mode = %v, want game over", c.Mode())
	}
}

func TestReverseDirectionIgnored(t *testing.T) {
	c := newTestController(40, 30)
	startPlay(t, c)
	c.Tick([]Event{Press(KeyLeft)})
	if c.Snake().Direction() != snake.Right || c.Mode() != ModePlay {
		t.Fatalf("reversal accepted: dir %v mode %v", c.Snake().Direction(), c.Mode())
	}
	c.Tick([]Event{Press(KeyUp)})
	if c.Snake().Direction() != snake.Up {
		t.Fatalf("dir = %v, want up", c.Snake().Direction())
	}
}

func TestBackReturnsToMenu(t *testing.T) {
	c := newTestController(40, 30)
	startPlay(t, c)
	c.mainMenu.Navigate(1)
	c.Tick([]Event{Press(KeyBack)})
	if c.Mode() != ModeMenu {
		t.Fatalf("mode = %v, want menu", c.Mode())
	}
	if c.Snapshot().MenuSelected != 0 {
		t.Fatalf("menu selection = %d, want 0", c.Snapshot().MenuSelected)
	}
	head := c.Snake().HeadPosition()
	c.Tick(nil)
	if c.Snake().HeadPosition() != head {
		t.Fatalf("snake moved after returning to menu")
	}
}

func TestPlayIgnoresMenuKeys(t *testing.T) {
	c := newTestController(40, 30)
	startPlay(t, c)
	c.Tick([]Event{Press(KeyConfirm), Press(KeyRestart)})
	if c.Mode() != ModePlay || c.mainMenu.Selected() != 0 || c.overMenu.Selected() != 0 {
		t.Fatalf("menu input consumed during play")
	}
	if c.Snake().HeadPosition() != (snake.Cell{X: 6, Y: 10}) {
		t.Fatalf("restart key restarted a running game: head %v", c.Snake().HeadPosition())
	}
}

func crash(t *testing.T, c *Controller) {
	t.Helper()
	for i := 0; i < 100 && c.Mode() == ModePlay; i++ {
		c.Tick(nil)
	}
	if c.Mode() != ModeGameOver {
		t.Fatalf("never crashed")
	}
}

func TestGameOverQuit(t *testing.T) {
	c := newTestController(10, 12)
	startPlay(t, c)
	crash(t, c)
	c.Tick([]Event{Press(KeyDown)})
	if c.Snapshot().MenuSelected != 1 {
		t.Fatalf("selection = %d, want 1", c.Snapshot().MenuSelected)
	}
	if !c.Tick([]Event{Press(KeyConfirm)}) {
		t.Fatalf("Quit in game over menu did not end the session")
	}
}

func TestGameOverRestartKeyAndBack(t *testing.T) {
	c := newTestController(10, 12)
	startPlay(t, c)
	crash(t, c)
	c.Tick([]Event{Press(KeyRestart)})
	if c.Mode() != ModePlay || c.Score() != 0 || c.Snake().Len() != 3 {
		t.Fatalf("restart key: mode %v score %d len %d", c.Mode(), c.Score(), c.Snake().Len())
	}

	crash(t, c)
	c.Tick([]Event{Press(KeyBack)})
	if c.Mode() != ModeMenu {
		t.Fatalf("back from game over: mode %v", c.Mode())
	}
}

func TestFullSession(t *testing.T) {
	c := newTestController(20, 20)
	startPlay(t, c)
	first := c.Snapshot().Session
	oldSnake, oldFood := c.Snake(), c.Food()

	c.Food().PlaceAt(snake.Cell{X: 6, Y: 10})
	c.Tick(nil)
	c.Food().PlaceAt(snake.Cell{X: 8, Y: 10})
	c.Tick(nil)
	c.Tick(nil)
	c.Food().PlaceAt(snake.Cell{X: 10, Y: 10})
	c.Tick(nil)
	c.Tick(nil)
	if c.Score() != 3 {
		t.Fatalf("score = %d, want 3", c.Score())
	}

	last := c.Score()
	for c.Mode() == ModePlay {
		c.Tick(nil)
		if c.Score() < last {
			t.Fatalf("score went down: %d -> %d", last, c.Score())
		}
		last = c.Score()
	}
	if c.Mode() != ModeGameOver || !c.Snake().CollidesWithWall() {
		t.Fatalf("expected wall game over, mode %v head %v", c.Mode(), c.Snake().HeadPosition())
	}
	if got := c.Snapshot().Score; got != 3 {
		t.Fatalf("final score = %d", got)
	}

	c.Tick([]Event{Press(KeyConfirm)})
	if c.Mode() != ModePlay || c.Score() != 0 {
		t.Fatalf("retry: mode %v score %d", c.Mode(), c.Score())
	}
	if c.Snake() == oldSnake || c.Food() == oldFood {
		t.Fatalf("retry reused the previous snake or food")
	}
	if c.Snapshot().Session == first {
		t.Fatalf("retry kept session %s", first)
	}
	if !reflect.DeepEqual(c.Snake().Body(), []snake.Cell{{X: 5, Y: 10}, {X: 4, Y: 10}, {X: 3, Y: 10}}) || c.Snake().Growing() {
		t.Fatalf("residual snake state: %v growing=%v", c.Snake().Body(), c.Snake().Growing())
	}
}

func TestControllerLogs(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{GridWidth: 8, GridHeight: 12, CellSize: 1, TPS: config.DefaultTPS}
	c := NewController(cfg, zeroRand{}, game_log.New(&buf, game_log.LevelInfo))
	startPlay(t, c)
	crash(t, c)
	out := buf.String()
	for _, want := range []string{"started", "hit wall", "length 3"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log missing %q:\n%s", want, out)
		}
	}
}

func TestSnapshotSessionAndDirection(t *testing.T) {
	c := newTestController(20, 20)
	startPlay(t, c)
	snap := c.Snapshot()
	if snap.Session == "" || snap.Direction != snake.Right {
		t.Fatalf("session %q dir %v", snap.Session, snap.Direction)
	}
	if snap.MenuLabels != nil {
		t.Fatalf("menu in play: %v", snap.MenuLabels)
	}

	c.Tick([]Event{Press(KeyUp)})
	if got := c.Snapshot().Direction; got != snake.Up {
		t.Fatalf("dir = %v, want up", got)
	}

	crash(t, c)
	c.Tick([]Event{Press(KeyRestart)})
	if again := c.Snapshot().Session; again == "" || again == snap.Session {
		t.Fatalf("restart kept session %q", again)
	}
}
