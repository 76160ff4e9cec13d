package config

const (
	CellSize   = 20 // 窗口模式下每个格子的像素边长
	DefaultTPS = 10 // 每秒更新次数
)

// Config 描述一局游戏的网格尺寸和节奏，创建后不可修改
type Config struct {
	GridWidth  int
	GridHeight int
	CellSize   int
	TPS        int
}

// New 根据显示区域大小和格子边长推导网格尺寸
func New(displayWidth, displayHeight, cellSize int) *Config {
	if cellSize < 1 {
		cellSize = 1
	}
	return &Config{
		GridWidth:  max(1, displayWidth/cellSize),
		GridHeight: max(1, displayHeight/cellSize),
		CellSize:   cellSize,
		TPS:        DefaultTPS,
	}
}

// ScreenWidth 网格实际占用的像素宽度
func (c *Config) ScreenWidth() int {
	return c.GridWidth * c.CellSize
}

func (c *Config) ScreenHeight() int {
	return c.GridHeight * c.CellSize
}

// Contains 判断格子坐标是否在网格内
func (c *Config) Contains(x, y int) bool {
	return x >= 0 && x < c.GridWidth && y >= 0 && y < c.GridHeight
}
