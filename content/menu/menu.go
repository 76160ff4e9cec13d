package menu

// Menu 一组选项和当前选中的下标，选项的含义由调用方决定
type Menu struct {
	labels   []string
	selected int
}

func New(labels ...string) *Menu {
	if len(labels) == 0 {
		panic("menu: no options")
	}
	return &Menu{labels: append([]string(nil), labels...)}
}

// Navigate 移动选中项，两端循环
func (m *Menu) Navigate(delta int) {
	n := len(m.labels)
	m.selected = ((m.selected+delta)%n + n) % n
}

// Activate 返回当前选中项
func (m *Menu) Activate() (int, string) {
	return m.selected, m.labels[m.selected]
}

func (m *Menu) Selected() int {
	return m.selected
}

func (m *Menu) Labels() []string {
	return append([]string(nil), m.labels...)
}

// Reset 选中第一项
func (m *Menu) Reset() {
	m.selected = 0
}
