package tui

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// layout is the screen split shared by View and Update.
type layout struct {
	sidebarW int
	contentW int
	contentH int
	mapX     int
	mapY     int
	mapW     int
	mapH     int
}

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

func (m Model) layout() layout {
	var l layout
	if m.showSidebar {
		l.sidebarW = sidebarWidth
	}
	l.contentH = max(4, m.height-headerHeight-footerHeight)
	l.contentW = max(10, m.width)
	l.mapW = max(10, l.contentW-l.sidebarW-1)
	l.mapH = l.contentH
	if m.showSidebar {
		l.mapX = l.sidebarW + 1
	}
	l.mapY = headerHeight
	return l
}

// inMap reports whether terminal cell (x, y) lies on the map.
func (l layout) inMap(x, y int) bool {
	return x >= l.mapX && x < l.mapX+l.mapW && y >= l.mapY && y < l.mapY+l.mapH
}
