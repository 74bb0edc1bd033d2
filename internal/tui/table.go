package tui

import (
	"strconv"

	table "github.com/charmbracelet/bubbles/table"

	"planeview/internal/numfmt"
)

func pointColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 5},
		{Title: "x", Width: 16},
		{Title: "y", Width: 16},
	}
}

// refreshTable rebuilds the rows from the current points.
func (m *Model) refreshTable() {
	pts := m.graph.Positions()
	rows := make([]table.Row, len(pts))
	for i, p := range pts {
		rows[i] = table.Row{strconv.Itoa(i + 1), numfmt.Format(p.X), numfmt.Format(p.Y)}
	}
	m.tbl.SetRows(rows)
	if c := m.tbl.Cursor(); c >= len(rows) {
		m.tbl.SetCursor(max(len(rows)-1, 0))
	}
	m.tableVersion = m.graph.PointsVersion()
}

// removeSelected deletes the point under the table cursor.
func (m *Model) removeSelected() {
	pts := m.graph.Points()
	i := m.tbl.Cursor()
	if i < 0 || i >= len(pts) {
		return
	}
	pos := pts[i].Pos()
	if m.graph.RemovePoint(pts[i]) {
		m.status = "removed " + numfmt.Format(pos.X) + ", " + numfmt.Format(pos.Y)
	}
	m.refreshTable()
}
