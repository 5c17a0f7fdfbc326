package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/cory-johannsen/herogen/internal/game/hero"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// sheetSkip holds keys shown in the title instead of the table.
var sheetSkip = map[string]bool{
	hero.KeyName:      true,
	hero.KeyRaceName:  true,
	hero.KeyKlassName: true,
}

// RenderSheet renders h as a two-column character sheet in Keys() order.
// List values are shown one entry per line.
func RenderSheet(h hero.Hero) string {
	m := h.Attributes()
	title := titleStyle.Render(fmt.Sprintf("%s, %s %s", m[hero.KeyName], m[hero.KeyRaceName], m[hero.KeyKlassName]))

	var rows [][]string
	for _, k := range hero.Keys() {
		if sheetSkip[k] {
			continue
		}
		v := m[k]
		if v == "" {
			v = "-"
		}
		if hero.IsListKey(k) {
			v = strings.Join(hero.SplitList(v), "\n")
		}
		rows = append(rows, []string{k, v})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		BorderHeader(true).
		BorderRow(false).
		Headers("Attribute", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return titleStyle
			case col == 0:
				return keyStyle
			default:
				return valueStyle
			}
		})

	return lipgloss.JoinVertical(lipgloss.Left, title, t.Render())
}
