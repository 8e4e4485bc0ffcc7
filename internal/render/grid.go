package render

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/flarebyte/greet/internal/effect"
	"github.com/flarebyte/greet/internal/greeting"
	"github.com/flarebyte/greet/internal/pipeline"
)

const (
	// gridMinCellWidth is the smallest usable width of a grid cell.
	gridMinCellWidth = 26
	// gridCellPadding is the blank columns on each side of a cell.
	gridCellPadding = 2
)

// RenderGrid writes the greetings as cells of a multi-column flow. The box
// effect wraps the whole grid and cowsay puts it in a single bubble.
func (r *Renderer) RenderGrid(ctx context.Context, gs []greeting.Greeting) error {
	if len(gs) == 0 {
		return nil
	}
	cells := make([]string, 0, len(gs))
	for _, g := range gs {
		env, err := r.run(ctx, r.Console, g, pipeline.ModeGridCell)
		if err != nil {
			return err
		}
		cells = append(cells, env.Body)
	}
	out := layoutGrid(cells, r.Console.Width)
	if r.Config.ShowBox {
		out = effect.Box(r.Console.Styles, out, r.Config.UseColor)
	}
	if r.Config.CowsayActive() {
		out = effect.Cowsay(strings.TrimRight(out, " \t\r\n"))
	}
	return r.Console.Println(out)
}

// layoutGrid arranges cells row by row with equal cell widths. Cells are
// never narrower than their content, so a cell is never wrapped; extra
// width is shared out so the rows fill width.
func layoutGrid(cells []string, width int) string {
	if len(cells) == 0 {
		return ""
	}
	cellWidth := gridMinCellWidth
	for _, c := range cells {
		if w := lipgloss.Width(c); w > cellWidth {
			cellWidth = w
		}
	}
	slot := cellWidth + 2*gridCellPadding
	cols := width / slot
	if cols < 1 {
		cols = 1
	}
	if cols > len(cells) {
		cols = len(cells)
	}
	if extra := width - cols*slot; extra > 0 {
		cellWidth += extra / cols
	}

	pad := strings.Repeat(" ", gridCellPadding)
	var rows []string
	for start := 0; start < len(cells); start += cols {
		end := start + cols
		if end > len(cells) {
			end = len(cells)
		}
		row := cells[start:end]
		height := 0
		split := make([][]string, len(row))
		for i, c := range row {
			split[i] = strings.Split(c, "\n")
			if len(split[i]) > height {
				height = len(split[i])
			}
		}
		for line := 0; line < height; line++ {
			var b strings.Builder
			for _, cellLines := range split {
				s := ""
				if line < len(cellLines) {
					s = cellLines[line]
				}
				b.WriteString(pad)
				b.WriteString(s)
				b.WriteString(strings.Repeat(" ", cellWidth-lipgloss.Width(s)))
				b.WriteString(pad)
			}
			rows = append(rows, strings.TrimRight(b.String(), " "))
		}
	}
	return strings.Join(rows, "\n")
}
