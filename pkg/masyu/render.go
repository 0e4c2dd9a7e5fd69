package masyu

import "strings"

// Board rendering: unicode box drawing with the grid frame dimmed so the
// loop stands out. Only the read accessors are used, so this doubles as the
// reference consumer of the rendering API.

const (
	ansiGray  = "\x1b[38;5;8m"
	ansiClear = "\x1b[0m"
)

// lineGlyph maps a determined pair of active edges to its box-drawing rune.
func lineGlyph(s DirSet) (string, bool) {
	switch s {
	case NewDirSet(Up, Down):
		return "│", true
	case NewDirSet(Left, Right):
		return "─", true
	case NewDirSet(Left, Down):
		return "┐", true
	case NewDirSet(Left, Up):
		return "┘", true
	case NewDirSet(Right, Up):
		return "└", true
	case NewDirSet(Right, Down):
		return "┌", true
	}
	return "", false
}

// Render draws the board with ANSI colors for a terminal.
func Render(b *Board) string {
	return render(b, ansiGray, ansiClear)
}

// RenderPlain draws the board without ANSI escapes, for logs and tests.
func RenderPlain(b *Board) string {
	return render(b, "", "")
}

func render(b *Board, gray, clear string) string {
	rule := make([]string, b.Width())
	for i := range rule {
		rule[i] = "─"
	}

	var sb strings.Builder
	sb.WriteString(gray)
	sb.WriteString("┌")
	sb.WriteString(strings.Join(rule, "┬"))
	sb.WriteString("┐\n")

	for y := 0; y < b.Height(); y++ {
		sb.WriteString("│")
		sb.WriteString(clear)
		for x := 0; x < b.Width(); x++ {
			c := Coord{uint8(x), uint8(y)}
			cell := b.CellAt(c)
			if t, ok := b.CircleAt(c); ok {
				if t == Black {
					sb.WriteString("●")
				} else {
					sb.WriteString("o")
				}
			} else if g, ok := lineGlyph(cell.IsSet()); ok {
				sb.WriteString(g)
			} else {
				sb.WriteString(" ")
			}
			if cell.IsSet().Has(Right) {
				sb.WriteString("─")
			} else {
				sb.WriteString(gray)
				sb.WriteString("│")
				sb.WriteString(clear)
			}
		}
		sb.WriteString(gray)
		if y == b.Height()-1 {
			sb.WriteString("\n└")
			sb.WriteString(strings.Join(rule, "┴"))
			sb.WriteString("┘")
			sb.WriteString(clear)
		} else {
			sb.WriteString("\n├")
			for x := 0; x < b.Width(); x++ {
				if b.CellAt(Coord{uint8(x), uint8(y)}).IsSet().Has(Down) {
					sb.WriteString(clear)
					sb.WriteString("│")
					sb.WriteString(gray)
				} else {
					sb.WriteString("─")
				}
				if x == b.Width()-1 {
					sb.WriteString("┤")
				} else {
					sb.WriteString("┼")
				}
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
