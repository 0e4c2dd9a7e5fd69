package masyu

import (
	"strings"

	"github.com/pkg/errors"
)

// Parse reads a puzzle from its text form: one rune per cell, 'o' for a
// white circle, '●' for a black circle, '.' for an empty cell. Lines
// starting with '#' are comments. Malformed input is a plain error, not a
// Contradiction; only solving produces Contradictions.
func Parse(input string) (*Board, error) {
	var lines []string
	for _, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		if strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 || lines[0] == "" {
		return nil, errors.New("empty puzzle")
	}

	width := len([]rune(lines[0]))
	circles := make(map[Coord]CircleType)
	for y, line := range lines {
		runes := []rune(line)
		if len(runes) != width {
			return nil, errors.Errorf("line %d is %d cells wide, want %d", y+1, len(runes), width)
		}
		for x, r := range runes {
			switch r {
			case 'o':
				circles[Coord{uint8(x), uint8(y)}] = White
			case '●':
				circles[Coord{uint8(x), uint8(y)}] = Black
			case '.':
			default:
				return nil, errors.Errorf("unexpected character %q at (%d,%d)", r, x, y)
			}
		}
	}

	return NewBoard(width, len(lines), circles)
}
