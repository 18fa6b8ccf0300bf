package visibility

import (
	"fmt"
	"strconv"
	"strings"
)

// Length is one CSS-style margin component.
type Length struct {
	Value   float64
	Percent bool
}

func (l Length) resolve(base float64) float64 {
	if l.Percent {
		return base * l.Value / 100
	}
	return l.Value
}

// Margin grows (positive) or shrinks (negative) the tracked region.
type Margin struct {
	Top, Right, Bottom, Left Length
}

// ParseMargin parses CSS margin shorthand: one to four space-separated
// values, each in px or %. A bare 0 is accepted.
func ParseMargin(s string) (Margin, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 4 {
		return Margin{}, fmt.Errorf("root margin %q: want 1 to 4 values", s)
	}

	vals := make([]Length, len(fields))
	for i, f := range fields {
		l, err := parseLength(f)
		if err != nil {
			return Margin{}, fmt.Errorf("root margin %q: %w", s, err)
		}
		vals[i] = l
	}

	switch len(vals) {
	case 1:
		return Margin{vals[0], vals[0], vals[0], vals[0]}, nil
	case 2:
		return Margin{vals[0], vals[1], vals[0], vals[1]}, nil
	case 3:
		return Margin{vals[0], vals[1], vals[2], vals[1]}, nil
	default:
		return Margin{vals[0], vals[1], vals[2], vals[3]}, nil
	}
}

func parseLength(s string) (Length, error) {
	var l Length
	num := s
	switch {
	case strings.HasSuffix(s, "px"):
		num = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "%"):
		num = strings.TrimSuffix(s, "%")
		l.Percent = true
	case s != "0":
		return Length{}, fmt.Errorf("value %q must be in px or %%", s)
	}

	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}, fmt.Errorf("value %q: %w", s, err)
	}
	l.Value = v
	return l, nil
}

// Apply returns root expanded by m. Percentages of top and bottom are taken
// from the root height, left and right from its width.
func (m Margin) Apply(root Rect) Rect {
	top := m.Top.resolve(root.Height)
	bottom := m.Bottom.resolve(root.Height)
	left := m.Left.resolve(root.Width)
	right := m.Right.resolve(root.Width)

	return Rect{
		X:      root.X - left,
		Y:      root.Y - top,
		Width:  root.Width + left + right,
		Height: root.Height + top + bottom,
	}
}
