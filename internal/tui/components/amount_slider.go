package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/gregglawdallas/caseval/internal/domain"
)

var (
	sliderThumbStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	sliderTrackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	sliderFocusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

// AmountSlider is an adjustable dollar amount with a visual track. Values
// step in fixed increments and clamp to [0, Max].
type AmountSlider struct {
	Label     string
	Value     decimal.Decimal
	Max       decimal.Decimal
	Step      decimal.Decimal
	Width     int
	IsFocused bool
}

// NewAmountSlider creates a slider starting at zero.
func NewAmountSlider(label string, max, step decimal.Decimal) *AmountSlider {
	return &AmountSlider{
		Label: label,
		Max:   max,
		Step:  step,
		Width: 24,
	}
}

// Increment raises the value by one step, clamped to Max.
func (s *AmountSlider) Increment() {
	next := s.Value.Add(s.Step)
	if next.GreaterThan(s.Max) {
		next = s.Max
	}
	s.Value = next
}

// Decrement lowers the value by one step, clamped to zero.
func (s *AmountSlider) Decrement() {
	next := s.Value.Sub(s.Step)
	if next.IsNegative() {
		next = decimal.Zero
	}
	s.Value = next
}

// SetValue sets the value directly, clamped to [0, Max].
func (s *AmountSlider) SetValue(v decimal.Decimal) {
	if v.IsNegative() {
		v = decimal.Zero
	}
	if v.GreaterThan(s.Max) {
		v = s.Max
	}
	s.Value = v
}

func (s *AmountSlider) fillWidth() int {
	if !s.Max.IsPositive() {
		return 0
	}
	ratio := s.Value.Div(s.Max)
	filled := int(ratio.Mul(decimal.NewFromInt(int64(s.Width))).IntPart())
	if filled < 0 {
		filled = 0
	}
	if filled > s.Width {
		filled = s.Width
	}
	return filled
}

// RenderCompact renders the slider on a single line.
func (s *AmountSlider) RenderCompact() string {
	thumb := sliderThumbStyle
	if s.IsFocused {
		thumb = sliderFocusStyle
	}

	filled := s.fillWidth()
	var bar strings.Builder
	bar.WriteString("[")
	for i := 0; i < s.Width; i++ {
		switch {
		case i == filled:
			bar.WriteString(thumb.Render("●"))
		case i < filled:
			bar.WriteString(thumb.Render("━"))
		default:
			bar.WriteString(sliderTrackStyle.Render("─"))
		}
	}
	bar.WriteString("]")

	return bar.String() + " $" + domain.Dollars(s.Value)
}
