// Package widget provides the slider controls of the parameter panel.
package widget

import (
	"fmt"
	"math"

	"github.com/ansipixels/cubeplay/pkg/transform"
	"github.com/charmbracelet/harmonica"
)

// settle is how close the eased value must be to its target before it snaps.
const settle = 1e-4

// Slider is a clamped numeric control. Set moves its target; the displayed
// Value eases toward the target with a critically damped spring, one Update
// per frame. A slider built with fps <= 0 jumps straight to the target.
type Slider struct {
	Range transform.Range
	Step  float64 // keyboard increment

	target   float64
	value    float64
	velocity float64
	spring   harmonica.Spring
	animated bool
	changed  bool // instant Set not yet reported by Update
}

// NewSlider returns a slider at the range default.
func NewSlider(r transform.Range, fps int) *Slider {
	s := &Slider{
		Range:  r,
		Step:   (r.Max - r.Min) / 72,
		target: r.Default,
		value:  r.Default,
	}
	if fps > 0 {
		// Frequency 6.0 = quick, damping 1.0 = critically damped (no overshoot)
		s.spring = harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0)
		s.animated = true
	}
	return s
}

// Value implements params.Control.
func (s *Slider) Value() float64 {
	return s.value
}

// Target returns the value the slider is easing toward.
func (s *Slider) Target() float64 {
	return s.target
}

// Set moves the target, clamped to the range.
func (s *Slider) Set(v float64) {
	s.target = s.Range.Clamp(v)
	if !s.animated && s.value != s.target {
		s.value = s.target
		s.changed = true
	}
}

// Nudge moves the target by n keyboard steps.
func (s *Slider) Nudge(n float64) {
	s.Set(s.target + n*s.Step)
}

// SetFraction sets the target from a position along the bar, 0 at Min, 1 at Max.
func (s *Slider) SetFraction(f float64) {
	f = min(max(f, 0), 1)
	s.Set(s.Range.Min + f*(s.Range.Max-s.Range.Min))
}

// Fraction returns the current value's position along the bar.
func (s *Slider) Fraction() float64 {
	span := s.Range.Max - s.Range.Min
	if span == 0 {
		return 0
	}
	return (s.value - s.Range.Min) / span
}

// Reset returns the slider to its default.
func (s *Slider) Reset() {
	s.Set(s.Range.Default)
}

// Update advances the easing by one frame and reports whether Value changed.
func (s *Slider) Update() bool {
	changed := s.changed
	s.changed = false
	if s.value == s.target {
		s.velocity = 0
		return changed
	}
	if !s.animated {
		s.value = s.target
		return true
	}
	s.value, s.velocity = s.spring.Update(s.value, s.velocity, s.target)
	if math.Abs(s.value-s.target) < settle*(s.Range.Max-s.Range.Min) {
		s.value, s.velocity = s.target, 0
	}
	s.value = s.Range.Clamp(s.value)
	return true
}

// Bar renders a text bar of the given width with a knob at the current value.
func (s *Slider) Bar(width int) string {
	if width < 1 {
		return ""
	}
	knob := int(math.Round(s.Fraction() * float64(width-1)))
	b := make([]rune, width)
	for i := range b {
		b[i] = '─'
	}
	b[knob] = '●'
	return string(b)
}

// Label returns "name value unit" formatted for the panel.
func (s *Slider) Label() string {
	return fmt.Sprintf("%-6s %7.2f%s", s.Range.Name, s.value, s.Range.Unit)
}
