package widget

import "github.com/ansipixels/cubeplay/pkg/transform"

// Panel is an ordered set of sliders, one per exposed parameter, with a
// keyboard selection.
type Panel struct {
	Sliders  []*Slider
	Params   []transform.Param
	Selected int
}

// NewPanel builds sliders for the given parameters.
func NewPanel(ps []transform.Param, fps int) *Panel {
	p := &Panel{Params: ps}
	for _, which := range ps {
		p.Sliders = append(p.Sliders, NewSlider(which.Range(), fps))
	}
	return p
}

// DefaultParams lists the sliders shown by default: every parameter except
// scaleZ, which stays fixed at 1.0 unless includeScaleZ is set.
func DefaultParams(includeScaleZ bool) []transform.Param {
	var ps []transform.Param
	for _, p := range transform.All() {
		if p == transform.ScaleZ && !includeScaleZ {
			continue
		}
		ps = append(ps, p)
	}
	return ps
}

// Current returns the selected slider.
func (p *Panel) Current() *Slider {
	return p.Sliders[p.Selected]
}

// Select moves the selection by delta, wrapping around.
func (p *Panel) Select(delta int) {
	n := len(p.Sliders)
	if n == 0 {
		return
	}
	p.Selected = ((p.Selected+delta)%n + n) % n
}

// Update advances every slider one frame and reports whether any value changed.
func (p *Panel) Update() bool {
	changed := false
	for _, s := range p.Sliders {
		if s.Update() {
			changed = true
		}
	}
	return changed
}

// Reset returns every slider to its default.
func (p *Panel) Reset() {
	for _, s := range p.Sliders {
		s.Reset()
	}
}
