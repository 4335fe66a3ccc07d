package transform

// Param identifies one of the nine transform parameters. The order is fixed
// and matches Params.Values.
type Param int

const (
	RotX Param = iota
	RotY
	RotZ
	ScaleX
	ScaleY
	ScaleZ
	TransX
	TransY
	TransZ

	NumParams = 9
)

// Range documents a parameter for UI controls: its name, the interval the
// control clamps to, and the default value.
type Range struct {
	Name    string
	Unit    string
	Min     float64
	Max     float64
	Default float64
}

var ranges = [NumParams]Range{
	RotX:   {Name: "rotX", Unit: "°", Min: -180, Max: 180, Default: 0},
	RotY:   {Name: "rotY", Unit: "°", Min: -180, Max: 180, Default: 0},
	RotZ:   {Name: "rotZ", Unit: "°", Min: -180, Max: 180, Default: 0},
	ScaleX: {Name: "scaleX", Min: 0.2, Max: 3.0, Default: 1.0},
	ScaleY: {Name: "scaleY", Min: 0.2, Max: 3.0, Default: 1.0},
	ScaleZ: {Name: "scaleZ", Min: 0.2, Max: 3.0, Default: 1.0},
	TransX: {Name: "transX", Min: -4, Max: 4, Default: 0},
	TransY: {Name: "transY", Min: -4, Max: 4, Default: 0},
	TransZ: {Name: "transZ", Min: -4, Max: 4, Default: 0},
}

// All returns every parameter in order.
func All() []Param {
	all := make([]Param, NumParams)
	for i := range all {
		all[i] = Param(i)
	}
	return all
}

// Range returns the documented range of p.
func (p Param) Range() Range {
	return ranges[p]
}

// String returns the parameter name, e.g. "rotX".
func (p Param) String() string {
	if p < 0 || p >= NumParams {
		return "unknown"
	}
	return ranges[p].Name
}

// Clamp limits v to [r.Min, r.Max]. The core never clamps; UI controls do.
func (r Range) Clamp(v float64) float64 {
	return min(max(v, r.Min), r.Max)
}

// Params holds the nine transform parameters. Rotations are in degrees.
type Params struct {
	RotX, RotY, RotZ       float64
	ScaleX, ScaleY, ScaleZ float64
	TransX, TransY, TransZ float64
}

// Defaults returns the identity parameters: no rotation, unit scale, no translation.
func Defaults() Params {
	var v [NumParams]float64
	for i, r := range ranges {
		v[i] = r.Default
	}
	return FromValues(v)
}

// Values returns the parameters in Param order.
func (p Params) Values() [NumParams]float64 {
	return [NumParams]float64{
		p.RotX, p.RotY, p.RotZ,
		p.ScaleX, p.ScaleY, p.ScaleZ,
		p.TransX, p.TransY, p.TransZ,
	}
}

// FromValues builds Params from values in Param order.
func FromValues(v [NumParams]float64) Params {
	return Params{
		RotX: v[RotX], RotY: v[RotY], RotZ: v[RotZ],
		ScaleX: v[ScaleX], ScaleY: v[ScaleY], ScaleZ: v[ScaleZ],
		TransX: v[TransX], TransY: v[TransY], TransZ: v[TransZ],
	}
}

// Get returns the value of a single parameter.
func (p Params) Get(which Param) float64 {
	return p.Values()[which]
}

// With returns a copy of p with one parameter replaced.
func (p Params) With(which Param, v float64) Params {
	vals := p.Values()
	vals[which] = v
	return FromValues(vals)
}
