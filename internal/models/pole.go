package models

// Pole is a free-form equipment profile embedded inside each session.
// Brand, length, flex, and weight are kept as entered on the form; the
// setup numbers are inches except for the approach pair.
type Pole struct {
	Brand          string  `json:"brand"`
	Length         string  `json:"length"`
	Flex           string  `json:"flex"`
	Weight         string  `json:"weight"`
	Steps          float64 `json:"steps"`
	ApproachFeet   float64 `json:"approachFeet"`
	ApproachInches float64 `json:"approachInches"`
	TakeoffIn      float64 `json:"takeoffIn"`
	StandardsIn    float64 `json:"standardsIn"`
	Hands          string  `json:"hands"`
}

// Key is the pole's dedup identity: two entries with the same
// brand/length/flex/weight are the same physical pole.
func (p Pole) Key() string {
	return p.Brand + "|" + p.Length + "|" + p.Flex + "|" + p.Weight
}

// ApproachIn is the approach distance flattened to inches.
func (p Pole) ApproachIn() float64 {
	in := p.ApproachFeet*12 + p.ApproachInches
	if in < 0 {
		return 0
	}
	return in
}
