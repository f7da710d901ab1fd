package game

import "fmt"

// Growth maps the current value of an upgrade parameter to the value it takes
// after one more level.
type Growth interface {
	Next(current float64) float64
}

// Additive grows by a fixed step. Negative steps model shrinking values.
type Additive struct {
	Step float64
}

func (a Additive) Next(current float64) float64 {
	return current + a.Step
}

// Multiplicative grows by a fixed factor.
type Multiplicative struct {
	Factor float64
}

func (m Multiplicative) Next(current float64) float64 {
	return current * m.Factor
}

func (a Additive) String() string {
	if a.Step < 0 {
		return fmt.Sprintf("%g", a.Step)
	}
	return fmt.Sprintf("+%g", a.Step)
}

func (m Multiplicative) String() string {
	return fmt.Sprintf("x%g", m.Factor)
}
