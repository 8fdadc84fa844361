// SPDX-License-Identifier: Unlicense OR MIT

package panel

import (
	"fmt"
	"math"
)

// Mode is the sizing mode of an Equal child.
type Mode uint8

const (
	// ModeAuto sizes a child to its desired extent.
	ModeAuto Mode = iota
	// ModeFixed sizes a child to a fixed extent.
	ModeFixed
	// ModeProportional sizes a child to a share of the space left
	// by Auto and Fixed children.
	ModeProportional
)

// Sizing is the flow axis sizing of an Equal child. The zero value
// is Auto.
type Sizing struct {
	Mode Mode
	// Value is the extent for ModeFixed and the weight for
	// ModeProportional.
	Value float64
}

// SizingProvider looks up the sizing of a child by its key.
type SizingProvider interface {
	Sizing(key any) Sizing
}

// SizingFunc adapts a function to a SizingProvider.
type SizingFunc func(key any) Sizing

// SizingTable is a SizingProvider backed by a map. Keys missing from
// the table, and keys that cannot be map keys such as funcs, size as
// Proportional(1).
type SizingTable map[any]Sizing

// Auto returns the Sizing of a child sized to its content.
func Auto() Sizing {
	return Sizing{Mode: ModeAuto}
}

// Fixed returns the Sizing of a child with a fixed extent.
func Fixed(extent float64) Sizing {
	return Sizing{Mode: ModeFixed, Value: extent}
}

// Proportional returns the Sizing of a child taking weight shares of
// the proportional space.
func Proportional(weight float64) Sizing {
	return Sizing{Mode: ModeProportional, Value: weight}
}

// Valid reports whether s can contribute to a layout. Weights must be
// positive and fixed extents non-negative; invalid sizings contribute
// nothing.
func (s Sizing) Valid() bool {
	switch s.Mode {
	case ModeAuto:
		return true
	case ModeFixed:
		return s.Value >= 0 && !math.IsInf(s.Value, 0)
	case ModeProportional:
		return s.Value > 0 && !math.IsInf(s.Value, 0)
	default:
		return false
	}
}

// value returns Value, or zero if s is invalid.
func (s Sizing) value() float64 {
	if !s.Valid() {
		return 0
	}
	return s.Value
}

func (s Sizing) String() string {
	switch s.Mode {
	case ModeAuto:
		return "Auto"
	case ModeFixed:
		return fmt.Sprintf("Fixed(%g)", s.Value)
	case ModeProportional:
		return fmt.Sprintf("Proportional(%g)", s.Value)
	default:
		panic("unreachable")
	}
}

func (f SizingFunc) Sizing(key any) Sizing {
	return f(key)
}

func (t SizingTable) Sizing(key any) (s Sizing) {
	// Indexing the map panics for unhashable dynamic types.
	defer func() {
		if recover() != nil {
			s = Proportional(1)
		}
	}()
	if sz, ok := t[key]; ok {
		return sz
	}
	return Proportional(1)
}
