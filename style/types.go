// Package style resolves element attributes and class tokens into typed
// style operations. The package only produces operation requests - executing
// them (layout, drawing) belongs to the host rendering layer.
package style

// Payload carried by an operation.
// ENUM(flag, scalar, color, fraction)
type OpKind int

// Unit of a scalar length. One rem is relative to the host text size.
// ENUM(px, rem)
type Unit int

// Length is a numeric value with a unit.
type Length struct {
	Value float64
	Unit  Unit
}

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// Op is a single resolved style operation. Ops targeting the same Slot
// override each other left to right - the resolver keeps only the winner.
// For flags Slot equals Name, which makes repeated flags idempotent.
type Op struct {
	Kind OpKind
	Name string // operation name as the host layer knows it
	Slot string // semantic override slot

	Length   Length // scalar payload
	Color    Color  // color payload
	Num, Den int    // fraction payload
}

// step converts one spacing/sizing increment into a length: steps are
// quarters of the text size, the special "px" step is one physical pixel.
func step(n int) Length {
	return Length{Value: float64(n) * 0.25, Unit: UnitRem}
}

func onePx() Length {
	return Length{Value: 1, Unit: UnitPx}
}
