package style

import "fmt"

// Hex renders the color in lowercase css hex form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (l Length) String() string {
	return fmt.Sprintf("%g%s", l.Value, l.Unit)
}

// String renders the operation the way debug dumps show it.
func (op Op) String() string {
	switch op.Kind {
	case OpKindScalar:
		return fmt.Sprintf("%s:%s", op.Slot, op.Length)
	case OpKindColor:
		return fmt.Sprintf("%s:%s", op.Slot, op.Color.Hex())
	case OpKindFraction:
		return fmt.Sprintf("%s:%d/%d", op.Slot, op.Num, op.Den)
	default:
		return op.Name
	}
}
