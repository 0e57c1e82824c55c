package style

import (
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"

	"uiml/markup"
)

func TestResolveClassLastTokenWinsPerSlot(t *testing.T) {
	r := NewResolver(zaptest.NewLogger(t))

	res := r.ResolveClass("h-4 h-8")
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if len(res.Ops) != 1 {
		t.Fatalf("expected a single height op, got %+v", res.Ops)
	}
	op := res.Ops[0]
	if op.Kind != OpKindScalar || op.Slot != "height" {
		t.Fatalf("unexpected op: %+v", op)
	}
	if op.Length.Value != 2 || op.Length.Unit != UnitRem {
		t.Fatalf("expected height of 2rem (step 8), got %v%v", op.Length.Value, op.Length.Unit)
	}
}

func TestResolveClassDistinctSlotsOrderIndependent(t *testing.T) {
	r := NewResolver(zaptest.NewLogger(t))

	a := r.ResolveClass("h-4 w-8 flex")
	b := r.ResolveClass("flex w-8 h-4")
	if len(a.Ops) != 3 || len(b.Ops) != 3 {
		t.Fatalf("expected 3 ops each, got %d and %d", len(a.Ops), len(b.Ops))
	}
	bySlot := func(ops []Op) map[string]Op {
		m := make(map[string]Op, len(ops))
		for _, op := range ops {
			m[op.Slot] = op
		}
		return m
	}
	am, bm := bySlot(a.Ops), bySlot(b.Ops)
	for slot, op := range am {
		if bm[slot] != op {
			t.Fatalf("slot %q differs between orderings: %+v vs %+v", slot, op, bm[slot])
		}
	}
}

func TestResolveClassFlagIdempotent(t *testing.T) {
	r := NewResolver(zaptest.NewLogger(t))

	res := r.ResolveClass("flex flex flex")
	if len(res.Ops) != 1 || res.Ops[0].Kind != OpKindFlag || res.Ops[0].Name != "flex" {
		t.Fatalf("expected a single flex flag, got %+v", res.Ops)
	}
}

func TestResolveClassKeywordOverridesScalar(t *testing.T) {
	r := NewResolver(zaptest.NewLogger(t))

	res := r.ResolveClass("h-4 h-full")
	if len(res.Ops) != 1 || res.Ops[0].Name != "height-full" {
		t.Fatalf("expected height-full to win the height slot, got %+v", res.Ops)
	}
}

func TestResolveClassFractions(t *testing.T) {
	r := NewResolver(zaptest.NewLogger(t))

	res := r.ResolveClass("w-2/3")
	if len(res.Ops) != 1 {
		t.Fatalf("expected one op, got %+v", res.Ops)
	}
	op := res.Ops[0]
	if op.Kind != OpKindFraction || op.Num != 2 || op.Den != 3 || op.Slot != "width" {
		t.Fatalf("unexpected fraction op: %+v", op)
	}
}

func TestResolveClassBackgroundLiteral(t *testing.T) {
	r := NewResolver(zaptest.NewLogger(t))

	res := r.ResolveClass("bg-[#112233]")
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if len(res.Ops) != 1 {
		t.Fatalf("expected one op, got %+v", res.Ops)
	}
	op := res.Ops[0]
	if op.Kind != OpKindColor || op.Slot != "background" {
		t.Fatalf("unexpected op: %+v", op)
	}
	if op.Color != (Color{R: 0x11, G: 0x22, B: 0x33}) {
		t.Fatalf("unexpected channels: %+v", op.Color)
	}
}

func TestResolveClassBadColorScopedToToken(t *testing.T) {
	r := NewResolver(zaptest.NewLogger(t))

	res := r.ResolveClass("flex bg-[zz0000] h-4")
	if len(res.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %v", res.Errors)
	}
	var colorErr *ColorError
	if !errors.As(res.Errors[0], &colorErr) {
		t.Fatalf("expected ColorError, got %v", res.Errors[0])
	}
	// the two good tokens still resolve
	if len(res.Ops) != 2 {
		t.Fatalf("expected flex and height ops to survive, got %+v", res.Ops)
	}
}

func TestResolveClassUnknownTokenIgnored(t *testing.T) {
	r := NewResolver(zaptest.NewLogger(t))

	res := r.ResolveClass("frobnicate-9")
	if len(res.Ops) != 0 || len(res.Errors) != 0 {
		t.Fatalf("unknown token must resolve to nothing, got %+v / %v", res.Ops, res.Errors)
	}
}

func TestResolveClassRoundedLiterals(t *testing.T) {
	r := NewResolver(zaptest.NewLogger(t))

	cases := []struct {
		token string
		slot  string
		want  Length
	}{
		{"rounded-[8px]", "rounding", Length{Value: 8, Unit: UnitPx}},
		{"rounded-tl-[2rem]", "rounding-tl", Length{Value: 2, Unit: UnitRem}},
		{"rounded-b-[1.5em]", "rounding-b", Length{Value: 1.5, Unit: UnitRem}},
		{"rounded-[12]", "rounding", Length{Value: 12, Unit: UnitPx}},
	}
	for _, tc := range cases {
		res := r.ResolveClass(tc.token)
		if len(res.Ops) != 1 {
			t.Fatalf("%s: expected one op, got %+v", tc.token, res.Ops)
		}
		op := res.Ops[0]
		if op.Slot != tc.slot || op.Length != tc.want {
			t.Fatalf("%s: got slot %q length %+v", tc.token, op.Slot, op.Length)
		}
	}
}

func TestResolveClassBadUnitFallsBackToZero(t *testing.T) {
	r := NewResolver(zaptest.NewLogger(t))

	res := r.ResolveClass("rounded-[8vw]")
	if len(res.Ops) != 1 {
		t.Fatalf("expected the op to survive with a fallback, got %+v", res.Ops)
	}
	if res.Ops[0].Length != (Length{Value: 0, Unit: UnitPx}) {
		t.Fatalf("expected zero pixel fallback, got %+v", res.Ops[0].Length)
	}
	var lengthErr *LengthError
	if len(res.Errors) != 1 || !errors.As(res.Errors[0], &lengthErr) {
		t.Fatalf("expected a LengthError, got %v", res.Errors)
	}
}

func TestResolveDirectAttributes(t *testing.T) {
	r := NewResolver(zaptest.NewLogger(t))

	res := r.Resolve([]markup.Attr{
		{Key: AttrColor, Value: "#ff0080"},
		{Key: AttrClass, Value: "flex bg-[#000000]"},
		{Key: "title", Value: "not a style attribute"},
	})
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if len(res.Ops) != 3 {
		t.Fatalf("expected foreground, flex and background ops, got %+v", res.Ops)
	}
	fg := res.Ops[0]
	if fg.Slot != "foreground" || fg.Color != (Color{R: 0xff, G: 0x00, B: 0x80}) {
		t.Fatalf("unexpected foreground op: %+v", fg)
	}
}

func TestResolveBadColorAttribute(t *testing.T) {
	r := NewResolver(zaptest.NewLogger(t))

	res := r.Resolve([]markup.Attr{
		{Key: AttrColor, Value: "#123"},
		{Key: AttrClass, Value: "h-2"},
	})
	var colorErr *ColorError
	if len(res.Errors) != 1 || !errors.As(res.Errors[0], &colorErr) {
		t.Fatalf("expected ColorError, got %v", res.Errors)
	}
	if len(res.Ops) != 1 || res.Ops[0].Slot != "height" {
		t.Fatalf("expected the class path to survive, got %+v", res.Ops)
	}
}

func TestClassTableSpotChecks(t *testing.T) {
	// the table is generated from data - spot check the corners
	for _, token := range []string{
		"h-0", "w-96", "p-px", "m-auto", "m-full", "mx-1/12", "py-3/4",
		"min-h-0", "max-w-full", "flex-shrink-0", "cursor-grabbing", "shadow-2xl",
	} {
		if _, ok := classTable[token]; !ok {
			t.Errorf("expected %q in the enumerated table", token)
		}
	}
	for _, token := range []string{"h-7", "w-1/7", "p-full", "min-h-4", "rounded"} {
		if _, ok := classTable[token]; ok {
			t.Errorf("did not expect %q in the enumerated table", token)
		}
	}
}
