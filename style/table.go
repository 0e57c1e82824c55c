package style

import (
	"fmt"
)

// The enumerated token vocabulary is kept as data and expanded once into a
// lookup map. Axis descriptors cover the combinatorial part (axis x step,
// axis x fraction), flat lists cover the rest.

var flagTokens = []string{
	"flex", "block", "absolute", "relative", "visible", "invisible",
	"overflow-hidden", "overflow-x-hidden", "overflow-y-hidden",

	"cursor-default", "cursor-pointer", "cursor-text", "cursor-move",
	"cursor-not-allowed", "cursor-context-menu", "cursor-crosshair",
	"cursor-vertical-text", "cursor-alias", "cursor-copy", "cursor-no-drop",
	"cursor-grab", "cursor-grabbing", "cursor-col-resize", "cursor-row-resize",
	"cursor-n-resize", "cursor-e-resize", "cursor-s-resize", "cursor-w-resize",

	"justify-center", "justify-between", "justify-around", "justify-start",
	"justify-end",
	"items-start", "items-end", "items-center",

	"flex-col", "flex-row", "flex-col-reverse", "flex-row-reverse",
	"flex-1", "flex-auto", "flex-initial", "flex-none",
	"flex-grow", "flex-shrink", "flex-shrink-0",

	"shadow-sm", "shadow-md", "shadow-lg", "shadow-xl", "shadow-2xl",
}

// sizeSteps are the fixed increments shared by all sizing/spacing axes.
var sizeSteps = []int{0, 1, 2, 3, 4, 5, 6, 8, 10, 12, 16, 20, 24, 32, 40, 48, 56, 64, 72, 80, 96}

// fractionSet is the fixed num/den vocabulary, denominators up to twelfths.
var fractionSet = []struct{ num, den int }{
	{1, 2},
	{1, 3}, {2, 3},
	{1, 4}, {2, 4}, {3, 4},
	{1, 5}, {2, 5}, {3, 5}, {4, 5},
	{1, 6}, {5, 6},
	{1, 12},
}

type axisSpec struct {
	prefix string
	slot   string
	pxStep bool // accepts the one-pixel "px" step
	auto   bool
	full   bool
}

var axes = []axisSpec{
	{prefix: "h", slot: "height", auto: true, full: true},
	{prefix: "w", slot: "width", auto: true, full: true},
	{prefix: "p", slot: "padding", pxStep: true},
	{prefix: "px", slot: "padding-x", pxStep: true},
	{prefix: "py", slot: "padding-y", pxStep: true},
	{prefix: "m", slot: "margin", pxStep: true, auto: true, full: true},
	{prefix: "mx", slot: "margin-x", pxStep: true},
	{prefix: "my", slot: "margin-y", pxStep: true},
	{prefix: "mt", slot: "margin-top", pxStep: true},
	{prefix: "mr", slot: "margin-right", pxStep: true},
	{prefix: "mb", slot: "margin-bottom", pxStep: true},
	{prefix: "ml", slot: "margin-left", pxStep: true},
}

// limitAxes only know their extremes.
var limitAxes = []struct{ prefix, slot string }{
	{"min-h", "min-height"},
	{"min-w", "min-width"},
	{"max-h", "max-height"},
	{"max-w", "max-width"},
}

var classTable = buildClassTable()

func buildClassTable() map[string]Op {
	table := make(map[string]Op, 1024)

	for _, name := range flagTokens {
		table[name] = Op{Kind: OpKindFlag, Name: name, Slot: name}
	}

	for _, ax := range axes {
		for _, n := range sizeSteps {
			token := fmt.Sprintf("%s-%d", ax.prefix, n)
			table[token] = Op{Kind: OpKindScalar, Name: ax.slot, Slot: ax.slot, Length: step(n)}
		}
		if ax.pxStep {
			table[ax.prefix+"-px"] = Op{Kind: OpKindScalar, Name: ax.slot, Slot: ax.slot, Length: onePx()}
		}
		if ax.auto {
			table[ax.prefix+"-auto"] = Op{Kind: OpKindFlag, Name: ax.slot + "-auto", Slot: ax.slot}
		}
		if ax.full {
			table[ax.prefix+"-full"] = Op{Kind: OpKindFlag, Name: ax.slot + "-full", Slot: ax.slot}
		}
		for _, f := range fractionSet {
			token := fmt.Sprintf("%s-%d/%d", ax.prefix, f.num, f.den)
			table[token] = Op{Kind: OpKindFraction, Name: ax.slot, Slot: ax.slot, Num: f.num, Den: f.den}
		}
	}

	for _, ax := range limitAxes {
		table[ax.prefix+"-0"] = Op{Kind: OpKindScalar, Name: ax.slot, Slot: ax.slot, Length: step(0)}
		table[ax.prefix+"-full"] = Op{Kind: OpKindFlag, Name: ax.slot + "-full", Slot: ax.slot}
	}

	return table
}
