package style

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"uiml/markup"
)

// Reserved attribute keys. class and color are consumed here, src and path
// are read by the renderer when it constructs image and vector elements.
const (
	AttrClass = "class"
	AttrColor = "color"
	AttrSrc   = "src"
	AttrPath  = "path"
)

// Bracket patterns for parameterized tokens carrying an embedded literal.
var (
	bgPattern      = regexp.MustCompile(`^bg-\[(.+)\]$`)
	roundedPattern = regexp.MustCompile(`^rounded(?:-(t|r|b|l|tl|tr|bl|br))?-\[(.+)\]$`)
)

// Resolver turns raw element attributes into style operations.
type Resolver struct {
	log *zap.Logger
}

func NewResolver(log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{log: log.Named("style")}
}

// Resolution is the outcome for a single element. Errors are scoped to
// individual tokens and never abort the element.
type Resolution struct {
	Ops    []Op
	Errors []error
}

// Resolve processes direct reserved attributes and class tokens in document
// order. Direct attributes and class tokens target independent slots, so the
// two paths cannot conflict with each other.
func (r *Resolver) Resolve(attrs []markup.Attr) Resolution {
	var res Resolution
	for _, attr := range attrs {
		switch attr.Key {
		case AttrColor:
			c, err := ParseHexColor(attr.Value)
			if err != nil {
				r.log.Warn("Ignoring bad color attribute", zap.String("value", attr.Value), zap.Error(err))
				res.Errors = append(res.Errors, err)
				continue
			}
			res.Ops = append(res.Ops, Op{Kind: OpKindColor, Name: "foreground", Slot: "foreground", Color: c})
		case AttrClass:
			r.resolveClass(attr.Value, &res)
		}
	}
	res.Ops = collapse(res.Ops)
	return res
}

// ResolveClass resolves a whitespace-separated class string on its own.
func (r *Resolver) ResolveClass(class string) Resolution {
	var res Resolution
	r.resolveClass(class, &res)
	res.Ops = collapse(res.Ops)
	return res
}

func (r *Resolver) resolveClass(class string, res *Resolution) {
	for _, token := range strings.Fields(class) {
		op, ok, err := r.resolveToken(token)
		if err != nil {
			res.Errors = append(res.Errors, err)
		}
		if ok {
			res.Ops = append(res.Ops, op)
		}
	}
}

// resolveToken maps one class token to an operation: enumerated lookup
// first, then the parameterized patterns. Unknown tokens are not errors -
// markup is allowed to carry vocabulary this program does not know yet.
func (r *Resolver) resolveToken(token string) (Op, bool, error) {
	if op, ok := classTable[token]; ok {
		return op, true, nil
	}

	if m := bgPattern.FindStringSubmatch(token); m != nil {
		c, err := ParseHexColor(m[1])
		if err != nil {
			r.log.Warn("Ignoring bad background token", zap.String("token", token), zap.Error(err))
			return Op{}, false, err
		}
		return Op{Kind: OpKindColor, Name: "background", Slot: "background", Color: c}, true, nil
	}

	if m := roundedPattern.FindStringSubmatch(token); m != nil {
		slot := "rounding"
		if len(m[1]) > 0 {
			slot += "-" + m[1]
		}
		length, err := parseLength(m[2])
		if err != nil {
			r.log.Warn("Falling back to zero length", zap.String("token", token), zap.Error(err))
		}
		return Op{Kind: OpKindScalar, Name: slot, Slot: slot, Length: length}, true, err
	}

	r.log.Debug("Unknown class token, ignoring", zap.String("token", token))
	return Op{}, false, nil
}

// parseLength extracts the longest leading digit/decimal run of the literal
// and maps the remaining suffix to a unit. Anything unparseable falls back
// to zero pixels so one bad token cannot take the element down.
func parseLength(lit string) (Length, error) {
	s := strings.TrimSpace(lit)

	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' {
			numEnd = i + 1
		} else {
			break
		}
	}
	if numEnd == 0 {
		return Length{Unit: UnitPx}, &LengthError{Literal: lit, Reason: "missing numeric value"}
	}
	value, err := strconv.ParseFloat(s[:numEnd], 64)
	if err != nil {
		return Length{Unit: UnitPx}, &LengthError{Literal: lit, Reason: "bad numeric value"}
	}

	switch strings.ToLower(s[numEnd:]) {
	case "px", "":
		return Length{Value: value, Unit: UnitPx}, nil
	case "rem", "em":
		return Length{Value: value, Unit: UnitRem}, nil
	}
	return Length{Unit: UnitPx}, &LengthError{Literal: lit, Reason: "unknown unit " + strconv.Quote(s[numEnd:])}
}

// collapse keeps the last operation per slot. Relative order of the
// surviving operations follows their position in the token sequence.
func collapse(ops []Op) []Op {
	if len(ops) < 2 {
		return ops
	}
	seen := make(map[string]struct{}, len(ops))
	out := make([]Op, 0, len(ops))
	for i := len(ops) - 1; i >= 0; i-- {
		if _, dup := seen[ops[i].Slot]; dup {
			continue
		}
		seen[ops[i].Slot] = struct{}{}
		out = append(out, ops[i])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
