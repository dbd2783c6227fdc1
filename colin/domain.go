package colin

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Tags recognized inside the Domain element.
const (
	TagReal    = "Real"
	TagInteger = "Integer"
	TagBinary  = "Binary"
)

// DroppedToken records a Real or Integer token that did not parse as a numeric literal.
// Dropped tokens are skipped, not fatal.
type DroppedToken struct {
	Tag   string
	Token string
	Err   error
}

// ParseDomain builds a MixedIntVars from the direct children of a Domain element.
// Real and Integer text is split on whitespace and each token parsed with
// ParseReal / ParseInteger. Binary text is scanned rune by rune: '1' and '0'
// append a bit, every other rune is ignored. Children with empty text and
// unrecognized tags contribute nothing.
func ParseDomain(domain *Element) (*MixedIntVars, []DroppedToken) {
	vars := NewMixedIntVars()
	var dropped []DroppedToken
	for i := range domain.Children {
		child := &domain.Children[i]
		text := child.TrimmedText()
		if text == "" {
			continue
		}
		switch child.Name() {
		case TagReal:
			for _, tok := range strings.Fields(text) {
				v, err := ParseReal(tok)
				if err != nil {
					dropped = append(dropped, DroppedToken{Tag: TagReal, Token: tok, Err: err})
					continue
				}
				vars.Reals = append(vars.Reals, v)
			}
		case TagInteger:
			for _, tok := range strings.Fields(text) {
				v, err := ParseInteger(tok)
				if err != nil {
					dropped = append(dropped, DroppedToken{Tag: TagInteger, Token: tok, Err: err})
					continue
				}
				vars.Ints = append(vars.Ints, v)
			}
		case TagBinary:
			for _, r := range text {
				switch r {
				case '1':
					vars.Bits = append(vars.Bits, 1)
				case '0':
					vars.Bits = append(vars.Bits, 0)
				}
			}
		}
	}
	return vars, dropped
}

// ParseReal parses a single numeric literal as a float64. Decimal, exponent and
// hexadecimal float forms are accepted, as are integer literals with 0x, 0o and
// 0b prefixes. Expressions are not evaluated. Underscores, NaN and infinities
// are rejected.
func ParseReal(tok string) (float64, error) {
	if strings.Contains(tok, "_") {
		return 0, fmt.Errorf("invalid real literal %q", tok)
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		if !hasRadixPrefix(tok) {
			return 0, fmt.Errorf("invalid real literal %q", tok)
		}
		i, ierr := parseIntLiteral(tok)
		if ierr != nil {
			return 0, fmt.Errorf("invalid real literal %q", tok)
		}
		return float64(i), nil
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("real literal %q is not finite", tok)
	}
	return v, nil
}

// ParseInteger parses a single numeric literal as an int64. Integer literals
// are decimal unless they carry a 0x, 0o or 0b prefix; a leading zero does not
// mean octal, so "010" is 10 here just as it is for ParseReal. Finite float
// literals are truncated toward zero ("2.9" -> 2, "1e3" -> 1000). Values
// outside the int64 range are rejected.
func ParseInteger(tok string) (int64, error) {
	i, err := parseIntLiteral(tok)
	if err == nil {
		return i, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("integer literal %q out of range", tok)
	}
	f, ferr := ParseReal(tok)
	if ferr != nil {
		return 0, fmt.Errorf("invalid integer literal %q", tok)
	}
	f = math.Trunc(f)
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("integer literal %q out of range", tok)
	}
	return int64(f), nil
}

// parseIntLiteral parses a signed decimal or 0x/0o/0b prefixed integer.
func parseIntLiteral(tok string) (int64, error) {
	if strings.Contains(tok, "_") {
		return 0, &strconv.NumError{Func: "ParseInt", Num: tok, Err: strconv.ErrSyntax}
	}
	base := 10
	if hasRadixPrefix(tok) {
		base = 0
	}
	return strconv.ParseInt(tok, base, 64)
}

func hasRadixPrefix(tok string) bool {
	if strings.HasPrefix(tok, "+") || strings.HasPrefix(tok, "-") {
		tok = tok[1:]
	}
	if len(tok) < 2 || tok[0] != '0' {
		return false
	}
	switch tok[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return false
}
