package push3

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseError is a host-level error returned by Parse: lexical or structural
// failure, oversize program, or disallowed numeric form.
type ParseError struct {
	Msg string
}

func (e ParseError) Error() string { return "push3: parse error: " + e.Msg }

// Parse tokenizes src and classifies each token, returning the top-level
// program as a single List Value. cache resolves instruction names; cfg
// enforces MaxPointsInProgram.
func Parse(src string, cache *Cache, cfg Configuration) (Value, error) {
	toks, err := tokenize(src)
	if err != nil {
		return Value{}, err
	}

	p := &parser{toks: toks, cache: cache}
	items, err := p.parseItems(true)
	if err != nil {
		return Value{}, err
	}
	program := Value{Kind: KindList, List: items}

	if cfg.MaxPointsInProgram > 0 && program.Points() > cfg.MaxPointsInProgram {
		return Value{}, ParseError{Msg: fmt.Sprintf(
			"program has %d points, exceeds max_points_in_program %d",
			program.Points(), cfg.MaxPointsInProgram)}
	}
	return program, nil
}

func tokenize(src string) ([]string, error) {
	var toks []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	for _, r := range src {
		switch {
		case r == '(' || r == ')':
			flush()
			toks = append(toks, string(r))
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return toks, nil
}

type parser struct {
	toks  []string
	pos   int
	cache *Cache
}

// parseItems parses a sequence of items until the matching ')' (or EOF at
// the top level, where top is true). It does not consume the closing ')'.
func (p *parser) parseItems(top bool) (List, error) {
	var items List
	for p.pos < len(p.toks) {
		tok := p.toks[p.pos]
		if tok == ")" {
			if top {
				return nil, ParseError{Msg: "unmatched ')'"}
			}
			return items, nil
		}
		v, err := p.parseOne()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	if !top {
		return nil, ParseError{Msg: "unmatched '('"}
	}
	return items, nil
}

func (p *parser) parseOne() (Value, error) {
	tok := p.toks[p.pos]
	if tok == "(" {
		p.pos++
		items, err := p.parseItems(false)
		if err != nil {
			return Value{}, err
		}
		if p.pos >= len(p.toks) || p.toks[p.pos] != ")" {
			return Value{}, ParseError{Msg: "unmatched '('"}
		}
		p.pos++
		return Value{Kind: KindList, List: items}, nil
	}
	p.pos++
	return classifyToken(tok, p.cache)
}

// classifyToken implements the classification order: integer, float,
// boolean, instruction, else NameLit.
func classifyToken(tok string, cache *Cache) (Value, error) {
	if v, ok := parseIntLit(tok); ok {
		return v, nil
	}
	if v, ok, err := parseFloatLit(tok); ok || err != nil {
		if err != nil {
			return Value{}, err
		}
		return v, nil
	}
	switch strings.ToUpper(tok) {
	case "TRUE":
		return Bool(true), nil
	case "FALSE":
		return Bool(false), nil
	}
	if cache != nil {
		if _, ok := cache.Lookup(tok); ok {
			return Instr(CanonicalName(tok)), nil
		}
	}
	return Name(tok), nil
}

// parseIntLit accepts an optional sign followed by digits only.
func parseIntLit(tok string) (Value, bool) {
	s := tok
	if len(s) == 0 {
		return Value{}, false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if len(s) == 0 {
		return Value{}, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return Value{}, false
		}
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return Value{}, false
	}
	return Int(n), true
}

// parseFloatLit accepts an optional sign, digits, a mandatory decimal point
// with at least one digit on one side, and an optional exponent. The
// permissive form ".5" is accepted. Non-finite results (overflow to +/-Inf,
// or NaN) are rejected as parse errors.
func parseFloatLit(tok string) (Value, bool, error) {
	if !looksLikeFloat(tok) {
		return Value{}, false, nil
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return Value{}, false, ParseError{Msg: fmt.Sprintf("invalid float literal %q", tok)}
	}
	if isNonFinite(f) {
		return Value{}, false, ParseError{Msg: fmt.Sprintf("non-finite float literal %q disallowed", tok)}
	}
	return Float(f), true, nil
}

func isNonFinite(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}

// looksLikeFloat implements the grammar: optional sign, digits,
// mandatory '.', at least one digit on one side of it, optional exponent.
func looksLikeFloat(tok string) bool {
	i, n := 0, len(tok)
	if n == 0 {
		return false
	}
	if tok[i] == '+' || tok[i] == '-' {
		i++
	}
	start := i
	for i < n && isDigit(tok[i]) {
		i++
	}
	intDigits := i - start
	if i >= n || tok[i] != '.' {
		return false
	}
	i++
	fracStart := i
	for i < n && isDigit(tok[i]) {
		i++
	}
	fracDigits := i - fracStart
	if intDigits == 0 && fracDigits == 0 {
		return false
	}
	if i < n && (tok[i] == 'e' || tok[i] == 'E') {
		i++
		if i < n && (tok[i] == '+' || tok[i] == '-') {
			i++
		}
		expStart := i
		for i < n && isDigit(tok[i]) {
			i++
		}
		if i == expStart {
			return false
		}
	}
	return i == n
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
