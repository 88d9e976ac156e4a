package keys

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"zmk-locale-generator/internal/hid"
)

var (
	defineRe = regexp.MustCompile(`^\s*#define\s+([A-Za-z_][A-Za-z0-9_]*)\s+(.+)$`)
	callRe   = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\((.*)\)$`)
	identRe  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

const usageMacro = "ZMK_HID_USAGE"

// HeaderParser reads key definitions from ZMK style C headers.
//
// Numeric #define constants are remembered across calls to Parse so that a
// keys header can refer to page and id constants from previously parsed
// headers. Function-like macros and unrecognized values are ignored.
type HeaderParser struct {
	log    zerolog.Logger
	consts map[string]uint64
}

// NewHeaderParser creates a parser with no known constants.
func NewHeaderParser(log zerolog.Logger) *HeaderParser {
	return &HeaderParser{
		log:    log,
		consts: make(map[string]uint64),
	}
}

// Parse reads #define lines from r and returns the key entries they declare.
func (p *HeaderParser) Parse(r io.Reader) (*Table, error) {
	table := NewTable()
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		m := defineRe.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}

		name, value := m[1], stripParens(stripComment(m[2]))
		if value == "" {
			continue
		}

		if err := p.define(table, name, value); err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", lineNo, name, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	return table, nil
}

func (p *HeaderParser) define(table *Table, name, value string) error {
	if n, ok := parseNumber(value); ok {
		p.consts[name] = n
		return nil
	}

	if identRe.MatchString(value) {
		if n, ok := p.consts[value]; ok {
			p.consts[name] = n
			return nil
		}

		table.SetAlias(name, value)

		return nil
	}

	usage, ok, err := p.parseUsage(value)
	if err != nil {
		return err
	}

	if !ok {
		p.log.Debug().Str("key", name).Str("value", value).Msg("skipped unsupported key definition")
		return nil
	}

	table.SetUsage(name, usage)

	return nil
}

// parseUsage parses ZMK_HID_USAGE(page, id), optionally wrapped in modifier
// macros. ok is false for expressions that are not usages.
func (p *HeaderParser) parseUsage(expr string) (hid.Usage, bool, error) {
	m := callRe.FindStringSubmatch(stripParens(expr))
	if m == nil {
		return hid.Usage{}, false, nil
	}

	fn, args := m[1], m[2]

	if fn == usageMacro {
		parts := strings.Split(args, ",")
		if len(parts) != 2 {
			return hid.Usage{}, false, fmt.Errorf("%s expects 2 arguments, got %d", usageMacro, len(parts))
		}

		page, err := p.value(parts[0])
		if err != nil {
			return hid.Usage{}, false, err
		}

		id, err := p.value(parts[1])
		if err != nil {
			return hid.Usage{}, false, err
		}

		return hid.NewUsage(page, id), true, nil
	}

	mod, isMod := hid.ModifierForMacro(fn)
	if !isMod {
		return hid.Usage{}, false, nil
	}

	// Modifiers around a key name can't be represented as a plain alias.
	inner, ok, err := p.parseUsage(args)
	if err != nil || !ok {
		return hid.Usage{}, ok, err
	}

	return inner.WithModifiers(hid.NewModifiers(mod)), true, nil
}

func (p *HeaderParser) value(s string) (uint16, error) {
	s = stripParens(strings.TrimSpace(s))

	n, ok := parseNumber(s)
	if !ok {
		n, ok = p.consts[s]
	}

	if !ok {
		return 0, fmt.Errorf("%w: undefined constant %q", ErrInvalidReference, s)
	}

	if n > 0xFFFF {
		return 0, fmt.Errorf("value %s out of range", s)
	}

	return uint16(n), nil
}

func parseNumber(s string) (uint64, bool) {
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, false
	}

	return n, true
}

func stripComment(s string) string {
	if i := strings.Index(s, "//"); i >= 0 {
		s = s[:i]
	}

	if i := strings.Index(s, "/*"); i >= 0 {
		s = s[:i]
	}

	return strings.TrimSpace(s)
}

// stripParens removes balanced parentheses wrapping the whole expression.
func stripParens(s string) string {
	s = strings.TrimSpace(s)

	for len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' && closingParen(s) == len(s)-1 {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	return s
}

// closingParen returns the index of the parenthesis closing s[0], or -1.
func closingParen(s string) int {
	depth := 0

	for i, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
