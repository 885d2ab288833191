// Package emit renders a dom.Node tree back to canonical JSON text, the
// way peejay's emit.cpp walks a DOM and writes it out: the same
// scan-for-the-next-escape, flush-the-run string writer, controlled by a
// small indent configuration.
package emit

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mcvoid/pjson/dom"
)

// Config controls how Write renders a dom.Node.
type Config struct {
	// Indent is the string repeated once per nesting level. An empty
	// Indent produces compact output with no inserted whitespace.
	Indent string
}

// DefaultConfig pretty-prints with a two-space indent per level.
var DefaultConfig = Config{Indent: "  "}

// Compact renders with no inserted whitespace at all.
var Compact = Config{}

// Write renders n as JSON text to w using cfg.
func Write(w io.Writer, n dom.Node, cfg Config) error {
	e := &encoder{w: w, indent: cfg.Indent}
	return e.value(n, 0)
}

// String renders n as a JSON string using cfg.
func String(n dom.Node, cfg Config) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, n, cfg); err != nil {
		return "", err
	}
	return sb.String(), nil
}

type encoder struct {
	w      io.Writer
	indent string
}

func (e *encoder) write(s string) error {
	_, err := io.WriteString(e.w, s)
	return err
}

func (e *encoder) writeByte(b byte) error {
	_, err := e.w.Write([]byte{b})
	return err
}

func (e *encoder) newline(depth int) error {
	if e.indent == "" {
		return nil
	}
	if err := e.writeByte('\n'); err != nil {
		return err
	}
	for i := 0; i < depth; i++ {
		if err := e.write(e.indent); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) value(n dom.Node, depth int) error {
	switch n.Kind() {
	case dom.KindNull:
		return e.write("null")
	case dom.KindBool:
		v, _ := n.AsBool()
		return e.write(strconv.FormatBool(v))
	case dom.KindInt64:
		v, _ := n.AsInt64()
		return e.write(strconv.FormatInt(v, 10))
	case dom.KindUint64:
		v, _ := n.AsUint64()
		return e.write(strconv.FormatUint(v, 10))
	case dom.KindFloat64:
		v, _ := n.AsFloat64()
		return e.write(formatFloat(v))
	case dom.KindString:
		v, _ := n.AsString()
		return e.string(v)
	case dom.KindArray:
		return e.array(n, depth)
	case dom.KindObject:
		return e.object(n, depth)
	default:
		return fmt.Errorf("emit: unrecognized node kind %v", n.Kind())
	}
}

func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// string writes s as a quoted JSON string literal, escaping only the
// bytes RFC 8259 requires: scan for the next byte needing escape, flush
// the run up to it, then emit the short escape or \u00XX form.
func (e *encoder) string(s string) error {
	if err := e.writeByte('"'); err != nil {
		return err
	}
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		var esc string
		switch {
		case c == '"':
			esc = `\"`
		case c == '\\':
			esc = `\\`
		case c == '\b':
			esc = `\b`
		case c == '\f':
			esc = `\f`
		case c == '\n':
			esc = `\n`
		case c == '\r':
			esc = `\r`
		case c == '\t':
			esc = `\t`
		case c < 0x20:
			esc = fmt.Sprintf(`\u%04x`, c)
		default:
			continue
		}
		if err := e.write(s[start:i]); err != nil {
			return err
		}
		if err := e.write(esc); err != nil {
			return err
		}
		start = i + 1
	}
	if err := e.write(s[start:]); err != nil {
		return err
	}
	return e.writeByte('"')
}

func (e *encoder) array(n dom.Node, depth int) error {
	elems, _ := n.AsArray()
	if len(elems) == 0 {
		return e.write("[]")
	}
	if err := e.writeByte('['); err != nil {
		return err
	}
	for i, el := range elems {
		if i > 0 {
			if err := e.writeByte(','); err != nil {
				return err
			}
		}
		if err := e.newline(depth + 1); err != nil {
			return err
		}
		if err := e.value(el, depth+1); err != nil {
			return err
		}
	}
	if err := e.newline(depth); err != nil {
		return err
	}
	return e.writeByte(']')
}

func (e *encoder) object(n dom.Node, depth int) error {
	members, _ := n.AsObject()
	if len(members) == 0 {
		return e.write("{}")
	}
	if err := e.writeByte('{'); err != nil {
		return err
	}
	for i, m := range members {
		if i > 0 {
			if err := e.writeByte(','); err != nil {
				return err
			}
		}
		if err := e.newline(depth + 1); err != nil {
			return err
		}
		if err := e.string(m.Key); err != nil {
			return err
		}
		if err := e.writeByte(':'); err != nil {
			return err
		}
		if e.indent != "" {
			if err := e.writeByte(' '); err != nil {
				return err
			}
		}
		if err := e.value(m.Value, depth+1); err != nil {
			return err
		}
	}
	if err := e.newline(depth); err != nil {
		return err
	}
	return e.writeByte('}')
}
