package internal

import (
	"bytes"
	"strconv"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/scenario/scenarioapi"
)

// A Key is a dotted lookup key. The first segment is the name of the data key and the
// remaining segments are used to dig into its value. A segment may be quoted with single or
// double quotes when it contains dots. Integer segments index lists.
type Key struct {
	orig  string
	parts []interface{}
}

// NewKey parses the given string into a Key
func NewKey(str string) *Key {
	b := bytes.NewBufferString(``)
	return &Key{str, parseUnquoted(b, str, str, []interface{}{})}
}

// Dig returns the value found by following the segments after the root segment, or nil when
// some segment doesn't exist.
func (k *Key) Dig(v scenarioapi.Value) scenarioapi.Value {
	for i := 1; i < len(k.parts); i++ {
		p := k.parts[i]
		switch vc := v.(type) {
		case scenarioapi.List:
			if ix, ok := p.(int); ok {
				if ix >= 0 && ix < len(vc) {
					v = vc[ix]
					continue
				}
				return nil
			}
		case *scenarioapi.Map:
			var kx string
			if ix, ok := p.(int); ok {
				kx = strconv.Itoa(ix)
			} else {
				kx = p.(string)
			}
			var ok bool
			if v, ok = vc.Get(kx); ok {
				continue
			}
			return nil
		case nil:
			return nil
		}
		panic(scenarioapi.Error(scenarioapi.DigMismatch, issue.H{`type`: v.Kind().String(), `segment`: p, `key`: k.orig}))
	}
	return v
}

func (k *Key) Parts() []interface{} {
	return k.parts
}

func (k *Key) String() string {
	return k.orig
}

func (k *Key) Root() string {
	return k.parts[0].(string)
}

func parseUnquoted(b *bytes.Buffer, key, part string, parts []interface{}) []interface{} {
	mungedPart := func(ix int, part string) interface{} {
		if ix > 0 {
			if i, err := strconv.ParseInt(part, 10, 32); err == nil {
				return int(i)
			}
		}
		if part == `` {
			panic(scenarioapi.Error(scenarioapi.EmptyKeySegment, issue.H{`key`: key}))
		}
		return part
	}

	for i, c := range part {
		switch c {
		case '\'', '"':
			return parseQuoted(b, c, key, part[i+1:], parts)
		case '.':
			parts = append(parts, mungedPart(len(parts), b.String()))
			b.Reset()
		default:
			b.WriteRune(c)
		}
	}
	return append(parts, mungedPart(len(parts), b.String()))
}

func parseQuoted(b *bytes.Buffer, q rune, key, part string, parts []interface{}) []interface{} {
	for i, c := range part {
		if c == q {
			if i == len(part)-1 {
				return append(parts, b.String())
			}
			return parseUnquoted(b, key, part[i+1:], parts)
		}
		b.WriteRune(c)
	}
	panic(scenarioapi.Error(scenarioapi.UnterminatedQuote, issue.H{`key`: key}))
}
