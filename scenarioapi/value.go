package scenarioapi

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the variant of a Value
type Kind int

const (
	KindString = Kind(iota) + 1
	KindBool
	KindInt
	KindFloat
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return `String`
	case KindBool:
		return `Boolean`
	case KindInt:
		return `Integer`
	case KindFloat:
		return `Float`
	case KindList:
		return `Array`
	case KindMap:
		return `Hash`
	default:
		return `Undef`
	}
}

// A Value is one of String, Bool, Int, Float, List, or *Map. The absence of a value is
// represented by a nil Value.
type Value interface {
	fmt.Stringer

	// Kind returns the variant of this value
	Kind() Kind

	// Equals compares this value with another value. No coercion takes place
	Equals(other Value) bool
}

type (
	String string
	Bool   bool
	Int    int64
	Float  float64
	List   []Value
)

func (v String) Kind() Kind {
	return KindString
}

func (v String) String() string {
	return string(v)
}

func (v String) Equals(other Value) bool {
	o, ok := other.(String)
	return ok && o == v
}

func (v Bool) Kind() Kind {
	return KindBool
}

func (v Bool) String() string {
	return strconv.FormatBool(bool(v))
}

func (v Bool) Equals(other Value) bool {
	o, ok := other.(Bool)
	return ok && o == v
}

func (v Int) Kind() Kind {
	return KindInt
}

func (v Int) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v Int) Equals(other Value) bool {
	o, ok := other.(Int)
	return ok && o == v
}

func (v Float) Kind() Kind {
	return KindFloat
}

func (v Float) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

func (v Float) Equals(other Value) bool {
	o, ok := other.(Float)
	return ok && o == v
}

func (v List) Kind() Kind {
	return KindList
}

func (v List) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for i, e := range v {
		if i > 0 {
			b.WriteString(`, `)
		}
		writeQuoted(&b, e)
	}
	b.WriteByte(']')
	return b.String()
}

func (v List) Equals(other Value) bool {
	o, ok := other.(List)
	if !ok || len(o) != len(v) {
		return false
	}
	for i, e := range v {
		if !Equal(e, o[i]) {
			return false
		}
	}
	return true
}

// Strings returns the elements of the list as strings and true, or nil and false
// if some element is not a String
func (v List) Strings() ([]string, bool) {
	ss := make([]string, len(v))
	for i, e := range v {
		s, ok := e.(String)
		if !ok {
			return nil, false
		}
		ss[i] = string(s)
	}
	return ss, true
}

// StringList creates a List of String values
func StringList(ss ...string) List {
	l := make(List, len(ss))
	for i, s := range ss {
		l[i] = String(s)
	}
	return l
}

// Equal compares two values where either or both may be nil
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equals(b)
}

// Truthy returns false for an absent value and for Bool(false). All other values, including
// empty strings and zero, are true.
func Truthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(Bool); ok {
		return bool(b)
	}
	return true
}

// wrapUint returns a Float for values that don't fit in an Int
func wrapUint(v uint64) Value {
	if v > math.MaxInt64 {
		return Float(v)
	}
	return Int(v)
}

// Wrap converts plain Go data into a Value. Maps must have string keys (or keys that can
// be formatted as strings) and are added in sorted key order. Unknown types are converted to their String form.
func Wrap(v interface{}) Value {
	switch v := v.(type) {
	case nil:
		return nil
	case Value:
		return v
	case string:
		return String(v)
	case bool:
		return Bool(v)
	case int:
		return Int(v)
	case int32:
		return Int(v)
	case int64:
		return Int(v)
	case uint:
		return wrapUint(uint64(v))
	case uint64:
		return wrapUint(v)
	case float32:
		return Float(v)
	case float64:
		return Float(v)
	case []string:
		return StringList(v...)
	case []interface{}:
		l := make(List, len(v))
		for i, e := range v {
			l[i] = Wrap(e)
		}
		return l
	case map[string]interface{}:
		m := NewMap(len(v))
		for _, k := range sortedKeys(v) {
			m.Put(k, Wrap(v[k]))
		}
		return m
	case map[interface{}]interface{}:
		sm := make(map[string]interface{}, len(v))
		for k, e := range v {
			sm[fmt.Sprintf(`%v`, k)] = e
		}
		return Wrap(sm)
	case map[string]string:
		m := NewMap(len(v))
		for _, k := range sortedKeys(v) {
			m.Put(k, String(v[k]))
		}
		return m
	default:
		return String(fmt.Sprintf(`%v`, v))
	}
}

// Unwrap converts a Value into plain Go data
func Unwrap(v Value) interface{} {
	switch v := v.(type) {
	case nil:
		return nil
	case String:
		return string(v)
	case Bool:
		return bool(v)
	case Int:
		return int64(v)
	case Float:
		return float64(v)
	case List:
		a := make([]interface{}, len(v))
		for i, e := range v {
			a[i] = Unwrap(e)
		}
		return a
	case *Map:
		m := make(map[string]interface{}, v.Len())
		v.Each(func(k string, e Value) {
			m[k] = Unwrap(e)
		})
		return m
	default:
		return v.String()
	}
}

func writeQuoted(b *strings.Builder, v Value) {
	switch v := v.(type) {
	case nil:
		b.WriteString(`undef`)
	case String:
		b.WriteString(strconv.Quote(string(v)))
	default:
		b.WriteString(v.String())
	}
}
