package internal

import (
	"regexp"
	"strings"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/scenario/scenarioapi"
)

var iplPattern = regexp.MustCompile(`%\{([^\}]*)\}`)

// A Resolver returns the value that an interpolation expression refers to
type Resolver func(name string) (scenarioapi.Value, bool)

// ScopeResolver resolves names using the given maps. The first map that contains the name wins.
func ScopeResolver(scopes ...*scenarioapi.Map) Resolver {
	return func(name string) (scenarioapi.Value, bool) {
		for _, s := range scopes {
			if v, ok := s.Get(name); ok {
				return v, true
			}
		}
		return nil, false
	}
}

// HasInterpolation returns true if the string contains at least one placeholder
func HasInterpolation(str string) bool {
	return strings.Contains(str, `%{`) && iplPattern.MatchString(str)
}

// Interpolate resolves all placeholders in the given value. Strings are interpolated, lists
// are interpolated element by element, and all other values are returned unchanged. The
// result of an interpolation is never scanned again. Non-string list elements are kept as
// is; use InterpolateNames for lists that must contain names only.
func Interpolate(value scenarioapi.Value, r Resolver) scenarioapi.Value {
	switch v := value.(type) {
	case scenarioapi.String:
		return scenarioapi.String(InterpolateString(string(v), r))
	case scenarioapi.List:
		var cp scenarioapi.List
		for i, e := range v {
			ie := Interpolate(e, r)
			if cp == nil && !scenarioapi.Equal(e, ie) {
				cp = make(scenarioapi.List, len(v))
				copy(cp, v[:i])
			}
			if cp != nil {
				cp[i] = ie
			}
		}
		if cp == nil {
			return v
		}
		return cp
	default:
		return value
	}
}

// InterpolateString replaces every %{name} in the given string with the value that the
// resolver returns for name. A name that is not found, or that resolves to an absent or
// false value, is an error.
func InterpolateString(str string, r Resolver) string {
	result, missing := tryInterpolateString(str, r)
	if missing != `` {
		panic(scenarioapi.Error(scenarioapi.InterpolationFailed, issue.H{`name`: missing}))
	}
	return result
}

// TryInterpolateString is like InterpolateString but returns the empty string and false
// instead of raising an error when a name cannot be resolved.
func TryInterpolateString(str string, r Resolver) (string, bool) {
	result, missing := tryInterpolateString(str, r)
	if missing != `` {
		return ``, false
	}
	return result, true
}

func tryInterpolateString(str string, r Resolver) (result, missing string) {
	if !strings.Contains(str, `%{`) {
		return str, ``
	}
	result = iplPattern.ReplaceAllStringFunc(str, func(match string) string {
		if missing != `` {
			return ``
		}
		name := strings.TrimSpace(match[2 : len(match)-1])
		if v, ok := r(name); ok && scenarioapi.Truthy(v) {
			return v.String()
		}
		missing = name
		if missing == `` {
			missing = match
		}
		return ``
	})
	return
}

// InterpolateNames converts the given value into a list of names with interpolated elements.
// The value must be absent, a string, or a list of strings. The what and source arguments
// are used in the error message.
func InterpolateNames(value scenarioapi.Value, r Resolver, what, source string) []string {
	names := NameList(value, what, source)
	for i, n := range names {
		names[i] = InterpolateString(n, r)
	}
	return names
}

// NameList converts the given value into a list of names. The value must be absent, a
// string, or a list of strings.
func NameList(value scenarioapi.Value, what, source string) []string {
	switch v := value.(type) {
	case nil:
		return []string{}
	case scenarioapi.String:
		return []string{string(v)}
	case scenarioapi.List:
		if ss, ok := v.Strings(); ok {
			return ss
		}
	}
	panic(scenarioapi.Error(scenarioapi.InvalidNameList, issue.H{`what`: what, `source`: source}))
}
