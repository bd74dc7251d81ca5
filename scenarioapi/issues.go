package scenarioapi

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/lyraproj/issue/issue"
)

const (
	ClassGroupCycle         = `SCENARIO_CLASS_GROUP_CYCLE`
	ClassGroupNotFound      = `SCENARIO_CLASS_GROUP_NOT_FOUND`
	ConfigNotFound          = `SCENARIO_CONFIG_NOT_FOUND`
	DataMappingNotFound     = `SCENARIO_DATA_MAPPING_NOT_FOUND`
	DigMismatch             = `SCENARIO_DIG_MISMATCH`
	EmptyKeySegment         = `SCENARIO_EMPTY_KEY_SEGMENT`
	InterpolationFailed     = `SCENARIO_INTERPOLATION_FAILED`
	InvalidDataMapping      = `SCENARIO_INVALID_DATA_MAPPING`
	InvalidHierarchy        = `SCENARIO_INVALID_HIERARCHY`
	InvalidNameList         = `SCENARIO_INVALID_NAME_LIST`
	KeyNotFound             = `SCENARIO_KEY_NOT_FOUND`
	NotAHash                = `SCENARIO_NOT_A_HASH`
	NodeDataBindingsMissing = `SCENARIO_NODE_DATA_BINDINGS_MISSING`
	RoleMappingsNotFound    = `SCENARIO_ROLE_MAPPINGS_NOT_FOUND`
	ScenarioFileNotFound    = `SCENARIO_FILE_NOT_FOUND`
	ScenarioNotDefined      = `SCENARIO_NOT_DEFINED`
	UnknownRole             = `SCENARIO_UNKNOWN_ROLE`
	UnterminatedQuote       = `SCENARIO_UNTERMINATED_QUOTE`
	UnreadableSource        = `SCENARIO_UNREADABLE_SOURCE`
	InvalidVariableArgument = `SCENARIO_INVALID_VARIABLE_ARGUMENT`
)

func joinNames(v interface{}) string {
	if names, ok := v.([]string); ok {
		return strings.Join(names, ` -> `)
	}
	return fmt.Sprintf("%v", v)
}

func init() {
	issue.Hard2(ClassGroupCycle, `Recursive class group detected in [%{name_stack}]`, issue.HF{`name_stack`: joinNames})

	issue.Hard(ClassGroupNotFound, `Group file for class group '%{name}' does not exist`)

	issue.Hard(ConfigNotFound, `%{path} must exist`)

	issue.Hard(DataMappingNotFound, `data mapping %{key} not found, required by parameter '%{param}' of active class '%{class}'`)

	issue.Hard(DigMismatch, `Got %{type} when a hash-like object was expected to access value using '%{segment}' from key '%{key}'`)

	issue.Hard(EmptyKeySegment, `key '%{key}' contains an empty segment`)

	issue.Hard(InterpolationFailed, `Interpolation for %{name} failed`)

	issue.Hard(InvalidDataMapping, `data mapping '%{key}' in source '%{source}' must be a string or a list of strings`)

	issue.Hard(InvalidHierarchy, `hierarchy in '%{path}' must be a list of strings or hashes`)

	issue.Hard(InvalidNameList, `%{what} in '%{source}' must be a list of strings`)

	issue.Hard(InvalidVariableArgument, `unable to parse variable '%{arg}'`)

	issue.Hard(KeyNotFound, `no value found for key '%{key}'`)

	issue.Hard(NodeDataBindingsMissing, `expected variable %{name} to be set by the node classifier`)

	issue.Hard(NotAHash, `Source '%{path}' does not contain a YAML hash`)

	issue.Hard(RoleMappingsNotFound, `Role mapping file: %{path} should exist`)

	issue.Hard(ScenarioFileNotFound, `scenario file for '%{name}' does not exist`)

	issue.Hard(ScenarioNotDefined, `scenario must be defined in config.yaml`)

	issue.Hard(UnknownRole, `Role '%{role}' is not defined in scenario '%{scenario}'`)

	issue.Hard(UnreadableSource, `Unable to read source '%{path}': %{detail}`)

	issue.Hard(UnterminatedQuote, `Unterminated quote in key '%{key}'`)
}

// Error creates an issue.Reported for the given code and arguments. The engine panics with
// the returned value and the public API recovers it using Catch.
func Error(code issue.Code, args issue.H) issue.Reported {
	return issue.NewReported(code, issue.SeverityError, args, 1)
}

// Catch calls the given function and recovers any error that it panics with. Runtime errors
// and panics with values that aren't errors are propagated.
func Catch(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				if _, rt := e.(runtime.Error); !rt {
					err = e
					return
				}
			}
			panic(r)
		}
	}()
	f()
	return
}

// IsIssue returns true when the given error is an issue.Reported with the given code.
func IsIssue(err error, code issue.Code) bool {
	if r, ok := err.(issue.Reported); ok {
		return r.Code() == code
	}
	return false
}
