package scenario

import (
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/scenario/internal"
	"github.com/lyraproj/scenario/provider"
	"github.com/lyraproj/scenario/scenarioapi"
)

// A CommandOptions contains the options given to a CLI command or a REST invocation.
type CommandOptions struct {
	// Confdir is the configuration directory
	Confdir string

	// DataDir is the root of the data store
	DataDir string

	// HieraConfig is the path of the file that contains the hierarchy
	HieraConfig string

	// FactsDir is an optional directory with one <node name>.yaml facts file per node
	FactsDir string

	// FactPaths are optional paths to files containing extra variables to add to the scope
	// and as a copy under the scope "facts" key.
	FactPaths []string

	// VarPaths are optional paths to files containing extra variables to add to the scope
	VarPaths []string

	// Variables are variables in the form <key>=<value> or <key>:<value> to add to the scope
	Variables []string

	// RenderAs is the name of the desired rendering
	RenderAs string

	// Interpolate should be set to true to interpolate compiled data
	Interpolate bool

	// ExplainData should be set to true to explain the progress of a lookup
	ExplainData bool
}

// varSplit splits on either ':' or '=' but not on '::', ':=', '=:' or '=='
var varSplit = regexp.MustCompile(`\A(.*?[^:=])[:=]([^:=].*)\z`)
var needParsePrefix = []string{`{`, `[`, `"`, `'`}

// NewResolver creates a Resolver configured by the command options
func (opts *CommandOptions) NewResolver(logger hclog.Logger, explainer scenarioapi.Explainer) *Resolver {
	var facts scenarioapi.FactFinder
	if opts.FactsDir != `` {
		facts = provider.FactsDir(opts.FactsDir)
	}
	return New(Options{
		Confdir:     opts.Confdir,
		DataDir:     opts.DataDir,
		HieraConfig: opts.HieraConfig,
		Logger:      logger,
		Facts:       facts,
		Explainer:   explainer,
		Compile:     scenarioapi.CompileOptions{InterpolateHieraData: opts.Interpolate},
	})
}

// CreateScope creates the scope from the variables, the variable files, and the fact files of
// the options.
func (opts *CommandOptions) CreateScope() (scope *scenarioapi.Map, err error) {
	err = scenarioapi.Catch(func() { scope = createScope(opts) })
	return
}

func createScope(opts *CommandOptions) *scenarioapi.Map {
	scope := scenarioapi.NewMap(0)
	for _, e := range opts.Variables {
		if m := varSplit.FindStringSubmatch(e); m != nil {
			key := strings.TrimSpace(m[1])
			scope.Put(key, parseCommandLineValue(m[2]))
		} else {
			panic(scenarioapi.Error(scenarioapi.InvalidVariableArgument, issue.H{`arg`: e}))
		}
	}

	addVarPaths(opts.VarPaths, scope)
	if len(opts.FactPaths) > 0 {
		facts := scenarioapi.NewMap(0)
		addVarPaths(opts.FactPaths, facts)
		facts.Each(scope.Put)
		scope.Put(`facts`, facts)
	}
	return scope
}

func parseCommandLineValue(vs string) scenarioapi.Value {
	vs = strings.TrimSpace(vs)
	for _, pfx := range needParsePrefix {
		if strings.HasPrefix(vs, pfx) {
			v, err := scenarioapi.UnmarshalYAML([]byte(vs))
			if err != nil {
				panic(scenarioapi.Error(scenarioapi.InvalidVariableArgument, issue.H{`arg`: vs}))
			}
			return v
		}
	}
	return scenarioapi.String(vs)
}

func addVarPaths(varPaths []string, m *scenarioapi.Map) {
	for _, vars := range varPaths {
		var bs []byte
		var err error
		if vars == `-` {
			bs, err = io.ReadAll(os.Stdin)
		} else {
			bs, err = os.ReadFile(vars)
		}
		if err != nil {
			panic(err)
		}
		if len(bs) == 0 {
			continue
		}
		data, err := provider.ParseYamlHash(vars, bs)
		if err != nil {
			panic(err)
		}
		data.Each(m.Put)
	}
}

// LookupAndRender looks up the given key and renders the result on the given writer in
// accordance with the RenderAs option. When ExplainData is set, the explanation is rendered
// instead of the value. The return value is false when the key was not found.
func LookupAndRender(opts *CommandOptions, logger hclog.Logger, key string, out io.Writer) (bool, error) {
	scope, err := opts.CreateScope()
	if err != nil {
		return false, err
	}
	var explainer *internal.Explainer
	var r *Resolver
	if opts.ExplainData {
		explainer = internal.NewExplainer()
		r = opts.NewResolver(logger, explainer)
	} else {
		r = opts.NewResolver(logger, nil)
	}
	v, err := r.GetHieraDataFromKey(key, scope)
	if explainer != nil {
		renderAs := Text
		if opts.RenderAs != `` {
			renderAs = RenderName(opts.RenderAs)
		}
		if rerr := Render(renderAs, scenarioapi.String(explainer.String()), out); rerr != nil {
			return false, rerr
		}
		return err == nil, nil
	}
	if err != nil {
		if scenarioapi.IsIssue(err, scenarioapi.KeyNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, Render(renderAsOrDefault(opts.RenderAs), v, out)
}

func renderAsOrDefault(renderAs string) RenderName {
	if renderAs == `` {
		return YAML
	}
	return RenderName(renderAs)
}
