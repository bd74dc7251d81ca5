package internal

import (
	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/scenario/scenarioapi"
	"github.com/samber/lo"
)

// An Invocation keeps track of one resolution. It holds the store, the scope used for
// interpolation, the logger, an optional explainer, and the stack of class groups that are
// currently being expanded.
//
// An Invocation is not safe for concurrent use.
type Invocation struct {
	store     scenarioapi.Store
	scope     *scenarioapi.Map
	logger    hclog.Logger
	explainer scenarioapi.Explainer
	nameStack []string
}

// NewInvocation creates a new Invocation. A nil scope is treated as an empty scope and a nil
// logger discards all output.
func NewInvocation(store scenarioapi.Store, scope *scenarioapi.Map, logger hclog.Logger, explainer scenarioapi.Explainer) *Invocation {
	if scope == nil {
		scope = scenarioapi.NewMap(0)
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Invocation{store: store, scope: scope, logger: logger, explainer: explainer, nameStack: []string{}}
}

func (ic *Invocation) Store() scenarioapi.Store {
	return ic.store
}

func (ic *Invocation) Scope() *scenarioapi.Map {
	return ic.scope
}

func (ic *Invocation) Logger() hclog.Logger {
	return ic.logger
}

// WithScope returns a copy of the receiver that uses the given scope
func (ic *Invocation) WithScope(scope *scenarioapi.Map) *Invocation {
	c := *ic
	c.scope = scope
	c.nameStack = []string{}
	return &c
}

// WithClassGroup calls the given function while the named class group is on the expansion
// stack. A name that is already on the stack means that the group includes itself.
func (ic *Invocation) WithClassGroup(name string, actor func()) {
	if lo.Contains(ic.nameStack, name) {
		panic(scenarioapi.Error(scenarioapi.ClassGroupCycle, issue.H{`name_stack`: append(append([]string{}, ic.nameStack...), name)}))
	}
	ic.nameStack = append(ic.nameStack, name)
	defer func() {
		ic.nameStack = ic.nameStack[:len(ic.nameStack)-1]
	}()
	actor()
}

// Load returns the data of the given source, or nil and false when it doesn't exist. Read
// errors are raised.
func (ic *Invocation) Load(category scenarioapi.Category, name string) (*scenarioapi.Map, bool) {
	data, ok, err := ic.store.Load(category, name)
	if err != nil {
		panic(err)
	}
	return data, ok
}

func (ic *Invocation) WithLookup(key string, actor func()) {
	if ic.explainer == nil {
		actor()
		return
	}
	defer ic.explainer.Pop()
	ic.explainer.PushLookup(key)
	actor()
}

func (ic *Invocation) WithSource(category scenarioapi.Category, source string, actor func()) {
	if ic.explainer == nil {
		actor()
		return
	}
	defer ic.explainer.Pop()
	ic.explainer.PushSource(category, source)
	actor()
}

func (ic *Invocation) WithAlias(param, dataKey string, actor func()) {
	if ic.explainer == nil {
		actor()
		return
	}
	defer ic.explainer.Pop()
	ic.explainer.PushAlias(param, dataKey)
	actor()
}

func (ic *Invocation) ReportFound(key string, value scenarioapi.Value) {
	if ic.explainer != nil {
		ic.explainer.AcceptFound(key, value)
	}
}

func (ic *Invocation) ReportNotFound(key string) {
	if ic.explainer != nil {
		ic.explainer.AcceptNotFound(key)
	}
}

func (ic *Invocation) ReportSourceNotFound() {
	if ic.explainer != nil {
		ic.explainer.AcceptSourceNotFound()
	}
}

func (ic *Invocation) ReportText(messageProducer func() string) {
	if ic.explainer != nil {
		ic.explainer.AcceptText(messageProducer())
	}
}
