package internal

import (
	"strings"

	"github.com/lyraproj/scenario/scenarioapi"
)

type event int

const (
	found = event(iota) + 1
	notFound
	sourceNotFound
)

type indenter struct {
	b     *strings.Builder
	level int
}

func (w *indenter) newLine() {
	if w.b.Len() > 0 {
		w.b.WriteByte('\n')
	}
	for i := 0; i < w.level; i++ {
		w.b.WriteString(`  `)
	}
}

func (w *indenter) append(s ...string) {
	for _, e := range s {
		w.b.WriteString(e)
	}
}

func (w *indenter) indent() *indenter {
	return &indenter{b: w.b, level: w.level + 1}
}

type explainNode interface {
	appendTo(w *indenter)
	base() *explainTreeNode
}

type explainTreeNode struct {
	p  explainNode
	bs []explainNode
	ts []string
	e  event
	v  scenarioapi.Value
	k  string
}

func (en *explainTreeNode) base() *explainTreeNode {
	return en
}

// appendTo of the root node. Texts that are reported outside of a lookup precede the lookups.
func (en *explainTreeNode) appendTo(w *indenter) {
	en.dumpTexts(w)
	en.dumpBranches(w)
}

func (en *explainTreeNode) dumpBranches(w *indenter) {
	for _, b := range en.bs {
		b.appendTo(w)
	}
}

func (en *explainTreeNode) dumpTexts(w *indenter) {
	for _, t := range en.ts {
		w.newLine()
		w.append(t)
	}
}

func (en *explainTreeNode) dumpOutcome(w *indenter) {
	switch en.e {
	case found:
		w.newLine()
		w.append(`Found key: "`, en.k, `" value: `)
		writeValue(w, en.v)
	case notFound:
		w.newLine()
		w.append(`No such key: "`, en.k, `"`)
	case sourceNotFound:
		w.newLine()
		w.append(`Source not found`)
	}
	en.dumpTexts(w)
}

func writeValue(w *indenter, v scenarioapi.Value) {
	switch v := v.(type) {
	case nil:
		w.append(`undef`)
	case scenarioapi.String:
		w.append(`"`, string(v), `"`)
	default:
		w.append(v.String())
	}
}

type explainLookup struct {
	explainTreeNode
}

func (en *explainLookup) appendTo(w *indenter) {
	w.newLine()
	w.append(`Searching for "`, en.k, `"`)
	w = w.indent()
	en.dumpBranches(w)
	en.dumpOutcome(w)
}

type explainSource struct {
	explainTreeNode
	category scenarioapi.Category
	source   string
}

func (en *explainSource) appendTo(w *indenter) {
	w.newLine()
	if en.category == scenarioapi.Root {
		w.append(`Source "`, en.source, `"`)
	} else {
		w.append(`Source "`, string(en.category), `/`, en.source, `"`)
	}
	w = w.indent()
	en.dumpBranches(w)
	en.dumpOutcome(w)
}

type explainAlias struct {
	explainTreeNode
	param   string
	dataKey string
}

func (en *explainAlias) appendTo(w *indenter) {
	w.newLine()
	w.append(`Data mapping "`, en.param, `" -> "`, en.dataKey, `"`)
	w = w.indent()
	en.dumpBranches(w)
	en.dumpOutcome(w)
}

// Explainer records lookups, visited sources, and followed data mappings as a tree and renders
// it as indented text.
type Explainer struct {
	explainTreeNode
	current explainNode
}

// NewExplainer creates an empty Explainer
func NewExplainer() *Explainer {
	ex := &Explainer{}
	ex.current = ex
	return ex
}

func (ex *Explainer) push(en explainNode) {
	en.base().p = ex.current
	cb := ex.current.base()
	cb.bs = append(cb.bs, en)
	ex.current = en
}

func (ex *Explainer) PushLookup(key string) {
	en := &explainLookup{}
	en.k = key
	ex.push(en)
}

func (ex *Explainer) PushSource(category scenarioapi.Category, source string) {
	ex.push(&explainSource{category: category, source: source})
}

func (ex *Explainer) PushAlias(param, dataKey string) {
	ex.push(&explainAlias{param: param, dataKey: dataKey})
}

func (ex *Explainer) Pop() {
	if p := ex.current.base().p; p != nil {
		ex.current = p
	}
}

func (ex *Explainer) AcceptFound(key string, value scenarioapi.Value) {
	en := ex.current.base()
	en.k = key
	en.v = value
	en.e = found
}

func (ex *Explainer) AcceptNotFound(key string) {
	en := ex.current.base()
	en.k = key
	en.e = notFound
}

func (ex *Explainer) AcceptSourceNotFound() {
	ex.current.base().e = sourceNotFound
}

func (ex *Explainer) AcceptText(text string) {
	en := ex.current.base()
	en.ts = append(en.ts, text)
}

func (ex *Explainer) String() string {
	w := &indenter{b: &strings.Builder{}}
	ex.explainTreeNode.appendTo(w)
	return w.b.String()
}
