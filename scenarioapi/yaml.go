package scenarioapi

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML parses the given bytes into a Value. An empty document yields nil.
func UnmarshalYAML(bs []byte) (Value, error) {
	var n yaml.Node
	if err := yaml.Unmarshal(bs, &n); err != nil {
		return nil, err
	}
	return FromYAMLNode(&n)
}

// FromYAMLNode converts a parsed YAML node into a Value while retaining the order of
// mapping keys.
func FromYAMLNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return FromYAMLNode(n.Content[0])
	case yaml.AliasNode:
		return FromYAMLNode(n.Alias)
	case yaml.SequenceNode:
		l := make(List, len(n.Content))
		for i, c := range n.Content {
			v, err := FromYAMLNode(c)
			if err != nil {
				return nil, err
			}
			l[i] = v
		}
		return l, nil
	case yaml.MappingNode:
		m := NewMap(len(n.Content) / 2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			kn := n.Content[i]
			if kn.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf(`line %d: hash keys must be scalars`, kn.Line)
			}
			v, err := FromYAMLNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Put(kn.Value, v)
		}
		return m, nil
	default:
		return scalar(n)
	}
}

func scalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case `!!null`:
		return nil, nil
	case `!!bool`:
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return Bool(b), nil
	case `!!int`:
		var i int64
		if err := n.Decode(&i); err != nil {
			return nil, err
		}
		return Int(i), nil
	case `!!float`:
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			var d float64
			if err = n.Decode(&d); err != nil {
				return nil, err
			}
			f = d
		}
		return Float(f), nil
	default:
		return String(n.Value), nil
	}
}
