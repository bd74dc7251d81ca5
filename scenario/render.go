package scenario

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lyraproj/scenario/scenarioapi"
	"gopkg.in/yaml.v3"
)

// RenderName is the name of the option value that describes how to render output
type RenderName string

const (
	// YAML render output in YAML
	YAML = RenderName(`yaml`)
	// JSON render output in JSON
	JSON = RenderName(`json`)
	// Text render output as plain text
	Text = RenderName(`s`)
)

// Render renders a value on a writer using a specified RenderName
func Render(renderAs RenderName, value scenarioapi.Value, out io.Writer) error {
	var err error
	switch renderAs {
	case JSON:
		var bs []byte
		if bs, err = json.Marshal(value); err == nil {
			_, err = fmt.Fprintln(out, string(bs))
		}
	case YAML:
		if value == nil {
			_, err = io.WriteString(out, "\n")
			break
		}
		var bs []byte
		if bs, err = yaml.Marshal(value); err == nil {
			_, err = out.Write(bs)
		}
	case Text:
		if value == nil {
			_, err = io.WriteString(out, "\n")
		} else {
			_, err = fmt.Fprintln(out, value.String())
		}
	default:
		err = fmt.Errorf(`unknown rendering '%s'`, renderAs)
	}
	return err
}

// RenderStrings renders a list of strings
func RenderStrings(renderAs RenderName, values []string, out io.Writer) error {
	if renderAs == Text {
		for _, v := range values {
			if _, err := fmt.Fprintln(out, v); err != nil {
				return err
			}
		}
		return nil
	}
	return Render(renderAs, scenarioapi.StringList(values...), out)
}
