// Command yaml2json converts a scenario source in YAML on stdin to indented JSON on stdout. The
// order of hash keys is retained.
package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"os"

	"github.com/lyraproj/scenario/scenarioapi"
)

func convert(in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	v, err := scenarioapi.UnmarshalYAML(data)
	if err != nil {
		return err
	}
	bs, err := json.Marshal(v)
	if err != nil {
		return err
	}
	ib := bytes.Buffer{}
	if err = json.Indent(&ib, bs, ``, ` `); err != nil {
		return err
	}
	ib.WriteByte('\n')
	_, err = ib.WriteTo(out)
	return err
}

func main() {
	if err := convert(os.Stdin, os.Stdout); err != nil {
		log.Fatal(err.Error())
	}
}
