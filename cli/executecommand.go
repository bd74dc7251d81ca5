package cli

import (
	"bytes"

	"github.com/lyraproj/scenario/scenario"
)

// ExecuteCommand executes the scenario command with the given arguments and returns its output.
// It's primarily intended for testing purposes
func ExecuteCommand(args ...string) (output []byte, err error) {
	cmdOpts = scenario.CommandOptions{}
	logLevel = ``

	cmd := NewCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs(args)

	err = cmd.Execute()

	return buf.Bytes(), err
}
