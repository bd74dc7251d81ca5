// Command lookup classifies nodes and compiles their data bindings from a scenario data directory.
package main

import (
	"fmt"
	"os"

	"github.com/lyraproj/scenario/cli"
)

func main() {
	cmd := cli.NewCommand()
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
