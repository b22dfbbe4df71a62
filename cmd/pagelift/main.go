package main

import (
	"fmt"
	"os"

	"github.com/pagelift/pagelift/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Commands print their own error output; here we only map the
		// error to the process exit code.
		code := cli.GetExitCode(err)
		if code == cli.ExitCommandError {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(code)
	}
}
