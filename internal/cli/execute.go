package cli

import (
	"errors"
	"fmt"
	"io"
)

// Execute runs the command tree with the given arguments and returns the
// process exit code. Errors the commands have not already reported are
// printed to stderr.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Code == ExitFailure {
			fmt.Fprintf(stderr, "factorize: %s\n", exitErr.Message)
		}
		return exitErr.Code
	}

	// flag and argument errors raised by cobra itself
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return ExitCommandError
}
