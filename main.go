package main

import (
	"os"

	"github.com/temirov/findup/cmd/cli"
)

// main executes the findup command-line application.
func main() {
	executionError := cli.Execute()
	cli.NewErrorReporter(os.Stderr).Report(executionError)
	os.Exit(cli.ExitCode(executionError))
}
