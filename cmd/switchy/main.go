package main

import (
	"errors"
	"os"

	"github.com/icelava/switchy/internal/cli"
	"github.com/icelava/switchy/internal/prompt"
)

var version = "dev"

func main() {
	cli.SetVersion(version)

	err := cli.Execute()
	if err == nil {
		return
	}

	// Backing out of a prompt is a deliberate stop, not a failure.
	if errors.Is(err, prompt.ErrCancelled) {
		return
	}

	cli.ReportError(err)
	os.Exit(1)
}
