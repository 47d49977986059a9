package cli

import (
	"fmt"

	"github.com/icelava/switchy/internal/config"
	"github.com/icelava/switchy/internal/shell"
	"github.com/icelava/switchy/internal/store"
)

// openStore resolves the platform config directory and loads the store.
func openStore() (*store.FileStore, *store.Store, error) {
	dir, err := config.DefaultDir()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", store.ErrValidation, err)
	}

	fs := store.NewFileStore(dir)
	s, err := fs.Load()
	if err != nil {
		return nil, nil, err
	}
	return fs, s, nil
}

// announcedRunner prints each command before handing it to the wrapped
// runner, so the user sees what a transition runs.
type announcedRunner struct {
	inner shell.Runner
}

func (r announcedRunner) Run(command string) error {
	fmt.Printf("Running %s %s\n", dollarColor.Sprint("$"), commandColor.Sprint(command))
	return r.inner.Run(command)
}

// newRunner builds the runner used by the switch flow.
func newRunner() shell.Runner {
	return announcedRunner{inner: shell.NewRealRunner()}
}
