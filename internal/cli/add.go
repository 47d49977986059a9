package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/icelava/switchy/internal/item"
	"github.com/icelava/switchy/internal/prompt"
	"github.com/icelava/switchy/internal/store"
)

// itemKinds lists the item kinds offered by add. One entry today; the menu
// stays so new kinds only need a case in runAdd.
var itemKinds = []string{"Command item"}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a config item",
	Long: `Add a config item with one or more states.

States are collected interactively: each needs a name and the shell command
to run when the item switches to it. The first state becomes the current one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdd(args[0])
	},
}

func runAdd(name string) error {
	fs, s, err := openStore()
	if err != nil {
		return err
	}

	// Checked before prompting so a duplicate fails fast.
	if _, ok := s.Get(name); ok {
		return fmt.Errorf("%w: %s", store.ErrExists, name)
	}

	fmt.Printf("Adding config item %s\n", nameColor.Sprint(name))

	kind, err := prompt.Select("The kind of the item", itemKinds)
	if err != nil {
		return err
	}

	var it item.Item
	switch itemKinds[kind] {
	case "Command item":
		it, err = collectCommandItem(name)
	default:
		err = fmt.Errorf("unhandled item kind %q", itemKinds[kind])
	}
	if err != nil {
		return err
	}

	if err := s.Add(it); err != nil {
		return err
	}
	return fs.Save(s)
}

// collectCommandItem prompts for the states of a new command item.
func collectCommandItem(name string) (item.Item, error) {
	var states []item.State
	for {
		if len(states) == 0 {
			fmt.Println("Adding the default state")
		} else {
			more, err := prompt.Confirm("Add another state?", false)
			if err != nil {
				return nil, err
			}
			if !more {
				break
			}
		}

		stateName, err := prompt.Input("State name")
		if err != nil {
			return nil, err
		}
		if stateName == "" {
			return nil, fmt.Errorf("%w: state name is empty", store.ErrValidation)
		}
		for _, s := range states {
			if s.Name == stateName {
				return nil, fmt.Errorf("%w: state name %q is used", store.ErrValidation, stateName)
			}
		}

		command, err := prompt.Input("State command")
		if err != nil {
			return nil, err
		}

		states = append(states, item.State{Name: stateName, Command: command})
	}

	return item.NewCommandItem(name, states)
}
