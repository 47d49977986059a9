package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a config item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRemove(args[0])
	},
}

func runRemove(name string) error {
	fs, s, err := openStore()
	if err != nil {
		return err
	}

	if err := s.Remove(name); err != nil {
		return err
	}

	fmt.Printf("Removed config item %s\n", nameColor.Sprint(name))
	return fs.Save(s)
}
