// Package cli wires the switchy commands: add, remove, list, and the
// default switch flow on the root command.
package cli

import (
	"github.com/spf13/cobra"
)

// debugMode switches error reporting from a short message to a full dump.
var debugMode bool

// rootCmd is the root command. Run without a subcommand it starts the
// switch flow, optionally seeded with an item name.
var rootCmd = &cobra.Command{
	Use:     "switchy [item]",
	Version: "dev",
	Short:   "Easily switch your config items in terminal",
	Long: `switchy keeps named config items, each with a set of named states.
Switching an item to a state runs the shell command attached to that state.

Run without arguments to pick an item and state interactively; pass an item
name (fuzzy-matched) to skip the first prompt.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSwitch(args)
	},
}

// SetVersion overrides the version reported by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Print the full error chain on failure")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(listCmd)
}
