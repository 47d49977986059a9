package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/icelava/switchy/internal/item"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all config items",
	Long:  `Display every config item with its states, marking the current one.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList()
	},
}

func runList() error {
	_, s, err := openStore()
	if err != nil {
		return err
	}

	if s.Len() == 0 {
		fmt.Println("No config items yet.")
		return nil
	}

	fmt.Printf("Listing all %d config item(s):\n", s.Len())
	for _, it := range s.Items() {
		fmt.Println()
		fmt.Println(renderItem(it))
	}
	return nil
}

// renderItem formats one item as a name/kind header followed by one line
// per state, the current one marked with *.
func renderItem(it item.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s]", nameColor.Sprint(it.Name()), it.Kind())

	for _, name := range it.StateNames() {
		marker := " "
		if name == it.CurrentState() {
			marker = markerColor.Sprint("*")
		}
		fmt.Fprintf(&b, "\n%s %s", marker, stateColor.Sprint(name))
	}
	return b.String()
}
