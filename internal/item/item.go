// Package item defines the config item model.
//
// An item is a named thing with a set of mutually exclusive named states,
// exactly one of which is current. Switching state runs the state's shell
// command. There is currently one item kind (command item); all kind-specific
// behavior sits behind the Item interface so future kinds slot in without
// touching callers.
package item

import (
	"fmt"

	"github.com/icelava/switchy/internal/shell"
)

// State is a named shell command belonging to an item. The command string is
// opaque: it is never parsed or validated, only handed to the shell.
type State struct {
	// Name identifies the state, unique within its item
	Name string

	// Command is the shell command run when the state becomes current
	Command string
}

// Item is a config item of some kind.
type Item interface {
	// Name returns the item's unique name.
	Name() string

	// Kind returns a human-readable label for the item's kind.
	Kind() string

	// CurrentState returns the name of the currently active state.
	CurrentState() string

	// StateNames returns the state names in their defined order.
	StateNames() []string

	// Transition makes stateName the current state and, if a state with
	// that name exists, runs its command through r. It mutates the item in
	// place and does not persist; persisting is the caller's job.
	Transition(stateName string, r shell.Runner) error
}

// CommandItem is an item whose states each carry a shell command.
type CommandItem struct {
	name    string
	current string
	states  []State
}

// NewCommandItem creates a CommandItem with the given states. The first
// state becomes current. The item name must be non-empty and every state
// needs a non-empty name unique within the item.
func NewCommandItem(name string, states []State) (*CommandItem, error) {
	if name == "" {
		return nil, fmt.Errorf("item name is empty")
	}
	if len(states) == 0 {
		return nil, fmt.Errorf("item %q needs at least one state", name)
	}

	seen := make(map[string]bool, len(states))
	for _, s := range states {
		if s.Name == "" {
			return nil, fmt.Errorf("item %q has a state with an empty name", name)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("item %q has duplicate state %q", name, s.Name)
		}
		seen[s.Name] = true
	}

	return &CommandItem{
		name:    name,
		current: states[0].Name,
		states:  append([]State(nil), states...),
	}, nil
}

// RestoreCommandItem rebuilds a CommandItem from persisted fields. Unlike
// NewCommandItem it keeps the stored current value as-is, since a transition
// may have set it to a name outside the state list.
func RestoreCommandItem(name, current string, states []State) *CommandItem {
	return &CommandItem{
		name:    name,
		current: current,
		states:  append([]State(nil), states...),
	}
}

// Name returns the item's unique name.
func (c *CommandItem) Name() string {
	return c.name
}

// Kind returns the human-readable kind label.
func (c *CommandItem) Kind() string {
	return "Command"
}

// CurrentState returns the name of the currently active state.
func (c *CommandItem) CurrentState() string {
	return c.current
}

// StateNames returns the state names in their defined order.
func (c *CommandItem) StateNames() []string {
	names := make([]string, len(c.states))
	for i, s := range c.states {
		names[i] = s.Name
	}
	return names
}

// States returns a copy of the item's states.
func (c *CommandItem) States() []State {
	return append([]State(nil), c.states...)
}

// Transition makes stateName current and runs its command.
//
// The current state is updated even when stateName matches no state; in that
// case no command runs and no error is reported. There is no rollback if the
// command fails to start.
func (c *CommandItem) Transition(stateName string, r shell.Runner) error {
	c.current = stateName

	for _, s := range c.states {
		if s.Name == stateName {
			return r.Run(s.Command)
		}
	}
	return nil
}
