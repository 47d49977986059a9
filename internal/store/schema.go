package store

import (
	"fmt"

	"github.com/icelava/switchy/internal/item"
)

// Item kind tags as written to the config file.
const kindCommand = "command"

// configFile is the on-disk shape of the whole store.
type configFile struct {
	Items []itemRecord `toml:"items"`
}

// itemRecord is one [[items]] table. Type tags the item kind so new kinds
// can be added without changing the file layout.
type itemRecord struct {
	Type    string        `toml:"type"`
	Name    string        `toml:"name"`
	Current string        `toml:"current"`
	States  []stateRecord `toml:"states"`
}

// stateRecord is one [[items.states]] table.
type stateRecord struct {
	Name    string `toml:"name"`
	Command string `toml:"command"`
}

// toModel converts a decoded record to a model item.
func (r itemRecord) toModel() (item.Item, error) {
	switch r.Type {
	case kindCommand:
		states := make([]item.State, len(r.States))
		for i, s := range r.States {
			states[i] = item.State{Name: s.Name, Command: s.Command}
		}
		return item.RestoreCommandItem(r.Name, r.Current, states), nil
	default:
		return nil, fmt.Errorf("%w: item %q has unknown type %q", ErrParse, r.Name, r.Type)
	}
}

// toRecord converts a model item to its on-disk record.
func toRecord(it item.Item) (itemRecord, error) {
	switch v := it.(type) {
	case *item.CommandItem:
		states := v.States()
		records := make([]stateRecord, len(states))
		for i, s := range states {
			records[i] = stateRecord{Name: s.Name, Command: s.Command}
		}
		return itemRecord{
			Type:    kindCommand,
			Name:    v.Name(),
			Current: v.CurrentState(),
			States:  records,
		}, nil
	default:
		return itemRecord{}, fmt.Errorf("%w: unknown item type %T", ErrSerialize, it)
	}
}
