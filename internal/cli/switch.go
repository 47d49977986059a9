package cli

import (
	"fmt"

	"github.com/icelava/switchy/internal/prompt"
)

func runSwitch(args []string) error {
	fs, s, err := openStore()
	if err != nil {
		return err
	}

	if s.Len() == 0 {
		return fmt.Errorf("no config items yet. Use `switchy add` to add one, `switchy --help` for more")
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	names := s.Names()
	index, ok := matchName(names, query)
	if !ok {
		opts := []prompt.SelectOption{prompt.WithFilter()}
		if query != "" {
			opts = append(opts, prompt.WithInitial(query))
		}
		index, err = prompt.Select("Config item", names, opts...)
		if err != nil {
			return err
		}
	}

	it, _ := s.Get(names[index])

	stateNames := it.StateNames()
	currentIndex := 0
	for i, name := range stateNames {
		if name == it.CurrentState() {
			currentIndex = i
			break
		}
	}

	stateIndex, err := prompt.Select("State", stateNames,
		prompt.WithFilter(), prompt.WithDefault(currentIndex))
	if err != nil {
		return err
	}
	target := stateNames[stateIndex]

	if target == it.CurrentState() {
		again, err := prompt.Confirm(fmt.Sprintf("%s is the current state. Run it again?", target), false)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}

	fmt.Printf("Switching %s => %s\n", nameColor.Sprint(it.Name()), stateColor.Sprint(target))

	if err := it.Transition(target, newRunner()); err != nil {
		return err
	}
	return fs.Save(s)
}
