package item

import (
	"errors"
	"reflect"
	"testing"
)

// fakeRunner records commands instead of spawning processes.
type fakeRunner struct {
	commands []string
	err      error
}

func (f *fakeRunner) Run(command string) error {
	f.commands = append(f.commands, command)
	return f.err
}

func testStates() []State {
	return []State{
		{Name: "debug", Command: "echo d"},
		{Name: "release", Command: "echo r"},
	}
}

func TestNewCommandItem(t *testing.T) {
	t.Run("first state becomes current", func(t *testing.T) {
		it, err := NewCommandItem("build", testStates())
		if err != nil {
			t.Fatalf("NewCommandItem failed: %v", err)
		}

		if it.Name() != "build" {
			t.Errorf("Expected name %q, got %q", "build", it.Name())
		}
		if it.CurrentState() != "debug" {
			t.Errorf("Expected current %q, got %q", "debug", it.CurrentState())
		}
		if got := it.StateNames(); !reflect.DeepEqual(got, []string{"debug", "release"}) {
			t.Errorf("Unexpected state names: %v", got)
		}
	})

	t.Run("rejects empty item name", func(t *testing.T) {
		if _, err := NewCommandItem("", testStates()); err == nil {
			t.Error("Expected error for empty item name")
		}
	})

	t.Run("rejects empty state list", func(t *testing.T) {
		if _, err := NewCommandItem("build", nil); err == nil {
			t.Error("Expected error for empty state list")
		}
	})

	t.Run("rejects empty state name", func(t *testing.T) {
		states := []State{{Name: "", Command: "true"}}
		if _, err := NewCommandItem("build", states); err == nil {
			t.Error("Expected error for empty state name")
		}
	})

	t.Run("rejects duplicate state names", func(t *testing.T) {
		states := []State{
			{Name: "debug", Command: "echo 1"},
			{Name: "debug", Command: "echo 2"},
		}
		if _, err := NewCommandItem("build", states); err == nil {
			t.Error("Expected error for duplicate state names")
		}
	})

	t.Run("copies the state slice", func(t *testing.T) {
		states := testStates()
		it, err := NewCommandItem("build", states)
		if err != nil {
			t.Fatalf("NewCommandItem failed: %v", err)
		}

		states[0].Name = "mutated"
		if it.StateNames()[0] != "debug" {
			t.Error("Expected item states to be independent of the input slice")
		}
	})
}

func TestRestoreCommandItem(t *testing.T) {
	t.Run("keeps stored current value", func(t *testing.T) {
		it := RestoreCommandItem("build", "release", testStates())
		if it.CurrentState() != "release" {
			t.Errorf("Expected current %q, got %q", "release", it.CurrentState())
		}
	})

	t.Run("accepts current outside the state list", func(t *testing.T) {
		it := RestoreCommandItem("build", "gone", testStates())
		if it.CurrentState() != "gone" {
			t.Errorf("Expected current %q, got %q", "gone", it.CurrentState())
		}
	})
}

func TestCommandItem_Kind(t *testing.T) {
	it := RestoreCommandItem("build", "debug", testStates())
	if it.Kind() != "Command" {
		t.Errorf("Expected kind %q, got %q", "Command", it.Kind())
	}
}

func TestCommandItem_Transition(t *testing.T) {
	t.Run("runs the named state's command once", func(t *testing.T) {
		it := RestoreCommandItem("build", "debug", testStates())
		runner := &fakeRunner{}

		if err := it.Transition("release", runner); err != nil {
			t.Fatalf("Transition failed: %v", err)
		}

		if it.CurrentState() != "release" {
			t.Errorf("Expected current %q, got %q", "release", it.CurrentState())
		}
		if !reflect.DeepEqual(runner.commands, []string{"echo r"}) {
			t.Errorf("Expected exactly one invocation of %q, got %v", "echo r", runner.commands)
		}
	})

	t.Run("unknown state updates current without running anything", func(t *testing.T) {
		it := RestoreCommandItem("build", "debug", testStates())
		runner := &fakeRunner{}

		if err := it.Transition("nope", runner); err != nil {
			t.Fatalf("Transition failed: %v", err)
		}

		if it.CurrentState() != "nope" {
			t.Errorf("Expected current %q, got %q", "nope", it.CurrentState())
		}
		if len(runner.commands) != 0 {
			t.Errorf("Expected no invocations, got %v", runner.commands)
		}
	})

	t.Run("runner error propagates but current stays updated", func(t *testing.T) {
		it := RestoreCommandItem("build", "debug", testStates())
		spawnErr := errors.New("spawn failed")
		runner := &fakeRunner{err: spawnErr}

		err := it.Transition("release", runner)
		if !errors.Is(err, spawnErr) {
			t.Fatalf("Expected runner error, got %v", err)
		}
		if it.CurrentState() != "release" {
			t.Errorf("Expected current %q after failed run, got %q", "release", it.CurrentState())
		}
	})

	t.Run("re-entering the current state runs its command again", func(t *testing.T) {
		it := RestoreCommandItem("build", "debug", testStates())
		runner := &fakeRunner{}

		if err := it.Transition("debug", runner); err != nil {
			t.Fatalf("Transition failed: %v", err)
		}

		if !reflect.DeepEqual(runner.commands, []string{"echo d"}) {
			t.Errorf("Expected invocation of %q, got %v", "echo d", runner.commands)
		}
	})
}
