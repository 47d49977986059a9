package cli

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/icelava/switchy/internal/item"
)

func TestRenderItem(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	it, err := item.NewCommandItem("build", []item.State{
		{Name: "debug", Command: "echo d"},
		{Name: "release", Command: "echo r"},
	})
	if err != nil {
		t.Fatalf("NewCommandItem failed: %v", err)
	}

	got := renderItem(it)
	want := strings.Join([]string{
		"build [Command]",
		"* debug",
		"  release",
	}, "\n")
	if got != want {
		t.Errorf("Expected rendering:\n%s\ngot:\n%s", want, got)
	}
}

func TestRenderItem_CurrentOutsideStates(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	it := item.RestoreCommandItem("build", "phantom", []item.State{
		{Name: "debug", Command: "echo d"},
	})

	got := renderItem(it)
	if strings.Contains(got, "*") {
		t.Errorf("Expected no marked state, got:\n%s", got)
	}
}
