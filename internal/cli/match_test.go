package cli

import "testing"

func TestMatchName(t *testing.T) {
	names := []string{"build", "proxy", "vpn"}

	t.Run("empty query never matches", func(t *testing.T) {
		if _, ok := matchName(names, ""); ok {
			t.Error("Expected no match for empty query")
		}
	})

	t.Run("exact match wins", func(t *testing.T) {
		index, ok := matchName(names, "proxy")
		if !ok || index != 1 {
			t.Errorf("Expected index 1, got ok=%v index=%d", ok, index)
		}
	})

	t.Run("exact match is case-sensitive", func(t *testing.T) {
		// "Build" is not an exact match but is within fuzzy distance.
		index, ok := matchName(names, "Build")
		if !ok || index != 0 {
			t.Errorf("Expected fuzzy match on index 0, got ok=%v index=%d", ok, index)
		}
	})

	t.Run("close unique match is accepted", func(t *testing.T) {
		index, ok := matchName(names, "bild")
		if !ok || index != 0 {
			t.Errorf("Expected index 0, got ok=%v index=%d", ok, index)
		}
	})

	t.Run("distant query does not match", func(t *testing.T) {
		if _, ok := matchName(names, "database"); ok {
			t.Error("Expected no match for a distant query")
		}
	})

	t.Run("ambiguous query does not match", func(t *testing.T) {
		ambiguous := []string{"vpn1", "vpn2"}
		if _, ok := matchName(ambiguous, "vpn"); ok {
			t.Error("Expected no match when two names tie")
		}
	})
}
