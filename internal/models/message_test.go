package models

import "testing"

func TestConversationKey(t *testing.T) {
	tests := []struct {
		name string
		a, b uint
		want string
	}{
		{"ordered pair", 1, 2, "1:2"},
		{"reversed pair canonicalizes", 2, 1, "1:2"},
		{"same user", 5, 5, "5:5"},
		{"large ids", 1000, 3, "3:1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConversationKey(tt.a, tt.b); got != tt.want {
				t.Errorf("ConversationKey(%d, %d) = %q, want %q", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestConversationKeySymmetry(t *testing.T) {
	pairs := [][2]uint{{1, 2}, {42, 7}, {9, 9}}
	for _, p := range pairs {
		if ConversationKey(p[0], p[1]) != ConversationKey(p[1], p[0]) {
			t.Errorf("ConversationKey must be symmetric for %v", p)
		}
	}
}
