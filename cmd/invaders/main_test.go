package main

import "testing"

func TestResolveMode(t *testing.T) {
	tests := []struct {
		arg    string
		want   string
		wantOK bool
	}{
		{"classic", "invaders", true},
		{"endless", "invaders_endless", true},
		{"invaders", "invaders", true},
		{"invaders_endless", "invaders_endless", true},
		{"snake", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, ok := resolveMode(tt.arg)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("resolveMode(%q) = %q, %v; expected %q, %v", tt.arg, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestApplyGameFlagsRejectsUnknownDifficulty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	flagFPS = 60

	flagDifficulty = "brutal"
	t.Cleanup(func() { flagDifficulty = "" })
	if err := applyGameFlags(nil, nil); err == nil {
		t.Error("unknown difficulty should be rejected")
	}

	flagDifficulty = "hard"
	if err := applyGameFlags(nil, nil); err != nil {
		t.Errorf("hard should be accepted: %v", err)
	}
}
