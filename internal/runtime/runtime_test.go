package runtime

import (
	"testing"

	"github.com/chrisvisintin/pyc-go/internal/domain"
)

func TestResolveAlias(t *testing.T) {
	cfg := domain.Config{
		Alias: []domain.AliasEntry{
			{Source: "pws", Latin: "ps"},
			{Source: "ks", Latin: "ls"},
		},
	}

	tests := []struct {
		name string
		line string
		want string
	}{
		{"resolves known alias preserving remainder", "pws aux", "ps aux"},
		{"passes through unknown token", "cat file.txt", "cat file.txt"},
		{"resolves bare alias with no arguments", "ks", "ls"},
		{"empty line passes through", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveAlias(cfg, tt.line); got != tt.want {
				t.Errorf("resolveAlias(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}
