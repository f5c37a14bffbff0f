package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	Version, Commit = "v1.2.3", "abc123"
	t.Cleanup(func() { Version, Commit = "dev", "none" })

	s := String()
	for _, want := range []string{"version: v1.2.3", "commit: abc123", "go: go"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
	if got := Template(); !strings.HasPrefix(got, "{{.Name}} v1.2.3 (abc123") {
		t.Errorf("Template() = %q", got)
	}
}
