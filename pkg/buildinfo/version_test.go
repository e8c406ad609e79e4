package buildinfo

import (
	"strings"
	"testing"
)

func TestStamp(t *testing.T) {
	oldV, oldC := Version, Commit
	defer func() { Version, Commit = oldV, oldC }()
	Version, Commit = "v9.9.9", "abc123"

	if got := Get(); got.Version != "v9.9.9" || got.Commit != "abc123" {
		t.Errorf("Get() = %+v", got)
	}
	if s := Template(); !strings.HasPrefix(s, "{{.Name}} v9.9.9 (commit abc123") {
		t.Errorf("Template() = %q", s)
	}
	if ua := UserAgent(); ua != "floorsmith/v9.9.9" {
		t.Errorf("UserAgent() = %q", ua)
	}
}
