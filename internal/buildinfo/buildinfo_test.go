package buildinfo

import "testing"

func TestShortAndLong(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)

	Version, Commit, Date = "dev", "unknown", "unknown"
	if Short() != "dev" || Long() != "dev" {
		t.Fatalf("defaults: %q %q", Short(), Long())
	}

	Commit = "abc123"
	if Short() != "abc123" || Long() != "abc123" {
		t.Fatalf("commit only: %q %q", Short(), Long())
	}

	Version, Date = "v1.2.0", "2026-01-02"
	if got := Long(); got != "v1.2.0 (abc123) built 2026-01-02" {
		t.Fatalf("Long()=%q", got)
	}
}
