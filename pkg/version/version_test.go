package version

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	v := Get()
	if v.Version != Version {
		t.Errorf("Version = %q, want %q", v.Version, Version)
	}
	if v.Platform == "" || !strings.Contains(v.Platform, "/") {
		t.Errorf("Platform = %q, want os/arch", v.Platform)
	}
}

func TestString(t *testing.T) {
	s := Get().String()
	if !strings.HasPrefix(s, "codecat version ") {
		t.Errorf("String() = %q, want codecat prefix", s)
	}
}
