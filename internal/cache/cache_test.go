package cache

import (
	"strings"
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if err := c.Set("k", []byte("doc"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, found := c.Get("k")
	if !found {
		t.Fatal("Expected key to be present")
	}
	if string(got) != "doc" {
		t.Errorf("Expected %q, got %q", "doc", got)
	}
}

func TestMemoryCache_Miss(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("absent"); found {
		t.Error("Expected miss for absent key")
	}
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	_ = c.Set("a", []byte("1"), time.Minute)
	_ = c.Set("b", []byte("2"), time.Minute)

	if err := c.Delete("a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := c.Get("a"); found {
		t.Error("Expected deleted key to be absent")
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, found := c.Get("b"); found {
		t.Error("Expected cleared cache to be empty")
	}
}

func TestKey_StableAndPrefixed(t *testing.T) {
	a := Key("users are reporting login failures")
	b := Key("users are reporting login failures")
	other := Key("all quiet")

	if a != b {
		t.Error("Expected identical inputs to share a key")
	}
	if a == other {
		t.Error("Expected distinct inputs to have distinct keys")
	}
	if !strings.HasPrefix(a, "vantage:v1:") {
		t.Errorf("Expected versioned key prefix, got %q", a)
	}
}
