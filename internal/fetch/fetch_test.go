package fetch

import (
	"testing"
	"time"
)

func TestConfigWithDefaults(t *testing.T) {
	got := Config{}.withDefaults()
	if got.MaxRetries != 2 {
		t.Fatalf("default MaxRetries = %d, want 2", got.MaxRetries)
	}
	if got.AttemptTimeout != 30*time.Second {
		t.Fatalf("default AttemptTimeout = %s, want 30s", got.AttemptTimeout)
	}
}

func TestConfigWithDefaultsPreservesExplicitValues(t *testing.T) {
	got := Config{MaxRetries: 5, AttemptTimeout: 10 * time.Second}.withDefaults()
	if got.MaxRetries != 5 || got.AttemptTimeout != 10*time.Second {
		t.Fatalf("explicit config overridden: %+v", got)
	}
}
