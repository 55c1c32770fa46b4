package redis

import (
	"testing"
	"time"
)

func TestConfig_TimeoutDefault(t *testing.T) {
	if got := (Config{}).timeout(); got != pingTimeout {
		t.Fatalf("expected default timeout %v, got %v", pingTimeout, got)
	}
	if got := (Config{Timeout: time.Second}).timeout(); got != time.Second {
		t.Fatalf("explicit timeout must be kept, got %v", got)
	}
}
