package systems

import (
	"testing"

	"github.com/decker502/jetstrike/pkg/components"
)

func TestAdvanceLifetime(t *testing.T) {
	l := components.LifetimeComponent{Duration: 1, Remaining: 1}

	if AdvanceLifetime(&l, 0.5) {
		t.Fatal("should not expire after 0.5s")
	}
	if !AdvanceLifetime(&l, 0.5) {
		t.Fatal("should expire exactly at 1s")
	}
	if !l.Expired || l.Remaining != 0 {
		t.Errorf("unexpected state: %+v", l)
	}
	if AdvanceLifetime(&l, 0.5) {
		t.Error("expiry should be reported once")
	}

	ResetLifetime(&l)
	if l.Expired || l.Remaining != 1 {
		t.Errorf("reset: %+v", l)
	}
}
