package session

import (
	"testing"
	"time"
)

func TestCooldownAllow(t *testing.T) {
	c := NewCooldown(2 * time.Second)
	defer c.Stop()

	base := time.Now()
	clock := base
	c.now = func() time.Time { return clock }

	if !c.Allow("alice") {
		t.Fatal("first scan was rejected")
	}
	clock = base.Add(time.Second)
	if c.Allow("alice") {
		t.Error("scan inside the cooldown window was accepted")
	}
	clock = base.Add(2 * time.Second)
	if !c.Allow("alice") {
		t.Error("scan after the cooldown elapsed was rejected")
	}
}

func TestCooldownRejectionDoesNotReset(t *testing.T) {
	c := NewCooldown(2 * time.Second)
	defer c.Stop()

	base := time.Now()
	clock := base
	c.now = func() time.Time { return clock }

	c.Allow("alice")

	// A rejected request must not extend the window: the cooldown runs
	// from the last accepted scan.
	clock = base.Add(1900 * time.Millisecond)
	if c.Allow("alice") {
		t.Fatal("scan at 1.9s was accepted")
	}
	clock = base.Add(2 * time.Second)
	if !c.Allow("alice") {
		t.Error("scan at 2.0s was rejected after an intervening rejection")
	}
}

func TestCooldownSessionsIndependent(t *testing.T) {
	c := NewCooldown(2 * time.Second)
	defer c.Stop()

	clock := time.Now()
	c.now = func() time.Time { return clock }

	if !c.Allow("alice") {
		t.Fatal("alice's first scan was rejected")
	}
	if !c.Allow("bob") {
		t.Error("bob's first scan was rejected by alice's cooldown")
	}
}
