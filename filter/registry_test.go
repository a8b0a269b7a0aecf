package filter

import (
	"testing"
)

// fakeFilter is a minimal Filter for registry tests.
type fakeFilter struct {
	name string
}

func (f *fakeFilter) Name() string { return f.name }

func (f *fakeFilter) Process(width, height uint32, pix []byte, config string) Status {
	return StatusNoOp
}

func TestRegisterAndGet(t *testing.T) {
	t.Cleanup(func() { Unregister("fake") })

	Register("fake", func() Filter { return &fakeFilter{name: "fake"} })

	f := Get("fake")
	if f == nil {
		t.Fatal("Get() returned nil for registered filter")
	}
	if f.Name() != "fake" {
		t.Errorf("Name() = %q, want %q", f.Name(), "fake")
	}
}

func TestGetUnknown(t *testing.T) {
	if f := Get("no-such-filter"); f != nil {
		t.Errorf("Get() = %v, want nil", f)
	}
}

func TestRegisterReplaces(t *testing.T) {
	t.Cleanup(func() { Unregister("fake") })

	Register("fake", func() Filter { return &fakeFilter{name: "first"} })
	Register("fake", func() Filter { return &fakeFilter{name: "second"} })

	if got := Get("fake").Name(); got != "second" {
		t.Errorf("Name() = %q, want %q", got, "second")
	}
}

func TestUnregister(t *testing.T) {
	Register("fake", func() Filter { return &fakeFilter{name: "fake"} })
	Unregister("fake")

	if IsRegistered("fake") {
		t.Error("IsRegistered() = true after Unregister")
	}
	if Get("fake") != nil {
		t.Error("Get() should return nil after Unregister")
	}
}

func TestAvailableSorted(t *testing.T) {
	t.Cleanup(func() {
		Unregister("zeta")
		Unregister("alpha")
	})

	Register("zeta", func() Filter { return &fakeFilter{name: "zeta"} })
	Register("alpha", func() Filter { return &fakeFilter{name: "alpha"} })

	names := Available()
	var zi, ai = -1, -1
	for i, n := range names {
		switch n {
		case "zeta":
			zi = i
		case "alpha":
			ai = i
		}
	}
	if zi < 0 || ai < 0 {
		t.Fatalf("Available() = %v, missing registered names", names)
	}
	if ai > zi {
		t.Errorf("Available() = %v, want sorted order", names)
	}
}
