package compute

import (
	"errors"
	"testing"
)

func TestRegistryLookup(t *testing.T) {
	reg := DefaultRegistry()

	b, err := reg.Lookup(ReferenceName)
	if err != nil {
		t.Fatalf("lookup reference: %v", err)
	}
	if !b.Available() {
		t.Error("reference backend must always be available")
	}

	if _, err := reg.Lookup("opencl"); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("expected ErrUnknownBackend, got %v", err)
	}
}

func TestRegistryDefaultPrefersAvailable(t *testing.T) {
	// CUDA registered first but unavailable without the build tag.
	reg := NewRegistry(NewCUDA(), NewReference())

	b := reg.Default()
	if b == nil || b.Name() != ReferenceName {
		t.Errorf("expected reference fallback, got %v", b)
	}
}

func TestRegistryNames(t *testing.T) {
	reg := NewRegistry(NewReference(), NewCUDA(), NewReference())

	names := reg.Names()
	if len(names) != 2 || names[0] != ReferenceName || names[1] != CUDAName {
		t.Errorf("unexpected names: %v", names)
	}
}
