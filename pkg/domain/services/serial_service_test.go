package services

import (
	"strconv"
	"strings"
	"testing"
)

func TestSerialGenerator_Generate(t *testing.T) {
	gen := NewSerialGenerator(42)

	serials := gen.Generate(3)
	if len(serials) != 3 {
		t.Fatalf("Expected 3 serials, got %d", len(serials))
	}

	prefix := strings.TrimSuffix(serials[0], "100")
	if !strings.HasPrefix(prefix, "SN-") {
		t.Errorf("Expected SN- prefix, got %s", serials[0])
	}

	for i, serial := range serials {
		rest := strings.TrimPrefix(serial, prefix)
		if rest == serial {
			t.Fatalf("Expected serial %s to share prefix %s", serial, prefix)
		}
		suffix, err := strconv.Atoi(rest)
		if err != nil {
			t.Fatalf("Expected numeric suffix in %s: %v", serial, err)
		}
		if suffix != 100+i {
			t.Errorf("Expected suffix %d at position %d, got %d", 100+i, i, suffix)
		}
	}
}

func TestSerialGenerator_Generate_FreshPrefixPerRun(t *testing.T) {
	gen := NewSerialGenerator(7)

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		seen[gen.Generate(1)[0]] = true
	}

	if len(seen) < 2 {
		t.Errorf("Expected prefixes to vary across runs, got %v", seen)
	}
}

func TestSerialGenerator_Generate_Empty(t *testing.T) {
	gen := NewSerialGenerator(1)
	if serials := gen.Generate(0); len(serials) != 0 {
		t.Errorf("Expected no serials for count 0, got %v", serials)
	}
}
