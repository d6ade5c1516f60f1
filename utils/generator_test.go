package utils

import (
	"math/rand"
	"strings"
	"testing"
)

func TestNewReferenceShape(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		ref := newReference(r)

		if !strings.HasPrefix(ref, "BK-") {
			t.Fatalf("reference %q missing BK- prefix", ref)
		}
		if len(ref) != len("BK-")+referenceLength {
			t.Fatalf("reference %q has length %d, want %d", ref, len(ref), len("BK-")+referenceLength)
		}
		for _, ch := range ref[3:] {
			if !strings.ContainsRune(referenceBytes, ch) {
				t.Fatalf("reference %q contains %q outside the allowed charset", ref, ch)
			}
		}
	}
}

func TestReferenceCharsetAvoidsAmbiguousCharacters(t *testing.T) {
	for _, ch := range "0O1IL" {
		if strings.ContainsRune(referenceBytes, ch) {
			t.Fatalf("charset contains ambiguous character %q", ch)
		}
	}
}
