package game

import "testing"

func TestNewRandomDeterministic(t *testing.T) {
	a := NewRandom(12345)
	b := NewRandom(12345)

	for i := 0; i < 20; i++ {
		gotA := a.IntN(6)
		gotB := b.IntN(6)
		if gotA != gotB {
			t.Fatalf("expected deterministic faces, mismatch at %d: %d != %d", i, gotA, gotB)
		}
	}
}

func TestSeedWordChangesWithSalt(t *testing.T) {
	if seedWord(99, "faces") == seedWord(99, "rooms") {
		t.Fatalf("expected different seed words for different salts")
	}
}
