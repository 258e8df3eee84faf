package tarrasch

import "testing"

// The keys come from a fixed-seed PRNG, so hashing is deterministic
// across processes: equal positions hash equal, and every hashed
// feature contributes.
func TestZobristKeyFeatures(t *testing.T) {
	base, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	same, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if base.ZobristKey != same.ZobristKey {
		t.Fatalf("equal positions must hash equal")
	}

	variants := []string{
		"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",  // side to move
		"r3k2r/8/8/8/8/8/8/R3K2R w KQk - 0 1",   // castling rights
		"r3k2r/8/8/8/8/8/8/R3K1R1 w KQkq - 0 1", // piece placement
	}
	for _, fen := range variants {
		p, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("%s: %v", fen, err)
		}
		if p.ZobristKey == base.ZobristKey {
			t.Fatalf("%s must hash differently from the base position", fen)
		}
	}

	// The clocks are not hashed.
	clocks, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 30 40")
	if err != nil {
		t.Fatal(err)
	}
	if clocks.ZobristKey != base.ZobristKey {
		t.Fatalf("the move counters must not contribute to the hash")
	}
}

func TestZobristEnPassantFile(t *testing.T) {
	a, err := ParseFEN("rnbqkbnr/pppppppp/8/8/P7/8/1PPPPPPP/RNBQKBNR b KQkq a3 0 1")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseFEN("rnbqkbnr/pppppppp/8/8/P7/8/1PPPPPPP/RNBQKBNR b KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if a.ZobristKey == b.ZobristKey {
		t.Fatalf("the en passant target must contribute to the hash")
	}
}

// The incremental key stays equal to the from-scratch recomputation
// through a sequence touching the update paths: double pushes,
// castling for both sides, captures, and a promotion.
func TestZobristIncrementalUpdate(t *testing.T) {
	p, err := ParseFEN(InitialPos)
	if err != nil {
		t.Fatal(err)
	}

	moves := []string{
		"e2e4", "d7d5", "e4d5", "g8f6", "d5d6", "e7d6", "g1f3", "f8e7",
		"f1c4", "e8g8", "e1g1", "b7b5", "c4b5", "c7c6", "b5c6", "b8c6",
		"d2d4", "d6d5", "b1c3", "a7a5", "c1g5", "a5a4", "d1d3", "a4a3",
		"a1e1", "a3b2", "e1e2", "b2b1q",
	}
	for _, s := range moves {
		if err := p.ApplyUCIMove(s); err != nil {
			t.Fatalf("%s: %v", s, err)
		}
		if p.ZobristKey != zobristKey(&p) {
			t.Fatalf("after %s: incremental key %#x != recomputed %#x",
				s, p.ZobristKey, zobristKey(&p))
		}
	}

	// The same sequence reached through a different interleaving of
	// an unrelated pair of moves transposes to the same key.
	a, _ := ParseFEN(InitialPos)
	b, _ := ParseFEN(InitialPos)
	for _, s := range []string{"g1f3", "g8f6", "b1c3", "b8c6"} {
		if err := a.ApplyUCIMove(s); err != nil {
			t.Fatal(err)
		}
	}
	for _, s := range []string{"b1c3", "b8c6", "g1f3", "g8f6"} {
		if err := b.ApplyUCIMove(s); err != nil {
			t.Fatal(err)
		}
	}
	if a.ZobristKey != b.ZobristKey {
		t.Fatalf("transposed move orders must hash equal")
	}
}
