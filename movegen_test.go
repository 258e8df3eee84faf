package tarrasch

import "testing"

func legalMoveCount(t *testing.T, fen string) int {
	t.Helper()
	p, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("%s: %v", fen, err)
	}
	var l MoveList
	GenLegalMoves(&p, &l)
	return int(l.LastMoveIndex)
}

func TestGenLegalMovesCount(t *testing.T) {
	testcases := []struct {
		name     string
		fen      string
		expected int
	}{
		{"initial position", InitialPos, 20},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 48},
		{"rooks and bishops", "r6r/1b2k1bq/8/8/7B/8/8/R3K2R b KQ - 3 2", 8},
		{"stalemated black", "4k3/4P3/4Q3/8/8/8/8/5K2 b - - 0 1", 0},
	}

	for _, tc := range testcases {
		if got := legalMoveCount(t, tc.fen); got != tc.expected {
			t.Fatalf("test %q: expected %d legal moves, got %d", tc.name, tc.expected, got)
		}
	}
}

// Promotions are expanded in queen, knight, rook, bishop order.  The
// order is observable: the search examines moves in emission order and
// ties keep the earliest move.
func TestGenMovesPromotionOrder(t *testing.T) {
	p, err := ParseFEN("4k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	var l MoveList
	GenMoves(&p, &l)

	expected := []Move{
		NewPromotion(SB8, SB7, PieceWPawn, PieceWQueen, false),
		NewPromotion(SB8, SB7, PieceWPawn, PieceWKnight, false),
		NewPromotion(SB8, SB7, PieceWPawn, PieceWRook, false),
		NewPromotion(SB8, SB7, PieceWPawn, PieceWBishop, false),
	}
	for i, m := range expected {
		if l.Moves[i] != m {
			t.Fatalf("move %d: expected %s promoting to %d, got %s promoting to %d",
				i, m.UCI(), m.Promotion(), l.Moves[i].UCI(), l.Moves[i].Promotion())
		}
	}
}

func TestGenMovesEnPassant(t *testing.T) {
	p, err := ParseFEN("rnbqkbnr/pp1ppppp/8/1Pp5/8/8/P1PPPPPP/RNBQKBNR w KQkq c6 0 3")
	if err != nil {
		t.Fatal(err)
	}

	var l MoveList
	GenMoves(&p, &l)

	want := NewCapture(SC6, SB5, PieceWPawn)
	for i := range l.LastMoveIndex {
		if l.Moves[i] == want {
			return
		}
	}
	t.Fatalf("expected the en passant capture b5c6 to be generated")
}

func TestGenMovesCastling(t *testing.T) {
	p, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	var l MoveList
	GenMoves(&p, &l)

	short, long := false, false
	for i := range l.LastMoveIndex {
		switch l.Moves[i] {
		case NewMove(SG1, SE1, PieceWKing):
			short = true
		case NewMove(SC1, SE1, PieceWKing):
			long = true
		}
	}
	if !short || !long {
		t.Fatalf("expected both castling moves, got short=%v long=%v", short, long)
	}

	// Castling is not emitted when a piece stands between the king
	// and the rook.
	p, err = ParseFEN("r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	GenMoves(&p, &l)
	for i := range l.LastMoveIndex {
		if l.Moves[i] == NewMove(SC1, SE1, PieceWKing) {
			t.Fatalf("queen-side castling must not be generated over the b1 knight")
		}
	}
}

func BenchmarkGenMoves(b *testing.B) {
	p, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		b.Fatal(err)
	}

	for b.Loop() {
		var l MoveList
		GenMoves(&p, &l)
	}
}

func BenchmarkGenLegalMoves(b *testing.B) {
	p, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		b.Fatal(err)
	}

	for b.Loop() {
		var l MoveList
		GenLegalMoves(&p, &l)
	}
}
