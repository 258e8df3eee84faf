package tarrasch

import "testing"

func TestSAN(t *testing.T) {
	testcases := []struct {
		name     string
		fen      string
		move     Move
		expected string
	}{
		{
			"pawn push",
			InitialPos,
			NewMove(SE4, SE2, PieceWPawn),
			"e4",
		},
		{
			"knight development",
			InitialPos,
			NewMove(SF3, SG1, PieceWKnight),
			"Nf3",
		},
		{
			"pawn capture",
			"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
			NewCapture(SD5, SE4, PieceWPawn),
			"exd5",
		},
		{
			"king-side castling",
			"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			NewMove(SG1, SE1, PieceWKing),
			"O-O",
		},
		{
			"queen-side castling",
			"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			NewMove(SC8, SE8, PieceBKing),
			"O-O-O",
		},
		{
			"promotion with check",
			"4k3/1P6/8/8/8/8/8/4K3 w - - 0 1",
			NewPromotion(SB8, SB7, PieceWPawn, PieceWQueen, false),
			"b8=Q+",
		},
		{
			"file disambiguation",
			"4k3/8/8/8/8/8/8/N1N1K3 w - - 0 1",
			NewMove(SB3, SA1, PieceWKnight),
			"Nab3",
		},
		{
			"checkmate",
			"rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq g3 0 2",
			NewMove(SH4, SD8, PieceBQueen),
			"Qh4#",
		},
	}

	for _, tc := range testcases {
		p, err := ParseFEN(tc.fen)
		if err != nil {
			t.Fatalf("test %q: %v", tc.name, err)
		}

		var legal MoveList
		GenLegalMoves(&p, &legal)

		if got := SAN(tc.move, &p, &legal); got != tc.expected {
			t.Fatalf("test %q: expected %q, got %q", tc.name, tc.expected, got)
		}
	}
}
