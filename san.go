/*
san.go implements serialization of moves into Standard Algebraic
Notation.
See https://ia802908.us.archive.org/26/items/pgn-standard-1994-03-12/PGN_standard_1994-03-12.txt
Section 8.2.3.
*/

package tarrasch

import "strings"

/*
SAN encodes the specified move to its Standard Algebraic Notation.
The move must be legal in the given position; legal is the full legal
move list of the position and is used for disambiguation.

A SAN string consists of these parts:
 1. Piece letter, omitted for pawns;
 2. Optional originating file or rank, used for disambiguation.  A
    capturing pawn always includes its originating file;
 3. 'x' for captures;
 4. Destination file and rank;
 5. '+' for a check, '#' for a checkmate.

King-side and queen-side castling are encoded as "O-O" and "O-O-O".
*/
func SAN(m Move, p *Position, legal *MoveList) string {
	var b strings.Builder
	b.Grow(7)

	piece := m.Piece()

	if _, isCastling := m.CastlingRookMove(); isCastling {
		if m.To() == SC1 || m.To() == SC8 {
			b.WriteString("O-O-O")
		} else {
			b.WriteString("O-O")
		}
		writeCheckSuffix(&b, m, p)
		return b.String()
	}

	switch piece {
	case PieceWKnight, PieceBKnight:
		b.WriteByte('N')
	case PieceWBishop, PieceBBishop:
		b.WriteByte('B')
	case PieceWRook, PieceBRook:
		b.WriteByte('R')
	case PieceWQueen, PieceBQueen:
		b.WriteByte('Q')
	case PieceWKing, PieceBKing:
		b.WriteByte('K')
	}

	// Resolve ambiguity between pieces of the same kind that can
	// reach the same destination.  Pawns are skipped; their capture
	// notation always carries the originating file.
	if piece > PieceBPawn {
		for i := range legal.LastMoveIndex {
			other := legal.Moves[i]
			if other.Piece() == piece && other.To() == m.To() &&
				other.From() != m.From() {
				b.WriteByte(disambiguate(m.From(), other.From()))
				break
			}
		}
	}

	if m.IsCapture() {
		if piece <= PieceBPawn {
			b.WriteByte('a' + byte(m.From()&7))
		}
		b.WriteByte('x')
	}

	b.WriteString(Square2String[m.To()])

	switch m.Promotion() {
	case PieceWKnight, PieceBKnight:
		b.WriteString("=N")
	case PieceWBishop, PieceBBishop:
		b.WriteString("=B")
	case PieceWRook, PieceBRook:
		b.WriteString("=R")
	case PieceWQueen, PieceBQueen:
		b.WriteString("=Q")
	}

	writeCheckSuffix(&b, m, p)
	return b.String()
}

// disambiguate returns the originating file character when the two
// origins differ by file, and the originating rank character
// otherwise.
func disambiguate(from, other int) byte {
	if from&7 != other&7 {
		return 'a' + byte(from&7)
	}
	return '1' + byte(from>>3)
}

// writeCheckSuffix appends '+' or '#' when the move gives check or
// checkmate.
func writeCheckSuffix(b *strings.Builder, m Move, p *Position) {
	next, ok := p.CopyWithMove(m)
	if !ok {
		return
	}
	if !next.InCheck() {
		return
	}

	var replies MoveList
	GenLegalMoves(&next, &replies)
	if replies.LastMoveIndex == 0 {
		b.WriteByte('#')
	} else {
		b.WriteByte('+')
	}
}
