/*
format.go implements human-readable formatting of bitboards and
positions, used by tests and the command-line tools.
*/

package tarrasch

import "strings"

// FormatBitboard renders the bitboard as an 8x8 diagram with the
// given piece symbol on each set square.
func FormatBitboard(bitboard uint64, piece Piece) string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte('1' + byte(rank))
		b.WriteString("  ")

		for file := 0; file < 8; file++ {
			symbol := byte('.')
			if bitboard&(1<<(8*rank+file)) != 0 {
				symbol = PieceSymbols[piece]
			}
			b.WriteByte(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h")

	return b.String()
}

// String formats the full position: the board diagram followed by the
// active color, en passant target, and castling rights.
func (p *Position) String() string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte('1' + byte(rank))
		b.WriteString("  ")

		for file := 0; file < 8; file++ {
			symbol := byte('.')
			if piece := p.GetPieceFromSquare(1 << (8*rank + file)); piece != PieceNone {
				symbol = PieceSymbols[piece]
			}
			b.WriteByte(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\n")

	b.WriteString("Active color: ")
	if p.ActiveColor == ColorWhite {
		b.WriteString("white\n")
	} else {
		b.WriteString("black\n")
	}

	b.WriteString("En passant: ")
	if p.EPTarget == 0 {
		b.WriteString("none\n")
	} else {
		b.WriteString(Square2String[p.EPTarget])
		b.WriteByte('\n')
	}

	b.WriteString("Castling rights: ")
	if p.CastlingRights == 0 {
		b.WriteByte('-')
	} else {
		if p.CastlingRights&CastlingWhiteShort != 0 {
			b.WriteByte('K')
		}
		if p.CastlingRights&CastlingWhiteLong != 0 {
			b.WriteByte('Q')
		}
		if p.CastlingRights&CastlingBlackShort != 0 {
			b.WriteByte('k')
		}
		if p.CastlingRights&CastlingBlackLong != 0 {
			b.WriteByte('q')
		}
	}

	return b.String()
}
