/*
fen.go implements conversions between Forsyth-Edwards Notation (FEN)
strings and positions.  Malformed input is rejected with a descriptive
error at this boundary; the rest of the core never sees bad data.
*/

package tarrasch

import (
	"fmt"
	"strconv"
	"strings"
)

// Each FEN string consists of six parts, separated by a space:
//  1. Piece placement, parsed into the array of bitboards.
//  2. Active color: "w" means White is to move, "b" Black.
//  3. Castling rights, "-" if neither side can castle.
//  4. En passant target square, "-" if there is none.
//  5. Halfmove clock, used for the fifty-move rule.
//  6. Fullmove number.

// ParseFEN parses the given FEN string into a [Position].
func ParseFEN(fen string) (Position, error) {
	var p Position

	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return p, fmt.Errorf("fen: expected 6 fields, got %d", len(fields))
	}

	// Parse piece placement.
	bitboards, err := parseBitboards(fields[0])
	if err != nil {
		return p, err
	}
	p.Bitboards = bitboards

	// Parse active color.
	switch fields[1] {
	case "w":
		p.ActiveColor = ColorWhite
	case "b":
		p.ActiveColor = ColorBlack
	default:
		return p, fmt.Errorf("fen: invalid active color %q", fields[1])
	}

	// Parse castling rights.
	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				p.CastlingRights |= CastlingWhiteShort
			case 'Q':
				p.CastlingRights |= CastlingWhiteLong
			case 'k':
				p.CastlingRights |= CastlingBlackShort
			case 'q':
				p.CastlingRights |= CastlingBlackLong
			default:
				return p, fmt.Errorf("fen: invalid castling rights %q", fields[2])
			}
		}
	}

	// Parse en passant target square.
	if fields[3] != "-" {
		square, err := parseSquare(fields[3])
		if err != nil {
			return p, err
		}
		if rank := square >> 3; rank != 2 && rank != 5 {
			return p, fmt.Errorf("fen: en passant target %s not on rank 3 or 6", fields[3])
		}
		p.EPTarget = square
	}

	// Parse halfmove clock.
	p.HalfmoveCnt, err = strconv.Atoi(fields[4])
	if err != nil {
		return p, fmt.Errorf("fen: invalid halfmove clock %q", fields[4])
	}

	// Parse fullmove counter.
	p.FullmoveCnt, err = strconv.Atoi(fields[5])
	if err != nil {
		return p, fmt.Errorf("fen: invalid fullmove counter %q", fields[5])
	}

	if CountBits(p.Bitboards[PieceWKing]) != 1 || CountBits(p.Bitboards[PieceBKing]) != 1 {
		return p, fmt.Errorf("fen: each side must have exactly one king")
	}

	p.ZobristKey = zobristKey(&p)

	return p, nil
}

// FEN serializes the position into a FEN string.
func (p *Position) FEN() string {
	var fen strings.Builder
	fen.Grow(64)

	// 1 field: piece placement.
	fen.WriteString(serializeBitboards(p.Bitboards))

	// 2 field: active color.
	if p.ActiveColor == ColorWhite {
		fen.WriteString(" w ")
	} else {
		fen.WriteString(" b ")
	}

	// 3 field: castling rights.
	if p.CastlingRights == 0 {
		fen.WriteByte('-')
	} else {
		if p.CastlingRights&CastlingWhiteShort != 0 {
			fen.WriteByte('K')
		}
		if p.CastlingRights&CastlingWhiteLong != 0 {
			fen.WriteByte('Q')
		}
		if p.CastlingRights&CastlingBlackShort != 0 {
			fen.WriteByte('k')
		}
		if p.CastlingRights&CastlingBlackLong != 0 {
			fen.WriteByte('q')
		}
	}
	fen.WriteByte(' ')

	// 4 field: en passant target square.
	if p.EPTarget == 0 {
		fen.WriteString("- ")
	} else {
		fen.WriteString(Square2String[p.EPTarget])
		fen.WriteByte(' ')
	}

	// 5 field: the number of halfmoves.
	fen.WriteString(strconv.Itoa(p.HalfmoveCnt))
	fen.WriteByte(' ')

	// 6 field: the number of fullmoves.
	fen.WriteString(strconv.Itoa(p.FullmoveCnt))

	return fen.String()
}

// parseBitboards converts the first FEN field into an array of
// bitboards.
func parseBitboards(placement string) ([15]uint64, error) {
	var bitboards [15]uint64
	square := 56

	// Piece placement data describes each rank beginning from the
	// eighth.
	for i := 0; i < len(placement); i++ {
		char := placement[i]

		switch {
		case char == '/': // Rank separator.
			square -= 16
			if square < -8 {
				return bitboards, fmt.Errorf("fen: too many ranks in %q", placement)
			}

		case char >= '1' && char <= '8':
			// Number of consecutive empty squares.
			square += int(char - '0')

		default: // There is a piece on the square.
			var piece Piece
			switch char {
			case 'P':
				piece = PieceWPawn
			case 'N':
				piece = PieceWKnight
			case 'B':
				piece = PieceWBishop
			case 'R':
				piece = PieceWRook
			case 'Q':
				piece = PieceWQueen
			case 'K':
				piece = PieceWKing
			case 'p':
				piece = PieceBPawn
			case 'n':
				piece = PieceBKnight
			case 'b':
				piece = PieceBBishop
			case 'r':
				piece = PieceBRook
			case 'q':
				piece = PieceBQueen
			case 'k':
				piece = PieceBKing
			default:
				return bitboards, fmt.Errorf("fen: invalid piece symbol %q", char)
			}

			if square < 0 || square > 63 {
				return bitboards, fmt.Errorf("fen: rank overflow in %q", placement)
			}

			bb := uint64(1 << square)
			bitboards[piece] |= bb
			bitboards[12+piece&1] |= bb
			bitboards[14] |= bb

			square++
		}
	}

	return bitboards, nil
}

// serializeBitboards converts the array of bitboards into the first
// field of a FEN string.
func serializeBitboards(bitboards [15]uint64) string {
	// Used to add characters to a string without extra memory
	// allocations.
	b := strings.Builder{}
	b.Grow(20)

	var board [64]byte

	for i := PieceWPawn; i <= PieceBKing; i++ {
		// Go through all pieces on a bitboard.
		for bitboards[i] > 0 {
			square := popLSB(&bitboards[i])
			board[square] = PieceSymbols[i]
		}
	}

	emptySquares := byte(0)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			square := 8*rank + file
			char := board[square]

			if char == 0 { // Empty square.
				emptySquares++
			} else { // Piece on square.
				if emptySquares > 0 {
					b.WriteByte('0' + emptySquares)
					emptySquares = 0
				}
				b.WriteByte(char)
			}

			// To add rank separators.
			if (square+1)%8 == 0 {
				if emptySquares > 0 {
					b.WriteByte('0' + emptySquares)
					emptySquares = 0
				}
				// Do not add a separator at the end of the string.
				if square != 7 {
					b.WriteByte('/')
				}
			}
		}
	}

	return b.String()
}

// parseSquare parses a two-character square name like "e4" into a
// square index.
func parseSquare(str string) (int, error) {
	if len(str) != 2 || str[0] < 'a' || str[0] > 'h' || str[1] < '1' || str[1] > '8' {
		return 0, fmt.Errorf("invalid square %q", str)
	}
	return int(str[0]-'a') + int(str[1]-'1')*8, nil
}
