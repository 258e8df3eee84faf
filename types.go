// types.go contains declarations of custom types and predefined constants.

package tarrasch

/*
Move represents a chess move, encoded as a 32 bit unsigned integer:
  - 0-5:   To (destination) square index.
  - 6-11:  From (origin/source) square index.
  - 12-15: Moving piece.
  - 16-19: Promotion piece, or promotionNone.
  - 20:    Capture flag.

The moving piece is carried inside the move so that applying it never
needs a board lookup.  Castling is encoded as the king's two-square
move alone; the rook move is derived.  A double pawn push is a quiet
move whose squares differ by two ranks on the same file.  The capture
flag is set both for ordinary captures and for en passant captures.
*/
type Move uint32

// Sentinel for the promotion bits of a non-promotion move.
const promotionNone = 0xF

// NewMove creates a quiet move.
func NewMove(to, from int, piece Piece) Move {
	return Move(to | from<<6 | piece<<12 | promotionNone<<16)
}

// NewCapture creates a capturing move.  En passant captures are encoded
// the same way; the captured square is derived from the board state.
func NewCapture(to, from int, piece Piece) Move {
	return NewMove(to, from, piece) | 1<<20
}

// NewPromotion creates a pawn promotion move.  promo must be a knight,
// bishop, rook, or queen of the pawn's color.
func NewPromotion(to, from int, piece, promo Piece, isCapture bool) Move {
	m := Move(to | from<<6 | piece<<12 | promo<<16)
	if isCapture {
		m |= 1 << 20
	}
	return m
}

func (m Move) To() int         { return int(m & 0x3F) }
func (m Move) From() int       { return int(m>>6) & 0x3F }
func (m Move) Piece() Piece    { return Piece(m>>12) & 0xF }
func (m Move) IsCapture() bool { return m&(1<<20) != 0 }

// Promotion returns the promotion piece, or PieceNone for a
// non-promotion move.
func (m Move) Promotion() Piece {
	promo := Piece(m>>16) & 0xF
	if promo == promotionNone {
		return PieceNone
	}
	return promo
}

// IsDoublePush reports whether the move is a double pawn push.
func (m Move) IsDoublePush() bool {
	if m.Piece() > PieceBPawn {
		return false
	}
	diff := m.To() - m.From()
	return diff == 16 || diff == -16
}

/*
CastlingRookMove returns the rook move implied by a castling king move.
Castling is recognized by the king moving two squares from its home
square.  The second return value is false for every other move.
*/
func (m Move) CastlingRookMove() (Move, bool) {
	if m.Piece() < PieceWKing {
		return 0, false
	}
	switch {
	case m.From() == SE1 && m.To() == SG1:
		return NewMove(SF1, SH1, PieceWRook), true
	case m.From() == SE1 && m.To() == SC1:
		return NewMove(SD1, SA1, PieceWRook), true
	case m.From() == SE8 && m.To() == SG8:
		return NewMove(SF8, SH8, PieceBRook), true
	case m.From() == SE8 && m.To() == SC8:
		return NewMove(SD8, SA8, PieceBRook), true
	}
	return 0, false
}

/*
MoveList is used to store moves.  The main idea behind it is to
preallocate an array with enough capacity to store all possible moves
and avoid dynamic memory allocations.
*/
type MoveList struct {
	// Maximum number of moves per chess position is equal to 218,
	// hence 218 elements.
	// See https://www.talkchess.com/forum/viewtopic.php?t=61792
	Moves [218]Move
	// To keep track of the next move index.
	LastMoveIndex byte
}

// Push adds the move to the end of the move list.
func (l *MoveList) Push(m Move) {
	l.Moves[l.LastMoveIndex] = m
	l.LastMoveIndex++
}

var (
	// PieceSymbols maps each piece type to its symbol.
	PieceSymbols = [12]byte{
		'P', 'p', 'N', 'n', 'B', 'b',
		'R', 'r', 'Q', 'q', 'K', 'k',
	}
	// Square2String maps each board square to its string representation.
	Square2String = [64]string{
		"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
		"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
		"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
		"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
		"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
		"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
		"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
		"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
	}
)

/*
Piece is an alias type to avoid bothersome conversion between int and
Piece.

The ordering is load-bearing: piece&1 gives the color, piece>>1 the
piece kind, and the value indexes the bitboard array and the Zobrist
piece-key table directly.  Iterating one side's pieces is a stride-2
loop starting from the color offset.
*/
type Piece = int

const (
	PieceWPawn Piece = iota
	PieceBPawn
	PieceWKnight
	PieceBKnight
	PieceWBishop
	PieceBBishop
	PieceWRook
	PieceBRook
	PieceWQueen
	PieceBQueen
	PieceWKing
	PieceBKing
	// To avoid magic numbers.
	PieceNone = -1
)

// Color is an alias type to avoid bothersome conversion between int
// and Color.
type Color = int

const (
	ColorWhite Color = iota
	ColorBlack
)

/*
CastlingRights defines the player's rights to perform castlings.
  - 0 bit: white king can O-O.
  - 1 bit: white king can O-O-O.
  - 2 bit: black king can O-O.
  - 3 bit: black king can O-O-O.
*/
type CastlingRights = int

const (
	CastlingWhiteShort CastlingRights = 1
	CastlingWhiteLong  CastlingRights = 2
	CastlingBlackShort CastlingRights = 4
	CastlingBlackLong  CastlingRights = 8
)

// Result represents the possible outcomes of a chess game.
type Result int

const (
	ResultUnscored Result = iota // Default value: the game isn't finished yet.
	ResultCheckmate
	ResultStalemate
	ResultInsufficientMaterial
	ResultFiftyMove
	ResultThreefoldRepetition
)

// Standard initial chess position.
const InitialPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Bitboards of each square.
const (
	A1 uint64 = 1 << iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// Indices of each square.
const (
	SA1 int = iota
	SB1
	SC1
	SD1
	SE1
	SF1
	SG1
	SH1
	SA2
	SB2
	SC2
	SD2
	SE2
	SF2
	SG2
	SH2
	SA3
	SB3
	SC3
	SD3
	SE3
	SF3
	SG3
	SH3
	SA4
	SB4
	SC4
	SD4
	SE4
	SF4
	SG4
	SH4
	SA5
	SB5
	SC5
	SD5
	SE5
	SF5
	SG5
	SH5
	SA6
	SB6
	SC6
	SD6
	SE6
	SF6
	SG6
	SH6
	SA7
	SB7
	SC7
	SD7
	SE7
	SF7
	SG7
	SH7
	SA8
	SB8
	SC8
	SD8
	SE8
	SF8
	SG8
	SH8
)
