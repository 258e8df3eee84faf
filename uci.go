/*
uci.go implements pure coordinate notation, the wire format exchanged
with external front-ends: "e2e4", "e7e8q".  Castling is written as the
king's two-square move ("e1g1").  The promotion letter is mandatory on
a promotion rank and absent otherwise.
*/

package tarrasch

import (
	"fmt"
	"strings"
)

// UCI converts the move into its pure coordinate notation string.
func (m Move) UCI() string {
	var b strings.Builder
	b.Grow(5)

	b.WriteString(Square2String[m.From()])
	b.WriteString(Square2String[m.To()])

	switch m.Promotion() {
	case PieceWKnight, PieceBKnight:
		b.WriteByte('n')
	case PieceWBishop, PieceBBishop:
		b.WriteByte('b')
	case PieceWRook, PieceBRook:
		b.WriteByte('r')
	case PieceWQueen, PieceBQueen:
		b.WriteByte('q')
	}

	return b.String()
}

/*
ParseUCIMove parses a move in pure coordinate notation against the
current position, resolving the moving piece, the capture flag, and
the promotion piece.  The move is not checked for full legality; that
remains the job of [Position.CopyWithMove].
*/
func (p *Position) ParseUCIMove(s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return 0, fmt.Errorf("move %q: expected 4 or 5 characters", s)
	}

	from, err := parseSquare(s[:2])
	if err != nil {
		return 0, fmt.Errorf("move %q: %w", s, err)
	}
	to, err := parseSquare(s[2:4])
	if err != nil {
		return 0, fmt.Errorf("move %q: %w", s, err)
	}

	piece := p.GetPieceFromSquare(1 << from)
	if piece == PieceNone {
		return 0, fmt.Errorf("move %q: no piece on %s", s, s[:2])
	}
	if piece&1 != p.ActiveColor {
		return 0, fmt.Errorf("move %q: piece on %s belongs to the opponent", s, s[:2])
	}

	isCapture := p.Bitboards[12+(1^p.ActiveColor)]&(1<<to) != 0
	// En passant: the capturing pawn moves onto the empty target
	// square, one rank past the captured pawn.
	if piece <= PieceBPawn && p.EPTarget != 0 && to == p.EPTarget {
		isCapture = true
	}

	isPromotionRank := piece <= PieceBPawn && (to>>3 == 0 || to>>3 == 7)

	if len(s) == 5 {
		if !isPromotionRank {
			return 0, fmt.Errorf("move %q: unexpected promotion letter", s)
		}
		var promo Piece
		switch s[4] {
		case 'n':
			promo = PieceWKnight
		case 'b':
			promo = PieceWBishop
		case 'r':
			promo = PieceWRook
		case 'q':
			promo = PieceWQueen
		default:
			return 0, fmt.Errorf("move %q: invalid promotion letter %q", s, s[4])
		}
		return NewPromotion(to, from, piece, promo+p.ActiveColor, isCapture), nil
	}

	if isPromotionRank {
		return 0, fmt.Errorf("move %q: missing promotion letter", s)
	}

	if isCapture {
		return NewCapture(to, from, piece), nil
	}
	return NewMove(to, from, piece), nil
}

/*
ApplyUCIMove parses a move in pure coordinate notation and applies it
to the position.  The move must be legal; an illegal or malformed move
leaves the position untouched and returns an error.
*/
func (p *Position) ApplyUCIMove(s string) error {
	m, err := p.ParseUCIMove(s)
	if err != nil {
		return err
	}

	// Reject moves that break the piece movement rules before the
	// king-safety test.
	var moves MoveList
	GenMoves(p, &moves)
	generated := false
	for i := range moves.LastMoveIndex {
		if moves.Moves[i] == m {
			generated = true
			break
		}
	}
	if !generated {
		return fmt.Errorf("move %q is illegal in position %q", s, p.FEN())
	}

	next, ok := p.CopyWithMove(m)
	if !ok {
		return fmt.Errorf("move %q is illegal in position %q", s, p.FEN())
	}

	*p = next
	return nil
}
