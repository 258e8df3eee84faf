/*
movegen.go implements pseudo-legal move generation.

The generator enumerates every move that respects piece movement
rules; king safety is deliberately not checked here.  The legality
filter is [Position.CopyWithMove], which rejects moves that leave the
mover's own king attacked, as well as illegal castlings.  The emission
order is stable: pieces are visited in piece-code order (pawns first,
king last), origin and destination squares in LSB order, promotions in
queen, knight, rook, bishop order, castling at the very end.
*/

package tarrasch

// Castling paths that must be empty, indexed by [Color].
var (
	castlingShortPath = [2]uint64{F1 | G1, F8 | G8}
	castlingLongPath  = [2]uint64{B1 | C1 | D1, B8 | C8 | D8}
)

/*
GenMoves appends every pseudo-legal move for the side to move to the
specified move list.  The list is reset first.
*/
func GenMoves(p *Position, l *MoveList) {
	l.LastMoveIndex = 0

	c := p.ActiveColor
	allies := p.Bitboards[12+c]
	enemies := p.Bitboards[12+(1^c)]
	occupancy := p.Bitboards[14]

	for piece := PieceWPawn + c; piece <= PieceWKing+c; piece += 2 {
		pieces := p.Bitboards[piece]
		for pieces > 0 {
			from := popLSB(&pieces)

			switch piece {
			case PieceWPawn, PieceBPawn:
				genPawnMoves(p, from, l)

			case PieceWKnight, PieceBKnight:
				dests := knightAttacks[from] &^ allies
				for dests > 0 {
					to := popLSB(&dests)
					if 1<<to&enemies != 0 {
						l.Push(NewCapture(to, from, piece))
					} else {
						l.Push(NewMove(to, from, piece))
					}
				}

			case PieceWBishop, PieceBBishop:
				dests := lookupBishopAttacks(from, occupancy) &^ allies
				for dests > 0 {
					to := popLSB(&dests)
					if 1<<to&enemies != 0 {
						l.Push(NewCapture(to, from, piece))
					} else {
						l.Push(NewMove(to, from, piece))
					}
				}

			case PieceWRook, PieceBRook:
				dests := lookupRookAttacks(from, occupancy) &^ allies
				for dests > 0 {
					to := popLSB(&dests)
					if 1<<to&enemies != 0 {
						l.Push(NewCapture(to, from, piece))
					} else {
						l.Push(NewMove(to, from, piece))
					}
				}

			case PieceWQueen, PieceBQueen:
				dests := lookupQueenAttacks(from, occupancy) &^ allies
				for dests > 0 {
					to := popLSB(&dests)
					if 1<<to&enemies != 0 {
						l.Push(NewCapture(to, from, piece))
					} else {
						l.Push(NewMove(to, from, piece))
					}
				}

			case PieceWKing, PieceBKing:
				dests := kingAttacks[from] &^ allies
				for dests > 0 {
					to := popLSB(&dests)
					if 1<<to&enemies != 0 {
						l.Push(NewCapture(to, from, piece))
					} else {
						l.Push(NewMove(to, from, piece))
					}
				}
			}
		}
	}

	genCastlingMoves(p, l)
}

/*
genPawnMoves appends the pseudo-legal moves of a single pawn: the
single push to an empty square, the double push from the home rank
when both squares are empty, the captures into enemy occupancy, and
the en passant capture.  A move onto the last rank is expanded into
one move per promotion piece.
*/
func genPawnMoves(p *Position, from int, l *MoveList) {
	c := p.ActiveColor
	piece := PieceWPawn + c
	occupancy := p.Bitboards[14]
	enemies := p.Bitboards[12+(1^c)]
	fromBB := uint64(1) << from

	// Determine movement direction.
	dir, homeRank, promoRank := 8, RANK_2, RANK_8
	if c == ColorBlack {
		dir = -8
		homeRank = RANK_7
		promoRank = RANK_1
	}

	var dests uint64
	fwd := uint64(1) << (from + dir)
	if fwd&occupancy == 0 {
		dests |= fwd
		if fromBB&homeRank != 0 {
			dbl := uint64(1) << (from + 2*dir)
			if dbl&occupancy == 0 {
				dests |= dbl
			}
		}
	}
	dests |= pawnAttacks[c][from] & enemies

	for dests > 0 {
		to := popLSB(&dests)
		isCapture := 1<<to&enemies != 0

		if 1<<to&promoRank != 0 {
			l.Push(NewPromotion(to, from, piece, PieceWQueen+c, isCapture))
			l.Push(NewPromotion(to, from, piece, PieceWKnight+c, isCapture))
			l.Push(NewPromotion(to, from, piece, PieceWRook+c, isCapture))
			l.Push(NewPromotion(to, from, piece, PieceWBishop+c, isCapture))
		} else if isCapture {
			l.Push(NewCapture(to, from, piece))
		} else {
			l.Push(NewMove(to, from, piece))
		}
	}

	// Handle en passant.  The capture is emitted whenever the target
	// square lies on the pawn's attack pattern; the pinned-pawn edge
	// case is caught by the post-move check test.
	if p.EPTarget != 0 && pawnAttacks[c][from]&(1<<p.EPTarget) != 0 {
		l.Push(NewCapture(p.EPTarget, from, piece))
	}
}

/*
genCastlingMoves appends a castling move for each side of the board
where the right is still held and the squares between the king and the
rook are empty.  The remaining conditions, not castling out of or
through check, are enforced by [Position.CopyWithMove].
*/
func genCastlingMoves(p *Position, l *MoveList) {
	occupancy := p.Bitboards[14]

	if p.ActiveColor == ColorWhite {
		if p.CastlingRights&CastlingWhiteShort != 0 &&
			occupancy&castlingShortPath[ColorWhite] == 0 {
			l.Push(NewMove(SG1, SE1, PieceWKing))
		}
		if p.CastlingRights&CastlingWhiteLong != 0 &&
			occupancy&castlingLongPath[ColorWhite] == 0 {
			l.Push(NewMove(SC1, SE1, PieceWKing))
		}
	} else {
		if p.CastlingRights&CastlingBlackShort != 0 &&
			occupancy&castlingShortPath[ColorBlack] == 0 {
			l.Push(NewMove(SG8, SE8, PieceBKing))
		}
		if p.CastlingRights&CastlingBlackLong != 0 &&
			occupancy&castlingLongPath[ColorBlack] == 0 {
			l.Push(NewMove(SC8, SE8, PieceBKing))
		}
	}
}

/*
GenLegalMoves appends every strictly legal move for the side to move
to the specified move list, filtering the pseudo-legal set through
[Position.CopyWithMove].
*/
func GenLegalMoves(p *Position, l *MoveList) {
	var pseudoLegal MoveList
	GenMoves(p, &pseudoLegal)

	l.LastMoveIndex = 0
	for i := range pseudoLegal.LastMoveIndex {
		if _, ok := p.CopyWithMove(pseudoLegal.Moves[i]); ok {
			l.Push(pseudoLegal.Moves[i])
		}
	}
}
