/*
game.go implements chess game state management on top of the engine
core: move bookkeeping, draw detection, and non-blocking search
orchestration.
*/

package tarrasch

import (
	"fmt"
	"sync/atomic"

	"github.com/treepeck/tarrasch/internal/logging"
)

var log = logging.GetLog()

// EventKind discriminates the events a running search reports.
type EventKind int

const (
	// EventInfo carries an iterative deepening progress record.
	EventInfo EventKind = iota
	// EventBestMove carries the final search result.
	EventBestMove
)

// Event is sent by a running search to the caller's event channel.
type Event struct {
	Kind   EventKind
	Info   Info         // valid when Kind is EventInfo
	Result SearchResult // valid when Kind is EventBestMove
}

/*
Game represents a full game state: the current position, its legal
moves, the repetition history, and the game result.

Game state methods are not safe for concurrent use.  The search runs
on its own goroutine and communicates only through the event channel
and the stop flag, so the caller may keep reading input (in particular
a stop command) while a search is in progress.
*/
type Game struct {
	LegalMoves MoveList
	Result     Result

	position Position
	// Repetition counts are stored as a map of Zobrist keys to the
	// number of times each position has occurred.  The map is cleared
	// whenever an irreversible move makes earlier repetitions
	// unreachable.
	// See https://www.chessprogramming.org/Irreversible_Moves
	repetitions map[uint64]int

	stopFlag  atomic.Bool
	searching atomic.Bool
}

// NewGame creates a game set to the standard initial position.
func NewGame() *Game {
	g := &Game{}
	g.SetStartPos()
	return g
}

// SetStartPos resets the game to the standard initial position.
func (g *Game) SetStartPos() {
	// InitialPos always parses.
	p, _ := ParseFEN(InitialPos)
	g.reset(p)
}

// SetFEN resets the game to the position described by the FEN string.
func (g *Game) SetFEN(fen string) error {
	p, err := ParseFEN(fen)
	if err != nil {
		return err
	}
	g.reset(p)
	return nil
}

func (g *Game) reset(p Position) {
	g.position = p
	g.repetitions = make(map[uint64]int, 1)
	g.repetitions[p.ZobristKey] = 1
	g.Result = ResultUnscored
	GenLegalMoves(&g.position, &g.LegalMoves)
	g.updateResult()
}

// Position returns a copy of the current position.
func (g *Game) Position() Position {
	return g.position
}

/*
PushMove updates the game state by performing the specified move and
returns its Standard Algebraic Notation.  It is the caller's
responsibility to ensure that the move is legal.
*/
func (g *Game) PushMove(m Move) string {
	san := SAN(m, &g.position, &g.LegalMoves)

	g.position.MakeMove(m)

	// Clear the repetition map after applying an irreversible move.
	_, isCastling := m.CastlingRookMove()
	if m.IsCapture() || isCastling || m.Promotion() != PieceNone ||
		m.Piece() <= PieceBPawn {
		clear(g.repetitions)
	}
	g.repetitions[g.position.ZobristKey]++

	GenLegalMoves(&g.position, &g.LegalMoves)
	g.updateResult()

	return san
}

/*
PushUCIMove parses a move in pure coordinate notation, verifies it
against the legal move list, applies it, and returns its SAN string.
*/
func (g *Game) PushUCIMove(s string) (string, error) {
	m, err := g.position.ParseUCIMove(s)
	if err != nil {
		return "", err
	}
	if !g.IsMoveLegal(m) {
		return "", fmt.Errorf("move %q is illegal in position %q", s, g.position.FEN())
	}
	return g.PushMove(m), nil
}

// IsMoveLegal checks the specified move against the legal move list.
func (g *Game) IsMoveLegal(m Move) bool {
	for i := range g.LegalMoves.LastMoveIndex {
		if g.LegalMoves.Moves[i] == m {
			return true
		}
	}
	return false
}

// updateResult records a game termination when the current position
// is terminal.
func (g *Game) updateResult() {
	switch {
	case g.LegalMoves.LastMoveIndex == 0 && g.position.InCheck():
		g.Result = ResultCheckmate
	case g.LegalMoves.LastMoveIndex == 0:
		g.Result = ResultStalemate
	case g.IsThreefoldRepetition():
		g.Result = ResultThreefoldRepetition
	case g.position.HalfmoveCnt >= 100:
		g.Result = ResultFiftyMove
	case g.IsInsufficientMaterial():
		g.Result = ResultInsufficientMaterial
	}
}

// IsThreefoldRepetition checks whether the same position has occurred
// three times.
func (g *Game) IsThreefoldRepetition() bool {
	return g.repetitions[g.position.ZobristKey] >= 3
}

/*
IsInsufficientMaterial returns true if one of the following holds:
  - both sides have a bare king;
  - one side has a king and a minor piece against a bare king;
  - both sides have a king and a bishop, the bishops standing on
    same-colored squares;
  - both sides have a king and a knight.
*/
func (g *Game) IsInsufficientMaterial() bool {
	p := &g.position

	// A pawn, rook, or queen on the board is always enough mating
	// material.
	heavy := p.Bitboards[PieceWPawn] | p.Bitboards[PieceBPawn] |
		p.Bitboards[PieceWRook] | p.Bitboards[PieceBRook] |
		p.Bitboards[PieceWQueen] | p.Bitboards[PieceBQueen]
	if heavy != 0 {
		return false
	}

	// Only kings and minor pieces remain.
	knights := p.Bitboards[PieceWKnight] | p.Bitboards[PieceBKnight]
	bishops := p.Bitboards[PieceWBishop] | p.Bitboards[PieceBBishop]

	if CountBits(knights)+CountBits(bishops) <= 1 {
		// Bare kings, or a lone minor piece against a bare king.
		return true
	}

	// A knight each is a dead draw.
	if bishops == 0 &&
		CountBits(p.Bitboards[PieceWKnight]) == 1 &&
		CountBits(p.Bitboards[PieceBKnight]) == 1 {
		return true
	}

	// So is a bishop each when both stand on squares of one color.
	if knights == 0 &&
		CountBits(p.Bitboards[PieceWBishop]) == 1 &&
		CountBits(p.Bitboards[PieceBBishop]) == 1 {
		// Bitmask of all light squares.
		const light = uint64(0x55AA55AA55AA55AA)
		onLight := func(bishop uint64) bool { return bishop&light != 0 }
		return onLight(p.Bitboards[PieceWBishop]) == onLight(p.Bitboards[PieceBBishop])
	}

	return false
}

/*
StartSearch runs the iterative deepening search on its own goroutine.
Progress and the final result are delivered to the events channel.  A
second StartSearch while one is still running is ignored; stop the
current search first.
*/
func (g *Game) StartSearch(params SearchParams, events chan<- Event) {
	if !g.searching.CompareAndSwap(false, true) {
		log.Warning("a search is already running, stop it first")
		return
	}

	// The search owns its private copy of the position; the game can
	// keep serving state queries meanwhile.
	pos := g.position

	go func() {
		defer func() {
			// The search has returned; clear the stop flag for the
			// next run.
			g.stopFlag.Store(false)
			g.searching.Store(false)
		}()

		result := Search(&pos, params, func(info Info) {
			events <- Event{Kind: EventInfo, Info: info}
		}, &g.stopFlag)

		events <- Event{Kind: EventBestMove, Result: result}
	}()
}

// StopSearch signals the running search to stop.  The search result
// still arrives on the event channel.
func (g *Game) StopSearch() {
	g.stopFlag.Store(true)
}
