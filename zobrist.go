/*
zobrist.go implements the Zobrist hashing scheme.  Every position is
fingerprinted by a 64-bit key that is updated incrementally on each
move, supporting repetition detection and a future transposition table.
*/

package tarrasch

import "math/rand/v2"

/*
Keys are used to hash each possible position into a unique number.
The keys are generated from a PRNG with a fixed seed, so two processes
always compute identical hashes for identical positions.
*/
var (
	pieceKeys    [12][64]uint64
	sideKeys     [2]uint64
	castlingKeys [16]uint64
	// Indexed by the file of the en passant target square.
	epKeys [8]uint64
	// Distinguished key for "no en passant target".
	epNoneKey uint64
)

func init() {
	rng := rand.New(rand.NewPCG(0x7461727261736368, 0x6b61696b2d6b6579))

	for i := PieceWPawn; i <= PieceBKing; i++ {
		for square := range 64 {
			pieceKeys[i][square] = rng.Uint64()
		}
	}

	sideKeys[ColorWhite] = rng.Uint64()
	sideKeys[ColorBlack] = rng.Uint64()

	for i := range 16 {
		castlingKeys[i] = rng.Uint64()
	}

	for file := range 8 {
		epKeys[file] = rng.Uint64()
	}
	epNoneKey = rng.Uint64()
}

// epKey returns the en passant key of the given target square, or the
// distinguished "none" key when the target is unset.
func epKey(target int) uint64 {
	if target == 0 {
		return epNoneKey
	}
	return epKeys[target&7]
}

/*
zobristKey hashes the given position from scratch.  [Position.MakeMove]
maintains the same value incrementally; the two must always agree,
which is what the debug checks and tests verify.
*/
func zobristKey(p *Position) uint64 {
	var key uint64

	for i := PieceWPawn; i <= PieceBKing; i++ {
		bitboard := p.Bitboards[i]
		for bitboard > 0 {
			key ^= pieceKeys[i][popLSB(&bitboard)]
		}
	}

	key ^= sideKeys[p.ActiveColor]
	key ^= castlingKeys[p.CastlingRights]
	key ^= epKey(p.EPTarget)

	return key
}
