// Command tarrasch is the UCI front-end of the engine.  It reads the
// text protocol from stdin, writes protocol replies to stdout, and
// keeps logging strictly on stderr.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/treepeck/tarrasch"
	"github.com/treepeck/tarrasch/internal/logging"
)

var log = logging.GetLog()

type uci struct {
	game   *tarrasch.Game
	events chan tarrasch.Event
}

func newUCI() *uci {
	u := &uci{
		game:   tarrasch.NewGame(),
		events: make(chan tarrasch.Event, 16),
	}

	// Search progress arrives asynchronously; forward it to stdout
	// for as long as the process lives.
	go func() {
		for ev := range u.events {
			switch ev.Kind {
			case tarrasch.EventInfo:
				fmt.Println("info " + ev.Info.String())
			case tarrasch.EventBestMove:
				if ev.Result.Outcome == tarrasch.OutcomeBestMove {
					fmt.Printf("bestmove %s\n", ev.Result.Best.UCI())
				} else {
					// Checkmate or stalemate on the board: there is
					// no move to play.
					fmt.Println("bestmove (none)")
				}
			}
		}
	}()

	return u
}

// execute dispatches a single protocol line.  It reports quit by
// returning false.
func (u *uci) execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	var err error
	switch fields[0] {
	case "uci":
		fmt.Println("id name tarrasch")
		fmt.Println("id author treepeck")
		fmt.Println("uciok")
	case "isready":
		fmt.Println("readyok")
	case "ucinewgame":
		u.game.SetStartPos()
	case "position":
		err = u.position(fields[1:])
	case "go":
		u.go_(fields[1:])
	case "stop":
		u.game.StopSearch()
	case "d":
		pos := u.game.Position()
		fmt.Println(pos.String())
	case "quit":
		return false
	default:
		log.Warningf("unhandled input: %q", line)
	}

	if err != nil {
		log.Errorf("%s: %v", fields[0], err)
	}
	return true
}

// position handles "position [startpos | fen <fen>] [moves <move>...]".
func (u *uci) position(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("expected startpos or fen")
	}

	moves := 0
	switch args[0] {
	case "startpos":
		u.game.SetStartPos()
		moves = 1
	case "fen":
		// A FEN string occupies the six fields after "fen".
		if len(args) < 7 {
			return fmt.Errorf("expected 6 FEN fields, got %d", len(args)-1)
		}
		if err := u.game.SetFEN(strings.Join(args[1:7], " ")); err != nil {
			return err
		}
		moves = 7
	default:
		return fmt.Errorf("expected startpos or fen, got %q", args[0])
	}

	if moves >= len(args) {
		return nil
	}
	if args[moves] != "moves" {
		return fmt.Errorf("expected moves, got %q", args[moves])
	}

	for _, s := range args[moves+1:] {
		if _, err := u.game.PushUCIMove(s); err != nil {
			return err
		}
	}
	return nil
}

// go_ handles "go [depth <n>]" and starts the search.
func (u *uci) go_(args []string) {
	var params tarrasch.SearchParams

	for i := 0; i+1 < len(args); i += 2 {
		switch args[i] {
		case "depth":
			d, err := strconv.Atoi(args[i+1])
			if err != nil {
				log.Errorf("go depth: %v", err)
				return
			}
			params.Depth = d
		default:
			log.Warningf("unhandled go option: %q", args[i])
		}
	}

	u.game.StartSearch(params, u.events)
}

func main() {
	u := newUCI()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if !u.execute(scanner.Text()) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		log.Errorf("stdin: %v", err)
	}
}
