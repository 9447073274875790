// Package console implements a line-oriented debug shell for move generation.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/service"
)

// Console reads commands from in and writes answers to out.
//
//	position startpos | position fen <fen>
//	d                  print the board and its FEN
//	fen                print the FEN only
//	moves [square]     list moves of the side to move, or of one piece
//	verify             compare every piece against the oracle
//	save [label]       store the position, print its id
//	load <id>          restore a stored position
//	list               list stored positions
//	quit
type Console struct {
	in    io.Reader
	out   io.Writer
	svc   *service.MoveService
	board *board.Board
}

// New creates a console starting from the standard position.
func New(in io.Reader, out io.Writer, svc *service.MoveService) *Console {
	return &Console{
		in:    in,
		out:   out,
		svc:   svc,
		board: board.StandardBoard(),
	}
}

// Run processes commands until quit or end of input.
func (c *Console) Run() error {
	scanner := bufio.NewScanner(c.in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "position":
			c.handlePosition(args)
		case "d":
			fmt.Fprint(c.out, c.board.String())
			fmt.Fprintf(c.out, "Fen: %s\n", c.board.FEN())
		case "fen":
			fmt.Fprintln(c.out, c.board.FEN())
		case "moves":
			c.handleMoves(args)
		case "verify":
			c.handleVerify()
		case "save":
			c.handleSave(args)
		case "load":
			c.handleLoad(args)
		case "list":
			c.handleList()
		case "quit":
			return nil
		default:
			fmt.Fprintf(c.out, "Unknown command: %s\n", cmd)
		}
	}

	return scanner.Err()
}

// Board returns the current position.
func (c *Console) Board() *board.Board {
	return c.board
}

// handlePosition sets up a position.
// Formats:
//   - position startpos
//   - position fen <fen>
func (c *Console) handlePosition(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(c.out, "error: position needs startpos or fen")
		return
	}

	switch args[0] {
	case "startpos":
		c.board = board.StandardBoard()
	case "fen":
		b, err := board.ParseFEN(strings.Join(args[1:], " "))
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
			return
		}
		c.board = b
	default:
		fmt.Fprintf(c.out, "error: unknown position type %q\n", args[0])
	}
}

func (c *Console) handleMoves(args []string) {
	var moves []board.Move
	if len(args) == 0 {
		moves = c.board.LegalMoves(c.board.MoveMaker())
	} else {
		sq, err := board.ParseCoordinate(args[0])
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
			return
		}
		moves, err = c.board.PieceMoves(sq)
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
			return
		}
	}

	for _, m := range moves {
		fmt.Fprintf(c.out, "%s %s\n", m, board.Notation(m))
	}
	fmt.Fprintf(c.out, "Moves: %d\n", len(moves))
}

func (c *Console) handleVerify() {
	report, err := c.svc.Verify(c.board.FEN())
	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		return
	}
	for _, m := range report.Mismatches {
		fmt.Fprintln(c.out, m)
	}
	fmt.Fprintf(c.out, "Verified %d pieces, %d mismatches\n", report.Pieces, len(report.Mismatches))
}

func (c *Console) handleSave(args []string) {
	snap, err := c.svc.CreateSnapshot(c.board.FEN(), strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Saved %s\n", snap.ID)
}

func (c *Console) handleLoad(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "error: load needs a snapshot id")
		return
	}
	snap, err := c.svc.Snapshot(args[0])
	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		return
	}
	b, err := board.ParseFEN(snap.FEN)
	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		return
	}
	c.board = b
	fmt.Fprintf(c.out, "Loaded %s\n", snap.ID)
}

func (c *Console) handleList() {
	snaps, err := c.svc.Snapshots()
	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		return
	}
	for _, s := range snaps {
		fmt.Fprintf(c.out, "%s %s %s\n", s.ID, s.FEN, s.Label)
	}
}
