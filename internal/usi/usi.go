// Package usi implements the line protocol used to drive the board from a
// terminal or a GUI.
package usi

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/hailam/shogiplay/internal/board"
	"github.com/hailam/shogiplay/internal/kif"
	"github.com/hailam/shogiplay/internal/perft"
	"github.com/hailam/shogiplay/internal/storage"
)

// maxPerftDepth bounds perft requests from the protocol.
const maxPerftDepth = 12

var errUsage = errors.New("usage")

// Options wires optional collaborators into the protocol handler.
type Options struct {
	// Perft runs perft and splitperft. Nil means a sequential count without cache.
	Perft *perft.Runner

	// Store records perft results and flags disagreements. Nil disables it.
	Store *storage.Store

	Logger logr.Logger
}

// USI implements the protocol loop.
type USI struct {
	board *board.Board
	out   io.Writer
	opts  Options
}

// New creates a protocol handler positioned at the standard start.
func New(out io.Writer, opts Options) *USI {
	if opts.Logger.GetSink() == nil {
		opts.Logger = logr.Discard()
	}
	return &USI{
		board: board.NewStartBoard(),
		out:   out,
		opts:  opts,
	}
}

// Board returns the current board.
func (u *USI) Board() *board.Board {
	return u.board
}

// Run reads commands until quit, end of input or context cancellation.
func (u *USI) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !u.Execute(ctx, line) {
			return nil
		}
	}

	return scanner.Err()
}

// Execute runs one command line and reports whether the loop should continue.
func (u *USI) Execute(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	cmd := parts[0]
	args := parts[1:]
	u.opts.Logger.V(1).Info("command", "line", line)

	var err error
	switch cmd {
	case "usi":
		u.handleUSI()
	case "isready":
		u.println("readyok")
	case "usinewgame":
		u.board = board.NewStartBoard()
	case "position":
		err = u.handlePosition(args)
	case "print", "d":
		u.board.PrintState(u.out)
	case "sfen":
		u.println(u.board.SFEN())
	case "moves":
		u.handleMoves()
	case "makemove":
		err = u.handleMakeMove(args)
	case "undo":
		err = u.handleUndo()
	case "perft":
		err = u.handlePerft(ctx, args, false)
	case "splitperft":
		err = u.handlePerft(ctx, args, true)
	case "kif":
		err = u.handleKIF(args)
	case "quit":
		return false
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}

	if err != nil {
		u.opts.Logger.Error(err, "command failed", "line", line)
		u.printf("info string error: %v\n", err)
	}
	return true
}

func (u *USI) println(s string) {
	fmt.Fprintln(u.out, s)
}

func (u *USI) printf(format string, args ...any) {
	fmt.Fprintf(u.out, format, args...)
}

// handleUSI responds to the "usi" command.
func (u *USI) handleUSI() {
	u.println("id name ShogiPlay")
	u.println("id author ShogiPlay Team")
	u.println("usiok")
}

// handlePosition parses and sets up a position.
// Formats:
//   - position startpos
//   - position startpos moves 7g7f 3c3d
//   - position sfen <board> <stm> <hand> [ply] [moves ...]
//   - position <board> <stm> <hand> [ply] [moves ...]
//
// The current board is kept when any part fails.
func (u *USI) handlePosition(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: position startpos|sfen <sfen> [moves ...]", errUsage)
	}

	// Find "moves" keyword
	moveStart := len(args)
	for i, arg := range args {
		if arg == "moves" {
			moveStart = i
			break
		}
	}

	var sfen string
	switch args[0] {
	case "startpos":
		if moveStart != 1 {
			return fmt.Errorf("%w: unexpected %q after startpos", errUsage, args[1])
		}
		sfen = board.StartSFEN
	case "sfen":
		sfen = strings.Join(args[1:moveStart], " ")
	default:
		sfen = strings.Join(args[:moveStart], " ")
	}

	b := board.NewBoard()
	if err := b.Load(sfen); err != nil {
		return err
	}

	if moveStart < len(args) {
		if err := applyActions(b, args[moveStart+1:]); err != nil {
			return err
		}
	}

	u.board = b
	return nil
}

// applyActions plays USI action strings, stopping at the first bad one.
func applyActions(b *board.Board, actions []string) error {
	for i, s := range actions {
		a, err := board.ParseAction(s, b)
		if err != nil {
			return fmt.Errorf("action %d: %w", i+1, err)
		}
		if !b.PerformAction(a) {
			return fmt.Errorf("action %d: %w: %s is illegal", i+1, board.ErrInvalidAction, s)
		}
	}
	return nil
}

// handleMoves lists the legal actions with their index in the generated list,
// which is the index makemove expects.
func (u *USI) handleMoves() {
	actions := u.board.GetActions()
	n := 0
	for i, a := range actions.Slice() {
		if !u.board.PerformAction(a) {
			continue
		}
		u.board.UndoAction()
		u.printf("%d %v\n", i, a)
		n++
	}
	u.printf("info string %d legal of %d generated\n", n, actions.Len())
}

// handleMakeMove plays the action at an index of the generated action list.
func (u *USI) handleMakeMove(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: makemove <index>", errUsage)
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q", args[0])
	}

	actions := u.board.GetActions()
	if idx < 0 || idx >= actions.Len() {
		return fmt.Errorf("index %d out of range [0, %d)", idx, actions.Len())
	}
	a := actions.Get(idx)
	if !u.board.PerformAction(a) {
		return fmt.Errorf("%w: %v is illegal", board.ErrInvalidAction, a)
	}
	return nil
}

func (u *USI) handleUndo() error {
	if u.board.Depth() == 0 {
		return errors.New("nothing to undo")
	}
	u.board.UndoAction()
	return nil
}

// handlePerft runs a perft or split perft and checks the result against
// the record store.
func (u *USI) handlePerft(ctx context.Context, args []string, split bool) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: perft <depth>", errUsage)
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 || depth > maxPerftDepth {
		return fmt.Errorf("invalid depth %q (want 1-%d)", args[0], maxPerftDepth)
	}

	report := perft.Report{Depth: depth}
	start := time.Now()
	switch {
	case split && u.opts.Perft != nil:
		report.Split, err = u.opts.Perft.Split(ctx, u.board, depth)
		report.Nodes = perft.Sum(report.Split)
	case split:
		report.Split = perft.Split(u.board, depth)
		report.Nodes = perft.Sum(report.Split)
	case u.opts.Perft != nil:
		report.Nodes, err = u.opts.Perft.Count(ctx, u.board, depth)
	default:
		report.Nodes = perft.Count(u.board, depth)
	}
	if err != nil {
		return err
	}
	report.Elapsed = time.Since(start)

	if err := report.Write(u.out); err != nil {
		return err
	}
	u.opts.Logger.Info("perft finished", "report", report.String())
	return u.checkRecord(report)
}

func (u *USI) checkRecord(report perft.Report) error {
	if u.opts.Store == nil {
		return nil
	}
	mismatch, previous, err := u.opts.Store.CheckPerft(storage.PerftRecord{
		SFEN:    u.board.SFEN(),
		Depth:   report.Depth,
		Nodes:   report.Nodes,
		Elapsed: report.Elapsed,
		Backend: board.ActiveBackend().String(),
	})
	if err != nil {
		return fmt.Errorf("perft record: %w", err)
	}
	if mismatch {
		u.printf("info string warning: %d nodes differ from recorded %d\n", report.Nodes, previous)
	}
	return nil
}

// handleKIF loads the start position and replays a KIF record.
func (u *USI) handleKIF(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: kif <path>", errUsage)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	rec, err := kif.Parse(f)
	if err != nil {
		return err
	}

	b := board.NewStartBoard()
	if err := applyActions(b, rec.Actions); err != nil {
		return err
	}
	u.board = b

	u.printf("info string loaded %d actions", len(rec.Actions))
	if rec.Result != "" {
		u.printf(" (%s)", rec.Result)
	}
	u.println("")
	return nil
}
