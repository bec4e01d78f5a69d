package entry

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bft-labs/bowltrack/internal/domain"
)

// Prompt runs the interactive recording loop on a line-oriented terminal.
//
// Each line holds either pin counts for the next throws, "m <frame>
// <throws...>" to re-enter a bowled frame, or "q" to abandon the game.
type Prompt struct {
	in     *bufio.Scanner
	out    io.Writer
	render func(domain.Game) string
}

// NewPrompt reads lines from in and writes prompts to out. render prints
// the game between frames; nil disables it.
func NewPrompt(in io.Reader, out io.Writer, render func(domain.Game) string) *Prompt {
	return &Prompt{in: bufio.NewScanner(in), out: out, render: render}
}

// Record bowls game to completion. It returns ErrQuit when the player
// quits, or io.ErrUnexpectedEOF when input ends first.
func (p *Prompt) Record(game domain.Game) (domain.Game, error) {
	rec := NewRecorder(game)
	shown := 0

	for !rec.Done() {
		if rec.Frame() != shown && len(rec.Pending()) == 0 {
			p.show(rec.Game())
			fmt.Fprintf(p.out, "Frame %d\n", rec.Frame())
			shown = rec.Frame()
		}
		fmt.Fprint(p.out, "[>] ")

		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return rec.Game(), err
			}
			return rec.Game(), io.ErrUnexpectedEOF
		}
		line := p.in.Text()

		cmd := ParseCommand(line)
		switch cmd.Name {
		case "":
			p.warn("No inputs entered")
			continue
		case "q", "quit":
			fmt.Fprintln(p.out, "Exiting new game...")
			return rec.Game(), ErrQuit
		case "m", "modify":
			if err := p.modify(rec, cmd.Args); err != nil {
				p.warn(err.Error())
				continue
			}
			p.show(rec.Game())
			continue
		}

		scores := ParseScores(line)
		if len(scores) == 0 {
			p.warn("Invalid scores entered")
			continue
		}
		for _, pins := range scores {
			if _, err := rec.Throw(pins); err != nil {
				p.warn(err.Error())
				break
			}
		}
	}

	p.show(rec.Game())
	return rec.Game(), nil
}

func (p *Prompt) modify(rec *Recorder, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: m <frame> <throws...>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("not a frame number: %q", args[0])
	}
	throws := ParseScores(strings.Join(args[1:], " "))
	if len(throws) != len(args)-1 {
		return fmt.Errorf("invalid scores entered")
	}
	return rec.Replace(n, throws)
}

func (p *Prompt) show(g domain.Game) {
	if p.render != nil {
		fmt.Fprint(p.out, p.render(g))
	}
}

func (p *Prompt) warn(msg string) {
	fmt.Fprintf(p.out, "[!] %s\n\n", msg)
}
