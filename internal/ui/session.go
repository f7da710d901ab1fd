package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/appengine-ltd/dice-rooms/internal/game"
	"github.com/appengine-ltd/dice-rooms/internal/parser"
)

// Session runs typed commands against one game and keeps the latest frame.
type Session struct {
	state  *game.State
	parser *parser.Parser
	sink   *TextSink

	// Logger, when set, gets one line per completed roll command.
	Logger *log.Logger
}

// NewSession draws the game into a TextSink it owns, replacing any sink the
// state carried.
func NewSession(state *game.State) *Session {
	sink := NewTextSink(nil)
	state.SetSink(sink)
	state.Draw()
	return &Session{state: state, parser: parser.New(), sink: sink}
}

func (s *Session) State() *game.State { return s.state }

// Frame is the current render of the game.
func (s *Session) Frame() string { return s.sink.Frame() }

// Result is what one line of input did.
type Result struct {
	Message string
	Applied int
	Quit    bool
}

func (s *Session) Exec(line string) Result {
	intent := s.parser.Parse(s.context(), line)
	if intent.Clarify != nil {
		return Result{Message: clarifyText(intent.Clarify)}
	}
	switch intent.Kind {
	case parser.Help:
		return Result{Message: s.helpText()}
	case parser.Quit:
		return Result{Quit: true}
	}

	signals, msg := Resolve(intent, s.state, s.sink.Buttons())
	if msg != "" {
		return Result{Message: msg}
	}
	res := Result{}
	for _, sig := range signals {
		if s.state.Apply(sig).Applied {
			res.Applied++
		}
	}
	s.state.Draw()

	switch {
	case res.Applied == 0:
		res.Message = "nothing happened"
	case intent.Verb == "roll":
		s.logRoll()
	}
	return res
}

func (s *Session) logRoll() {
	if s.Logger == nil {
		return
	}
	r := s.state.LastRoll()
	s.Logger.Printf("roll %d: passes=%d activations=%d spawned=%d phase=%s gold=%d",
		r.Roll, r.Passes, r.Activations, r.Spawned, r.Phase, s.state.Gold())
}

func (s *Session) context() parser.ParseContext {
	ctx := parser.ParseContext{}
	for _, r := range s.state.Shop() {
		ctx.ShopNames = append(ctx.ShopNames, r.Name())
	}
	for _, r := range s.state.Rooms() {
		ctx.RoomNames = append(ctx.RoomNames, r.Name())
	}
	return ctx
}

func (s *Session) helpText() string {
	var b strings.Builder
	b.WriteString("commands:")
	for _, def := range s.parser.Registry().Commands() {
		b.WriteString("\n  " + def.Usage)
		if len(def.Aliases) > 0 {
			b.WriteString("  (" + strings.Join(def.Aliases, ", ") + ")")
		}
	}
	b.WriteString("\na bare number presses that button")
	return b.String()
}

func clarifyText(q *parser.ClarifyQuestion) string {
	if len(q.Options) == 0 {
		return q.Prompt
	}
	parts := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		text := o.Verb
		if len(o.Args) > 0 {
			text += " " + strings.Join(o.Args, " ")
		}
		parts = append(parts, text)
	}
	return fmt.Sprintf("%s %s?", q.Prompt, strings.Join(parts, " or "))
}
