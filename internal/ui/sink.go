package ui

import (
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/appengine-ltd/dice-rooms/internal/game"
)

var d6Faces = []string{"⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

// TextSink renders a frame as plain lines. Every button gets a number in
// brackets; Buttons reports which signal each number stands for.
type TextSink struct {
	out     io.Writer
	printer *message.Printer

	buf     strings.Builder
	button  *strings.Builder
	lists   []int
	current []game.Signal

	frame   string
	buttons []game.Signal
	started bool
}

// NewTextSink writes each flushed frame to out. out may be nil when only
// Frame is read.
func NewTextSink(out io.Writer) *TextSink {
	return &TextSink{out: out, printer: message.NewPrinter(language.English)}
}

// Frame is the last flushed frame.
func (t *TextSink) Frame() string { return t.frame }

// Buttons lists the signals of the last flushed frame; button [n] is entry n-1.
func (t *TextSink) Buttons() []game.Signal {
	return append([]game.Signal(nil), t.buttons...)
}

func (t *TextSink) begin() {
	if t.started {
		return
	}
	t.started = true
	t.buf.Reset()
	t.lists = t.lists[:0]
	t.current = nil
}

func (t *TextSink) write(s string) {
	t.begin()
	if t.button != nil {
		t.button.WriteString(s)
		return
	}
	t.buf.WriteString(s)
}

func (t *TextSink) Int(v int64) {
	t.write(t.printer.Sprintf("%d", v))
}

func (t *TextSink) Decimal(v float64) {
	t.write(t.printer.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(2))))
}

func (t *TextSink) Text(s string) { t.write(s) }

func (t *TextSink) Symbol(s game.Symbol) {
	if h, ok := s.Dice(); ok {
		t.write(diceGlyph(h) + " ")
		return
	}
	switch s {
	case game.SymbolGold:
		t.write(goldStyle.Render("g"))
	case game.SymbolArrow:
		t.write(" -> ")
	case game.SymbolActivation:
		t.write(" left")
	case game.SymbolUnbounded:
		t.write("any")
	}
}

func diceGlyph(h game.DiceHash) string {
	if h.Type() == game.DiceD6 {
		if f := h.Face(); f >= 1 && f <= len(d6Faces) {
			return d6Faces[f-1]
		}
	}
	return h.String()
}

func (t *TextSink) BeginRoom() {
	t.begin()
	n := 0
	if len(t.lists) > 0 {
		t.lists[len(t.lists)-1]++
		n = t.lists[len(t.lists)-1]
	}
	t.newline()
	t.write(t.printer.Sprintf("%d. ", n))
}

func (t *TextSink) EndRoom() {}

func (t *TextSink) BeginUpgrade() { t.BeginRoom() }

func (t *TextSink) EndUpgrade() {}

func (t *TextSink) BeginButton(sig game.Signal) {
	t.begin()
	t.current = append(t.current, sig)
	t.button = &strings.Builder{}
}

func (t *TextSink) EndButton() {
	if t.button == nil {
		return
	}
	label := t.button.String()
	t.button = nil
	t.write(" " + buttonStyle.Render(t.printer.Sprintf("[%d %s]", len(t.current), label)))
}

func (t *TextSink) BeginParagraph() {
	t.begin()
	if t.buf.Len() > 0 {
		t.buf.WriteString("\n")
	}
}

func (t *TextSink) EndParagraph() {}

func (t *TextSink) BeginList() {
	t.begin()
	t.lists = append(t.lists, 0)
}

func (t *TextSink) EndList() {
	if len(t.lists) > 0 {
		t.lists = t.lists[:len(t.lists)-1]
	}
	if len(t.lists) == 0 {
		t.buf.WriteString("\n" + border.Render(rule))
	}
}

func (t *TextSink) Flush() {
	t.begin()
	t.frame = t.buf.String() + "\n"
	t.buttons = t.current
	t.started = false
	if t.out != nil {
		_, _ = io.WriteString(t.out, t.frame)
	}
}

func (t *TextSink) newline() {
	t.buf.WriteString("\n" + strings.Repeat("  ", max(len(t.lists)-1, 0)))
}
