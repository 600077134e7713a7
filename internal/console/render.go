// internal/console/render.go
//
// Plain-text rendering of the game: turn header, dice and the scorecard.
// The same scorecard text goes to the console and to the exported file.

package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/yahtzee/internal/game"
)

const (
	borderChar   = "*"
	displayWidth = 70
	invalidMsg   = "*** Invalid input ***"

	// U+2680 is the "die face-1" glyph; faces 2–6 follow it.
	dieGlyphBase = '\u267F'
)

// Renderer writes game views to w. Write errors are ignored; the console is best effort.
type Renderer struct {
	w io.Writer
}

// NewRenderer returns a Renderer writing to w.
func NewRenderer(w io.Writer) *Renderer { return &Renderer{w: w} }

func (r *Renderer) println(a ...any) { _, _ = fmt.Fprintln(r.w, a...) }

func (r *Renderer) printf(format string, a ...any) { _, _ = fmt.Fprintf(r.w, format, a...) }

// Lines writes each line followed by a newline.
func (r *Renderer) Lines(lines ...string) {
	for _, l := range lines {
		r.println(l)
	}
}

// TurnHeader prints "Turn #N Roll #M" centred between two borders.
func (r *Renderer) TurnHeader(turn, roll int) {
	label := fmt.Sprintf("Turn #%d Roll #%d", turn, roll)
	pad := 0
	if len(label) < displayWidth {
		pad = (displayWidth - len(label)) / 2
	}
	r.println(strings.Repeat(borderChar, displayWidth))
	r.println(strings.Repeat(" ", pad) + label)
	r.println(strings.Repeat(borderChar, displayWidth))
}

// Dice prints the header followed by one line per die.
func (r *Renderer) Dice(g *game.Game) {
	r.println()
	r.TurnHeader(g.Turn, g.Rolls)
	for i, d := range g.Hand {
		r.printf("Die #%d = %c (%d)\n", i+1, dieGlyphBase+rune(d), d)
	}
	r.println()
}

// Invalid prints the framed invalid-input message.
func (r *Renderer) Invalid() {
	border := strings.Repeat(borderChar, len(invalidMsg))
	r.println()
	r.println(border)
	r.println(invalidMsg)
	r.println(border)
}

// Scorecard prints both sections and the totals.
// Unset categories show only their label; a recorded zero shows " = 0".
// Totals show only when positive.
func (r *Renderer) Scorecard(card *game.Scorecard) {
	rules := card.Rules()
	upper := card.UpperSubtotal()
	lower := card.LowerTotal()

	r.println()
	r.println("UPPER SECTION")
	for c := game.Aces; c <= game.Sixes; c++ {
		r.println(categoryLine(card, c))
	}
	r.println(totalLine("TOTAL SCORE", upper, upper > 0))
	r.println(totalLine(fmt.Sprintf("BONUS if >= %d", rules.UpperBonusThreshold), card.UpperBonus(), card.UpperBonus() > 0))
	r.println(totalLine("TOTAL of Upper Section", card.UpperTotal(), upper > 0))
	r.println()

	r.println("LOWER SECTION")
	for c := game.ThreeOfAKind; c <= game.YahtzeeBonus; c++ {
		r.println(categoryLine(card, c))
	}
	r.println(totalLine("TOTAL of Lower Section", lower, lower > 0))
	r.println(totalLine("TOTAL of Upper Section", card.UpperTotal(), upper > 0))
	r.println(totalLine("GRAND TOTAL", card.GrandTotal(), upper+lower > 0))
	r.println()
}

// categoryLine renders "N)  Label = score"; two-digit numbers get one space.
func categoryLine(card *game.Scorecard, c game.Category) string {
	sep := ")  "
	if c >= 10 {
		sep = ") "
	}
	line := fmt.Sprintf("%d%s%s", int(c), sep, c)
	if _, ok := card.Get(c); ok {
		line += fmt.Sprintf(" = %d", card.Points(c))
	}
	return line
}

func totalLine(label string, value int, show bool) string {
	if !show {
		return label
	}
	return fmt.Sprintf("%s = %d", label, value)
}
