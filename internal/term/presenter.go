package term

import (
	"fmt"
	"io"
	"os"
)

// Status line prefixes. The exact prefix text is a user-visible contract:
// scripts and tests match on these literally, so they are never styled.
const (
	PrefixSuccess = "✅ "
	PrefixError   = "❌ "
	PrefixWarn    = "⚠️ "
	PrefixInfo    = "ℹ️ "
)

// Presenter renders status lines to a terminal. The emoji prefix is written
// verbatim; only the message text after it is styled.
type Presenter struct {
	out io.Writer
}

// NewPresenter creates a Presenter writing to out.
func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

// DefaultPresenter returns a Presenter on stdout.
func DefaultPresenter() *Presenter {
	return NewPresenter(os.Stdout)
}

// Success renders a success line.
func (p *Presenter) Success(msg string) {
	fmt.Fprintln(p.out, PrefixSuccess+StyleSuccess.Render(msg))
}

// Error renders an error line.
func (p *Presenter) Error(msg string) {
	fmt.Fprintln(p.out, PrefixError+StyleError.Render(msg))
}

// Warn renders a warning line.
func (p *Presenter) Warn(msg string) {
	fmt.Fprintln(p.out, PrefixWarn+StyleWarn.Render(msg))
}

// Info renders an informational line.
func (p *Presenter) Info(msg string) {
	fmt.Fprintln(p.out, PrefixInfo+StyleInfo.Render(msg))
}
