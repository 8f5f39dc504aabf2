package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OctaEDLP00/cli-builder-core/internal/clierr"
)

// LineReader asks one question and returns the raw answer line.
type LineReader interface {
	Ask(prompt string) (string, error)
}

// Presenter renders status lines during resolution (validation failures,
// rejected selections).
type Presenter interface {
	Success(msg string)
	Error(msg string)
	Warn(msg string)
	Info(msg string)
}

// Mode selects how unanswered prompts are resolved.
type Mode int

const (
	// ModeInteractive asks each prompt on the line reader.
	ModeInteractive Mode = iota

	// ModeDefaults performs no I/O: every still-unset prompt is filled from
	// its default, when one exists.
	ModeDefaults
)

// Engine resolves an ordered prompt list into an answer set. Resolution is
// strictly sequential: later prompts may read earlier answers through
// visibility predicates and validation rules.
type Engine struct {
	reader    LineReader
	presenter Presenter
}

// NewEngine creates an Engine over the given collaborators.
func NewEngine(reader LineReader, presenter Presenter) *Engine {
	return &Engine{reader: reader, presenter: presenter}
}

// Resolve walks the prompts in order and returns the final answer set. The
// seed is cloned, never mutated. For each prompt: a false visibility
// predicate skips it entirely (its name never appears in the result), an
// already-present key skips it (first write wins), and otherwise the prompt
// is dispatched by kind. The only resolution failure is a select or
// multiselect definition with no choices.
func (e *Engine) Resolve(prompts []Definition, seed AnswerSet, mode Mode) (AnswerSet, error) {
	answers := seed.Clone()
	if answers == nil {
		answers = AnswerSet{}
	}

	for i := range prompts {
		d := &prompts[i]

		if d.When != nil && !d.When(answers) {
			continue
		}
		if answers.Has(d.Name) {
			continue
		}

		if (d.Kind == KindSelect || d.Kind == KindMultiSelect) && len(d.Choices) == 0 {
			return nil, clierr.New(clierr.KindConfiguration,
				fmt.Sprintf("prompt %q: %s prompt requires at least one choice", d.Name, d.Kind),
				clierr.Context{Operation: "resolve"})
		}

		if mode == ModeDefaults {
			if value, ok := defaultValue(d); ok {
				answers[d.Name] = applyTransform(d, value)
			}
			continue
		}

		value, err := e.dispatch(d, answers)
		if err != nil {
			return nil, err
		}
		answers[d.Name] = applyTransform(d, value)
	}

	return answers, nil
}

// dispatch runs the interactive loop for one prompt and returns the raw
// resolved value.
func (e *Engine) dispatch(d *Definition, answers AnswerSet) (any, error) {
	switch d.Kind {
	case KindInput:
		return e.askInput(d, answers)
	case KindSelect:
		return e.askSelect(d)
	case KindConfirm:
		return e.askConfirm(d)
	case KindMultiSelect:
		return e.askMultiSelect(d)
	default:
		return nil, clierr.New(clierr.KindConfiguration,
			fmt.Sprintf("prompt %q: unknown kind %q", d.Name, d.Kind),
			clierr.Context{Operation: "resolve"})
	}
}

// askInput loops until the submitted value passes the attached rule. There
// is no retry bound: this is a human-interactive retry-until-valid loop.
func (e *Engine) askInput(d *Definition, answers AnswerSet) (any, error) {
	def, _ := d.Default.(string)

	question := d.Message
	if def != "" {
		question += " (" + def + ")"
	}
	question += ": "

	for {
		raw, err := e.reader.Ask(question)
		if err != nil {
			return nil, fmt.Errorf("prompt %q: %w", d.Name, err)
		}

		value := strings.TrimSpace(raw)
		if value == "" && def != "" {
			value = def
		}

		if d.Rule != nil {
			if ok, msg := d.Rule.Apply(value, answers); !ok {
				e.presenter.Error(msg)
				continue
			}
		}

		return value, nil
	}
}

// askSelect renders the choice list with 1-based indices and loops until a
// valid index is entered. The stored answer is the choice's value.
func (e *Engine) askSelect(d *Definition) (any, error) {
	menu := renderMenu(d)

	for {
		raw, err := e.reader.Ask(menu + fmt.Sprintf("Enter number [1-%d]: ", len(d.Choices)))
		if err != nil {
			return nil, fmt.Errorf("prompt %q: %w", d.Name, err)
		}

		n, convErr := strconv.Atoi(strings.TrimSpace(raw))
		if convErr != nil || n < 1 || n > len(d.Choices) {
			e.presenter.Error(fmt.Sprintf("invalid selection %q: choose 1-%d", strings.TrimSpace(raw), len(d.Choices)))
			continue
		}

		return d.Choices[n-1].Value, nil
	}
}

// affirmative is the closed token set that resolves a confirm prompt true.
var affirmative = map[string]bool{"y": true, "yes": true, "true": true, "1": true}

// askConfirm reads one line and resolves true iff the trimmed, lowercased
// input is an affirmative token. The configured default shapes only the
// (Y/n)/(y/N) hint; an empty line resolves false, it does not fall back to
// the default.
func (e *Engine) askConfirm(d *Definition) (any, error) {
	hint := "(y/N)"
	if def, ok := d.Default.(bool); ok && def {
		hint = "(Y/n)"
	}

	raw, err := e.reader.Ask(d.Message + " " + hint + " ")
	if err != nil {
		return nil, fmt.Errorf("prompt %q: %w", d.Name, err)
	}

	return affirmative[strings.ToLower(strings.TrimSpace(raw))], nil
}

// askMultiSelect reads one comma-separated line of 1-based indices.
// Out-of-range and non-numeric tokens are silently dropped; the result
// preserves the user's typed order and duplicates.
func (e *Engine) askMultiSelect(d *Definition) (any, error) {
	menu := renderMenu(d)

	raw, err := e.reader.Ask(menu + "Enter numbers separated by commas: ")
	if err != nil {
		return nil, fmt.Errorf("prompt %q: %w", d.Name, err)
	}

	var values []string
	for _, tok := range strings.Split(raw, ",") {
		n, convErr := strconv.Atoi(strings.TrimSpace(tok))
		if convErr != nil || n < 1 || n > len(d.Choices) {
			continue
		}
		values = append(values, d.Choices[n-1].Value)
	}

	return values, nil
}

// renderMenu formats the ordered choice list with 1-based indices and
// optional descriptions.
func renderMenu(d *Definition) string {
	var b strings.Builder
	b.WriteString("\n" + d.Message + "\n")
	for i, c := range d.Choices {
		b.WriteString(fmt.Sprintf("  %d) %s", i+1, c.Label))
		if c.Description != "" {
			b.WriteString(" - " + c.Description)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// defaultValue resolves a prompt's default for defaults-only mode.
func defaultValue(d *Definition) (any, bool) {
	switch d.Kind {
	case KindInput, KindSelect:
		if s, ok := d.Default.(string); ok && s != "" {
			return s, true
		}
	case KindConfirm:
		if b, ok := d.Default.(bool); ok {
			return b, true
		}
	case KindMultiSelect:
		if l, ok := d.Default.([]string); ok {
			return l, true
		}
	}
	return nil, false
}

func applyTransform(d *Definition, value any) any {
	if d.Transform != nil {
		return d.Transform(value)
	}
	return value
}
