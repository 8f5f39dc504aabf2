package term

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// RunWithSpinner executes an action while showing a spinner with the given
// title. When stdout is not a TTY the action runs directly with no spinner.
// Returns the action's error.
func RunWithSpinner(ctx context.Context, title string, action func() error) error {
	if !IsTTY() {
		return action()
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- action()
	}()

	s := spinner.New().Title(title)

	spinnerErr := s.Action(func() {
		select {
		case <-ctx.Done():
			return
		case err := <-errCh:
			// Put the result back for the final read below.
			errCh <- err
		}
	}).Run()

	if spinnerErr != nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
