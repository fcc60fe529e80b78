package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/shopping-buddy/internal/shopping"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the manager's initial load and runs the terminal UI until the
// user quits or ctx is canceled.
func Run(ctx context.Context, manager *shopping.Manager, opts ...Option) error {
	p := tea.NewProgram(
		New(ctx, manager, opts...),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	stop := forwardChanges(manager, p)
	defer stop()

	manager.Initialize(ctx)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// sender is the part of *tea.Program that forwardChanges needs.
type sender interface {
	Send(msg tea.Msg)
}

// forwardChanges relays manager notifications to the program. Observers run
// on whatever goroutine mutated the manager, often the program's own update
// loop, so they only set a pending flag and never block on Send.
func forwardChanges(manager *shopping.Manager, p sender) (stop func()) {
	pending := make(chan struct{}, 1)
	done := make(chan struct{})

	unsubscribe := manager.Subscribe(func(shopping.State) {
		select {
		case pending <- struct{}{}:
		default:
		}
	})

	go func() {
		for {
			select {
			case <-pending:
				p.Send(stateChangedMsg{})
			case <-done:
				return
			}
		}
	}()

	return func() {
		unsubscribe()
		close(done)
	}
}
