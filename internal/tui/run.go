package tui

import (
	"context"
	"fmt"

	"donorjourney/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

// Option customizes the program started by Run.
type Option func(*options)

type options struct {
	styles  Styles
	program []tea.ProgramOption
}

// WithStyles overrides the detected theme.
func WithStyles(s Styles) Option {
	return func(o *options) { o.styles = s }
}

// WithProgramOptions passes options through to tea.NewProgram.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(o *options) { o.program = append(o.program, opts...) }
}

// Run starts the wizard and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, ctl *session.Controller, opts ...Option) error {
	o := options{styles: DefaultStyles()}
	for _, opt := range opts {
		opt(&o)
	}

	progOpts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, o.program...)
	p := tea.NewProgram(New(ctx, ctl, o.styles), progOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("onboarding wizard: %w", err)
	}
	return nil
}
