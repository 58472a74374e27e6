package tui

import (
	"context"
	stderrors "errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/fightsongs/internal/errors"
)

// Run starts the explorer and blocks until the user quits or ctx is done.
// Log records of the session carry its session id.
func Run(ctx context.Context, opts Options) error {
	if opts.Dataset == nil {
		return errors.New(errors.ErrDataset, "no dataset to explore")
	}

	m := New(opts)
	log := m.logger.WithContext(m.ctx)
	log.Info("session started",
		"source", opts.Dataset.Source(),
		"songs", opts.Dataset.Len(),
	)
	start := time.Now()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()

	log.Info("session ended", "elapsed", time.Since(start).Round(time.Second))

	if err != nil && !stderrors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, errors.ErrRender, "terminal interface failed")
	}
	return nil
}
