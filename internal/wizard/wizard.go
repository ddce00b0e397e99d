package wizard

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/repoforge/forge/internal/ai"
	"github.com/repoforge/forge/internal/config"
)

// Options configures a wizard run.
type Options struct {
	// Client is the AI adapter (keyless clients serve fallbacks).
	Client *ai.Client
	// Settings are the persisted forge settings.
	Settings config.Settings
	// Hosting resolves an authenticated GitHub client for the push option.
	Hosting hostingFactory
	// Reader synthesizes raw input from a repository URL.
	Reader repoReader
}

// Run starts the interactive wizard and blocks until the user quits.
func Run(opts Options) error {
	m := newModel(opts.Client, opts.Settings, opts.Hosting, opts.Reader)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
