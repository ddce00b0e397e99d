package wizard

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/repoforge/forge/internal/app"
	"github.com/repoforge/forge/internal/github"
)

// hostingFactory resolves an authenticated GitHub client for the push
// option. It returns an error when no token is available.
type hostingFactory func() (*github.Client, error)

// repoReader synthesizes raw input from a repository URL.
type repoReader func(ctx context.Context, url string) (string, error)

// progressTickInterval drives the cosmetic progress bar. The bar is not a
// real measure of work; it creeps toward a ceiling until the generation
// task reports completion, then snaps to full.
const progressTickInterval = 100 * time.Millisecond

// progressCeiling is where the cosmetic bar stalls while work is pending.
const progressCeiling = 0.9

// Async result messages. Every message carries the runID captured when the
// command was dispatched; Update drops messages whose run is no longer
// current (the user went back or reset while the work was in flight).
type (
	detectDoneMsg struct {
		runID  int
		result *app.DetectResult
		err    error
	}

	generateDoneMsg struct {
		runID  int
		result *app.GenerateResult
		err    error
	}

	exportDoneMsg struct {
		runID int
		path  string
		err   error
	}

	writeDoneMsg struct {
		runID  int
		dir    string
		result *app.WriteResult
		err    error
	}

	pushDoneMsg struct {
		runID  int
		result *app.PushResult
		err    error
	}

	repoDoneMsg struct {
		runID   int
		summary string
		err     error
	}

	progressTickMsg struct {
		runID int
	}
)

// fetchRepoCmd synthesizes input from a repository URL off the event loop.
func (m *model) fetchRepoCmd(url string) tea.Cmd {
	runID := m.runID
	reader := m.reader
	return func() tea.Msg {
		summary, err := reader(context.Background(), url)
		return repoDoneMsg{runID: runID, summary: summary, err: err}
	}
}

// detectCmd runs detection off the event loop.
func (m *model) detectCmd() tea.Cmd {
	runID := m.runID
	rawInput := m.rawInput
	fromRepo := m.fromRepo
	client := m.client
	log := m.log
	return func() tea.Msg {
		result, err := app.Detect(context.Background(), app.DetectOptions{
			RawInput: rawInput,
			FromRepo: fromRepo,
			Client:   client,
			Log:      log,
		})
		return detectDoneMsg{runID: runID, result: result, err: err}
	}
}

// generateCmd runs tree generation off the event loop.
func (m *model) generateCmd() tea.Cmd {
	runID := m.runID
	cfg := m.cfg
	rawInput := m.rawInput
	client := m.client
	log := m.log
	return func() tea.Msg {
		result, err := app.Generate(context.Background(), app.GenerateOptions{
			Config:   cfg,
			RawInput: rawInput,
			Client:   client,
			Log:      log,
		})
		return generateDoneMsg{runID: runID, result: result, err: err}
	}
}

// exportCmd writes the zip archive off the event loop.
func (m *model) exportCmd(path string) tea.Cmd {
	runID := m.runID
	nodes := m.nodes
	log := m.log
	return func() tea.Msg {
		err := app.ExportZip(path, nodes, log)
		return exportDoneMsg{runID: runID, path: path, err: err}
	}
}

// writeCmd materializes the tree on disk off the event loop.
func (m *model) writeCmd(dir string) tea.Cmd {
	runID := m.runID
	nodes := m.nodes
	log := m.log
	return func() tea.Msg {
		result, err := app.WriteTree(context.Background(), dir, nodes, false, log)
		return writeDoneMsg{runID: runID, dir: dir, result: result, err: err}
	}
}

// pushCmd creates the repository and pushes the tree off the event loop.
func (m *model) pushCmd() tea.Cmd {
	runID := m.runID
	cfg := m.cfg
	nodes := m.nodes
	hosting := m.hosting
	log := m.log
	return func() tea.Msg {
		client, err := hosting()
		if err != nil {
			return pushDoneMsg{runID: runID, err: err}
		}
		result, err := app.CreateAndPush(context.Background(), app.PushOptions{
			Name:        cfg.Name,
			Description: cfg.Description,
			Nodes:       nodes,
			Client:      client,
			Log:         log,
		})
		return pushDoneMsg{runID: runID, result: result, err: err}
	}
}

// tickCmd schedules the next cosmetic progress tick for the current run.
func (m *model) tickCmd() tea.Cmd {
	runID := m.runID
	return tea.Tick(progressTickInterval, func(time.Time) tea.Msg {
		return progressTickMsg{runID: runID}
	})
}
