package wizard

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/repoforge/forge/internal/config"
	"github.com/repoforge/forge/internal/scaffold/tree"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.textarea.SetWidth(m.width - 4)
		m.fieldEdit.SetWidth(m.width - 40)
		m.viewport.Width = m.width - 4
		m.viewport.Height = m.height - 14
		m.progress.Width = m.width - 8
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case spinner.TickMsg:
		if !m.working {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progressTickMsg:
		// Cosmetic only: creep toward the ceiling until the real task
		// reports completion.
		if msg.runID != m.runID || !m.working {
			return m, nil
		}
		if m.percent < progressCeiling {
			m.percent += 0.02
		}
		return m, m.tickCmd()

	case repoDoneMsg:
		if msg.runID != m.runID {
			return m, nil
		}
		m.working = false
		if msg.err != nil {
			m.lastErr = msg.err.Error()
			return m, nil
		}
		m.rawInput = msg.summary
		m.fromRepo = true
		m.step = stepDetect
		m.working = true
		return m, tea.Batch(m.detectCmd(), m.spinner.Tick)

	case detectDoneMsg:
		if msg.runID != m.runID {
			return m, nil
		}
		m.working = false
		if msg.err != nil {
			m.lastErr = msg.err.Error()
			m.step = stepUpload
			m.textarea.Focus()
			return m, nil
		}
		m.detection = msg.result.Detection
		m.detectSrc = msg.result.Source
		config.MergeDetection(&m.cfg, m.detection)
		return m, nil

	case generateDoneMsg:
		if msg.runID != m.runID {
			return m, nil
		}
		// The ticker and the task join here: the bar snaps to full only
		// when the real work is done.
		m.working = false
		m.percent = 1.0
		if msg.err != nil {
			m.lastErr = msg.err.Error()
			m.step = stepConfigure
			return m, nil
		}
		m.nodes = msg.result.Nodes
		m.genSrc = msg.result.Source
		m.buildPreview()
		m.step = stepPreview
		return m, nil

	case exportDoneMsg:
		if msg.runID != m.runID {
			return m, nil
		}
		m.working = false
		m.percent = 1.0
		if msg.err != nil {
			m.lastErr = msg.err.Error()
			return m, nil
		}
		m.outputDone = true
		m.outputMsg = "exported " + msg.path
		return m, nil

	case writeDoneMsg:
		if msg.runID != m.runID {
			return m, nil
		}
		m.working = false
		m.percent = 1.0
		if msg.err != nil {
			m.lastErr = msg.err.Error()
			return m, nil
		}
		m.outputDone = true
		m.outputMsg = "wrote scaffold to " + msg.dir
		return m, nil

	case pushDoneMsg:
		if msg.runID != m.runID {
			return m, nil
		}
		m.working = false
		m.percent = 1.0
		if msg.err != nil {
			if msg.result != nil && msg.result.Repo != nil {
				m.lastErr = "repository created at " + msg.result.Repo.HTMLURL + " but the push failed: " + msg.err.Error()
			} else {
				m.lastErr = msg.err.Error()
			}
			return m, nil
		}
		m.outputDone = true
		m.outputMsg = "pushed to " + msg.result.Repo.HTMLURL
		return m, nil
	}

	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+n":
		m.reset()
		return m, nil
	case "esc":
		if m.editing {
			m.editing = false
			return m, nil
		}
		m.back()
		return m, nil
	}

	switch m.step {
	case stepUpload:
		return m.updateUpload(msg)
	case stepDetect:
		return m.updateDetect(msg)
	case stepConfigure:
		return m.updateConfigure(msg)
	case stepPreview:
		return m.updatePreview(msg)
	case stepGenerate:
		return m.updateGenerate(msg)
	}
	return m, nil
}

func (m *model) updateUpload(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+r":
		m.repoMode = !m.repoMode
		if m.repoMode {
			m.textarea.Placeholder = "GitHub repository URL (e.g. github.com/alice/demo)..."
		} else {
			m.textarea.Placeholder = "Paste a code snippet here, or press ctrl+r to analyze a GitHub repository..."
		}
		return m, nil

	case "ctrl+s":
		input := strings.TrimSpace(m.textarea.Value())
		if input == "" {
			m.lastErr = "paste a snippet or a repository URL first"
			return m, nil
		}
		m.lastErr = ""
		m.runID++
		if m.repoMode {
			m.working = true
			return m, tea.Batch(m.fetchRepoCmd(input), m.spinner.Tick)
		}
		m.rawInput = m.textarea.Value()
		m.fromRepo = false
		m.step = stepDetect
		m.working = true
		return m, tea.Batch(m.detectCmd(), m.spinner.Tick)
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m *model) updateDetect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.working {
		return m, nil
	}
	if msg.String() == "enter" {
		m.step = stepConfigure
		return m, nil
	}
	return m, nil
}

func (m *model) updateConfigure(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			m.fields[m.cursor].set(&m.cfg, strings.TrimSpace(m.fieldEdit.Value()))
			m.editing = false
			return m, nil
		}
		var cmd tea.Cmd
		m.fieldEdit, cmd = m.fieldEdit.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
	case "enter", " ":
		f := m.fields[m.cursor]
		switch f.kind {
		case fieldText:
			m.fieldEdit.SetValue(f.get(&m.cfg))
			m.fieldEdit.Focus()
			m.editing = true
		default:
			f.toggle(&m.cfg)
		}
	case "ctrl+s":
		// A second ctrl+s while generation is in flight would dispatch a
		// duplicate task under the same run token.
		if m.working {
			return m, nil
		}
		if err := config.Validate(m.cfg); err != nil {
			m.lastErr = err.Error()
			return m, nil
		}
		m.lastErr = ""
		m.working = true
		m.percent = 0
		return m, tea.Batch(m.generateCmd(), m.tickCmd(), m.spinner.Tick)
	}
	return m, nil
}

func (m *model) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if m.previewIdx > 0 {
			m.previewIdx--
			m.showPreviewFile()
		}
	case "right", "l":
		if m.previewIdx < len(m.previewPaths)-1 {
			m.previewIdx++
			m.showPreviewFile()
		}
	case "enter":
		m.step = stepGenerate
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) updateGenerate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.working {
		return m, nil
	}
	switch msg.String() {
	case "z":
		m.working = true
		m.percent = 0
		m.lastErr = ""
		return m, tea.Batch(m.exportCmd(m.cfg.Name+".zip"), m.tickCmd(), m.spinner.Tick)
	case "w":
		m.working = true
		m.percent = 0
		m.lastErr = ""
		return m, tea.Batch(m.writeCmd(m.cfg.Name), m.tickCmd(), m.spinner.Tick)
	case "p":
		m.working = true
		m.percent = 0
		m.lastErr = ""
		return m, tea.Batch(m.pushCmd(), m.tickCmd(), m.spinner.Tick)
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

// buildPreview collects the file paths of the generated tree and shows the
// first one.
func (m *model) buildPreview() {
	m.previewPaths = nil
	_ = tree.Walk(m.nodes, func(path string, n *tree.Node) error {
		if n.Kind == tree.KindFile {
			m.previewPaths = append(m.previewPaths, path)
		}
		return nil
	})
	m.previewIdx = 0
	m.showPreviewFile()
}

// showPreviewFile loads the selected preview file into the viewport.
func (m *model) showPreviewFile() {
	if len(m.previewPaths) == 0 {
		m.viewport.SetContent("(empty tree)")
		return
	}
	path := m.previewPaths[m.previewIdx]
	content := ""
	_ = tree.Walk(m.nodes, func(p string, n *tree.Node) error {
		if p == path && n.Kind == tree.KindFile {
			content = n.Content
		}
		return nil
	})
	if content == "" {
		content = "(empty file)"
	}
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}
