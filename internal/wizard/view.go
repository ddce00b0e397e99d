package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		m.viewBody(),
		m.viewStatus(),
		m.viewFooter(),
	)
}

func (m *model) viewHeader() string {
	crumbs := make([]string, len(stepTitles))
	for i, title := range stepTitles {
		label := fmt.Sprintf("%d %s", i+1, title)
		if step(i) == m.step {
			crumbs[i] = m.style.crumbOn.Render(label)
		} else {
			crumbs[i] = m.style.crumb.Render(label)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.style.logo.Render(logo),
		lipgloss.JoinHorizontal(lipgloss.Top, crumbs...),
	)
}

func (m *model) viewBody() string {
	switch m.step {
	case stepUpload:
		return m.viewUpload()
	case stepDetect:
		return m.viewDetect()
	case stepConfigure:
		return m.viewConfigure()
	case stepPreview:
		return m.viewPreview()
	case stepGenerate:
		return m.viewGenerate()
	default:
		return ""
	}
}

func (m *model) viewUpload() string {
	title := "Paste your code"
	if m.repoMode {
		title = "Repository URL"
	}
	lines := []string{
		m.style.title.Render(title),
		m.style.box.Render(m.textarea.View()),
	}
	if m.working {
		lines = append(lines, m.style.thinking.Render(m.spinner.View()+" fetching repository..."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *model) viewDetect() string {
	if m.working {
		return m.style.body.Render(
			m.style.thinking.Render(m.spinner.View() + " analyzing input..."))
	}

	var b strings.Builder
	b.WriteString(m.style.title.Render("Detection result") + "\n\n")
	b.WriteString(fmt.Sprintf("  Language:   %s\n", m.style.accent.Render(m.detection.Language)))
	b.WriteString(fmt.Sprintf("  Framework:  %s\n", m.style.accent.Render(m.detection.Framework)))
	b.WriteString(fmt.Sprintf("  Category:   %s\n", m.detection.Category))
	b.WriteString(fmt.Sprintf("  Confidence: %d%%\n", m.detection.Confidence))
	b.WriteString(m.style.subtle.Render(fmt.Sprintf("  source: %s", m.detectSrc)))
	return b.String()
}

func (m *model) viewConfigure() string {
	var b strings.Builder
	b.WriteString(m.style.title.Render("Configure your scaffold") + "\n\n")

	// Window the rows around the cursor so long field lists fit.
	visible := m.height - 16
	if visible < 5 {
		visible = 5
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.fields) {
		end = len(m.fields)
	}

	for i := start; i < end; i++ {
		line := m.summaryLine(i)
		if i == m.cursor {
			if m.editing {
				line = fmt.Sprintf("%-32s %s", m.fields[i].label, m.fieldEdit.View())
			}
			b.WriteString(m.style.selected.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	if m.working {
		b.WriteString("\n" + m.style.thinking.Render(m.spinner.View()+" generating scaffold..."))
		b.WriteString("\n" + m.progress.ViewAs(m.percent))
	}
	return b.String()
}

func (m *model) viewPreview() string {
	if len(m.previewPaths) == 0 {
		return m.style.body.Render("nothing generated")
	}
	header := fmt.Sprintf("File %d/%d: %s",
		m.previewIdx+1, len(m.previewPaths), m.previewPaths[m.previewIdx])
	source := m.style.subtle.Render(fmt.Sprintf("generated via %s, %d files", m.genSrc, len(m.previewPaths)))
	return lipgloss.JoinVertical(lipgloss.Left,
		m.style.title.Render(header),
		source,
		m.style.box.Render(m.viewport.View()),
	)
}

func (m *model) viewGenerate() string {
	var b strings.Builder
	b.WriteString(m.style.title.Render("Deliver your scaffold") + "\n\n")

	if m.working {
		b.WriteString(m.style.thinking.Render(m.spinner.View()+" working...") + "\n")
		b.WriteString(m.progress.ViewAs(m.percent) + "\n")
		return b.String()
	}

	if m.outputDone {
		b.WriteString(m.style.success.Render("✓ "+m.outputMsg) + "\n\n")
	}

	b.WriteString(fmt.Sprintf("  z  export %s\n", m.style.accent.Render(m.cfg.Name+".zip")))
	b.WriteString(fmt.Sprintf("  w  write to ./%s\n", m.style.accent.Render(m.cfg.Name)))
	b.WriteString("  p  push to a new GitHub repository\n")
	b.WriteString("  q  quit\n")

	if entries := m.log.Entries(); len(entries) > 0 {
		b.WriteString("\n" + m.style.subtle.Render("Activity:") + "\n")
		// Show the tail of the log.
		start := 0
		if len(entries) > 6 {
			start = len(entries) - 6
		}
		for _, e := range entries[start:] {
			b.WriteString(m.style.subtle.Render(fmt.Sprintf("  [%s] %s", e.Severity, e.Message)) + "\n")
		}
	}
	return b.String()
}

func (m *model) viewStatus() string {
	if m.lastErr == "" {
		return ""
	}
	return m.style.err.Render("✗ " + m.lastErr)
}

func (m *model) viewFooter() string {
	var help string
	switch m.step {
	case stepUpload:
		help = "ctrl+s: analyze | ctrl+r: repo mode | ctrl+c: quit"
	case stepDetect:
		help = "enter: continue | esc: back | ctrl+c: quit"
	case stepConfigure:
		if m.editing {
			help = "enter: save | esc: cancel"
		} else {
			help = "↑/↓: move | enter: edit/toggle | ctrl+s: generate | esc: back"
		}
	case stepPreview:
		help = "←/→: switch file | ↑/↓: scroll | enter: continue | esc: back"
	case stepGenerate:
		help = "z/w/p: deliver | q: quit | esc: back | ctrl+n: start over"
	}
	return m.style.footer.Render(help)
}
