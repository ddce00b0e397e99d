// Package wizard implements the interactive five-step scaffold flow:
// Upload, Detect, Configure, Preview, Generate.
package wizard

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/repoforge/forge/internal/ai"
	"github.com/repoforge/forge/internal/app"
	"github.com/repoforge/forge/internal/config"
	"github.com/repoforge/forge/internal/scaffold/tree"
)

// step is the wizard's current screen.
type step int

const (
	stepUpload step = iota
	stepDetect
	stepConfigure
	stepPreview
	stepGenerate
)

// stepTitles index by step for the header breadcrumb.
var stepTitles = [...]string{"Upload", "Detect", "Configure", "Preview", "Generate"}

const logo = `
 ███████╗ ██████╗ ██████╗  ██████╗ ███████╗
 ██╔════╝██╔═══██╗██╔══██╗██╔════╝ ██╔════╝
 █████╗  ██║   ██║██████╔╝██║  ███╗█████╗
 ██╔══╝  ██║   ██║██╔══██╗██║   ██║██╔══╝
 ██║     ╚██████╔╝██║  ██║╚██████╔╝███████╗
 ╚═╝      ╚═════╝ ╚═╝  ╚═╝ ╚═════╝ ╚══════╝
`

// fieldKind selects how a configure field is edited.
type fieldKind int

const (
	fieldText fieldKind = iota
	fieldBool
	fieldChoice
)

// field is one editable configure row, bound to the model's config by
// getter/setter closures.
type field struct {
	label   string
	kind    fieldKind
	choices []string
	get     func(*config.RepoConfig) string
	set     func(*config.RepoConfig, string)
	toggle  func(*config.RepoConfig)
}

// model is the wizard state.
type model struct {
	step  step
	runID int

	client   *ai.Client
	hosting  hostingFactory
	reader   repoReader
	settings config.Settings
	log      *app.GenerationLog

	rawInput  string
	repoMode  bool
	fromRepo  bool
	detection config.DetectionResult
	detectSrc ai.Source
	cfg       config.RepoConfig
	nodes     []*tree.Node
	genSrc    ai.Source

	// Configure state
	fields    []field
	cursor    int
	editing   bool
	fieldEdit textarea.Model

	// Preview state
	previewPaths []string
	previewIdx   int

	// Generate state
	working    bool
	percent    float64
	outputDone bool
	outputMsg  string
	lastErr    string

	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	progress progress.Model

	width  int
	height int
	style  styles
}

// newModel builds the initial wizard model.
func newModel(client *ai.Client, settings config.Settings, hosting hostingFactory, reader repoReader) *model {
	st := newStyles()

	ta := textarea.New()
	ta.Placeholder = "Paste a code snippet here, or press ctrl+r to analyze a GitHub repository..."
	ta.Focus()
	ta.SetHeight(12)

	fe := textarea.New()
	fe.SetHeight(1)
	fe.ShowLineNumbers = false

	vp := viewport.New(0, 0)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = st.thinking

	p := progress.New(progress.WithDefaultGradient())

	cfg := config.DefaultRepoConfig()
	config.ApplyDefaults(&cfg, settings.Defaults)

	return &model{
		step:      stepUpload,
		runID:     1,
		client:    client,
		hosting:   hosting,
		reader:    reader,
		settings:  settings,
		log:       app.NewLog(),
		cfg:       cfg,
		fields:    configureFields(),
		textarea:  ta,
		fieldEdit: fe,
		viewport:  vp,
		spinner:   s,
		progress:  p,
		style:     st,
	}
}

func (m *model) Init() tea.Cmd {
	return textarea.Blink
}

// reset returns the wizard to the upload step and invalidates any async
// work still in flight for the previous run.
func (m *model) reset() {
	m.runID++
	m.step = stepUpload
	m.rawInput = ""
	m.fromRepo = false
	m.detection = config.DetectionResult{}
	m.nodes = nil
	m.working = false
	m.percent = 0
	m.outputDone = false
	m.outputMsg = ""
	m.lastErr = ""
	m.log = app.NewLog()
	cfg := config.DefaultRepoConfig()
	config.ApplyDefaults(&cfg, m.settings.Defaults)
	m.cfg = cfg
	m.textarea.Reset()
	m.textarea.Focus()
}

// back steps one screen backwards, invalidating in-flight async work.
func (m *model) back() {
	if m.step == stepUpload {
		return
	}
	m.runID++
	m.working = false
	m.percent = 0
	m.outputDone = false
	m.lastErr = ""
	m.step--
	if m.step == stepUpload {
		m.textarea.Focus()
	}
}

// configureFields declares the editable rows of the configure step.
func configureFields() []field {
	text := func(label string, get func(*config.RepoConfig) string, set func(*config.RepoConfig, string)) field {
		return field{label: label, kind: fieldText, get: get, set: set}
	}
	boolean := func(label string, get func(*config.RepoConfig) bool, set func(*config.RepoConfig, bool)) field {
		return field{
			label:  label,
			kind:   fieldBool,
			get:    func(c *config.RepoConfig) string { return strconv.FormatBool(get(c)) },
			toggle: func(c *config.RepoConfig) { set(c, !get(c)) },
		}
	}
	choice := func(label string, choices []string, get func(*config.RepoConfig) string, set func(*config.RepoConfig, string)) field {
		f := field{label: label, kind: fieldChoice, choices: choices, get: get, set: set}
		f.toggle = func(c *config.RepoConfig) {
			current := get(c)
			for i, opt := range choices {
				if opt == current {
					set(c, choices[(i+1)%len(choices)])
					return
				}
			}
			set(c, choices[0])
		}
		return f
	}

	return []field{
		text("Name", func(c *config.RepoConfig) string { return c.Name },
			func(c *config.RepoConfig, v string) { c.Name = v }),
		text("Description", func(c *config.RepoConfig) string { return c.Description },
			func(c *config.RepoConfig, v string) { c.Description = v }),
		text("Author", func(c *config.RepoConfig) string { return c.Author },
			func(c *config.RepoConfig, v string) { c.Author = v }),
		text("License", func(c *config.RepoConfig) string { return c.License },
			func(c *config.RepoConfig, v string) { c.License = v }),
		text("Framework", func(c *config.RepoConfig) string { return c.Framework },
			func(c *config.RepoConfig, v string) { c.Framework = v }),
		choice("Package manager", []string{"npm", "yarn", "pnpm"},
			func(c *config.RepoConfig) string { return c.PackageManager },
			func(c *config.RepoConfig, v string) { c.PackageManager = v }),
		choice("Bundler", []string{"vite", "webpack", "esbuild"},
			func(c *config.RepoConfig) string { return c.Bundler },
			func(c *config.RepoConfig, v string) { c.Bundler = v }),
		boolean("TypeScript", func(c *config.RepoConfig) bool { return c.UseTypeScript },
			func(c *config.RepoConfig, v bool) { c.UseTypeScript = v }),
		boolean("Monorepo", func(c *config.RepoConfig) bool { return c.Monorepo },
			func(c *config.RepoConfig, v bool) { c.Monorepo = v }),
		boolean("Linting", func(c *config.RepoConfig) bool { return c.IncludeLinting },
			func(c *config.RepoConfig, v bool) { c.IncludeLinting = v }),
		boolean("Tests", func(c *config.RepoConfig) bool { return c.IncludeTests },
			func(c *config.RepoConfig, v bool) { c.IncludeTests = v }),
		choice("CI provider", []string{"github", "gitlab", "none"},
			func(c *config.RepoConfig) string { return c.CIProvider },
			func(c *config.RepoConfig, v string) { c.CIProvider = v }),
		boolean("Dockerfile", func(c *config.RepoConfig) bool { return c.IncludeDocker },
			func(c *config.RepoConfig, v bool) { c.IncludeDocker = v }),
		githubToggle("Workflow: ci", "ci", workflowList),
		githubToggle("Workflow: release", "release", workflowList),
		githubToggle("Workflow: codeql", "codeql", workflowList),
		githubToggle("Issue template: bug report", "bug_report", issueList),
		githubToggle("Issue template: feature request", "feature_request", issueList),
		githubToggle("Community: contributing", "contributing", communityList),
		githubToggle("Community: code of conduct", "code_of_conduct", communityList),
		githubToggle("Community: security", "security", communityList),
		boolean("CODEOWNERS", func(c *config.RepoConfig) bool { return c.GitHub.CodeOwners },
			func(c *config.RepoConfig, v bool) { c.GitHub.CodeOwners = v }),
	}
}

// GitHub extras list accessors for the toggle fields.
func workflowList(c *config.RepoConfig) *[]string  { return &c.GitHub.Workflows }
func issueList(c *config.RepoConfig) *[]string     { return &c.GitHub.IssueTemplates }
func communityList(c *config.RepoConfig) *[]string { return &c.GitHub.CommunityFiles }

// githubToggle builds a bool-style field that adds or removes an ID from one
// of the GitHubExtras selection lists.
func githubToggle(label, id string, list func(*config.RepoConfig) *[]string) field {
	has := func(c *config.RepoConfig) bool {
		for _, v := range *list(c) {
			if v == id {
				return true
			}
		}
		return false
	}
	return field{
		label: label,
		kind:  fieldBool,
		get:   func(c *config.RepoConfig) string { return strconv.FormatBool(has(c)) },
		toggle: func(c *config.RepoConfig) {
			l := list(c)
			if has(c) {
				out := (*l)[:0]
				for _, v := range *l {
					if v != id {
						out = append(out, v)
					}
				}
				*l = out
				return
			}
			*l = append(*l, id)
		},
	}
}

// summaryLine renders one configure row.
func (m *model) summaryLine(i int) string {
	f := m.fields[i]
	return fmt.Sprintf("%-32s %s", f.label, f.get(&m.cfg))
}
