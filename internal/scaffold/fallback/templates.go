package fallback

// Static scaffold texts keyed by selector ID. Placeholders ({{name}},
// {{description}}, {{package_manager}}) are substituted at generation time.

// workflowTemplates maps workflow IDs to GitHub Actions YAML.
var workflowTemplates = map[string]string{
	"ci": `name: CI

on:
  push:
    branches: [main]
  pull_request:

jobs:
  build:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - uses: actions/setup-node@v4
        with:
          node-version: 20
      - run: {{package_manager}} install
      - run: {{package_manager}} run build
      - run: {{package_manager}} run test
`,
	"release": `name: Release

on:
  push:
    tags: ['v*']

jobs:
  release:
    runs-on: ubuntu-latest
    permissions:
      contents: write
    steps:
      - uses: actions/checkout@v4
      - uses: actions/setup-node@v4
        with:
          node-version: 20
      - run: {{package_manager}} install
      - run: {{package_manager}} run build
      - uses: softprops/action-gh-release@v2
`,
	"codeql": `name: CodeQL

on:
  push:
    branches: [main]
  schedule:
    - cron: '30 1 * * 0'

jobs:
  analyze:
    runs-on: ubuntu-latest
    permissions:
      security-events: write
    steps:
      - uses: actions/checkout@v4
      - uses: github/codeql-action/init@v3
        with:
          languages: javascript
      - uses: github/codeql-action/analyze@v3
`,
}

// issueTemplates maps issue template IDs to markdown bodies.
var issueTemplates = map[string]string{
	"bug_report": `---
name: Bug report
about: Report a problem with {{name}}
labels: bug
---

## Describe the bug

A clear and concise description of what the bug is.

## To reproduce

Steps to reproduce the behavior.

## Expected behavior

What you expected to happen.
`,
	"feature_request": `---
name: Feature request
about: Suggest an idea for {{name}}
labels: enhancement
---

## Is your feature request related to a problem?

A clear and concise description of the problem.

## Describe the solution you'd like

What you want to happen.
`,
}

// communityFileNames maps community file IDs to their emitted file names.
var communityFileNames = map[string]string{
	"contributing":    "CONTRIBUTING.md",
	"code_of_conduct": "CODE_OF_CONDUCT.md",
	"security":        "SECURITY.md",
	"support":         "SUPPORT.md",
}

// communityTemplates maps community file IDs to markdown bodies.
var communityTemplates = map[string]string{
	"contributing": `# Contributing to {{name}}

Thanks for your interest in contributing!

1. Fork the repository and create a feature branch.
2. Run '{{package_manager}} install' and make your change.
3. Add tests where it makes sense.
4. Open a pull request describing the change.
`,
	"code_of_conduct": `# Code of Conduct

Be kind. Be respectful. Assume good intent.

Unacceptable behavior can be reported to the maintainers and will be
reviewed and investigated.
`,
	"security": `# Security Policy

## Reporting a vulnerability

Please do not open public issues for security problems. Report them
privately to the maintainers of {{name}}.
`,
	"support": `# Support

Questions about {{name}}? Open a discussion or check the README first.
`,
}
