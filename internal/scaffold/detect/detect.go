// Package detect guesses the language and framework of raw source input by
// keyword matching. It is the deterministic substitute for AI stack
// detection and never fails.
package detect

import (
	"strings"

	"github.com/repoforge/forge/internal/config"
)

// rule is one ordered detection entry. Confidence and category are fixed
// per rule; this is a constant lookup table, not a scoring model.
type rule struct {
	// keywords trigger the rule when any of them appears in the lowercased
	// input.
	keywords []string
	// result is the detection outcome for this rule.
	result config.DetectionResult
}

// rules are evaluated in order; the first match wins. Backend-framework
// keywords deliberately precede frontend keywords, so mixed input (say a
// Flask app serving a React bundle) classifies as backend.
var rules = []rule{
	{
		keywords: []string{"django"},
		result: config.DetectionResult{
			Language: "Python", Framework: "Django",
			Confidence: 90, Category: config.CategoryBackend, EstimatedFiles: 12,
		},
	},
	{
		keywords: []string{"flask"},
		result: config.DetectionResult{
			Language: "Python", Framework: "Flask",
			Confidence: 90, Category: config.CategoryBackend, EstimatedFiles: 8,
		},
	},
	{
		keywords: []string{"def ", "import numpy", "print("},
		result: config.DetectionResult{
			Language: "Python", Framework: "None",
			Confidence: 70, Category: config.CategoryBackend, EstimatedFiles: 6,
		},
	},
	{
		keywords: []string{"express", "app.listen", "fastify"},
		result: config.DetectionResult{
			Language: "JavaScript", Framework: "Express",
			Confidence: 85, Category: config.CategoryBackend, EstimatedFiles: 10,
		},
	},
	{
		keywords: []string{"next/", "getserversideprops", "getstaticprops"},
		result: config.DetectionResult{
			Language: "JavaScript", Framework: "Next.js",
			Confidence: 85, Category: config.CategoryFullstack, EstimatedFiles: 14,
		},
	},
	{
		keywords: []string{"react", "jsx", "usestate", "useeffect"},
		result: config.DetectionResult{
			Language: "JavaScript", Framework: "React",
			Confidence: 85, Category: config.CategoryFrontend, EstimatedFiles: 12,
		},
	},
	{
		keywords: []string{"vue", "v-if", "v-for"},
		result: config.DetectionResult{
			Language: "JavaScript", Framework: "Vue",
			Confidence: 80, Category: config.CategoryFrontend, EstimatedFiles: 10,
		},
	},
}

// defaultResult is returned when no rule matches.
var defaultResult = config.DetectionResult{
	Language: "JavaScript", Framework: "None",
	Confidence: 40, Category: config.CategoryFullstack, EstimatedFiles: 5,
}

// typeScriptMarkers upgrade the language field when present, independent of
// which primary rule fired.
var typeScriptMarkers = []string{"interface ", "type ", ": string", ": number"}

// Analyze classifies raw input against the ordered rule table. It never
// fails; unmatched input gets the generic default.
func Analyze(rawInput string) config.DetectionResult {
	lowered := strings.ToLower(rawInput)

	result := defaultResult
	for _, r := range rules {
		if matchesAny(lowered, r.keywords) {
			result = r.result
			break
		}
	}

	// Secondary, rule-independent check: TypeScript-ish syntax upgrades the
	// language regardless of which rule matched. Framework, category and
	// confidence keep the primary rule's values.
	if matchesAny(lowered, typeScriptMarkers) {
		result.Language = "TypeScript"
	}

	return result
}

// LooksLikeCode is a cheap plausibility check that raw input is source code
// rather than prose. Used for inline input validation before detection.
func LooksLikeCode(rawInput string) bool {
	trimmed := strings.TrimSpace(rawInput)
	if len(trimmed) < 10 {
		return false
	}
	markers := []string{
		"{", "}", "(", ";", "=", "import ", "def ", "func ", "class ",
		"const ", "let ", "var ", "return", "#include", "package ",
	}
	hits := 0
	for _, m := range markers {
		if strings.Contains(trimmed, m) {
			hits++
		}
	}
	return hits >= 2
}

func matchesAny(input string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(input, k) {
			return true
		}
	}
	return false
}
