// Package app is the orchestration layer between the CLI/TUI surfaces and
// the adapters: detection, tree generation, refactoring, export, and push.
package app

import (
	"fmt"
	"time"
)

// Severity classifies a generation log entry.
type Severity int

const (
	// SeverityInfo is a neutral progress message.
	SeverityInfo Severity = iota
	// SeveritySuccess marks a completed step.
	SeveritySuccess
	// SeverityWarn marks a recovered or cosmetic failure.
	SeverityWarn
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeveritySuccess:
		return "success"
	case SeverityWarn:
		return "warn"
	default:
		return "unknown"
	}
}

// LogEntry is one display-only generation log line.
type LogEntry struct {
	// Time is when the entry was appended.
	Time time.Time
	// Severity is the entry classification.
	Severity Severity
	// Message is the display text.
	Message string
}

// GenerationLog is an append-only sequence of display entries with
// monotonic timestamps. It carries no behavior beyond display.
type GenerationLog struct {
	entries []LogEntry
	now     func() time.Time
}

// NewLog creates an empty generation log.
func NewLog() *GenerationLog {
	return &GenerationLog{now: time.Now}
}

// Infof appends an info entry.
func (l *GenerationLog) Infof(format string, args ...any) {
	l.append(SeverityInfo, format, args...)
}

// Successf appends a success entry.
func (l *GenerationLog) Successf(format string, args ...any) {
	l.append(SeveritySuccess, format, args...)
}

// Warnf appends a warning entry.
func (l *GenerationLog) Warnf(format string, args ...any) {
	l.append(SeverityWarn, format, args...)
}

func (l *GenerationLog) append(sev Severity, format string, args ...any) {
	if l == nil {
		return
	}
	l.entries = append(l.entries, LogEntry{
		Time:     l.now(),
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Entries returns a copy of the accumulated entries in append order.
func (l *GenerationLog) Entries() []LogEntry {
	if l == nil {
		return nil
	}
	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}
