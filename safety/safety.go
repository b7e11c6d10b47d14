// golos-labs/golos-bot/safety/safety.go

// Package safety implements the crisis-keyword gate that runs on every
// normalized user text before any reply is generated. When the gate
// triggers, the pipeline skips generation entirely and delivers the fixed
// crisis-resources message.
package safety

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Verdict is the result of evaluating one text against the keyword set.
type Verdict struct {
	Triggered   bool
	MatchedTerm string
}

// Gate tests normalized text against a fixed crisis keyword set. It is a
// pure matcher: no I/O, no failure mode, safe for concurrent use.
type Gate struct {
	keywords []string
}

// NewGate returns a gate with the built-in keyword set.
func NewGate() *Gate {
	return newGate(defaultKeywords)
}

// NewGateFromFile returns a gate whose keyword set is loaded from a YAML
// file ("keywords: [...]"). A missing file falls back to the built-in set;
// a malformed or empty file is an error, not a silently open gate.
func NewGateFromFile(path string) (*Gate, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewGate(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read keyword file %s: %w", path, err)
	}

	var file struct {
		Keywords []string `yaml:"keywords"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("could not parse keyword file %s: %w", path, err)
	}
	if len(file.Keywords) == 0 {
		return nil, fmt.Errorf("keyword file %s contains no keywords", path)
	}
	return newGate(file.Keywords), nil
}

func newGate(keywords []string) *Gate {
	normalized := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			normalized = append(normalized, kw)
		}
	}
	return &Gate{keywords: normalized}
}

// Evaluate case-folds text and reports whether any crisis keyword appears
// in it. Substring semantics: a keyword anywhere in the text triggers.
func (g *Gate) Evaluate(text string) Verdict {
	lowered := strings.ToLower(text)
	for _, kw := range g.keywords {
		if strings.Contains(lowered, kw) {
			return Verdict{Triggered: true, MatchedTerm: kw}
		}
	}
	return Verdict{}
}
