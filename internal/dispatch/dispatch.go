// Package dispatch folds matches from multiple command documents into a
// single selection according to the configured conflict policy.
package dispatch

import (
	"fmt"
	"strings"

	"github.com/naoray/ds/internal/dsfile"
	dserrors "github.com/naoray/ds/internal/errors"
)

// Policy decides what happens when more than one document matches the same
// target tokens.
type Policy int

const (
	// PolicyOverride picks the highest-priority document that has any match
	// and ignores the rest.
	PolicyOverride Policy = iota
	// PolicyError refuses to run when the target is defined by more than one
	// document.
	PolicyError
)

// ParsePolicy maps a configuration value onto a Policy.
func ParsePolicy(value string) (Policy, error) {
	switch {
	case strings.EqualFold(value, "override"), value == "":
		return PolicyOverride, nil
	case strings.EqualFold(value, "error"):
		return PolicyError, nil
	default:
		return PolicyOverride, fmt.Errorf("unknown on_conflict value %q", value)
	}
}

// Selection pairs a match with the document it came from, so the caller can
// resolve the matched keys against the right tree.
type Selection struct {
	File  *dsfile.File
	Match *dsfile.Match
}

// Dispatcher resolves target tokens across an ordered set of documents.
type Dispatcher struct {
	// Files holds the loaded documents from lowest to highest priority.
	Files  []*dsfile.File
	Policy Policy
	Ws     dsfile.Workspace
}

// Match selects the command the target tokens refer to.
//
// Under PolicyOverride documents are consulted from highest priority down
// and the first one with any match wins; within that document the
// last-discovered match at the maximum score is taken. Under PolicyError
// every document is consulted and a second match anywhere is a conflict.
func (d *Dispatcher) Match(target []string) (*Selection, error) {
	var selected *Selection
	total := 0

	for i := len(d.Files) - 1; i >= 0; i-- {
		file := d.Files[i]
		matches, err := file.Matches(target, dsfile.NestingExact, d.Ws)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			continue
		}

		if d.Policy == PolicyOverride {
			return &Selection{File: file, Match: matches[len(matches)-1]}, nil
		}

		total += len(matches)
		if total > 1 {
			return nil, &dserrors.ConflictError{Keys: matches[len(matches)-1].Keys}
		}
		selected = &Selection{File: file, Match: matches[0]}
	}

	if selected == nil {
		return nil, fmt.Errorf("%w: %s", dserrors.ErrNoMatch, strings.Join(target, " "))
	}
	return selected, nil
}

// Browse returns every match across all documents without conflict folding,
// highest-priority document first. An empty target matches nothing; callers
// listing a whole tree walk the files directly instead.
func (d *Dispatcher) Browse(target []string) ([]*Selection, error) {
	var selections []*Selection

	for i := len(d.Files) - 1; i >= 0; i-- {
		file := d.Files[i]
		matches, err := file.Matches(target, dsfile.NestingNested, d.Ws)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			selections = append(selections, &Selection{File: file, Match: m})
		}
	}

	return selections, nil
}
