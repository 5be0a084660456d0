package dsfile

import (
	"fmt"
	"slices"
)

// Nesting selects how deep a node may sit relative to the target tokens.
type Nesting int

const (
	// NestingExact rejects nodes whose required levels are not all consumed
	// by the target; used for direct dispatch so a shallow invocation never
	// resolves into a deeper node.
	NestingExact Nesting = iota
	// NestingNested permits a shallower target to match an ancestor; used
	// for help and browsing.
	NestingNested
)

// Match records how a node's path compared against the target tokens.
type Match struct {
	// File is the path of the document the node came from.
	File string
	// Keys is the literal path from the document root to the node.
	Keys []string
	// Score counts the target tokens consumed by the match.
	Score int
	// AliasKeys holds the accepted name set per required level.
	AliasKeys [][]string
}

// MatchCommand scores a node against the target tokens: the score is the
// number of leading target tokens that are members of the corresponding
// accepted-name level, stopping at the first miss. A zero score is never a
// match. Tokens beyond the node's levels are left for the command itself.
func MatchCommand(file string, keys []string, levels [][]string, target []string, nesting Nesting) (*Match, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("matching %v: empty key path", target)
	}

	score := 0
	for i, token := range target {
		if i >= len(levels) {
			break
		}
		if !slices.Contains(levels[i], token) {
			break
		}
		score++
	}

	if score == 0 {
		return nil, nil
	}
	if nesting == NestingExact && score < len(levels) {
		return nil, nil
	}

	return &Match{
		File:      file,
		Keys:      slices.Clone(keys),
		Score:     score,
		AliasKeys: levels,
	}, nil
}
