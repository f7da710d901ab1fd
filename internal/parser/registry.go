package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

const (
	scoreExact  = 1.0
	scoreAlias  = 0.97
	scorePrefix = 0.9
	scoreFuzzy  = 0.72
	fuzzyPerOp  = 0.08
)

type verbPhrase struct {
	canonical string
	alias     string
	tokens    []string
}

type Registry struct {
	commands map[string]CommandDef
	order    []string
	phrases  []verbPhrase
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]CommandDef)}
}

func (r *Registry) RegisterCommand(c CommandDef) {
	c.Canonical = normaliseInput(c.Canonical)
	if c.Canonical == "" {
		return
	}
	if _, ok := r.commands[c.Canonical]; !ok {
		r.order = append(r.order, c.Canonical)
	}
	r.commands[c.Canonical] = c
	r.addPhrase(c.Canonical, c.Canonical)
	for _, a := range c.Aliases {
		r.addPhrase(c.Canonical, a)
	}
}

func (r *Registry) addPhrase(canonical, alias string) {
	n := normaliseInput(alias)
	if n == "" {
		return
	}
	r.phrases = append(r.phrases, verbPhrase{canonical: canonical, alias: n, tokens: tokenise(n)})
}

func (r *Registry) command(canonical string) (CommandDef, bool) {
	cmd, ok := r.commands[normaliseInput(canonical)]
	return cmd, ok
}

// Commands lists the registered commands in registration order.
func (r *Registry) Commands() []CommandDef {
	out := make([]CommandDef, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.commands[name])
	}
	return out
}

type verbMatch struct {
	Canonical string
	Alias     string
	Consumed  int
	Score     float64
	Source    string
}

func (r *Registry) matchCommand(tokens []string) (verbMatch, []verbMatch) {
	if len(tokens) == 0 {
		return verbMatch{}, nil
	}
	matches := make([]verbMatch, 0, len(r.phrases))
	for _, phrase := range r.phrases {
		if m, ok := matchPhrase(phrase, tokens); ok {
			matches = append(matches, m)
		}
	}
	if len(matches) == 0 {
		return verbMatch{}, nil
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Consumed != b.Consumed {
			return a.Consumed > b.Consumed
		}
		return a.Canonical < b.Canonical
	})

	best := matches[0]
	alts := make([]verbMatch, 0, 3)
	seen := map[string]bool{best.Canonical: true}
	for _, m := range matches[1:] {
		if seen[m.Canonical] {
			continue
		}
		seen[m.Canonical] = true
		alts = append(alts, m)
		if len(alts) == cap(alts) {
			break
		}
	}
	return best, alts
}

func matchPhrase(phrase verbPhrase, tokens []string) (verbMatch, bool) {
	n := len(phrase.tokens)
	if n == 0 || len(tokens) < n {
		return verbMatch{}, false
	}
	head := strings.Join(tokens[:n], " ")
	m := verbMatch{Canonical: phrase.canonical, Alias: phrase.alias, Consumed: n}

	if head == phrase.alias {
		m.Score, m.Source = scoreExact, "exact"
		if phrase.alias != phrase.canonical {
			m.Score, m.Source = scoreAlias, "alias"
		}
		return m, true
	}
	if n == 1 && len(tokens[0]) >= 2 && strings.HasPrefix(phrase.alias, tokens[0]) {
		m.Score, m.Source = scorePrefix, "prefix"
		return m, true
	}
	if len(head) < 3 {
		return verbMatch{}, false
	}
	dist := levenshtein.ComputeDistance(head, phrase.alias)
	if dist > levenshteinLimit(len(phrase.alias)) {
		return verbMatch{}, false
	}
	m.Score = scoreFuzzy - fuzzyPerOp*float64(dist)
	if phrase.alias != phrase.canonical {
		m.Score += 0.03
	}
	m.Source = "lev"
	return m, true
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func DefaultRegistry() *Registry {
	r := NewRegistry()
	commands := []CommandDef{
		{Canonical: "roll", Aliases: []string{"r", "next", "turn"}, MinArgs: 0, MaxArgs: 1, Usage: "roll [count]"},
		{Canonical: "buy", Aliases: []string{"purchase", "b"}, MinArgs: 1, MaxArgs: 1, Usage: "buy <shop name or #>"},
		{Canonical: "sell", Aliases: []string{"scrap"}, MinArgs: 1, MaxArgs: 1, Usage: "sell <room #>"},
		{Canonical: "upgrade", Aliases: []string{"up", "lvl", "level", "level up"}, MinArgs: 1, MaxArgs: 2, Usage: "upgrade <room #> [slot #]"},
		{Canonical: "move", Aliases: []string{"mv", "shift"}, MinArgs: 2, MaxArgs: 2, Usage: "move <room #> <step or up/down [count]>"},
		{Canonical: "press", Aliases: []string{"p", "click", "push"}, MinArgs: 1, MaxArgs: 1, Usage: "press <button #>"},
		{Canonical: "restart", Aliases: []string{"reset", "new game"}, MinArgs: 0, MaxArgs: 0, Usage: "restart"},
		{Canonical: "help", Aliases: []string{"h", "commands"}, MinArgs: 0, MaxArgs: 0, Usage: "help"},
		{Canonical: "quit", Aliases: []string{"q", "exit"}, MinArgs: 0, MaxArgs: 0, Usage: "quit"},
	}
	for _, cmd := range commands {
		r.RegisterCommand(cmd)
	}
	return r
}
