package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

func (p *Parser) Registry() *Registry {
	return p.registry
}

// Parse maps one line of input onto a command. Room, shop and button numbers
// stay 1-based as typed; the caller converts them.
func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command. Type help for the list."}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	match, alternates := p.registry.matchCommand(tokens)
	if match.Canonical == "" || match.Score < 0.5 {
		if inferred := inferShorthand(ctx, intent); inferred != nil {
			return *inferred
		}
		intent.Clarify = &ClarifyQuestion{
			Prompt: "I couldn't map that to a command. Try " + strings.Join(p.verbs(), ", ") + ".",
		}
		return intent
	}

	if len(alternates) > 0 && (match.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "Did you mean:",
			Options: []Intent{
				option(match.Canonical, nil, nil, match.Score),
				option(alternates[0].Canonical, nil, nil, alternates[0].Score),
			},
		}
		return intent
	}

	intent.Verb = match.Canonical
	intent.Kind = commandKind(intent.Verb)
	intent.Confidence = clampScore(match.Score)

	def, _ := p.registry.command(intent.Verb)
	args := tokens[match.Consumed:]
	resolved, clarify := resolveArgs(ctx, def, args)
	if clarify != nil {
		intent.Clarify = clarify
		intent.Confidence = 0.45
		return intent
	}
	intent.Args = resolved.names
	intent.Numbers = resolved.numbers
	intent.Confidence = clampScore(intent.Confidence*0.75 + resolved.score*0.25)

	if len(intent.Numbers) < def.MinArgs {
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("usage: %s", def.Usage)}
		intent.Confidence = 0.42
		return intent
	}
	if intent.Confidence < 0.52 {
		intent.Clarify = &ClarifyQuestion{Prompt: "I have low confidence in that parse. Please rephrase."}
	}
	return intent
}

func (p *Parser) verbs() []string {
	defs := p.registry.Commands()
	out := make([]string, 0, len(defs))
	for _, d := range defs {
		out = append(out, d.Canonical)
	}
	return out
}

func commandKind(verb string) IntentKind {
	switch verb {
	case "help":
		return Help
	case "quit":
		return Quit
	default:
		return Command
	}
}

func option(verb string, names []string, numbers []int, confidence float64) Intent {
	return Intent{
		Kind:       commandKind(verb),
		Verb:       verb,
		Args:       names,
		Numbers:    numbers,
		Confidence: clampScore(confidence),
	}
}

type resolvedArgs struct {
	names   []string
	numbers []int
	score   float64
}

func resolveArgs(ctx ParseContext, def CommandDef, args []string) (resolvedArgs, *ClarifyQuestion) {
	out := resolvedArgs{score: 0.9}
	if len(args) == 0 {
		return out, nil
	}
	rest := args
	switch def.Canonical {
	case "roll":
		n, ok := parseCount(rest[0])
		if !ok {
			return out, &ClarifyQuestion{Prompt: fmt.Sprintf("%q is not a number of rolls.", rest[0])}
		}
		out.numbers = []int{n}
		rest = rest[1:]

	case "buy":
		if n, ok := parseNumber(rest[0]); ok {
			out.numbers = []int{n}
			rest = rest[1:]
			break
		}
		name := strings.Join(rest, " ")
		matches, confidence, tie := bestMatches(name, uniqueNames(ctx.ShopNames))
		if tie {
			return out, &ClarifyQuestion{
				Prompt: "Which room did you mean?",
				Options: []Intent{
					option("buy", matches[:1], []int{indexOf(ctx.ShopNames, matches[0]) + 1}, confidence),
					option("buy", matches[1:2], []int{indexOf(ctx.ShopNames, matches[1]) + 1}, confidence-0.01),
				},
			}
		}
		if len(matches) == 0 {
			return out, &ClarifyQuestion{Prompt: fmt.Sprintf("The shop has no room called %q.", name)}
		}
		out.names = matches
		out.numbers = []int{indexOf(ctx.ShopNames, matches[0]) + 1}
		out.score = minScore(out.score, confidence)
		rest = nil

	case "sell", "upgrade", "move":
		room, name, confidence, clarify := resolveRoom(ctx, def.Canonical, rest[0])
		if clarify != nil {
			return out, clarify
		}
		if name != "" {
			out.names = []string{name}
		}
		out.numbers = []int{room}
		out.score = minScore(out.score, confidence)
		rest = rest[1:]

		switch def.Canonical {
		case "upgrade":
			slot := 1
			if len(rest) > 0 {
				n, ok := parseNumber(rest[0])
				if !ok {
					return out, &ClarifyQuestion{Prompt: fmt.Sprintf("%q is not an upgrade slot.", rest[0])}
				}
				slot = n
				rest = rest[1:]
			}
			out.numbers = append(out.numbers, slot)
		case "move":
			step, used, ok := parseStep(rest)
			if !ok {
				return out, &ClarifyQuestion{Prompt: "Move by how much? Try a step like -2 or a direction like down 3."}
			}
			out.numbers = append(out.numbers, step)
			rest = rest[used:]
		}

	case "press":
		n, ok := parseNumber(rest[0])
		if !ok {
			return out, &ClarifyQuestion{Prompt: fmt.Sprintf("%q is not a button number.", rest[0])}
		}
		out.numbers = []int{n}
		rest = rest[1:]
	}

	out.score -= 0.05 * float64(len(rest))
	out.score = clampScore(out.score)
	return out, nil
}

func parseCount(token string) (int, bool) {
	n, ok := parseNumber(strings.TrimPrefix(token, "x"))
	if !ok || n < 1 {
		return 0, false
	}
	return n, true
}

// parseStep reads a signed step, or a direction word with an optional count.
func parseStep(tokens []string) (step, used int, ok bool) {
	if len(tokens) == 0 {
		return 0, 0, false
	}
	if n, ok := parseNumber(tokens[0]); ok {
		return n, 1, n != 0
	}
	sign := mapDirection(tokens[0])
	if sign == 0 {
		return 0, 0, false
	}
	if len(tokens) > 1 {
		if n, ok := parseNumber(tokens[1]); ok && n > 0 {
			return sign * n, 2, true
		}
	}
	return sign, 1, true
}

// resolveRoom takes a room number or the name of an owned room. A name picks
// the first room with that name.
func resolveRoom(ctx ParseContext, verb, token string) (int, string, float64, *ClarifyQuestion) {
	if n, ok := parseNumber(token); ok {
		return n, "", 0.9, nil
	}
	matches, confidence, tie := bestMatches(token, uniqueNames(ctx.RoomNames))
	if tie {
		return 0, "", 0, &ClarifyQuestion{
			Prompt: "Which room did you mean?",
			Options: []Intent{
				option(verb, matches[:1], []int{indexOf(ctx.RoomNames, matches[0]) + 1}, confidence),
				option(verb, matches[1:2], []int{indexOf(ctx.RoomNames, matches[1]) + 1}, confidence-0.01),
			},
		}
	}
	if len(matches) == 0 {
		return 0, "", 0, &ClarifyQuestion{Prompt: fmt.Sprintf("You have no room called %q.", token)}
	}
	return indexOf(ctx.RoomNames, matches[0]) + 1, matches[0], confidence, nil
}

func bestMatches(token string, all []string) ([]string, float64, bool) {
	token = normaliseInput(token)
	if token == "" || len(all) == 0 {
		return nil, 0, false
	}
	type scored struct {
		val   string
		score float64
	}
	results := make([]scored, 0, len(all))
	for _, cand := range all {
		var score float64
		switch {
		case token == cand:
			score = scoreExact
		case len(token) >= 2 && strings.HasPrefix(cand, token):
			score = scorePrefix
		default:
			dist := levenshtein.ComputeDistance(token, cand)
			if dist > levenshteinLimit(len(cand)) {
				continue
			}
			score = scoreFuzzy - fuzzyPerOp*float64(dist)
		}
		results = append(results, scored{val: cand, score: clampScore(score)})
	}
	if len(results) == 0 {
		return nil, 0, false
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].val < results[j].val
		}
		return results[i].score > results[j].score
	})

	best := results[0]
	if len(results) > 1 && (best.score-results[1].score) < 0.05 && results[1].score > 0.6 {
		return []string{best.val, results[1].val}, best.score, true
	}
	return []string{best.val}, best.score, false
}

// inferShorthand handles input that names no verb: a bare number presses that
// button and a bare shop name buys it.
func inferShorthand(ctx ParseContext, intent Intent) *Intent {
	tokens := tokenise(intent.Normalised)
	if len(tokens) == 1 {
		if n, ok := parseNumber(tokens[0]); ok {
			intent.Kind = Command
			intent.Verb = "press"
			intent.Numbers = []int{n}
			intent.Confidence = 0.8
			return &intent
		}
	}
	matches, confidence, tie := bestMatches(intent.Normalised, uniqueNames(ctx.ShopNames))
	if tie || len(matches) == 0 || confidence < 0.6 {
		return nil
	}
	intent.Kind = Command
	intent.Verb = "buy"
	intent.Args = matches
	intent.Numbers = []int{indexOf(ctx.ShopNames, matches[0]) + 1}
	intent.Confidence = clampScore(confidence - 0.1)
	return &intent
}

func uniqueNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		v := normaliseInput(n)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func indexOf(names []string, want string) int {
	for i, n := range names {
		if normaliseInput(n) == want {
			return i
		}
	}
	return -1
}

func minScore(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
