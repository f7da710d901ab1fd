package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var multiSpaceRE = regexp.MustCompile(`\s+`)

// normaliseInput lower-cases and strips punctuation. A '-' directly in front
// of a digit at the start of a word stays, so "move 2 -3" keeps its sign.
func normaliseInput(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	runes := []rune(raw)
	var b strings.Builder
	lastSpace := true
	for i, r := range runes {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if (r == '-' || r == '+') && lastSpace && i+1 < len(runes) && runes[i+1] >= '0' && runes[i+1] <= '9' {
			if r == '-' {
				b.WriteRune(r)
			}
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-' || r == '_' || r == '/' || r == '\'' || r == ',' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(multiSpaceRE.ReplaceAllString(b.String(), " "))
}

func tokenise(normalised string) []string {
	if strings.TrimSpace(normalised) == "" {
		return nil
	}
	return strings.Fields(normalised)
}

func parseNumber(token string) (int, bool) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	return n, true
}

// mapDirection turns a direction word into the sign of a move step.
func mapDirection(token string) int {
	switch strings.TrimSpace(token) {
	case "up", "u", "left", "earlier", "back", "before":
		return -1
	case "down", "d", "right", "later", "forward", "after":
		return 1
	default:
		return 0
	}
}
