package parser

import "testing"

func shopContext() ParseContext {
	return ParseContext{
		ShopNames: []string{"herbalist", "seller", "market", "splitter", "panacea"},
		RoomNames: []string{"herbalist", "seller", "seller", "debt collector"},
	}
}

func TestNormalisationTable(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  ROLL  ", want: "roll"},
		{in: "level-up   2!!", want: "level up 2"},
		{in: "move 3 -2", want: "move 3 -2"},
		{in: "move 3 +2", want: "move 3 2"},
		{in: "debt_collector", want: "debt collector"},
	}
	for _, tc := range tests {
		got := normaliseInput(tc.in)
		if got != tc.want {
			t.Fatalf("normaliseInput(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestVerbsAndAliases(t *testing.T) {
	tests := []struct {
		in   string
		verb string
		kind IntentKind
	}{
		{in: "roll", verb: "roll", kind: Command},
		{in: "r", verb: "roll", kind: Command},
		{in: "next", verb: "roll", kind: Command},
		{in: "reset", verb: "restart", kind: Command},
		{in: "h", verb: "help", kind: Help},
		{in: "exit", verb: "quit", kind: Quit},
		{in: "level up 1", verb: "upgrade", kind: Command},
	}
	p := New()
	for _, tc := range tests {
		intent := p.Parse(shopContext(), tc.in)
		if intent.Verb != tc.verb || intent.Kind != tc.kind {
			t.Fatalf("Parse(%q) = verb %q kind %d, want %q %d", tc.in, intent.Verb, intent.Kind, tc.verb, tc.kind)
		}
		if intent.Clarify != nil {
			t.Fatalf("Parse(%q) did not expect clarify: %+v", tc.in, intent.Clarify)
		}
	}
}

func TestTypoRolMapsToRoll(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "rolll")
	if intent.Verb != "roll" {
		t.Fatalf("expected roll verb, got %q", intent.Verb)
	}
	if intent.Confidence < 0.6 {
		t.Fatalf("expected decent confidence for typo correction, got %.2f", intent.Confidence)
	}
}

func TestRollCount(t *testing.T) {
	p := New()
	for in, want := range map[string]int{"roll 10": 10, "roll x100": 100, "r 3": 3} {
		intent := p.Parse(ParseContext{}, in)
		if len(intent.Numbers) != 1 || intent.Numbers[0] != want {
			t.Fatalf("Parse(%q) numbers=%v want [%d]", in, intent.Numbers, want)
		}
	}
	if intent := p.Parse(ParseContext{}, "roll lots"); intent.Clarify == nil {
		t.Fatalf("expected clarify for a non-numeric roll count")
	}
	if intent := p.Parse(ParseContext{}, "roll 0"); intent.Clarify == nil {
		t.Fatalf("expected clarify for zero rolls")
	}
}

func TestBuyResolvesShopNames(t *testing.T) {
	p := New()
	ctx := shopContext()

	intent := p.Parse(ctx, "buy splitr")
	if len(intent.Numbers) != 1 || intent.Numbers[0] != 4 {
		t.Fatalf("expected splitter at shop #4, got %+v", intent)
	}
	if len(intent.Args) != 1 || intent.Args[0] != "splitter" {
		t.Fatalf("expected resolved name splitter, got %v", intent.Args)
	}

	intent = p.Parse(ctx, "buy 2")
	if len(intent.Numbers) != 1 || intent.Numbers[0] != 2 || len(intent.Args) != 0 {
		t.Fatalf("expected numeric buy 2, got %+v", intent)
	}

	intent = p.Parse(ctx, "buy castle")
	if intent.Clarify == nil {
		t.Fatalf("expected clarify for unknown shop room")
	}
}

func TestBareShopNameBuys(t *testing.T) {
	p := New()
	intent := p.Parse(shopContext(), "market")
	if intent.Verb != "buy" || len(intent.Numbers) != 1 || intent.Numbers[0] != 3 {
		t.Fatalf("expected market to buy shop #3, got %+v", intent)
	}
}

func TestBareNumberPresses(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "7")
	if intent.Verb != "press" || len(intent.Numbers) != 1 || intent.Numbers[0] != 7 {
		t.Fatalf("expected press 7, got %+v", intent)
	}
}

func TestRoomReferences(t *testing.T) {
	p := New()
	ctx := shopContext()

	intent := p.Parse(ctx, "sell seller")
	if len(intent.Numbers) != 1 || intent.Numbers[0] != 2 {
		t.Fatalf("expected the first seller at #2, got %+v", intent)
	}

	intent = p.Parse(ctx, "upgrade debt")
	if len(intent.Numbers) != 2 || intent.Numbers[0] != 4 || intent.Numbers[1] != 1 {
		t.Fatalf("expected debt collector #4 slot 1, got %+v", intent)
	}

	intent = p.Parse(ctx, "up 1 2")
	if len(intent.Numbers) != 2 || intent.Numbers[0] != 1 || intent.Numbers[1] != 2 {
		t.Fatalf("expected room 1 slot 2, got %+v", intent)
	}
}

func TestMoveSteps(t *testing.T) {
	tests := []struct {
		in   string
		step int
	}{
		{in: "move 3 -2", step: -2},
		{in: "move 3 4", step: 4},
		{in: "move 3 up", step: -1},
		{in: "mv 3 down 5", step: 5},
	}
	p := New()
	for _, tc := range tests {
		intent := p.Parse(shopContext(), tc.in)
		if intent.Clarify != nil {
			t.Fatalf("Parse(%q) unexpected clarify %q", tc.in, intent.Clarify.Prompt)
		}
		if len(intent.Numbers) != 2 || intent.Numbers[0] != 3 || intent.Numbers[1] != tc.step {
			t.Fatalf("Parse(%q) numbers=%v want [3 %d]", tc.in, intent.Numbers, tc.step)
		}
	}
	if intent := p.Parse(shopContext(), "move 3"); intent.Clarify == nil {
		t.Fatalf("expected clarify for a move without a step")
	}
}

func TestMissingArgumentAsksForUsage(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "sell")
	if intent.Clarify == nil || intent.Clarify.Prompt != "usage: sell <room #>" {
		t.Fatalf("expected usage clarify, got %+v", intent.Clarify)
	}
}

func TestUnknownInputClarifies(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "dance wildly")
	if intent.Kind != Unknown || intent.Clarify == nil {
		t.Fatalf("expected unknown intent with clarify, got %+v", intent)
	}
	if intent = p.Parse(ParseContext{}, "   "); intent.Clarify == nil {
		t.Fatalf("expected clarify for empty input")
	}
}
