package parser

type IntentKind int

const (
	Command IntentKind = iota
	Help
	Quit
	Unknown
)

// Intent is one parsed line of player input.
type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Verb       string
	Args       []string
	// Numbers holds the integer arguments in order. For move the second
	// number is a signed step with direction words already applied.
	Numbers    []int
	Confidence float64
	Clarify    *ClarifyQuestion
}

type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

// ParseContext carries the names the player may refer to.
type ParseContext struct {
	ShopNames []string
	RoomNames []string
}

type CommandDef struct {
	Canonical string
	Aliases   []string
	MinArgs   int
	MaxArgs   int
	Usage     string
}
