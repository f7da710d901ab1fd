package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/appengine-ltd/dice-rooms/internal/game"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := filepath.Join("docs", "reference")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	files := []docFile{
		generateRoomsDoc(),
		generateSignalsDoc(),
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Reference\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateRoomsDoc() docFile {
	rooms := append(game.Catalog(), game.NewDebtCollector(100))

	var b strings.Builder
	b.WriteString("# Rooms\n\n")
	b.WriteString("Debt collectors are never sold in the shop; the debt schedule places them. ")
	b.WriteString("The one below owes 100 gold.\n\n")
	b.WriteString("| Room | Kind | Price | Activations per roll | Effect |\n")
	b.WriteString("|---|---|---:|---:|---|\n")
	for _, r := range rooms {
		b.WriteString(fmt.Sprintf("| %s | `%s` | %s | %s | %s |\n",
			escape(r.Name()), r.Kind(), formatPrice(r.Price()), formatCap(r.ActivationCap()), escape(r.Info())))
	}

	for _, r := range rooms {
		if len(r.Upgrades()) == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("\n## %s\n\n", r.Name()))
		b.WriteString("| Slot | Upgrade | Start | Growth | Price | Price growth | Max level |\n")
		b.WriteString("|---:|---|---:|---|---:|---|---:|\n")
		for slot, u := range r.Upgrades() {
			b.WriteString(fmt.Sprintf("| %d | %s | %s | %s | %d | %s | %s |\n",
				slot+1, escape(u.Name()), formatFloat(u.Value()), growth(u.ValueGrowth()),
				u.Price(), growth(u.PriceGrowth()), formatCap(u.LevelMax())))
		}
	}

	config := game.DefaultConfig()
	b.WriteString("\n## Debt schedule\n\n")
	b.WriteString("| After roll | Owed |\n|---:|---:|\n")
	for _, m := range config.DebtSchedule {
		b.WriteString(fmt.Sprintf("| %d | %d |\n", m.Roll, m.Amount))
	}
	return docFile{Name: "rooms.md", Title: "Rooms", Content: b.String()}
}

func generateSignalsDoc() docFile {
	var b strings.Builder
	b.WriteString("# Signals\n\n")
	b.WriteString("Every clickable element carries one integer signal. Room numbers and shop entries are 0-based here.\n\n")
	b.WriteString("| Signal | Meaning |\n|---|---|\n")
	b.WriteString(fmt.Sprintf("| %d | nothing |\n", game.SignalNone))
	b.WriteString(fmt.Sprintf("| %d | roll once |\n", game.SignalRoll1))
	b.WriteString(fmt.Sprintf("| %d | roll 10 times |\n", game.SignalRoll10))
	b.WriteString(fmt.Sprintf("| %d | roll 100 times |\n", game.SignalRoll100))
	b.WriteString(fmt.Sprintf("| %d | restart |\n", game.SignalRestart))

	lastRoom := game.RoomSignalBase + game.Signal(game.MaxRooms*game.SignalsPerRoom) - 1
	b.WriteString(fmt.Sprintf("| %d + room x %d + slot | level up upgrade `slot` (0 to %d) of room `room` |\n",
		game.RoomSignalBase, game.SignalsPerRoom, game.MaxUpgradesPerRoom-1))
	for _, a := range []game.RoomAction{game.ActionSell, game.ActionMoveUp, game.ActionMoveDown, game.ActionMoveUpFar, game.ActionMoveDownFar} {
		b.WriteString(fmt.Sprintf("| %d + room x %d + %d | %s room `room` |\n",
			game.RoomSignalBase, game.SignalsPerRoom, int(game.EncodeRoomAction(0, a)-game.RoomSignalBase), a))
	}
	b.WriteString(fmt.Sprintf("| %d + shop | buy shop entry `shop` (up to %d entries) |\n", game.BuySignalBase, game.MaxShop))
	b.WriteString(fmt.Sprintf("\nRoom signals span %d to %d for up to %d rooms. Anything else is ignored.\n",
		game.RoomSignalBase, lastRoom, game.MaxRooms))

	b.WriteString("\n## Example\n\n")
	b.WriteString(fmt.Sprintf("Level up the second upgrade of the third room: `%d`.\n", game.EncodeRoomUpgrade(2, 1)))
	b.WriteString(fmt.Sprintf("Sell the first room: `%d`. Buy the first shop entry: `%d`.\n",
		game.EncodeRoomAction(0, game.ActionSell), game.EncodeBuy(0)))
	return docFile{Name: "signals.md", Title: "Signals", Content: b.String()}
}

func growth(g game.Growth) string {
	if s, ok := g.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", g)
}

func formatPrice(p int64) string {
	if p < 0 {
		return "not for sale"
	}
	return strconv.FormatInt(p, 10)
}

func formatCap(n int) string {
	if n == game.Unbounded {
		return "unbounded"
	}
	return strconv.Itoa(n)
}

func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
