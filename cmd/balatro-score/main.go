package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/pmcca/balatro-sim/balatro"
	"github.com/pmcca/balatro-sim/internal/config"
	"github.com/pmcca/balatro-sim/internal/ingest"
)

type CLI struct {
	Cards    string `arg:"" optional:"" help:"Played cards in compact notation, e.g. 'Kh Kd 2s:bonus'"`
	Held     string `short:"H" help:"Cards held in hand while scoring"`
	Jokers   string `short:"j" help:"Comma separated joker row, e.g. 'The Duo, Joker'"`
	Snapshot string `short:"s" type:"existingfile" help:"Score a JSON game-state snapshot instead of notation"`
	Config   string `short:"c" default:"balatro.hcl" help:"Path to HCL configuration file"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		ctx.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		ctx.Exit(1)
	}
	engine := cfg.Engine()

	var (
		cards  []balatro.Card
		held   []balatro.Card
		jokers []balatro.Joker
		levels *balatro.HandLevels
	)

	switch {
	case cli.Snapshot != "":
		f, err := os.Open(cli.Snapshot)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening snapshot: %v\n", err)
			ctx.Exit(1)
		}
		snap, err := ingest.Decode(f)
		_ = f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading snapshot: %v\n", err)
			ctx.Exit(1)
		}
		cards = snap.Cards()
		held = snap.HeldCards()
		jokers = snap.JokerSlots()
		levels = snap.Levels()

	case cli.Cards != "":
		cards, err = balatro.ParseCards(cli.Cards)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing cards: %v\n", err)
			ctx.Exit(1)
		}
		if cli.Held != "" {
			held, err = balatro.ParseCards(cli.Held)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing held cards: %v\n", err)
				ctx.Exit(1)
			}
		}
		jokers = parseJokers(cli.Jokers)

	default:
		fmt.Fprintln(os.Stderr, "Provide cards or a snapshot file")
		ctx.Exit(1)
	}

	breakdown := engine.Score(cards, held, jokers, levels)
	displayBreakdown(cards, breakdown)
}

func parseJokers(s string) []balatro.Joker {
	var jokers []balatro.Joker
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		jokers = append(jokers, balatro.Joker{Name: name})
	}
	return jokers
}

func displayBreakdown(cards []balatro.Card, b balatro.Breakdown) {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	fmt.Println(headerStyle.Render("Play:"), strings.Join(parts, "  "))
	fmt.Println(headerStyle.Render("Hand:"), handStyle.Render(b.HandType.String()))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%d x %d\n", labelStyle.Render("base"), b.BaseChips, b.BaseMult)
	fmt.Fprintf(w, "%s\t+%d chips\n", labelStyle.Render("cards"), b.CardChips)
	if b.AddChips != 0 {
		fmt.Fprintf(w, "%s\t+%d chips\n", labelStyle.Render("bonuses"), b.AddChips)
	}
	if b.AddMult != 0 {
		fmt.Fprintf(w, "%s\t+%d mult\n", labelStyle.Render("mult"), b.AddMult)
	}
	if b.XMult != 1 {
		fmt.Fprintf(w, "%s\tx%.4g mult\n", labelStyle.Render("x-mult"), b.XMult)
	}
	fmt.Fprintf(w, "%s\t%v\n", labelStyle.Render("scoring"), b.ScoringCards)
	_ = w.Flush()

	fmt.Println()
	fmt.Println(headerStyle.Render("Score:"), scoreStyle.Render(fmt.Sprintf("%.0f", b.FinalScore)))
}
