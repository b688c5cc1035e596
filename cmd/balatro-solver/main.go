package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/pmcca/balatro-sim/balatro"
	"github.com/pmcca/balatro-sim/internal/config"
	"github.com/pmcca/balatro-sim/internal/ingest"
)

type CLI struct {
	Cards    string `arg:"" optional:"" help:"Hand in compact notation, e.g. '2h 3d Kh 5c 7s 9d Ks 4h'"`
	Jokers   string `short:"j" help:"Comma separated joker row"`
	Top      int    `short:"n" help:"Number of plays to show (overrides config)"`
	Snapshot string `short:"s" type:"existingfile" help:"Solve a JSON game-state snapshot instead of notation"`
	Config   string `short:"c" default:"balatro.hcl" help:"Path to HCL configuration file"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	rankStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
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
		hand   []balatro.Card
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
		hand = snap.Cards()
		jokers = snap.JokerSlots()
		levels = snap.Levels()

	case cli.Cards != "":
		hand, err = balatro.ParseCards(cli.Cards)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing cards: %v\n", err)
			ctx.Exit(1)
		}
		for _, name := range strings.Split(cli.Jokers, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				jokers = append(jokers, balatro.Joker{Name: name})
			}
		}

	default:
		fmt.Fprintln(os.Stderr, "Provide cards or a snapshot file")
		ctx.Exit(1)
	}

	start := time.Now()
	results := engine.BestHands(hand, jokers, levels, cli.Top)
	duration := time.Since(start)

	displayResults(hand, results, duration)
}

func displayResults(hand []balatro.Card, results []balatro.Breakdown, duration time.Duration) {
	parts := make([]string, len(hand))
	for i, c := range hand {
		parts[i] = c.String()
	}
	fmt.Println(headerStyle.Render("Hand:"), strings.Join(parts, "  "))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("#"),
		headerStyle.Render("Hand"),
		headerStyle.Render("Score"),
		headerStyle.Render("Play"))

	for i, b := range results {
		play := make([]string, len(b.AllCards))
		for j, idx := range b.AllCards {
			play[j] = hand[idx].String()
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			i+1,
			rankStyle.Render(b.HandType.String()),
			scoreStyle.Render(fmt.Sprintf("%.0f", b.FinalScore)),
			strings.Join(play, " "))
	}
	_ = w.Flush()

	fmt.Println()
	fmt.Println(dimStyle.Render(fmt.Sprintf("searched in %v", duration.Round(time.Microsecond))))
}
