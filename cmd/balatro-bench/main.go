package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/pmcca/balatro-sim/balatro"
	"github.com/pmcca/balatro-sim/internal/config"
)

type CLI struct {
	Deals    int    `default:"10000" help:"Number of random deals to evaluate"`
	HandSize int    `default:"8" help:"Cards dealt per hand"`
	Jokers   string `short:"j" help:"Comma separated joker row applied to every deal"`
	Seed     int64  `default:"0" help:"RNG seed (0 for random)"`
	Config   string `short:"c" default:"balatro.hcl" help:"Path to HCL configuration file"`
}

// Statistics aggregates best-play scores across deals
type Statistics struct {
	Deals  int
	Sum    float64
	Sum2   float64 // Sum of squares for variance calculation
	Max    float64
	Values []float64 // Stored for percentile calculation

	// Distribution of best hand types found
	HandTypes map[balatro.HandType]int
}

func NewStatistics() *Statistics {
	return &Statistics{HandTypes: make(map[balatro.HandType]int)}
}

func (s *Statistics) Add(b balatro.Breakdown) {
	s.Deals++
	s.Sum += b.FinalScore
	s.Sum2 += b.FinalScore * b.FinalScore
	if b.FinalScore > s.Max {
		s.Max = b.FinalScore
	}
	s.Values = append(s.Values, b.FinalScore)
	s.HandTypes[b.HandType]++
}

func (s *Statistics) Mean() float64 {
	if s.Deals == 0 {
		return 0
	}
	return s.Sum / float64(s.Deals)
}

func (s *Statistics) Variance() float64 {
	if s.Deals < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Deals)*mean*mean) / float64(s.Deals-1)
}

func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), s.Values...)
	sort.Float64s(sorted)
	idx := int(p * float64(len(sorted)-1))
	return sorted[idx]
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	valueStyle = lipgloss.NewStyle().
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
	engine := cfg.Engine()

	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var jokers []balatro.Joker
	for _, name := range strings.Split(cli.Jokers, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			jokers = append(jokers, balatro.Joker{Name: name})
		}
	}

	stats := NewStatistics()
	deck := balatro.NewDeck(rng)
	start := time.Now()
	for i := 0; i < cli.Deals; i++ {
		deck.Shuffle()
		hand := deck.Deal(cli.HandSize)

		results := engine.BestHands(hand, jokers, nil, 1)
		if len(results) > 0 {
			stats.Add(results[0])
		}
	}
	duration := time.Since(start)

	displayStatistics(stats, seed, duration)
}

func displayStatistics(stats *Statistics, seed int64, duration time.Duration) {
	fmt.Println(headerStyle.Render("Best-play score distribution"))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "deals\t%d\n", stats.Deals)
	fmt.Fprintf(w, "mean\t%s\n", valueStyle.Render(fmt.Sprintf("%.1f", stats.Mean())))
	fmt.Fprintf(w, "stddev\t%.1f\n", stats.StdDev())
	fmt.Fprintf(w, "median\t%.0f\n", stats.Percentile(0.5))
	fmt.Fprintf(w, "p95\t%.0f\n", stats.Percentile(0.95))
	fmt.Fprintf(w, "max\t%s\n", valueStyle.Render(fmt.Sprintf("%.0f", stats.Max)))
	_ = w.Flush()

	fmt.Println()
	fmt.Println(headerStyle.Render("Hand types"))
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	types := make([]balatro.HandType, 0, len(stats.HandTypes))
	for h := range stats.HandTypes {
		types = append(types, h)
	}
	sort.Slice(types, func(i, j int) bool {
		return stats.HandTypes[types[i]] > stats.HandTypes[types[j]]
	})
	for _, h := range types {
		count := stats.HandTypes[h]
		fmt.Fprintf(w, "%s\t%d\t%.1f%%\n", h, count, 100*float64(count)/float64(stats.Deals))
	}
	_ = w.Flush()

	fmt.Println()
	fmt.Println(dimStyle.Render(fmt.Sprintf("seed %d, %v total, %v per deal",
		seed, duration.Round(time.Millisecond), (duration / time.Duration(max(stats.Deals, 1))).Round(time.Microsecond))))
}
