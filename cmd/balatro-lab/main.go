package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/pmcca/balatro-sim/internal/config"
	"github.com/pmcca/balatro-sim/internal/lab"
)

var CLI struct {
	Config string `short:"c" default:"balatro.hcl" help:"Path to HCL configuration file"`
}

func main() {
	ctx := kong.Parse(&CLI)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		ctx.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		ctx.Exit(1)
	}

	// Pin the color profile to what the terminal actually supports so
	// styles degrade instead of washing out over ssh or dumb terminals
	lipgloss.SetColorProfile(termenv.ColorProfile())

	model := lab.New(cfg.Engine())
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running explorer: %v\n", err)
		ctx.Exit(1)
	}
}
