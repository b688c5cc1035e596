// Package config loads simulator configuration from an HCL file. The
// tunables block exists so the engine's expected-value approximation
// constants can be overridden without a rebuild.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/pmcca/balatro-sim/balatro"
)

// Config is the root of the simulator configuration file
type Config struct {
	Server   *ServerBlock   `hcl:"server,block"`
	Solver   *SolverBlock   `hcl:"solver,block"`
	Tunables *TunablesBlock `hcl:"tunables,block"`
}

// ServerBlock configures the websocket advisor service
type ServerBlock struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// SolverBlock configures search behavior
type SolverBlock struct {
	MaxPlay int `hcl:"max_play,optional"`
	TopN    int `hcl:"top_n,optional"`
	Workers int `hcl:"workers,optional"`
}

// TunablesBlock overrides approximation constants. Pointer fields
// distinguish "not set" from an explicit zero.
type TunablesBlock struct {
	GreenJokerMult           *int     `hcl:"green_joker_mult,optional"`
	BlueJokerChipsPerCard    *int     `hcl:"blue_joker_chips_per_card,optional"`
	DeckRemaining            *int     `hcl:"deck_remaining,optional"`
	RedCardMult              *int     `hcl:"red_card_mult,optional"`
	SwashbucklerFallbackMult *int     `hcl:"swashbuckler_fallback_mult,optional"`
	BloodstoneHeartEV        *float64 `hcl:"bloodstone_heart_ev,optional"`
	StencilSlots             *int     `hcl:"stencil_slots,optional"`
	MisprintMult             *int     `hcl:"misprint_mult,optional"`
	BannerMult               *int     `hcl:"banner_mult,optional"`
	MysticSummitMult         *int     `hcl:"mystic_summit_mult,optional"`
	LoyaltyXMult             *float64 `hcl:"loyalty_x_mult,optional"`
	RideTheBusMult           *int     `hcl:"ride_the_bus_mult,optional"`
	SupernovaMult            *int     `hcl:"supernova_mult,optional"`
	HikerChips               *int     `hcl:"hiker_chips,optional"`
	SteelJokerEV             *float64 `hcl:"steel_joker_ev,optional"`
	SteelHeldXMult           *float64 `hcl:"steel_held_x_mult,optional"`
	LuckyMult                *int     `hcl:"lucky_mult,optional"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Server: &ServerBlock{
			Address:  "localhost",
			Port:     8090,
			LogLevel: "info",
		},
		Solver: &SolverBlock{
			MaxPlay: 5,
			TopN:    3,
		},
	}
}

// Load reads an HCL configuration file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Fill unset blocks and attributes with defaults
	def := Default()
	if cfg.Server == nil {
		cfg.Server = def.Server
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = def.Server.Address
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = def.Server.Port
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = def.Server.LogLevel
	}
	if cfg.Solver == nil {
		cfg.Solver = def.Solver
	}
	if cfg.Solver.MaxPlay == 0 {
		cfg.Solver.MaxPlay = def.Solver.MaxPlay
	}
	if cfg.Solver.TopN == 0 {
		cfg.Solver.TopN = def.Solver.TopN
	}

	return &cfg, nil
}

// Validate checks the configuration for values the engine can't run with
func (c *Config) Validate() error {
	if c.Server != nil {
		if c.Server.Port < 1 || c.Server.Port > 65535 {
			return fmt.Errorf("invalid port: %d", c.Server.Port)
		}
	}
	if c.Solver != nil {
		if c.Solver.MaxPlay < 1 || c.Solver.MaxPlay > 5 {
			return fmt.Errorf("max_play must be between 1 and 5, got %d", c.Solver.MaxPlay)
		}
		if c.Solver.TopN < 1 {
			return fmt.Errorf("top_n must be positive, got %d", c.Solver.TopN)
		}
		if c.Solver.Workers < 0 {
			return fmt.Errorf("workers must not be negative, got %d", c.Solver.Workers)
		}
	}
	return nil
}

// ListenAddr returns the advisor service address
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// Engine builds a scoring engine from the configuration
func (c *Config) Engine() *balatro.Engine {
	e := balatro.NewEngine()
	if c.Solver != nil {
		if c.Solver.MaxPlay > 0 {
			e.MaxPlay = c.Solver.MaxPlay
		}
		if c.Solver.TopN > 0 {
			e.TopN = c.Solver.TopN
		}
		e.Workers = c.Solver.Workers
	}
	if t := c.Tunables; t != nil {
		applyInt := func(dst *int, src *int) {
			if src != nil {
				*dst = *src
			}
		}
		applyFloat := func(dst *float64, src *float64) {
			if src != nil {
				*dst = *src
			}
		}
		applyInt(&e.Tunables.GreenJokerMult, t.GreenJokerMult)
		applyInt(&e.Tunables.BlueJokerChipsPerCard, t.BlueJokerChipsPerCard)
		applyInt(&e.Tunables.DeckRemaining, t.DeckRemaining)
		applyInt(&e.Tunables.RedCardMult, t.RedCardMult)
		applyInt(&e.Tunables.SwashbucklerFallbackMult, t.SwashbucklerFallbackMult)
		applyFloat(&e.Tunables.BloodstoneHeartEV, t.BloodstoneHeartEV)
		applyInt(&e.Tunables.StencilSlots, t.StencilSlots)
		applyInt(&e.Tunables.MisprintMult, t.MisprintMult)
		applyInt(&e.Tunables.BannerMult, t.BannerMult)
		applyInt(&e.Tunables.MysticSummitMult, t.MysticSummitMult)
		applyFloat(&e.Tunables.LoyaltyXMult, t.LoyaltyXMult)
		applyInt(&e.Tunables.RideTheBusMult, t.RideTheBusMult)
		applyInt(&e.Tunables.SupernovaMult, t.SupernovaMult)
		applyInt(&e.Tunables.HikerChips, t.HikerChips)
		applyFloat(&e.Tunables.SteelJokerEV, t.SteelJokerEV)
		applyFloat(&e.Tunables.SteelHeldXMult, t.SteelHeldXMult)
		applyInt(&e.Tunables.LuckyMult, t.LuckyMult)
	}
	return e
}
