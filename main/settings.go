package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"stablefluids/pkg/fluid"
)

type Settings struct {
	Simulation SimulationSettings `json:"simulation"`
	Window     WindowSettings     `json:"window"`
}

type SimulationSettings struct {
	GridSize      int     `json:"gridSize"`
	TimeStep      float64 `json:"timeStep"`
	DiffusionRate float64 `json:"diffusionRate"`
	Viscosity     float64 `json:"viscosity"`
	ViscosityStep float64 `json:"viscosityStep"`
	Buoyancy      float64 `json:"buoyancy"`
}

type WindowSettings struct {
	Size         int  `json:"size"`
	TickMs       int  `json:"tickMs"`
	StartRunning bool `json:"startRunning"`
}

func defaultSettings() Settings {
	cfg := fluid.DefaultConfig()
	return Settings{
		Simulation: SimulationSettings{
			GridSize:      cfg.N,
			TimeStep:      cfg.H,
			DiffusionRate: cfg.DiffusionRate,
			Viscosity:     cfg.Viscosity,
			ViscosityStep: cfg.ViscosityStep,
			Buoyancy:      cfg.Buoyancy,
		},
		Window: WindowSettings{
			Size:   600,
			TickMs: 25,
		},
	}
}

// loadSettings returns the defaults overridden by the JSON file at path. A
// missing file is not an error.
func loadSettings(path string) (Settings, error) {
	settings := defaultSettings()

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("no %s found, using defaults", path)
			return settings, nil
		}
		return settings, err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(&settings); err != nil {
		return settings, fmt.Errorf("error parsing %s: %w", path, err)
	}
	log.Printf("loaded settings from %s: %dx%d grid, h = %g",
		path, settings.Simulation.GridSize, settings.Simulation.GridSize, settings.Simulation.TimeStep)
	return settings, nil
}

func (s Settings) fluidConfig() fluid.Config {
	cfg := fluid.DefaultConfig()
	cfg.N = s.Simulation.GridSize
	cfg.H = s.Simulation.TimeStep
	cfg.DiffusionRate = s.Simulation.DiffusionRate
	cfg.Viscosity = s.Simulation.Viscosity
	cfg.ViscosityStep = s.Simulation.ViscosityStep
	cfg.Buoyancy = s.Simulation.Buoyancy
	return cfg
}

func (s Settings) validate() error {
	if s.Window.Size < s.Simulation.GridSize {
		return fmt.Errorf("window size %d is smaller than the grid (%d)", s.Window.Size, s.Simulation.GridSize)
	}
	if s.Window.TickMs <= 0 {
		return fmt.Errorf("tick must be positive, got %d ms", s.Window.TickMs)
	}
	return s.fluidConfig().Validate()
}
