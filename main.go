package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/feelings-wheel/internal/config"
	"github.com/iburimskiy/feelings-wheel/internal/game"
	"github.com/iburimskiy/feelings-wheel/internal/sound"
	"github.com/iburimskiy/feelings-wheel/internal/taxonomy"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	taxonomyPath := flag.String("taxonomy", "", "path to a TOML taxonomy replacing the built-in feelings")
	flag.Parse()

	if err := run(*configPath, *taxonomyPath); err != nil {
		fmt.Fprintln(os.Stderr, "feelings-wheel:", err)
		os.Exit(1)
	}
}

func run(configPath, taxonomyPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)

	tax := taxonomy.Default()
	if taxonomyPath != "" {
		if tax, err = taxonomy.Load(taxonomyPath); err != nil {
			return err
		}
	}

	player := sound.NewPlayer(log)
	if cfg.Sound {
		// a missing audio device only silences the wheel
		_ = player.Init()
	}
	if cfg.Chime != "" {
		if err := player.LoadChime(cfg.Chime); err != nil {
			log.Warn("chime not loaded", "path", cfg.Chime, "err", err)
		}
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Feelings Wheel - click to select, drag to turn, S: simplified, R: reset, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(cfg, tax, player, log)
	log.Info("starting", "cores", len(tax.Cores), "secondary", tax.TotalSecondary(), "sound", player.Ready())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
