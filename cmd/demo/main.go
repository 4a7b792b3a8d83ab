package main

import (
	"fmt"
	"io"
	"os"

	"scenedemo/internal/animation"
	"scenedemo/internal/config"
	"scenedemo/internal/game"
	"scenedemo/internal/logging"
	"scenedemo/internal/panel"

	"github.com/spf13/pflag"
)

func main() {
	fs := pflag.NewFlagSet("demo", pflag.ExitOnError)
	config.Flags(fs)
	fs.Parse(os.Args[1:])

	if err := run(fs, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(1)
	}
}

// run returns setup errors without logging them; main reports them once.
func run(fs *pflag.FlagSet, logOut io.Writer) error {
	v, err := config.New(fs)
	if err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	var files []io.Writer
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		files = append(files, f)
	}
	log := logging.New(cfg.LogLevel, logOut, files...)
	log.Info().Str("config", v.ConfigFileUsed()).Msg("starting")

	p := panel.New(cfg.AnimationParams())
	config.WatchParams(v, func(params animation.Params) {
		p.Set(params)
		log.Info().
			Float32("rotationSpeed", params.RotationSpeed).
			Float32("opacity", params.Opacity).
			Msg("params reloaded")
	}, func(err error) {
		log.Warn().Err(err).Msg("config reload rejected")
	})

	g, err := game.New(cfg, p, log)
	if err != nil {
		return err
	}
	g.Run()
	return nil
}
