package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alt-romes/agda/js"
	"github.com/alt-romes/agda/util"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	// reading .env config file
	config, err := util.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read config file")
	}

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	entries, err := os.ReadDir(config.InputDir)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read input directory")
	}

	// every serialized module is independent of the others, so they
	// render concurrently
	var waitGroup errgroup.Group

	rendered := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		rendered++

		inputPath := filepath.Join(config.InputDir, entry.Name())
		waitGroup.Go(func() error {
			return renderModuleFile(config, inputPath)
		})
	}

	if err = waitGroup.Wait(); err != nil {
		log.Fatal().Err(err).Msg("error from wait group")
	}

	log.Info().Int("modules", rendered).Bool("minify", config.Minify).Msg("all modules rendered")
}

// renderModuleFile decodes one serialized module document and writes its
// rendered source next to the configured output directory.
func renderModuleFile(config util.Config, path string) error {
	body, err := os.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("input", path).Msg("cannot read module file")
		return err
	}

	module, err := js.ParseModule(body)
	if err != nil {
		log.Error().Err(err).Str("input", path).Msg("cannot decode module file")
		return err
	}

	outputPath, err := config.OutputFile(module.Name)
	if err != nil {
		log.Error().Err(err).Str("input", path).Msg("bad module name")
		return err
	}

	source := module.Render(config.Minify)
	if err = os.WriteFile(outputPath, []byte(source+"\n"), 0o644); err != nil {
		log.Error().Err(err).Str("output", outputPath).Msg("cannot write rendered module")
		return err
	}

	log.Info().
		Str("module", module.Name).
		Str("output", outputPath).
		Int("exports", len(module.Exports)).
		Msg("module rendered")

	return nil
}
