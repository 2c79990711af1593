package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"github.com/Yoshida088603/dxf2geojson/internal/config"
	"github.com/Yoshida088603/dxf2geojson/internal/logger"
	"github.com/Yoshida088603/dxf2geojson/internal/processor"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string  `short:"c" long:"config"      env:"CONFIG_FILE" description:"Path to configuration file"`
	SourceEPSG int     `short:"s" long:"source-epsg" env:"SOURCE_EPSG" description:"EPSG code of the drawing coordinate system" default:"6677"`
	TargetEPSG int     `short:"t" long:"target-epsg" env:"TARGET_EPSG" description:"EPSG code of the output coordinate system" default:"4326"`
	ArcStep    float64 `long:"arc-step"    env:"ARC_STEP" description:"Angular step in degrees for circle and arc sampling" default:"5"`
	Compact    bool    `long:"compact"     description:"Write minified GeoJSON"`
	Force      bool    `short:"f" long:"force" description:"Force overwrite of existing output files"`
	ListZones  bool    `long:"list-zones"  description:"List plane rectangular zones and exit"`

	Args struct {
		Files []string `positional-arg-name:"FILE" description:"DXF files to convert"`
	} `positional-args:"yes"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	if opts.ListZones {
		listZones()
		os.Exit(0)
	}

	if len(opts.Args.Files) == 0 {
		log.Fatal().Msg("No input files given, expected at least one DXF path")
	}

	applyConfig(&opts)

	procOpts := processor.Options{
		SourceEPSG: opts.SourceEPSG,
		TargetEPSG: opts.TargetEPSG,
		ArcStep:    opts.ArcStep,
		Compact:    opts.Compact,
		Force:      opts.Force,
	}

	log.Info().
		Int("files", len(opts.Args.Files)).
		Int("source_epsg", procOpts.SourceEPSG).
		Int("target_epsg", procOpts.TargetEPSG).
		Msg("Starting conversion")

	failed := 0
	for _, path := range opts.Args.Files {
		if err := processor.Process(path, procOpts); err != nil {
			log.Error().Err(err).Str("file", path).Msg("Failed to convert drawing")
			failed++
		}
	}

	if failed == len(opts.Args.Files) {
		log.Fatal().Int("failed", failed).Msg("All conversions failed")
	}
	if failed > 0 {
		log.Warn().
			Int("failed", failed).
			Int("converted", len(opts.Args.Files)-failed).
			Msg("Finished with failures")
		return
	}
	log.Info().Int("converted", len(opts.Args.Files)).Msg("All conversions finished")
}

// applyConfig loads the optional YAML config and fills in every option the
// command line left at its default.
func applyConfig(opts *Options) {
	if opts.ConfigFile == "" {
		return
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Str("config", opts.ConfigFile).Msg("Failed to load configuration")
	}

	if cfg.SourceEPSG != 0 && opts.SourceEPSG == config.DefaultSourceEPSG {
		opts.SourceEPSG = cfg.SourceEPSG
	}
	if cfg.TargetEPSG != 0 && opts.TargetEPSG == config.DefaultTargetEPSG {
		opts.TargetEPSG = cfg.TargetEPSG
	}
	if cfg.ArcStep != 0 && opts.ArcStep == config.DefaultArcStep {
		opts.ArcStep = cfg.ArcStep
	}
	if cfg.Compact {
		opts.Compact = true
	}
}

func listZones() {
	fmt.Println("Japan Plane Rectangular CS (JGD2011) zones:")
	for _, z := range config.DefaultZones() {
		fmt.Printf("  %2d  EPSG:%d  %s\n", z.Number, z.EPSG, z.Region)
	}
}
