package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"beyond531/config"
	"beyond531/export"
	"beyond531/program"
	"beyond531/prompt"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("beyond531", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to YAML config file")
	presetName := fs.String("preset", "", "built-in preset (ramp, classic)")
	presetFile := fs.String("preset-file", "", "YAML rule table to use instead of a built-in preset")
	frontSquat := fs.Float64("front-squat", 0, "front squat 1RM in kg")
	deadlift := fs.Float64("deadlift", 0, "deadlift 1RM in kg")
	benchPress := fs.Float64("bench-press", 0, "bench press 1RM in kg")
	format := fs.String("format", "", "output format: text, csv, json, xlsx")
	out := fs.String("out", "", "output file (stdout when empty, except xlsx)")
	strict := fs.Bool("strict", false, "refuse to generate unless every max is a positive number")
	listPresets := fs.Bool("list-presets", false, "list built-in presets and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	settings, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(fs, settings, flagValues{
		preset:     *presetName,
		presetFile: *presetFile,
		frontSquat: *frontSquat,
		deadlift:   *deadlift,
		benchPress: *benchPress,
		format:     *format,
		out:        *out,
		strict:     *strict,
	})

	level, err := config.ParseLevel(settings.Log.Level)
	if err != nil {
		return err
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if *listPresets {
		for _, p := range program.Presets() {
			fmt.Fprintf(stdout, "%-8s %s\n", p.Name, p.Description)
		}
		return nil
	}

	preset, err := resolvePreset(settings)
	if err != nil {
		return err
	}

	if settings.Maxes.IsZero() {
		reader := prompt.NewReaderFrom(stdin, stdout)
		if preset, err = gatherInteractive(reader, settings, preset, flagSet(fs)); err != nil {
			return fmt.Errorf("error gathering input: %w", err)
		}
	}

	if settings.Strict {
		if err := settings.Maxes.Validate(); err != nil {
			return err
		}
	} else if settings.Maxes.Validate() != nil {
		log.Warn("maxima are not all positive; weights will follow the input", "maxes", settings.Maxes)
	}

	log.Debug("generating program",
		"preset", preset.Name,
		"front_squat", settings.Maxes.FrontSquat,
		"deadlift", settings.Maxes.Deadlift,
		"bench_press", settings.Maxes.BenchPress,
	)
	prog := program.GenerateWith(settings.Maxes, preset)

	filename := settings.Output.File
	if filename == "" && settings.Output.Format == config.FormatXLSX {
		filename = "beyond531" + export.Extension(config.FormatXLSX)
	}
	if filename == "" {
		return export.Write(stdout, settings.Output.Format, prog)
	}

	if err := export.ToFile(filename, settings.Output.Format, prog); err != nil {
		return fmt.Errorf("error exporting %s: %w", settings.Output.Format, err)
	}
	log.Info("program exported", "file", filename, "format", settings.Output.Format, "preset", preset.Name)
	fmt.Fprintf(stdout, "\nProgram exported to %s\n", filename)
	return nil
}

type flagValues struct {
	preset, presetFile               string
	frontSquat, deadlift, benchPress float64
	format, out                      string
	strict                           bool
}

func flagSet(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// applyFlags lets explicitly passed flags win over env and config file values
func applyFlags(fs *flag.FlagSet, s *config.Settings, v flagValues) {
	set := flagSet(fs)
	if set["preset"] {
		s.Preset = v.preset
		s.PresetFile = ""
	}
	if set["preset-file"] {
		s.PresetFile = v.presetFile
	}
	if set["front-squat"] {
		s.Maxes.FrontSquat = v.frontSquat
	}
	if set["deadlift"] {
		s.Maxes.Deadlift = v.deadlift
	}
	if set["bench-press"] {
		s.Maxes.BenchPress = v.benchPress
	}
	if set["format"] {
		s.Output.Format = v.format
	}
	if set["out"] {
		s.Output.File = v.out
	}
	if set["strict"] {
		s.Strict = v.strict
	}
}

// resolvePreset prefers a preset file over a built-in name
func resolvePreset(s *config.Settings) (*program.Preset, error) {
	if s.PresetFile != "" {
		return program.LoadPreset(s.PresetFile)
	}
	return program.LookupPreset(s.Preset)
}

// gatherInteractive asks for everything that was not supplied up front
func gatherInteractive(reader *prompt.Reader, s *config.Settings, preset *program.Preset, set map[string]bool) (*program.Preset, error) {
	maxes, err := reader.GatherMaxes(config.DefaultOneRepMax())
	if err != nil {
		return nil, err
	}
	s.Maxes = maxes

	if !set["preset"] && !set["preset-file"] && s.PresetFile == "" {
		if preset, err = reader.ChoosePreset(program.Presets(), preset.Name); err != nil {
			return nil, err
		}
	}

	if !set["format"] && s.Output.File == "" {
		if s.Output.Format, err = reader.ChooseFormat(); err != nil {
			return nil, err
		}
		if s.Output.Format != config.FormatText {
			if s.Output.File, err = reader.GetOutputFilename(export.Extension(s.Output.Format)); err != nil {
				return nil, err
			}
		}
	}

	return preset, nil
}
