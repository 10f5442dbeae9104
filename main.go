// main.go - Command line entry point for the Intuition Engine CHIP-8 machine

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

func boilerPlate() {
	fmt.Println("\n\033[38;2;255;20;147mIntuition Engine\033[0m \033[38;2;255;200;147mCHIP-8\033[0m")
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/IntuitionEngine")
	fmt.Println("License: GPLv3 or later")
}

type runOptions struct {
	programPath string
	configPath  string
	backend     int
	config      MachineConfig
}

var errUsage = errors.New("usage")

// parseArgs applies, in order: defaults, the Lua config script named by
// -config, then any flags given explicitly on the command line.
func parseArgs(args []string, usageOut io.Writer) (runOptions, error) {
	var (
		terminal bool
		clockHz  int
		scale    int
		toneHz   float64
		volume   float64
		mute     bool
		onColor  string
		offColor string
		opts     runOptions
	)
	defaults := DefaultMachineConfig()

	flagSet := flag.NewFlagSet("chip8", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&opts.configPath, "config", "", "Lua configuration script")
	flagSet.BoolVar(&terminal, "term", false, "Render in the terminal instead of a window")
	flagSet.IntVar(&clockHz, "clock", defaults.ClockHz, "Instructions per second")
	flagSet.IntVar(&scale, "scale", defaults.Scale, "Window pixels per CHIP-8 pixel")
	flagSet.Float64Var(&toneHz, "tone", defaults.ToneHz, "Buzzer frequency in Hz")
	flagSet.Float64Var(&volume, "volume", defaults.Volume, "Buzzer volume 0.0-1.0")
	flagSet.BoolVar(&mute, "mute", false, "Disable audio output")
	flagSet.StringVar(&onColor, "fg", "", "Foreground color as RRGGBB")
	flagSet.StringVar(&offColor, "bg", "", "Background color as RRGGBB")

	flagSet.Usage = func() {
		flagSet.SetOutput(usageOut)
		fmt.Fprintln(usageOut, "Usage: ./chip8 [-term] [-clock 700] [-scale 10] [-config file.lua] program.ch8")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			flagSet.Usage()
		}
		return opts, err
	}
	if flagSet.NArg() != 1 {
		flagSet.Usage()
		return opts, errUsage
	}
	opts.programPath = flagSet.Arg(0)

	cfg := defaults
	if opts.configPath != "" {
		if err := LoadConfigScript(opts.configPath, &cfg); err != nil {
			return opts, err
		}
	}

	var flagErr error
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "clock":
			cfg.ClockHz = clockHz
		case "scale":
			cfg.Scale = scale
		case "tone":
			cfg.ToneHz = toneHz
		case "volume":
			cfg.Volume = volume
		case "mute":
			cfg.Mute = mute
		case "fg":
			rgb, err := parseRGB(onColor)
			if err != nil {
				flagErr = fmt.Errorf("-fg: %w", err)
			}
			cfg.OnColor = rgb
		case "bg":
			rgb, err := parseRGB(offColor)
			if err != nil {
				flagErr = fmt.Errorf("-bg: %w", err)
			}
			cfg.OffColor = rgb
		}
	})
	if flagErr != nil {
		return opts, flagErr
	}
	if err := cfg.Validate(); err != nil {
		return opts, err
	}

	opts.backend = VIDEO_BACKEND_EBITEN
	if terminal {
		opts.backend = VIDEO_BACKEND_TERMINAL
	}
	opts.config = cfg
	return opts, nil
}

func run(opts runOptions) error {
	cfg := opts.config

	keypad := &Keypad{}
	var tone *ToneGenerator
	var sink AudioSink = silentAudio{}
	if !cfg.Mute {
		tone = NewToneGenerator(cfg.ToneHz, CHIP8_TONE_SAMPLE_RATE, cfg.Volume)
		sink = tone
	}

	cpu := NewChip8CPU(&VideoMemory{}, keypad, nil, sink)
	if err := cpu.LoadProgramFile(opts.programPath); err != nil {
		return err
	}

	if tone != nil {
		player, err := NewOtoTonePlayer(CHIP8_TONE_SAMPLE_RATE, tone)
		if err != nil {
			return fmt.Errorf("failed to initialize sound: %w", err)
		}
		defer player.Close()
		player.Start()
	}

	host, err := NewHost(opts.backend, cfg, keypad)
	if err != nil {
		return fmt.Errorf("failed to initialize video: %w", err)
	}
	driver := NewFrameDriver(cpu, host, host, cfg)

	if opts.backend != VIDEO_BACKEND_TERMINAL {
		fmt.Printf("Starting CHIP-8 at %d Hz (%d cycles/frame) with program: %s\n",
			cfg.ClockHz, driver.CyclesPerFrame(), opts.programPath)
	}
	return host.Run(driver)
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stdout)
	if err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		if err != errUsage {
			fmt.Printf("Error: %v\n", err)
		}
		os.Exit(1)
	}

	if opts.backend != VIDEO_BACKEND_TERMINAL {
		boilerPlate()
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
