// statusdeck is a responsive layout engine for terminal dashboards.
//
// It sizes a status line, diff view, and countdown timer to the current
// terminal, reflowing between narrow, compact, normal, and wide tiers.
//
// Usage:
//
//	statusdeck [flags]
//
// Flags:
//
//	-line              Print the composed status line and exit
//	-banner            Print the status frame (line plus detail box) and exit
//	-tui               Launch the interactive Bubbletea dashboard
//	-diff-old string   Old file for one-shot diff rendering
//	-diff-new string   New file for one-shot diff rendering
//	-diff-mode string  Diff layout (auto|unified|split|inline)
//	-shell string      Output shell integration script (bash|zsh|fish|nushell)
//	-prompt-hook       Include a per-prompt status line hook in the shell integration
//	-config string     Path to configuration file (default: ~/.config/statusdeck/config.yaml)
//	-density string    Density override (auto|compact|verbose)
//	-labels string     Label policy override (auto|full|abbreviated)
//	-term-width int    Terminal width override (0 = auto-detect)
//	-term-height int   Terminal height override (0 = auto-detect)
//	-verbose           Enable verbose logging
//	-version           Print version and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/statusdeck/config"
	"gitlab.com/tinyland/lab/statusdeck/display/banner"
	"gitlab.com/tinyland/lab/statusdeck/display/color"
	"gitlab.com/tinyland/lab/statusdeck/display/diffview"
	"gitlab.com/tinyland/lab/statusdeck/display/layout"
	"gitlab.com/tinyland/lab/statusdeck/display/terminal"
	"gitlab.com/tinyland/lab/statusdeck/display/tui"
	"gitlab.com/tinyland/lab/statusdeck/shell"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file (default: ~/.config/statusdeck/config.yaml)")
		runLine     = flag.Bool("line", false, "Print the composed status line and exit")
		runBanner   = flag.Bool("banner", false, "Print the status frame (line plus detail box) and exit")
		runTUI      = flag.Bool("tui", false, "Launch the interactive Bubbletea dashboard")
		diffOld     = flag.String("diff-old", "", "Old file for one-shot diff rendering")
		diffNew     = flag.String("diff-new", "", "New file for one-shot diff rendering")
		diffMode    = flag.String("diff-mode", "", "Diff layout (auto|unified|split|inline)")
		density     = flag.String("density", "", "Density override (auto|compact|verbose)")
		labels      = flag.String("labels", "", "Label policy override (auto|full|abbreviated)")
		shellType   = flag.String("shell", "", "Output shell integration script (bash|zsh|fish|nushell)")
		promptHook  = flag.Bool("prompt-hook", false, "Include a per-prompt status line hook in the shell integration")
		termWidth   = flag.Int("term-width", 0, "Terminal width override (0 = auto-detect)")
		termHeight  = flag.Int("term-height", 0, "Terminal height override (0 = auto-detect)")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("statusdeck %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if *shellType != "" {
		var st shell.ShellType
		switch *shellType {
		case "bash":
			st = shell.Bash
		case "zsh":
			st = shell.Zsh
		case "fish":
			st = shell.Fish
		case "nushell", "nu":
			st = shell.Nushell
		default:
			fmt.Fprintf(os.Stderr, "unknown shell: %s (supported: bash, zsh, fish, nushell)\n", *shellType)
			os.Exit(1)
		}
		scfg := shell.DefaultIntegrationConfig()
		scfg.PromptHook = *promptHook
		if *configPath != "" {
			scfg.ConfigPath = *configPath
		}
		fmt.Print(shell.GenerateIntegration(st, scfg))
		os.Exit(0)
	}

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	path := *configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// NO_COLOR and pipe detection override the configured color setting.
	if !color.Apply() {
		cfg.Display.Color = false
	}

	// CLI overrides beat the config file.
	if *density != "" {
		cfg.Display.Density = *density
	}
	if *labels != "" {
		cfg.Display.Abbreviation = *labels
	}
	if *diffMode != "" {
		if _, ok := diffview.ModeFromString(*diffMode); !ok {
			fmt.Fprintf(os.Stderr, "unknown diff mode: %s (supported: auto, unified, split, inline)\n", *diffMode)
			os.Exit(1)
		}
		cfg.Diff.Mode = *diffMode
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// ---------------------------------------------------------------
	// One-shot diff mode
	// ---------------------------------------------------------------

	if *diffOld != "" || *diffNew != "" {
		if *diffOld == "" || *diffNew == "" {
			fmt.Fprintln(os.Stderr, "both -diff-old and -diff-new are required")
			os.Exit(1)
		}
		oldData, err := os.ReadFile(*diffOld)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read %s: %v\n", *diffOld, err)
			os.Exit(1)
		}
		newData, err := os.ReadFile(*diffNew)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read %s: %v\n", *diffNew, err)
			os.Exit(1)
		}

		dims := terminal.GetDimensions(80, 24)
		if *termWidth > 0 {
			dims.Width = *termWidth
		}

		res := diffview.SelectMode(cfg.DiffMode(), dims.Width, cfg.Diff.SplitMinWidth)
		if res.Fallback {
			fmt.Fprintln(os.Stderr, res.Notice)
		}
		rows := diffview.ComputeRows(string(oldData), string(newData))
		for _, line := range diffview.Render(rows, res.Mode, dims.Width, cfg.Display.Color) {
			fmt.Println(line)
		}
		os.Exit(0)
	}

	// ---------------------------------------------------------------
	// Status line mode
	// ---------------------------------------------------------------

	if *runLine {
		dims := terminal.GetDimensions(80, 24)
		if *termWidth > 0 {
			dims.Width = *termWidth
		}
		bp := layout.Classify(dims.Width, cfg.Thresholds())

		line := layout.ComposeLine(cfg.BuildSegments(), layout.LineOptions{
			Width:         dims.Width,
			Breakpoint:    bp,
			Density:       cfg.Density(),
			Mode:          cfg.AbbrevMode(),
			MaxValueWidth: cfg.Display.MaxValueWidth,
		})
		fmt.Println(line)
		os.Exit(0)
	}

	// ---------------------------------------------------------------
	// Banner mode
	// ---------------------------------------------------------------

	if *runBanner {
		b := banner.NewBanner(banner.BannerConfig{
			Config:      cfg,
			TermWidth:   *termWidth,
			TermHeight:  *termHeight,
			ShowDetails: true,
			Logger:      logger,
		})
		out, err := b.Generate(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "banner render failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
		os.Exit(0)
	}

	// ---------------------------------------------------------------
	// TUI mode
	// ---------------------------------------------------------------

	if *runTUI {
		defer func() {
			if r := recover(); r != nil {
				// Restore the terminal from alt-screen before printing the error.
				fmt.Print("\x1b[?1049l\x1b[?25h")
				fmt.Fprintf(os.Stderr, "statusdeck: TUI panic: %v\n", r)
				os.Exit(1)
			}
		}()

		model := tui.NewModel(cfg)
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// ---------------------------------------------------------------
	// Default: print usage
	// ---------------------------------------------------------------

	fmt.Printf("statusdeck v%s (%s) built %s\n", version, commit, date)
	fmt.Println()
	fmt.Println("Usage: statusdeck [flags]")
	fmt.Println()
	flag.PrintDefaults()
}
