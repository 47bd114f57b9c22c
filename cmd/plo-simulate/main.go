// Command plo-simulate runs the Monte Carlo engine (simulate.Run) and
// prints the aggregate hand-type distribution and overall win rate. Shape
// grounded on cmd/poker-odds/main.go: kong flags, lipgloss styling,
// tabwriter tables, time.Since duration reporting.
package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/lox/pokerforbots/omaha"
	"github.com/lox/pokerforbots/poker"
	"github.com/lox/pokerforbots/simulate"
)

type CLI struct {
	Variant     string `short:"v" help:"Omaha variant: plo4, plo5, or plo6" default:"plo4"`
	Players     int    `short:"p" help:"Number of players dealt each hand" default:"6"`
	Iterations  int    `short:"i" help:"Number of Monte Carlo iterations" default:"100000"`
	Workers     int    `short:"w" help:"Parallel worker goroutines" default:"4"`
	Seed        *int64 `help:"Random seed for reproducible results"`
	TimeoutSecs int    `help:"Stop early after this many seconds (0 = no deadline)" default:"0"`
	Debug       bool   `help:"Enable debug logging"`
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	catStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	pctStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func setupLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)
	logger := setupLogger(cli.Debug)

	variant, err := parseVariant(cli.Variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}

	var seed *uint64
	if cli.Seed != nil {
		u := uint64(*cli.Seed)
		seed = &u
	}

	cfg := simulate.Config{
		Variant:     variant,
		PlayerCount: cli.Players,
		Iterations:  cli.Iterations,
		Workers:     cli.Workers,
		Seed:        seed,
	}
	if cli.TimeoutSecs > 0 {
		cfg.Deadline = time.Now().Add(time.Duration(cli.TimeoutSecs) * time.Second)
	}

	logger.Debug().
		Str("variant", variant.String()).
		Int("players", cli.Players).
		Int("iterations", cli.Iterations).
		Msg("plo-simulate: starting run")

	start := time.Now()
	result, err := simulate.Run(context.Background(), cfg)
	duration := time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", err)
		ctx.Exit(1)
	}

	displayResult(result, variant, duration)
}

func parseVariant(s string) (omaha.Variant, error) {
	switch s {
	case "plo4":
		return omaha.PLO4, nil
	case "plo5":
		return omaha.PLO5, nil
	case "plo6":
		return omaha.PLO6, nil
	default:
		return 0, fmt.Errorf("unknown variant %q (want plo4, plo5, or plo6)", s)
	}
}

func displayResult(r simulate.Result, variant omaha.Variant, duration time.Duration) {
	fmt.Printf("%s\n\n", headerStyle.Render(fmt.Sprintf("%s hand-type distribution", variant)))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("category"),
		headerStyle.Render("freq"),
		headerStyle.Render("win rate"),
		headerStyle.Render("count"))

	for i, stat := range r.HandTypeDistribution {
		name := poker.Categories[i].String()
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			catStyle.Render(name),
			pctStyle.Render(fmt.Sprintf("%.2f%%", stat.Percentage)),
			pctStyle.Render(fmt.Sprintf("%.1f%%", stat.WinRate*100)),
			stat.Count)
	}
	w.Flush()

	lower, upper := r.ConfidenceInterval()
	fmt.Printf("\noverall win rate: %.2f%% (95%% CI: [%.2f%%, %.2f%%])\n",
		r.OverallWinRate*100, lower*100, upper*100)

	if r.Truncated {
		fmt.Println(warnStyle.Render("run stopped early at the deadline; results are partial"))
	}

	fmt.Printf("%d iterations in %v\n", r.Iterations, duration.Truncate(time.Millisecond))
}
