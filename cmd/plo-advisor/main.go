// Command plo-advisor is the CLI surface of the recommender pipeline
// (spec.md §6's "Recommender request/response", realized as a one-shot
// command instead of an HTTP endpoint, which §1 scopes out of core). It
// assembles hero's hand, the board, and the betting context from flags,
// runs the evaluator, texture analyzer, range estimator, equity
// calculator, outs counter, pot-odds/SPR math, and recommender in
// sequence, then prints the Recommendation. Shape grounded on
// cmd/poker-odds/main.go: kong flags, lipgloss styling, tabwriter tables.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/lox/pokerforbots/classification"
	"github.com/lox/pokerforbots/equity"
	"github.com/lox/pokerforbots/omaha"
	"github.com/lox/pokerforbots/outs"
	"github.com/lox/pokerforbots/poker"
	"github.com/lox/pokerforbots/potodds"
	"github.com/lox/pokerforbots/rangeest"
	"github.com/lox/pokerforbots/recommend"
	"github.com/lox/pokerforbots/simulate"
	"github.com/lox/pokerforbots/styleprofile"
)

type CLI struct {
	Variant string   `short:"v" help:"Omaha variant: plo4, plo5, or plo6" default:"plo4"`
	Hole    []string `arg:"" help:"Hero's hole cards, e.g. As Ks Qh Jh"`
	Board   []string `short:"b" help:"Community board cards dealt so far (0, 3, 4, or 5)"`

	Players  int    `short:"p" help:"Total players still in the hand" default:"2"`
	Position string `help:"Hero's seat: utg, mp, hj, co, btn, sb, bb" default:"mp" enum:"utg,mp,hj,co,btn,sb,bb"`

	PotSize int `help:"Current pot size in chips"`
	ToCall  int `help:"Chips hero must call to continue" default:"0"`
	Stack   int `help:"Hero's effective stack in chips"`

	MinBet        int `help:"Legal minimum bet"`
	MinRaise      int `help:"Legal minimum raise"`
	PreviousBet   int `help:"Largest bet so far this street"`
	PreviousRaise int `help:"Largest raise so far this street"`

	Style string `help:"Hero playing style: nit, rock, reg, tag, lag, fish" default:"reg"`

	VillainPreflop string   `help:"Villain's preflop action: open, threebet, blinddefend, bigbet, checkraise" default:"open" enum:"open,threebet,blinddefend,bigbet,checkraise"`
	VillainAction  []string `help:"Villain postflop action as type:sizepct, e.g. bet:0.66, raise:1.0, check, call"`

	SimIterations int    `help:"Monte Carlo iterations used to seed the equity matrix" default:"20000"`
	Seed          *int64 `help:"Random seed for the equity-matrix simulation"`
	Debug         bool   `help:"Enable debug logging"`
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	actionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	logger := setupLogger(cli.Debug)

	rec, analysis, err := run(cli, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}

	display(rec, analysis)
}

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

// analysisReport bundles the intermediate results displayed alongside the
// final Recommendation (spec.md §6's analysis.* fields).
type analysisReport struct {
	HeroRank      poker.HandRank
	IsNuts        bool
	Texture       classification.FlopTexture
	Draws         outs.DrawInfo
	DrawEquityPct float64
	Equity        equity.Result
	PotOddsPct    float64
	ImpliedOdds   potodds.ImpliedOddsRating
	SPR           float64
	SPRZone       potodds.SPRZone
	Street        poker.Street
}

func run(cli CLI, logger zerolog.Logger) (recommend.Recommendation, analysisReport, error) {
	variant, err := parseVariant(cli.Variant)
	if err != nil {
		return recommend.Recommendation{}, analysisReport{}, err
	}

	hole, err := parseCards(cli.Hole)
	if err != nil {
		return recommend.Recommendation{}, analysisReport{}, fmt.Errorf("hole cards: %w", err)
	}
	board, err := parseCards(cli.Board)
	if err != nil {
		return recommend.Recommendation{}, analysisReport{}, fmt.Errorf("board: %w", err)
	}

	street := poker.StreetFromBoardLen(len(board))
	boardHand := poker.NewHand(board...)

	heroRank, err := omaha.Evaluate(hole, board, variant)
	if err != nil {
		return recommend.Recommendation{}, analysisReport{}, fmt.Errorf("evaluate: %w", err)
	}
	isNuts, err := omaha.IsNuts(heroRank, hole, board)
	if err != nil {
		return recommend.Recommendation{}, analysisReport{}, fmt.Errorf("nuts check: %w", err)
	}

	flopOnly := board
	if len(flopOnly) > 3 {
		flopOnly = flopOnly[:3]
	}
	texture, err := classification.AnalyzeFlop(poker.NewHand(flopOnly...))
	if err != nil {
		return recommend.Recommendation{}, analysisReport{}, fmt.Errorf("texture: %w", err)
	}

	draws := outs.DetectDraws(hole, boardHand)
	streetsToCome := streetsToCome(street)
	drawEquityPct := outs.ApproxEquity(draws.Outs, streetsToCome)

	villainActions, err := parseVillainActions(cli.VillainAction, street)
	if err != nil {
		return recommend.Recommendation{}, analysisReport{}, fmt.Errorf("villain action: %w", err)
	}
	preflopAction, err := parseVillainPreflop(cli.VillainPreflop)
	if err != nil {
		return recommend.Recommendation{}, analysisReport{}, err
	}

	rng := rangeest.Estimate(rangeest.Input{
		Position:      rangePositionOf(cli.Position),
		PreflopAction: preflopAction,
		Actions:       villainActions,
		BoardTexture: &rangeest.BoardTexture{
			Monotone:  texture.Suitedness == classification.Monotone,
			Connected: texture.Connectivity == classification.Connected,
			Paired:    texture.IsPaired,
		},
		PlayersInHand: cli.Players,
	})

	opponents := cli.Players - 1
	if opponents < 1 {
		opponents = 1
	}

	provider, err := buildMatrixProvider(variant, cli.Players, cli.SimIterations, cli.Seed)
	if err != nil {
		return recommend.Recommendation{}, analysisReport{}, fmt.Errorf("seed equity matrix: %w", err)
	}

	eq, err := equity.Estimate(equity.Input{
		HeroCategory:  heroRank.CategoryIndex(),
		IsNuts:        isNuts,
		OpponentRange: rng,
		Opponents:     opponents,
		Matrices:      provider,
		Draws:         &draws,
		StreetsToCome: streetsToCome,
	})
	if err != nil {
		return recommend.Recommendation{}, analysisReport{}, fmt.Errorf("equity: %w", err)
	}

	potOddsPct := potodds.PotOdds(cli.PotSize, cli.ToCall)
	impliedOdds := potodds.ImpliedOdds(cli.Stack, cli.PotSize)
	spr := potodds.SPR(cli.Stack, cli.PotSize)
	sprZone := potodds.Zone(spr)

	style, err := styleprofile.FromString(cli.Style)
	if err != nil {
		return recommend.Recommendation{}, analysisReport{}, err
	}

	req := recommend.Request{
		Equity:          eq.Equity,
		PotOdds:         potOddsPct,
		ImpliedOdds:     impliedOdds,
		HeroCategory:    heroRank.CategoryIndex(),
		HeroDescription: heroRank.String(),
		IsNuts:          isNuts,
		Outs:            draws.Outs,
		DrawEquity:      drawEquityPct,
		SPR:             spr,
		Position:        positionOf(cli.Position),
		BoardTexture:    texture,
		Street:          street,
		FacingBet:       cli.ToCall > 0,
		ToCall:          cli.ToCall,
		PotSize:         cli.PotSize,
		EffectiveStack:  cli.Stack,
		HeroStyle:       style,
		MinBet:          cli.MinBet,
		MinRaise:        cli.MinRaise,
		PreviousBet:     cli.PreviousBet,
		PreviousRaise:   cli.PreviousRaise,
	}

	rec, err := recommend.Recommend(req, recommend.WithLogger(logger))
	if err != nil {
		return recommend.Recommendation{}, analysisReport{}, fmt.Errorf("recommend: %w", err)
	}

	return rec, analysisReport{
		HeroRank:      heroRank,
		IsNuts:        isNuts,
		Texture:       texture,
		Draws:         draws,
		DrawEquityPct: drawEquityPct,
		Equity:        eq,
		PotOddsPct:    potOddsPct,
		ImpliedOdds:   impliedOdds,
		SPR:           spr,
		SPRZone:       sprZone,
		Street:        street,
	}, nil
}

// matrixProvider adapts a single simulate.Result to equity.MatrixProvider,
// ignoring the requested player count since the CLI only ever simulates
// for the one table size the user asked about.
type matrixProvider struct {
	winRate [9][9]float64
}

func (m matrixProvider) WinRateMatrix(int) ([9][9]float64, bool) {
	return m.winRate, true
}

// buildMatrixProvider seeds the equity calculator's pairwise win-rate
// matrix by running a Monte Carlo simulation at the requested table size
// (spec.md §6's "pre-computed matrix ... consumed by equity calc" — here
// produced on demand rather than loaded from a bundled resource, since
// this CLI has no blob-storage collaborator to load one from).
func buildMatrixProvider(variant omaha.Variant, players, iterations int, seed *int64) (equity.MatrixProvider, error) {
	var s *uint64
	if seed != nil {
		u := uint64(*seed)
		s = &u
	}
	result, err := simulate.Run(context.Background(), simulate.Config{
		Variant:     variant,
		PlayerCount: players,
		Iterations:  iterations,
		Seed:        s,
	})
	if err != nil {
		return nil, err
	}
	return matrixProvider{winRate: result.WinRateMatrix}, nil
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

func parseCards(strs []string) ([]poker.Card, error) {
	cards := make([]poker.Card, 0, len(strs))
	for _, s := range strs {
		c, err := poker.ParseCard(s)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func streetsToCome(street poker.Street) int {
	switch street {
	case poker.Flop:
		return 2
	case poker.Turn:
		return 1
	default:
		return 0
	}
}

// positionOf approximates spec.md §4.10's "position (IP/OOP derived from
// seat)": button and cutoff act last postflop against an unopened field, so
// they're treated as in position; every earlier seat (including the blinds,
// who must act first postflop) is out of position.
func positionOf(position string) recommend.Position {
	switch position {
	case "co", "btn":
		return recommend.InPosition
	default:
		return recommend.OutOfPosition
	}
}

func rangePositionOf(position string) rangeest.PositionCategory {
	switch position {
	case "utg":
		return rangeest.EarlyPosition
	case "mp", "hj":
		return rangeest.MiddlePosition
	case "co", "btn":
		return rangeest.CutoffButton
	default:
		return rangeest.BigBlind
	}
}

func parseVillainPreflop(s string) (rangeest.PreflopAction, error) {
	switch s {
	case "open":
		return rangeest.OpenRaise, nil
	case "threebet":
		return rangeest.ThreeBet, nil
	case "blinddefend":
		return rangeest.BlindDefend, nil
	case "bigbet":
		return rangeest.BigPostflopBet, nil
	case "checkraise":
		return rangeest.CheckRaise, nil
	default:
		return 0, fmt.Errorf("unknown villain preflop action %q", s)
	}
}

// parseVillainActions parses repeated --villain-action flags of the form
// "type:sizepct" (sizepct omitted for check/call) into rangeest.Actions on
// the current street, categorizing size per spec.md §4.6 (small < 0.4 pot,
// medium 0.4-0.75, large > 0.75).
func parseVillainActions(raw []string, street poker.Street) ([]rangeest.Action, error) {
	actions := make([]rangeest.Action, 0, len(raw))
	for _, r := range raw {
		parts := strings.SplitN(r, ":", 2)
		actionType, err := parseActionType(parts[0])
		if err != nil {
			return nil, err
		}

		var size rangeest.BetSize
		if actionType == rangeest.Bet || actionType == rangeest.Raise || actionType == rangeest.CheckRaise2 {
			if len(parts) != 2 {
				return nil, fmt.Errorf("action %q needs a :sizepct suffix", r)
			}
			pct, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return nil, fmt.Errorf("action %q: bad size: %w", r, err)
			}
			size = betSizeOf(pct)
		}

		actions = append(actions, rangeest.Action{Street: street, Type: actionType, Size: size})
	}
	return actions, nil
}

func parseActionType(s string) (rangeest.ActionType, error) {
	switch s {
	case "check":
		return rangeest.Check, nil
	case "call":
		return rangeest.Call, nil
	case "bet":
		return rangeest.Bet, nil
	case "raise":
		return rangeest.Raise, nil
	case "checkraise":
		return rangeest.CheckRaise2, nil
	default:
		return 0, fmt.Errorf("unknown action type %q", s)
	}
}

func betSizeOf(potFraction float64) rangeest.BetSize {
	switch {
	case potFraction > 0.75:
		return rangeest.LargeBet
	case potFraction >= 0.4:
		return rangeest.MediumBet
	default:
		return rangeest.SmallBet
	}
}

func display(rec recommend.Recommendation, a analysisReport) {
	fmt.Printf("%s %s  %s\n\n",
		headerStyle.Render("hand:"), a.HeroRank.String(),
		dimStyle.Render(fmt.Sprintf("(street: %s, texture: %s)", a.Street, a.Texture.Category)))

	if a.IsNuts {
		fmt.Println(actionStyle.Render("hero currently holds the nuts"))
	}
	if len(a.Draws.Draws) > 0 && a.Draws.Draws[0] != outs.NoDraw {
		names := make([]string, len(a.Draws.Draws))
		for i, d := range a.Draws.Draws {
			names[i] = d.String()
		}
		fmt.Printf("draws: %s (%d outs, ~%.0f%% by the river)\n", strings.Join(names, ", "), a.Draws.Outs, a.DrawEquityPct)
	}

	fmt.Printf("equity: %.1f%% vs %s range (%s confidence)\n", a.Equity.Equity, a.Equity.VsRange, a.Equity.Confidence)
	fmt.Printf("  breakdown: %.0f%% vs weaker, %.0f%% vs similar, %.0f%% vs stronger\n",
		a.Equity.Breakdown.VsWeaker, a.Equity.Breakdown.VsSimilar, a.Equity.Breakdown.VsStronger)
	fmt.Printf("pot odds: %.1f%%  implied odds: %s  SPR: %.1f (%s)\n\n", a.PotOddsPct, a.ImpliedOdds, a.SPR, a.SPRZone)

	fmt.Printf("%s %s  (%s, confidence %.0f%%)\n",
		headerStyle.Render("recommendation:"), actionStyle.Render(strings.ToUpper(rec.Action.String())),
		rec.DecisionReason, rec.Confidence*100)
	if rec.Sizing != nil {
		fmt.Printf("  sizing: min %d / optimal %d / max %d  (%.0f%% pot)\n",
			rec.Sizing.Min, rec.Sizing.Optimal, rec.Sizing.Max, rec.Sizing.PercentPot)
	}
	fmt.Printf("  %s\n", rec.Reasoning.Primary)
	fmt.Printf("  %s\n", dimStyle.Render(rec.Reasoning.Math))
	fmt.Printf("  %s\n", dimStyle.Render(rec.Reasoning.Strategic))

	for _, alt := range rec.Alternatives {
		fmt.Printf("  alternative: %s — %s\n", alt.Action, alt.Rationale)
	}
	for _, w := range rec.Warnings {
		fmt.Println(warnStyle.Render("  warning: " + w))
	}
}

