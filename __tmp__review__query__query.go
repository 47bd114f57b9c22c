// Package query implements the starting-hand query DSL (spec.md §4.5): a
// compact textual descriptor for a set of starting hands (e.g.
// "pair:TT+:ds:conn"), parseable, pretty-printable, and matchable against a
// concrete 4/5/6-card Omaha hole-card set.
package query

import (
	"fmt"
	"strings"

	"github.com/lox/pokerforbots/poker"
)

// Kind is the primary shape a Query describes.
type Kind int

const (
	Pair Kind = iota
	DoublePair
	Run
	Broadway
	Any
)

func (k Kind) String() string {
	switch k {
	case Pair:
		return "pair"
	case DoublePair:
		return "dpair"
	case Run:
		return "run"
	case Broadway:
		return "bway"
	case Any:
		return "any"
	default:
		return "unknown"
	}
}

func kindFromString(s string) (Kind, bool) {
	switch s {
	case "pair":
		return Pair, true
	case "dpair":
		return DoublePair, true
	case "run":
		return Run, true
	case "bway":
		return Broadway, true
	case "any":
		return Any, true
	default:
		return 0, false
	}
}

// Suitedness is the `:s`/`:ds` structural constraint on a Query.
type Suitedness int

const (
	AnySuited Suitedness = iota
	SingleSuited
	DoubleSuited
)

func (s Suitedness) token() string {
	switch s {
	case SingleSuited:
		return "s"
	case DoubleSuited:
		return "ds"
	default:
		return ""
	}
}

// RankConstraint restricts the matched rank (a pair's rank, or a run's high
// card) to an exact value, a threshold ("X+"), or a closed range ("X-Y").
type RankConstraint struct {
	set      bool
	Min, Max poker.Rank
}

// rankChars mirrors poker's rank alphabet, kept local so the DSL's textual
// grammar doesn't depend on poker's internal layout beyond ParseCard.
var rankChars = "23456789TJQKA"

func rankFromChar(c byte) (poker.Rank, bool) {
	idx := strings.IndexByte(rankChars, toUpperASCII(c))
	if idx < 0 {
		return 0, false
	}
	return poker.Rank(idx), true
}

func toUpperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func rankToken(r poker.Rank) string {
	return string(rankChars[r])
}

// parseRankConstraint recognizes: "TT" (exact pair), "TT+" (pair
// threshold), "88-QQ" (pair range), "J" (exact single rank), "J+" (single
// rank threshold), "8-Q" (single-rank range).
func parseRankConstraint(tok string) (RankConstraint, bool, error) {
	threshold := strings.HasSuffix(tok, "+")
	base := strings.TrimSuffix(tok, "+")
	isRange := strings.Contains(base, "-")

	// A token with a '+' or '-' is unambiguously attempting to express a
	// rank constraint; if it fails to parse, that is malformed input, not
	// an unrecognized modifier.
	attemptingRankSyntax := threshold || isRange

	if isRange {
		if threshold {
			return RankConstraint{}, true, fmt.Errorf("rank constraint %q: %w", tok, ErrMalformedRankConstraint)
		}
		parts := strings.SplitN(base, "-", 2)
		if len(parts) != 2 {
			return RankConstraint{}, true, fmt.Errorf("rank constraint %q: %w", tok, ErrMalformedRankConstraint)
		}
		lo, okLo := parsePairOrSingle(parts[0])
		hi, okHi := parsePairOrSingle(parts[1])
		if !okLo || !okHi {
			return RankConstraint{}, true, fmt.Errorf("rank constraint %q: %w", tok, ErrMalformedRankConstraint)
		}
		if lo > hi {
			lo, hi = hi, lo
		}
		return RankConstraint{set: true, Min: lo, Max: hi}, true, nil
	}

	rank, ok := parsePairOrSingle(base)
	if !ok {
		if attemptingRankSyntax {
			return RankConstraint{}, true, fmt.Errorf("rank constraint %q: %w", tok, ErrMalformedRankConstraint)
		}
		// Not a recognizable rank token at all (e.g. a stray modifier
		// typo); let the caller treat it as an unknown modifier instead.
		return RankConstraint{}, false, nil
	}

	if threshold {
		return RankConstraint{set: true, Min: rank, Max: poker.Ace}, true, nil
	}
	return RankConstraint{set: true, Min: rank, Max: rank}, true, nil
}

// parsePairOrSingle accepts either a doubled rank char ("TT") or a single
// rank char ("J"), both meaning "this rank".
func parsePairOrSingle(s string) (poker.Rank, bool) {
	switch len(s) {
	case 1:
		return rankFromChar(s[0])
	case 2:
		r1, ok1 := rankFromChar(s[0])
		r2, ok2 := rankFromChar(s[1])
		if !ok1 || !ok2 || r1 != r2 {
			return 0, false
		}
		return r1, true
	default:
		return 0, false
	}
}

// Query is a parsed starting-hand descriptor.
type Query struct {
	Kind    Kind
	Rank    RankConstraint
	Suited  Suitedness
	Connect bool
}

// Parse parses a colon-separated query string such as "pair:TT+:ds:conn".
func Parse(s string) (Query, error) {
	tokens := strings.Split(s, ":")
	if len(tokens) == 0 || tokens[0] == "" {
		return Query{}, fmt.Errorf("parse query %q: empty: %w", s, ErrUnknownKeyword)
	}

	kind, ok := kindFromString(tokens[0])
	if !ok {
		return Query{}, fmt.Errorf("parse query %q: keyword %q: %w", s, tokens[0], ErrUnknownKeyword)
	}

	q := Query{Kind: kind}
	for _, tok := range tokens[1:] {
		switch tok {
		case "ds":
			q.Suited = DoubleSuited
			continue
		case "s":
			q.Suited = SingleSuited
			continue
		case "conn":
			q.Connect = true
			continue
		}

		rc, recognized, err := parseRankConstraint(tok)
		if err != nil {
			return Query{}, fmt.Errorf("parse query %q: %w", s, err)
		}
		if recognized {
			q.Rank = rc
			continue
		}
		return Query{}, fmt.Errorf("parse query %q: modifier %q: %w", s, tok, ErrUnknownModifier)
	}

	return q, nil
}

// Describe renders q back to its canonical textual form: kind, then rank
// constraint (if set), then suited modifier, then "conn" — the same order
// every DSL example uses.
func Describe(q Query) string {
	var b strings.Builder
	b.WriteString(q.Kind.String())

	if q.Rank.set {
		b.WriteByte(':')
		doubled := q.Kind == Pair || q.Kind == DoublePair
		rankStr := func(r poker.Rank) string {
			if doubled {
				return rankToken(r) + rankToken(r)
			}
			return rankToken(r)
		}
		switch {
		case q.Rank.Min == q.Rank.Max:
			b.WriteString(rankStr(q.Rank.Min))
		case q.Rank.Max == poker.Ace:
			b.WriteString(rankStr(q.Rank.Min) + "+")
		default:
			b.WriteString(rankStr(q.Rank.Min) + "-" + rankStr(q.Rank.Max))
		}
	}

	if tok := q.Suited.token(); tok != "" {
		b.WriteByte(':')
		b.WriteString(tok)
	}
	if q.Connect {
		b.WriteString(":conn")
	}

	return b.String()
}


