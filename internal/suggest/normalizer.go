// Package suggest turns free text from the suggestion collaborator into a
// constrained set of short micro-habit suggestions.
package suggest

import (
	"regexp"
	"strings"
)

// DefaultMaxLen is the representative ceiling for a suggestion, in runes.
const DefaultMaxLen = 20

// numericPattern accepts a minute-count prefix followed by one short word,
// e.g. "3분 스트레칭" or "10 pushups".
var numericPattern = regexp.MustCompile(`^\d+분?\s?\S{1,8}$`)

var (
	emphasisMarkers = regexp.MustCompile("[*_~`]+")
	// A numbered marker needs no trailing space ("1.물 한잔"); a bare bullet
	// does, so a leading minute count like "3분" survives.
	bulletPrefix    = regexp.MustCompile(`^\s*(?:[-*•·]\s+|\d+[.)]\s*)`)
	parenthetical   = regexp.MustCompile(`\([^)]*\)|（[^）]*）`)
	innerWhitespace = regexp.MustCompile(`\s+`)
)

// DefaultDenylist names abstract concepts that are not reproducible physical
// micro-actions. A line containing any of these is rejected outright.
var DefaultDenylist = []string{"행복", "마음", "기분", "감정", "생각", "긍정"}

// DefaultAllowlist names concrete action keywords that make a line acceptable
// on their own.
var DefaultAllowlist = []string{
	"걷기", "산책", "물", "스트레칭", "독서", "읽기",
	"숨", "호흡", "명상", "정리", "마시기",
}

// Predicate is a composable acceptance test on a cleaned line.
type Predicate func(string) bool

// ContainsAction accepts lines containing at least one of the given action
// keywords.
func ContainsAction(keywords ...string) Predicate {
	return func(s string) bool {
		for _, kw := range keywords {
			if strings.Contains(s, kw) {
				return true
			}
		}
		return false
	}
}

// NumericPrefix accepts lines of the strict "<minutes> <short action>" form.
func NumericPrefix() Predicate {
	return numericPattern.MatchString
}

// AnyOf accepts a line when any of the given predicates does.
func AnyOf(preds ...Predicate) Predicate {
	return func(s string) bool {
		for _, p := range preds {
			if p(s) {
				return true
			}
		}
		return false
	}
}

// Config controls the normalizer's cleanup and filtering behavior.
type Config struct {
	// Accept is the acceptance predicate applied after cleanup. When nil the
	// default accepts lines carrying an action keyword or the numeric
	// "2분 걷기" form; both checks stay available as composable predicates.
	Accept Predicate
	// Denylist rejects lines containing any listed keyword. Nil means
	// DefaultDenylist.
	Denylist []string
	// MaxLen is the suggestion length ceiling in runes; 0 means DefaultMaxLen.
	MaxLen int
}

// Normalizer filters and cleans raw suggestion lines. It never errors on
// malformed input; bad lines are simply dropped.
type Normalizer struct {
	accept   Predicate
	denylist []string
	maxLen   int
}

// NewNormalizer builds a normalizer from cfg, filling unset fields with the
// defaults above.
func NewNormalizer(cfg Config) *Normalizer {
	n := &Normalizer{
		accept:   cfg.Accept,
		denylist: cfg.Denylist,
		maxLen:   cfg.MaxLen,
	}
	if n.accept == nil {
		n.accept = AnyOf(ContainsAction(DefaultAllowlist...), NumericPrefix())
	}
	if n.denylist == nil {
		n.denylist = DefaultDenylist
	}
	if n.maxLen <= 0 {
		n.maxLen = DefaultMaxLen
	}
	return n
}

// Normalize cleans each line, drops the ones that fail the filters, and
// deduplicates while preserving input order. Normalizing its own output
// yields the same set.
func (n *Normalizer) Normalize(lines []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		cleaned := Clean(line)
		if !n.acceptable(cleaned) {
			continue
		}
		if _, dup := seen[cleaned]; dup {
			continue
		}
		seen[cleaned] = struct{}{}
		out = append(out, cleaned)
	}
	return out
}

func (n *Normalizer) acceptable(s string) bool {
	if s == "" {
		return false
	}
	if len([]rune(s)) > n.maxLen {
		return false
	}
	for _, kw := range n.denylist {
		if strings.Contains(s, kw) {
			return false
		}
	}
	return n.accept(s)
}

// Clean strips decoration from a raw suggestion line: markdown emphasis,
// leading bullet or numbering markers, leading emoji, parenthetical asides,
// and explanatory suffixes after " - " or a colon. Whitespace is collapsed.
func Clean(line string) string {
	s := bulletPrefix.ReplaceAllString(line, "")
	s = emphasisMarkers.ReplaceAllString(s, "")
	s = parenthetical.ReplaceAllString(s, "")
	s = trimLeadingEmoji(s)

	if idx := strings.Index(s, " - "); idx >= 0 {
		s = s[:idx]
	}
	if idx := strings.IndexAny(s, ":："); idx >= 0 {
		s = s[:idx]
	}

	s = innerWhitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// trimLeadingEmoji drops emoji and pictographic runes from the front of the
// line, along with variation selectors and joiners.
func trimLeadingEmoji(s string) string {
	runes := []rune(s)
	i := 0
	for i < len(runes) && (isEmojiRune(runes[i]) || runes[i] == ' ') {
		i++
	}
	if i == 0 {
		return s
	}
	return string(runes[i:])
}

func isEmojiRune(r rune) bool {
	switch {
	case r >= 0x1F000 && r <= 0x1FAFF: // pictographs, emoticons, symbols
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return true
	case r == 0xFE0F || r == 0x200D: // variation selector, ZWJ
		return true
	default:
		return false
	}
}
