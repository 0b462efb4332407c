package classifier

import (
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ThreatReason labels a structural heuristic hit. Keyword matching and
// threat detection are independent: a page can be gambling-flagged without
// being a threat and vice versa.
type ThreatReason string

const (
	ReasonIPHostname         ThreatReason = "ip-hostname"
	ReasonManyDashes         ThreatReason = "many-dashes"
	ReasonFormExternalAction ThreatReason = "form-external-action"
	// ReasonErrorInspection is a diagnostic fallback when inspection itself
	// fails, not a real threat signal. Consumers must treat it separately.
	ReasonErrorInspection ThreatReason = "error-inspection"
)

type Threat struct {
	Reason ThreatReason `json:"reason"`
	Action string       `json:"action,omitempty"`
	Error  string       `json:"error,omitempty"`
}

// Page is the classifier input: the location split into hostname and path,
// the absolute URL (used to resolve relative form actions), and optionally
// the page HTML for the form-action heuristic.
type Page struct {
	Hostname string
	Path     string
	URL      string
	HTML     io.Reader
}

type Result struct {
	IsMatch bool    `json:"isMatch"`
	Threat  *Threat `json:"threat,omitempty"`
}

// Fixed gambling keyword list. Matching is substring based, not
// word-boundary: "tibetan.com" matches on "bet". That imprecision is
// intentional and kept for parity with the extension.
var gamblingKeywords = []string{
	"bet",
	"casino",
	"poker",
	"slot",
	"wager",
	"stake",
	"jackpot",
	"lottery",
	"bingo",
	"roulette",
	"blackjack",
	"gambling",
	"sportsbook",
	"odds",
	"betting",
}

var ipv4Re = regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+$`)

// ContainsGamblingKeyword reports whether s contains any keyword after
// lower-casing. Shared by the domain check and the URL scanner.
func ContainsGamblingKeyword(s string) bool {
	s = strings.ToLower(s)
	for _, k := range gamblingKeywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func IsGamblingDomain(hostname, path string) bool {
	return ContainsGamblingKeyword(hostname + " " + path)
}

// Classify runs the keyword match and the structural heuristics over a page.
// Pure over its inputs; no side effects.
func Classify(page Page) Result {
	return Result{
		IsMatch: IsGamblingDomain(page.Hostname, page.Path),
		Threat:  DetectThreat(page),
	}
}

// DetectThreat evaluates the structural heuristics in priority order and
// returns the first that fires, or nil.
func DetectThreat(page Page) *Threat {
	if ipv4Re.MatchString(page.Hostname) {
		return &Threat{Reason: ReasonIPHostname}
	}
	if strings.Count(page.Hostname, "-") > 3 {
		return &Threat{Reason: ReasonManyDashes}
	}
	if page.HTML == nil {
		return nil
	}

	base, err := url.Parse(page.URL)
	if err != nil {
		return &Threat{Reason: ReasonErrorInspection, Error: err.Error()}
	}
	doc, err := goquery.NewDocumentFromReader(page.HTML)
	if err != nil {
		return &Threat{Reason: ReasonErrorInspection, Error: err.Error()}
	}

	var threat *Threat
	doc.Find("form[action]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		action, _ := s.Attr("action")
		if action == "" {
			return true
		}
		resolved, err := base.Parse(action)
		if err != nil {
			// malformed action, skip it
			return true
		}
		if resolved.Hostname() != page.Hostname {
			threat = &Threat{Reason: ReasonFormExternalAction, Action: action}
			return false
		}
		return true
	})
	return threat
}
