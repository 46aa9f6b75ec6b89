package negotiate

import (
	"net/http"
	"strings"

	"github.com/munnerz/goautoneg"
)

// A match ranks how a client accepts a candidate media type.
type match struct {
	q           float64
	specificity int
}

// better reports whether m ranks above other.
func (m match) better(other match) bool {
	if m.q != other.q {
		return m.q > other.q
	}

	return m.specificity > other.specificity
}

// Accepts returns the candidate media type the request prefers.
// If the request accepts none of the candidates, Accepts returns an empty string.
func Accepts(r *http.Request, candidates ...string) string {
	return Negotiate(r.Header.Get("Accept"), candidates...)
}

// Negotiate returns the candidate media type preferred by the "Accept" header value.
// If the header accepts none of the candidates, Negotiate returns an empty string.
func Negotiate(header string, candidates ...string) string {
	if len(candidates) == 0 {
		return ""
	}

	if strings.TrimSpace(header) == "" {
		return candidates[0]
	}

	clauses := goautoneg.ParseAccept(header)

	var (
		best  string
		ranks match
	)
	for _, candidate := range candidates {
		m, ok := rank(clauses, candidate)
		if !ok {
			continue
		}

		if best == "" || m.better(ranks) {
			best, ranks = candidate, m
		}
	}

	return best
}

// rank finds the most specific clause matching candidate.
// The candidate is not acceptable when no clause matches it or that clause sets q=0.
func rank(clauses []goautoneg.Accept, candidate string) (match, bool) {
	typ, subtype, ok := strings.Cut(strings.ToLower(candidate), "/")
	if !ok {
		return match{}, false
	}

	found := match{specificity: -1}
	for _, c := range clauses {
		var s int
		switch {
		case strings.EqualFold(c.Type, typ) && strings.EqualFold(c.SubType, subtype):
			s = 2
		case strings.EqualFold(c.Type, typ) && c.SubType == "*":
			s = 1
		case c.Type == "*" && c.SubType == "*":
			s = 0
		default:
			continue
		}

		if s > found.specificity {
			found = match{q: c.Q, specificity: s}
		}
	}

	if found.specificity < 0 || found.q <= 0 {
		return match{}, false
	}

	return found, true
}
