package verify

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/vishureddy24/safelens/pkg/news"
)

const (
	StatusVerified          = "verified"
	StatusPartiallyVerified = "partially_verified"
	StatusUnverified        = "unverified"
)

// VerificationResult is the final verdict for a headline. Reasons carry no
// exact duplicates and confidence is within [0, 100].
type VerificationResult struct {
	Status     string
	Confidence int
	Sources    []news.Source
	Reasons    []string
}

// SourceLookup cross-checks a headline against external news coverage.
type SourceLookup interface {
	Search(ctx context.Context, query string) (news.LookupResult, error)
}

// Verifier fuses external source coverage with local content analysis into a
// verification verdict.
type Verifier struct {
	lookup SourceLookup
}

func NewVerifier(lookup SourceLookup) *Verifier {
	return &Verifier{lookup: lookup}
}

// Verify never fails: lookup errors degrade to a zero-result default and any
// other problem is converted into an unverified result carrying the error
// text as a reason.
func (v *Verifier) Verify(ctx context.Context, headline, content string) VerificationResult {
	result, err := v.verify(ctx, headline, content)
	if err != nil {
		slog.Error("news verification failed", "error", err)
		return VerificationResult{
			Status:     StatusUnverified,
			Confidence: 0,
			Sources:    []news.Source{},
			Reasons:    []string{err.Error()},
		}
	}
	return result
}

func (v *Verifier) verify(ctx context.Context, headline, content string) (VerificationResult, error) {
	if headline == "" {
		return VerificationResult{}, fmt.Errorf("headline is required")
	}

	lookupResult, err := v.lookup.Search(ctx, headline)
	if err != nil {
		slog.Warn("source lookup failed, continuing without sources", "error", err)
		lookupResult = news.LookupResult{}
	}

	text := content
	if text == "" {
		text = headline
	}
	analysis := AnalyzeContent(text)

	result := fuse(lookupResult, analysis)
	if result.Sources == nil {
		result.Sources = []news.Source{}
	}

	return result, nil
}

// fuse combines the lookup and content factors into a weighted confidence
// and picks a status by priority.
func fuse(lookup news.LookupResult, analysis ContentAnalysis) VerificationResult {
	sourceFactor := math.Min(100, float64(lookup.TrustedSourceCount*30))
	contentFactor := float64(analysis.Score)
	resultsFactor := math.Min(100, float64(lookup.TotalResults*5))

	confidence := int(math.Round(sourceFactor*0.4 + contentFactor*0.3 + resultsFactor*0.3))
	confidence = max(0, min(100, confidence))

	reasons := append([]string(nil), analysis.Reasons...)
	status := StatusUnverified

	switch {
	case lookup.TrustedSourceCount >= 1 && analysis.Score >= 60:
		if lookup.TrustedSourceCount >= 2 || confidence >= 75 {
			status = StatusVerified
		} else {
			status = StatusPartiallyVerified
		}
	case lookup.TotalResults >= 3 && confidence >= 50:
		status = StatusPartiallyVerified
		reasons = append(reasons, "Multiple sources found but content analysis raises some concerns")
	case lookup.TotalResults == 0:
		reasons = append(reasons, "No matching news found from any sources")
	}

	trustedCount := 0
	for _, source := range lookup.Sources {
		if source.IsTrusted {
			trustedCount++
		}
	}
	if trustedCount > 0 {
		reasons = append(reasons, fmt.Sprintf("Found %d trusted source%s", trustedCount, plural(trustedCount)))
	}

	if status == StatusUnverified && len(reasons) == 0 {
		reasons = append(reasons, "Insufficient verification from trusted sources")
	}

	return VerificationResult{
		Status:     status,
		Confidence: confidence,
		Sources:    lookup.Sources,
		Reasons:    dedupe(reasons),
	}
}

// dedupe removes exact duplicate strings, keeping first-seen order.
func dedupe(reasons []string) []string {
	seen := make(map[string]bool, len(reasons))
	unique := make([]string, 0, len(reasons))
	for _, reason := range reasons {
		if seen[reason] {
			continue
		}
		seen[reason] = true
		unique = append(unique, reason)
	}
	return unique
}
