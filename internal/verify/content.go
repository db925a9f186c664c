package verify

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Emotionally manipulative and sensational phrases that drag a headline's
// credibility score down.
var clickbaitPhrases = []string{
	// emotional manipulation
	"shocking", "mind-blowing", "unbelievable", "incredible", "jaw-dropping",
	// urgency and scarcity
	"act now", "limited time", "today only", "before it's too late", "don't miss out",
	// sensationalism
	"destroy", "annihilate", "obliterate", "you won't believe", "will shock you",
	// promises and guarantees
	"guaranteed", "100%", "free money", "secret", "exclusive", "proven",
	// questionable claims
	"miracle", "magic", "instant", "overnight", "hack", "trick",
	// authority manipulation
	"doctors hate this", "experts agree", "scientists say", "they don't want you to know",
}

var (
	numberPattern = regexp.MustCompile(`\d+`)
	yearPattern   = regexp.MustCompile(`(19|20)\d{2}`)
)

// ContentAnalysis is a credibility score for a headline derived from textual
// heuristics alone. The score starts at 100 and each heuristic deducts from
// it; reasons are not deduplicated here.
type ContentAnalysis struct {
	Score   int
	Reasons []string
}

// AnalyzeContent scores a headline on clickbait phrasing, length,
// punctuation, capitalization and embedded numbers. The final score is
// clamped to [0, 100].
func AnalyzeContent(headline string) ContentAnalysis {
	var reasons []string
	score := 100
	headlineLower := strings.ToLower(headline)

	var foundClickbait []string
	for _, phrase := range clickbaitPhrases {
		if strings.Contains(headlineLower, phrase) {
			foundClickbait = append(foundClickbait, phrase)
		}
	}

	if len(foundClickbait) > 0 {
		score -= min(40, len(foundClickbait)*8)
		reasons = append(reasons, fmt.Sprintf("Found %d clickbait phrase%s", len(foundClickbait), plural(len(foundClickbait))))

		examples := make([]string, 0, 3)
		for _, phrase := range foundClickbait[:min(3, len(foundClickbait))] {
			examples = append(examples, `"`+phrase+`"`)
		}
		if len(foundClickbait) > 3 {
			reasons = append(reasons, fmt.Sprintf("Including: %s, and %d more", strings.Join(examples, ", "), len(foundClickbait)-3))
		} else {
			reasons = append(reasons, fmt.Sprintf("Including: %s", strings.Join(examples, ", ")))
		}
	}

	length := utf8.RuneCountInString(headline)
	if length > 120 {
		score -= min(20, (length-100)/5)
		reasons = append(reasons, fmt.Sprintf("Headline is very long (%d characters)", length))
	} else if length < 20 {
		score -= 10
		reasons = append(reasons, "Headline is unusually short")
	}

	exclamationCount := strings.Count(headline, "!")
	questionCount := strings.Count(headline, "?")
	if exclamationCount > 1 || questionCount > 1 {
		totalPunctuation := exclamationCount + questionCount
		score -= min(20, (totalPunctuation-1)*5)
		reasons = append(reasons, fmt.Sprintf("Excessive punctuation (%s%s) may indicate sensationalism",
			strings.Repeat("!", exclamationCount), strings.Repeat("?", questionCount)))
	}

	var allCapsWords []string
	for _, word := range strings.Fields(headline) {
		if utf8.RuneCountInString(word) > 2 && word == strings.ToUpper(word) && word != strings.ToLower(word) {
			allCapsWords = append(allCapsWords, word)
		}
	}
	if len(allCapsWords) > 0 {
		score -= len(allCapsWords) * 3
		reasons = append(reasons, fmt.Sprintf("Uses all-caps: %s", strings.Join(allCapsWords[:min(3, len(allCapsWords))], ", ")))
	}

	// Standalone numbers suggest listicles; four-digit years are fine.
	numberCount := len(numberPattern.FindAllString(headline, -1))
	if numberCount > 0 && !yearPattern.MatchString(headline) {
		score -= 5 * numberCount
		reasons = append(reasons, fmt.Sprintf("Contains %d number%s (may indicate listicle)", numberCount, plural(numberCount)))
	}

	return ContentAnalysis{
		Score:   max(0, min(100, score)),
		Reasons: reasons,
	}
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
