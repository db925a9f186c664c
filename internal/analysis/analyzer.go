package analysis

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Keywords and phrases commonly seen in pump-and-dump promotions.
var fraudKeywords = []string{
	"pump", "dump", "moon", "to the moon", "🚀", "mooning", "100x",
	"1000x", "lambo", "yolo", "fomo", "fud", "hodl", "whale",
	"whales", "pumpamentals", "pump group", "pump signal", "pump it",
	"pump soon", "pump incoming",
}

var suspiciousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(join|join us|join now|get in early|early entry|limited spots)\b`),
	regexp.MustCompile(`(?i)\b(private group|exclusive group|VIP group|premium group)\b`),
	regexp.MustCompile(`(?i)\b(guaranteed|risk-free|sure profit|no risk|easy money|quick profit)\b`),
	regexp.MustCompile(`\$[A-Za-z]+`),
	regexp.MustCompile(`(?i)\b(buy now|buy the dip|buy before|don't miss out|last chance)\b`),
}

var tickerPattern = regexp.MustCompile(`\$[A-Za-z0-9]+`)

// Result is the verdict for a single scored message.
type Result struct {
	IsFraud    bool
	Reason     string
	Confidence float64
}

// Analyzer scores chat messages for pump-and-dump indicators. It holds no
// state and is safe for concurrent use.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze scores a message with additive heuristics: keyword matches,
// suspicious phrase patterns, emoji density, caps ratio and ticker mentions.
// Callers must reject empty text before calling; the returned confidence is
// capped at 1.0 and the fraud threshold is 0.3.
func (a *Analyzer) Analyze(text string) Result {
	var reasons []string
	confidence := 0.0

	lower := strings.ToLower(text)
	var matchedKeywords []string
	for _, keyword := range fraudKeywords {
		if strings.Contains(lower, keyword) {
			matchedKeywords = append(matchedKeywords, keyword)
		}
	}
	if len(matchedKeywords) > 0 {
		confidence += float64(len(matchedKeywords)) * 0.1
		reasons = append(reasons, fmt.Sprintf("Contains suspicious keywords: %s", strings.Join(matchedKeywords, ", ")))
	}

	var matchedPatterns []string
	for _, pattern := range suspiciousPatterns {
		matchedPatterns = append(matchedPatterns, pattern.FindAllString(text, -1)...)
	}
	if len(matchedPatterns) > 0 {
		confidence += float64(len(matchedPatterns)) * 0.15
		reasons = append(reasons, fmt.Sprintf("Matches suspicious patterns: %s", strings.Join(matchedPatterns, ", ")))
	}

	if emojiCount := countEmojis(text); emojiCount > 3 {
		confidence += 0.2
		reasons = append(reasons, fmt.Sprintf("Excessive emoji use (%d emojis)", emojiCount))
	}

	runes := []rune(text)
	if length := len(runes); length > 0 {
		upper := 0
		for _, r := range runes {
			if r >= 'A' && r <= 'Z' {
				upper++
			}
		}
		if float64(upper)/float64(length) > 0.5 && length > 20 {
			confidence += 0.2
			reasons = append(reasons, "Excessive use of ALL CAPS")
		}
	}

	if tickers := tickerPattern.FindAllString(text, -1); len(tickers) > 0 {
		confidence += 0.1 * float64(len(tickers))
		reasons = append(reasons, fmt.Sprintf("Mentions ticker symbols: %s", strings.Join(tickers, ", ")))
	}

	reason := strings.Join(reasons, "\n")
	if reason == "" {
		reason = "No suspicious patterns detected"
	}

	return Result{
		IsFraud:    confidence > 0.3,
		Reason:     reason,
		Confidence: math.Min(math.Round(confidence*100)/100, 1),
	}
}

// countEmojis counts code points inside the common emoji blocks.
func countEmojis(text string) int {
	count := 0
	for _, r := range text {
		switch {
		case r >= 0x1F600 && r <= 0x1F64F, // emoticons
			r >= 0x1F300 && r <= 0x1F5FF, // symbols and pictographs
			r >= 0x1F680 && r <= 0x1F6FF, // transport and map
			r >= 0x1F1E0 && r <= 0x1F1FF, // regional indicators
			r >= 0x2600 && r <= 0x26FF, // miscellaneous symbols
			r >= 0x2700 && r <= 0x27BF: // dingbats
			count++
		}
	}
	return count
}
