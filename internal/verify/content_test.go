package verify

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestAnalyzeContentCleanHeadline(t *testing.T) {
	result := AnalyzeContent("Global markets steady as investors await central bank decision in 2024")

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, 0, len(result.Reasons))
}

func TestAnalyzeContentClickbaitHeadline(t *testing.T) {
	result := AnalyzeContent("SHOCKING: Scientists Say This Miracle Trick Will DESTROY Your Debt!!!")

	// 40 for clickbait phrases, 10 for punctuation, 6 for two all-caps words.
	assert.Equal(t, 44, result.Score)
	assert.Equal(t, true, len(result.Reasons) > 0)

	joined := strings.Join(result.Reasons, "\n")
	assert.Equal(t, true, strings.Contains(joined, "clickbait phrase"))
	assert.Equal(t, true, strings.Contains(joined, "Excessive punctuation (!!!)"))
	assert.Equal(t, true, strings.Contains(joined, "Uses all-caps"))
}

func TestAnalyzeContentClickbaitExamples(t *testing.T) {
	result := AnalyzeContent("Shocking miracle trick: this secret hack is guaranteed to work")

	joined := strings.Join(result.Reasons, "\n")
	assert.Equal(t, true, strings.Contains(joined, "Including:"))
	assert.Equal(t, true, strings.Contains(joined, "more"))
}

func TestAnalyzeContentShortHeadline(t *testing.T) {
	result := AnalyzeContent("Markets up")

	assert.Equal(t, 90, result.Score)
	assert.Equal(t, []string{"Headline is unusually short"}, result.Reasons)
}

func TestAnalyzeContentLongHeadline(t *testing.T) {
	headline := strings.TrimSpace(strings.Repeat("word ", 27))

	result := AnalyzeContent(headline)

	// 134 characters deducts (134-100)/5 = 6 points.
	assert.Equal(t, 94, result.Score)
	assert.Equal(t, true, strings.Contains(result.Reasons[0], "very long"))
}

func TestAnalyzeContentNonYearNumbers(t *testing.T) {
	result := AnalyzeContent("7 ways to save money on groceries this month")

	assert.Equal(t, 95, result.Score)
	assert.Equal(t, []string{"Contains 1 number (may indicate listicle)"}, result.Reasons)
}

func TestAnalyzeContentYearNotPenalized(t *testing.T) {
	result := AnalyzeContent("Central bank holds interest rates steady through 2026")

	assert.Equal(t, 100, result.Score)
}

func TestAnalyzeContentScoreClampedToZero(t *testing.T) {
	result := AnalyzeContent("SHOCKING MIRACLE TRICK SECRET EXCLUSIVE GUARANTEED INSTANT OVERNIGHT HACK MAGIC PROVEN DESTROY 1 2 3 4 5 6 7 8 9 11 22 33!!!!!")

	assert.Equal(t, 0, result.Score)
}

func TestAnalyzeContentScoreAlwaysInRange(t *testing.T) {
	headlines := []string{
		"",
		"!?!?!?!?",
		"a",
		strings.Repeat("SHOCKING!!! ", 40),
		"Reasonable headline about quarterly results in 2025",
	}

	for _, headline := range headlines {
		result := AnalyzeContent(headline)
		assert.Equal(t, true, result.Score >= 0)
		assert.Equal(t, true, result.Score <= 100)
	}
}
