package analysis

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestAnalyzePumpMessage(t *testing.T) {
	a := NewAnalyzer()

	result := a.Analyze("BUY NOW!!! $PND to the moon! Join our VIP group!")

	assert.Equal(t, true, result.IsFraud)
	assert.Equal(t, true, result.Confidence > 0.3)
	assert.Equal(t, true, strings.Contains(result.Reason, "Contains suspicious keywords"))
	assert.Equal(t, true, strings.Contains(result.Reason, "Matches suspicious patterns"))
	assert.Equal(t, true, strings.Contains(result.Reason, "Mentions ticker symbols: $PND"))
}

func TestAnalyzeCleanMessage(t *testing.T) {
	a := NewAnalyzer()

	result := a.Analyze("Looking forward to the earnings call next week.")

	assert.Equal(t, false, result.IsFraud)
	assert.Equal(t, 0.0, result.Confidence)
	assert.Equal(t, "No suspicious patterns detected", result.Reason)
}

func TestAnalyzeConfidenceCappedAtOne(t *testing.T) {
	a := NewAnalyzer()

	result := a.Analyze("pump dump moon lambo yolo fomo fud hodl whale 🚀 $AAA $BBB $CCC")

	assert.Equal(t, true, result.IsFraud)
	assert.Equal(t, 1.0, result.Confidence)
}

func TestAnalyzeAllCaps(t *testing.T) {
	a := NewAnalyzer()

	result := a.Analyze("THIS IS GOING TO BE HUGE BUY IT TODAY")

	assert.Equal(t, false, result.IsFraud)
	assert.Equal(t, 0.2, result.Confidence)
	assert.Equal(t, true, strings.Contains(result.Reason, "ALL CAPS"))
}

func TestAnalyzeShortCapsNotFlagged(t *testing.T) {
	a := NewAnalyzer()

	// Caps ratio only counts for messages longer than 20 characters.
	result := a.Analyze("OK SURE")

	assert.Equal(t, 0.0, result.Confidence)
	assert.Equal(t, "No suspicious patterns detected", result.Reason)
}

func TestAnalyzeEmojiDensity(t *testing.T) {
	a := NewAnalyzer()

	result := a.Analyze("😀😀😀😀 big news coming")

	assert.Equal(t, false, result.IsFraud)
	assert.Equal(t, 0.2, result.Confidence)
	assert.Equal(t, true, strings.Contains(result.Reason, "Excessive emoji use (4 emojis)"))
}

func TestAnalyzeDeterministic(t *testing.T) {
	a := NewAnalyzer()
	text := "🚀🚀 $PND to the moon! Join our VIP group for the next pump! 🚀🚀"

	first := a.Analyze(text)
	second := a.Analyze(text)

	assert.Equal(t, first, second)
	assert.Equal(t, true, first.IsFraud)
}

func TestAnalyzeConfidenceInRange(t *testing.T) {
	a := NewAnalyzer()

	texts := []string{
		"hello",
		"pump it $BTC",
		"GUARANTEED profit, join now, buy now, last chance, easy money $X $Y $Z 🚀🚀🚀🚀🚀",
		"just a normal chat message about dinner plans",
	}

	for _, text := range texts {
		result := a.Analyze(text)
		assert.Equal(t, true, result.Confidence >= 0)
		assert.Equal(t, true, result.Confidence <= 1)
	}
}
