package engine

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return New(DefaultKnowledgeBase(), WithRand(rand.New(rand.NewSource(1))))
}

func TestRespond_Greeting(t *testing.T) {
	e := newTestEngine()
	got := e.RespondDetailed("hi", nil)

	assert.Contains(t, got.Text, "Eco-Copilot")
	assert.Equal(t, BandHigh, got.Band)
	assert.Equal(t, "greeting", got.Topic)
	assert.Equal(t, 1, got.Intents)
}

func TestRespond_ElectricQuestion(t *testing.T) {
	e := newTestEngine()
	got := e.RespondDetailed("how do electric cars compare", nil)

	assert.Contains(t, got.Text, "zero tailpipe emissions")
	assert.Equal(t, "electric_vehicles", got.Topic)
	assert.Equal(t, BandHigh, got.Band)
}

func TestRespond_CompoundQuery(t *testing.T) {
	e := newTestEngine()
	got := e.RespondDetailed("What fuel types exist and how do I reduce emissions?", nil)

	assert.Equal(t, 2, got.Intents)
	parts := strings.Split(got.Text, multiIntentSeparator)
	require.GreaterOrEqual(t, len(parts), 2)
	assert.Contains(t, got.Text, "gCO2e/MJ")
	assert.Contains(t, got.Text, "tire pressure")
}

func TestRespond_CompoundDuplicateTopicAnswersOnce(t *testing.T) {
	e := newTestEngine()
	got := e.Respond("tell me about evs and electric cars", nil)

	assert.Equal(t, 1, strings.Count(got, "zero tailpipe emissions"))
}

func TestRespond_ContextIntentWinsOverKeywords(t *testing.T) {
	e := newTestEngine()
	got := e.RespondDetailed("explain my result", averageGasContext())

	assert.Contains(t, got.Text, "Average Performance")
	assert.Contains(t, got.Text, "4019 kg")
	assert.Equal(t, BandContext, got.Band)
	assert.Equal(t, "explain", got.Topic)
}

func TestRespond_MissingContextShortCircuit(t *testing.T) {
	e := newTestEngine()

	for _, input := range []string{
		"my result",
		"show me my score",
		"what are my emissions",
		"tell me about my car",
	} {
		got := e.RespondDetailed(input, nil)
		assert.Equal(t, missingContextPrompt, got.Text, "input %q", input)
		assert.Equal(t, BandMissingContext, got.Band)
	}
}

func TestRespond_MissingContextNotForCompoundQueries(t *testing.T) {
	e := newTestEngine()
	got := e.RespondDetailed("my result and fuel types", nil)
	assert.NotEqual(t, BandMissingContext, got.Band)
}

func TestRespond_GeneralQuestionIgnoresContextResponder(t *testing.T) {
	e := newTestEngine()
	got := e.RespondDetailed("what fuel types exist", averageGasContext())

	assert.Contains(t, got.Text, "gCO2e/MJ")
	assert.Equal(t, "fuel_types", got.Topic)
	assert.Equal(t, BandHigh, got.Band)
}

func TestRespond_SanitizesInjection(t *testing.T) {
	e := newTestEngine()
	got := e.Respond("hello <script>alert(1)</script>", nil)

	lower := strings.ToLower(got)
	assert.NotContains(t, lower, "<script")
	assert.NotContains(t, lower, "alert(1)")
	assert.Contains(t, got, "Eco-Copilot")
}

func TestRespond_NeverEmpty(t *testing.T) {
	e := newTestEngine()
	for _, input := range []string{"", "   ", "xyzzy qwerty", "<script></script>", "?!"} {
		got := e.Respond(input, nil)
		assert.NotEmpty(t, got, "input %q", input)
	}
}

func TestRespond_NoConfidenceFallback(t *testing.T) {
	e := newTestEngine()

	withoutPrediction := e.RespondDetailed("xyzzy qwerty", nil)
	assert.Equal(t, BandNone, withoutPrediction.Band)
	assert.Contains(t, withoutPrediction.Text, "fuel types")

	withPrediction := e.RespondDetailed("xyzzy qwerty", averageGasContext())
	assert.Equal(t, BandNone, withPrediction.Band)
	assert.Contains(t, withPrediction.Text, "explain your result")
}

func TestRespond_LowConfidenceBand(t *testing.T) {
	e := newTestEngine()
	got := e.RespondDetailed("reducer", nil)

	assert.Equal(t, BandLow, got.Band)
	assert.Contains(t, lowConfidencePhrasings, got.Text)
}

func TestRespond_LowConfidenceReproducibleWithSeed(t *testing.T) {
	a := New(DefaultKnowledgeBase(), WithRand(rand.New(rand.NewSource(42))))
	b := New(DefaultKnowledgeBase(), WithRand(rand.New(rand.NewSource(42))))

	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Respond("reducer", nil), b.Respond("reducer", nil))
	}
}

func TestRespond_Deterministic(t *testing.T) {
	e := newTestEngine()
	inputs := []string{
		"hi",
		"what fuel types exist",
		"how do electric cars compare",
		"tell me about hybrids",
	}
	for _, input := range inputs {
		first := e.Respond(input, nil)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, e.Respond(input, nil), "input %q", input)
		}
	}
}

func TestQuickPrompts(t *testing.T) {
	with := QuickPrompts(true)
	without := QuickPrompts(false)

	assert.Len(t, with, 4)
	assert.Len(t, without, 4)
	assert.Contains(t, with, "Explain my result")
	assert.Contains(t, without, "What fuel types exist?")
	assert.NotEqual(t, with, without)
}
