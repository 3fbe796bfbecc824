package engine

import (
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/yaakydd/DriveGreen-sub000/internal/models"
)

// Confidence bands over the winning score.
const (
	lowConfidenceFloor  = 3.0
	highConfidenceFloor = 5.0
)

// Band labels reported for analytics.
const (
	BandHigh           = "high"
	BandLow            = "low"
	BandNone           = "none"
	BandContext        = "context"
	BandMissingContext = "missing_context"
)

// multiIntentSeparator joins per-sub-query responses of a compound query.
const multiIntentSeparator = "\n\n"

// ownResultRe is the single-clause grammar check for "asks about their own
// result": a first-person possessive followed somewhere by a results noun.
var ownResultRe = regexp.MustCompile(`(?i)\bmy\b.*\b(results?|score|predictions?|emissions?|vehicle|car)\b`)

const missingContextPrompt = "I don't have a prediction for your vehicle yet. Run a prediction first with your fuel type, engine size and cylinder count, then ask me about your result."

var lowConfidencePhrasings = []string{
	"I think I follow, but could you narrow it down? For example: fuel types, electric vehicles, or ways to reduce emissions.",
	"I'm partly with you. Try asking about one topic at a time, like \"what fuel types exist\" or \"how do hybrids compare\".",
	"Close, but I want to be sure. Ask me about fuel types, emission categories, incentives, or your prediction result.",
}

// Engine composes responses from the knowledge base and the context
// responder. It holds no per-call state: every Respond call is a pure
// function of its arguments, the registry, and the injected random source
// (used only to vary low-confidence phrasing).
type Engine struct {
	kb  *Registry
	rng *rand.Rand
}

type Option func(*Engine)

// WithRand injects a seedable random source so low-confidence fallback
// phrasing is reproducible in tests.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

func New(kb *Registry, opts ...Option) *Engine {
	e := &Engine{
		kb:  kb,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Knowledge() *Registry {
	return e.kb
}

// Result is one composed response plus the selection facts the caller may
// want for logging or analytics.
type Result struct {
	Text    string
	Intents int
	Topic   string
	Tags    []string
	Band    string
	Score   float64
}

// Respond returns the combined response for a raw utterance. It never
// returns an empty string: unmatched or malformed input lands in a fallback.
func (e *Engine) Respond(rawInput string, pc *models.PredictionContext) string {
	return e.RespondDetailed(rawInput, pc).Text
}

// RespondDetailed runs the full pipeline: sanitize, segment, per-sub-query
// context responder or scorer, confidence banding, then join.
func (e *Engine) RespondDetailed(rawInput string, pc *models.PredictionContext) Result {
	clean := Sanitize(rawInput)
	segments := Segment(clean)

	// A single-intent question about "my result" with no prediction on hand
	// short-circuits before any scoring.
	if pc == nil && len(segments) == 1 && ownResultRe.MatchString(clean) {
		return Result{
			Text:    missingContextPrompt,
			Intents: 1,
			Topic:   "missing_context",
			Band:    BandMissingContext,
		}
	}

	out := Result{Intents: len(segments)}
	var responses []string
	for _, segment := range segments {
		q := newQuery(segment)

		if pc != nil {
			if text, intent, ok := contextRespond(q.normalized, pc); ok {
				responses = appendDeduped(responses, text)
				if out.Band == "" || out.Band != BandContext {
					out.Topic, out.Band, out.Tags = intent, BandContext, []string{"result"}
				}
				continue
			}
		}

		text, topic, tags, band, score := e.respondScored(q, pc)
		responses = appendDeduped(responses, text)
		if score >= out.Score && band != BandNone {
			out.Topic, out.Tags, out.Band, out.Score = topic, tags, band, score
		} else if out.Band == "" {
			out.Topic, out.Band = topic, band
		}
	}

	out.Text = strings.Join(responses, multiIntentSeparator)
	return out
}

func (e *Engine) respondScored(q query, pc *models.PredictionContext) (text, topic string, tags []string, band string, score float64) {
	best, bestScore := selectEntry(e.kb, q, pc != nil)

	switch {
	case best == nil || bestScore < lowConfidenceFloor:
		return e.noConfidenceFallback(pc != nil), "fallback", nil, BandNone, bestScore
	case bestScore < highConfidenceFloor:
		return e.lowConfidenceFallback(), "fallback", nil, BandLow, bestScore
	default:
		return best.Response.Resolve(pc), best.Topic, best.Tags, BandHigh, bestScore
	}
}

func (e *Engine) noConfidenceFallback(hasPrediction bool) string {
	if hasPrediction {
		return "I didn't catch that. You can ask me to explain your result, rate it, suggest improvements, or compare your vehicle with EVs and hybrids."
	}
	return "I didn't catch that. You can ask me about fuel types, electric vehicles, ways to reduce emissions, or run a prediction and ask about your result."
}

func (e *Engine) lowConfidenceFallback() string {
	return lowConfidencePhrasings[e.rng.Intn(len(lowConfidencePhrasings))]
}

// appendDeduped drops a response identical to the previous one, so a
// compound query whose clauses land on the same topic answers once.
func appendDeduped(responses []string, text string) []string {
	if n := len(responses); n > 0 && responses[n-1] == text {
		return responses
	}
	return append(responses, text)
}
