package engine

import (
	"fmt"

	"github.com/yaakydd/DriveGreen-sub000/internal/models"
)

type responseKind int

const (
	responseStatic responseKind = iota
	responseDerived
)

// Response is a tagged variant: either fixed text or a generator over the
// current prediction context. Keeping the generator behind a named
// constructor (rather than arbitrary callables in data) keeps the registry
// inspectable.
type Response struct {
	kind     responseKind
	text     string
	generate func(*models.PredictionContext) string
}

func StaticResponse(text string) Response {
	return Response{kind: responseStatic, text: text}
}

func DerivedResponse(fn func(*models.PredictionContext) string) Response {
	return Response{kind: responseDerived, generate: fn}
}

// Resolve produces the final text, invoking the generator for derived
// responses. pc may be nil for static responses.
func (r Response) Resolve(pc *models.PredictionContext) string {
	if r.kind == responseDerived {
		return r.generate(pc)
	}
	return r.text
}

func (r Response) empty() bool {
	return r.kind == responseStatic && r.text == "" || r.kind == responseDerived && r.generate == nil
}

// KnowledgeEntry is one topic in the curated response base.
type KnowledgeEntry struct {
	// Topic is a stable identifier used in logs and analytics, never shown
	// to the user.
	Topic    string
	Keywords []string
	// Priority multiplies the raw relevance score. Greetings and the
	// high-value technical topics sit above generic catch-alls.
	Priority float64
	Tags     []string
	Response Response
	// RequiresPrediction excludes the entry from candidacy unless a
	// prediction context accompanies the query.
	RequiresPrediction bool
}

// Registry is the ordered, immutable knowledge base. Order matters: score
// ties resolve to the earliest entry.
type Registry struct {
	entries []KnowledgeEntry
}

// NewRegistry validates and freezes a set of entries.
func NewRegistry(entries []KnowledgeEntry) (*Registry, error) {
	for i, e := range entries {
		if len(e.Keywords) == 0 {
			return nil, fmt.Errorf("entry %d (%s): no keywords", i, e.Topic)
		}
		if e.Priority <= 0 {
			return nil, fmt.Errorf("entry %d (%s): priority must be positive", i, e.Topic)
		}
		if e.Response.empty() {
			return nil, fmt.Errorf("entry %d (%s): empty response", i, e.Topic)
		}
		seen := make(map[string]bool, len(e.Keywords))
		for _, k := range e.Keywords {
			if k == "" || seen[k] {
				return nil, fmt.Errorf("entry %d (%s): empty or duplicate keyword %q", i, e.Topic, k)
			}
			seen[k] = true
		}
	}
	copied := make([]KnowledgeEntry, len(entries))
	copy(copied, entries)
	return &Registry{entries: copied}, nil
}

func (r *Registry) Entries() []KnowledgeEntry {
	return r.entries
}

func (r *Registry) Len() int {
	return len(r.entries)
}

// DefaultKnowledgeBase builds the curated emissions knowledge base. It is
// constructed once at startup; the entry data is fixed for the process
// lifetime.
func DefaultKnowledgeBase() *Registry {
	reg, err := NewRegistry(defaultEntries())
	if err != nil {
		// the default set is static data; a validation failure here is a
		// programming error
		panic(err)
	}
	return reg
}

func defaultEntries() []KnowledgeEntry {
	return []KnowledgeEntry{
		{
			Topic:    "greeting",
			Keywords: []string{"hi", "hello", "hey", "greetings", "howdy"},
			Priority: 2,
			Tags:     []string{"smalltalk"},
			Response: StaticResponse("Hello! I'm Eco-Copilot, your vehicle emissions assistant. I can help you understand CO2 emissions, fuel types, and ways to drive greener. Run a prediction and I can walk you through your vehicle's result too."),
		},
		{
			Topic:    "farewell",
			Keywords: []string{"bye", "goodbye", "farewell", "later"},
			Priority: 1.5,
			Tags:     []string{"smalltalk"},
			Response: StaticResponse("Goodbye! Drive green, and come back any time you want to check a vehicle's emissions."),
		},
		{
			Topic:    "thanks",
			Keywords: []string{"thanks", "thank", "appreciate"},
			Priority: 1.5,
			Tags:     []string{"smalltalk"},
			Response: StaticResponse("You're welcome! Happy to help with anything else about vehicle emissions."),
		},
		{
			Topic:    "capabilities",
			Keywords: []string{"help", "capabilities", "features", "assist"},
			Priority: 1.5,
			Tags:     []string{"meta"},
			Response: StaticResponse("I can explain fuel types and their carbon intensity, compare electric and hybrid vehicles with gas cars, share ways to reduce emissions, and describe how the prediction model works. After you run a prediction, ask me to explain, rate, improve, or compare your result."),
		},
		{
			Topic:    "fuel_types",
			Keywords: []string{"fuel", "fuels", "gasoline", "diesel", "ethanol", "petrol", "cng"},
			Priority: 2,
			Tags:     []string{"fuel", "education"},
			Response: StaticResponse("Fuel types and carbon intensity:\n\n- Regular and premium gasoline (X, Z): ~95 gCO2e/MJ\n- Diesel (D): ~95 gCO2e/MJ, more energy-dense but higher NOx\n- Natural gas (N): ~70 gCO2e/MJ\n- Ethanol E85 (E): ~75 gCO2e/MJ\n- Electric: zero tailpipe, grid-dependent 5-130 gCO2/km\n\nDiesel engines usually beat gasoline on fuel economy, but the per-litre CO2 is higher."),
		},
		{
			Topic:    "electric_vehicles",
			Keywords: []string{"electric", "ev", "evs", "battery", "charging", "tesla"},
			Priority: 2,
			Tags:     []string{"ev", "education"},
			Response: StaticResponse("Electric vehicles produce zero tailpipe emissions. Their real footprint depends on the grid: roughly 5-130 gCO2/km, with ~70 g/km a common average, versus ~180 g/km for an average gas car. Battery costs have fallen about 89% since 2010 and 300+ mile ranges are now standard."),
		},
		{
			Topic:    "hybrids",
			Keywords: []string{"hybrid", "hybrids", "phev", "plug-in"},
			Priority: 2,
			Tags:     []string{"ev", "education"},
			Response: StaticResponse("Hybrids average ~115 g/km, a 30-40% reduction versus comparable gas cars. Plug-in hybrids (PHEV) do even better when charged regularly, around ~105 g/km. For long commutes without home charging, a hybrid is often the most practical low-emission choice."),
		},
		{
			Topic:    "reduce_emissions",
			Keywords: []string{"reduce", "emissions", "tips", "eco-driving", "save", "maintenance"},
			Priority: 2,
			Tags:     []string{"tips"},
			Response: StaticResponse("Ways to reduce your vehicle's emissions:\n\n1. Keep tire pressure at the recommended max (saves ~3%)\n2. Remove excess weight: every 100 lbs costs ~1%\n3. Drive smoothly: steady acceleration saves up to 20%\n4. Plan routes to avoid heavy traffic\n5. Stay on top of maintenance: oil changes, air filters\n6. Consider fuel-saving OBD-II devices\n7. Take public transit one day a week\n8. Long term, consider an EV or hybrid for your next vehicle"),
		},
		{
			Topic:    "emission_categories",
			Keywords: []string{"category", "categories", "bands", "excellent", "average", "high"},
			Priority: 2,
			Tags:     []string{"education"},
			Response: StaticResponse("Emission categories by CO2 per km:\n\n- Excellent: under 120 g/km (top 15%, efficient hybrids)\n- Good: 120-160 g/km (better than 60%, modern compacts)\n- Average: 160-200 g/km (typical mid-size)\n- High: 200-250 g/km (large SUVs and trucks)\n- Very High: over 250 g/km (heavy trucks, poor efficiency)"),
		},
		{
			Topic:    "policies",
			Keywords: []string{"policy", "policies", "incentives", "tax", "credit", "rebate", "mandate", "regulation"},
			Priority: 2,
			Tags:     []string{"policy"},
			Response: StaticResponse("Government policies and incentives:\n\n- Emission standards: Euro 6, EPA Tier 3\n- Zero-emission mandates: California 2035, UK 2030, Norway 2025\n- US federal EV tax credit up to $7,500, state rebates $2,000-$5,000\n- HOV lane access for clean vehicles\n- Congestion charges, e.g. London's £15/day for high emitters"),
		},
		{
			Topic:    "rewards",
			Keywords: []string{"rewards", "perks", "parking", "hov", "benefits"},
			Priority: 1.5,
			Tags:     []string{"policy"},
			Response: StaticResponse("Owning a low-emission vehicle pays off: federal tax credits up to $7,500, state rebates of $2,000-$5,000, free or priority parking in many cities, HOV lane access even when driving solo, $1,000+ in annual fuel savings, and around $800/year less in maintenance."),
		},
		{
			Topic:    "comparisons",
			Keywords: []string{"compare", "comparison", "versus", "suv", "truck", "sedan"},
			Priority: 1.5,
			Tags:     []string{"education"},
			Response: StaticResponse("Typical CO2 by vehicle class:\n\n- Electric vehicles: ~70 g/km (grid-dependent)\n- Plug-in hybrids: ~105 g/km when charged\n- Hybrids: ~115 g/km\n- Average gas car: ~180 g/km\n- Large SUV or truck: 250-300+ g/km\n\nA small efficient gas car can still beat a large inefficient EV."),
		},
		{
			Topic:    "health_climate",
			Keywords: []string{"health", "climate", "pollution", "smog", "pm25", "nox", "air"},
			Priority: 1.5,
			Tags:     []string{"health"},
			Response: StaticResponse("Vehicle emissions are a health issue as much as a climate one: PM2.5 particles enter the bloodstream, NOx drives smog and respiratory problems, and the WHO attributes 4.2 million deaths a year to air pollution. Transportation accounts for about 29% of US emissions, so every kg of CO2 avoided counts."),
		},
		{
			Topic:    "model_details",
			Keywords: []string{"model", "xgboost", "accuracy", "algorithm", "predict", "machine"},
			Priority: 2,
			Tags:     []string{"model"},
			Response: StaticResponse("The estimator is an XGBoost model trained on thousands of vehicle records. Inputs are fuel type, engine size (0.9-8.4L) and cylinder count (3-16); the pipeline log-transforms the numbers, one-hot encodes the fuel type, predicts CO2 and reverses the transform. Accuracy is within an 8-12% margin of EPA/WLTP data, output in g/km."),
		},
		{
			Topic:    "future",
			Keywords: []string{"future", "outlook", "trends", "2030", "2035"},
			Priority: 1.5,
			Tags:     []string{"education"},
			Response: StaticResponse("The outlook: gas station decline is accelerating, zero-emission mandates are spreading globally, battery costs are down about 89% since 2010, and 300+ mile EV ranges are standard. The trend lines all point one way: lower-emission vehicles keep getting cheaper and more practical."),
		},
		{
			Topic:    "buying_guide",
			Keywords: []string{"buy", "buying", "purchase", "recommend", "shopping"},
			Priority: 1.5,
			Tags:     []string{"guide"},
			Response: StaticResponse("A quick buying guide: if you drive under 40 miles a day and can charge at home, go EV. Long commutes favor a hybrid or PHEV. On a budget, a 3-year-old hybrid is excellent value. And remember: a small efficient gas car beats a large inefficient EV."),
		},
		{
			Topic:              "result_summary",
			Keywords:           []string{"result", "results", "prediction", "score"},
			Priority:           2,
			Tags:               []string{"result"},
			RequiresPrediction: true,
			Response: DerivedResponse(func(pc *models.PredictionContext) string {
				return resultSummary(pc)
			}),
		},
		{
			Topic:              "vehicle_recap",
			Keywords:           []string{"vehicle", "specs", "engine", "cylinders"},
			Priority:           1.5,
			Tags:               []string{"result"},
			RequiresPrediction: true,
			Response: DerivedResponse(func(pc *models.PredictionContext) string {
				return vehicleRecap(pc)
			}),
		},
	}
}
