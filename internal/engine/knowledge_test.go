package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaakydd/DriveGreen-sub000/internal/models"
)

func TestNewRegistry_Validation(t *testing.T) {
	valid := KnowledgeEntry{
		Topic:    "ok",
		Keywords: []string{"ok"},
		Priority: 1,
		Response: StaticResponse("fine"),
	}

	tests := []struct {
		name   string
		mutate func(*KnowledgeEntry)
	}{
		{"no keywords", func(e *KnowledgeEntry) { e.Keywords = nil }},
		{"zero priority", func(e *KnowledgeEntry) { e.Priority = 0 }},
		{"negative priority", func(e *KnowledgeEntry) { e.Priority = -1 }},
		{"empty response", func(e *KnowledgeEntry) { e.Response = StaticResponse("") }},
		{"nil generator", func(e *KnowledgeEntry) { e.Response = DerivedResponse(nil) }},
		{"empty keyword", func(e *KnowledgeEntry) { e.Keywords = []string{"ok", ""} }},
		{"duplicate keyword", func(e *KnowledgeEntry) { e.Keywords = []string{"ok", "ok"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := valid
			entry.Keywords = append([]string(nil), valid.Keywords...)
			tt.mutate(&entry)
			_, err := NewRegistry([]KnowledgeEntry{entry})
			assert.Error(t, err)
		})
	}

	reg, err := NewRegistry([]KnowledgeEntry{valid})
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len())
}

func TestResponse_Resolve(t *testing.T) {
	static := StaticResponse("fixed text")
	assert.Equal(t, "fixed text", static.Resolve(nil))

	derived := DerivedResponse(func(pc *models.PredictionContext) string {
		return string(pc.Category)
	})
	assert.Equal(t, "Average", derived.Resolve(&models.PredictionContext{Category: "Average"}))
}

func TestDefaultKnowledgeBase(t *testing.T) {
	reg := DefaultKnowledgeBase()
	require.NotNil(t, reg)
	assert.GreaterOrEqual(t, reg.Len(), 15)

	topics := make(map[string]bool)
	for _, e := range reg.Entries() {
		assert.False(t, topics[e.Topic], "duplicate topic %s", e.Topic)
		topics[e.Topic] = true
	}

	for _, want := range []string{
		"greeting", "fuel_types", "electric_vehicles", "hybrids",
		"reduce_emissions", "emission_categories", "policies",
		"comparisons", "model_details", "result_summary", "vehicle_recap",
	} {
		assert.True(t, topics[want], "missing topic %s", want)
	}
}

func TestDefaultKnowledgeBase_DerivedEntriesResolve(t *testing.T) {
	pc := &models.PredictionContext{
		PredictedEmissions: 185,
		Category:           "Average",
		Vehicle: models.VehicleSpec{
			FuelType:         "X",
			Cylinders:        4,
			EngineSizeLiters: 2.0,
		},
	}

	for _, e := range DefaultKnowledgeBase().Entries() {
		if !e.RequiresPrediction {
			continue
		}
		text := e.Response.Resolve(pc)
		assert.NotEmpty(t, text, "topic %s", e.Topic)
		assert.Contains(t, text, "185")
	}
}
