package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Hello World", "hello world"},
		{"strips punctuation", "Hello, world!? Really;: yes.", "hello world really yes"},
		{"collapses whitespace", "  too   many\t spaces \n here ", "too many spaces here"},
		{"empty input", "", ""},
		{"whitespace only", "   \t\n ", ""},
		{"keeps other symbols", "cost is $7,500", "cost is $7500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Hello, World!",
		"  MIXED case...   and SPACES  ",
		"already normalized text",
		"",
		"?!.,;:",
	}
	for _, s := range inputs {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", s)
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"emissions", "emission"},
		{"categories", "category"},
		{"boxes", "box"},
		{"glasses", "glass"},
		{"cars", "car"},
		{"grass", "grass"},  // ss is not a plural
		{"driving", "driv"},
		{"walked", "walk"},
		{"used", "us"},
		{"ring", "r"},
		{"rings", "r"}, // plural rule first, then the verb suffix
		{"ev", "ev"},     // too short to stem
		{"gas", "gas"},   // too short to stem
		{"fuel", "fuel"}, // nothing to strip
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Stem(tt.word))
		})
	}
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"two", "words"}, Words("two words"))
	assert.Empty(t, Words(""))
}

func TestStemAll(t *testing.T) {
	assert.Equal(t, []string{"emission", "car"}, StemAll([]string{"emissions", "cars"}))
}
