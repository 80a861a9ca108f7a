package hash

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another string", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestToken(t *testing.T) {
	t.Run("spellings collapse", func(t *testing.T) {
		want := Token("SquareMeter")
		for _, s := range []string{"squaremeter", "square-meter", "Square Meter", "SQUARE_METER", "-square--meter-"} {
			assert.Equal(t, want, Token(s), s)
		}
	})

	t.Run("matches ID of normalized form", func(t *testing.T) {
		assert.Equal(t, ID("kilometerperhour"), Token("Kilometer-Per-Hour"))
		assert.Equal(t, ID(""), Token(""))
		assert.Equal(t, ID("µm"), Token("µm"))
	})

	t.Run("distinct units differ", func(t *testing.T) {
		assert.NotEqual(t, Token("Meter"), Token("Meters"))
		assert.NotEqual(t, Token("Kilometer"), Token("Kilogram"))
	})

	t.Run("long tokens", func(t *testing.T) {
		long := strings.Repeat("Ab-", 100)
		assert.Equal(t, ID(strings.Repeat("ab", 100)), Token(long))
	})
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"SquareMeter":       "squaremeter",
		"square-meter":      "squaremeter",
		"US_Gallon":         "usgallon",
		"Nautical Mile":     "nauticalmile",
		"µm":                "µm",
		"":                  "",
		"Kilometer-PerHour": "kilometerperhour",
	}

	for in, expected := range tests {
		assert.Equal(t, expected, Normalize(in), in)
		assert.Equal(t, Token(in), ID(Normalize(in)), in)
	}
}

func randString(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range b {
		b[i] = letters[seededRand.Intn(len(letters))]
	}

	return string(b)
}

func BenchmarkID(b *testing.B) {
	randStr := randString(20)
	b.ResetTimer()
	for b.Loop() {
		ID(randStr)
	}
}

func BenchmarkToken(b *testing.B) {
	for b.Loop() {
		Token("Kilometer-Per-Hour")
	}
}
