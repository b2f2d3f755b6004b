package sitename_test

import (
	"bytes"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/nais/lander/pkg/sitename"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dnsLabel = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?$`)

func fixedClock() time.Time {
	return time.Date(2026, time.October, 14, 9, 30, 15, 0, time.UTC)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestGenerateFormat(t *testing.T) {
	g := sitename.New()
	g.Clock = fixedClock

	name, err := g.Generate()
	require.NoError(t, err)

	assert.Regexp(t, `^landing-20261014093015-[a-z]{6}$`, name)
	assert.Regexp(t, dnsLabel, name)
}

func TestGenerateDeterministicWithFixedSource(t *testing.T) {
	g := &sitename.Generator{
		Prefix:       "landing",
		SuffixLength: 4,
		Clock:        fixedClock,
		// 0 -> a, 25 -> z, 255 is rejected, 27 -> b, 234 is rejected, 51 -> z
		Random: bytes.NewReader([]byte{0, 25, 255, 27, 234, 51, 0, 0}),
	}

	name, err := g.Generate()
	require.NoError(t, err)
	assert.Equal(t, "landing-20261014093015-azbz", name)
}

func TestGenerateClampsSuffixLength(t *testing.T) {
	for _, tt := range []struct {
		length   int
		expected int
	}{
		{length: 0, expected: 4},
		{length: 5, expected: 5},
		{length: 40, expected: 6},
	} {
		g := sitename.New()
		g.SuffixLength = tt.length

		name, err := g.Generate()
		require.NoError(t, err)
		parts := regexp.MustCompile(`-([a-z]+)$`).FindStringSubmatch(name)
		require.Len(t, parts, 2)
		assert.Len(t, parts[1], tt.expected)
	}
}

func TestGenerateUnique(t *testing.T) {
	g := sitename.New()
	g.Clock = fixedClock

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		name, err := g.Generate()
		require.NoError(t, err)
		seen[name] = true
	}
	assert.Greater(t, len(seen), 195)
}

func TestGenerateRandomFailure(t *testing.T) {
	g := sitename.New()
	g.Random = failingReader{}

	_, err := g.Generate()
	assert.EqualError(t, err, "reading random source: entropy exhausted")
}

func TestGenerateZeroValueGenerator(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{name: "empty prefix", prefix: ""},
		{name: "blank prefix", prefix: "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &sitename.Generator{
				Prefix: tt.prefix,
				Clock:  fixedClock,
				Random: bytes.NewReader(bytes.Repeat([]byte{0}, 16)),
			}
			name, err := g.Generate()
			require.NoError(t, err)
			assert.Equal(t, "landing-20261014093015-aaaa", name)
			assert.Regexp(t, dnsLabel, name)
		})
	}

	name, err := (&sitename.Generator{}).Generate()
	require.NoError(t, err)
	assert.Regexp(t, `^landing-\d{14}-[a-z]{4}$`, name)
}
