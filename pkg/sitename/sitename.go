package sitename

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	DefaultPrefix       = "landing"
	DefaultSuffixLength = 6

	MinSuffixLength = 4
	MaxSuffixLength = 6

	timestampFormat = "20060102150405"
	alphabet        = "abcdefghijklmnopqrstuvwxyz"

	// Largest multiple of len(alphabet) that fits in a byte; bytes at or
	// above it are discarded to keep the suffix uniformly distributed.
	rejectionLimit = 256 - 256%len(alphabet)
)

// Generator derives site names on the form <prefix>-<timestamp>-<suffix>,
// for example landing-20261014093000-qwerty.
type Generator struct {
	Prefix       string
	SuffixLength int
	Clock        func() time.Time
	Random       io.Reader
}

func New() *Generator {
	return &Generator{
		Prefix:       DefaultPrefix,
		SuffixLength: DefaultSuffixLength,
		Clock:        time.Now,
		Random:       rand.Reader,
	}
}

func (g *Generator) prefix() string {
	if strings.TrimSpace(g.Prefix) == "" {
		return DefaultPrefix
	}
	return g.Prefix
}

func (g *Generator) suffixLength() int {
	switch {
	case g.SuffixLength < MinSuffixLength:
		return MinSuffixLength
	case g.SuffixLength > MaxSuffixLength:
		return MaxSuffixLength
	default:
		return g.SuffixLength
	}
}

func (g *Generator) suffix() (string, error) {
	random := g.Random
	if random == nil {
		random = rand.Reader
	}
	n := g.suffixLength()
	out := make([]byte, 0, n)
	buf := make([]byte, n)

	for len(out) < n {
		_, err := io.ReadFull(random, buf)
		if err != nil {
			return "", fmt.Errorf("reading random source: %w", err)
		}
		for _, b := range buf {
			if int(b) >= rejectionLimit {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == n {
				break
			}
		}
	}

	return string(out), nil
}

// Generate returns a new site name. Names are unique with high probability only.
func (g *Generator) Generate() (string, error) {
	suffix, err := g.suffix()
	if err != nil {
		return "", err
	}
	clock := g.Clock
	if clock == nil {
		clock = time.Now
	}
	return fmt.Sprintf("%s-%s-%s", g.prefix(), clock().UTC().Format(timestampFormat), suffix), nil
}
