package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type codecConfig struct {
	level     int
	bigEndian bool
	calls     []string
}

var errNegativeLevel = errors.New("level cannot be negative")

func withLevel(level int) Option[*codecConfig] {
	return New(func(c *codecConfig) error {
		if level < 0 {
			return errNegativeLevel
		}
		c.level = level
		c.calls = append(c.calls, "level")

		return nil
	})
}

func withBigEndian() Option[*codecConfig] {
	return NoError(func(c *codecConfig) {
		c.bigEndian = true
		c.calls = append(c.calls, "endian")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &codecConfig{}
		require.NoError(t, Apply(cfg, withBigEndian(), withLevel(3)))
		require.Equal(t, 3, cfg.level)
		require.True(t, cfg.bigEndian)
		require.Equal(t, []string{"endian", "level"}, cfg.calls)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &codecConfig{}
		require.NoError(t, Apply(cfg))
		require.Empty(t, cfg.calls)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &codecConfig{}
		require.NoError(t, Apply(cfg, nil, withLevel(1)))
		require.Equal(t, 1, cfg.level)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &codecConfig{}
		err := Apply(cfg, withBigEndian(), withLevel(-1), withLevel(5))
		require.ErrorIs(t, err, errNegativeLevel)
		require.Contains(t, err.Error(), "option 1")
		require.Equal(t, 0, cfg.level)
		require.Equal(t, []string{"endian"}, cfg.calls)
	})
}

func TestNoError(t *testing.T) {
	cfg := &codecConfig{}
	opt := NoError(func(c *codecConfig) { c.level = 9 })

	require.NoError(t, opt.apply(cfg))
	require.Equal(t, 9, cfg.level)
}
