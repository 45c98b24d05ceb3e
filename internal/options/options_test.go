package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type carrierConfig struct {
	name    string
	fill    bool
	minBits int
	applied []string
}

type carrierOption = Option[*carrierConfig]

func withName(name string) carrierOption {
	return NoError(func(c *carrierConfig) {
		c.name = name
		c.applied = append(c.applied, "name")
	})
}

func withFill(fill bool) carrierOption {
	return NoError(func(c *carrierConfig) {
		c.fill = fill
		c.applied = append(c.applied, "fill")
	})
}

func withMinBits(n int) carrierOption {
	return New(func(c *carrierConfig) error {
		if n < 0 {
			return errors.New("min bits cannot be negative")
		}
		c.minBits = n
		c.applied = append(c.applied, "minBits")

		return nil
	})
}

func TestApply(t *testing.T) {
	cfg := &carrierConfig{}
	err := Apply(cfg, withName("letter"), withFill(true), withMinBits(64))
	require.NoError(t, err)
	require.Equal(t, "letter", cfg.name)
	require.True(t, cfg.fill)
	require.Equal(t, 64, cfg.minBits)
	require.Equal(t, []string{"name", "fill", "minBits"}, cfg.applied)
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &carrierConfig{name: "default"}
	require.NoError(t, Apply(cfg))
	require.Equal(t, "default", cfg.name)
	require.Empty(t, cfg.applied)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &carrierConfig{}
	err := Apply(cfg, withName("a"), withMinBits(-1), withFill(true))
	require.EqualError(t, err, "option 1: min bits cannot be negative")
	require.Equal(t, "a", cfg.name)
	require.False(t, cfg.fill, "options after the failing one are not applied")
	require.Equal(t, []string{"name"}, cfg.applied)
}

func TestApply_SkipsNil(t *testing.T) {
	cfg := &carrierConfig{}
	require.NoError(t, Apply(cfg, nil, withFill(true)))
	require.True(t, cfg.fill)
}

func TestApply_WrapsCause(t *testing.T) {
	errShort := errors.New("carrier too short")
	reject := New(func(*carrierConfig) error { return errShort })

	err := Apply(&carrierConfig{}, nil, withName("a"), reject)
	require.ErrorIs(t, err, errShort)
	require.EqualError(t, err, "option 2: carrier too short")
}

func TestBuild(t *testing.T) {
	cfg, err := Build(&carrierConfig{name: "default", minBits: 8}, withFill(true))
	require.NoError(t, err)
	require.Equal(t, "default", cfg.name)
	require.True(t, cfg.fill)
	require.Equal(t, 8, cfg.minBits)

	cfg, err = Build(&carrierConfig{}, withMinBits(-2))
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestApply_LaterOptionWins(t *testing.T) {
	cfg := &carrierConfig{}
	require.NoError(t, Apply(cfg, withFill(true), withFill(false)))
	require.False(t, cfg.fill)
}

func TestOptionsAreReusable(t *testing.T) {
	opts := []carrierOption{withName("shared"), withMinBits(8)}

	a, b := &carrierConfig{}, &carrierConfig{}
	require.NoError(t, Apply(a, opts...))
	require.NoError(t, Apply(b, opts...))
	require.Equal(t, a.name, b.name)
	require.Equal(t, a.minBits, b.minBits)
}

func BenchmarkApply(b *testing.B) {
	opts := []carrierOption{withName("x"), withFill(true), withMinBits(1)}
	for b.Loop() {
		cfg := &carrierConfig{}
		_ = Apply(cfg, opts...)
	}
}
