package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	value   int
	name    string
	enabled bool
}

func (tc *testConfig) setValue(v int) error {
	if v < 0 {
		return errors.New("value cannot be negative")
	}
	tc.value = v

	return nil
}

func TestOption_New(t *testing.T) {
	config := &testConfig{}

	t.Run("creates option that can return error", func(t *testing.T) {
		opt := New(func(c *testConfig) error {
			return c.setValue(42)
		})

		require.NoError(t, opt.apply(config))
		require.Equal(t, 42, config.value)
	})

	t.Run("propagates errors from option function", func(t *testing.T) {
		opt := New(func(c *testConfig) error {
			return c.setValue(-1)
		})

		err := opt.apply(config)
		require.Error(t, err)
		require.Contains(t, err.Error(), "value cannot be negative")
	})
}

func TestOption_NoError(t *testing.T) {
	config := &testConfig{}

	opt := NoError(func(c *testConfig) {
		c.name = "test"
	})

	require.NoError(t, opt.apply(config))
	require.Equal(t, "test", config.name)
}

func TestOption_Apply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		config := &testConfig{}

		err := Apply(config,
			NoError(func(c *testConfig) { c.name = "first" }),
			NoError(func(c *testConfig) { c.enabled = true }),
			NoError(func(c *testConfig) { c.name = "second" }),
		)
		require.NoError(t, err)
		require.Equal(t, "second", config.name)
		require.True(t, config.enabled)
	})

	t.Run("stops at first error", func(t *testing.T) {
		config := &testConfig{}

		err := Apply(config,
			New(func(c *testConfig) error { return c.setValue(-1) }),
			NoError(func(c *testConfig) { c.enabled = true }),
		)
		require.Error(t, err)
		require.False(t, config.enabled, "options after a failing one must not apply")
	})

	t.Run("no options is a no-op", func(t *testing.T) {
		config := &testConfig{}
		require.NoError(t, Apply(config))
	})
}
