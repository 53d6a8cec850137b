package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/catein/episodemap/pkg/logging"
)

func TestContextFunctions(t *testing.T) {
	t.Run("FromContext falls back to default", func(t *testing.T) {
		assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
		//nolint:staticcheck // nil context is part of the contract
		assert.Same(t, logging.Default(), logging.FromContext(nil))
	})

	t.Run("WithLogger round trips", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		assert.Same(t, tl.Logger, logging.FromContext(ctx))
	})

	t.Run("WithLogger nil means default", func(t *testing.T) {
		ctx := logging.WithLogger(context.Background(), nil)
		assert.Same(t, logging.Default(), logging.FromContext(ctx))
	})

	t.Run("tags accumulate", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		ctx = logging.WithRunID(ctx, "run-123")
		ctx = logging.WithCategory(ctx, "Episode Home")
		ctx = logging.WithOperation(ctx, "fetch")

		logging.FromContext(ctx).Info().Msg("page fetched")

		tl.AssertContains(t, `"run_id":"run-123"`)
		tl.AssertContains(t, `"category":"Episode Home"`)
		tl.AssertContains(t, `"operation":"fetch"`)
	})

	t.Run("parent context is unchanged", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		parent := logging.WithLogger(context.Background(), tl.Logger)
		_ = logging.WithOperation(parent, "save")

		logging.FromContext(parent).Info().Msg("loaded")
		tl.AssertNotContains(t, `"operation"`)
	})
}
