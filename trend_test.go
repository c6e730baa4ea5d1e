package emograd_test

import (
	"testing"

	"github.com/emograd/emograd"
	"github.com/m-mizutani/gt"
)

func ptr(v float64) *float64 { return &v }

func TestClassifyTrend(t *testing.T) {
	t.Run("no baseline yields first block", func(t *testing.T) {
		gt.Equal(t, emograd.TrendFirstBlock, emograd.ClassifyTrend(0.5, nil, 0))
	})

	t.Run("strictly lower is improved", func(t *testing.T) {
		gt.Equal(t, emograd.TrendImproved, emograd.ClassifyTrend(0.3, ptr(0.5), 0))
	})

	t.Run("strictly higher is worsened", func(t *testing.T) {
		gt.Equal(t, emograd.TrendWorsened, emograd.ClassifyTrend(0.7, ptr(0.5), 0))
	})

	t.Run("equal is unchanged", func(t *testing.T) {
		gt.Equal(t, emograd.TrendUnchanged, emograd.ClassifyTrend(0.5, ptr(0.5), 0))
	})

	t.Run("epsilon damps float jitter", func(t *testing.T) {
		prev := 1.0
		jittered := prev * (1 - 1e-12)

		gt.Equal(t, emograd.TrendImproved, emograd.ClassifyTrend(jittered, &prev, 0))
		gt.Equal(t, emograd.TrendUnchanged, emograd.ClassifyTrend(jittered, &prev, 1e-9))
		gt.Equal(t, emograd.TrendImproved, emograd.ClassifyTrend(0.9, &prev, 1e-9))
	})

	t.Run("epsilon is relative to magnitude", func(t *testing.T) {
		prev := 1000.0
		gt.Equal(t, emograd.TrendUnchanged, emograd.ClassifyTrend(1000.0000001, &prev, 1e-9))
		gt.Equal(t, emograd.TrendWorsened, emograd.ClassifyTrend(1000.01, &prev, 1e-9))
	})
}

func TestTrend_String(t *testing.T) {
	gt.Equal(t, "first_block", emograd.TrendFirstBlock.String())
	gt.Equal(t, "improved", emograd.TrendImproved.String())
	gt.Equal(t, "worsened", emograd.TrendWorsened.String())
	gt.Equal(t, "unchanged", emograd.TrendUnchanged.String())
}
