package emograd_test

import (
	"testing"

	"github.com/emograd/emograd"
	"github.com/m-mizutani/gt"
)

func TestTrendBuffer_BlockCompletion(t *testing.T) {
	t.Run("no result until the block is full", func(t *testing.T) {
		buf := emograd.NewTrendBuffer(3)

		_, _, done := buf.Add(1.0)
		gt.False(t, done)
		_, _, done = buf.Add(2.0)
		gt.False(t, done)

		avg, prev, done := buf.Add(3.0)
		gt.True(t, done)
		gt.Equal(t, 2.0, avg)
		gt.Nil(t, prev)
	})

	t.Run("second block carries the first average as baseline", func(t *testing.T) {
		buf := emograd.NewTrendBuffer(3)

		for _, loss := range []float64{1.0, 2.0, 3.0} {
			buf.Add(loss)
		}

		buf.Add(4.0)
		buf.Add(6.0)
		avg, prev, done := buf.Add(8.0)
		gt.True(t, done)
		gt.Equal(t, 6.0, avg)
		gt.NotNil(t, prev)
		gt.Equal(t, 2.0, *prev)
	})

	t.Run("only the most recent average is retained", func(t *testing.T) {
		buf := emograd.NewTrendBuffer(1)

		buf.Add(5.0)
		buf.Add(3.0)
		_, prev, done := buf.Add(7.0)
		gt.True(t, done)
		gt.NotNil(t, prev)
		gt.Equal(t, 3.0, *prev)
	})

	t.Run("capacity one degenerates to per-step reporting", func(t *testing.T) {
		buf := emograd.NewTrendBuffer(1)

		avg, prev, done := buf.Add(0.5)
		gt.True(t, done)
		gt.Equal(t, 0.5, avg)
		gt.Nil(t, prev)

		avg, prev, done = buf.Add(0.25)
		gt.True(t, done)
		gt.Equal(t, 0.25, avg)
		gt.NotNil(t, prev)
		gt.Equal(t, 0.5, *prev)
	})

	t.Run("zero loss is a real baseline, not absence", func(t *testing.T) {
		buf := emograd.NewTrendBuffer(1)

		buf.Add(0.0)
		_, prev, done := buf.Add(1.0)
		gt.True(t, done)
		gt.NotNil(t, prev)
		gt.Equal(t, 0.0, *prev)
	})
}
