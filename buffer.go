package emograd

// trendBuffer accumulates raw loss observations into fixed-size blocks and
// reduces each completed block to its arithmetic mean. It retains exactly one
// finalized average to compare the next block against.
type trendBuffer struct {
	capacity int
	block    []float64
	prevAvg  *float64
}

func newTrendBuffer(capacity int) *trendBuffer {
	return &trendBuffer{
		capacity: capacity,
		block:    make([]float64, 0, capacity),
	}
}

// Add appends a loss observation to the active block. When the block reaches
// capacity it is finalized: Add returns the block average, the previous block
// average (nil for the very first block) and done=true, and starts a fresh
// block. Otherwise done is false and the other return values are meaningless.
func (x *trendBuffer) Add(loss float64) (avg float64, prev *float64, done bool) {
	x.block = append(x.block, loss)
	if len(x.block) < x.capacity {
		return 0, nil, false
	}

	var sum float64
	for _, v := range x.block {
		sum += v
	}
	avg = sum / float64(len(x.block))

	prev = x.prevAvg
	x.prevAvg = &avg
	x.block = x.block[:0]

	return avg, prev, true
}
