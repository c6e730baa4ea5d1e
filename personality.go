package emograd

// Personality maps a completed block of training to an optional message.
// loss is the average loss of the block that just completed, prevLoss is the
// average of the block before it (nil until a second block completes), and
// step is the caller-supplied step index at which the block completed. The
// second return value reports whether the personality has anything to say.
//
// A Personality must treat a nil prevLoss as "no baseline yet" and must not
// compare against it. It is invoked synchronously from Engine.Observe and is
// expected to be cheap.
type Personality func(loss float64, prevLoss *float64, step int) (string, bool)
