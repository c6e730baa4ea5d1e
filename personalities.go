package emograd

import (
	"fmt"
	"math/rand"
)

func builtinRegistry() *Registry {
	r := NewRegistry()
	r.Register("wholesome", Wholesome)
	r.Register("sassy", Sassy)
	r.Register("quiet", NewQuietPersonality(DefaultQuietEveryNSteps).Feedback)
	r.Register("nervous", Nervous)
	r.Register("chaotic", Chaotic)
	r.Register("arrogant", Arrogant)
	r.Register("tired", Tired)
	r.Register("hype", Hype)
	r.Register("academic", Academic)
	r.Register("pirate", Pirate)
	r.Register("zen", Zen)
	return r
}

// Wholesome is the default personality: supportive on every trend, silent
// when the loss is unchanged.
func Wholesome(loss float64, prevLoss *float64, step int) (string, bool) {
	if prevLoss == nil {
		return fmt.Sprintf("✨ Let's get started! Initial loss: %.4f", loss), true
	}

	if loss < *prevLoss {
		return fmt.Sprintf("💖 Nice! Loss improved from %.4f to %.4f.", *prevLoss, loss), true
	}

	if loss > *prevLoss {
		return fmt.Sprintf("🌱 It's okay! Loss went from %.4f to %.4f. Learning isn't always monotonic.", *prevLoss, loss), true
	}

	return "", false
}

// Sassy comments on every trend, with attitude.
func Sassy(loss float64, prevLoss *float64, step int) (string, bool) {
	if prevLoss == nil {
		return "😒 Fine, let's see what you've got.", true
	}

	if loss > *prevLoss {
		return fmt.Sprintf("🙄 Bold move: loss got worse (%.4f → %.4f).", *prevLoss, loss), true
	}

	if loss < *prevLoss {
		return fmt.Sprintf("👏 About time: %.4f → %.4f.", *prevLoss, loss), true
	}

	return "🤨 Exactly the same? Interesting choice.", true
}

// DefaultQuietEveryNSteps is the suppression interval of the built-in "quiet"
// personality.
const DefaultQuietEveryNSteps = 10

// QuietPersonality emits a terse status line only every N steps and stays
// silent otherwise. The interval is explicit because "occasionally" is not a
// number anyone can test against.
type QuietPersonality struct {
	everyNSteps int
}

// NewQuietPersonality creates a quiet personality that speaks only when the
// completing step index is a multiple of everyNSteps.
func NewQuietPersonality(everyNSteps int) *QuietPersonality {
	return &QuietPersonality{everyNSteps: everyNSteps}
}

// Feedback implements the Personality signature. Use it as a method value:
// NewQuietPersonality(5).Feedback.
func (x *QuietPersonality) Feedback(loss float64, prevLoss *float64, step int) (string, bool) {
	if step%x.everyNSteps != 0 {
		return "", false
	}
	return fmt.Sprintf("🔎 Step %d: current loss %.4f", step, loss), true
}

// Nervous worries about everything, including good news.
func Nervous(loss float64, prevLoss *float64, step int) (string, bool) {
	if prevLoss == nil {
		return fmt.Sprintf("😰 Oh no, here we go... Initial loss is %.4f. I hope this works...", loss), true
	}

	if loss < *prevLoss {
		return fmt.Sprintf("😅 Phew! Loss dropped from %.4f to %.4f. But what if it goes back up?!", *prevLoss, loss), true
	}

	if loss > *prevLoss {
		return fmt.Sprintf("😱 I KNEW IT! Loss went up from %.4f to %.4f! Is everything okay?!", *prevLoss, loss), true
	}

	return fmt.Sprintf("😬 Loss is exactly the same... %.4f. That's... concerning?", loss), true
}

// Chaotic says a random thing appropriate to the trend.
func Chaotic(loss float64, prevLoss *float64, step int) (string, bool) {
	if prevLoss == nil {
		starts := []string{
			fmt.Sprintf("🎲 CHAOS BEGINS! Loss: %.4f! LET'S GOOOOO!", loss),
			fmt.Sprintf("🌪️ *appears from nowhere* Oh, we're training? Loss is %.4f!", loss),
			fmt.Sprintf("🃏 Wild card activated! Starting loss: %.4f!", loss),
		}
		return starts[rand.Intn(len(starts))], true
	}

	if loss < *prevLoss {
		good := []string{
			fmt.Sprintf("🎉 YEET! %.4f → %.4f! *does a backflip*", *prevLoss, loss),
			fmt.Sprintf("🦄 Loss improved! %.4f → %.4f! Is this magic?!", *prevLoss, loss),
			fmt.Sprintf("🚀 TO THE MOON! Well, to lower loss at least: %.4f!", loss),
		}
		return good[rand.Intn(len(good))], true
	}

	if loss > *prevLoss {
		bad := []string{
			fmt.Sprintf("💥 BOOM! Loss exploded: %.4f → %.4f! EXCITING!", *prevLoss, loss),
			fmt.Sprintf("🎢 Wheeeee! Loss went UP to %.4f! What a ride!", loss),
			fmt.Sprintf("🔥 This is fine. Loss: %.4f. Everything is fine. 🔥", loss),
		}
		return bad[rand.Intn(len(bad))], true
	}

	return fmt.Sprintf("🌀 Time is a flat circle. Loss: %.4f. Always has been.", loss), true
}

// Arrogant takes credit for improvements and blames you for the rest.
func Arrogant(loss float64, prevLoss *float64, step int) (string, bool) {
	if prevLoss == nil {
		return fmt.Sprintf("🧐 *adjusts monocle* Initial loss of %.4f? I suppose that's... acceptable for a beginner.", loss), true
	}

	if loss < *prevLoss {
		return fmt.Sprintf("😏 Obviously the loss improved (%.4f → %.4f). You're welcome for my guidance.", *prevLoss, loss), true
	}

	if loss > *prevLoss {
		return fmt.Sprintf("🙄 Loss increased to %.4f? Perhaps you should have listened to my earlier suggestions.", loss), true
	}

	return fmt.Sprintf("😤 No change at %.4f. Clearly, you need my expertise more than ever.", loss), true
}

// Tired just wants the run to be over.
func Tired(loss float64, prevLoss *float64, step int) (string, bool) {
	if prevLoss == nil {
		return fmt.Sprintf("😴 *yawn* Oh, we're starting? Loss is %.4f... wake me when it's over.", loss), true
	}

	if loss < *prevLoss {
		return fmt.Sprintf("😪 Cool, loss went down... %.4f → %.4f... can I go back to sleep now?", *prevLoss, loss), true
	}

	if loss > *prevLoss {
		return fmt.Sprintf("😩 Ugh, loss went up to %.4f. Of course it did. I'm too tired for this.", loss), true
	}

	return fmt.Sprintf("💤 Loss is still %.4f... zzzz...", loss), true
}

// Hype is maximally enthusiastic regardless of what the numbers say.
func Hype(loss float64, prevLoss *float64, step int) (string, bool) {
	if prevLoss == nil {
		return fmt.Sprintf("🔥🔥🔥 LET'S GOOOOOO!!! Initial loss: %.4f! THIS IS GONNA BE AMAZING!!!", loss), true
	}

	if loss < *prevLoss {
		return fmt.Sprintf("🎊🎊🎊 YOOOOO!!! LOSS DROPPED FROM %.4f TO %.4f!!! WE'RE LITERALLY UNSTOPPABLE!!! 💪💪💪", *prevLoss, loss), true
	}

	if loss > *prevLoss {
		return fmt.Sprintf("😤😤😤 OKAY SO LOSS WENT UP TO %.4f BUT THAT'S JUST MAKING THE COMEBACK EVEN MORE EPIC!!! LET'S GO!!!", loss), true
	}

	return fmt.Sprintf("⚡⚡⚡ LOSS HOLDING STEADY AT %.4f!!! THE TENSION IS REAL!!!", loss), true
}

// Academic reports deltas and percent changes in research-paper register.
func Academic(loss float64, prevLoss *float64, step int) (string, bool) {
	if prevLoss == nil {
		return fmt.Sprintf("📊 Initial observation: loss function yields %.4f. Proceeding with gradient descent optimization.", loss), true
	}

	delta := loss - *prevLoss
	var pctChange float64
	if *prevLoss != 0 {
		pctChange = delta / *prevLoss * 100
	}

	if loss < *prevLoss {
		return fmt.Sprintf("📈 Statistically significant improvement observed. Loss decreased from %.4f to %.4f (Δ = %.4f, %.2f%% reduction).",
			*prevLoss, loss, delta, pctChange), true
	}

	if loss > *prevLoss {
		return fmt.Sprintf("📉 Note: Loss increased from %.4f to %.4f (Δ = %.4f, %.2f%% increase). Further investigation may be warranted.",
			*prevLoss, loss, delta, pctChange), true
	}

	return fmt.Sprintf("📋 No statistically significant change detected. Loss remains at %.4f. Null hypothesis cannot be rejected.", loss), true
}

// Pirate narrates the voyage. Arrr.
func Pirate(loss float64, prevLoss *float64, step int) (string, bool) {
	if prevLoss == nil {
		return fmt.Sprintf("🏴‍☠️ Ahoy! We be settin' sail! Initial loss be %.4f, matey!", loss), true
	}

	if loss < *prevLoss {
		return fmt.Sprintf("⚓ Shiver me timbers! Loss dropped from %.4f to %.4f! That be treasure, arr!", *prevLoss, loss), true
	}

	if loss > *prevLoss {
		return fmt.Sprintf("☠️ Blimey! Loss went up to %.4f! We be sailin' into rough waters, ye scallywag!", loss), true
	}

	return fmt.Sprintf("🦜 The seas be calm, loss steady at %.4f. Onwards, me hearties!", loss), true
}

// Zen finds peace in every trend.
func Zen(loss float64, prevLoss *float64, step int) (string, bool) {
	if prevLoss == nil {
		return fmt.Sprintf("🧘 The journey of a thousand gradients begins with a single step. Loss: %.4f.", loss), true
	}

	if loss < *prevLoss {
		return fmt.Sprintf("☯️ Like water flowing downhill, the loss descends: %.4f → %.4f. Breathe.", *prevLoss, loss), true
	}

	if loss > *prevLoss {
		return fmt.Sprintf("🍃 The wind sometimes blows against us. Loss: %.4f. This too shall pass.", loss), true
	}

	return fmt.Sprintf("🌸 Stillness. Loss remains at %.4f. Find peace in the plateau.", loss), true
}
