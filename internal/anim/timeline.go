package anim

import (
	"fmt"
	"math"
)

// Timeline holds the phase boundaries of the payment flash animation in
// frames. Phases are [0,TypingEnd) typing, [TypingEnd,FadeEnd) logo fade-in,
// [FadeEnd,SettleEnd) settle, [SettleEnd,HoldEnd) hold and [HoldEnd,Total)
// shoot.
type Timeline struct {
	TypingEnd int
	FadeEnd   int
	SettleEnd int
	HoldEnd   int
	Total     int
}

// DefaultTimeline is 100 frames, 5 seconds at 20 fps.
func DefaultTimeline() Timeline {
	return Timeline{TypingEnd: 30, FadeEnd: 50, SettleEnd: 65, HoldEnd: 75, Total: 100}
}

// Validate checks that every phase spans at least one frame.
func (tl Timeline) Validate() error {
	b := []int{0, tl.TypingEnd, tl.FadeEnd, tl.SettleEnd, tl.HoldEnd, tl.Total}
	for i := 1; i < len(b); i++ {
		if b[i] <= b[i-1] {
			return fmt.Errorf("timeline boundaries must increase: %v", b[1:])
		}
	}
	return nil
}

// Wrap reduces frameIndex into [0, Total).
func (tl Timeline) Wrap(frameIndex int) int {
	f := frameIndex % tl.Total
	if f < 0 {
		f += tl.Total
	}
	return f
}

// Phase is one of Typing, FadeIn, Settle, Hold or Shoot.
type Phase interface {
	isPhase()
}

// Typing reveals the request payload. Progress runs 0..1 over the window.
type Typing struct{ Progress float64 }

// FadeIn fades the logo in and types the response.
type FadeIn struct{ Progress float64 }

// Settle shows the full static composition.
type Settle struct{}

// Hold repeats the static composition.
type Hold struct{}

// Shoot moves the logo off canvas. Progress is (frame-HoldEnd)/(Total-HoldEnd).
type Shoot struct{ Progress float64 }

func (Typing) isPhase() {}
func (FadeIn) isPhase() {}
func (Settle) isPhase() {}
func (Hold) isPhase()   {}
func (Shoot) isPhase()  {}

// PhaseAt returns the phase of frameIndex after wrapping.
func (tl Timeline) PhaseAt(frameIndex int) Phase {
	f := tl.Wrap(frameIndex)
	switch {
	case f < tl.TypingEnd:
		return Typing{Progress: windowProgress(f, 0, tl.TypingEnd)}
	case f < tl.FadeEnd:
		return FadeIn{Progress: windowProgress(f, tl.TypingEnd, tl.FadeEnd)}
	case f < tl.SettleEnd:
		return Settle{}
	case f < tl.HoldEnd:
		return Hold{}
	default:
		return Shoot{Progress: float64(f-tl.HoldEnd) / float64(tl.Total-tl.HoldEnd)}
	}
}

// LogoAlpha is the logo opacity at frameIndex.
func (tl Timeline) LogoAlpha(frameIndex int) uint8 {
	switch ph := tl.PhaseAt(frameIndex).(type) {
	case Typing:
		return 0
	case FadeIn:
		return fadeAlpha(ph.Progress)
	default:
		return 0xff
	}
}

// windowProgress is 0 on the first frame of [start,end) and 1 on the last.
func windowProgress(f, start, end int) float64 {
	if end-start <= 1 {
		return 1
	}
	return float64(f-start) / float64(end-start-1)
}

func fadeAlpha(p float64) uint8 {
	return uint8(math.Round(clamp01(p) * 255))
}

// Staggered start offsets for each line of the request and response blocks.
var (
	requestStagger  = []float64{0, 0.25, 0.5, 0.75}
	responseStagger = []float64{0, 0.4, 0.7}
)

// revealCount is the number of characters of an n-rune line shown at window
// progress p when the line starts typing at start.
func revealCount(p, start float64, n int) int {
	frac := 1.0
	if start < 1 {
		frac = clamp01((p - start) / (1 - start))
	}
	c := int(math.Floor(frac * float64(n)))
	if c > n {
		c = n
	}
	return c
}

// revealLines returns the visible prefix of each line at progress p.
func revealLines(lines []string, stagger []float64, p float64) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		runes := []rune(line)
		start := 0.0
		if i < len(stagger) {
			start = stagger[i]
		}
		out[i] = string(runes[:revealCount(p, start, len(runes))])
	}
	return out
}

// Speed is the eased shoot velocity for shoot progress q.
func Speed(q float64) float64 {
	return math.Pow(clamp01(q), 1.5)
}

const (
	shootReach    = 1.8  // canvas widths travelled at full speed
	numeralDelay  = 0.15 // numeral departs this much speed later
	glowThreshold = 0.7
)

// ShootOffsets returns the leftward displacement in pixels of the glyph and
// the numeral at shoot progress q on a canvas width pixels wide.
func ShootOffsets(q float64, width int) (glyph, numeral int) {
	v := Speed(q)
	glyph = int(v * float64(width) * shootReach)
	numeral = int(math.Max(0, v-numeralDelay) * float64(width) * shootReach)
	return glyph, numeral
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
