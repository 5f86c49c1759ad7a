package page

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Phase describes the state of an element animation at a point in time.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDelayed
	PhaseRunning
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseDelayed:
		return "delayed"
	case PhaseRunning:
		return "running"
	case PhaseFinished:
		return "finished"
	default:
		return "idle"
	}
}

// Animation is the animation style property: keyframes name, duration,
// timing function and start delay. The zero value is "none".
type Animation struct {
	Name     string
	Duration time.Duration
	Easing   string
	Delay    time.Duration
}

// None clears any animation.
var None = Animation{}

// IsNone reports whether a is the "none" animation.
func (a Animation) IsNone() bool {
	return a.Name == "" || a.Name == "none"
}

// String renders a in the CSS shorthand form, e.g. "fadeIn 0.6s ease-out 0.1s".
func (a Animation) String() string {
	if a.IsNone() {
		return "none"
	}
	easing := a.Easing
	if easing == "" {
		easing = EaseDefault
	}
	return fmt.Sprintf("%s %s %s %s", a.Name, seconds(a.Duration), easing, seconds(a.Delay))
}

func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}

// Timing function keywords.
const (
	EaseDefault   = "ease"
	EaseIn        = "ease-in"
	EaseOut       = "ease-out"
	EaseInOut     = "ease-in-out"
	EaseLinear    = "linear"
	bezierEpsilon = 1e-6
)

type bezier struct{ x1, y1, x2, y2 float64 }

var timingFunctions = map[string]bezier{
	EaseDefault: {0.25, 0.1, 0.25, 1},
	EaseIn:      {0.42, 0, 1, 1},
	EaseOut:     {0, 0, 0.58, 1},
	EaseInOut:   {0.42, 0, 0.58, 1},
	EaseLinear:  {0, 0, 1, 1},
}

// Ease maps linear progress t in [0,1] through the named timing function.
// Unknown names fall back to "ease".
func Ease(name string, t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	b, ok := timingFunctions[name]
	if !ok {
		b = timingFunctions[EaseDefault]
	}
	if b.x1 == b.y1 && b.x2 == b.y2 {
		return t
	}
	return b.sampleY(b.solveX(t))
}

func (b bezier) sampleX(s float64) float64 { return cubic(b.x1, b.x2, s) }
func (b bezier) sampleY(s float64) float64 { return cubic(b.y1, b.y2, s) }

// cubic evaluates a 1D cubic Bézier with end points 0 and 1.
func cubic(p1, p2, s float64) float64 {
	inv := 1 - s
	return 3*inv*inv*s*p1 + 3*inv*s*s*p2 + s*s*s
}

func (b bezier) slopeX(s float64) float64 {
	inv := 1 - s
	return 3*inv*inv*b.x1 + 6*inv*s*(b.x2-b.x1) + 3*s*s*(1-b.x2)
}

// solveX finds the curve parameter whose x equals x, Newton first and
// bisection when the slope flattens out.
func (b bezier) solveX(x float64) float64 {
	s := x
	for range 8 {
		diff := b.sampleX(s) - x
		if math.Abs(diff) < bezierEpsilon {
			return s
		}
		slope := b.slopeX(s)
		if math.Abs(slope) < bezierEpsilon {
			break
		}
		s -= diff / slope
	}
	lo, hi := 0.0, 1.0
	s = x
	for lo < hi {
		v := b.sampleX(s)
		if math.Abs(v-x) < bezierEpsilon {
			return s
		}
		if x > v {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
		if hi-lo < bezierEpsilon {
			break
		}
	}
	return s
}
