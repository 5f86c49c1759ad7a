package page

import "time"

// Rule attaches an animation to elements carrying a class.
type Rule struct {
	Class     string
	Animation Animation
}

// Stylesheet holds the static styling: variable defaults and class rules.
type Stylesheet struct {
	Vars  map[string]string
	Rules []Rule
}

// PressAnimation plays on the animate control while it carries
// ClassAnimateButton.
var PressAnimation = Animation{
	Name:     "pulse",
	Duration: 500 * time.Millisecond,
	Easing:   EaseInOut,
}

// DefaultStylesheet declares the default accent colors and the press rule.
func DefaultStylesheet() Stylesheet {
	return Stylesheet{
		Vars: map[string]string{
			VarPrimaryColor:   DefaultPrimaryColor,
			VarSecondaryColor: DefaultSecondaryColor,
		},
		Rules: []Rule{
			{Class: ClassAnimateButton, Animation: PressAnimation},
		},
	}
}

// animationFor returns the animation of the last matching rule, the way a
// later rule wins in a cascade.
func (s Stylesheet) animationFor(classes []string) Animation {
	result := None
	for _, r := range s.Rules {
		for _, c := range classes {
			if c == r.Class {
				result = r.Animation
			}
		}
	}
	return result
}
