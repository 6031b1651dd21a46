package slide

import (
	"fmt"
	"time"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Defaults applied by DefaultConfig.
const (
	DefaultMinScroll         = 0.25
	DefaultFlingVelocity     = 2.0 // px/ms at density 1
	DefaultAnimationDuration = 300 * time.Millisecond
	DefaultCurve             = "out-quad"
)

// Config holds the recognized Layout options. Zero-valued fields are not
// defaults; start from DefaultConfig and override what you need.
type Config struct {
	// InitialOverlayState is the committed state before the first gesture.
	InitialOverlayState State `yaml:"initial_overlay_state"`
	// MinScroll is the fraction of travel, in [0.1, 0.9], that a released
	// drag must cover before the overlay changes state.
	MinScroll float64 `yaml:"min_scroll"`
	// ParallaxFactor, in [0, 1], is how much of the overlay's motion is
	// mirrored onto the content surface.
	ParallaxFactor float64 `yaml:"parallax_factor"`
	// Offset is subtracted from the overlay height to give the travel
	// distance. A negative value extends the travel.
	Offset int `yaml:"offset"`
	// ClipContent hides the part of the content surface covered by the overlay.
	ClipContent bool `yaml:"clip_content"`
	// FlingVelocity is the release speed, in px/ms at density 1, above which
	// an upward drag always hides the overlay.
	FlingVelocity float64 `yaml:"fling_velocity"`
	// Density scales FlingVelocity to device pixels. Resolved once by New.
	Density float64 `yaml:"density"`
	// AnimationDurationMs is the settle animation length in milliseconds.
	AnimationDurationMs int `yaml:"animation_duration_ms"`
	// InterceptTouchEvents claims pointer events that land above the
	// overlay's visible top edge.
	InterceptTouchEvents bool `yaml:"intercept_touch_events"`
	// Curve names the settle easing, see Curves.
	Curve string `yaml:"curve"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		InitialOverlayState: StateHidden,
		MinScroll:           DefaultMinScroll,
		ClipContent:         true,
		FlingVelocity:       DefaultFlingVelocity,
		Density:             1,
		AnimationDurationMs: int(DefaultAnimationDuration / time.Millisecond),
		Curve:               DefaultCurve,
	}
}

// Curves maps configuration names to gween easing functions. "decelerate"
// is an alias for out-quad.
var Curves = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"decelerate":   ease.OutQuad,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"out-expo":     ease.OutExpo,
	"out-back":     ease.OutBack,
	"out-bounce":   ease.OutBounce,
}

// Validate checks every ranged field.
func (c Config) Validate() error {
	if c.InitialOverlayState != StateHidden && c.InitialOverlayState != StateVisible {
		return fmt.Errorf("initial overlay state %d: %w", c.InitialOverlayState, ErrInvalidArgument)
	}
	if err := checkMinScroll(c.MinScroll); err != nil {
		return err
	}
	if err := checkParallax(c.ParallaxFactor); err != nil {
		return err
	}
	if c.FlingVelocity <= 0 {
		return fmt.Errorf("fling velocity %v must be positive: %w", c.FlingVelocity, ErrInvalidArgument)
	}
	if c.Density <= 0 {
		return fmt.Errorf("density %v must be positive: %w", c.Density, ErrInvalidArgument)
	}
	if c.AnimationDurationMs < 0 {
		return fmt.Errorf("animation duration %dms: %w", c.AnimationDurationMs, ErrInvalidArgument)
	}
	if _, ok := Curves[c.Curve]; c.Curve != "" && !ok {
		return fmt.Errorf("unknown curve %q: %w", c.Curve, ErrInvalidArgument)
	}
	return nil
}

// flingThreshold resolves the density-scaled fling velocity in px/ms.
func (c Config) flingThreshold() float64 {
	return c.FlingVelocity * c.Density
}

func (c Config) animationDuration() time.Duration {
	return time.Duration(c.AnimationDurationMs) * time.Millisecond
}

func (c Config) curve() ease.TweenFunc {
	if fn, ok := Curves[c.Curve]; ok {
		return fn
	}
	return ease.OutQuad
}

func checkMinScroll(f float64) error {
	if f < 0.1 || f > 0.9 {
		return fmt.Errorf("min scroll must be in range [0.1, 0.9], found %v: %w", f, ErrInvalidArgument)
	}
	return nil
}

func checkParallax(f float64) error {
	if f < 0 || f > 1 {
		return fmt.Errorf("parallax factor must be in range [0, 1], found %v: %w", f, ErrInvalidArgument)
	}
	return nil
}

// UnmarshalYAML accepts a state name ("hidden", "visible") or its integer value.
func (s *State) UnmarshalYAML(node *yaml.Node) error {
	var n int
	if err := node.Decode(&n); err == nil {
		if n != int(StateHidden) && n != int(StateVisible) {
			return fmt.Errorf("overlay state %d: %w", n, ErrInvalidArgument)
		}
		*s = State(n)
		return nil
	}
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	st, err := ParseState(name)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// MarshalYAML writes the state by name.
func (s State) MarshalYAML() (any, error) {
	return s.String(), nil
}

// LoadConfig parses YAML (or JSON) on top of DefaultConfig and validates the
// result. Omitted keys keep their defaults.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
