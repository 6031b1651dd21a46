package slide

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig invalid: %v", err)
	}
	if cfg.InitialOverlayState != StateHidden {
		t.Errorf("InitialOverlayState = %v, want hidden", cfg.InitialOverlayState)
	}
	if cfg.animationDuration() != 300*time.Millisecond {
		t.Errorf("animationDuration = %v, want 300ms", cfg.animationDuration())
	}
	if cfg.flingThreshold() != 2 {
		t.Errorf("flingThreshold = %v, want 2", cfg.flingThreshold())
	}
	if !cfg.ClipContent {
		t.Error("ClipContent should default to true")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"state out of range", func(c *Config) { c.InitialOverlayState = 2 }},
		{"min scroll too small", func(c *Config) { c.MinScroll = 0.09 }},
		{"min scroll too large", func(c *Config) { c.MinScroll = 0.91 }},
		{"negative parallax", func(c *Config) { c.ParallaxFactor = -0.5 }},
		{"parallax above one", func(c *Config) { c.ParallaxFactor = 1.5 }},
		{"zero fling velocity", func(c *Config) { c.FlingVelocity = 0 }},
		{"zero density", func(c *Config) { c.Density = 0 }},
		{"negative duration", func(c *Config) { c.AnimationDurationMs = -1 }},
		{"unknown curve", func(c *Config) { c.Curve = "wobble" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Validate() = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestConfigValidateBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinScroll = 0.1
	cfg.ParallaxFactor = 1
	cfg.Curve = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("inclusive bounds rejected: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	data := []byte(`
initial_overlay_state: visible
min_scroll: 0.4
parallax_factor: 0.5
offset: 48
clip_content: false
density: 2
animation_duration_ms: 150
intercept_touch_events: true
curve: out-cubic
`)
	cfg, err := LoadConfig(data)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := Config{
		InitialOverlayState:  StateVisible,
		MinScroll:            0.4,
		ParallaxFactor:       0.5,
		Offset:               48,
		ClipContent:          false,
		FlingVelocity:        DefaultFlingVelocity,
		Density:              2,
		AnimationDurationMs:  150,
		InterceptTouchEvents: true,
		Curve:                "out-cubic",
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("LoadConfig =\n%+v\nwant\n%+v", cfg, want)
	}
	if cfg.flingThreshold() != 4 {
		t.Errorf("flingThreshold = %v, want 4", cfg.flingThreshold())
	}
}

func TestLoadConfigStateForms(t *testing.T) {
	tests := []struct {
		src  string
		want State
	}{
		{"initial_overlay_state: 1", StateVisible},
		{"initial_overlay_state: 0", StateHidden},
		{"initial_overlay_state: gone", StateHidden},
		{"initial_overlay_state: hidden", StateHidden},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			cfg, err := LoadConfig([]byte(tt.src))
			if err != nil {
				t.Fatal(err)
			}
			if cfg.InitialOverlayState != tt.want {
				t.Errorf("state = %v, want %v", cfg.InitialOverlayState, tt.want)
			}
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"bad state name", "initial_overlay_state: sideways"},
		{"bad state number", "initial_overlay_state: 4"},
		{"out of range", "min_scroll: 0.95"},
		{"unknown curve", "curve: zigzag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig([]byte(tt.src)); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("err = %v, want ErrInvalidArgument", err)
			}
		})
	}
	if _, err := LoadConfig([]byte("min_scroll: [")); err == nil {
		t.Error("expected parse error for malformed YAML")
	}
}

func TestStateMarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(struct {
		S State `yaml:"s"`
	}{StateVisible})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "s: visible\n" {
		t.Errorf("marshal = %q", out)
	}
}

func TestConfigCurve(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Curve = "linear"
	if got := cfg.curve()(0.5, 0, 1, 1); got != ease.Linear(0.5, 0, 1, 1) {
		t.Errorf("linear curve at 0.5 = %v", got)
	}
	cfg.Curve = ""
	if got := cfg.curve()(0.5, 0, 1, 1); got != ease.OutQuad(0.5, 0, 1, 1) {
		t.Errorf("empty curve should fall back to out-quad, got %v", got)
	}
}

func TestParseState(t *testing.T) {
	if s, err := ParseState("visible"); err != nil || s != StateVisible {
		t.Errorf("ParseState(visible) = %v, %v", s, err)
	}
	if _, err := ParseState("VISIBLE"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseState is case sensitive, err = %v", err)
	}
	if StateHidden.String() != "hidden" || State(9).String() != "state(9)" {
		t.Errorf("String() = %q, %q", StateHidden.String(), State(9).String())
	}
}
