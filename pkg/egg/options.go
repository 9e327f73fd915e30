package egg

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eggrid/eggrid/pkg/interaction"
	"github.com/eggrid/eggrid/pkg/styles"
)

// Layout algorithm discriminants. The empty string selects push.
const (
	AlgorithmPush    = "push"
	AlgorithmReorder = "reorder"
	AlgorithmNone    = "none"
)

// Options configures Init. The zero value enables every module with
// defaults; set a module's Disabled field to turn it off, set any other
// field to enable it with overrides.
type Options struct {
	Pointer       PointerOptions       `yaml:"pointer"`
	Keyboard      KeyboardOptions      `yaml:"keyboard"`
	Accessibility AccessibilityOptions `yaml:"accessibility"`
	Resize        ResizeOptions        `yaml:"resize"`
	Camera        CameraOptions        `yaml:"camera"`
	Placeholder   PlaceholderOptions   `yaml:"placeholder"`
	Responsive    ResponsiveOptions    `yaml:"responsive"`

	// Algorithm picks the layout algorithm: AlgorithmPush (the default when
	// empty), AlgorithmReorder, or AlgorithmNone for no layout handling.
	// Exactly one algorithm module attaches.
	Algorithm        string           `yaml:"algorithm"`
	AlgorithmOptions AlgorithmOptions `yaml:"algorithm_options"`

	// Layout is the placement ledger handed to the active algorithm and the
	// resize module. Runtime handle, not configuration.
	Layout LayoutModel `yaml:"-"`

	// Machine replaces the default phase tracker.
	Machine interaction.Machine `yaml:"-"`

	// Sheet is a caller-supplied stylesheet target. It is borrowed and never
	// released; when nil, Init acquires one through the target (which must
	// implement SheetHost) and Destroy releases it.
	Sheet styles.Sheet `yaml:"-"`

	// Logger receives engine debug logs. nil discards them.
	Logger *slog.Logger `yaml:"-"`
}

// PointerOptions configures press, drag and release handling.
type PointerOptions struct {
	Disabled bool `yaml:"disabled"`
	// DragDeadZone is the distance in pixels a pressed pointer must travel
	// before a drag starts. 0 means the default.
	DragDeadZone float64 `yaml:"drag_dead_zone"`
}

// KeyboardOptions configures arrow-key navigation.
type KeyboardOptions struct {
	Disabled bool `yaml:"disabled"`
}

// AccessibilityOptions configures the reflected ARIA attributes.
type AccessibilityOptions struct {
	Disabled bool `yaml:"disabled"`
	// Role overrides the role attribute set on the target. Default "grid".
	Role string `yaml:"role"`
}

// ResizeOptions configures the south-east resize grip.
type ResizeOptions struct {
	Disabled bool `yaml:"disabled"`
	// GripSize is the side length in pixels of the grip region in the
	// item's bottom-right corner. 0 means the default.
	GripSize float64 `yaml:"grip_size"`
}

// CameraOptions configures edge auto-scroll during drags.
type CameraOptions struct {
	Disabled bool `yaml:"disabled"`
	// Edge is the distance from a container edge inside which the camera
	// scrolls. 0 means the default.
	Edge float64 `yaml:"edge"`
	// Step is the scroll distance in pixels per step. 0 means the default.
	Step float64 `yaml:"step"`
}

// PlaceholderOptions configures the drop-target style layer.
type PlaceholderOptions struct {
	Disabled bool `yaml:"disabled"`
	// Class is the CSS class the placeholder rule addresses. Default
	// "egg-placeholder".
	Class string `yaml:"class"`
}

// ResponsiveOptions configures breakpoint-driven column counts. The module
// attaches only when at least one breakpoint is given.
type ResponsiveOptions struct {
	Disabled    bool         `yaml:"disabled"`
	Breakpoints []Breakpoint `yaml:"breakpoints"`
}

// Breakpoint maps a maximum container width to a column count. Breakpoints
// match in ascending MaxWidth order; the first whose MaxWidth covers the
// current width wins.
type Breakpoint struct {
	MaxWidth float64 `yaml:"max_width"`
	Columns  int     `yaml:"columns"`
}

// AlgorithmOptions tunes the active layout algorithm.
type AlgorithmOptions struct {
	// Columns overrides the column count the algorithm flows items into.
	// 0 derives it from the target's resolved column tracks.
	Columns int `yaml:"columns"`
}

// LoadOptions reads Options from a YAML file. Environment variables
// referenced as ${VAR} or $VAR are expanded before parsing, so option files
// can be shared across environments.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("egg: load options: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var opts Options
	if err := yaml.Unmarshal([]byte(expanded), &opts); err != nil {
		return Options{}, fmt.Errorf("egg: parse options: %w", err)
	}

	return opts, nil
}

// Validate checks that the options are internally consistent.
func (o Options) Validate() error {
	switch o.Algorithm {
	case "", AlgorithmPush, AlgorithmReorder, AlgorithmNone:
	default:
		return fmt.Errorf("egg: options: unknown algorithm %q", o.Algorithm)
	}

	if o.Pointer.DragDeadZone < 0 {
		return fmt.Errorf("egg: options: pointer drag_dead_zone must not be negative")
	}
	if o.Resize.GripSize < 0 {
		return fmt.Errorf("egg: options: resize grip_size must not be negative")
	}
	if o.Camera.Edge < 0 || o.Camera.Step < 0 {
		return fmt.Errorf("egg: options: camera edge and step must not be negative")
	}
	if o.AlgorithmOptions.Columns < 0 {
		return fmt.Errorf("egg: options: algorithm columns must not be negative")
	}

	for i, bp := range o.Responsive.Breakpoints {
		if bp.MaxWidth <= 0 {
			return fmt.Errorf("egg: options: breakpoint %d: max_width must be positive", i)
		}
		if bp.Columns < 1 {
			return fmt.Errorf("egg: options: breakpoint %d: columns must be at least 1", i)
		}
	}

	return nil
}
