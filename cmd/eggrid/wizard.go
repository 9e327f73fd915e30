package main

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/eggrid/eggrid/pkg/egg"
)

// wizardAnswers collects raw form input. Numeric fields stay strings so
// empty means "engine default"; buildOptions does the parsing.
type wizardAnswers struct {
	Algorithm   string
	FlowColumns string
	DeadZone    string
	GripSize    string
	CameraEdge  string
	CameraStep  string
	Disabled    []string
	Breakpoints []wizardBreakpoint
}

// wizardBreakpoint is one max-width to column-count mapping.
type wizardBreakpoint struct {
	MaxWidth string
	Columns  string
}

// runWizard walks through the engine options interactively and returns
// them marshalled as YAML.
func runWizard() ([]byte, error) {
	var a wizardAnswers

	if err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Layout algorithm").
			Options(
				huh.NewOption("Push displaced items out of the way", egg.AlgorithmPush),
				huh.NewOption("Reorder the sequence around the drop cell", egg.AlgorithmReorder),
				huh.NewOption("None, the host handles layout itself", egg.AlgorithmNone),
			).
			Value(&a.Algorithm),
		huh.NewMultiSelect[string]().
			Title("Disable modules (all are on by default)").
			Options(
				huh.NewOption("pointer", "pointer"),
				huh.NewOption("keyboard", "keyboard"),
				huh.NewOption("accessibility", "accessibility"),
				huh.NewOption("resize", "resize"),
				huh.NewOption("camera", "camera"),
				huh.NewOption("placeholder", "placeholder"),
			).
			Value(&a.Disabled),
	)).Run(); err != nil {
		return nil, err
	}

	if err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Drag dead zone in cells (empty = default)").Value(&a.DeadZone).Validate(validateOptionalNumber),
		huh.NewInput().Title("Resize grip size in cells (empty = default)").Value(&a.GripSize).Validate(validateOptionalNumber),
		huh.NewInput().Title("Camera edge distance in cells (empty = default)").Value(&a.CameraEdge).Validate(validateOptionalNumber),
		huh.NewInput().Title("Camera step in cells (empty = default)").Value(&a.CameraStep).Validate(validateOptionalNumber),
		huh.NewInput().Title("Flow column override (empty = from the grid)").Value(&a.FlowColumns).Validate(validateOptionalPositiveInt),
	)).Run(); err != nil {
		return nil, err
	}

	for {
		var more bool
		if err := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().Title("Add a responsive breakpoint?").Value(&more),
		)).Run(); err != nil {
			return nil, err
		}
		if !more {
			break
		}

		var bp wizardBreakpoint
		if err := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Max container width").Value(&bp.MaxWidth).Validate(validatePositiveNumber),
			huh.NewInput().Title("Columns at that width").Value(&bp.Columns).Validate(validatePositiveInt),
		)).Run(); err != nil {
			return nil, err
		}

		a.Breakpoints = append(a.Breakpoints, bp)
	}

	opts, err := buildOptions(a)
	if err != nil {
		return nil, err
	}

	return marshalOptions(opts)
}

// buildOptions turns raw answers into validated engine options.
func buildOptions(a wizardAnswers) (egg.Options, error) {
	var opts egg.Options

	opts.Algorithm = a.Algorithm
	opts.Pointer.Disabled = slices.Contains(a.Disabled, "pointer")
	opts.Keyboard.Disabled = slices.Contains(a.Disabled, "keyboard")
	opts.Accessibility.Disabled = slices.Contains(a.Disabled, "accessibility")
	opts.Resize.Disabled = slices.Contains(a.Disabled, "resize")
	opts.Camera.Disabled = slices.Contains(a.Disabled, "camera")
	opts.Placeholder.Disabled = slices.Contains(a.Disabled, "placeholder")

	opts.Pointer.DragDeadZone, _ = strconv.ParseFloat(orZero(a.DeadZone), 64)
	opts.Resize.GripSize, _ = strconv.ParseFloat(orZero(a.GripSize), 64)
	opts.Camera.Edge, _ = strconv.ParseFloat(orZero(a.CameraEdge), 64)
	opts.Camera.Step, _ = strconv.ParseFloat(orZero(a.CameraStep), 64)

	if a.FlowColumns != "" {
		opts.AlgorithmOptions.Columns, _ = strconv.Atoi(a.FlowColumns)
	}

	for _, bp := range a.Breakpoints {
		maxWidth, _ := strconv.ParseFloat(bp.MaxWidth, 64)
		columns, _ := strconv.Atoi(bp.Columns)
		opts.Responsive.Breakpoints = append(opts.Responsive.Breakpoints, egg.Breakpoint{
			MaxWidth: maxWidth,
			Columns:  columns,
		})
	}

	if err := opts.Validate(); err != nil {
		return egg.Options{}, err
	}

	return opts, nil
}

// marshalOptions renders options as a YAML document with a short header.
func marshalOptions(opts egg.Options) ([]byte, error) {
	data, err := yaml.Marshal(opts)
	if err != nil {
		return nil, err
	}

	header := "# Engine options written by eggrid init.\n# Values of 0 or \"\" mean the engine default.\n"

	return append([]byte(header), data...), nil
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

func validateOptionalNumber(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || n < 0 {
		return fmt.Errorf("must be a non-negative number")
	}

	return nil
}

func validatePositiveNumber(s string) error {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a positive number")
	}

	return nil
}

func validateOptionalPositiveInt(s string) error {
	if s == "" {
		return nil
	}

	return validatePositiveInt(s)
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a positive integer")
	}

	return nil
}
