package termgrid

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/eggrid/eggrid/pkg/geom"
	"github.com/eggrid/eggrid/pkg/styles"
)

// Sheet is a host stylesheet. Committing content re-derives the style state
// the host understands and logs a unified diff of the change.
type Sheet struct {
	grid    *Grid
	content string
}

var _ styles.Sheet = (*Sheet)(nil)

func (s *Sheet) Content() string { return s.content }

func (s *Sheet) SetContent(content string) {
	if content != s.content {
		s.logDiff(s.content, content)
	}
	s.content = content
	s.grid.restyle()
}

func (s *Sheet) logDiff(before, after string) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "sheet",
		ToFile:   "sheet",
		Context:  2,
	})
	if err != nil {
		return
	}
	s.grid.log.Debug("stylesheet committed", "diff", diff)
}

// NewSheet hands out a fresh stylesheet attached to the grid.
func (g *Grid) NewSheet() styles.Sheet {
	s := &Sheet{grid: g}
	g.sheets = append(g.sheets, s)
	g.log.Debug("sheet attached", "sheets", len(g.sheets))

	return s
}

// ReleaseSheet detaches sheet; its rules stop applying immediately.
func (g *Grid) ReleaseSheet(sheet styles.Sheet) {
	for i, s := range g.sheets {
		if styles.Sheet(s) == sheet {
			g.sheets = append(g.sheets[:i:i], g.sheets[i+1:]...)
			g.restyle()
			g.log.Debug("sheet released", "sheets", len(g.sheets))
			return
		}
	}
}

var repeatPattern = regexp.MustCompile(`repeat\((\d+),`)

// restyle re-derives the host's style state from every attached sheet. The
// host understands the properties the engine writes: a repeat() column
// count on the grid selector and the placeholder's grid-column/grid-row.
func (g *Grid) restyle() {
	g.styleColumns = 0
	g.hasPlaceholder = false
	g.placeholder = geom.Cell{Column: 1, Row: 1}

	for _, s := range g.sheets {
		if s.content == "" {
			continue
		}
		parsed, err := parser.Parse(s.content)
		if err != nil {
			g.log.Debug("stylesheet parse failed", "error", err)
			continue
		}
		for _, rule := range parsed.Rules {
			if rule.Kind != css.QualifiedRule {
				continue
			}
			g.applyRule(rule)
		}
	}
}

func (g *Grid) applyRule(rule *css.Rule) {
	forGrid := false
	for _, sel := range rule.Selectors {
		if sel == "#"+g.cfg.ID || sel == ".egg-grid" {
			forGrid = true
			break
		}
	}

	for _, d := range rule.Declarations {
		switch d.Property {
		case "grid-template-columns":
			if !forGrid {
				continue
			}
			if m := repeatPattern.FindStringSubmatch(d.Value); m != nil {
				if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
					g.styleColumns = n
				}
			}
		case "grid-column":
			if forGrid {
				continue
			}
			if n, ok := atoiPositive(d.Value); ok {
				g.placeholder.Column = n
				g.hasPlaceholder = true
			}
		case "grid-row":
			if forGrid {
				continue
			}
			if n, ok := atoiPositive(d.Value); ok {
				g.placeholder.Row = n
				g.hasPlaceholder = true
			}
		}
	}
}

func atoiPositive(v string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 1 {
		return 0, false
	}

	return n, true
}
