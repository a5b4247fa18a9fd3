// Package site renders the catalog, city and not-found pages and builds the static site.
package site

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Variant is a button appearance. The set is closed; styling is decided here
// and nowhere else.
type Variant int

const (
	Default Variant = iota
	Outline
	Secondary
	Ghost
	Link
	Destructive
)

var variantNames = [...]string{
	Default:     "default",
	Outline:     "outline",
	Secondary:   "secondary",
	Ghost:       "ghost",
	Link:        "link",
	Destructive: "destructive",
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// ParseVariant returns the variant named s, case-insensitively.
func ParseVariant(s string) (Variant, error) {
	for i, name := range variantNames {
		if strings.EqualFold(s, name) {
			return Variant(i), nil
		}
	}
	return Default, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Class returns the CSS classes for the variant.
func (v Variant) Class() string {
	return "btn btn-" + v.String()
}

var variantStyles = map[Variant]lipgloss.Style{
	Default: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color("16")).
		Padding(0, 1),
	Outline: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 1),
	Secondary: lipgloss.NewStyle().
		Foreground(lipgloss.Color("16")).
		Background(lipgloss.Color("252")).
		Padding(0, 1),
	Ghost:       lipgloss.NewStyle().Faint(true),
	Link:        lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("33")),
	Destructive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")), // red
}

// Style returns the terminal style for the variant. Unknown variants render as Default.
func (v Variant) Style() lipgloss.Style {
	if s, ok := variantStyles[v]; ok {
		return s
	}
	return variantStyles[Default]
}

// Render draws label in the variant's terminal style.
func (v Variant) Render(label string) string {
	return v.Style().Render(label)
}
