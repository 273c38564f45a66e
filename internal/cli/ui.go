package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/pinboard"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - ids
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings, escaped boxes
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - names
	colorDim    = lipgloss.Color("240") // Dim gray - geometry
)

var (
	styleID      = lipgloss.NewStyle().Foreground(colorCyan)
	styleName    = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleEscaped = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+fmt.Sprintf(format, args...))
}

// renderTree draws the item tree with box-drawing guides, one item per line:
//
//	#1 root container 640x480
//	├─ #2 tray container (20,20) 200x160
//	│  ├─ #3 note leaf (10,10) 60x30
//	│  └─ #4 lid container (180,10) 60x30 in #1
//	└─ #5 bin container (400,300) 100x100
//
// Containers indexed under an ancestor other than their parent are marked
// "in #N".
func renderTree(b *pinboard.Board) string {
	var sb strings.Builder
	var walk func(it *pinboard.Item, prefix string, last bool)
	walk = func(it *pinboard.Item, prefix string, last bool) {
		childPrefix := prefix
		if it.Parent() != nil {
			branch := "├─ "
			childPrefix += "│  "
			if last {
				branch = "└─ "
				childPrefix = prefix + "   "
			}
			sb.WriteString(styleDim.Render(prefix + branch))
		}
		sb.WriteString(describe(it))
		sb.WriteByte('\n')

		children := it.Children()
		for i, c := range children {
			walk(c, childPrefix, i == len(children)-1)
		}
	}
	walk(b.Root(), "", true)
	return sb.String()
}

func describe(it *pinboard.Item) string {
	parts := []string{styleID.Render(fmt.Sprintf("#%d", it.ID))}
	if name := elementName(it); name != "" {
		parts = append(parts, styleName.Render(name))
	}
	parts = append(parts, it.Kind.String())
	geom := fmt.Sprintf("%gx%g", it.Width, it.Height)
	if it.Parent() != nil {
		geom = fmt.Sprintf("(%g,%g) %s", it.X, it.Y, geom)
	}
	parts = append(parts, styleDim.Render(geom))
	if c := it.Container(); c != nil && c != it.Parent() {
		parts = append(parts, styleEscaped.Render(fmt.Sprintf("in #%d", c.ID)))
	}
	return strings.Join(parts, " ")
}

func elementName(it *pinboard.Item) string {
	if b, ok := it.Element().(*pinboard.Box); ok {
		return b.Name
	}
	return ""
}
