package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/redstack/internal/resource"
)

var (
	planColorGreen  = lipgloss.Color("#22c55e")
	planColorYellow = lipgloss.Color("#eab308")
	planColorBlue   = lipgloss.Color("#3b82f6")
	planColorDim    = lipgloss.Color("#6b7280")
	planColorWhite  = lipgloss.Color("#f9fafb")
)

// planStyles holds the styles used by the summary. The plain set renders
// text unchanged.
type planStyles struct {
	title   lipgloss.Style
	section lipgloss.Style
	dim     lipgloss.Style
	created lipgloss.Style
	warn    lipgloss.Style
}

func newPlanStyles(styled bool) planStyles {
	if !styled {
		plain := lipgloss.NewStyle()
		return planStyles{title: plain, section: plain, dim: plain, created: plain, warn: plain}
	}
	return planStyles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(planColorWhite),
		section: lipgloss.NewStyle().Bold(true).Foreground(planColorBlue),
		dim:     lipgloss.NewStyle().Foreground(planColorDim),
		created: lipgloss.NewStyle().Foreground(planColorGreen),
		warn:    lipgloss.NewStyle().Foreground(planColorYellow),
	}
}

// renderPlanSummary produces the human-readable plan summary.
func renderPlanSummary(s *planSummary, styled bool) string {
	st := newPlanStyles(styled)
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(st.title.Render(fmt.Sprintf("  redstack plan: %s", s.Stack)))
	b.WriteString("\n")
	b.WriteString(st.dim.Render("  " + strings.Repeat("═", 30)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "    Plan ID:       %s\n", s.PlanID)
	fmt.Fprintf(&b, "    Digest:        %s\n", s.Digest)
	fmt.Fprintf(&b, "    Network:       %s\n", s.Network)
	fmt.Fprintf(&b, "    Load balancer: %s\n", s.LoadBalancer)
	fmt.Fprintf(&b, "    Endpoints:     %d\n", len(s.Endpoints))

	renderSection(&b, st, "Resources")
	for _, k := range s.Kinds {
		fmt.Fprintf(&b, "    %-16s %3d\n", k.Kind, k.Count)
	}
	b.WriteString(st.dim.Render("    " + strings.Repeat("─", 20)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "    %-16s %3d ", "Total", s.Total)
	b.WriteString(st.created.Render(fmt.Sprintf("(%d created, %d imported)", s.Provenance[string(resource.Created)], s.Provenance[string(resource.Imported)])))
	b.WriteString("\n")

	if len(s.Imported) > 0 {
		renderSection(&b, st, "Imported references")
		for _, name := range s.Imported {
			fmt.Fprintf(&b, "    - %s\n", name)
		}
	}

	if len(s.Warnings) > 0 {
		renderSection(&b, st, "Warnings")
		for _, w := range s.Warnings {
			b.WriteString(st.warn.Render("    ! " + w))
			b.WriteString("\n")
		}
	}

	renderSection(&b, st, "Order")
	for i, name := range s.Order {
		fmt.Fprintf(&b, "    %2d. %s\n", i+1, name)
	}
	b.WriteString("\n")
	return b.String()
}

func renderSection(b *strings.Builder, st planStyles, title string) {
	b.WriteString("\n")
	b.WriteString(st.section.Render("  " + title))
	b.WriteString("\n")
	b.WriteString(st.dim.Render("  " + strings.Repeat("─", 35)))
	b.WriteString("\n")
}
