package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/openkraft/htmlcheck/internal/domain"
)

// ── Warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2).
			Width(68)

	statusColors = map[string]lipgloss.Color{
		domain.StatusPass: success,
		domain.StatusWarn: warning,
		domain.StatusFail: danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReview renders a ReviewResult as a styled terminal string.
func RenderReview(result *domain.ReviewResult) string {
	var b strings.Builder

	status := lipgloss.NewStyle().
		Bold(true).
		Foreground(statusColor(result.Status)).
		Render(strings.ToUpper(result.Status))
	fileLine := titleStyle.Render(result.File) + "  " + dimStyle.Render(string(result.Subcategory))

	b.WriteString(boxStyle.Render(fileLine + "\n" + status))
	b.WriteString("\n\n")

	if len(result.Comments) == 0 {
		b.WriteString("  " + passStyle.Render("No validator errors or warnings.") + "\n")
	} else {
		for _, c := range sortBySeverity(result.Comments) {
			renderComment(&b, c)
		}
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n")
	b.WriteString("  " + renderCounts(result.Counts) + "\n")

	return b.String()
}

func renderComment(b *strings.Builder, c domain.ReviewComment) {
	tag := severityTag(c.Severity)
	if c.SourceLocation != nil {
		pos := fmt.Sprintf("%d:%d", c.SourceLocation.LineFrom1, c.SourceLocation.ColumnFrom1)
		fmt.Fprintf(b, "    %s %s  %s\n", tag, fileStyle.Render(padRight(pos, 8)), c.Detail)
		return
	}
	fmt.Fprintf(b, "    %s %s  %s\n", tag, fileStyle.Render(padRight("-", 8)), c.Detail)
}

func renderCounts(counts domain.ReviewCounts) string {
	parts := []string{
		errorTagStyle.Render(fmt.Sprintf("%d errors", counts.Errors)),
		warnTagStyle.Render(fmt.Sprintf("%d warnings", counts.Warnings)),
	}
	if counts.Ignored > 0 {
		parts = append(parts, dimStyle.Render(fmt.Sprintf("%d ignored", counts.Ignored)))
	}
	return strings.Join(parts, "  ")
}

func severityTag(severity string) string {
	if severity == domain.SeverityError {
		return errorTagStyle.Render("error")
	}
	return warnTagStyle.Render("warn ")
}

// sortBySeverity returns errors before warnings, keeping input order within each.
func sortBySeverity(comments []domain.ReviewComment) []domain.ReviewComment {
	sorted := make([]domain.ReviewComment, len(comments))
	copy(sorted, comments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Severity == domain.SeverityError && sorted[j].Severity != domain.SeverityError
	})
	return sorted
}

func statusColor(status string) lipgloss.Color {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return fg
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RenderHistory formats review history for terminal output.
func RenderHistory(entries []domain.ReviewEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No review history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Review History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}
		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		status := lipgloss.NewStyle().Foreground(statusColor(e.Status)).Render(padRight(e.Status, 4))

		line := fmt.Sprintf("  %s  %s  %s  %s  %s",
			dimStyle.Render(date),
			faintStyle.Render(hash),
			status,
			failStyle.Render(fmt.Sprintf("%dE", e.Errors))+" "+warnTagStyle.Render(fmt.Sprintf("%dW", e.Warnings)),
			fileStyle.Render(e.File),
		)

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
