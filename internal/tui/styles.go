package tui

import (
	"strings"

	"github.com/MKhiriev/go-threat-cache/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	safeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	dangerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func renderVerdict(r *checkResult) string {
	if r.err != nil {
		return errorStyle.Render("error: " + r.err.Error())
	}
	if len(r.matches) == 0 {
		return safeStyle.Render("SAFE") + faintStyle.Render("  "+r.input)
	}
	return dangerStyle.Render("THREAT "+categoryNames(r.matches)) + faintStyle.Render("  "+r.input)
}

// verdictText is the plain-text form of a verdict used for clipboard export.
func verdictText(r *checkResult) string {
	if r.err != nil {
		return r.input + ": error: " + r.err.Error()
	}
	if len(r.matches) == 0 {
		return r.input + ": SAFE"
	}
	return r.input + ": THREAT " + categoryNames(r.matches)
}

func renderBuildInfo(info models.AppBuildInfo) string {
	var b strings.Builder
	b.WriteString("version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\ndate:    ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\ncommit:  ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	return faintStyle.Render(b.String())
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

func categoryNames(cats []models.Category) string {
	names := make([]string, 0, len(cats))
	for _, cat := range cats {
		names = append(names, cat.String())
	}
	return strings.Join(names, ",")
}
