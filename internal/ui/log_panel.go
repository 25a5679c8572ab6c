package ui

import (
	"fmt"
	"strings"
	"time"

	"vajra.klederson.com/internal/tactical"
)

// RenderLogPanel renders the AI reasoning log, newest first. Entries that
// do not fit are dropped from the bottom.
func RenderLogPanel(entries []tactical.LogEntry, width, height int) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}

	title := StylePanelTitle.Render(fmt.Sprintf("AI LOG [%d]", len(entries)))
	header := []string{title, StyleRule.Render(strings.Repeat("-", innerW))}

	innerH := height - 2
	if innerH < len(header)+1 {
		innerH = len(header) + 1
	}
	space := innerH - len(header)

	var body []string
	if len(entries) == 0 {
		body = append(body, StyleHelp.Render(" Awaiting sensor input"))
	}
	for _, e := range entries {
		if len(body) >= space {
			break
		}
		body = append(body, renderLogEntry(e, innerW))
	}

	all := append(header, body...)
	content := strings.Join(all, "\n")
	return clampLines(StylePanelBorder.Width(width-2).Height(innerH).Render(content), height)
}

func renderLogEntry(e tactical.LogEntry, maxW int) string {
	stamp := e.Timestamp.Format(time.TimeOnly)
	var tag string
	switch e.Severity {
	case tactical.SeverityCritical:
		tag = "!!"
	case tactical.SeverityWarning:
		tag = "! "
	default:
		tag = "  "
	}
	raw := truncRaw(fmt.Sprintf("%s %s %s", stamp, tag, e.Message), maxW)

	switch e.Severity {
	case tactical.SeverityCritical:
		return StyleCritical.Render(raw)
	case tactical.SeverityWarning:
		return StyleWarning.Render(raw)
	default:
		return StyleInfo.Render(raw)
	}
}

// truncRaw pads or truncates a raw string to exactly w runes.
func truncRaw(s string, w int) string {
	r := []rune(s)
	if len(r) > w {
		return string(r[:w])
	}
	if len(r) < w {
		return s + strings.Repeat(" ", w-len(r))
	}
	return s
}
