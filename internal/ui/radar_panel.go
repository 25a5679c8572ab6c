package ui

// RenderRadarPanel wraps radar content with a styled border. The border
// turns red while any critical contact is on screen.
// The actual radar rendering is done externally to avoid import cycles.
func RenderRadarPanel(width, height int, title, radarContent, legend string, alert bool) string {
	content := StylePanelTitle.Render(title) + "\n" + radarContent + "\n" + legend
	sty := StylePanelBorder
	if alert {
		sty = StylePanelAlert
	}
	return sty.Width(width - 2).Height(height - 2).Render(content)
}
