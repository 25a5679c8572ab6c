package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vajra.klederson.com/internal/config"
	"vajra.klederson.com/internal/tactical"
)

// StatusLine carries the app-level flags the snapshot does not hold.
type StatusLine struct {
	ConfirmArm bool // waiting for y/n before arming the dead-man switch
	Wiped      bool // the dead-man switch has fired this session
	SweepDeg   float64
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, s tactical.State, st StatusLine) string {
	remaining, armed := s.DeadMan.Countdown()
	var content string
	switch {
	case st.ConfirmArm:
		content = StyleConfirm.Render(fmt.Sprintf(" ARM DEAD-MAN SWITCH (%ds)? [Y]es / [N]o ", config.DeadManSeconds))
	case armed:
		content = StyleConfirm.Render(fmt.Sprintf(" DEAD-MAN %02ds - [C] to cancel ", remaining))
	case st.Wiped:
		content = StyleCritical.Render("[DATA WIPED]")
	default:
		content = signalBadge(s)
	}

	c := s.Coordinates
	info := fmt.Sprintf("  %.4f,%.4f  ALT %.0fm  HDG %03.0f  UAS %d/%d  SHOT %d  Sweep %03d",
		c.Lat, c.Lng, c.Alt, c.Heading,
		len(s.CriticalAlerts()), len(s.ActiveAlerts()),
		len(s.ActiveGunfire(config.GunfireDialTTL)),
		int(st.SweepDeg))
	content += StyleStatusBar.Render(info)

	gap := width - 2 - lipgloss.Width(content) // bar padding
	if gap < 0 {
		gap = 0
	}
	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}

func signalBadge(s tactical.State) string {
	switch {
	case s.IsJammed:
		secs := int(s.JamClearsAt.Sub(s.Now).Seconds() + 0.999)
		return StyleCritical.Render(fmt.Sprintf("[JAMMED %ds] %s", secs, s.Navigation()))
	case s.SignalStatus == tactical.SignalVBN:
		return StyleWarning.Render("[" + s.SignalStatus.String() + "]")
	default:
		return StyleNominal.Render("[" + s.SignalStatus.String() + "]")
	}
}
