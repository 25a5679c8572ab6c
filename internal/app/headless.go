package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"vajra.klederson.com/internal/config"
	"vajra.klederson.com/internal/tactical"
)

// RunHeadless drives a started engine from a ticker until ctx is done, then
// stops it and returns the final snapshot.
func RunHeadless(ctx context.Context, engine *tactical.Engine, interval time.Duration, log zerolog.Logger) tactical.State {
	if interval <= 0 {
		interval = time.Second / time.Duration(config.TargetFPS)
	}
	drv := NewDriver(engine, engine.Now())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var lastVersion uint64
	for {
		select {
		case <-ctx.Done():
			engine.Stop()
			return engine.Snapshot()
		case now := <-ticker.C:
			drv.Step(now)
			if log.GetLevel() > zerolog.DebugLevel {
				continue
			}
			s := engine.Snapshot()
			if s.Version == lastVersion {
				continue
			}
			lastVersion = s.Version
			log.Debug().
				Uint64("version", s.Version).
				Stringer("mode", s.SystemMode).
				Float64("hr", s.Vitals.HeartRate).
				Int("drones", len(s.DroneAlerts)).
				Int("shots", len(s.GunfireEvents)).
				Msg("state")
		}
	}
}

// Summary renders a plain-text report of a snapshot.
func Summary(s tactical.State) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s v%s session summary at %s\n", config.AppName, config.AppVersion, s.Now.Format(time.TimeOnly))
	fmt.Fprintf(&sb, "  mode      %s\n", s.SystemMode)
	signal := s.Navigation().String()
	if s.IsJammed {
		signal += " (jammed)"
	}
	fmt.Fprintf(&sb, "  signal    %s\n", signal)
	fmt.Fprintf(&sb, "  vitals    HR %.0f  SpO2 %.0f%%  HRV %.0f  HAPE %.0f%%\n",
		s.Vitals.HeartRate, s.Vitals.SpO2, s.Vitals.HRVStress, s.Vitals.HAPERisk)
	fmt.Fprintf(&sb, "  position  %.4f, %.4f  alt %.0fm  hdg %.0f°\n",
		s.Coordinates.Lat, s.Coordinates.Lng, s.Coordinates.Alt, s.Coordinates.Heading)
	fmt.Fprintf(&sb, "  drones    %d buffered, %d active, %d critical\n",
		len(s.DroneAlerts), len(s.ActiveAlerts()), len(s.CriticalAlerts()))
	fmt.Fprintf(&sb, "  gunfire   %d buffered, %d active\n",
		len(s.GunfireEvents), len(s.ActiveGunfire(config.GunfireDialTTL)))
	sb.WriteString("  log\n")
	for _, e := range s.AILog {
		fmt.Fprintf(&sb, "    %s [%-8s] %s\n", e.Timestamp.Format(time.TimeOnly), e.Severity, e.Message)
	}
	return sb.String()
}
