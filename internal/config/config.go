package config

import "time"

const (
	// Radar display
	RadarMaxDistance = 1000.0 // Distance units mapped to the radar edge
	AspectRatio      = 0.5    // Terminal char aspect correction (chars are ~2:1 tall)
	RingCount        = 4      // Number of concentric rings
	SweepSpeedRPM    = 30     // Sweep rotations per minute (1 rotation per 2 seconds)
	SweepTrailDeg    = 60.0   // Sweep trail angle in degrees
	TargetFPS        = 30     // Target frames per second

	// Longest wall-clock gap replayed in one step (suspend, stalled terminal)
	MaxCatchUp = 10 * time.Second

	// Threat display retention (fade only, buffers are never purged by age)
	DroneActiveTTL  = 30 * time.Second
	GunfireRadarTTL = 10 * time.Second
	GunfireDialTTL  = 15 * time.Second

	// Threat tiers
	DroneCriticalDistance = 300 // Drones closer than this are critical

	// Bounded buffers
	MaxDroneAlerts   = 5
	MaxGunfireEvents = 3
	MaxLogEntries    = 10
	HeartRateSamples = 100

	// Mode hysteresis band (BPM)
	HighStressEnterBPM = 140.0 // strictly above enters high-stress
	HighStressExitBPM  = 130.0 // at or below leaves high-stress

	// Dead-man switch
	DeadManSeconds = 30

	// App
	AppName    = "VAJRA-X"
	AppVersion = "1.0"
	EnvPrefix  = "VAJRA"
)
