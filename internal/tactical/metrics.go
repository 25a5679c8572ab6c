package tactical

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "vajra.klederson.com/internal/tactical"

func meter(mp metric.MeterProvider) metric.Meter {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	return mp.Meter(instrumentationName)
}

type instruments struct {
	meter       metric.Meter
	drones      metric.Int64Counter
	shots       metric.Int64Counter
	transitions metric.Int64Counter
	jams        metric.Int64Counter
	wipes       metric.Int64Counter
	heartRate   metric.Float64ObservableGauge

	regMu sync.Mutex
	reg   metric.Registration
}

// newInstruments binds the counters and the heart-rate gauge. The gauge
// reports nothing until observe registers its callback.
func newInstruments(mp metric.MeterProvider) (*instruments, error) {
	in := &instruments{meter: meter(mp)}
	m := in.meter
	var err error

	in.drones, err = m.Int64Counter(
		"tactical.drone.alerts",
		metric.WithDescription("Drone alerts emitted"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating drone counter: %w", err)
	}

	in.shots, err = m.Int64Counter(
		"tactical.gunfire.events",
		metric.WithDescription("Gunfire events triangulated"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating gunfire counter: %w", err)
	}

	in.transitions, err = m.Int64Counter(
		"tactical.mode.transitions",
		metric.WithDescription("System mode changes"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating mode counter: %w", err)
	}

	in.jams, err = m.Int64Counter(
		"tactical.jamming.events",
		metric.WithDescription("Jamming episodes started"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating jamming counter: %w", err)
	}

	in.wipes, err = m.Int64Counter(
		"tactical.deadman.triggers",
		metric.WithDescription("Dead-man switch wipes"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating dead-man counter: %w", err)
	}

	in.heartRate, err = m.Float64ObservableGauge(
		"tactical.vitals.heart_rate",
		metric.WithDescription("Operator heart rate in BPM"),
		metric.WithUnit("{beat}/min"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating heart rate gauge: %w", err)
	}

	return in, nil
}

// observe registers the heart-rate callback against e. It is a no-op while
// a registration is live. Must not be called with e.mu held.
func (in *instruments) observe(e *Engine) error {
	in.regMu.Lock()
	defer in.regMu.Unlock()

	if in.reg != nil {
		return nil
	}
	reg, err := in.meter.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			e.mu.RLock()
			defer e.mu.RUnlock()
			o.ObserveFloat64(in.heartRate, e.state.Vitals.HeartRate)
			return nil
		},
		in.heartRate,
	)
	if err != nil {
		return fmt.Errorf("registering vitals callback: %w", err)
	}
	in.reg = reg
	return nil
}

// release drops the heart-rate callback. Must not be called with e.mu held.
func (in *instruments) release() error {
	in.regMu.Lock()
	defer in.regMu.Unlock()

	if in.reg == nil {
		return nil
	}
	err := in.reg.Unregister()
	in.reg = nil
	if err != nil {
		return fmt.Errorf("unregistering vitals callback: %w", err)
	}
	return nil
}

func (in *instruments) droneAlert(sev Severity) {
	in.drones.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("severity", sev.String())))
}

func (in *instruments) shot() {
	in.shots.Add(context.Background(), 1)
}

func (in *instruments) modeChange(from, to SystemMode) {
	in.transitions.Add(context.Background(), 1,
		metric.WithAttributes(
			attribute.String("from", from.String()),
			attribute.String("to", to.String()),
		))
}

func (in *instruments) jamming() {
	in.jams.Add(context.Background(), 1)
}

func (in *instruments) deadMan() {
	in.wipes.Add(context.Background(), 1)
}
