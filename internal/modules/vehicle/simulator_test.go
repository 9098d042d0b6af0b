package vehicle

import (
	"encoding/json"
	"math"
	"sync"
	"testing"
)

func TestEaseConvergesWithoutOvershoot(t *testing.T) {
	speed := 0.0
	for i := 0; i < 200; i++ {
		next := ease(speed, 100)
		if next < speed {
			t.Fatalf("easing moved away from target at step %d: %v -> %v", i, speed, next)
		}
		if next > 100 {
			t.Fatalf("easing overshot target: %v", next)
		}
		speed = next
	}
	if math.Abs(speed-100) > 1 {
		t.Errorf("speed after 200 steps = %v, want near 100", speed)
	}

	// Deceleration works the same way.
	for i := 0; i < 200; i++ {
		speed = ease(speed, 0)
	}
	if speed > 1 {
		t.Errorf("speed after braking = %v, want near 0", speed)
	}
}

func TestSnapshotDerivedReadings(t *testing.T) {
	s := NewSimulator(nil)
	s.speed = 100
	s.fuel = 50

	frame := s.Snapshot()
	if frame.SpeedKmh != 100 {
		t.Errorf("speed = %d", frame.SpeedKmh)
	}
	if frame.RPM < idleRPM+100*rpmPerKmh || frame.RPM >= idleRPM+100*rpmPerKmh+rpmJitter {
		t.Errorf("rpm = %d out of expected band", frame.RPM)
	}
	if frame.EngineTemp < baseTempC || frame.EngineTemp >= baseTempC+tempJitterC {
		t.Errorf("engine temp = %d out of expected band", frame.EngineTemp)
	}
	if frame.RangeKm != 300 {
		t.Errorf("range = %d, want 300", frame.RangeKm)
	}
}

func TestFuelNeverGoesNegative(t *testing.T) {
	s := NewSimulator(nil)
	s.fuel = 0.015
	s.drainFuel()
	s.drainFuel()
	s.drainFuel()
	if got := s.Snapshot().FuelPct; got != 0 {
		t.Errorf("fuel = %v, want clamped at 0", got)
	}
}

type captureHub struct {
	mu     sync.Mutex
	frames [][]byte
	chans  []string
}

func (h *captureHub) Broadcast(channel string, data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.chans = append(h.chans, channel)
	h.frames = append(h.frames, data)
}

func TestPublishBroadcastsJSONFrame(t *testing.T) {
	hub := &captureHub{}
	s := NewSimulator(hub)
	s.publish()

	if len(hub.frames) != 1 || hub.chans[0] != Channel {
		t.Fatalf("broadcasts = %d on %v", len(hub.frames), hub.chans)
	}
	var frame Telemetry
	if err := json.Unmarshal(hub.frames[0], &frame); err != nil {
		t.Fatalf("frame is not valid JSON: %v", err)
	}
	if frame.FuelPct != startFuelPct {
		t.Errorf("initial fuel = %v", frame.FuelPct)
	}
}
