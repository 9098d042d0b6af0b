// README: Vehicle telemetry simulator. Feeds the instrument cluster with
// plausible readings: speed eases toward a randomly re-rolled target, RPM
// follows speed with jitter, engine temp hovers at operating range and fuel
// drains slowly. Readings broadcast as JSON frames on the telemetry channel.
package vehicle

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"math/rand"
	"sync"
	"time"
)

const (
	tickInterval = 100 * time.Millisecond
	fuelInterval = time.Second

	maxTargetSpeed = 130
	easingFactor   = 0.1

	idleRPM      = 800
	rpmPerKmh    = 30
	rpmJitter    = 200
	baseTempC    = 80
	tempJitterC  = 10
	startFuelPct = 75
	fuelDrainPct = 0.01
	kmPerFuelPct = 6
)

// Telemetry is one instrument-cluster frame.
type Telemetry struct {
	SpeedKmh   int     `json:"speedKmh"`
	RPM        int     `json:"rpm"`
	EngineTemp int     `json:"engineTempC"`
	FuelPct    float64 `json:"fuelPct"`
	RangeKm    int     `json:"rangeKm"`
}

// Broadcaster delivers a frame to every attached cluster pane.
type Broadcaster interface {
	Broadcast(channel string, data []byte)
}

const Channel = "telemetry"

type Simulator struct {
	mu          sync.Mutex
	speed       float64
	targetSpeed float64
	fuel        float64

	rng *rand.Rand
	hub Broadcaster
}

func NewSimulator(hub Broadcaster) *Simulator {
	return &Simulator{
		fuel: startFuelPct,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		hub:  hub,
	}
}

// Run drives the simulation until the context ends.
func (s *Simulator) Run(ctx context.Context) {
	log.Printf("vehicle simulator started")
	speedTicker := time.NewTicker(tickInterval)
	fuelTicker := time.NewTicker(fuelInterval)
	defer speedTicker.Stop()
	defer fuelTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-speedTicker.C:
			s.tick()
			s.publish()
		case <-fuelTicker.C:
			s.drainFuel()
		}
	}
}

// tick advances the speed simulation one step. Roughly every tenth tick the
// target speed re-rolls; the actual speed eases toward it.
func (s *Simulator) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rng.Float64() > 0.9 {
		s.targetSpeed = math.Floor(s.rng.Float64() * maxTargetSpeed)
	}
	s.speed = ease(s.speed, s.targetSpeed)
}

func (s *Simulator) drainFuel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fuel = math.Max(0, s.fuel-fuelDrainPct)
}

// Snapshot derives one telemetry frame from the current simulation state.
func (s *Simulator) Snapshot() Telemetry {
	s.mu.Lock()
	defer s.mu.Unlock()
	speed := int(s.speed)
	return Telemetry{
		SpeedKmh:   speed,
		RPM:        idleRPM + speed*rpmPerKmh + int(s.rng.Float64()*rpmJitter),
		EngineTemp: baseTempC + int(s.rng.Float64()*tempJitterC),
		FuelPct:    s.fuel,
		RangeKm:    int(s.fuel * kmPerFuelPct),
	}
}

func (s *Simulator) publish() {
	if s.hub == nil {
		return
	}
	frame := s.Snapshot()
	data, err := json.Marshal(frame)
	if err != nil {
		log.Printf("vehicle: marshal telemetry: %v", err)
		return
	}
	s.hub.Broadcast(Channel, data)
}

// ease moves current one smoothing step toward target.
func ease(current, target float64) float64 {
	return current + (target-current)*easingFactor
}
