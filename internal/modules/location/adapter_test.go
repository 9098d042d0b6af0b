package location

import (
	"context"
	"errors"
	"testing"

	"cardash/internal/config"
	"cardash/internal/types"
)

func testLocationConfig() config.LocationConfig {
	return config.LocationConfig{
		FallbackLat:  46.8986701965332,
		FallbackLng:  21.346471786499023,
		FallbackName: "Okány",
		Timezone:     "Europe/Budapest",
	}
}

type fakeReverse struct {
	place string
	err   error
	calls int
}

func (f *fakeReverse) PlaceName(ctx context.Context, coord types.Coordinate) (string, error) {
	f.calls++
	return f.place, f.err
}

func TestCurrentServesFallbackWithoutFix(t *testing.T) {
	a := NewAdapter(testLocationConfig(), nil)

	got := a.Current()
	if got.Lat != 46.8986701965332 || got.Lng != 21.346471786499023 {
		t.Errorf("expected fallback coordinate, got %+v", got)
	}
	snap := a.Snapshot()
	if snap.HasFix {
		t.Error("HasFix must be false before any live reading")
	}
	if snap.Place != "Okány" {
		t.Errorf("expected fallback place, got %q", snap.Place)
	}
}

func TestApplyFirstFixAlwaysAccepted(t *testing.T) {
	rev := &fakeReverse{place: "Szeged"}
	a := NewAdapter(testLocationConfig(), rev)

	fix := types.Coordinate{Lat: 46.2530, Lng: 20.1414}
	if !a.Apply(context.Background(), fix) {
		t.Fatal("first live fix must be accepted")
	}
	snap := a.Snapshot()
	if !snap.HasFix || snap.Coord != fix {
		t.Errorf("state not updated: %+v", snap)
	}
	if snap.Place != "Szeged" {
		t.Errorf("place not refreshed: %q", snap.Place)
	}
}

func TestApplyDampsJitter(t *testing.T) {
	a := NewAdapter(testLocationConfig(), nil)
	base := types.Coordinate{Lat: 46.2530, Lng: 20.1414}
	a.Apply(context.Background(), base)

	// Under ~100 m on both axes: noise.
	if a.Apply(context.Background(), types.Coordinate{Lat: base.Lat + 0.0005, Lng: base.Lng - 0.0008}) {
		t.Error("sub-threshold fix must be rejected")
	}
	if a.Current() != base {
		t.Errorf("coordinate drifted on rejected fix: %+v", a.Current())
	}

	// Over the threshold on one axis: real movement.
	moved := types.Coordinate{Lat: base.Lat + 0.002, Lng: base.Lng}
	if !a.Apply(context.Background(), moved) {
		t.Error("above-threshold fix must be accepted")
	}
	if a.Current() != moved {
		t.Errorf("coordinate not updated: %+v", a.Current())
	}
}

func TestApplyRejectsInvalidCoordinates(t *testing.T) {
	a := NewAdapter(testLocationConfig(), nil)
	if a.Apply(context.Background(), types.Coordinate{Lat: 95, Lng: 0}) {
		t.Error("out-of-range latitude must be rejected")
	}
	if a.Apply(context.Background(), types.Coordinate{Lat: 0, Lng: -181}) {
		t.Error("out-of-range longitude must be rejected")
	}
}

func TestListenersNotifiedOnAcceptedFixOnly(t *testing.T) {
	a := NewAdapter(testLocationConfig(), nil)

	var notified int
	a.OnUpdate(func(State) { notified++ })

	base := types.Coordinate{Lat: 46.2530, Lng: 20.1414}
	a.Apply(context.Background(), base)
	a.Apply(context.Background(), base) // jitter-rejected
	a.Apply(context.Background(), types.Coordinate{Lat: base.Lat + 0.01, Lng: base.Lng})

	if notified != 2 {
		t.Errorf("expected 2 notifications, got %d", notified)
	}
}

func TestReverseFailureKeepsPreviousPlace(t *testing.T) {
	rev := &fakeReverse{err: errors.New("nominatim down")}
	a := NewAdapter(testLocationConfig(), rev)

	a.Apply(context.Background(), types.Coordinate{Lat: 46.2530, Lng: 20.1414})
	if snap := a.Snapshot(); snap.Place != "Okány" {
		t.Errorf("place must survive a reverse-geocode failure, got %q", snap.Place)
	}
	if rev.calls != 1 {
		t.Errorf("expected one reverse lookup, got %d", rev.calls)
	}
}

func TestSetTimezoneIgnoresEmpty(t *testing.T) {
	a := NewAdapter(testLocationConfig(), nil)
	a.SetTimezone("")
	if tz := a.Snapshot().Timezone; tz != "Europe/Budapest" {
		t.Errorf("empty timezone must be ignored, got %q", tz)
	}
	a.SetTimezone("Europe/Vienna")
	if tz := a.Snapshot().Timezone; tz != "Europe/Vienna" {
		t.Errorf("timezone not updated, got %q", tz)
	}
}
