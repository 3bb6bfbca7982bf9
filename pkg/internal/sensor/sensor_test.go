package sensor_test

import (
	"errors"
	"testing"

	"github.com/joeydtaylor/spectra/pkg/internal/sensor"
	"github.com/joeydtaylor/spectra/pkg/internal/types"
)

func TestSensorInvokesRegisteredCallbacks(t *testing.T) {
	var added, removed, updated, rendered, failed int

	s := sensor.NewSensor(
		sensor.WithOnSignalAddedFunc(func(c types.ComponentMetadata, snap types.SignalSnapshot) {
			added++
		}),
		sensor.WithOnSignalRemovedFunc(func(c types.ComponentMetadata, snap types.SignalSnapshot) {
			removed++
		}),
		sensor.WithOnSignalUpdatedFunc(func(c types.ComponentMetadata, before, after types.SignalSnapshot) {
			updated++
		}),
		sensor.WithOnFrameRenderedFunc(func(c types.ComponentMetadata, chart string, bytes int) {
			rendered++
		}),
		sensor.WithOnErrorFunc(func(c types.ComponentMetadata, err error) {
			failed++
		}),
	)

	meta := types.ComponentMetadata{ID: "m1", Type: "MIXER"}
	snap := types.SignalSnapshot{ID: "s1", Kind: "sine", Frequency: 400, Amplitude: 1}

	s.InvokeOnSignalAdded(meta, snap)
	s.InvokeOnSignalRemoved(meta, snap)
	s.InvokeOnSignalUpdated(meta, snap, snap)
	s.InvokeOnFrameRendered(meta, "waveform", 1024)
	s.InvokeOnError(meta, errors.New("boom"))

	if added != 1 || removed != 1 || updated != 1 || rendered != 1 || failed != 1 {
		t.Fatalf("callback counts = %d/%d/%d/%d/%d, want all 1",
			added, removed, updated, rendered, failed)
	}
}

func TestSensorMultipleCallbacksPerEvent(t *testing.T) {
	count := 0
	s := sensor.NewSensor()
	s.RegisterOnSignalAdded(
		func(types.ComponentMetadata, types.SignalSnapshot) { count++ },
		func(types.ComponentMetadata, types.SignalSnapshot) { count++ },
	)
	s.InvokeOnSignalAdded(types.ComponentMetadata{}, types.SignalSnapshot{})
	if count != 2 {
		t.Fatalf("expected both callbacks to run, got %d", count)
	}
}

func TestSensorUpdatePayloadsAreExplicit(t *testing.T) {
	var gotBefore, gotAfter types.SignalSnapshot
	s := sensor.NewSensor(
		sensor.WithOnSignalUpdatedFunc(func(c types.ComponentMetadata, before, after types.SignalSnapshot) {
			gotBefore, gotAfter = before, after
		}),
	)

	before := types.SignalSnapshot{ID: "s1", Frequency: 400}
	after := types.SignalSnapshot{ID: "s1", Frequency: 880}
	s.InvokeOnSignalUpdated(types.ComponentMetadata{}, before, after)

	if gotBefore.Frequency != 400 || gotAfter.Frequency != 880 {
		t.Fatalf("payloads = %+v -> %+v, want 400 -> 880", gotBefore, gotAfter)
	}
}

// A callback that registers more callbacks mid-invoke must not grow the
// in-flight fan-out; the new registration only sees later invocations.
func TestSensorSnapshotIsolatesInFlightInvoke(t *testing.T) {
	count := 0
	s := sensor.NewSensor()
	s.RegisterOnSignalAdded(func(types.ComponentMetadata, types.SignalSnapshot) {
		count++
		s.RegisterOnSignalAdded(func(types.ComponentMetadata, types.SignalSnapshot) { count += 10 })
	})

	s.InvokeOnSignalAdded(types.ComponentMetadata{}, types.SignalSnapshot{})
	if count != 1 {
		t.Fatalf("first invoke ran late registration, count = %d, want 1", count)
	}

	s.InvokeOnSignalAdded(types.ComponentMetadata{}, types.SignalSnapshot{})
	if count != 12 {
		t.Fatalf("second invoke count = %d, want 12", count)
	}
}

func TestSensorMetadata(t *testing.T) {
	s := sensor.NewSensor(sensor.WithComponentMetadata("render-watch", "sensor-1"))
	meta := s.GetComponentMetadata()
	if meta.Name != "render-watch" || meta.ID != "sensor-1" || meta.Type != "SENSOR" {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
}
