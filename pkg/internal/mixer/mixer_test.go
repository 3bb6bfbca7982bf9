package mixer_test

import (
	"errors"
	"math"
	"testing"

	"github.com/joeydtaylor/spectra/pkg/internal/mixer"
	"github.com/joeydtaylor/spectra/pkg/internal/sensor"
	"github.com/joeydtaylor/spectra/pkg/internal/signal"
	"github.com/joeydtaylor/spectra/pkg/internal/types"
)

func testConfig() types.AudioConfig {
	return types.AudioConfig{BufferSize: 2048, SampleRate: 44100}
}

func TestTotalSignalEmptyMixer(t *testing.T) {
	m := mixer.NewMixer(testConfig())
	if _, err := m.TotalSignal(); !errors.Is(err, mixer.ErrEmptyMixer) {
		t.Fatalf("expected ErrEmptyMixer, got %v", err)
	}
	if _, err := m.Transform(); !errors.Is(err, mixer.ErrEmptyMixer) {
		t.Fatalf("Transform on empty mixer: expected ErrEmptyMixer, got %v", err)
	}
}

func TestTotalSignalSingleMember(t *testing.T) {
	cfg := testConfig()
	s := signal.NewSignal(cfg)
	m := mixer.NewMixer(cfg, mixer.WithSignal(s))

	total, err := m.TotalSignal()
	if err != nil {
		t.Fatalf("TotalSignal error: %v", err)
	}
	if len(total) != cfg.BufferSize {
		t.Fatalf("total length = %d, want %d", len(total), cfg.BufferSize)
	}

	raw := s.Oscillator().Generate()
	for i := range total {
		if total[i] != raw[i] {
			t.Fatalf("single-member total differs from raw waveform at %d: %v != %v", i, total[i], raw[i])
		}
	}
	for i, v := range total {
		if math.Abs(v) > 1.0 {
			t.Fatalf("sample %d = %v out of [-1,1]", i, v)
		}
	}
}

func TestTotalSignalSumsMembers(t *testing.T) {
	cfg := testConfig()
	single := mixer.NewMixer(cfg, mixer.WithSignal(signal.NewSignal(cfg)))
	double := mixer.NewMixer(cfg, mixer.WithSignal(signal.NewSignal(cfg), signal.NewSignal(cfg)))

	one, err := single.TotalSignal()
	if err != nil {
		t.Fatalf("TotalSignal error: %v", err)
	}
	two, err := double.TotalSignal()
	if err != nil {
		t.Fatalf("TotalSignal error: %v", err)
	}
	for i := range two {
		if math.Abs(two[i]-2*one[i]) > 1e-12 {
			t.Fatalf("two identical sines should sum to exactly 2x at %d: %v vs %v", i, two[i], 2*one[i])
		}
	}
}

func TestTotalSignalOrderIndependent(t *testing.T) {
	cfg := testConfig()
	newPair := func(reverse bool) *mixer.Mixer {
		a := signal.NewSignal(cfg, signal.WithFrequency(400))
		b := signal.NewSignal(cfg, signal.WithWaveform(types.WaveformSquare), signal.WithFrequency(1000), signal.WithAmplitude(0.5))
		if reverse {
			return mixer.NewMixer(cfg, mixer.WithSignal(b, a))
		}
		return mixer.NewMixer(cfg, mixer.WithSignal(a, b))
	}

	fwd, err := newPair(false).TotalSignal()
	if err != nil {
		t.Fatalf("TotalSignal error: %v", err)
	}
	rev, err := newPair(true).TotalSignal()
	if err != nil {
		t.Fatalf("TotalSignal error: %v", err)
	}
	for i := range fwd {
		if math.Abs(fwd[i]-rev[i]) > 1e-12 {
			t.Fatalf("summation order changed the result at %d: %v != %v", i, fwd[i], rev[i])
		}
	}
}

func TestTransformSpectrumLength(t *testing.T) {
	cfg := testConfig()
	m := mixer.NewMixer(cfg, mixer.WithSignal(signal.NewSignal(cfg)))
	tr, err := m.Transform()
	if err != nil {
		t.Fatalf("Transform error: %v", err)
	}
	if len(tr.Spectrum) != 1024 {
		t.Fatalf("spectrum length = %d, want 1024", len(tr.Spectrum))
	}
}

func TestAddRemoveBroadcasts(t *testing.T) {
	cfg := testConfig()
	var added, removed []string

	watch := sensor.NewSensor(
		sensor.WithOnSignalAddedFunc(func(c types.ComponentMetadata, snap types.SignalSnapshot) {
			added = append(added, snap.ID)
		}),
		sensor.WithOnSignalRemovedFunc(func(c types.ComponentMetadata, snap types.SignalSnapshot) {
			removed = append(removed, snap.ID)
		}),
	)

	m := mixer.NewMixer(cfg, mixer.WithSensor(watch))
	s := m.AddDefault()
	if len(added) != 1 || added[0] != s.ID() {
		t.Fatalf("expected add broadcast for %s, got %v", s.ID(), added)
	}
	if m.Len() != 1 {
		t.Fatalf("Len = %d, want 1", m.Len())
	}

	if err := m.Remove(s.ID()); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if len(removed) != 1 || removed[0] != s.ID() {
		t.Fatalf("expected remove broadcast for %s, got %v", s.ID(), removed)
	}
	if err := m.Remove("missing"); !errors.Is(err, mixer.ErrSignalNotFound) {
		t.Fatalf("expected ErrSignalNotFound, got %v", err)
	}
}

func TestUpdateBroadcastsOnlyOnChange(t *testing.T) {
	cfg := testConfig()
	updates := 0
	watch := sensor.NewSensor(
		sensor.WithOnSignalUpdatedFunc(func(c types.ComponentMetadata, before, after types.SignalSnapshot) {
			updates++
			if before.Frequency != 400 || after.Frequency != 880 {
				t.Errorf("payload = %v -> %v, want 400 -> 880", before.Frequency, after.Frequency)
			}
		}),
	)

	m := mixer.NewMixer(cfg, mixer.WithSensor(watch))
	s := m.AddDefault()

	if err := m.Update(s.ID(), types.WaveformSine, 880, 1.0); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updates != 1 {
		t.Fatalf("updates = %d, want 1", updates)
	}

	// Identical commit: no broadcast.
	if err := m.Update(s.ID(), types.WaveformSine, 880, 1.0); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updates != 1 {
		t.Fatalf("no-op update broadcast anyway, updates = %d", updates)
	}

	if err := m.Update("missing", types.WaveformSine, 100, 1); !errors.Is(err, mixer.ErrSignalNotFound) {
		t.Fatalf("expected ErrSignalNotFound, got %v", err)
	}
}

func TestSnapshotsInsertionOrder(t *testing.T) {
	cfg := testConfig()
	m := mixer.NewMixer(cfg)
	first := m.AddDefault()
	second := m.AddDefault()

	snaps := m.Snapshots()
	if len(snaps) != 2 {
		t.Fatalf("snapshots = %d, want 2", len(snaps))
	}
	if snaps[0].ID != first.ID() || snaps[1].ID != second.ID() {
		t.Fatal("snapshots not in insertion order")
	}
}

func TestAddIgnoresNilSignals(t *testing.T) {
	cfg := testConfig()
	m := mixer.NewMixer(cfg)
	m.Add(nil, signal.NewSignal(cfg), nil)
	if m.Len() != 1 {
		t.Fatalf("Len = %d, want 1", m.Len())
	}
}
