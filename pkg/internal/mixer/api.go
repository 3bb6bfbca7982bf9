package mixer

import (
	"github.com/joeydtaylor/spectra/pkg/internal/signal"
	"github.com/joeydtaylor/spectra/pkg/internal/spectrum"
	"github.com/joeydtaylor/spectra/pkg/internal/types"
	"github.com/joeydtaylor/spectra/pkg/internal/utils"
)

// Add appends signals to the mixer in order and broadcasts one SignalAdded
// notification per signal. Nil signals are ignored.
func (m *Mixer) Add(signals ...*signal.Signal) {
	for _, s := range utils.Filter(signals, func(s *signal.Signal) bool { return s != nil }) {
		m.mu.Lock()
		m.signals = append(m.signals, s)
		m.mu.Unlock()
		m.notifySignalAdded(s.Snapshot())
	}
}

// AddDefault appends a default-configured signal (sine, 400 Hz, amplitude 1.0)
// and returns it. This is the control surface's "add signal" action.
func (m *Mixer) AddDefault() *signal.Signal {
	s := signal.NewSignal(m.cfg)
	m.Add(s)
	return s
}

// Remove detaches the signal with the given id and broadcasts SignalRemoved.
func (m *Mixer) Remove(id string) error {
	m.mu.Lock()
	idx := -1
	for i, s := range m.signals {
		if s.ID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		m.mu.Unlock()
		return ErrSignalNotFound
	}
	removed := m.signals[idx]
	m.signals = append(m.signals[:idx], m.signals[idx+1:]...)
	m.mu.Unlock()

	m.notifySignalRemoved(removed.Snapshot())
	return nil
}

// Get returns the signal with the given id.
func (m *Mixer) Get(id string) (*signal.Signal, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.signals {
		if s.ID() == id {
			return s, true
		}
	}
	return nil, false
}

// Len returns the number of signals held.
func (m *Mixer) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.signals)
}

// Snapshots returns the current parameters of every signal in insertion order.
func (m *Mixer) Snapshots() []types.SignalSnapshot {
	m.mu.Lock()
	signals := make([]*signal.Signal, len(m.signals))
	copy(signals, m.signals)
	m.mu.Unlock()

	return utils.Map(signals, (*signal.Signal).Snapshot)
}

// Update applies all three parameters to the signal with the given id atomically
// and broadcasts SignalUpdated when anything actually changed. Attribute edits
// from the control surface flow through here so every mutation shares the same
// broadcast path.
func (m *Mixer) Update(id string, kind types.Waveform, frequency, amplitude float64) error {
	s, ok := m.Get(id)
	if !ok {
		return ErrSignalNotFound
	}
	before := s.Snapshot()
	if !s.Apply(kind, frequency, amplitude) {
		return nil
	}
	m.notifySignalUpdated(before, s.Snapshot())
	return nil
}

// TotalSignal computes the sample-wise sum of every signal's generated waveform,
// in insertion order. Returns ErrEmptyMixer when the mixer holds no signals.
func (m *Mixer) TotalSignal() ([]float64, error) {
	m.mu.Lock()
	signals := make([]*signal.Signal, len(m.signals))
	copy(signals, m.signals)
	m.mu.Unlock()

	if len(signals) == 0 {
		m.notifyAggregateError(ErrEmptyMixer)
		return nil, ErrEmptyMixer
	}

	acc := signals[0].Oscillator()
	acc.Generate()
	for _, s := range signals[1:] {
		if err := acc.AddSignal(s.Oscillator().Generate()); err != nil {
			m.notifyAggregateError(err)
			return nil, err
		}
	}
	return acc.Signal(), nil
}

// Transform sizes a fresh analyzer to the mixer's configuration, feeds it the
// current total signal and returns the result. The analyzer is ephemeral,
// constructed per call exactly like the oscillators feeding it.
func (m *Mixer) Transform() (*spectrum.Transform, error) {
	total, err := m.TotalSignal()
	if err != nil {
		return nil, err
	}
	analyzer, err := spectrum.NewAnalyzer(m.cfg, spectrum.WithWindow(m.window))
	if err != nil {
		m.notifyAggregateError(err)
		return nil, err
	}
	tr, err := analyzer.Forward(total)
	if err != nil {
		m.notifyAggregateError(err)
		return nil, err
	}
	return tr, nil
}
