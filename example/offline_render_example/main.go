package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joeydtaylor/spectra/pkg/builder"
)

// Renders one frame of each chart to disk without serving HTTP: two sines an
// octave apart plus a square wave, written as standalone SVG documents.
func main() {
	cfg := builder.DefaultAudioConfig()

	mixer := builder.NewMixer(
		cfg,
		builder.MixerWithSignal(
			builder.NewSignal(cfg, builder.SignalWithFrequency(440)),
			builder.NewSignal(cfg, builder.SignalWithFrequency(880), builder.SignalWithAmplitude(0.5)),
			builder.NewSignal(cfg,
				builder.SignalWithWaveform(builder.WaveformSquare),
				builder.SignalWithFrequency(220),
				builder.SignalWithAmplitude(0.25),
			),
		),
	)

	outDir := "charts"
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "creating %s: %v\n", outDir, err)
		os.Exit(1)
	}

	charts := map[string]builder.Chart{
		"waveform.svg":  builder.NewWaveformChart(mixer),
		"spectrum.svg":  builder.NewSpectrumChart(mixer),
		"frequency.svg": builder.NewFrequencyChart(mixer),
	}
	for name, chart := range charts {
		frame, err := chart.Render()
		if err != nil {
			fmt.Fprintf(os.Stderr, "rendering %s: %v\n", name, err)
			os.Exit(1)
		}
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, frame, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "writing %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s (%d bytes)\n", path, len(frame))
	}

	tr, err := mixer.Transform()
	if err != nil {
		fmt.Fprintf(os.Stderr, "transform: %v\n", err)
		os.Exit(1)
	}
	peak, peakBand := 0.0, 0
	for i, m := range tr.Spectrum {
		if m > peak {
			peak, peakBand = m, i
		}
	}
	fmt.Printf("peak band %d (%.1f Hz) magnitude %.3f\n", peakBand, tr.BandFrequency(peakBand), peak)
}
