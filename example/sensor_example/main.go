package main

import (
	"fmt"

	"github.com/joeydtaylor/spectra/pkg/builder"
)

// Demonstrates the broadcast chain: every mixer mutation arrives at the sensor
// with an explicit payload describing what changed.
func main() {
	logger := builder.NewLogger(builder.LoggerWithLevel("debug"))

	sensor := builder.NewSensor(
		builder.SensorWithLogger(logger),
		builder.SensorWithOnSignalAddedFunc(func(c builder.ComponentMetadata, s builder.SignalSnapshot) {
			fmt.Printf("added   %s: %s %.0f Hz x%.2f\n", s.ID[:8], s.Kind, s.Frequency, s.Amplitude)
		}),
		builder.SensorWithOnSignalUpdatedFunc(func(c builder.ComponentMetadata, before, after builder.SignalSnapshot) {
			fmt.Printf("updated %s: %s %.0f Hz -> %s %.0f Hz\n",
				after.ID[:8], before.Kind, before.Frequency, after.Kind, after.Frequency)
		}),
		builder.SensorWithOnSignalRemovedFunc(func(c builder.ComponentMetadata, s builder.SignalSnapshot) {
			fmt.Printf("removed %s\n", s.ID[:8])
		}),
	)

	cfg := builder.DefaultAudioConfig()
	mixer := builder.NewMixer(cfg, builder.MixerWithSensor(sensor))

	sig := mixer.AddDefault()
	if err := mixer.Update(sig.ID(), builder.WaveformTriangle, 880, 0.75); err != nil {
		fmt.Printf("update failed: %v\n", err)
	}

	total, err := mixer.TotalSignal()
	if err != nil {
		fmt.Printf("aggregate failed: %v\n", err)
		return
	}
	fmt.Printf("aggregate frame: %d samples\n", len(total))

	if err := mixer.Remove(sig.ID()); err != nil {
		fmt.Printf("remove failed: %v\n", err)
	}
}
