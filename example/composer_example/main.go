package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joeydtaylor/spectra/pkg/builder"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := builder.NewLogger(
		builder.LoggerWithLevel(builder.EnvOr("SPECTRA_LOG_LEVEL", "info")),
	)

	cfg := builder.AudioConfig{
		BufferSize: builder.EnvIntOr("SPECTRA_BUFFER_SIZE", 2048),
		SampleRate: builder.EnvFloatOr("SPECTRA_SAMPLE_RATE", 44100),
	}

	mixer := builder.NewMixer(
		cfg,
		builder.MixerWithLogger(logger),
		builder.MixerWithSignal(
			builder.NewSignal(cfg,
				builder.SignalWithWaveform(builder.WaveformSine),
				builder.SignalWithFrequency(440),
			),
		),
	)

	server := builder.NewHTTPServer(
		mixer,
		builder.HTTPServerWithLogger(logger),
		builder.HTTPServerWithAddress(builder.EnvOr("SPECTRA_ADDRESS", ":8080")),
	)

	if err := server.Serve(ctx); err != nil && err != context.Canceled {
		fmt.Fprintf(os.Stderr, "server exited: %v\n", err)
		os.Exit(1)
	}
}
