package httpserver

import (
	"net/http"

	"github.com/mjibson/go-dsp/wav"

	"github.com/joeydtaylor/spectra/pkg/internal/types"
)

// maxUploadBytes bounds a single WAV upload.
const maxUploadBytes = 32 << 20

// waveformSampleResponse is the decoded preview of an uploaded file: one
// analysis frame of normalized mono samples from the middle of the recording.
type waveformSampleResponse struct {
	Samples    []float64 `json:"samples"`
	Size       int       `json:"size"`
	Channels   int       `json:"channels"`
	SampleRate int       `json:"samplerate"`
}

// handleWaveformSample accepts a multipart WAV upload under the "file" field
// and returns the middle frame of the first channel, normalized to [-1, 1).
func (s *Server) handleWaveformSample(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, _, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "missing file upload: "+err.Error())
		return
	}
	defer file.Close()

	decoded, err := wav.New(file)
	if err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, "not a decodable wav file: "+err.Error())
		return
	}

	raw, err := decoded.ReadSamples(decoded.Samples)
	if err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, "wav data unreadable: "+err.Error())
		return
	}

	channels := int(decoded.NumChannels)
	if channels < 1 {
		channels = 1
	}

	// Scale raw PCM around zero ourselves: the library's float conversion
	// shifts into [0, 1), which would put silence at 0.5 instead of 0.
	// Deinterleave the first channel, then cut the frame from the middle of
	// the recording where the material is usually representative.
	var mono []float64
	switch data := raw.(type) {
	case []int16:
		mono = make([]float64, 0, len(data)/channels)
		for i := 0; i < len(data); i += channels {
			mono = append(mono, float64(data[i])/(1<<15))
		}
	case []uint8:
		mono = make([]float64, 0, len(data)/channels)
		for i := 0; i < len(data); i += channels {
			mono = append(mono, (float64(data[i])-128)/128)
		}
	default:
		s.respondError(w, http.StatusUnprocessableEntity, "unsupported wav sample format")
		return
	}

	size := s.mixer.Config().BufferSize
	if len(mono) > size {
		start := (len(mono) - size) / 2
		mono = mono[start : start+size]
	}

	s.NotifyLoggers(
		types.InfoLevel,
		"Waveform sample decoded",
		"component", s.componentMetadata,
		"event", "HandleWaveformSample",
		"samples", len(mono),
		"channels", channels,
		"sample_rate", decoded.SampleRate,
	)

	s.respondJSON(w, http.StatusOK, waveformSampleResponse{
		Samples:    mono,
		Size:       len(mono),
		Channels:   channels,
		SampleRate: int(decoded.SampleRate),
	})
}
