package httpserver_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"nhooyr.io/websocket"

	"github.com/joeydtaylor/spectra/pkg/internal/httpserver"
	"github.com/joeydtaylor/spectra/pkg/internal/mixer"
	"github.com/joeydtaylor/spectra/pkg/internal/types"
)

func newTestServer(t *testing.T) (*httpserver.Server, *httptest.Server) {
	t.Helper()
	m := mixer.NewMixer(types.DefaultAudioConfig())
	s := httpserver.NewServer(m, httpserver.WithDebounceInterval(10*time.Millisecond))
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func decodeData(t *testing.T, r io.Reader, dest interface{}) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(r).Decode(&envelope); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
}

func TestSignalLifecycle(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/signals", "application/json", nil)
	if err != nil {
		t.Fatalf("add signal: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add signal status = %d, want 201", resp.StatusCode)
	}
	var created types.SignalSnapshot
	decodeData(t, resp.Body, &created)
	resp.Body.Close()
	if created.ID == "" {
		t.Fatal("created signal has empty id")
	}
	if created.Kind != "sine" || created.Frequency != 400 || created.Amplitude != 1 {
		t.Fatalf("unexpected defaults: %+v", created)
	}

	body := strings.NewReader(`{"waveform":"square","frequency":880,"amplitude":0.5}`)
	req, _ := http.NewRequest(http.MethodPut, ts.URL+"/api/signals/"+created.ID, body)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("update signal: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("update status = %d, want 202", resp.StatusCode)
	}

	// The commit is debounced; poll until it lands.
	deadline := time.Now().Add(2 * time.Second)
	for {
		resp, err = http.Get(ts.URL + "/api/signals")
		if err != nil {
			t.Fatalf("list signals: %v", err)
		}
		var listed []types.SignalSnapshot
		decodeData(t, resp.Body, &listed)
		resp.Body.Close()
		if len(listed) == 1 && listed[0].Kind == "square" && listed[0].Frequency == 880 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("debounced update never committed, last state: %+v", listed)
		}
		time.Sleep(10 * time.Millisecond)
	}

	req, _ = http.NewRequest(http.MethodDelete, ts.URL+"/api/signals/"+created.ID, nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("remove signal: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("remove status = %d, want 204", resp.StatusCode)
	}

	req, _ = http.NewRequest(http.MethodDelete, ts.URL+"/api/signals/"+created.ID, nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("second remove: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("second remove status = %d, want 404", resp.StatusCode)
	}
}

func TestUpdateValidation(t *testing.T) {
	_, ts := newTestServer(t)

	req, _ := http.NewRequest(http.MethodPut, ts.URL+"/api/signals/nope",
		strings.NewReader(`{"waveform":"sine","frequency":440,"amplitude":1}`))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown id status = %d, want 404", resp.StatusCode)
	}

	req, _ = http.NewRequest(http.MethodPut, ts.URL+"/api/signals/nope",
		strings.NewReader(`{"waveform":"sawtooth","frequency":440,"amplitude":1}`))
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown waveform status = %d, want 400", resp.StatusCode)
	}
}

func TestConfigEndpoint(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/config")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	defer resp.Body.Close()

	var cfg struct {
		BufferSize int     `json:"bufferSize"`
		SampleRate float64 `json:"sampleRate"`
		Nyquist    float64 `json:"nyquist"`
		Bands      int     `json:"bands"`
	}
	decodeData(t, resp.Body, &cfg)
	if cfg.BufferSize != 2048 || cfg.SampleRate != 44100 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Nyquist != 22050 || cfg.Bands != 1024 {
		t.Fatalf("unexpected derived values: %+v", cfg)
	}
}

func TestStatsEndpoint(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/stats")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	defer resp.Body.Close()

	var snap types.MeterSnapshot
	decodeData(t, resp.Body, &snap)
	if snap.FramesRendered != 0 || snap.RenderErrors != 0 {
		t.Fatalf("fresh meter should be zeroed: %+v", snap)
	}
}

func TestChartEndpoint(t *testing.T) {
	_, ts := newTestServer(t)

	if _, err := http.Post(ts.URL+"/api/signals", "application/json", nil); err != nil {
		t.Fatalf("add signal: %v", err)
	}

	resp, err := http.Get(ts.URL + "/charts/waveform.svg")
	if err != nil {
		t.Fatalf("chart: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("chart status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Fatalf("content type = %q", ct)
	}
	doc, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(doc), "<svg") || !strings.Contains(string(doc), "polyline") {
		t.Fatal("response is not a waveform SVG document")
	}
}

func TestChartGzip(t *testing.T) {
	_, ts := newTestServer(t)

	if _, err := http.Post(ts.URL+"/api/signals", "application/json", nil); err != nil {
		t.Fatalf("add signal: %v", err)
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/charts/spectrum.svg", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	resp, err := http.DefaultTransport.RoundTrip(req)
	if err != nil {
		t.Fatalf("chart: %v", err)
	}
	defer resp.Body.Close()
	if enc := resp.Header.Get("Content-Encoding"); enc != "gzip" {
		t.Fatalf("content encoding = %q, want gzip", enc)
	}

	gz, err := gzip.NewReader(resp.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	doc, err := io.ReadAll(gz)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if !strings.Contains(string(doc), "<svg") {
		t.Fatal("decompressed response is not an SVG document")
	}
}

func TestUnknownChart(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/charts/histogram.svg")
	if err != nil {
		t.Fatalf("chart: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown chart status = %d, want 404", resp.StatusCode)
	}
}

func TestSocketReceivesFrame(t *testing.T) {
	_, ts := newTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "done")
	// A frame carries three full SVG documents, well past the 32 KiB
	// default read limit.
	conn.SetReadLimit(1 << 22)

	// The handler registers its subscription after the handshake completes.
	time.Sleep(100 * time.Millisecond)

	if _, err := http.Post(ts.URL+"/api/signals", "application/json", nil); err != nil {
		t.Fatalf("add signal: %v", err)
	}

	_, payload, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("read frame: %v", err)
	}

	var frame struct {
		Signals []types.SignalSnapshot `json:"signals"`
		Charts  map[string]string      `json:"charts"`
	}
	if err := json.Unmarshal(payload, &frame); err != nil {
		t.Fatalf("decoding frame: %v", err)
	}
	if len(frame.Signals) != 1 {
		t.Fatalf("frame carries %d signals, want 1", len(frame.Signals))
	}
	if len(frame.Charts) != 3 {
		t.Fatalf("frame carries %d charts, want 3", len(frame.Charts))
	}
	for name, svg := range frame.Charts {
		if !strings.Contains(svg, "<svg") {
			t.Fatalf("chart %q payload is not an SVG document", name)
		}
	}
}

// buildWav assembles a minimal PCM16 mono file.
func buildWav(t *testing.T, samples []int16, sampleRate uint32) []byte {
	t.Helper()
	var data bytes.Buffer
	for _, s := range samples {
		if err := binary.Write(&data, binary.LittleEndian, s); err != nil {
			t.Fatalf("encoding sample: %v", err)
		}
	}

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+data.Len()))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&buf, binary.LittleEndian, sampleRate)
	binary.Write(&buf, binary.LittleEndian, sampleRate*2)
	binary.Write(&buf, binary.LittleEndian, uint16(2))
	binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(data.Len()))
	buf.Write(data.Bytes())
	return buf.Bytes()
}

func TestWaveformSample(t *testing.T) {
	_, ts := newTestServer(t)

	samples := []int16{0, 8192, 16384, 8192, 0, -8192, -16384, -8192}
	wavBytes := buildWav(t, samples, 8000)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "tone.wav")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	part.Write(wavBytes)
	mw.Close()

	resp, err := http.Post(ts.URL+"/waveform/sample", mw.FormDataContentType(), &body)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upload status = %d, want 200", resp.StatusCode)
	}

	var decoded struct {
		Samples    []float64 `json:"samples"`
		Size       int       `json:"size"`
		Channels   int       `json:"channels"`
		SampleRate int       `json:"samplerate"`
	}
	decodeData(t, resp.Body, &decoded)
	if decoded.Size != len(samples) || len(decoded.Samples) != len(samples) {
		t.Fatalf("size = %d with %d samples, want %d", decoded.Size, len(decoded.Samples), len(samples))
	}
	if decoded.Channels != 1 || decoded.SampleRate != 8000 {
		t.Fatalf("channels = %d rate = %d, want 1 and 8000", decoded.Channels, decoded.SampleRate)
	}
	for i, s := range decoded.Samples {
		if s < -1 || s >= 1 {
			t.Fatalf("sample %d = %v outside normalized range", i, s)
		}
	}
	// Scaling must be symmetric around zero: silence decodes to exactly 0,
	// and positive/negative PCM values keep their sign and magnitude.
	if decoded.Samples[0] != 0 {
		t.Fatalf("first sample = %v, want 0", decoded.Samples[0])
	}
	if decoded.Samples[1] != 0.25 || decoded.Samples[5] != -0.25 {
		t.Fatalf("samples[1] = %v, samples[5] = %v, want 0.25 and -0.25",
			decoded.Samples[1], decoded.Samples[5])
	}
}

func TestWaveformSampleRejectsGarbage(t *testing.T) {
	_, ts := newTestServer(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, _ := mw.CreateFormFile("file", "noise.bin")
	part.Write([]byte("definitely not a riff header"))
	mw.Close()

	resp, err := http.Post(ts.URL+"/waveform/sample", mw.FormDataContentType(), &body)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("garbage upload status = %d, want 422", resp.StatusCode)
	}
}
