package httpserver

// indexHTML is the composer page. Charts arrive as inline SVG over the
// WebSocket feed; slider input is sent as-is and collapsed server-side.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>spectra</title>
<style>
  body { background: #0d1117; color: #c9d1d9; font-family: monospace; margin: 0; padding: 1rem; }
  h1 { font-size: 1.1rem; color: #58a6ff; }
  .chart { margin-bottom: 0.75rem; }
  .signal { display: flex; gap: 0.75rem; align-items: center; padding: 0.4rem 0; border-bottom: 1px solid #21262d; }
  .signal select, .signal input[type=range] { background: #161b22; color: #c9d1d9; }
  button { background: #21262d; color: #c9d1d9; border: 1px solid #30363d; cursor: pointer; }
  #stats { color: #8b949e; font-size: 0.8rem; margin-top: 0.75rem; }
</style>
</head>
<body>
<h1>spectra &mdash; {{.BufferSize}} samples @ {{.SampleRate}} Hz</h1>
<div id="waveform" class="chart"></div>
<div id="spectrum" class="chart"></div>
<div id="frequency" class="chart"></div>
<button id="add">add signal</button>
<div id="signals"></div>
<div id="stats"></div>
<script>
const nyquist = {{.Nyquist}};
const kinds = ["sine", "triangle", "saw", "square", "noise"];

async function loadCharts() {
  for (const name of ["waveform", "spectrum", "frequency"]) {
    const res = await fetch("/charts/" + name + ".svg");
    document.getElementById(name).innerHTML = await res.text();
  }
}

function row(sig) {
  const div = document.createElement("div");
  div.className = "signal";
  const sel = document.createElement("select");
  for (const k of kinds) {
    const o = document.createElement("option");
    o.value = k; o.textContent = k; o.selected = k === sig.waveform;
    sel.appendChild(o);
  }
  const freq = document.createElement("input");
  freq.type = "range"; freq.min = 1; freq.max = nyquist; freq.step = 1; freq.value = sig.frequency;
  const amp = document.createElement("input");
  amp.type = "range"; amp.min = 0; amp.max = 100; amp.step = 0.5; amp.value = sig.amplitude;
  const del = document.createElement("button");
  del.textContent = "remove";
  const send = () => fetch("/api/signals/" + sig.id, {
    method: "PUT",
    headers: { "Content-Type": "application/json" },
    body: JSON.stringify({ waveform: sel.value, frequency: +freq.value, amplitude: +amp.value })
  });
  sel.oninput = send; freq.oninput = send; amp.oninput = send;
  del.onclick = async () => { await fetch("/api/signals/" + sig.id, { method: "DELETE" }); refresh(); };
  div.append(sel, freq, amp, del);
  return div;
}

async function refresh() {
  const res = await fetch("/api/signals");
  const body = await res.json();
  const pane = document.getElementById("signals");
  pane.replaceChildren();
  for (const sig of body.data) pane.appendChild(row(sig));
  loadCharts();
}

async function stats() {
  const res = await fetch("/api/stats");
  const s = (await res.json()).data;
  document.getElementById("stats").textContent =
    "frames " + s.framesRendered + " | avg " + s.avgRenderMillis.toFixed(1) + "ms" +
    " | cpu " + s.cpuPercent.toFixed(1) + "% | ram " + s.ramPercent.toFixed(1) + "%";
}

document.getElementById("add").onclick = async () => {
  await fetch("/api/signals", { method: "POST" });
  refresh();
};

const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
ws.onmessage = (ev) => {
  const frame = JSON.parse(ev.data);
  for (const [name, svg] of Object.entries(frame.charts)) {
    const pane = document.getElementById(name);
    if (pane) pane.innerHTML = svg;
  }
};

refresh();
setInterval(stats, 2000);
</script>
</body>
</html>
`
