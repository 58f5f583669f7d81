package main

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// indexPage renders the demo page: a frame viewport, a progress bar, and the
// htmx SSE wiring that feeds /stream through the server-command extension.
func indexPage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, indexHTML)
		return err
	})
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Server Command Demo</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<script src="https://unpkg.com/htmx.org@1.9.12/dist/ext/sse.js"></script>
<script src="https://unpkg.com/htmx-ext-server-commands@1.0.0"></script>
<style>
body { background: #111; color: #eee; font-family: monospace; display: flex; flex-direction: column; align-items: center; }
#frames { font-size: 10px; line-height: 1; white-space: pre; }
#progress { width: 60ch; height: 6px; background: #333; position: relative; }
#progress::after { content: ""; position: absolute; inset: 0; width: var(--progress, 0%); background: #6c6; }
</style>
</head>
<body hx-ext="sse,server-commands" sse-connect="/stream" sse-swap="message" hx-swap="none">
<h1>Server Command Demo</h1>
<div id="progress"></div>
<div id="progress-text">0.00% / 100%</div>
<pre id="frames"></pre>
</body>
</html>
`
