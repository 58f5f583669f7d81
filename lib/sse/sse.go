// Package sse implements the Server-Sent-Events framing used to deliver
// command fragments: a Writer for streaming handlers and a Reader for
// clients consuming a stream.
package sse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrStreamingUnsupported is returned by NewWriter when the response writer
// cannot flush.
var ErrStreamingUnsupported = errors.New("sse: response writer does not support streaming")

// Writer streams events to an HTTP response. Each event is flushed
// immediately, which is what per-frame animation updates need.
type Writer struct {
	w  io.Writer
	fl http.Flusher
}

// NewWriter prepares w for event streaming: sets the SSE headers and
// verifies the writer can flush.
func NewWriter(w http.ResponseWriter) (*Writer, error) {
	fl, ok := w.(http.Flusher)
	if !ok {
		return nil, ErrStreamingUnsupported
	}
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	return &Writer{w: w, fl: fl}, nil
}

// Send writes one unnamed event. Multi-line data is framed as one data:
// line per input line, so the payload round-trips through Reader intact.
func (w *Writer) Send(data string) error {
	return w.Event("", data)
}

// Event writes one named event.
func (w *Writer) Event(name, data string) error {
	var sb strings.Builder
	if name != "" {
		sb.WriteString("event: " + name + "\n")
	}
	for _, line := range strings.Split(data, "\n") {
		sb.WriteString("data: " + line + "\n")
	}
	sb.WriteString("\n")
	if _, err := io.WriteString(w.w, sb.String()); err != nil {
		return err
	}
	w.fl.Flush()
	return nil
}

// Comment writes a comment line, useful as a keep-alive.
func (w *Writer) Comment(text string) error {
	if _, err := fmt.Fprintf(w.w, ": %s\n\n", text); err != nil {
		return err
	}
	w.fl.Flush()
	return nil
}

// Retry advertises the reconnection delay to the client.
func (w *Writer) Retry(d time.Duration) error {
	if _, err := fmt.Fprintf(w.w, "retry: %d\n\n", d.Milliseconds()); err != nil {
		return err
	}
	w.fl.Flush()
	return nil
}

// Message is one decoded event.
type Message struct {
	Event string
	Data  string
}

// Reader decodes an event stream incrementally.
type Reader struct {
	s *bufio.Scanner
}

// NewReader wraps r for event decoding.
func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	// Animation frames exceed the default token size.
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Reader{s: s}
}

// Next returns the next event, or io.EOF when the stream ends. Comment and
// retry lines are skipped.
func (r *Reader) Next() (*Message, error) {
	var msg Message
	var data []string
	seen := false

	for r.s.Scan() {
		line := r.s.Text()
		switch {
		case line == "":
			if seen {
				msg.Data = strings.Join(data, "\n")
				return &msg, nil
			}
		case strings.HasPrefix(line, ":"):
			// comment
		case strings.HasPrefix(line, "event:"):
			msg.Event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
			seen = true
		case strings.HasPrefix(line, "data:"):
			data = append(data, strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
			seen = true
		}
	}
	if err := r.s.Err(); err != nil {
		return nil, err
	}
	if seen {
		msg.Data = strings.Join(data, "\n")
		return &msg, nil
	}
	return nil, io.EOF
}
