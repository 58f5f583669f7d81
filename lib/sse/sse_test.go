package sse

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewWriterSetsHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	if _, err := NewWriter(rec); err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "no-cache" {
		t.Errorf("Cache-Control = %q", cc)
	}
}

type noFlush struct {
	http.ResponseWriter
}

func TestNewWriterRequiresFlusher(t *testing.T) {
	_, err := NewWriter(noFlush{httptest.NewRecorder()})
	if !errors.Is(err, ErrStreamingUnsupported) {
		t.Fatalf("NewWriter() error = %v, want ErrStreamingUnsupported", err)
	}
}

func TestWriterFraming(t *testing.T) {
	rec := httptest.NewRecorder()
	w, err := NewWriter(rec)
	if err != nil {
		t.Fatal(err)
	}

	if err := w.Send("a\nb"); err != nil {
		t.Fatal(err)
	}
	if err := w.Event("tick", "x"); err != nil {
		t.Fatal(err)
	}
	if err := w.Comment("keep-alive"); err != nil {
		t.Fatal(err)
	}
	if err := w.Retry(2 * time.Second); err != nil {
		t.Fatal(err)
	}

	want := "data: a\ndata: b\n\n" +
		"event: tick\ndata: x\n\n" +
		": keep-alive\n\n" +
		"retry: 2000\n\n"
	if got := rec.Body.String(); got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
	if !rec.Flushed {
		t.Error("writer did not flush")
	}
}

func TestReaderDecodesStream(t *testing.T) {
	stream := ": hello\n\n" +
		"data: <div>one</div>\n\n" +
		"event: frame\ndata: line1\ndata: line2\n\n" +
		"retry: 1000\n\n" +
		"data:no-space\n\n"
	r := NewReader(strings.NewReader(stream))

	want := []Message{
		{Data: "<div>one</div>"},
		{Event: "frame", Data: "line1\nline2"},
		{Data: "no-space"},
	}
	for i, w := range want {
		msg, err := r.Next()
		if err != nil {
			t.Fatalf("Next() #%d error = %v", i, err)
		}
		if *msg != w {
			t.Errorf("Next() #%d = %+v, want %+v", i, *msg, w)
		}
	}
	if _, err := r.Next(); err != io.EOF {
		t.Fatalf("Next() at end error = %v, want io.EOF", err)
	}
}

func TestReaderFinalEventWithoutBlankLine(t *testing.T) {
	r := NewReader(strings.NewReader("data: tail"))
	msg, err := r.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if msg.Data != "tail" {
		t.Errorf("Data = %q, want %q", msg.Data, "tail")
	}
	if _, err := r.Next(); err != io.EOF {
		t.Fatalf("Next() after tail error = %v, want io.EOF", err)
	}
}

func TestWriterReaderRoundtrip(t *testing.T) {
	rec := httptest.NewRecorder()
	w, err := NewWriter(rec)
	if err != nil {
		t.Fatal(err)
	}
	payload := "<htmx target=\"#frames\" swap=\"textContent\">@@@\n@@@</htmx>"
	if err := w.Send(payload); err != nil {
		t.Fatal(err)
	}

	msg, err := NewReader(rec.Body).Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if msg.Data != payload {
		t.Errorf("Data = %q, want %q", msg.Data, payload)
	}
}
