package hxcmd

import (
	"reflect"
	"testing"
)

func TestDispatchTriggersCommaList(t *testing.T) {
	host := NewTestHost()
	engine := New(host, host, host)

	engine.dispatchTriggers("foo, bar ,baz")

	if got := host.EventNames(); !reflect.DeepEqual(got, []string{"foo", "bar", "baz"}) {
		t.Fatalf("events = %v, want foo bar baz", got)
	}
	for _, rec := range host.Events {
		if rec.Event.Detail != nil {
			t.Errorf("event %q detail = %v, want nil", rec.Event.Name, rec.Event.Detail)
		}
		if rec.Target != host.Root() {
			t.Errorf("event %q dispatched on %v, want root", rec.Event.Name, rec.Target)
		}
	}
}

func TestDispatchTriggersJSON(t *testing.T) {
	host := NewTestHost("#x")
	engine := New(host, host, host)

	engine.dispatchTriggers(`{"foo":{"target":"#x","a":1}}`)

	if len(host.Events) != 1 {
		t.Fatalf("events = %v, want one", host.EventNames())
	}
	rec := host.Events[0]
	if rec.Event.Name != "foo" {
		t.Errorf("event = %q, want foo", rec.Event.Name)
	}
	if elt, ok := rec.Target.(TestElt); !ok || elt.Selector != "#x" {
		t.Errorf("target = %v, want #x", rec.Target)
	}

	detail, ok := rec.Event.Detail.(map[string]any)
	if !ok {
		t.Fatalf("detail = %T, want map", rec.Event.Detail)
	}
	if _, present := detail["target"]; present {
		t.Error("target key must be stripped from the dispatched detail")
	}
	if detail["a"] != float64(1) {
		t.Errorf("detail[a] = %v, want 1", detail["a"])
	}
}

func TestDispatchTriggersTargetFallback(t *testing.T) {
	host := NewTestHost() // #gone does not resolve
	engine := New(host, host, host)

	engine.dispatchTriggers(`{"foo":{"target":"#gone","a":1}}`)

	if len(host.Events) != 1 {
		t.Fatalf("events = %v, want one", host.EventNames())
	}
	rec := host.Events[0]
	if rec.Target != host.Root() {
		t.Errorf("target = %v, want root fallback", rec.Target)
	}
	// Stripped even when resolution failed.
	if _, present := rec.Event.Detail.(map[string]any)["target"]; present {
		t.Error("target key must be stripped on the fallback path too")
	}
}

func TestDispatchTriggersNonObjectDetail(t *testing.T) {
	host := NewTestHost()
	engine := New(host, host, host)

	engine.dispatchTriggers(`{"count":5}`)

	if len(host.Events) != 1 || host.Events[0].Event.Name != "count" {
		t.Fatalf("events = %v", host.EventNames())
	}
	if got := host.Events[0].Event.Detail; got != float64(5) {
		t.Errorf("detail = %v, want 5", got)
	}
}

func TestDispatchTriggersDegradesOnBadJSON(t *testing.T) {
	// Not valid JSON at all: the whole value is a name list. Documented
	// degradation, not an error.
	host := NewTestHost()
	engine := New(host, host, host)

	engine.dispatchTriggers(`{"unterminated`)

	if got := host.EventNames(); !reflect.DeepEqual(got, []string{`{"unterminated`}) {
		t.Fatalf("events = %v", got)
	}
}
