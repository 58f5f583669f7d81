package hxcmd

import (
	"strings"
	"testing"
)

// mustCommand extracts exactly one command from markup.
func mustCommand(t *testing.T, markup string) *Command {
	t.Helper()
	ex, err := Extract(markup)
	if err != nil {
		t.Fatalf("Extract(%q) error = %v", markup, err)
	}
	if len(ex.Commands) != 1 {
		t.Fatalf("Extract(%q) found %d commands, want 1", markup, len(ex.Commands))
	}
	return ex.Commands[0]
}

func TestParseCommand(t *testing.T) {
	cmd := mustCommand(t, `<htmx target="#a" swap="innerHTML" select=".row" trigger="x">pay<b>load</b></htmx>`)

	if got := cmd.Target; !got.Set || got.Value != "#a" {
		t.Errorf("Target = %+v, want set %q", got, "#a")
	}
	if got := cmd.Swap; !got.Set || got.Value != "innerHTML" {
		t.Errorf("Swap = %+v, want set %q", got, "innerHTML")
	}
	if got := cmd.Select; !got.Set || got.Value != ".row" {
		t.Errorf("Select = %+v, want set %q", got, ".row")
	}
	if got := cmd.Trigger; !got.Set || got.Value != "x" {
		t.Errorf("Trigger = %+v, want set %q", got, "x")
	}
	if cmd.Redirect.Set || cmd.Refresh.Set || cmd.Location.Set {
		t.Errorf("unset attributes reported as set: %+v", cmd)
	}
	if cmd.Content != "pay<b>load</b>" {
		t.Errorf("Content = %q, want %q", cmd.Content, "pay<b>load</b>")
	}
	if len(cmd.Unknown) != 0 {
		t.Errorf("Unknown = %v, want empty", cmd.Unknown)
	}
}

func TestParseCommandPresenceVsEmpty(t *testing.T) {
	// A bare refresh attribute is a directive; its absence is not. The
	// record must distinguish "present with empty value" from "absent".
	cmd := mustCommand(t, `<htmx refresh></htmx>`)
	if !cmd.Refresh.Set || cmd.Refresh.Value != "" {
		t.Errorf("Refresh = %+v, want set with empty value", cmd.Refresh)
	}

	cmd = mustCommand(t, `<htmx target="#a"></htmx>`)
	if cmd.Refresh.Set {
		t.Errorf("Refresh reported set on a tag without it")
	}
}

func TestParseCommandUnknownAttrs(t *testing.T) {
	cmd := mustCommand(t, `<htmx target="#a" frobnicate="1" blip="2">x</htmx>`)
	want := []string{"frobnicate", "blip"}
	if len(cmd.Unknown) != len(want) {
		t.Fatalf("Unknown = %v, want %v", cmd.Unknown, want)
	}
	for i, name := range want {
		if cmd.Unknown[i] != name {
			t.Errorf("Unknown[%d] = %q, want %q", i, cmd.Unknown[i], name)
		}
	}
}

func TestAttrOr(t *testing.T) {
	if got := (Attr{}).Or("fallback"); got != "fallback" {
		t.Errorf("unset Attr.Or = %q, want fallback", got)
	}
	if got := (Attr{Value: "v", Set: true}).Or("fallback"); got != "v" {
		t.Errorf("set Attr.Or = %q, want v", got)
	}
	if got := (Attr{Value: "", Set: true}).Or("fallback"); got != "" {
		t.Errorf("empty set Attr.Or = %q, want empty", got)
	}
}

func TestOutline(t *testing.T) {
	cmd := mustCommand(t, `<htmx swap="innerHTML" bogus="1"><div>big payload</div></htmx>`)
	outline := cmd.Outline()

	if !strings.HasPrefix(outline, "<htmx") || !strings.HasSuffix(outline, ">") {
		t.Errorf("Outline = %q, want a single opening tag", outline)
	}
	if !strings.Contains(outline, `swap="innerHTML"`) || !strings.Contains(outline, `bogus="1"`) {
		t.Errorf("Outline = %q, missing attributes", outline)
	}
	if strings.Contains(outline, "payload") {
		t.Errorf("Outline = %q, should not include the payload", outline)
	}
}
