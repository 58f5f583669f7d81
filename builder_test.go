package hxcmd

import (
	"context"
	"strings"
	"testing"
)

func TestCmdString(t *testing.T) {
	tests := []struct {
		name string
		cmd  *Cmd
		want string
	}{
		{
			name: "update with text payload",
			cmd:  Update("#frames", SwapText, "frame"),
			want: `<htmx target="#frames" swap="textContent">frame</htmx>`,
		},
		{
			name: "text payload is escaped",
			cmd:  Update("#progress-text", SwapText, "50% & rising <ok>"),
			want: `<htmx target="#progress-text" swap="textContent">50% &amp; rising &lt;ok&gt;</htmx>`,
		},
		{
			name: "raw html payload",
			cmd:  UpdateHTML("#progress", SwapOuter, `<div id="progress"></div>`),
			want: `<htmx target="#progress" swap="outerHTML"><div id="progress"></div></htmx>`,
		},
		{
			name: "redirect",
			cmd:  NewCmd().Redirect("/done"),
			want: `<htmx redirect="/done"></htmx>`,
		},
		{
			name: "refresh",
			cmd:  NewCmd().Refresh(),
			want: `<htmx refresh=""></htmx>`,
		},
		{
			name: "bare triggers render as a comma list",
			cmd:  NewCmd().Target("#x").Trigger("a").Trigger("b"),
			want: `<htmx target="#x" trigger="a,b"></htmx>`,
		},
		{
			name: "location with options",
			cmd:  NewCmd().Location("/page/2", map[string]any{"source": "#list"}),
			want: `<htmx location="{&#34;path&#34;:&#34;/page/2&#34;,&#34;source&#34;:&#34;#list&#34;}"></htmx>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBatchString(t *testing.T) {
	b := Batch{
		Update("#a", SwapText, "1"),
		Update("#b", SwapText, "2"),
	}
	want := `<htmx target="#a" swap="textContent">1</htmx>` +
		`<htmx target="#b" swap="textContent">2</htmx>`
	if got := b.String(); got != want {
		t.Errorf("Batch.String() = %q, want %q", got, want)
	}
}

func TestCmdComponent(t *testing.T) {
	var sb strings.Builder
	if err := Update("#a", SwapText, "x").Component().Render(context.Background(), &sb); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if sb.String() != `<htmx target="#a" swap="textContent">x</htmx>` {
		t.Errorf("rendered = %q", sb.String())
	}
}

// TestBuilderEngineRoundtrip feeds builder output straight into the engine:
// what the server emits, the client executes.
func TestBuilderEngineRoundtrip(t *testing.T) {
	host := NewTestHost("#frames", "#toasts")
	engine := New(host, host, host)

	message := Batch{
		Update("#frames", SwapText, "frame <13>"),
		NewCmd().Trigger("toast", map[string]any{"target": "#toasts", "level": "info"}),
	}.String()

	out, task := engine.Transform(message, host.Root())
	if out != "" {
		t.Errorf("sanitized output = %q, want empty", out)
	}
	results, err := task.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	for i, res := range results {
		if res.Outcome != OutcomeDone {
			t.Fatalf("results[%d] = %+v", i, res)
		}
	}

	if len(host.Swaps) != 1 || host.Swaps[0].Content != "frame &lt;13&gt;" {
		t.Fatalf("Swaps = %+v", host.Swaps)
	}

	var toast *EventRecord
	for i := range host.Events {
		if host.Events[i].Event.Name == "toast" {
			toast = &host.Events[i]
		}
	}
	if toast == nil {
		t.Fatal("toast event not dispatched")
	}
	if elt, ok := toast.Target.(TestElt); !ok || elt.Selector != "#toasts" {
		t.Errorf("toast target = %v, want #toasts", toast.Target)
	}
	if detail := toast.Event.Detail.(map[string]any); detail["level"] != "info" {
		t.Errorf("toast detail = %v", detail)
	}
}
