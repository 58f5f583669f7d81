package hxcmd

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Extraction is the synchronous half of fragment preprocessing: the
// sanitized markup plus the ordered commands stripped out of it.
type Extraction struct {
	// Sanitized is the fragment with every command tag removed, nested or
	// not. This is what the page should display.
	Sanitized string

	// Commands holds the executable commands - the tags that were direct
	// children of the fragment root - in document order.
	Commands []*Command

	// Nested counts command tags that were discarded because they were
	// nested inside other markup.
	Nested int
}

// Extract scans fragment text for command tags.
//
// Fragments without a command tag pass through untouched - the original
// text is returned byte for byte, with no parse side effects. Otherwise the
// text is parsed, every command tag is removed from the tree, top-level tags
// are parsed into Commands, and the remainder is serialized into Sanitized.
//
// Extract is pure and synchronous; Engine.Transform adds the scheduling.
func Extract(text string) (*Extraction, error) {
	if text == "" || !strings.Contains(text, "<"+TagName) {
		return &Extraction{Sanitized: text}, nil
	}

	root, err := parseFragment(text)
	if err != nil {
		return nil, err
	}

	all := findCommandNodes(root)
	if len(all) == 0 {
		// The substring was a false positive (e.g. inside text); leave
		// the fragment untouched.
		return &Extraction{Sanitized: text}, nil
	}

	// Every command tag leaves the tree before payloads are captured, so a
	// top-level command's content never smuggles a nested tag back in.
	var topLevel []*html.Node
	for _, n := range all {
		if n.Parent == root {
			topLevel = append(topLevel, n)
		}
	}
	for _, n := range all {
		n.Parent.RemoveChild(n)
	}

	ex := &Extraction{Nested: len(all) - len(topLevel)}
	for _, n := range topLevel {
		ex.Commands = append(ex.Commands, ParseCommand(n))
	}

	var sb strings.Builder
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&sb, child); err != nil {
			return nil, err
		}
	}
	ex.Sanitized = sb.String()
	return ex, nil
}

// Task is the handle for a scheduled command batch. It completes when every
// command's synchronous steps have run; swap settle callbacks and navigation
// fetches may still be in flight afterwards.
type Task struct {
	done    chan struct{}
	results []CommandResult
}

// Done returns a channel closed when the batch has finished.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the batch finishes or ctx is done, returning the
// per-command results.
func (t *Task) Wait(ctx context.Context) ([]CommandResult, error) {
	select {
	case <-t.done:
		return t.results, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Transform is the entry point for one server push: it returns the sanitized
// fragment synchronously and schedules the stripped commands for execution.
//
// The returned string - never containing a command tag, whatever the
// validation outcome of any command - is what the host swap engine should
// display immediately. The commands run on the returned Task, strictly in
// document order; tests use Task.Wait to observe completion
// deterministically instead of sleeping.
//
// ctxElt is the element whose request produced the fragment; it receives the
// command lifecycle events.
func (e *Engine) Transform(text string, ctxElt Elt) (string, *Task) {
	ex, err := Extract(text)
	if err != nil {
		// An unparseable fragment carries no executable commands; pass
		// it through for the host to display as-is.
		e.log.Warn("fragment parse failed", zap.Error(err))
		return text, completedTask()
	}
	if ex.Nested > 0 {
		e.log.Warn("ignoring nested command tags",
			zap.Int("count", ex.Nested), zap.Any("context", ctxElt))
	}
	if len(ex.Commands) == 0 {
		return ex.Sanitized, completedTask()
	}

	task := &Task{done: make(chan struct{})}
	go func() {
		defer close(task.done)
		task.results = e.Execute(ex.Commands, ctxElt)
	}()
	return ex.Sanitized, task
}

func completedTask() *Task {
	t := &Task{done: make(chan struct{})}
	close(t.done)
	return t
}

// parseFragment parses text in body context and reparents the result under
// a synthetic root, so "top-level" has a concrete meaning: direct child of
// the root.
func parseFragment(text string) (*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(text), ctx)
	if err != nil {
		return nil, err
	}
	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, nil
}

// findCommandNodes collects command elements in document order.
func findCommandNodes(root *html.Node) []*html.Node {
	var found []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == TagName {
			found = append(found, n)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		walk(child)
	}
	return found
}
