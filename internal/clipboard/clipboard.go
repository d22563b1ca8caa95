// Package clipboard writes copied glyphs to the system clipboard.
package clipboard

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/aymanbagabas/go-osc52/v2"
)

// Writer puts text on the clipboard.
type Writer interface {
	Write(ctx context.Context, text string) error
}

// OSC52 sets the clipboard through the terminal's OSC 52 escape sequence,
// which also works over ssh.
type OSC52 struct {
	Out    io.Writer
	Tmux   bool
	Screen bool

	mu sync.Mutex
}

// NewOSC52 returns a writer emitting sequences to out, usually os.Stderr so
// the sequence does not interleave with the renderer's stdout frames.
func NewOSC52(out io.Writer, tmux, screen bool) *OSC52 {
	return &OSC52{Out: out, Tmux: tmux, Screen: screen}
}

func (o *OSC52) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if o.Out == nil {
		return fmt.Errorf("osc52: no output")
	}
	seq := osc52.New(text)
	switch {
	case o.Tmux:
		seq = seq.Tmux()
	case o.Screen:
		seq = seq.Screen()
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, err := seq.WriteTo(o.Out); err != nil {
		return fmt.Errorf("osc52: %w", err)
	}
	return nil
}

// Discard drops writes. Used when the clipboard backend is "none".
type Discard struct{}

func (Discard) Write(context.Context, string) error { return nil }

// Memory records writes; the last one is the clipboard content.
type Memory struct {
	mu     sync.Mutex
	writes []string
	Err    error
}

func (m *Memory) Write(_ context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.writes = append(m.writes, text)
	return nil
}

// Content returns the last written text.
func (m *Memory) Content() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.writes) == 0 {
		return ""
	}
	return m.writes[len(m.writes)-1]
}

// Writes returns every write in order.
func (m *Memory) Writes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.writes...)
}
