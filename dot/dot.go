package dot

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/katalvlaran/lvltrie/trie"
)

const (
	// DefaultLimit is the largest trie Size that Write accepts by default.
	DefaultLimit = 30

	// DefaultBinary is the layout tool invoked by Render.
	DefaultBinary = "dot"

	// DefaultFormat is the output format passed to the layout tool as -T<format>.
	DefaultFormat = "svg"
)

// Fill colors per node kind.
const (
	rootColor     = "red"
	innerColor    = "black"
	terminalColor = "green"
)

var (
	// ErrTooLarge indicates the trie holds more words than the configured limit.
	ErrTooLarge = errors.New("dot: trie too large to visualize")

	// ErrRender indicates the layout tool could not be run or exited non-zero.
	ErrRender = errors.New("dot: render failed")

	// ErrNilTrie indicates a nil trie was passed to Write or Generate.
	ErrNilTrie = errors.New("dot: trie is nil")
)

// Option configures Write, Render and Generate.
type Option func(*Options)

// Options holds rendering parameters.
type Options struct {
	// Limit is the largest trie Size Write accepts. 0 disables the check.
	Limit int

	// Binary is the layout tool executable.
	Binary string

	// Format is the -T output format for the layout tool.
	Format string
}

// DefaultOptions returns Options with DefaultLimit, DefaultBinary and DefaultFormat.
func DefaultOptions() Options {
	return Options{
		Limit:  DefaultLimit,
		Binary: DefaultBinary,
		Format: DefaultFormat,
	}
}

// WithLimit overrides the size limit. 0 disables it; negative values are ignored.
func WithLimit(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.Limit = n
		}
	}
}

// WithBinary overrides the layout tool. An empty name is ignored.
func WithBinary(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.Binary = name
		}
	}
}

// WithFormat overrides the output format. An empty format is ignored.
func WithFormat(format string) Option {
	return func(o *Options) {
		if format != "" {
			o.Format = format
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Write emits t as a digraph to w.
//
// Implementation:
//   - Stage 1: Reject nil tries and tries above the size limit.
//   - Stage 2: Emit the root node, then one node line and one edge line per
//     trie.Edge in export order.
//
// Errors:
//   - ErrNilTrie, ErrTooLarge, or the first write error.
func Write(w io.Writer, t *trie.Trie, opts ...Option) error {
	if t == nil {
		return ErrNilTrie
	}
	o := buildOptions(opts)
	if o.Limit > 0 && t.Size() > o.Limit {
		return fmt.Errorf("%w: size %d exceeds limit %d", ErrTooLarge, t.Size(), o.Limit)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph {")
	writeNode(bw, 0, trie.RootLetter, rootColor)
	for e := range t.Export() {
		color := innerColor
		if e.Terminal {
			color = terminalColor
		}
		writeNode(bw, e.Child, e.Letter, color)
		fmt.Fprintf(bw, "  \"n%d\" -> \"n%d\"\n", e.Parent, e.Child)
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

func writeNode(w io.Writer, id int, letter byte, color string) {
	fmt.Fprintf(w, "  \"n%d\" [label=\"%c\";fillcolor=%s;style=filled;fontcolor=white]\n", id, letter, color)
}

// WriteFile writes the digraph for t to path.
func WriteFile(path string, t *trie.Trie, opts ...Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("dot: close: %w", cerr)
		}
	}()

	return Write(f, t, opts...)
}

// Command returns the argument vector Render runs for dotPath → outPath.
func Command(dotPath, outPath string, opts ...Option) []string {
	o := buildOptions(opts)

	return []string{o.Binary, "-T" + o.Format, dotPath, "-o", outPath}
}

// Render runs the layout tool on dotPath and writes the image to outPath.
// Cancelling ctx kills the tool.
//
// Errors:
//   - ErrRender wrapping the exec error and the tool's combined output.
func Render(ctx context.Context, dotPath, outPath string, opts ...Option) error {
	args := Command(dotPath, outPath, opts...)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %v: %s", ErrRender, args[0], err, bytes.TrimSpace(out.Bytes()))
	}

	return nil
}

// Generate writes base.dot and renders it to base.<format>.
// It returns both paths; on a render failure the dot file is kept.
func Generate(ctx context.Context, t *trie.Trie, base string, opts ...Option) (dotPath, outPath string, err error) {
	o := buildOptions(opts)
	dotPath = base + ".dot"
	outPath = base + "." + o.Format

	if err = WriteFile(dotPath, t, opts...); err != nil {
		return "", "", err
	}
	if err = Render(ctx, dotPath, outPath, opts...); err != nil {
		return dotPath, "", err
	}

	return dotPath, outPath, nil
}
