package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/katalvlaran/lvltrie/dot"
	"github.com/katalvlaran/lvltrie/trie"
)

// Farewell is printed when input ends without .quit.
const Farewell = "Have a good day!"

// maxListed caps how many candidates Tab prints for an ambiguous prefix.
const maxListed = 20

// Shell dispatches command lines to a trie.
type Shell struct {
	trie    *trie.Trie
	out     io.Writer
	log     zerolog.Logger
	prompt  string
	dotOpts []dot.Option
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the logger for progress and error reports.
// The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Shell) { s.log = log }
}

// WithPrompt sets the prompt shown by RunTerminal.
func WithPrompt(prompt string) Option {
	return func(s *Shell) { s.prompt = prompt }
}

// WithDotOptions sets the options passed to dot.Generate by .generate.
func WithDotOptions(opts ...dot.Option) Option {
	return func(s *Shell) { s.dotOpts = opts }
}

// New returns a Shell over t that prints results to out.
func New(t *trie.Trie, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		trie:   t,
		out:    out,
		log:    zerolog.Nop(),
		prompt: "> ",
	}
	for _, fn := range opts {
		fn(s)
	}

	return s
}

// Run reads lines from in until .quit, end of input or ctx is done.
// Command errors are logged and the loop continues; only read errors and
// context cancellation are returned.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !sc.Scan() {
			break
		}
		if s.step(ctx, sc.Text()) {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("shell: read: %w", err)
	}
	fmt.Fprintln(s.out, Farewell)

	return nil
}

// RunTerminal drives the shell from a terminal already in raw mode.
// Output and log lines are routed through the terminal so they do not
// corrupt the line being edited. Tab completes command names and stored
// words.
//
// ReadLine cannot be interrupted, so ctx is checked between lines only.
func (s *Shell) RunTerminal(ctx context.Context, rw io.ReadWriter) error {
	tm := term.NewTerminal(rw, s.prompt)
	tm.AutoCompleteCallback = func(line string, pos int, key rune) (string, int, bool) {
		if key != '\t' {
			return "", 0, false
		}
		newLine, newPos, candidates, ok := s.completeLine(line, pos)
		if len(candidates) > 1 {
			listCandidates(tm, candidates)
		}
		return newLine, newPos, ok
	}

	prevOut, prevLog := s.out, s.log
	s.out = tm
	s.log = s.log.Output(zerolog.ConsoleWriter{Out: tm, NoColor: true})
	defer func() { s.out, s.log = prevOut, prevLog }()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := tm.ReadLine()
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(tm, "\n"+Farewell)
			return nil
		case err != nil:
			return fmt.Errorf("shell: read: %w", err)
		}
		if s.step(ctx, line) {
			return nil
		}
	}
}

// step executes one line, logging any command error, and reports quit.
func (s *Shell) step(ctx context.Context, line string) bool {
	quit, err := s.Execute(ctx, line)
	switch {
	case errors.Is(err, trie.ErrInvalidWord):
		s.log.Warn().Err(err).Msg("rejected")
	case err != nil:
		s.log.Error().Err(err).Msg("command failed")
	}

	return quit
}

// completeLine completes the token ending at pos.
//
// The first token completes against command names when it starts with '.';
// any other token completes against stored words. The token is extended to
// the longest common prefix of the candidates. ok is false when nothing
// could be added.
func (s *Shell) completeLine(line string, pos int) (newLine string, newPos int, candidates []string, ok bool) {
	head, tail := line[:pos], line[pos:]
	start := strings.LastIndexByte(head, ' ') + 1
	token := head[start:]
	if token == "" {
		return "", 0, nil, false
	}

	if start == 0 && strings.HasPrefix(token, ".") {
		for _, name := range commandNames() {
			if strings.HasPrefix(name, token) {
				candidates = append(candidates, name)
			}
		}
	} else {
		seq, err := s.trie.Completions(token)
		if err != nil {
			return "", 0, nil, false
		}
		for w := range seq {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return "", 0, nil, false
	}

	ext := commonPrefix(candidates)
	if len(candidates) == 1 && start == 0 && strings.HasPrefix(ext, ".") && commands[ext].arg != "" {
		ext += " "
	}
	if len(ext) <= len(token) {
		return "", 0, candidates, false
	}

	return head[:start] + ext + tail, start + len(ext), candidates, true
}

// commonPrefix returns the longest prefix shared by every word.
func commonPrefix(words []string) string {
	prefix := words[0]
	for _, w := range words[1:] {
		n := 0
		for n < len(prefix) && n < len(w) && prefix[n] == w[n] {
			n++
		}
		prefix = prefix[:n]
	}

	return prefix
}

// listCandidates prints up to maxListed candidates above the prompt.
func listCandidates(w io.Writer, candidates []string) {
	shown := candidates
	if len(shown) > maxListed {
		shown = shown[:maxListed]
	}
	line := strings.Join(shown, "  ")
	if len(candidates) > maxListed {
		line += fmt.Sprintf("  … (%d more)", len(candidates)-maxListed)
	}
	fmt.Fprintln(w, line)
}

// LogRebuilds returns a trie.WithOnRebuild hook that reports each
// compaction pass at debug level.
func LogRebuilds(log zerolog.Logger) func(trie.RebuildStats) {
	return func(st trie.RebuildStats) {
		log.Debug().Int("pruned", st.Pruned).Int("remaining", st.Remaining).Msg("rebuilt the trie")
	}
}
