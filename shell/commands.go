package shell

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/buildkite/shellwords"
	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/lvltrie/dot"
	"github.com/katalvlaran/lvltrie/wordlist"
)

// ErrUsage indicates a malformed command line.
var ErrUsage = errors.New("shell: usage")

// command is one dot-command of the shell.
type command struct {
	arg  string // argument placeholder for help, "" when none is taken
	help string
	run  func(s *Shell, ctx context.Context, arg string) error
}

// commands maps a command name to its handler. It is filled in init
// because .help reads it back.
var commands map[string]command

func init() {
	commands = map[string]command{
		".load":     {"FILE", "insert every valid word of FILE", (*Shell).load},
		".put":      {"WORD", "insert WORD", (*Shell).put},
		".delete":   {"WORD", "delete WORD", (*Shell).remove},
		".check":    {"WORD", "print WORD if it is stored", (*Shell).check},
		".print":    {"", "print every stored word", (*Shell).print},
		".generate": {"NAME", "write NAME.dot and render it with graphviz", (*Shell).generate},
		".save":     {"FILE", "write every stored word to FILE", (*Shell).save},
		".stats":    {"", "print trie counters", (*Shell).stats},
		".rebuild":  {"", "prune dead nodes now", (*Shell).rebuild},
		".help":     {"", "list commands", (*Shell).help},
		".quit":     {"", "leave the shell", nil},
	}
}

// commandNames returns every command name sorted.
func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Execute runs one input line and reports whether the shell should quit.
//
// Implementation:
//   - Stage 1: Split the line with POSIX quoting; blank lines do nothing.
//   - Stage 2: Reject more than two tokens (ErrUsage).
//   - Stage 3: Dispatch dot-commands by name; anything else is a prefix to complete.
//
// Errors:
//   - ErrUsage for unknown commands, bad quoting, or wrong arity.
//   - Errors from the trie, loader or renderer, wrapped.
func (s *Shell) Execute(ctx context.Context, line string) (quit bool, err error) {
	tokens, err := shellwords.SplitPosix(line)
	if err != nil {
		return false, fmt.Errorf("%w: bad command: %v", ErrUsage, err)
	}
	switch {
	case len(tokens) == 0:
		return false, nil
	case len(tokens) > 2:
		return false, fmt.Errorf("%w: more than one word provided", ErrUsage)
	}

	name := tokens[0]
	var arg string
	if len(tokens) == 2 {
		arg = tokens[1]
	}

	if !strings.HasPrefix(name, ".") {
		if arg != "" {
			return false, fmt.Errorf("%w: more than one word provided", ErrUsage)
		}
		return false, s.complete(name)
	}

	cmd, ok := commands[name]
	switch {
	case !ok:
		return false, fmt.Errorf("%w: unknown command %s (try .help)", ErrUsage, name)
	case cmd.arg != "" && arg == "":
		return false, fmt.Errorf("%w: %s %s: %s not provided", ErrUsage, name, cmd.arg, strings.ToLower(cmd.arg))
	case cmd.arg == "" && arg != "":
		return false, fmt.Errorf("%w: %s takes no argument", ErrUsage, name)
	case cmd.run == nil:
		return true, nil
	}

	return false, cmd.run(s, ctx, arg)
}

func (s *Shell) complete(prefix string) error {
	seq, err := s.trie.Completions(prefix)
	if err != nil {
		return err
	}
	for w := range seq {
		fmt.Fprintln(s.out, w)
	}

	return nil
}

func (s *Shell) load(_ context.Context, path string) error {
	s.log.Info().Str("file", path).Msg("started to load file")
	rep, err := wordlist.LoadFile(path, s.trie, wordlist.WithOnInvalid(func(line int, word string) {
		s.log.Info().Int("line", line).Str("word", word).Msg("ignoring invalid word")
	}))
	if err != nil {
		return err
	}
	s.log.Info().
		Str("lines", humanize.Comma(int64(rep.Lines))).
		Str("added", humanize.Comma(int64(rep.Added))).
		Str("duplicates", humanize.Comma(int64(rep.Duplicates))).
		Str("invalid", humanize.Comma(int64(rep.Invalid))).
		Msg("file loaded")

	return nil
}

func (s *Shell) put(_ context.Context, word string) error {
	added, err := s.trie.Insert(word)
	if err != nil {
		return err
	}
	s.log.Debug().Str("word", word).Bool("added", added).Msg("put")

	return nil
}

func (s *Shell) remove(_ context.Context, word string) error {
	removed, err := s.trie.Delete(word)
	if err != nil {
		return err
	}
	s.log.Debug().Str("word", word).Bool("removed", removed).Msg("delete")

	return nil
}

func (s *Shell) check(_ context.Context, word string) error {
	if s.trie.Check(word) {
		fmt.Fprintln(s.out, word)
	}

	return nil
}

func (s *Shell) print(context.Context, string) error {
	for w := range s.trie.Words() {
		fmt.Fprintln(s.out, w)
	}

	return nil
}

func (s *Shell) generate(ctx context.Context, name string) error {
	dotPath, outPath, err := dot.Generate(ctx, s.trie, name, s.dotOpts...)
	if err != nil {
		return err
	}
	s.log.Info().
		Str("dot", dotPath).
		Str("image", outPath).
		Str("command", quoteArgs(dot.Command(dotPath, outPath, s.dotOpts...))).
		Msg("graph generated")

	return nil
}

func (s *Shell) save(_ context.Context, path string) error {
	n, err := wordlist.SaveFile(path, s.trie)
	if err != nil {
		return err
	}
	s.log.Info().Str("file", path).Str("words", humanize.Comma(int64(n))).Msg("file saved")

	return nil
}

func (s *Shell) stats(context.Context, string) error {
	fmt.Fprintf(s.out, "words:   %s\n", humanize.Comma(int64(s.trie.Size())))
	fmt.Fprintf(s.out, "nodes:   %s\n", humanize.Comma(int64(s.trie.NodeCount())))
	fmt.Fprintf(s.out, "pending: %d/%d\n", s.trie.PendingDeletions(), s.trie.DeleteThreshold())

	return nil
}

func (s *Shell) rebuild(context.Context, string) error {
	n := s.trie.Rebuild()
	fmt.Fprintf(s.out, "pruned %s nodes\n", humanize.Comma(int64(n)))

	return nil
}

func (s *Shell) help(context.Context, string) error {
	for _, name := range commandNames() {
		cmd := commands[name]
		fmt.Fprintf(s.out, "  %-20s %s\n", strings.TrimSpace(name+" "+cmd.arg), cmd.help)
	}
	fmt.Fprintf(s.out, "  %-20s %s\n", "PREFIX", "print stored words starting with PREFIX")

	return nil
}

// quoteArgs renders argv as a copy-pasteable POSIX command line.
func quoteArgs(argv []string) string {
	quoted := make([]string, len(argv))
	for i, a := range argv {
		quoted[i] = shellwords.QuotePosix(a)
	}

	return strings.Join(quoted, " ")
}
