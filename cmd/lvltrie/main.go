// Command lvltrie is an interactive prefix-tree shell with word completion.
//
// Usage:
//
//	lvltrie [--config F] [--load FILE] [--delete-threshold N] [--max-nodes N] [--log-level L]
//	lvltrie complete PREFIX --words FILE
//	lvltrie graph NAME --words FILE [--svg]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/lvltrie/config"
	"github.com/katalvlaran/lvltrie/dot"
	"github.com/katalvlaran/lvltrie/shell"
	"github.com/katalvlaran/lvltrie/trie"
	"github.com/katalvlaran/lvltrie/wordlist"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "lvltrie:", err)
		stop()
		os.Exit(1)
	}
}

// app carries what every subcommand needs once flags and config are resolved.
type app struct {
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
	loader   *config.Loader
	cfgPath  string
	envFile  string
	settings config.Settings
	log      zerolog.Logger
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}
	var loadPath string

	root := &cobra.Command{
		Use:           "lvltrie",
		Short:         "Interactive prefix tree with word completion",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runShell(cmd.Context(), loadPath)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "config file (yaml, toml or json)")
	pf.StringVar(&a.envFile, "env-file", ".env", "dotenv file read before the environment")
	pf.Int(config.KeyDeleteThreshold, trie.DefaultDeleteThreshold, "lazy deletions tolerated before compaction")
	pf.Int(config.KeyMaxNodes, 0, "node budget, 0 for unlimited")
	pf.Int(config.KeyVisualizerLimit, dot.DefaultLimit, "largest word count the graph export accepts, 0 for unlimited")
	pf.String(config.KeyDotBinary, dot.DefaultBinary, "graphviz executable")
	pf.String(config.KeyLogLevel, zerolog.LevelInfoValue, "log level (trace, debug, info, warn, error)")
	root.Flags().StringVar(&loadPath, "load", "", "word list loaded before the shell starts")
	root.Flags().String(config.KeyPrompt, config.DefaultPrompt, "interactive prompt")

	root.AddCommand(newCompleteCmd(a), newGraphCmd(a))

	return root
}

// configure resolves settings from flags, environment and the config file,
// then builds the logger.
func (a *app) configure(cmd *cobra.Command) error {
	a.loader = config.NewLoader(a.envFile)
	if err := a.loader.BindFlags(cmd.Flags()); err != nil {
		return err
	}
	s, err := a.loader.Load(a.cfgPath)
	if err != nil {
		return err
	}
	a.settings = s
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: a.errOut, NoColor: true}).
		Level(s.Level()).
		With().Timestamp().Logger()

	return nil
}

// newTrie builds a trie from the settings, optionally filled from path.
func (a *app) newTrie(path string) (*trie.Trie, error) {
	opts := append(a.settings.TrieOptions(), trie.WithOnRebuild(shell.LogRebuilds(a.log)))
	t, err := trie.New(opts...)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return t, nil
	}

	rep, err := wordlist.LoadFile(path, t, wordlist.WithOnInvalid(func(line int, word string) {
		a.log.Debug().Int("line", line).Str("word", word).Msg("ignoring invalid word")
	}))
	if err != nil {
		return nil, err
	}
	a.log.Info().
		Str("file", path).
		Int("added", rep.Added).
		Int("duplicates", rep.Duplicates).
		Int("invalid", rep.Invalid).
		Msg("file loaded")

	return t, nil
}

func (a *app) runShell(ctx context.Context, loadPath string) error {
	t, err := a.newTrie(loadPath)
	if err != nil {
		return err
	}
	sh := shell.New(t, a.out,
		shell.WithLogger(a.log),
		shell.WithPrompt(a.settings.Prompt),
		shell.WithDotOptions(a.settings.DotOptions()...),
	)

	stdin, ok := a.in.(*os.File)
	if !ok || !term.IsTerminal(int(stdin.Fd())) {
		return sh.Run(ctx, a.in)
	}

	prev, err := term.MakeRaw(int(stdin.Fd()))
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	defer term.Restore(int(stdin.Fd()), prev)

	return sh.RunTerminal(ctx, struct {
		io.Reader
		io.Writer
	}{stdin, a.out})
}

func newCompleteCmd(a *app) *cobra.Command {
	var words string
	cmd := &cobra.Command{
		Use:   "complete PREFIX",
		Short: "Print every stored word starting with PREFIX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.newTrie(words)
			if err != nil {
				return err
			}
			seq, err := t.Completions(args[0])
			if err != nil {
				return err
			}
			for w := range seq {
				fmt.Fprintln(a.out, w)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&words, "words", "", "word list to complete from")
	_ = cmd.MarkFlagRequired("words")

	return cmd
}

func newGraphCmd(a *app) *cobra.Command {
	var (
		words  string
		render bool
	)
	cmd := &cobra.Command{
		Use:   "graph NAME",
		Short: "Write NAME.dot, and NAME.svg with --svg",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.newTrie(words)
			if err != nil {
				return err
			}
			opts := a.settings.DotOptions()
			if !render {
				path := args[0] + ".dot"
				if err = dot.WriteFile(path, t, opts...); err != nil {
					return err
				}
				a.log.Info().Str("dot", path).Msg("graph written")

				return nil
			}

			dotPath, outPath, err := dot.Generate(cmd.Context(), t, args[0], opts...)
			if err != nil {
				return err
			}
			a.log.Info().Str("dot", dotPath).Str("image", outPath).Msg("graph generated")

			return nil
		},
	}
	cmd.Flags().StringVar(&words, "words", "", "word list to draw")
	cmd.Flags().BoolVar(&render, "svg", false, "also render with graphviz")
	_ = cmd.MarkFlagRequired("words")

	return cmd
}
