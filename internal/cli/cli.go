package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gur-shatz/hashburger/internal/config"
	"github.com/gur-shatz/hashburger/internal/hasher"
)

// Version is reported by "hburger --version". Set with -ldflags at build time.
var Version = "0.3.0"

// Command represents what hburger should do.
type Command int

const (
	CommandNone     Command = iota // help or version was printed, nothing to do
	CommandHash                    // burgerize strings
	CommandHashPath                // burgerize paths
	CommandInit                    // generate hburger config file
	CommandServe                   // serve the HTTP API
)

// StdinInput, given as an input, reads inputs from stdin, one per line.
const StdinInput = "-"

// Config holds the parsed command line.
type Config struct {
	Command    Command
	Inputs     []string
	Globs      []string
	Root       string
	ConfigFile string
	Verbose    bool

	// Overrides holds the settings given explicitly as flags, keyed by
	// their config path ("burger.center_length"). Values are the raw flag
	// strings.
	Overrides config.O
}

// overrideFlags maps flag names to the config setting they override.
var overrideFlags = map[string]string{
	"left-bun-length":         "burger.left_bun_length",
	"center-hashpatty-length": "burger.center_length",
	"right-bun-length":        "burger.right_bun_length",
	"padding-char":            "burger.padding_char",
	"algorithm":               "burger.algorithm",
	"graphemes":               "burger.graphemes",
	"start-components":        "path.start_components",
	"end-components":          "path.end_components",
	"divider":                 "path.divider",
	"addr":                    "serve.addr",
}

// Parse parses command-line arguments into a Config.
//
// Format:
//
//	hburger hash [flags] <input>...
//	hburger hash-path [flags] [<path>...] [-g <glob>]...
//	hburger init [--config <file>]
//	hburger serve [flags]
//
// Help and version output go to stdout and yield CommandNone.
func Parse(args []string) (Config, error) {
	cfg := Config{Overrides: config.O{}}

	root := newRootCommand(&cfg)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newRootCommand(cfg *Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "hburger",
		Short: "Turn strings into hashburgers",
		Long: `hburger shortens strings and paths to a fixed width.

A hashburger keeps the first and last characters of a string (the buns) and
replaces the middle with a few digits of its hash (the hashpatty):

  hburger hash hashburger-example       ->  hash<2 digits>mple
  hburger hash-path /home/user/src/project/main.go
                                         ->  /home/user:project/main.go

Settings are read from hburger.yaml when present (see "hburger init");
flags override them.`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "config file (default hburger.yaml)")
	root.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose output on stderr")

	root.AddCommand(
		newHashCommand(cfg),
		newHashPathCommand(cfg),
		newInitCommand(cfg),
		newServeCommand(cfg),
	)
	return root
}

func newHashCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash <input>...",
		Short: "Turn strings into hashburgers",
		Long:  `Prints the hashburger of each input on its own line. Use "-" to read inputs from stdin, one per line.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Command = CommandHash
			cfg.Inputs = args
			collectOverrides(cmd.Flags(), cfg)
			return nil
		},
	}
	addBurgerFlags(cmd.Flags())
	return cmd
}

func newHashPathCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash-path [<path>...]",
		Short: "Turn paths into compressed series of hashburgers",
		Long: `Keeps the first and last components of each path, burgerizes them and
replaces the components in between with a divider.

Paths can be given as arguments, read from stdin with "-", or found with
--glob patterns relative to --root. A pattern starting with "!" excludes
matches.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && len(cfg.Globs) == 0 {
				return errors.New("hash-path: no paths given (pass paths, \"-\" or --glob)")
			}
			cfg.Command = CommandHashPath
			cfg.Inputs = args
			collectOverrides(cmd.Flags(), cfg)
			return nil
		},
	}
	addBurgerFlags(cmd.Flags())
	addPathFlags(cmd.Flags())
	cmd.Flags().StringArrayVarP(&cfg.Globs, "glob", "g", nil, "glob pattern of paths to burgerize (repeatable, ** supported)")
	cmd.Flags().StringVar(&cfg.Root, "root", ".", "directory --glob patterns are relative to")
	return cmd
}

func newInitCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default hburger config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Command = CommandInit
			return nil
		},
	}
}

func newServeCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve hashburgers over HTTP",
		Long: `Serves GET /hash and GET /hash-path. Both take the string in the "input"
query parameter; any config setting (e.g. center_length, divider) can be
passed as a query parameter to override the server's defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Command = CommandServe
			collectOverrides(cmd.Flags(), cfg)
			return nil
		},
	}
	addBurgerFlags(cmd.Flags())
	addPathFlags(cmd.Flags())
	cmd.Flags().String("addr", config.Default().Serve.Addr, "listen address")
	return cmd
}

func addBurgerFlags(fs *pflag.FlagSet) {
	d := config.Default().Burger
	fs.IntP("left-bun-length", "l", d.LeftBunLength, "the length of the hashburger's left bun")
	fs.IntP("center-hashpatty-length", "c", d.CenterLength, "the length of the hashburger's center hashpatty")
	fs.IntP("right-bun-length", "r", d.RightBunLength, "the length of the hashburger's right bun")
	fs.StringP("padding-char", "p", d.PaddingChar, "the character to pad short hashburgers with (default no padding)")
	fs.StringP("algorithm", "a", d.Algorithm, "hash algorithm: "+strings.Join(hasher.Names(), ", "))
	fs.Bool("graphemes", d.Graphemes, "count user-perceived characters instead of code points")
}

func addPathFlags(fs *pflag.FlagSet) {
	d := config.Default().Path
	fs.IntP("start-components", "s", d.StartComponents, "number of components to keep from the start of the path")
	fs.IntP("end-components", "e", d.EndComponents, "number of components to keep from the end of the path")
	fs.StringP("divider", "d", d.Divider, "character dividing start and end components")
}

// collectOverrides records every explicitly set setting flag.
func collectOverrides(fs *pflag.FlagSet, cfg *Config) {
	fs.Visit(func(f *pflag.Flag) {
		if key, ok := overrideFlags[f.Name]; ok {
			cfg.Overrides.Set(key, f.Value.String())
		}
	})
}

// ReadInputs replaces the first StdinInput in inputs with the lines read
// from stdin; later ones are dropped. Empty lines are skipped.
func ReadInputs(inputs []string, stdin io.Reader) ([]string, error) {
	read := false

	out := make([]string, 0, len(inputs))
	for _, in := range inputs {
		if in != StdinInput {
			out = append(out, in)
			continue
		}
		if read {
			continue
		}
		read = true

		sc := bufio.NewScanner(stdin)
		sc.Buffer(make([]byte, 64*1024), 1024*1024)
		for sc.Scan() {
			if line := strings.TrimRight(sc.Text(), "\r"); line != "" {
				out = append(out, line)
			}
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	}
	return out, nil
}
