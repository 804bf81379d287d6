// Command sfvctl is the pretty-printer external collaborator spec.md §6
// names: it reads a structured field value from standard input, strips a
// trailing newline, and dispatches to sfv.ParseItem/ParseList/ParseDictionary.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/aledsdavies/sfv/sfv"
)

// Exit codes per spec.md §6: 0 success, 1 parse error, 2 usage error.
const (
	exitSuccess    = 0
	exitParseError = 1
	exitUsageError = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var debug bool

	newLogger := func() *slog.Logger {
		level := slog.LevelWarn
		if debug {
			level = slog.LevelDebug
		}
		return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	}

	readField := func() ([]byte, error) {
		data, err := io.ReadAll(bufio.NewReader(stdin))
		if err != nil {
			return nil, err
		}
		return bytes.TrimSuffix(data, []byte("\n")), nil
	}

	runKind := func(kind string) error {
		logger := newLogger()
		field, err := readField()
		if err != nil {
			return err
		}
		logger.Debug("read field", "kind", kind, "bytes", len(field))

		switch kind {
		case "item":
			item, err := sfv.ParseItem(field)
			if err != nil {
				return err
			}
			renderItem(stdout, item, "")
		case "list":
			list, err := sfv.ParseList(field)
			if err != nil {
				return err
			}
			renderList(stdout, list)
		case "dictionary":
			dict, err := sfv.ParseDictionary(field)
			if err != nil {
				return err
			}
			renderDictionary(stdout, dict)
		default:
			return fmt.Errorf("unknown field kind %q", kind)
		}
		return nil
	}

	rootCmd := &cobra.Command{
		Use:           "sfvctl",
		Short:         "Parse and pretty-print an HTTP structured field value",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKind("item")
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	for _, kind := range []string{"item", "list", "dictionary"} {
		kind := kind
		rootCmd.AddCommand(&cobra.Command{
			Use:           kind,
			Short:         fmt.Sprintf("Parse stdin as a %s field", kind),
			Args:          cobra.NoArgs,
			SilenceUsage:  true,
			SilenceErrors: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runKind(kind)
			},
		})
	}

	rootCmd.AddCommand(newGetCommand(readField, stdout))

	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		if _, ok := sfv.KindOf(err); ok {
			fmt.Fprintln(stderr, "error:", err)
			return exitParseError
		}
		fmt.Fprintln(stderr, "error:", err)
		return exitUsageError
	}
	return exitSuccess
}

// newGetCommand implements `sfvctl get <key>`: parse stdin as a
// Dictionary and print the value for a single key, suggesting the closest
// present key on a miss the same way the teacher's planner suggests
// command names via fuzzy.RankFindFold (runtime/planner/planner.go). When
// no key fuzzy-matches, the key with the smallest Levenshtein distance is
// suggested instead.
func newGetCommand(readField func() ([]byte, error), stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:           "get <key>",
		Short:         "Extract one dictionary member by key",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := readField()
			if err != nil {
				return err
			}
			dict, err := sfv.ParseDictionary(field)
			if err != nil {
				return err
			}
			wanted := sfv.Key(args[0])
			if v, ok := dict.Get(wanted); ok {
				renderEntry(stdout, v, "")
				return nil
			}

			keys := dict.Keys()
			candidates := make([]string, len(keys))
			for i, k := range keys {
				candidates[i] = string(k)
			}
			ranks := fuzzy.RankFindFold(string(wanted), candidates)
			sort.Sort(ranks)
			suggestion := ""
			if len(ranks) > 0 {
				suggestion = ranks[0].Target
			} else {
				best := -1
				for _, c := range candidates {
					if d := fuzzy.LevenshteinDistance(string(wanted), c); best < 0 || d < best {
						best, suggestion = d, c
					}
				}
			}
			if suggestion == "" {
				return &sfv.Error{Kind: sfv.ErrKeyNotFound, Offset: -1,
					Message: fmt.Sprintf("no dictionary member named %q", wanted)}
			}
			return &sfv.Error{Kind: sfv.ErrKeyNotFound, Offset: -1,
				Message: fmt.Sprintf("no dictionary member named %q (did you mean %q?)", wanted, suggestion)}
		},
	}
}
