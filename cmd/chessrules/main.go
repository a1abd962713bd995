// chessrules replays chess games through the rules engine and reports how
// each one ends.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/book"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/eco"
	"github.com/lgbarn/chess-rules-go/internal/parser"
)

const programVersion = "0.1.0"

func main() {
	if err := loadArgsFromFileIfSpecified(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	gameFilter, err := setupGameFilter(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Logf(2, "Filter: %s\n", gameFilter.Name())

	ctx := newReplayContext(cfg, gameFilter)
	ctx.classifier = loadECOClassifier(cfg)
	if cfg.Book.Enabled() {
		store, err := book.Open(cfg.Book.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening book %s: %v\n", cfg.Book.Path, err)
			os.Exit(1)
		}
		defer store.Close() //nolint:errcheck // closing on exit
		ctx.book = store
	}

	games, parseErrors := readAllInputs(cfg, flag.Args())
	stats := ctx.replayGames(games)
	stats.total += parseErrors

	if err := ctx.writer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
	}

	if cfg.Verbosity > 0 {
		reportStatistics(cfg.LogFile, stats)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.Output.OutputFile = file
}

// loadECOClassifier loads the ECO classification file if specified.
func loadECOClassifier(cfg *config.Config) *eco.ECOClassifier {
	if *ecoFile == "" {
		return nil
	}

	classifier := eco.NewECOClassifier()
	if err := classifier.LoadFromFile(*ecoFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ECO file %s: %v\n", *ecoFile, err)
		os.Exit(1)
	}

	cfg.Logf(1, "Loaded %d ECO entries\n", classifier.EntriesLoaded())
	return classifier
}

// readAllInputs parses the named files, or stdin when there are none.
// Unreadable files and malformed lines are logged and skipped; the second
// result counts the skipped lines.
func readAllInputs(cfg *config.Config, args []string) ([]*parser.Game, int) {
	if len(args) == 0 {
		cfg.InputFiles = nil
		return readInput(os.Stdin, "stdin", cfg)
	}

	cfg.InputFiles = args
	var games []*parser.Game
	skipped := 0
	for _, filename := range args {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", filename, err)
			continue
		}

		g, n := readInput(file, filename, cfg)
		games = append(games, g...)
		skipped += n

		file.Close() //nolint:errcheck,gosec // G104: read-only file
	}
	return games, skipped
}

// readInput parses every game in r, logging the lines that fail to parse.
func readInput(r io.Reader, name string, cfg *config.Config) ([]*parser.Game, int) {
	p := parser.NewParser(r, name)
	var games []*parser.Game
	skipped := 0
	for {
		game, err := p.ParseGame()
		if err != nil {
			if game == nil {
				cfg.Logf(1, "Error reading %s: %v\n", name, err)
				break
			}
			cfg.Logf(1, "%v\n", err)
			skipped++
			continue
		}
		if game == nil {
			break
		}
		games = append(games, game)
	}
	cfg.Logf(2, "Read %d game(s) from %s\n", len(games), name)
	return games, skipped
}

// loadArgsFromFileIfSpecified splices the arguments read from the -A file
// into os.Args, in place of the -A flag itself.
func loadArgsFromFileIfSpecified() error {
	for i := 1; i < len(os.Args); i++ {
		arg := os.Args[i]
		var path string
		switch {
		case arg == "-A" || arg == "--A":
			if i+1 >= len(os.Args) {
				return fmt.Errorf("-A requires a file name")
			}
			path = os.Args[i+1]
		case strings.HasPrefix(arg, "-A="):
			path = strings.TrimPrefix(arg, "-A=")
		default:
			continue
		}

		fileArgs, err := loadArgsFile(path)
		if err != nil {
			return err
		}
		end := i + 1
		if !strings.Contains(arg, "=") {
			end = i + 2
		}
		rest := append(fileArgs, os.Args[end:]...)
		os.Args = append(os.Args[:i:i], rest...)
		return nil
	}
	return nil
}

// loadArgsFile reads command-line arguments from a file. Blank lines and
// lines starting with # are ignored.
func loadArgsFile(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, fmt.Errorf("opening args file %s: %w", path, err)
	}
	defer file.Close()

	var args []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args = append(args, splitArgsLine(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading args file %s: %w", path, err)
	}
	return args, nil
}

// splitArgsLine splits a line on whitespace, keeping single- or
// double-quoted strings together.
func splitArgsLine(line string) []string {
	var args []string
	var current strings.Builder
	inArg := false
	var quote rune

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}
	if inArg {
		args = append(args, current.String())
	}
	return args
}

// reportStatistics prints the final statistics.
func reportStatistics(w io.Writer, s replayStats) {
	fmt.Fprintf(w, "%d game(s) matched out of %d.\n", s.matched, s.total)
	if s.failed > 0 {
		fmt.Fprintf(w, "%d game(s) failed to replay.\n", s.failed)
	}
	if s.repeats > 0 {
		fmt.Fprintf(w, "%d game(s) ended in an earlier final position.\n", s.repeats)
	}
	if s.positions > 0 {
		fmt.Fprintf(w, "%d distinct final position(s).\n", s.positions)
	}
	if s.tallyFull {
		fmt.Fprintf(w, "Final-position tally reached its capacity; later positions were not counted.\n")
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess games and reports how each one ends.\n\n")
	fmt.Fprintf(os.Stderr, "Input: one game per line, an optional FEN and '|', then the moves\n")
	fmt.Fprintf(os.Stderr, "in SAN or UCI. Lines starting with '#' are ignored.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
