// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/matching"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	notation     = flag.String("W", "san", "Move notation: san or uci")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	noFEN        = flag.Bool("nofen", false, "Don't output the final FEN")
	noMoves      = flag.Bool("nomoves", false, "Don't output the move list")
	addHash      = flag.Bool("hash", false, "Add the final position hash")

	// Rules
	repetitionWindow = flag.Int("window", 50, "Positions scanned for threefold repetition")
	fiftyMoveLimit   = flag.Int("fiftylimit", 100, "Quiet half-moves before the fifty-move draw")
	promotion        = flag.String("promote", "Q", "Promotion piece when a move names none (Q, R, B, N)")

	// Filtering options
	minPly               = flag.Int("minply", 0, "Minimum ply count")
	maxPly               = flag.Int("maxply", 0, "Maximum ply count (0 = no limit)")
	checkmateFilter      = flag.Bool("checkmate", false, "Only output games ending in checkmate")
	stalemateFilter      = flag.Bool("stalemate", false, "Only output games ending in stalemate")
	drawFilter           = flag.Bool("draw", false, "Only output games ending in a draw")
	underpromotionFilter = flag.Bool("underpromotion", false, "Games with underpromotion")
	strictMode           = flag.Bool("strict", false, "Only output games that replay without errors")
	fenFilter            = flag.String("Tf", "", "Only output games reaching this FEN position")
	materialMatch        = flag.String("z", "", "Material reached at the end (e.g., 'QR:qrr')")
	materialMatchExact   = flag.String("y", "", "Exact material reached at the end")

	// ECO classification
	ecoFile = flag.String("e", "", "ECO classification file (code, quoted names, moves per line)")

	// Final-position tally
	tallyPositions = flag.Bool("tally", false, "Count games ending in an already seen position")
	tallyCapacity  = flag.Int("tally-capacity", 0, "Maximum positions remembered by the tally (0 = unlimited)")

	// Opening book
	bookPath   = flag.String("book", "", "Opening book directory (default: in memory)")
	bookRecord = flag.Bool("record", false, "Record replayed moves in the opening book")
	bookLookup = flag.Bool("lookup", false, "Report book moves from each final position")
	bookDepth  = flag.Int("bookdepth", 30, "Record at most N plies per game (0 = all)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("v", false, "Running commentary on each game")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no game count)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")

	// Note: -A is handled before flag.Parse() in loadArgsFromFileIfSpecified
	_ = flag.String("A", "", "File containing command-line arguments (one per line, # for comments)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyRulesFlags(cfg); err != nil {
		return err
	}
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	applyFilterFlags(cfg)
	applyTallyFlags(cfg)
	applyBookFlags(cfg)

	if *workers > 0 {
		cfg.Workers = *workers
	}
	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return cfg.Validate()
}

// applyRulesFlags configures the game rules.
func applyRulesFlags(cfg *config.Config) error {
	cfg.Rules.RepetitionWindow = *repetitionWindow
	cfg.Rules.FiftyMoveLimit = *fiftyMoveLimit

	if len(*promotion) != 1 {
		return fmt.Errorf("promotion piece %q must be one letter", *promotion)
	}
	kind, ok := chess.KindFromLetter((*promotion)[0])
	if !ok {
		return fmt.Errorf("unknown promotion piece %q", *promotion)
	}
	cfg.Rules.DefaultPromotion = kind
	return nil
}

// applyOutputFlags configures report formatting.
func applyOutputFlags(cfg *config.Config) error {
	n, err := config.ParseNotation(*notation)
	if err != nil {
		return err
	}
	cfg.Output.Notation = n
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.IncludeFEN = !*noFEN
	cfg.Output.IncludeMoves = !*noMoves
	cfg.Output.IncludeHash = *addHash
	return nil
}

// applyFilterFlags configures game filter settings.
func applyFilterFlags(cfg *config.Config) {
	if *minPly > 0 || *maxPly > 0 {
		cfg.Filter.CheckPlyBounds = true
		cfg.Filter.MinPlies = *minPly
		cfg.Filter.MaxPlies = *maxPly
		if *maxPly == 0 {
			cfg.Filter.MaxPlies = int(^uint(0) >> 1)
		}
	}
	cfg.Filter.MatchCheckmate = *checkmateFilter
	cfg.Filter.MatchStalemate = *stalemateFilter
	cfg.Filter.MatchDraw = *drawFilter
	cfg.Filter.MatchUnderpromotion = *underpromotionFilter
	cfg.Filter.KeepBrokenGames = !*strictMode
}

// applyTallyFlags configures the final-position tally.
func applyTallyFlags(cfg *config.Config) {
	cfg.Tally.Enabled = *tallyPositions
	cfg.Tally.MaxPositions = *tallyCapacity
}

// applyBookFlags configures the opening book.
func applyBookFlags(cfg *config.Config) {
	cfg.Book.Path = *bookPath
	cfg.Book.Record = *bookRecord
	cfg.Book.Lookup = *bookLookup
	cfg.Book.MaxPly = *bookDepth
}

// setupGameFilter combines the configured filters with the position and
// material criteria given on the command line.
func setupGameFilter(cfg *config.Config) (matching.GameMatcher, error) {
	filter := matching.NewGameFilter(cfg.Filter)

	if *fenFilter != "" {
		pm := matching.NewPositionMatcher()
		if err := pm.AddFEN(*fenFilter, "Tf"); err != nil {
			return nil, fmt.Errorf("FEN filter: %w", err)
		}
		filter.Add(pm)
	}

	pattern, exact := *materialMatch, false
	if *materialMatchExact != "" {
		pattern, exact = *materialMatchExact, true
	}
	if pattern != "" {
		mm, err := matching.NewMaterialMatcher(pattern, exact)
		if err != nil {
			return nil, fmt.Errorf("material filter: %w", err)
		}
		filter.Add(mm)
	}

	return filter, nil
}
