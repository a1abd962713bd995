// Package eco provides ECO (Encyclopaedia of Chess Openings) classification.
//
// An openings file holds one line per entry:
//
//	B90 "Sicilian" "Najdorf" e4 c5 Nf3 d6 d4 cxd4 Nxd4 Nf6 Nc3 a6
//
// The code comes first, then up to three quoted names (opening, variation,
// sub-variation), then the moves in the usual game-line notation. Blank
// lines and lines starting with '#' are ignored.
package eco

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/parser"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// transpositionSlack is how many plies a game may differ from an entry's
// line and still be credited with its position.
const transpositionSlack = 6

// ECOEntry names an opening and the position its moves reach.
type ECOEntry struct {
	ECOCode      string
	Opening      string
	Variation    string
	SubVariation string

	hash     uint64 // position after the last move
	pathHash uint64 // XOR of the position hashes along the line
	plies    int
}

// ECOClassifier maps positions reached in replayed games to opening names.
type ECOClassifier struct {
	byHash   map[uint64][]*ECOEntry
	maxPlies int // deepest ply at which a lookup can still succeed
	loaded   int
}

// NewECOClassifier creates an empty classifier.
func NewECOClassifier() *ECOClassifier {
	return &ECOClassifier{
		byHash:   make(map[uint64][]*ECOEntry),
		maxPlies: transpositionSlack,
	}
}

// LoadFromFile loads ECO data from an openings file.
func (ec *ECOClassifier) LoadFromFile(filename string) error {
	file, err := os.Open(filename) //nolint:gosec // G304: user-specified openings file
	if err != nil {
		return fmt.Errorf("cannot open ECO file: %w", err)
	}
	defer file.Close()

	return ec.loadFrom(file, filename)
}

// LoadFromReader loads ECO data from a reader.
func (ec *ECOClassifier) LoadFromReader(r io.Reader) error {
	return ec.loadFrom(r, "eco")
}

func (ec *ECOClassifier) loadFrom(r io.Reader, name string) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entry, moves, err := parseEntryLine(line)
		if err != nil {
			return fmt.Errorf("error parsing ECO file %s:%d: %w", name, lineNum, err)
		}
		ec.addECOEntry(entry, moves)
	}
	return scanner.Err()
}

// parseEntryLine splits a line into its names and its moves.
func parseEntryLine(line string) (*ECOEntry, []string, error) {
	code, rest, _ := strings.Cut(line, " ")
	entry := &ECOEntry{ECOCode: code}

	names := []*string{&entry.Opening, &entry.Variation, &entry.SubVariation}
	for _, dst := range names {
		rest = strings.TrimSpace(rest)
		if !strings.HasPrefix(rest, `"`) {
			break
		}
		end := strings.IndexByte(rest[1:], '"')
		if end < 0 {
			return nil, nil, fmt.Errorf("unterminated name in %q", line)
		}
		*dst = rest[1 : end+1]
		rest = rest[end+2:]
	}

	game, err := parser.NewParser(strings.NewReader(rest), code).ParseGame()
	if err != nil {
		return nil, nil, err
	}
	if game == nil {
		return entry, nil, nil
	}
	return entry, game.Moves, nil
}

// addECOEntry replays moves from the initial position and files entry under
// the position reached. Entries whose line is already known are dropped, so
// the first name given for a line wins.
func (ec *ECOClassifier) addECOEntry(entry *ECOEntry, moves []string) {
	if entry.ECOCode == "" {
		return
	}

	g := engine.NewGame(engine.DefaultRules())
	for _, text := range moves {
		// A bad move truncates the line rather than rejecting the file.
		if _, err := g.Play(text, engine.SourceReplay); err != nil {
			break
		}
		entry.pathHash ^= g.Hash()
		entry.plies++
	}
	if entry.plies == 0 {
		return
	}
	entry.hash = g.Hash()

	for _, e := range ec.byHash[entry.hash] {
		if e.plies == entry.plies && e.pathHash == entry.pathHash {
			return
		}
	}
	ec.byHash[entry.hash] = append(ec.byHash[entry.hash], entry)
	ec.loaded++
	ec.maxPlies = max(ec.maxPlies, entry.plies+transpositionSlack)
}

// ClassifyGame returns the entry for the deepest classified position of the
// game's opening, or nil when none of its early positions is known.
func (ec *ECOClassifier) ClassifyGame(a *processing.GameAnalysis) *ECOEntry {
	if ec.loaded == 0 || a.Game == nil {
		return nil
	}

	var best *ECOEntry
	var path uint64
	for i, p := range a.Game.Plies() {
		ply := i + 1
		if ply > ec.maxPlies {
			break
		}
		path ^= p.Hash
		if e := ec.lookup(p.Hash, path, ply); e != nil {
			best = e
		}
	}
	return best
}

// lookup prefers the entry reached by exactly the same moves, then any
// entry for the same position within transpositionSlack plies.
func (ec *ECOClassifier) lookup(hash, path uint64, ply int) *ECOEntry {
	var near *ECOEntry
	for _, e := range ec.byHash[hash] {
		if e.plies == ply && e.pathHash == path {
			return e
		}
		if d := ply - e.plies; d >= -transpositionSlack && d <= transpositionSlack {
			near = e
		}
	}
	return near
}

// EntriesLoaded returns the number of distinct lines loaded.
func (ec *ECOClassifier) EntriesLoaded() int {
	return ec.loaded
}
