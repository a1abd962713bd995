package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// maxLineLength bounds a single game line.
const maxLineLength = 1 << 20

// Game is one game read from the input.
type Game struct {
	Index  int    // 1-based game number
	File   string // source name
	Line   int    // 1-based line number
	FEN    string // starting position; empty for the standard one
	Moves  []string
	Result string // terminating result, if given
}

// Parser reads games, one per line.
type Parser struct {
	scanner *bufio.Scanner
	file    string
	lineNum int
	count   int
}

// NewParser creates a new parser for the given reader. file names the source
// in error messages.
func NewParser(r io.Reader, file string) *Parser {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	return &Parser{scanner: scanner, file: file}
}

// ParseGame parses the next game from the input.
// Returns nil, nil when no more games are available. A malformed line
// yields a *errors.ParseError; parsing may continue with the next call.
func (p *Parser) ParseGame() (*Game, error) {
	for p.scanner.Scan() {
		p.lineNum++
		line := strings.TrimSpace(p.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		p.count++
		game := &Game{Index: p.count, File: p.file, Line: p.lineNum}
		if err := p.parseLine(game, line); err != nil {
			return game, err
		}
		return game, nil
	}
	return nil, p.scanner.Err()
}

// ParseAllGames parses every remaining game. It stops at the first error and
// returns the games read so far.
func (p *Parser) ParseAllGames() ([]*Game, error) {
	var games []*Game
	for {
		game, err := p.ParseGame()
		if err != nil {
			return games, err
		}
		if game == nil {
			return games, nil
		}
		games = append(games, game)
	}
}

// parseLine fills game from one input line.
func (p *Parser) parseLine(game *Game, line string) error {
	moves := line
	offset := 0
	if i := strings.IndexByte(line, '|'); i >= 0 {
		game.FEN = strings.TrimSpace(line[:i])
		if game.FEN == "" {
			return p.errorAt(1, "FEN before '|'", "nothing")
		}
		moves = line[i+1:]
		offset = i + 1
	}

	lexer := NewLexer(moves)
	for {
		token := lexer.NextToken()
		switch token.Type {
		case EOLToken:
			return nil
		case MoveToken:
			if game.Result != "" {
				return p.errorAt(offset+token.Column, "end of game", token.Text)
			}
			if token.Text == "e.p." {
				continue
			}
			game.Moves = append(game.Moves, token.Text)
		case TerminatingResult:
			if game.Result != "" {
				return p.errorAt(offset+token.Column, "end of game", token.Text)
			}
			game.Result = token.Text
		case MoveNumber, CommentToken, NAGToken:
		default:
			return p.errorAt(offset+token.Column, "", token.Text)
		}
	}
}

func (p *Parser) errorAt(column int, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrParseFailure,
		File:     p.file,
		Line:     p.lineNum,
		Column:   column,
		Expected: expected,
		Got:      got,
	}
}
