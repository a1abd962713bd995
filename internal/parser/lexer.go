package parser

import (
	"strconv"
	"strings"
)

// Lexer tokenizes the move section of one input line.
type Lexer struct {
	line string
	pos  int
}

// charClass groups the bytes that can start or end a token.
type charClass uint8

const (
	classOther charClass = iota
	classSpace
	classCommentOpen
	classRestOfLine
	classDollar
	classStar
	classDigit
	classAlpha
)

var chTab [256]charClass

// Move character classification table
var moveChars [256]bool

func init() {
	initLexTables()
	initMoveChars()
}

func initLexTables() {
	for _, c := range []byte{' ', '\t', '\r', '\n'} {
		chTab[c] = classSpace
	}
	chTab['{'] = classCommentOpen
	chTab[';'] = classRestOfLine
	chTab['$'] = classDollar
	chTab['*'] = classStar

	for c := byte('0'); c <= '9'; c++ {
		chTab[c] = classDigit
	}
	for c := byte('a'); c <= 'z'; c++ {
		chTab[c] = classAlpha
		chTab[c-'a'+'A'] = classAlpha
	}
}

// initMoveChars initializes the set of characters allowed inside a move.
func initMoveChars() {
	for c := byte('a'); c <= 'h'; c++ {
		moveChars[c] = true
	}
	for c := byte('1'); c <= '8'; c++ {
		moveChars[c] = true
	}
	for _, c := range []byte("KQRBNkqrbn") {
		moveChars[c] = true
	}
	for _, c := range []byte("xX:-=Oo0+#!?p.") {
		moveChars[c] = true
	}
}

// NewLexer creates a lexer over the move section of a line.
func NewLexer(line string) *Lexer {
	return &Lexer{line: line}
}

// currentChar returns the current character or 0 if at end of line.
func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

// advance moves to the next character.
func (l *Lexer) advance() {
	if l.pos < len(l.line) {
		l.pos++
	}
}

// NextToken returns the next token, or an EOLToken at the end of the line.
func (l *Lexer) NextToken() *Token {
	for l.pos < len(l.line) && chTab[l.currentChar()] == classSpace {
		l.advance()
	}
	if l.pos >= len(l.line) {
		return &Token{Type: EOLToken, Column: l.pos + 1}
	}

	start := l.pos
	ch := l.currentChar()
	l.advance()

	var token *Token
	switch chTab[ch] {
	case classCommentOpen:
		token = l.gatherComment()
	case classRestOfLine:
		token = &Token{Type: CommentToken, Text: strings.TrimSpace(l.line[l.pos:])}
		l.pos = len(l.line)
	case classDollar:
		token = l.gatherNAG()
	case classStar:
		token = &Token{Type: TerminatingResult, Text: "*"}
	case classDigit:
		token = l.gatherNumeric(ch)
	case classAlpha:
		token = l.gatherMove(start)
	default:
		token = &Token{Type: ErrorToken, Text: string(ch)}
	}
	token.Column = start + 1
	return token
}

// gatherComment collects text up to the closing brace.
func (l *Lexer) gatherComment() *Token {
	end := strings.IndexByte(l.line[l.pos:], '}')
	if end < 0 {
		text := l.line[l.pos-1:]
		l.pos = len(l.line)
		return &Token{Type: ErrorToken, Text: text}
	}
	text := strings.TrimSpace(l.line[l.pos : l.pos+end])
	l.pos += end + 1
	return &Token{Type: CommentToken, Text: text}
}

// gatherNAG collects a numeric annotation glyph.
func (l *Lexer) gatherNAG() *Token {
	start := l.pos
	for l.pos < len(l.line) && chTab[l.currentChar()] == classDigit {
		l.advance()
	}
	if l.pos == start {
		return &Token{Type: ErrorToken, Text: "$"}
	}
	return &Token{Type: NAGToken, Text: l.line[start-1 : l.pos]}
}

// gatherNumeric handles numeric tokens (move numbers, results, castling).
func (l *Lexer) gatherNumeric(initialDigit byte) *Token {
	remaining := l.line[l.pos:]

	switch initialDigit {
	case '0':
		if strings.HasPrefix(remaining, "-1") {
			l.pos += 2
			return &Token{Type: TerminatingResult, Text: "0-1"}
		}
		if strings.HasPrefix(remaining, "-0-0") {
			l.pos += 4
			return &Token{Type: MoveToken, Text: "O-O-O" + l.gatherSuffix()}
		}
		if strings.HasPrefix(remaining, "-0") {
			l.pos += 2
			return &Token{Type: MoveToken, Text: "O-O" + l.gatherSuffix()}
		}
	case '1':
		if strings.HasPrefix(remaining, "-0") {
			l.pos += 2
			return &Token{Type: TerminatingResult, Text: "1-0"}
		}
		if strings.HasPrefix(remaining, "/2-1/2") {
			l.pos += 6
			return &Token{Type: TerminatingResult, Text: "1/2-1/2"}
		}
	}

	return l.gatherMoveNumber()
}

// gatherSuffix collects check and annotation symbols after a castling move.
func (l *Lexer) gatherSuffix() string {
	start := l.pos
	for l.pos < len(l.line) && strings.IndexByte("+#!?", l.currentChar()) >= 0 {
		l.advance()
	}
	return l.line[start:l.pos]
}

// gatherMoveNumber parses a move number token. The dots are optional, so
// "12." "12..." and "12" all give 12; a move may follow the dots directly.
func (l *Lexer) gatherMoveNumber() *Token {
	start := l.pos - 1
	for l.pos < len(l.line) && chTab[l.currentChar()] == classDigit {
		l.advance()
	}
	num, err := strconv.ParseUint(l.line[start:l.pos], 10, 32)
	if err != nil {
		return &Token{Type: ErrorToken, Text: l.line[start:l.pos]}
	}

	if c := l.currentChar(); c != '.' && c != 0 && chTab[c] != classSpace {
		for l.pos < len(l.line) && chTab[l.currentChar()] != classSpace {
			l.advance()
		}
		return &Token{Type: ErrorToken, Text: l.line[start:l.pos]}
	}
	for l.currentChar() == '.' {
		l.advance()
	}
	return &Token{Type: MoveNumber, MoveNum: uint(num)}
}

// gatherMove collects a move made of move characters.
func (l *Lexer) gatherMove(start int) *Token {
	for l.pos < len(l.line) && moveChars[l.currentChar()] {
		l.advance()
	}
	text := l.line[start:l.pos]
	if c := l.currentChar(); c != 0 && chTab[c] != classSpace && chTab[c] != classCommentOpen && chTab[c] != classRestOfLine {
		for l.pos < len(l.line) && chTab[l.currentChar()] != classSpace {
			l.advance()
		}
		return &Token{Type: ErrorToken, Text: l.line[start:l.pos]}
	}
	return &Token{Type: MoveToken, Text: text}
}
