package parser

import (
	"fmt"
	"strconv"

	"github.com/leengari/pagedb/internal/domain/data"
	"github.com/leengari/pagedb/internal/parser/ast"
	"github.com/leengari/pagedb/internal/parser/lexer"
)

// PrepareResult is the closed set of outcomes of Prepare
type PrepareResult int

const (
	PrepareSuccess PrepareResult = iota
	PrepareSyntaxError
	PrepareUnrecognizedStatement
)

func (r PrepareResult) String() string {
	switch r {
	case PrepareSuccess:
		return "success"
	case PrepareSyntaxError:
		return "syntax error"
	case PrepareUnrecognizedStatement:
		return "unrecognized statement"
	default:
		return fmt.Sprintf("PrepareResult(%d)", int(r))
	}
}

type Parser struct {
	tokens  []lexer.Token
	curPos  int
	curTok  lexer.Token
	peekTok lexer.Token
}

func New(tokens []lexer.Token) *Parser {
	p := &Parser{tokens: tokens, curPos: 0}
	// Read two tokens to set curTok and peekTok
	p.nextToken()
	p.nextToken()
	return p
}

// Prepare tokenizes and parses one shell line
func Prepare(line string) (ast.Statement, PrepareResult) {
	return New(lexer.Tokenize(line)).Parse()
}

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	if p.curPos < len(p.tokens) {
		p.peekTok = p.tokens[p.curPos]
		p.curPos++
	} else {
		p.peekTok = lexer.Token{Type: lexer.EOF}
	}
}

func (p *Parser) Parse() (ast.Statement, PrepareResult) {
	switch p.curTok.Type {
	case lexer.INSERT:
		return p.parseInsert()
	case lexer.SELECT:
		return p.parseSelect()
	default:
		return ast.Statement{}, PrepareUnrecognizedStatement
	}
}

// select
func (p *Parser) parseSelect() (ast.Statement, PrepareResult) {
	p.nextToken()
	if p.curTok.Type != lexer.EOF {
		return ast.Statement{}, PrepareSyntaxError
	}
	return ast.Statement{Type: ast.StatementSelect}, PrepareSuccess
}

// insert <id> <username> <email>
func (p *Parser) parseInsert() (ast.Statement, PrepareResult) {
	p.nextToken()

	if p.curTok.Type != lexer.NUMBER {
		return ast.Statement{}, PrepareSyntaxError
	}
	id, err := strconv.ParseUint(p.curTok.Literal, 10, 64)
	if err != nil {
		return ast.Statement{}, PrepareSyntaxError
	}
	row := data.Row{}.WithID(id)
	p.nextToken()

	if p.curTok.Type == lexer.EOF {
		return ast.Statement{}, PrepareSyntaxError
	}
	row = row.WithUsername(p.curTok.Literal)
	p.nextToken()

	if p.curTok.Type == lexer.EOF {
		return ast.Statement{}, PrepareSyntaxError
	}
	row = row.WithEmail(p.curTok.Literal)
	p.nextToken()

	if p.curTok.Type != lexer.EOF {
		return ast.Statement{}, PrepareSyntaxError
	}

	return ast.Statement{Type: ast.StatementInsert, RowToInsert: row}, PrepareSuccess
}
