package ingest

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// AST
// ---------------------------------------------------------------------------

// createTableStmt is the parsed form of a CREATE TABLE statement. Only the
// parts that carry schema meaning are retained; index definitions and storage
// options other than the table comment are recognized and discarded.
type createTableStmt struct {
	DBName       string
	TableName    string
	TableComment string
	Columns      []columnDef
	PrimaryKeys  []string // columns named by a table-level PRIMARY KEY
}

type columnDef struct {
	Name          string
	Type          string // lowercased, length/precision kept, e.g. "varchar(255)"
	NotNull       bool
	Default       string
	AutoIncrement bool
	PrimaryKey    bool
	Unique        bool
	Comment       string
	OnUpdate      string
}

// ---------------------------------------------------------------------------
// Parser
// ---------------------------------------------------------------------------

type ddlParser struct {
	tokens []token
	pos    int
}

func parseCreateTable(input string) (*createTableStmt, error) {
	tokens, err := tokenizeDDL(input)
	if err != nil {
		return nil, err
	}
	p := &ddlParser{tokens: tokens}
	return p.parseStatement()
}

func (p *ddlParser) peek() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *ddlParser) next() (token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

func (p *ddlParser) expectKeyword(kw string) error {
	t, ok := p.next()
	if !ok {
		return fmt.Errorf("expected %s, got end of input", strings.ToUpper(kw))
	}
	if !t.keywordIs(kw) {
		return fmt.Errorf("expected %s, got %q at position %d", strings.ToUpper(kw), t.value, t.pos)
	}
	return nil
}

func (p *ddlParser) expectType(typ tokenType, what string) (token, error) {
	t, ok := p.next()
	if !ok {
		return token{}, fmt.Errorf("expected %s, got end of input", what)
	}
	if t.typ != typ {
		return token{}, fmt.Errorf("expected %s, got %q at position %d", what, t.value, t.pos)
	}
	return t, nil
}

func (p *ddlParser) parseStatement() (*createTableStmt, error) {
	if err := p.expectKeyword("create"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("table"); err != nil {
		return nil, err
	}
	if t, ok := p.peek(); ok && t.keywordIs("if") {
		p.pos++
		if err := p.expectKeyword("not"); err != nil {
			return nil, err
		}
		if err := p.expectKeyword("exists"); err != nil {
			return nil, err
		}
	}

	stmt := &createTableStmt{}

	name, err := p.expectType(tokIdent, "table name")
	if err != nil {
		return nil, err
	}
	stmt.TableName = name.value
	if t, ok := p.peek(); ok && t.typ == tokDot {
		p.pos++
		part, err := p.expectType(tokIdent, "table name")
		if err != nil {
			return nil, err
		}
		stmt.DBName = stmt.TableName
		stmt.TableName = part.value
	}

	if _, err := p.expectType(tokLParen, "("); err != nil {
		return nil, err
	}
	if err := p.parseDefinitions(stmt); err != nil {
		return nil, err
	}
	if err := p.parseTableOptions(stmt); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseDefinitions consumes column and constraint definitions up to and
// including the closing parenthesis of the definition list.
func (p *ddlParser) parseDefinitions(stmt *createTableStmt) error {
	for {
		t, ok := p.peek()
		if !ok {
			return fmt.Errorf("unterminated column list")
		}

		switch {
		case t.keywordIs("primary"):
			p.pos++
			if err := p.expectKeyword("key"); err != nil {
				return err
			}
			cols, err := p.parseColumnNameList()
			if err != nil {
				return err
			}
			stmt.PrimaryKeys = append(stmt.PrimaryKeys, cols...)

		case t.keywordIs("unique"):
			p.pos++
			if n, ok := p.peek(); ok && (n.keywordIs("key") || n.keywordIs("index")) {
				p.pos++
			}
			if n, ok := p.peek(); ok && n.typ == tokIdent {
				p.pos++ // index name
			}
			if _, err := p.parseColumnNameList(); err != nil {
				return err
			}

		case t.keywordIs("key") || t.keywordIs("index") ||
			t.keywordIs("constraint") || t.keywordIs("foreign") ||
			t.keywordIs("fulltext") || t.keywordIs("spatial") || t.keywordIs("check"):
			if err := p.skipDefinition(); err != nil {
				return err
			}

		default:
			col, err := p.parseColumnDef()
			if err != nil {
				return err
			}
			stmt.Columns = append(stmt.Columns, *col)
		}

		t, ok = p.next()
		if !ok {
			return fmt.Errorf("unterminated column list")
		}
		switch t.typ {
		case tokComma:
			continue
		case tokRParen:
			return nil
		default:
			return fmt.Errorf("expected , or ) after definition, got %q at position %d", t.value, t.pos)
		}
	}
}

// parseColumnNameList reads "( name, name, ... )" and returns the names.
func (p *ddlParser) parseColumnNameList() ([]string, error) {
	if _, err := p.expectType(tokLParen, "("); err != nil {
		return nil, err
	}
	var names []string
	for {
		t, err := p.expectType(tokIdent, "column name")
		if err != nil {
			return nil, err
		}
		names = append(names, t.value)
		// Prefix index length, e.g. name(10).
		if n, ok := p.peek(); ok && n.typ == tokLParen {
			if err := p.skipParens(); err != nil {
				return nil, err
			}
		}
		n, ok := p.next()
		if !ok {
			return nil, fmt.Errorf("unterminated column name list")
		}
		switch n.typ {
		case tokComma:
			continue
		case tokRParen:
			return names, nil
		default:
			return nil, fmt.Errorf("expected , or ) in column list, got %q at position %d", n.value, n.pos)
		}
	}
}

// skipDefinition discards tokens up to the comma or closing parenthesis that
// ends the current definition, tracking nested parentheses.
func (p *ddlParser) skipDefinition() error {
	depth := 0
	for {
		t, ok := p.peek()
		if !ok {
			return fmt.Errorf("unterminated definition")
		}
		switch t.typ {
		case tokLParen:
			depth++
		case tokRParen:
			if depth == 0 {
				return nil
			}
			depth--
		case tokComma:
			if depth == 0 {
				return nil
			}
		}
		p.pos++
	}
}

// skipParens discards a balanced parenthesized group starting at the current
// opening parenthesis.
func (p *ddlParser) skipParens() error {
	if _, err := p.expectType(tokLParen, "("); err != nil {
		return err
	}
	depth := 1
	for depth > 0 {
		t, ok := p.next()
		if !ok {
			return fmt.Errorf("unterminated parenthesized group")
		}
		switch t.typ {
		case tokLParen:
			depth++
		case tokRParen:
			depth--
		}
	}
	return nil
}

func (p *ddlParser) parseColumnDef() (*columnDef, error) {
	name, err := p.expectType(tokIdent, "column name")
	if err != nil {
		return nil, err
	}
	typ, err := p.parseColumnType()
	if err != nil {
		return nil, err
	}
	col := &columnDef{Name: name.value, Type: typ}

	for {
		t, ok := p.peek()
		if !ok || t.typ == tokComma || t.typ == tokRParen {
			return col, nil
		}

		switch {
		case t.keywordIs("not"):
			p.pos++
			if err := p.expectKeyword("null"); err != nil {
				return nil, err
			}
			col.NotNull = true

		case t.keywordIs("null"):
			p.pos++
			col.NotNull = false

		case t.keywordIs("default"):
			p.pos++
			value, err := p.parseScalarExpr()
			if err != nil {
				return nil, err
			}
			if !strings.EqualFold(value, "null") {
				col.Default = value
			}

		case t.keywordIs("auto_increment"):
			p.pos++
			col.AutoIncrement = true

		case t.keywordIs("primary"):
			p.pos++
			if err := p.expectKeyword("key"); err != nil {
				return nil, err
			}
			col.PrimaryKey = true

		case t.keywordIs("unique"):
			p.pos++
			if n, ok := p.peek(); ok && n.keywordIs("key") {
				p.pos++
			}
			col.Unique = true

		case t.keywordIs("comment"):
			p.pos++
			s, err := p.expectType(tokString, "comment string")
			if err != nil {
				return nil, err
			}
			col.Comment = s.value

		case t.keywordIs("on"):
			p.pos++
			if err := p.expectKeyword("update"); err != nil {
				return nil, err
			}
			value, err := p.parseScalarExpr()
			if err != nil {
				return nil, err
			}
			col.OnUpdate = value

		case t.keywordIs("character"):
			p.pos++
			if err := p.expectKeyword("set"); err != nil {
				return nil, err
			}
			if _, err := p.expectType(tokIdent, "character set name"); err != nil {
				return nil, err
			}

		case t.keywordIs("collate"):
			p.pos++
			if _, err := p.expectType(tokIdent, "collation name"); err != nil {
				return nil, err
			}

		case t.keywordIs("unsigned") || t.keywordIs("zerofill"):
			p.pos++
			col.Type += " " + strings.ToLower(t.value)

		default:
			return nil, fmt.Errorf("unexpected %q in column definition at position %d", t.value, t.pos)
		}
	}
}

// parseColumnType reads a type name with an optional parenthesized argument
// list, e.g. varchar(255) or decimal(10,2) or enum('a','b').
func (p *ddlParser) parseColumnType() (string, error) {
	t, err := p.expectType(tokIdent, "column type")
	if err != nil {
		return "", err
	}
	typ := strings.ToLower(t.value)

	n, ok := p.peek()
	if !ok || n.typ != tokLParen {
		return typ, nil
	}
	p.pos++
	var args []string
	for {
		a, ok := p.next()
		if !ok {
			return "", fmt.Errorf("unterminated type arguments for %s", typ)
		}
		switch a.typ {
		case tokRParen:
			return typ + "(" + strings.Join(args, ",") + ")", nil
		case tokComma:
			continue
		case tokString:
			args = append(args, "'"+a.value+"'")
		default:
			args = append(args, a.value)
		}
	}
}

// parseScalarExpr reads a literal or a bare function reference such as
// CURRENT_TIMESTAMP or CURRENT_TIMESTAMP(3).
func (p *ddlParser) parseScalarExpr() (string, error) {
	t, ok := p.next()
	if !ok {
		return "", fmt.Errorf("expected value, got end of input")
	}
	switch t.typ {
	case tokString, tokNumber:
		return t.value, nil
	case tokIdent:
		value := t.value
		if n, ok := p.peek(); ok && n.typ == tokLParen {
			p.pos++
			var inner []string
			for {
				a, ok := p.next()
				if !ok {
					return "", fmt.Errorf("unterminated call in expression")
				}
				if a.typ == tokRParen {
					break
				}
				inner = append(inner, a.value)
			}
			value += "(" + strings.Join(inner, "") + ")"
		}
		return value, nil
	default:
		return "", fmt.Errorf("unexpected %q in expression at position %d", t.value, t.pos)
	}
}

// parseTableOptions consumes "KEY = value" pairs after the definition list,
// capturing COMMENT and ignoring the rest. Parsing stops at a semicolon or at
// end of input.
func (p *ddlParser) parseTableOptions(stmt *createTableStmt) error {
	for {
		t, ok := p.peek()
		if !ok {
			return nil
		}
		if t.typ == tokSemicolon {
			p.pos++
			return nil
		}
		if t.typ != tokIdent {
			return fmt.Errorf("unexpected %q after column list at position %d", t.value, t.pos)
		}
		p.pos++
		key := strings.ToLower(t.value)
		if key == "default" {
			// DEFAULT CHARSET / DEFAULT COLLATE prefix.
			continue
		}
		if n, ok := p.peek(); ok && n.typ == tokEquals {
			p.pos++
		}
		v, ok := p.next()
		if !ok {
			return fmt.Errorf("missing value for table option %s", key)
		}
		if key == "comment" {
			if v.typ != tokString {
				return fmt.Errorf("table comment must be a string, got %q at position %d", v.value, v.pos)
			}
			stmt.TableComment = v.value
		}
	}
}
