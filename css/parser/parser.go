package parser

import "fmt"

// Declaration is a single `name: value [!important]` pair, scanned
// from a declaration block but not yet validated against a property
// grammar.
type Declaration struct {
	Name      string
	Value     []Token
	Important bool
	At        Pos
}

// ParseOneDeclaration parses a single declaration, for contexts like an
// HTML `style` attribute. Leading whitespace/comments are skipped.
func ParseOneDeclaration(input []Token) (Declaration, error) {
	tokens := newIter(input)
	first := tokens.nextSignificant()
	if first == nil {
		return Declaration{}, fmt.Errorf("empty declaration")
	}
	return parseDeclaration(first, tokens)
}

// ParseDeclarationListString tokenizes css and parses it as a
// semicolon-separated declaration list, such as the contents of a
// style rule body or an HTML `style` attribute.
//
// Declarations that fail to parse are dropped from the result and
// reported through errs, in source order; this mirrors the engine's
// local-recovery error policy: one bad declaration never prevents the
// rest of the block from being read.
func ParseDeclarationListString(css string) (decls []Declaration, errs []error) {
	return ParseDeclarationList(Tokenize([]byte(css), true))
}

// ParseDeclarationList splits an already-tokenized stream on top-level
// `;` and parses each chunk as a declaration.
func ParseDeclarationList(input []Token) (decls []Declaration, errs []error) {
	tokens := newIter(input)
	for tokens.hasNext() {
		tok := tokens.next()
		if t, ok := tok.(DelimToken); ok && t.Value == ";" {
			continue
		}
		switch tok.(type) {
		case WhitespaceToken, Comment:
			continue
		default:
			d, err := consumeDeclarationInList(tok, tokens)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			decls = append(decls, d)
		}
	}
	return decls, errs
}

func consumeDeclarationInList(first Token, tokens *tokensIter) (Declaration, error) {
	var rest []Token
	for tokens.hasNext() {
		tok := tokens.next()
		if d, ok := tok.(DelimToken); ok && d.Value == ";" {
			break
		}
		rest = append(rest, tok)
	}
	return parseDeclaration(first, newIter(rest))
}

// parseDeclaration consumes `<ident> : <value> [!important]` starting
// at first, which has already been read off tokens.
func parseDeclaration(first Token, tokens *tokensIter) (Declaration, error) {
	name, ok := first.(IdentToken)
	if !ok {
		return Declaration{}, fmt.Errorf("%v: expected a property name, got %T", first.Pos(), first)
	}
	colon := tokens.nextSignificant()
	if colon == nil {
		return Declaration{}, fmt.Errorf("%v: expected ':' after %q, got end of declaration", first.Pos(), name.Value)
	}
	if d, ok := colon.(DelimToken); !ok || d.Value != ":" {
		return Declaration{}, fmt.Errorf("%v: expected ':' after %q", colon.Pos(), name.Value)
	}

	const (
		stateValue = iota
		stateBang
		stateImportant
	)
	var (
		value        []Token
		state        = stateValue
		bangPosition = -1
	)
	for tokens.hasNext() {
		tok := tokens.next()
		switch t := tok.(type) {
		case DelimToken:
			if state == stateValue && t.Value == "!" {
				state = stateBang
				bangPosition = len(value)
			} else {
				state = stateValue
			}
		case IdentToken:
			if state == stateBang && t.Value.Lower() == "important" {
				state = stateImportant
			} else {
				state = stateValue
			}
		case WhitespaceToken, Comment:
			// does not reset the !important lookahead
		default:
			state = stateValue
		}
		value = append(value, tok)
	}
	important := state == stateImportant
	if important {
		value = value[:bangPosition]
	}
	return Declaration{Name: string(name.Value), Value: value, Important: important, At: first.Pos()}, nil
}

// tokensIter is a small cursor over a token slice, used by the
// declaration parser to look ahead past whitespace and comments.
type tokensIter struct {
	tokens []Token
	pos    int
}

func newIter(tokens []Token) *tokensIter { return &tokensIter{tokens: tokens} }

func (it *tokensIter) hasNext() bool { return it.pos < len(it.tokens) }

func (it *tokensIter) next() Token {
	t := it.tokens[it.pos]
	it.pos++
	return t
}

func (it *tokensIter) nextSignificant() Token {
	for it.hasNext() {
		t := it.next()
		switch t.Kind() {
		case KWhitespace, KComment:
			continue
		default:
			return t
		}
	}
	return nil
}
