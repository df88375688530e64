// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package bexp

import (
	"github.com/ltl2aig/ltl2aig/pkg/util"
	"github.com/ltl2aig/ltl2aig/pkg/util/source"
)

// Parse parses a boolean expression -- a disjunction of conjunctions of
// possibly-negated literals, e.g. "a && !b || (c && d)" -- driving builder's
// methods directly as each construct is recognised.
func Parse[T any](input string, builder Term[T]) (T, []source.SyntaxError) {
	var (
		empty   T
		srcfile = source.NewSourceFile("label", []byte(input))
		lexer   = source.NewLexer[rune](srcfile.Contents(), scanner)
		tokens  = lexer.Collect()
	)

	if lexer.Remaining() != 0 {
		pos := len(srcfile.Contents()) - int(lexer.Remaining())
		err := srcfile.SyntaxError(source.NewSpan(pos, pos), "unknown character encountered")

		return empty, []source.SyntaxError{*err}
	}

	tokens = util.RemoveMatching(tokens, func(t source.Token) bool { return t.Kind == WHITESPACE })

	p := &parser[T]{srcfile, tokens, 0, builder}

	term, errs := p.parseDisjunction()
	if len(errs) == 0 && !p.done() {
		err := srcfile.SyntaxError(p.tokens[p.index].Span, "unexpected token")
		return term, []source.SyntaxError{*err}
	}

	return term, errs
}

// Token kinds recognised by the cube scanner.
const (
	// END_OF signals end of input.
	END_OF uint = iota
	// WHITESPACE signals one or more space/tab characters.
	WHITESPACE
	// LBRACE signals '('.
	LBRACE
	// RBRACE signals ')'.
	RBRACE
	// NOT signals '!'.
	NOT
	// AND signals '&&'.
	AND
	// OR signals '||'.
	OR
	// ONE signals the literal constant '1'.
	ONE
	// ZERO signals the literal constant '0'.
	ZERO
	// IDENTIFIER signals a signal name.
	IDENTIFIER
)

var scanner source.Scanner[rune] = source.Or(
	source.One(LBRACE, '('),
	source.One(RBRACE, ')'),
	source.One(NOT, '!'),
	source.Many(AND, '&'),
	source.Many(OR, '|'),
	source.Many(WHITESPACE, ' ', '\t'),
	source.One(ONE, '1'),
	source.One(ZERO, '0'),
	identifierScanner{},
	source.Eof[rune](END_OF),
)

// identifierScanner recognises signal names: a letter or underscore, followed
// by zero or more letters, digits or underscores.
type identifierScanner struct{}

func (identifierScanner) Scan(items []rune) util.Option[source.Token] {
	if len(items) == 0 || !isIdentStart(items[0]) {
		return util.None[source.Token]()
	}

	i := 1
	for i < len(items) && isIdentPart(items[i]) {
		i++
	}

	return util.Some(source.Token{Kind: IDENTIFIER, Span: source.NewSpan(0, i)})
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

// parser is a recursive-descent parser over the grammar:
//
//	disjunction := conjunction ('||' conjunction)*
//	conjunction := unary ('&&' unary)*
//	unary       := '!' unary | primary
//	primary     := '1' | '0' | IDENTIFIER | '(' disjunction ')'
type parser[T any] struct {
	srcfile *source.File
	tokens  []source.Token
	index   int
	builder Term[T]
}

func (p *parser[T]) done() bool {
	return p.tokens[p.index].Kind == END_OF
}

func (p *parser[T]) peek() source.Token {
	return p.tokens[p.index]
}

func (p *parser[T]) text(t source.Token) string {
	contents := p.srcfile.Contents()
	span := t.Span
	runes := contents[span.Start():span.End()]

	return string(runes)
}

func (p *parser[T]) syntaxErrors(t source.Token, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(t.Span, msg)}
}

func (p *parser[T]) parseDisjunction() (T, []source.SyntaxError) {
	lhs, errs := p.parseConjunction()
	if len(errs) != 0 {
		return lhs, errs
	}

	for p.peek().Kind == OR {
		p.index++

		rhs, errs := p.parseConjunction()
		if len(errs) != 0 {
			return rhs, errs
		}

		lhs = p.builder.Or(lhs, rhs)
	}

	return lhs, nil
}

func (p *parser[T]) parseConjunction() (T, []source.SyntaxError) {
	lhs, errs := p.parseUnary()
	if len(errs) != 0 {
		return lhs, errs
	}

	for p.peek().Kind == AND {
		p.index++

		rhs, errs := p.parseUnary()
		if len(errs) != 0 {
			return rhs, errs
		}

		lhs = p.builder.And(lhs, rhs)
	}

	return lhs, nil
}

func (p *parser[T]) parseUnary() (T, []source.SyntaxError) {
	if p.peek().Kind == NOT {
		p.index++

		inner, errs := p.parseUnary()
		if len(errs) != 0 {
			return inner, errs
		}

		return p.builder.Not(inner), nil
	}

	return p.parsePrimary()
}

func (p *parser[T]) parsePrimary() (T, []source.SyntaxError) {
	var empty T

	tok := p.peek()

	switch tok.Kind {
	case ONE:
		p.index++
		return p.builder.True(), nil
	case ZERO:
		p.index++
		return p.builder.False(), nil
	case IDENTIFIER:
		p.index++
		return p.builder.Variable(p.text(tok)), nil
	case LBRACE:
		p.index++

		inner, errs := p.parseDisjunction()
		if len(errs) != 0 {
			return inner, errs
		}

		if p.peek().Kind != RBRACE {
			return empty, p.syntaxErrors(p.peek(), "expected ')'")
		}

		p.index++

		return inner, nil
	default:
		return empty, p.syntaxErrors(tok, "expected a literal, '!', or '('")
	}
}
