// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec

import "unicode/utf8"

// Text is a Stream of runes over a UTF-8 string.
// It tracks line and column; a newline advances the line and resets the column.
type Text struct {
	src string
	pos Position
}

// NewText creates a Text stream over src. The name labels error positions.
func NewText(name, src string) Text {
	return Text{src: src, pos: Position{Name: name, Line: 1, Column: 1}}
}

// Uncons implements Stream.
// Invalid UTF-8 decodes as utf8.RuneError consuming one byte.
func (t Text) Uncons() (rune, Text, bool) {
	if t.pos.Offset >= len(t.src) {
		return 0, t, false
	}
	r, size := utf8.DecodeRuneInString(t.src[t.pos.Offset:])
	next := t
	next.pos.Offset += size
	if r == '\n' {
		next.pos.Line++
		next.pos.Column = 1
	} else {
		next.pos.Column++
	}
	return r, next, true
}

// Pos implements Stream. Offset is measured in bytes.
func (t Text) Pos() Position {
	return t.pos
}

// Remaining returns the unconsumed input.
func (t Text) Remaining() string {
	return t.src[t.pos.Offset:]
}

// Tokens is a Stream over a slice of tokens, typically the output of an
// external lexer. Column tracks the token index; Line is always 1.
type Tokens[T any] struct {
	items []T
	off   int
	name  string
}

// NewTokens creates a Tokens stream over items. The slice must not be
// modified while any parse over it is in progress.
func NewTokens[T any](name string, items []T) Tokens[T] {
	return Tokens[T]{items: items, name: name}
}

// Uncons implements Stream.
func (t Tokens[T]) Uncons() (T, Tokens[T], bool) {
	if t.off >= len(t.items) {
		var zero T
		return zero, t, false
	}
	return t.items[t.off], Tokens[T]{items: t.items, off: t.off + 1, name: t.name}, true
}

// Pos implements Stream.
func (t Tokens[T]) Pos() Position {
	return Position{Name: t.name, Offset: t.off, Line: 1, Column: t.off + 1}
}

// Remaining returns the unconsumed tokens.
func (t Tokens[T]) Remaining() []T {
	return t.items[t.off:]
}
