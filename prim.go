// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// Primitive parsers inspect the input directly. A primitive either matches
// and returns Consumed(Ok) with the cursor strictly advanced, or fails and
// returns Empty(Error) with the cursor where it was. Only String may return
// Consumed(Error), when it matched a proper prefix of its argument.

// showToken renders an input element for error messages.
func showToken(t any) string {
	switch v := t.(type) {
	case rune:
		return strconv.QuoteRune(v)
	case byte:
		return strconv.QuoteRune(rune(v))
	case string:
		return strconv.Quote(v)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(t)
}

// sysUnexpect describes the element at the head of input, or end of input.
func sysUnexpect[S Stream[S, T], T any](input S) Message {
	t, _, ok := input.Uncons()
	if !ok {
		return Message{Kind: SysUnexpect}
	}
	return Message{Kind: SysUnexpect, Text: showToken(t)}
}

// Satisfy accepts the next element if pred returns true for it.
func Satisfy[S Stream[S, T], T, U any, M Monad[M]](pred func(T) bool) Parser[S, U, M, T] {
	return func(s State[S, U]) M {
		t, rest, ok := s.Input.Uncons()
		if !ok || !pred(t) {
			hint := ParseError{Pos: s.Input.Pos(), Messages: []Message{sysUnexpect[S, T](s.Input)}}
			return emit[S, U, M](false, Error[S, U, T](hint))
		}
		return emit[S, U, M](true, Ok(t, s.WithInput(rest), unknownError(rest.Pos())))
	}
}

// AnyToken accepts any element.
func AnyToken[S Stream[S, T], T, U any, M Monad[M]]() Parser[S, U, M, T] {
	return Satisfy[S, T, U, M](func(T) bool { return true })
}

// Equal accepts the element t.
func Equal[S Stream[S, T], T comparable, U any, M Monad[M]](t T) Parser[S, U, M, T] {
	return Label(Satisfy[S, T, U, M](func(x T) bool { return x == t }), showToken(t))
}

// EOF succeeds only at the end of input.
func EOF[S Stream[S, T], T, U any, M Monad[M]]() Parser[S, U, M, None] {
	return func(s State[S, U]) M {
		pos := s.Input.Pos()
		t, _, ok := s.Input.Uncons()
		if !ok {
			return emit[S, U, M](false, Ok(None{}, s, unknownError(pos)))
		}
		hint := ParseError{Pos: pos, Messages: []Message{
			{Kind: Unexpect, Text: showToken(t)},
			{Kind: Expect, Text: "end of input"},
		}}
		return emit[S, U, M](false, Error[S, U, None](hint))
	}
}

// Char accepts the rune c.
func Char[S Stream[S, rune], U any, M Monad[M]](c rune) Parser[S, U, M, rune] {
	return Label(Satisfy[S, rune, U, M](func(r rune) bool { return r == c }), strconv.QuoteRune(c))
}

// AnyChar accepts any rune.
func AnyChar[S Stream[S, rune], U any, M Monad[M]]() Parser[S, U, M, rune] {
	return AnyToken[S, rune, U, M]()
}

// OneOf accepts any rune contained in chars.
func OneOf[S Stream[S, rune], U any, M Monad[M]](chars string) Parser[S, U, M, rune] {
	return Satisfy[S, rune, U, M](func(r rune) bool { return strings.ContainsRune(chars, r) })
}

// NoneOf accepts any rune not contained in chars.
func NoneOf[S Stream[S, rune], U any, M Monad[M]](chars string) Parser[S, U, M, rune] {
	return Satisfy[S, rune, U, M](func(r rune) bool { return !strings.ContainsRune(chars, r) })
}

// Digit accepts a decimal digit.
func Digit[S Stream[S, rune], U any, M Monad[M]]() Parser[S, U, M, rune] {
	return Label(Satisfy[S, rune, U, M](unicode.IsDigit), "digit")
}

// Letter accepts a Unicode letter.
func Letter[S Stream[S, rune], U any, M Monad[M]]() Parser[S, U, M, rune] {
	return Label(Satisfy[S, rune, U, M](unicode.IsLetter), "letter")
}

// Space accepts a white space rune.
func Space[S Stream[S, rune], U any, M Monad[M]]() Parser[S, U, M, rune] {
	return Label(Satisfy[S, rune, U, M](unicode.IsSpace), "space")
}

// Spaces skips zero or more white space runes.
func Spaces[S Stream[S, rune], U any, M Monad[M]]() Parser[S, U, M, None] {
	return Label(SkipMany(Space[S, U, M]()), "white space")
}

// String accepts the exact rune sequence str.
//
// If the input matches a proper prefix of str before diverging, String has
// consumed input and fails with Consumed(Error); wrap it in Try to
// backtrack. The hint is reported at the start of the attempted match.
func String[S Stream[S, rune], U any, M Monad[M]](str string) Parser[S, U, M, string] {
	expect := strconv.Quote(str)
	return func(s State[S, U]) M {
		in := s.Input
		consumed := false
		for _, want := range str {
			r, rest, ok := in.Uncons()
			if !ok || r != want {
				hint := ParseError{Pos: s.Input.Pos(), Messages: []Message{
					sysUnexpect[S, rune](in),
					{Kind: Expect, Text: expect},
				}}
				return emit[S, U, M](consumed, Error[S, U, string](hint))
			}
			in = rest
			consumed = true
		}
		return emit[S, U, M](consumed, Ok(str, s.WithInput(in), unknownError(in.Pos())))
	}
}

// Keyword accepts a whole word (a run of letters, digits and underscores)
// equal to one of words. A word that is not a keyword is not consumed; the
// hint names the expected keywords and, for near misses, suggests the
// closest ones.
func Keyword[S Stream[S, rune], U any, M Monad[M]](words ...string) Parser[S, U, M, string] {
	return func(s State[S, U]) M {
		var sb strings.Builder
		in := s.Input
		for {
			r, rest, ok := in.Uncons()
			if !ok || !isWordRune(r) {
				break
			}
			sb.WriteRune(r)
			in = rest
		}
		word := sb.String()
		if word != "" && slices.Contains(words, word) {
			return emit[S, U, M](true, Ok(word, s.WithInput(in), unknownError(in.Pos())))
		}

		hint := ParseError{Pos: s.Input.Pos()}
		if word == "" {
			hint = hint.with(sysUnexpect[S, rune](s.Input))
		} else {
			hint = hint.with(Message{Kind: Unexpect, Text: strconv.Quote(word)})
		}
		for _, w := range words {
			hint = hint.with(Message{Kind: Expect, Text: strconv.Quote(w)})
		}
		if word != "" {
			if msg := suggest(word, words); msg != "" {
				hint = hint.with(Message{Kind: Info, Text: msg})
			}
		}
		return emit[S, U, M](false, Error[S, U, string](hint))
	}
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
