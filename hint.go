// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec

import (
	"slices"
	"strings"
)

// MessageKind classifies a message in a ParseError.
type MessageKind uint8

const (
	// SysUnexpect is generated by primitives for the element they saw.
	// An empty text means end of input.
	SysUnexpect MessageKind = iota
	// Unexpect is generated by Unexpected.
	Unexpect
	// Expect is generated by Label and by primitives naming what they accept.
	Expect
	// Info is generated by Fail and carries free-form text.
	Info
)

// Message is a single entry of a ParseError.
type Message struct {
	Kind MessageKind
	Text string
}

// ParseError is the error hint attached to both variants of a Reply.
// On Error it describes the failure; on Ok it records the nearest failure
// seen so far, so that alternatives tried after a recovered failure can
// still report it. A ParseError without messages is unknown.
type ParseError struct {
	Pos      Position
	Messages []Message
}

func unknownError(pos Position) ParseError {
	return ParseError{Pos: pos}
}

func newError(pos Position, kind MessageKind, text string) ParseError {
	return ParseError{Pos: pos, Messages: []Message{{Kind: kind, Text: text}}}
}

// IsUnknown returns true if the error carries no messages.
func (e ParseError) IsUnknown() bool {
	return len(e.Messages) == 0
}

// Expected returns the texts of all Expect messages, without duplicates.
func (e ParseError) Expected() []string {
	return e.texts(Expect)
}

func (e ParseError) texts(kind MessageKind) []string {
	var out []string
	for _, m := range e.Messages {
		if m.Kind == kind && m.Text != "" && !slices.Contains(out, m.Text) {
			out = append(out, m.Text)
		}
	}
	return out
}

// with returns a copy of e with msg appended.
func (e ParseError) with(msg Message) ParseError {
	return ParseError{Pos: e.Pos, Messages: append(slices.Clip(e.Messages), msg)}
}

// withExpect replaces all Expect messages by a single Expect(label).
// An empty label removes them.
func (e ParseError) withExpect(label string) ParseError {
	msgs := make([]Message, 0, len(e.Messages)+1)
	for _, m := range e.Messages {
		if m.Kind != Expect {
			msgs = append(msgs, m)
		}
	}
	if label != "" {
		msgs = append(msgs, Message{Kind: Expect, Text: label})
	}
	return ParseError{Pos: e.Pos, Messages: msgs}
}

// MergeError combines two hints. An unknown error yields to a known one;
// otherwise the error further into the input wins, and errors at the same
// offset accumulate their messages.
func MergeError(a, b ParseError) ParseError {
	switch {
	case b.IsUnknown() && !a.IsUnknown():
		return a
	case a.IsUnknown() && !b.IsUnknown():
		return b
	case a.Pos.Offset > b.Pos.Offset:
		return a
	case a.Pos.Offset < b.Pos.Offset:
		return b
	}
	return ParseError{Pos: a.Pos, Messages: slices.Concat(a.Messages, b.Messages)}
}

// Error implements error with a single-line rendering:
//
//	name:1:3: unexpected 'x'; expected 'a' or 'b'; did you mean "let"?
func (e ParseError) Error() string {
	var parts []string
	unexpected := e.texts(Unexpect)
	if len(unexpected) == 0 {
		// System messages are reported only when nothing more specific was said.
		for _, m := range e.Messages {
			if m.Kind == SysUnexpect {
				if m.Text == "" {
					unexpected = []string{"end of input"}
				} else {
					unexpected = []string{m.Text}
				}
				break
			}
		}
	}
	if len(unexpected) > 0 {
		parts = append(parts, "unexpected "+strings.Join(unexpected, ", "))
	}
	if expected := e.Expected(); len(expected) > 0 {
		parts = append(parts, "expected "+joinOr(expected))
	}
	parts = append(parts, e.texts(Info)...)
	if len(parts) == 0 {
		parts = append(parts, "unknown parse error")
	}
	return e.Pos.String() + ": " + strings.Join(parts, "; ")
}

func joinOr(items []string) string {
	if len(items) == 1 {
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}
