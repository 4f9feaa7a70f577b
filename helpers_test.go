// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec_test

import (
	"code.hybscloud.com/parsec"
)

type (
	ident  = parsec.Identity[parsec.Erased]
	textIn = parsec.State[parsec.Text, parsec.None]

	// P is a text parser over the Identity computation.
	P[A any] = parsec.Parser[parsec.Text, parsec.None, ident, A]
)

func text(src string) textIn {
	return parsec.NewState(parsec.NewText("", src), parsec.None{})
}

func char(c rune) P[rune]        { return parsec.Char[parsec.Text, parsec.None, ident](c) }
func str(s string) P[string]     { return parsec.String[parsec.Text, parsec.None, ident](s) }
func digit() P[rune]             { return parsec.Digit[parsec.Text, parsec.None, ident]() }
func anyChar() P[rune]           { return parsec.AnyChar[parsec.Text, parsec.None, ident]() }
func pure[A any](a A) P[A]       { return parsec.Pure[parsec.Text, parsec.None, ident](a) }
func fail[A any](msg string) P[A] { return parsec.Fail[parsec.Text, parsec.None, ident, A](msg) }

// observe runs p on src and returns the consumption tag with the reply.
func observe[A any](p P[A], src string) parsec.Consumption[parsec.Reply[parsec.Text, parsec.None, A]] {
	return parsec.Observe(p, text(src)).Get().(parsec.Consumption[parsec.Reply[parsec.Text, parsec.None, A]])
}

// outcome is the comparable summary of one parser run.
// Rest is set on success, Offset (of the hint) on failure.
type outcome struct {
	Consumed bool
	Ok       bool
	Value    any
	Rest     string
	Offset   int
}

func run[A any](p P[A], src string) outcome {
	c := observe(p, src)
	r := c.Get()
	o := outcome{Consumed: c.IsConsumed(), Ok: r.IsOk()}
	if v, ok := r.Value(); ok {
		o.Value = v
		o.Rest = r.State().Input.Remaining()
	} else {
		o.Offset = r.Hint().Pos.Offset
	}
	return o
}
