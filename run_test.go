// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/parsec"
)

type (
	maybe = parsec.Maybe[parsec.Erased]
	// MP is a text parser over the Maybe computation.
	MP[A any] = parsec.Parser[parsec.Text, parsec.None, maybe, A]

	either = parsec.Either[string, parsec.Erased]
	// EP is a text parser over the Either computation.
	EP[A any] = parsec.Parser[parsec.Text, parsec.None, either, A]

	cont = parsec.Cont[parsec.Erased, parsec.Erased]
	// CP is a text parser over the Cont computation.
	CP[A any] = parsec.Parser[parsec.Text, parsec.None, cont, A]
)

func TestRunMaybe(t *testing.T) {
	ab := parsec.Bind(parsec.Char[parsec.Text, parsec.None, maybe]('a'), func(rune) MP[rune] {
		return parsec.Char[parsec.Text, parsec.None, maybe]('b')
	})

	v, ok := parsec.RunMaybe(ab, text("ab")).Get()
	require.True(t, ok)
	require.Equal(t, 'b', v)

	require.True(t, parsec.RunMaybe(ab, text("xb")).IsNothing())
}

func TestRunMaybeLiftedNothing(t *testing.T) {
	abort := parsec.Lift[parsec.Text, parsec.None, rune](parsec.Nothing[parsec.Erased]())
	fallback := parsec.Pure[parsec.Text, parsec.None, maybe]('z')

	// A base computation failure is not a parse failure: Alt cannot recover it.
	p := parsec.Alt(abort, fallback)
	require.True(t, parsec.RunMaybe(p, text("")).IsNothing())

	lifted := parsec.Lift[parsec.Text, parsec.None, rune](parsec.Just[parsec.Erased]('q'))
	v, ok := parsec.RunMaybe(lifted, text("")).Get()
	require.True(t, ok)
	require.Equal(t, 'q', v)
}

func TestRunEither(t *testing.T) {
	a := parsec.Char[parsec.Text, parsec.None, either]('a')
	abort := parsec.Lift[parsec.Text, parsec.None, rune](parsec.Left[string, parsec.Erased]("boom"))

	var p EP[rune] = parsec.Then(a, abort)
	out := parsec.RunEither(p, text("a"))
	e, ok := out.GetLeft()
	require.True(t, ok)
	require.Equal(t, "boom", e)

	out = parsec.RunEither(a, text("a"))
	res, ok := out.GetRight()
	require.True(t, ok)
	v, _, ok := res.Get()
	require.True(t, ok)
	require.Equal(t, 'a', v)

	// A parse failure is a Right carrying the failed Result.
	res, ok = parsec.RunEither(a, text("x")).GetRight()
	require.True(t, ok)
	require.False(t, res.IsOk())
}

func TestRunCont(t *testing.T) {
	digits := parsec.Many(parsec.Digit[parsec.Text, parsec.None, cont]())
	res, ok := parsec.RunCont(digits, text("42;"))
	require.True(t, ok)
	v, s, _ := res.Get()
	require.Equal(t, []rune("42"), v)
	require.Equal(t, ";", s.Input.Remaining())
}

func TestRunContEscape(t *testing.T) {
	escape := parsec.Lift[parsec.Text, parsec.None, rune](parsec.Escape[parsec.Erased, parsec.Erased]("escaped"))
	var p CP[rune] = parsec.Then(parsec.Char[parsec.Text, parsec.None, cont]('a'), escape)

	_, ok := parsec.RunCont(p, text("ab"))
	require.False(t, ok)

	// The escaped value reaches the caller's continuation unchanged.
	out := parsec.Run(p, text("ab"))(func(x parsec.Erased) parsec.Erased { return x })
	require.Equal(t, "escaped", out)
}

// The final continuation runs once per successful parse.
func TestRunContCallsContinuationOnce(t *testing.T) {
	var calls int
	p := parsec.Many(parsec.Char[parsec.Text, parsec.None, cont]('a'))
	out := parsec.Run(p, text("aa"))(func(x parsec.Erased) parsec.Erased {
		calls++
		return x
	})
	require.Equal(t, 1, calls)
	v, _, ok := out.(parsec.Result[parsec.Text, parsec.None, []rune]).Get()
	require.True(t, ok)
	require.Equal(t, []rune("aa"), v)
}

func TestParse(t *testing.T) {
	v, err := parsec.Parse(str("hello"), "greeting.txt", "hello world")
	require.NoError(t, err)
	require.Equal(t, "hello", v)

	_, err = parsec.Parse(char('a'), "input.txt", "b")
	require.Error(t, err)

	var perr parsec.ParseError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, "input.txt", perr.Pos.Name)
	require.Equal(t, "input.txt:1:1: unexpected 'b'; expected 'a'", err.Error())

	// The wrapped error carries a stack trace.
	require.Contains(t, fmt.Sprintf("%+v", err), "run_test.go")
}

func TestResultErr(t *testing.T) {
	res := parsec.RunIdentity(char('a'), text("a"))
	require.NoError(t, res.Err())
	require.True(t, res.Hint().IsUnknown())

	res = parsec.RunIdentity(char('a'), text("b"))
	require.EqualError(t, res.Err(), "1:1: unexpected 'b'; expected 'a'")
}

func TestConcurrentRuns(t *testing.T) {
	number := parsec.Lazy(func() P[[]rune] { return parsec.Some(digit()) })
	list := parsec.SepBy(number, char(','))

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			in := fmt.Sprintf("%d,%d,%d", i, i+1, i+2)
			v, err := parsec.Parse(list, "", in)
			if err != nil {
				t.Errorf("%q: %v", in, err)
				return
			}
			if len(v) != 3 {
				t.Errorf("%q: got %d items", in, len(v))
			}
		}()
	}
	wg.Wait()
}
