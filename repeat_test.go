// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/parsec"
)

// requireEmptyLoop runs f and checks that it panics with ErrEmptyLoop.
func requireEmptyLoop(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "want panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, parsec.ErrEmptyLoop)
	}()
	f()
}

func TestManyPureLoopPanics(t *testing.T) {
	requireEmptyLoop(t, func() { observe(parsec.Many(pure(1)), "abc") })
}

func TestManyLoopPanicsAfterConsumption(t *testing.T) {
	requireEmptyLoop(t, func() { observe(parsec.Many(parsec.Optional(char('a'))), "aab") })
}

func TestManyFail(t *testing.T) {
	o := run(parsec.Many(fail[int]("no")), "abc")
	require.True(t, o.Ok)
	require.False(t, o.Consumed)
	require.Empty(t, o.Value)
	require.Equal(t, "abc", o.Rest)
}

func TestSomeFail(t *testing.T) {
	o := run(parsec.Some(fail[int]("no")), "abc")
	require.False(t, o.Ok)
	require.False(t, o.Consumed)
}

func TestManyDigits(t *testing.T) {
	got := run(parsec.Many(digit()), "123x")
	want := outcome{Consumed: true, Ok: true, Value: []rune("123"), Rest: "x"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestManyStopsOnConsumedFailure(t *testing.T) {
	o := run(parsec.Many(str("ab")), "ababac")
	require.False(t, o.Ok)
	require.True(t, o.Consumed)
	require.Equal(t, 4, o.Offset)
}

// Results collected by Many stay intact when the continuation of a
// repetition runs more than once.
func TestManyResultsIndependent(t *testing.T) {
	words := parsec.SepBy(parsec.Some(parsec.Letter[parsec.Text, parsec.None, ident]()), char(' '))
	o := run(words, "ab cd ef")
	require.Equal(t, [][]rune{[]rune("ab"), []rune("cd"), []rune("ef")}, o.Value)
}

func TestSkipMany(t *testing.T) {
	o := run(parsec.Then(parsec.SkipMany(char(' ')), char('x')), "   x")
	require.True(t, o.Ok)
	require.Equal(t, 'x', o.Value)
}

func TestSepBy(t *testing.T) {
	tests := []struct {
		in   string
		want outcome
	}{
		{"1,2,3", outcome{Consumed: true, Ok: true, Value: []rune("123"), Rest: ""}},
		{"", outcome{Consumed: false, Ok: true, Value: []rune{}, Rest: ""}},
		{"x", outcome{Consumed: false, Ok: true, Value: []rune{}, Rest: "x"}},
		{"1,", outcome{Consumed: true, Ok: false, Offset: 2}},
	}
	p := parsec.SepBy(digit(), char(','))
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, run(p, tt.in)); diff != "" {
			t.Fatalf("%q (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestSepBy1RequiresOne(t *testing.T) {
	o := run(parsec.SepBy1(digit(), char(',')), "x")
	require.False(t, o.Ok)
	require.False(t, o.Consumed)
}

func TestBetween(t *testing.T) {
	p := parsec.Between(char('('), char(')'), parsec.Many(digit()))
	require.Equal(t, []rune("42"), run(p, "(42)").Value)

	o := run(p, "(42")
	require.False(t, o.Ok)
	require.Equal(t, 3, o.Offset)
}

func TestCount(t *testing.T) {
	got := run(parsec.Count(3, digit()), "12345")
	require.Equal(t, outcome{Consumed: true, Ok: true, Value: []rune("123"), Rest: "45"}, got)

	o := run(parsec.Count(3, digit()), "12")
	require.False(t, o.Ok)
	require.True(t, o.Consumed)

	require.Equal(t, []rune{}, run(parsec.Count(0, digit()), "12").Value)
}

func TestManyTill(t *testing.T) {
	comment := parsec.Then(str("<!--"), parsec.ManyTill(anyChar(), parsec.Try(str("-->"))))
	o := run(comment, "<!-- a -- b -->rest")
	require.True(t, o.Ok)
	require.Equal(t, []rune(" a -- b "), o.Value)
	require.Equal(t, "rest", o.Rest)

	o = run(comment, "<!-- open")
	require.False(t, o.Ok)
	require.True(t, o.Consumed)
}

func TestChainL1(t *testing.T) {
	number := parsec.Map(parsec.Some(digit()), func(ds []rune) int {
		n := 0
		for _, d := range ds {
			n = n*10 + int(d-'0')
		}
		return n
	})
	binop := func(c rune, f func(a, b int) int) P[func(int, int) int] {
		return parsec.Map(char(c), func(rune) func(int, int) int { return f })
	}
	term := parsec.ChainL1(number, binop('*', func(a, b int) int { return a * b }))
	expr := parsec.ChainL1(term, parsec.Alt(
		binop('+', func(a, b int) int { return a + b }),
		binop('-', func(a, b int) int { return a - b }),
	))

	tests := map[string]int{
		"7":        7,
		"1-2-3":    -4,
		"2*3+4":    10,
		"2+3*4":    14,
		"100-10*9": 10,
	}
	for in, want := range tests {
		o := run(parsec.Skip(expr, parsec.EOF[parsec.Text, rune, parsec.None, ident]()), in)
		require.True(t, o.Ok, "%q", in)
		require.Equal(t, want, o.Value, "%q", in)
	}
}
