// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec_test

import (
	"strings"
	"testing"

	"code.hybscloud.com/parsec"
)

// BenchmarkManyDigits measures a long repetition of a primitive.
func BenchmarkManyDigits(b *testing.B) {
	p := parsec.Many(digit())
	s := text(strings.Repeat("0123456789", 100))
	for b.Loop() {
		_ = parsec.RunIdentity(p, s)
	}
}

// BenchmarkChoiceMiss measures hint merging across failing alternatives.
func BenchmarkChoiceMiss(b *testing.B) {
	p := parsec.Choice(char('a'), char('b'), char('c'), char('d'), char('e'))
	s := text("z")
	for b.Loop() {
		_ = parsec.RunIdentity(p, s)
	}
}

// BenchmarkArithmetic measures a small operator grammar.
func BenchmarkArithmetic(b *testing.B) {
	number := parsec.Map(digit(), func(r rune) int { return int(r - '0') })
	plus := parsec.Map(char('+'), func(rune) func(int, int) int {
		return func(x, y int) int { return x + y }
	})
	p := parsec.ChainL1(number, plus)
	s := text(strings.Repeat("1+", 200) + "1")
	for b.Loop() {
		_ = parsec.RunIdentity(p, s)
	}
}

// BenchmarkKeywordMiss measures the suggestion path.
func BenchmarkKeywordMiss(b *testing.B) {
	p := parsec.Keyword[parsec.Text, parsec.None, ident]("function", "return", "switch", "default")
	s := text("retrun x")
	for b.Loop() {
		_ = parsec.RunIdentity(p, s)
	}
}

func TestTextUnconsAllocations(t *testing.T) {
	in := parsec.NewText("", "hello")
	allocs := testing.AllocsPerRun(100, func() {
		_, _, _ = in.Uncons()
	})
	if allocs > 0 {
		t.Errorf("Text.Uncons allocs = %v; want 0", allocs)
	}
}
