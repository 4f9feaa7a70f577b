// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package parsec provides monadic parser combinators over an abstract base
// computation, in the style of Parsec.
//
// A [Parser] is a function from a [State] to a base computation M. Every
// result is tagged twice: with whether input was consumed ([Consumption]) and
// with whether the parse succeeded ([Reply]). The combinators merge these tags
// by fixed rules, which makes choice predictive: an alternative is tried only
// when the previous one failed without consuming input.
//
// # Design Philosophy
//
// parsec provides:
//   - Precise consumed/empty bookkeeping, so choice never re-scans a consumed prefix
//   - Explicit backtracking with [Try], the only way to undo consumption
//   - F-bounded polymorphism over the base computation, in place of higher-kinded types
//
// # Base Computations
//
// [Monad] is the F-bounded interface type M Monad[M] of base computations.
// Payloads are type-erased ([Erased]); concrete types are recovered at layer
// boundaries. A parser's outer M carries a Consumption[M]; the tagged inner M
// carries the Reply. The outer effect happens before it is known whether input
// will be consumed, the inner effect after.
//
// Instances:
//
//   - [Maybe]: Minimal instance with no side channel ([Just], [Nothing])
//   - [Identity]: Plain values
//   - [Either]: Abort a parse with a typed error ([Left], [Right])
//   - [Cont]: Continuation-passing; sequencing delegated to the continuation
//   - [Trace]: Writer of [TraceEvent] values, implementing [Teller]
//
// # Tags
//
//   - [Consumed], [Empty]: Consumption constructors
//   - [Ok], [Error]: Reply constructors; both carry a [ParseError] hint
//   - [MergeError]: Hint merging (furthest position wins, equal positions accumulate)
//
// # Core Operations
//
//   - [Pure]: Succeed without consuming input
//   - [Fail], [Unexpected]: Fail without consuming input
//   - [Bind]: Sequence; Consumed if either side consumed
//   - [Map], [Then], [Skip]: Derived sequencing
//   - [Lift]: Embed a base computation
//   - [Lazy], [Fix]: Recursive grammar rules
//
// # Choice and Backtracking
//
//   - [Alt], [Choice]: Ordered, predictive choice
//   - [Try]: Turn a consumed failure into an empty one
//   - [Label]: Name what a parser expects
//   - [Option], [Optional], [LookAhead]
//
// # Repetition
//
//   - [Many], [Some]: Zero or more, one or more; panic with [ErrEmptyLoop]
//     on a parser that succeeds without consuming input
//   - [SkipMany], [SepBy], [SepBy1], [Between], [Count], [ManyTill], [ChainL1]
//
// Repetition runs in constant stack space on instances implementing [Looper].
// All built-in instances do; others fall back to nested binds.
//
// # Primitives
//
// Input implements the F-bounded [Stream] interface. [Text] streams runes
// from a string; [Tokens] streams the elements of a slice.
//
//   - [Satisfy], [AnyToken], [Equal], [EOF]: Any stream
//   - [Char], [AnyChar], [OneOf], [NoneOf], [Digit], [Letter], [Space],
//     [Spaces], [String], [Keyword]: Rune streams
//   - [GetUser], [PutUser], [ModifyUser], [GetPosition]: State access
//
// # Running
//
//   - [Run]: Generic runner yielding a [Result] inside M
//   - [Observe]: Generic runner exposing the consumption tag
//   - [RunMaybe], [RunIdentity], [RunEither], [RunCont], [RunTrace]: Specializations
//   - [Parse]: Text input with an error return
//
// # Example
//
//	type P[A any] = parsec.Parser[parsec.Text, parsec.None, parsec.Maybe[parsec.Erased], A]
//
//	var ab P[rune] = parsec.Bind(
//		parsec.Char[parsec.Text, parsec.None, parsec.Maybe[parsec.Erased]]('a'),
//		func(rune) P[rune] {
//			return parsec.Char[parsec.Text, parsec.None, parsec.Maybe[parsec.Erased]]('b')
//		},
//	)
//
//	r := parsec.RunMaybe(ab, parsec.NewState(parsec.NewText("", "ab"), parsec.None{}))
//	// r == Just('b')
package parsec
