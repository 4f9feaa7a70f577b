// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec

// User state operations.
// The user state U threads through the parse inside State; it follows the
// input, so a branch abandoned by Alt or Try leaves no trace in it.

// GetUser returns the current user state.
func GetUser[S, U any, M Monad[M]]() Parser[S, U, M, U] {
	return func(s State[S, U]) M {
		return emit[S, U, M](false, Ok(s.User, s, unknownError(positionOf(s.Input))))
	}
}

// PutUser replaces the user state.
func PutUser[S, U any, M Monad[M]](u U) Parser[S, U, M, None] {
	return func(s State[S, U]) M {
		return emit[S, U, M](false, Ok(None{}, s.WithUser(u), unknownError(positionOf(s.Input))))
	}
}

// ModifyUser applies f to the user state and returns the new state.
func ModifyUser[S, U any, M Monad[M]](f func(U) U) Parser[S, U, M, U] {
	return func(s State[S, U]) M {
		u := f(s.User)
		return emit[S, U, M](false, Ok(u, s.WithUser(u), unknownError(positionOf(s.Input))))
	}
}

// GetPosition returns the current input position.
// Inputs that are not streams report the zero Position.
func GetPosition[S, U any, M Monad[M]]() Parser[S, U, M, Position] {
	return func(s State[S, U]) M {
		pos := positionOf(s.Input)
		return emit[S, U, M](false, Ok(pos, s, unknownError(pos)))
	}
}
