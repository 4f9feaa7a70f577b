// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsec

// Consumption tags a payload with whether the parser that produced it
// advanced its input. The tag is set once by a primitive parser; combinators
// propagate or merge it but never invent consumption.
type Consumption[X any] struct {
	consumed bool
	value    X
}

// Consumed tags x as produced after input was consumed.
func Consumed[X any](x X) Consumption[X] {
	return Consumption[X]{consumed: true, value: x}
}

// Empty tags x as produced without consuming input.
func Empty[X any](x X) Consumption[X] {
	return Consumption[X]{value: x}
}

// IsConsumed returns true if input was consumed.
func (c Consumption[X]) IsConsumed() bool {
	return c.consumed
}

// IsEmpty returns true if no input was consumed.
func (c Consumption[X]) IsEmpty() bool {
	return !c.consumed
}

// Get returns the tagged payload.
func (c Consumption[X]) Get() X {
	return c.value
}

// MatchConsumption pattern matches on the tag, calling onConsumed or onEmpty.
func MatchConsumption[X, T any](c Consumption[X], onConsumed func(X) T, onEmpty func(X) T) T {
	if c.consumed {
		return onConsumed(c.value)
	}
	return onEmpty(c.value)
}

// MapConsumption applies f to the payload, keeping the tag.
func MapConsumption[X, Y any](c Consumption[X], f func(X) Y) Consumption[Y] {
	return Consumption[Y]{consumed: c.consumed, value: f(c.value)}
}
