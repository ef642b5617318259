// Package clock supplies millisecond timestamps for request signing and record ordering.
package clock

import "time"

// Clock returns the current time in milliseconds since the Unix epoch.
type Clock interface {
	NowMillis() int64
}

// Func adapts a plain function to Clock.
type Func func() int64

func (f Func) NowMillis() int64 {
	return f()
}

// System reads the wall clock.
var System Clock = Func(func() int64 {
	return time.Now().UnixMilli()
})

// Fixed always reports ms. Useful in tests.
func Fixed(ms int64) Clock {
	return Func(func() int64 { return ms })
}
