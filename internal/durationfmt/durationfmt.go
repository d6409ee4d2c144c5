// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package durationfmt renders elapsed time in the compact form used by Go's
// time.Duration, for example "72h3m0.5s".
//
// Leading zero units are omitted. Durations shorter than one second use a
// smaller unit (milli-, micro- or nanoseconds) so that the leading digit is
// non-zero. The zero duration formats as "0s". Hours are the largest unit;
// days are never used because their length depends on the calendar.
package durationfmt

import "fmt"

// NanosPerSecond is the exclusive upper bound of the sub-second part.
const NanosPerSecond = 1_000_000_000

// Format returns the text form of seconds plus nanos nanoseconds.
//
// nanos must be below NanosPerSecond; Format panics otherwise. Use New to
// validate untrusted input first.
func Format(seconds uint64, nanos uint32) string {
	if nanos >= NanosPerSecond {
		panic(fmt.Sprintf("durationfmt: nanos %d out of range [0, %d)", nanos, NanosPerSecond))
	}

	// Widest value is 5124095576030430h59m59.999999999s
	var buf [33]byte
	w := len(buf)

	if seconds == 0 {
		// Less than one second: use a smaller unit, like 1.2ms.
		var prec int
		switch {
		case nanos == 0:
			return "0s"
		case nanos < 1_000:
			// nanoseconds
			prec = 0
			w -= 2
			buf[w] = 'n'
			buf[w+1] = 's'
		case nanos < 1_000_000:
			// microseconds, U+00B5 'µ' is 0xC2 0xB5 in UTF-8
			prec = 3
			w -= 3
			buf[w] = 0xC2
			buf[w+1] = 0xB5
			buf[w+2] = 's'
		default:
			// milliseconds
			prec = 6
			w -= 2
			buf[w] = 'm'
			buf[w+1] = 's'
		}

		var u uint64
		w, u = fmtFrac(buf[:w], uint64(nanos), prec)
		w = fmtInt(buf[:w], u)
		return string(buf[w:])
	}

	w--
	buf[w] = 's'

	w, _ = fmtFrac(buf[:w], uint64(nanos), 9)

	// u is integer seconds
	u := seconds
	w = fmtInt(buf[:w], u%60)
	u /= 60

	// u is integer minutes
	if u > 0 {
		w--
		buf[w] = 'm'
		w = fmtInt(buf[:w], u%60)
		u /= 60

		// u is integer hours
		if u > 0 {
			w--
			buf[w] = 'h'
			w = fmtInt(buf[:w], u)
		}
	}

	return string(buf[w:])
}

// fmtFrac formats the fraction of v/10**prec (e.g., ".12345") into the
// tail of buf, omitting trailing zeros. It omits the decimal point too when
// the fraction is 0. It returns the index where the output bytes begin and
// the value v/10**prec.
func fmtFrac(buf []byte, v uint64, prec int) (nw int, nv uint64) {
	w := len(buf)
	print := false
	for i := 0; i < prec; i++ {
		digit := v % 10
		print = print || digit != 0
		if print {
			w--
			buf[w] = byte(digit) + '0'
		}
		v /= 10
	}
	if print {
		w--
		buf[w] = '.'
	}
	return w, v
}

// fmtInt formats v into the tail of buf.
// It returns the index where the output begins.
func fmtInt(buf []byte, v uint64) int {
	w := len(buf)
	if v == 0 {
		w--
		buf[w] = '0'
	} else {
		for v > 0 {
			w--
			buf[w] = byte(v%10) + '0'
			v /= 10
		}
	}
	return w
}
