// Package bcd converts clock time strings into binary-coded-decimal panel
// matrices.
package bcd

import (
	"fmt"
	"strings"
)

const (
	// Bits is the number of bits per encoded digit.
	Bits = 4
	// Rows is the number of matrix rows (one per bit, most significant first).
	Rows = Bits
	// Cols is the number of matrix columns (one per time digit: HHMMSS).
	Cols = 6
)

// Sequence is one decimal digit encoded as four bits, most significant first.
type Sequence [Bits]bool

// Value reads the sequence back as an unsigned binary number.
func (s Sequence) Value() int {
	v := 0
	for _, bit := range s {
		v <<= 1
		if bit {
			v |= 1
		}
	}
	return v
}

// String renders the sequence as "0" and "1" characters, e.g. "0111".
func (s Sequence) String() string {
	var b strings.Builder
	for _, bit := range s {
		if bit {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Encode returns the BCD sequence for d. d must be in 0..9.
func Encode(d int) Sequence {
	if d < 0 || d > 9 {
		panic(fmt.Sprintf("bcd: digit %d out of range", d))
	}
	var s Sequence
	for i := 0; i < Bits; i++ {
		s[i] = d&(1<<(Bits-1-i)) != 0
	}
	return s
}

// Matrix is the panel grid for one time string. Row r, column c holds bit r
// of digit c.
type Matrix [Rows][Cols]bool

// Digits returns the decimal digits of s in order, dropping every other
// character (separators, spaces, AM/PM markers).
func Digits(s string) []int {
	digits := make([]int, 0, Cols)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	return digits
}

// FromTime builds the matrix for a formatted time such as "12:34:56 PM".
// The string must contain exactly six digits.
func FromTime(s string) Matrix {
	digits := Digits(s)
	if len(digits) != Cols {
		panic(fmt.Sprintf("bcd: want %d digits in %q, got %d", Cols, s, len(digits)))
	}

	var m Matrix
	for col, d := range digits {
		seq := Encode(d)
		for row := 0; row < Rows; row++ {
			m[row][col] = seq[row]
		}
	}
	return m
}

// Count returns the number of lit panels.
func (m Matrix) Count() int {
	n := 0
	for _, row := range m {
		for _, on := range row {
			if on {
				n++
			}
		}
	}
	return n
}

// String renders the matrix as four lines of ● (on) and ○ (off).
func (m Matrix) String() string {
	var b strings.Builder
	for r, row := range m {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, on := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			if on {
				b.WriteString("●")
			} else {
				b.WriteString("○")
			}
		}
	}
	return b.String()
}
