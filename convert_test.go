package optparse

import (
	"errors"
	"strconv"
	"testing"
)

// reasonOf extracts the BadValue reason, failing the test when err is not a
// conversion failure.
func reasonOf(t *testing.T, err error) string {
	t.Helper()
	var bv *BadValue
	if !errors.As(err, &bv) {
		t.Fatalf("expected *BadValue, got %T: %v", err, err)
	}
	return bv.Reason
}

func TestSigned_RoundTrip(t *testing.T) {
	t.Parallel()
	for _, n := range []int64{0, 1, -1, 42, -7, 1<<31 - 1, -(1 << 31), 1<<63 - 1, -(1 << 63)} {
		got, err := Signed[int64](strconv.FormatInt(n, 10))
		if err != nil {
			t.Fatalf("Signed(%d): %v", n, err)
		}
		if got != n {
			t.Fatalf("Signed round trip got %d want %d", got, n)
		}
	}
}

func TestSigned_Boundaries(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		input  string
		want   int64
		reason string // empty means success expected
		conv   func(string) (int64, error)
	}{
		{name: "int8 max", input: "127", want: 127, conv: widen(Signed[int8])},
		{name: "int8 min", input: "-128", want: -128, conv: widen(Signed[int8])},
		{name: "int8 over", input: "128", reason: "out of range", conv: widen(Signed[int8])},
		{name: "int8 under", input: "-129", reason: "out of range", conv: widen(Signed[int8])},
		{name: "int16 max", input: "32767", want: 32767, conv: widen(Signed[int16])},
		{name: "int16 over", input: "32768", reason: "out of range", conv: widen(Signed[int16])},
		{name: "int32 max", input: "2147483647", want: 2147483647, conv: widen(Signed[int32])},
		{name: "int32 over", input: "2147483648", reason: "out of range", conv: widen(Signed[int32])},
		{name: "int64 max", input: "9223372036854775807", want: 9223372036854775807, conv: Signed[int64]},
		{name: "int64 over", input: "9223372036854775808", reason: "out of range", conv: Signed[int64]},
		{name: "int64 min", input: "-9223372036854775808", want: -9223372036854775808, conv: Signed[int64]},
		{name: "int64 under", input: "-9223372036854775809", reason: "out of range", conv: Signed[int64]},
		{name: "empty", input: "", reason: "invalid integer", conv: Signed[int64]},
		{name: "trailing garbage", input: "12x", reason: "invalid integer", conv: Signed[int64]},
		{name: "not a number", input: "abc", reason: "invalid integer", conv: Signed[int64]},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.conv(tt.input)
			if tt.reason != "" {
				if err == nil {
					t.Fatalf("Signed(%q) = %d, expected failure", tt.input, got)
				}
				if r := reasonOf(t, err); r != tt.reason {
					t.Fatalf("Signed(%q) reason got %q want %q", tt.input, r, tt.reason)
				}
				return
			}
			if err != nil {
				t.Fatalf("Signed(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("Signed(%q) got %d want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestUnsigned_Boundaries(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		input  string
		want   uint64
		reason string
		conv   func(string) (uint64, error)
	}{
		{name: "uint8 max", input: "255", want: 255, conv: widenU(Unsigned[uint8])},
		{name: "uint8 over", input: "256", reason: "out of range", conv: widenU(Unsigned[uint8])},
		{name: "uint16 max", input: "65535", want: 65535, conv: widenU(Unsigned[uint16])},
		{name: "uint16 over", input: "65536", reason: "out of range", conv: widenU(Unsigned[uint16])},
		{name: "uint32 max", input: "4294967295", want: 4294967295, conv: widenU(Unsigned[uint32])},
		{name: "uint32 over", input: "4294967296", reason: "out of range", conv: widenU(Unsigned[uint32])},
		{name: "uint64 max", input: "18446744073709551615", want: 18446744073709551615, conv: Unsigned[uint64]},
		{name: "uint64 over", input: "18446744073709551616", reason: "out of range", conv: Unsigned[uint64]},
		{name: "zero", input: "0", want: 0, conv: Unsigned[uint64]},
		{name: "empty", input: "", reason: "invalid integer", conv: Unsigned[uint64]},
		{name: "trailing garbage", input: "12x", reason: "invalid integer", conv: Unsigned[uint64]},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.conv(tt.input)
			if tt.reason != "" {
				if err == nil {
					t.Fatalf("Unsigned(%q) = %d, expected failure", tt.input, got)
				}
				if r := reasonOf(t, err); r != tt.reason {
					t.Fatalf("Unsigned(%q) reason got %q want %q", tt.input, r, tt.reason)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unsigned(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("Unsigned(%q) got %d want %d", tt.input, got, tt.want)
			}
		})
	}
}

// A leading minus must read as out of range, never as a syntax problem and
// never wrapped into a large unsigned value.
func TestUnsigned_RejectsNegative(t *testing.T) {
	t.Parallel()
	for _, input := range []string{"-1", "-0", "-255", "-99999999999999999999"} {
		_, err := Unsigned[uint8](input)
		if err == nil {
			t.Fatalf("Unsigned(%q) succeeded, expected out of range", input)
		}
		if r := reasonOf(t, err); r != "out of range" {
			t.Fatalf("Unsigned(%q) reason got %q want %q", input, r, "out of range")
		}
	}
	// a malformed negative is still just an invalid integer
	if r := reasonOf(t, errOf(Unsigned[uint8]("-12x"))); r != "invalid integer" {
		t.Fatalf("Unsigned(-12x) reason got %q want %q", r, "invalid integer")
	}
}

func TestFloat(t *testing.T) {
	t.Parallel()
	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		for _, f := range []float64{0, 1.5, -2.25, 3.14159, 1e10, -1e-10} {
			got, err := Float[float64](strconv.FormatFloat(f, 'g', -1, 64))
			if err != nil {
				t.Fatalf("Float(%g): %v", f, err)
			}
			if got != f {
				t.Fatalf("Float round trip got %g want %g", got, f)
			}
		}
	})
	t.Run("scientific notation", func(t *testing.T) {
		t.Parallel()
		got, err := Float[float64]("-2.5e-3")
		if err != nil {
			t.Fatalf("Float: %v", err)
		}
		if got != -2.5e-3 {
			t.Fatalf("Float got %g want %g", got, -2.5e-3)
		}
	})
	t.Run("float32 range", func(t *testing.T) {
		t.Parallel()
		if _, err := Float[float32]("1e38"); err != nil {
			t.Fatalf("Float(1e38): %v", err)
		}
		for _, input := range []string{"1e39", "-1e39"} {
			_, err := Float[float32](input)
			if err == nil {
				t.Fatalf("Float(%q) succeeded, expected out of range", input)
			}
			if r := reasonOf(t, err); r != "out of range" {
				t.Fatalf("Float(%q) reason got %q want %q", input, r, "out of range")
			}
		}
	})
	t.Run("float64 range", func(t *testing.T) {
		t.Parallel()
		if _, err := Float[float64]("1e308"); err != nil {
			t.Fatalf("Float(1e308): %v", err)
		}
		if r := reasonOf(t, errOf(Float[float64]("1e309"))); r != "out of range" {
			t.Fatalf("Float(1e309) reason got %q want %q", r, "out of range")
		}
	})
	t.Run("underflow to zero is accepted", func(t *testing.T) {
		t.Parallel()
		// below the smallest float32 subnormal; silently becomes zero
		got, err := Float[float32]("1e-300")
		if err != nil {
			t.Fatalf("Float(1e-300): %v", err)
		}
		if got != 0 {
			t.Fatalf("Float(1e-300) got %g want 0", got)
		}
	})
	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		for _, input := range []string{"", "abc", "1.2.3", "4.5x"} {
			_, err := Float[float64](input)
			if err == nil {
				t.Fatalf("Float(%q) succeeded, expected invalid number", input)
			}
			if r := reasonOf(t, err); r != "invalid number" {
				t.Fatalf("Float(%q) reason got %q want %q", input, r, "invalid number")
			}
		}
	})
}

func TestString_Identity(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"", "hello", "-5", "  spaced  "} {
		got, err := String(s)
		if err != nil {
			t.Fatalf("String(%q): %v", s, err)
		}
		if got != s {
			t.Fatalf("String(%q) got %q", s, got)
		}
	}
}

// widen adapts a narrow signed converter to the table's int64 signature.
func widen[T int8 | int16 | int32](conv Converter[T]) func(string) (int64, error) {
	return func(s string) (int64, error) {
		v, err := conv(s)
		return int64(v), err
	}
}

// widenU adapts a narrow unsigned converter to the table's uint64 signature.
func widenU[T uint8 | uint16 | uint32](conv Converter[T]) func(string) (uint64, error) {
	return func(s string) (uint64, error) {
		v, err := conv(s)
		return uint64(v), err
	}
}

// errOf drops the value so a conversion result can feed reasonOf directly.
func errOf[T any](_ T, err error) error { return err }
