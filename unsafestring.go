package picojson

import "unsafe"

// unsafeString borrows b's bytes as a string without copying. It exists so
// that handing a finished lexeme to the caller in an Event never heap
// allocates, matching the zero-copy budget slice-mode Borrowed values
// already get for free. The aliasing is safe only because every Str/Num
// field built this way is documented as valid solely until the next
// NextEvent call on the same parser — by then the backing slice (original
// input or reused scratch) may already have changed underneath it.
func unsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
