package markdown

import (
	"errors"
	"strconv"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

// InputError locates the byte that made ValidateInput reject a document.
// It unwraps to ErrInvalidUTF8 or ErrBinaryInput.
type InputError struct {
	Offset int
	Err    error
}

func (e *InputError) Error() string {
	return e.Err.Error() + " at byte " + strconv.Itoa(e.Offset)
}

func (e *InputError) Unwrap() error { return e.Err }

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateInput rejects documents that are not valid UTF-8 or look binary:
// any NUL byte, or at least 64 bytes of which 2% or more are control
// bytes. The returned *InputError points at the first offending byte.
func ValidateInput(src []byte) error {
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size == 1 {
			return &InputError{Offset: i, Err: ErrInvalidUTF8}
		}
		i += size
	}
	firstControl := -1
	control := 0
	for i, b := range src {
		if b == 0x00 {
			return &InputError{Offset: i, Err: ErrBinaryInput}
		}
		if isControlByte(b) {
			if firstControl < 0 {
				firstControl = i
			}
			control++
		}
	}
	if len(src) >= minBinarySample && control*100 >= len(src)*maxControlPct {
		return &InputError{Offset: firstControl, Err: ErrBinaryInput}
	}
	return nil
}

func isControlByte(b byte) bool {
	return b < 0x09 || (b > 0x0D && b < 0x20) || b == 0x7F
}

func isControlRune(r rune) bool {
	if r == '\n' || r == '\r' || r == '\t' {
		return false
	}
	return r < 0x20 || r == 0x7F
}

// sanitize drops invalid UTF-8 sequences and control characters other than
// line breaks and tabs. src is returned as is when nothing needs dropping.
func sanitize(src []byte) []byte {
	clean := true
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		if (r == utf8.RuneError && size == 1) || isControlRune(r) {
			clean = false
			break
		}
		i += size
	}
	if clean {
		return src
	}
	dst := make([]byte, 0, len(src))
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		if !(r == utf8.RuneError && size == 1) && !isControlRune(r) {
			dst = append(dst, src[i:i+size]...)
		}
		i += size
	}
	return dst
}
