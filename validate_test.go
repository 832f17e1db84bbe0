package markdown

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestValidateInputReportsOffset(t *testing.T) {
	tests := []struct {
		name   string
		src    []byte
		err    error
		offset int
	}{
		{name: "invalid utf-8", src: []byte("ok \xff\xfe"), err: ErrInvalidUTF8, offset: 3},
		{name: "truncated rune", src: []byte("# 世\xe7\x95"), err: ErrInvalidUTF8, offset: 5},
		{name: "nul byte", src: append([]byte("hello"), 0x00), err: ErrBinaryInput, offset: 5},
		{name: "control heavy", src: append([]byte("ab"), bytes.Repeat([]byte{'a', 0x01}, 64)...), err: ErrBinaryInput, offset: 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateInput(tc.src)
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
			var inputErr *InputError
			if !errors.As(err, &inputErr) {
				t.Fatalf("expected *InputError, got %T", err)
			}
			if inputErr.Offset != tc.offset {
				t.Fatalf("offset: got %d want %d", inputErr.Offset, tc.offset)
			}
			if want := "at byte " + strconv.Itoa(tc.offset); !strings.HasSuffix(err.Error(), want) {
				t.Fatalf("message %q does not end with %q", err.Error(), want)
			}
		})
	}
}

func TestValidateInputAcceptsMarkdown(t *testing.T) {
	src := []byte(strings.Repeat("# Title\r\n\tSome **text** here.\n", 8))
	if err := ValidateInput(src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRenderValidationRejectsBinary(t *testing.T) {
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader:  bytes.NewReader([]byte{0x00, 0x01, 0x02, 0x03, 0x04}),
		Writer:  &out,
		Options: []RenderOption{WithValidation(true)},
	})
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected empty output, got %q", out.String())
	}
}

func TestSanitizeDropsControlAndInvalidBytes(t *testing.T) {
	src := []byte("a\x01b\xffc\td\r\ne\x7f")
	if got := string(sanitize(src)); got != "abc\td\r\ne" {
		t.Fatalf("sanitize: got %q", got)
	}
	clean := []byte("already clean\n")
	if got := sanitize(clean); &got[0] != &clean[0] {
		t.Fatalf("expected clean input to be returned as is")
	}
}
