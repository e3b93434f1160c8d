package audiodesc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFourCC is returned by ParseFourCC for text that is neither a four-character code nor a hex number.
var ErrInvalidFourCC = errors.New("invalid four-character code")

// FourCC is a 32-bit code conventionally read as four ASCII characters, most significant byte first.
type FourCC uint32

// Bytes returns the four bytes of the code in big-endian order, independent of the host byte order.
func (c FourCC) Bytes() [4]byte {
	return [4]byte{
		byte(c >> 24),
		byte(c >> 16),
		byte(c >> 8),
		byte(c),
	}
}

// IsPrintable reports whether every byte of the code is printable ASCII.
func (c FourCC) IsPrintable() bool {
	for _, b := range c.Bytes() {
		if b < 0x20 || b > 0x7e {
			return false
		}
	}

	return true
}

// String returns the code as a quoted tag such as 'lpcm', or as 0x-prefixed hex if any byte is not printable.
func (c FourCC) String() string {
	if !c.IsPrintable() {
		return Hex32(uint32(c))
	}

	b := c.Bytes()

	return "'" + string(b[:]) + "'"
}

// Hex32 formats v as eight zero-padded uppercase hex digits prefixed with 0x.
func Hex32(v uint32) string {
	return fmt.Sprintf("0x%08X", v)
}

// ParseFourCC parses a code written as abcd, 'abcd' or a 0x-prefixed hex number.
func ParseFourCC(s string) (FourCC, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("%w %q: %w", ErrInvalidFourCC, s, err)
		}

		return FourCC(v), nil
	}

	tag := s
	if len(tag) == 6 && tag[0] == '\'' && tag[5] == '\'' {
		tag = tag[1:5]
	}

	if len(tag) != 4 {
		return 0, fmt.Errorf("%w %q: expected 4 characters", ErrInvalidFourCC, s)
	}

	var c FourCC
	for i := 0; i < 4; i++ {
		b := tag[i]
		if b < 0x20 || b > 0x7e {
			return 0, fmt.Errorf("%w %q: byte %d is not printable", ErrInvalidFourCC, s, i)
		}

		c = c<<8 | FourCC(b)
	}

	return c, nil
}
