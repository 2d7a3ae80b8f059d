package serialize

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"pokebattle/battleerr"
	"pokebattle/state"
)

// binaryMagic tags the envelope so FromBinary rejects arbitrary byte slices
// instead of misparsing them as a length-prefixed blob.
const binaryMagic uint32 = 0x504b4231 // "PKB1"

// Binary renders a battle State as spec.md §4.8's optional binary encoding:
// a fixed magic number, then the canonical Text encoding length-prefixed and
// written as raw UTF-8 bytes. The delimited text form already gives an
// unambiguous, deterministic field layout at all four nesting depths; the
// binary envelope's only job is a compact length-prefixed container around
// it, so encoding/binary carries the header rather than re-deriving a
// parallel field-by-field layout that would have to be kept in lockstep
// with Text/FromText by hand.
func Binary(s *state.State) []byte {
	text := Text(s)
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.BigEndian, binaryMagic)
	binary.Write(buf, binary.BigEndian, uint32(len(text)))
	buf.WriteString(text)
	return buf.Bytes()
}

// FromBinary reverses Binary.
func FromBinary(data []byte) (*state.State, error) {
	buf := bytes.NewReader(data)

	var magic uint32
	if err := binary.Read(buf, binary.BigEndian, &magic); err != nil {
		return nil, fmt.Errorf("%w: truncated binary header: %v", battleerr.ErrFormatViolation, err)
	}
	if magic != binaryMagic {
		return nil, fmt.Errorf("%w: bad magic number %#x", battleerr.ErrFormatViolation, magic)
	}

	var length uint32
	if err := binary.Read(buf, binary.BigEndian, &length); err != nil {
		return nil, fmt.Errorf("%w: truncated length header: %v", battleerr.ErrFormatViolation, err)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(buf, payload); err != nil {
		return nil, fmt.Errorf("%w: truncated payload: %v", battleerr.ErrFormatViolation, err)
	}
	if buf.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after payload", battleerr.ErrFormatViolation, buf.Len())
	}

	return FromText(string(payload))
}
