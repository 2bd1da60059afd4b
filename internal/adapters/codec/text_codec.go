package codec

import (
	"bytes"
	"fmt"

	"github.com/linxGnu/gosmpp/data"
	"golang.org/x/text/unicode/norm"

	"satd/internal/domain"
	"satd/internal/ports"
)

// ucs2AlphaPrefix marks an alpha identifier coded as plain UCS2
const ucs2AlphaPrefix = 0x80

// GSMCodec implements ports.TextCodec with the SMS character sets
type GSMCodec struct{}

// Verify interface compliance at compile time
var _ ports.TextCodec = (*GSMCodec)(nil)

// NewGSMCodec creates a new GSMCodec
func NewGSMCodec() *GSMCodec {
	return &GSMCodec{}
}

// Decode implements ports.TextCodec.Decode
func (c *GSMCodec) Decode(alphabet domain.Alphabet, b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}

	enc, err := encodingFor(alphabet)
	if err != nil {
		return "", err
	}

	switch alphabet {
	case domain.AlphabetUCS2:
		if len(b)%2 == 1 && b[0] == ucs2AlphaPrefix {
			b = b[1:]
		}
	case domain.AlphabetGSM7Packed:
	default:
		// Unused trailing bytes of card records are padded with 0xFF
		b = bytes.TrimRight(b, "\xff")
	}

	s, err := enc.Decode(b)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s text: %w", alphabet, err)
	}
	return s, nil
}

// Encode implements ports.TextCodec.Encode
func (c *GSMCodec) Encode(alphabet domain.Alphabet, text string) ([]byte, error) {
	if text == "" {
		return nil, nil
	}

	enc, err := encodingFor(alphabet)
	if err != nil {
		return nil, err
	}

	b, err := enc.Encode(norm.NFC.String(text))
	if err != nil {
		return nil, fmt.Errorf("failed to encode text as %s: %w", alphabet, err)
	}
	return b, nil
}

func encodingFor(alphabet domain.Alphabet) (data.Encoding, error) {
	switch alphabet {
	case domain.AlphabetUCS2:
		return data.UCS2, nil
	case domain.AlphabetGSM7Packed:
		return data.GSM7BITPACKED, nil
	case domain.Alphabet8BitData, domain.AlphabetUnspecified:
		return data.GSM7BIT, nil
	default:
		return nil, fmt.Errorf("unsupported alphabet %d", alphabet)
	}
}
