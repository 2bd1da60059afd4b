package ports

import "satd/internal/domain"

// TextCodec converts card text to and from display strings
type TextCodec interface {
	Decode(alphabet domain.Alphabet, data []byte) (string, error)
	Encode(alphabet domain.Alphabet, text string) ([]byte, error)
}
