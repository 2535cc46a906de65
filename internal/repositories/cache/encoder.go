package cache

import (
	"bytes"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	"image/png"

	"github.com/KirkDiggler/dex-api/internal/errors"
)

// Encoder re-encodes image bytes before they are cached
type Encoder func(data []byte) ([]byte, error)

// PNGEncoder normalises any decodable image to PNG
func PNGEncoder(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode image")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "failed to encode png")
	}
	return buf.Bytes(), nil
}
