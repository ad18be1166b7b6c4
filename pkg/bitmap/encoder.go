package bitmap

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ScreenHeight is the row stride of the panel's linear coordinate
// space, used to address partial updates.
const ScreenHeight = 800

const (
	// fullRun is the run length between null separators in a
	// full-frame stream. One less than the 250-byte message block, so
	// each block on the wire carries 249 pixel bytes plus a null.
	fullRun = 249

	// updateRun is the same separator rule applied to the update
	// stream at the hex-text level (249 byte pairs).
	updateRun = 498

	// updateTrailer terminates every partial-update stream.
	updateTrailer = "ef69"
)

// EncodeFull serializes a pixel buffer into the panel's full-frame wire
// format: flat BGRA bytes with a null separator between every 249-byte
// run. A 3-channel source gets an opaque alpha channel synthesized.
func EncodeFull(p *PixelBuffer) ([]byte, error) {
	if err := p.validate(); err != nil {
		return nil, errors.Wrap(err, "encode full frame")
	}

	data := p.Data
	if p.Channels == 3 {
		data = make([]byte, 0, p.Width*p.Height*4)
		for i := 0; i < len(p.Data); i += 3 {
			data = append(data, p.Data[i], p.Data[i+1], p.Data[i+2], 0xFF)
		}
	}

	var buf bytes.Buffer
	buf.Grow(len(data) + len(data)/fullRun)
	for i := 0; i < len(data); i += fullRun {
		if i > 0 {
			buf.WriteByte(0x00)
		}
		end := i + fullRun
		if end > len(data) {
			end = len(data)
		}
		buf.Write(data[i:end])
	}
	return buf.Bytes(), nil
}

// EncodeUpdate serializes a rectangular region update for origin (x, y)
// in panel coordinates. It returns the wire stream and the two-byte
// size field carried by the update command frame.
//
// Each row is emitted as a 6-hex-digit linear offset, a 4-hex-digit
// width, then the first three channel bytes of each pixel as hex pairs.
// The size field counts the stream bytes plus the fixed 2-byte trailer,
// and is computed before the text-level separators are inserted.
func EncodeUpdate(p *PixelBuffer, x, y int) ([]byte, []byte, error) {
	if err := p.validate(); err != nil {
		return nil, nil, errors.Wrap(err, "encode region update")
	}
	if x < 0 || y < 0 {
		return nil, nil, errors.Errorf("invalid region origin (%d, %d)", x, y)
	}

	var msg strings.Builder
	for r := 0; r < p.Height; r++ {
		fmt.Fprintf(&msg, "%06x%04x", (x+r)*ScreenHeight+y, p.Width)
		for c := 0; c < p.Width; c++ {
			px := p.at(r, c)
			fmt.Fprintf(&msg, "%02x%02x%02x", px[0], px[1], px[2])
		}
	}

	text := msg.String()

	size := len(text)/2 + 2
	if size > 0xFFFF {
		return nil, nil, errors.Errorf("region %dx%d exceeds the update size field", p.Width, p.Height)
	}
	sizeField := make([]byte, 2)
	binary.BigEndian.PutUint16(sizeField, uint16(size))

	if len(text) > 500 {
		var chunks []string
		for i := 0; i < len(text); i += updateRun {
			end := i + updateRun
			if end > len(text) {
				end = len(text)
			}
			chunks = append(chunks, text[i:end])
		}
		text = strings.Join(chunks, "00")
	}
	text += updateTrailer

	stream, err := hex.DecodeString(text)
	if err != nil {
		return nil, nil, errors.Wrap(err, "encode region update")
	}
	return stream, sizeField, nil
}
