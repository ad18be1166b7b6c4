package bitmap

import (
	"bytes"
	"encoding/hex"
	"image"
	"image/color"
	"testing"
)

func grayBuffer(w, h, channels int) *PixelBuffer {
	p := &PixelBuffer{Width: w, Height: h, Channels: channels}
	p.Data = make([]byte, w*h*channels)
	for i := range p.Data {
		p.Data[i] = byte(i)
	}
	return p
}

func TestEncodeFullSeparators(t *testing.T) {
	// 500 pixels -> 2000 bytes -> separators after each 249-byte run.
	p := grayBuffer(100, 5, 4)
	out, err := EncodeFull(p)
	if err != nil {
		t.Fatal(err)
	}

	raw := len(p.Data)
	seps := (raw + 248) / 249
	seps--
	if want := raw + seps; len(out) != want {
		t.Fatalf("output is %d bytes, want %d", len(out), want)
	}

	// Removing each 250th byte recovers the source stream.
	var recovered []byte
	for i, b := range out {
		if i%250 == 249 {
			if b != 0x00 {
				t.Fatalf("separator at %d is %#x", i, b)
			}
			continue
		}
		recovered = append(recovered, b)
	}
	if !bytes.Equal(recovered, p.Data) {
		t.Error("separator removal does not recover the source")
	}
}

func TestEncodeFullSynthesizesAlpha(t *testing.T) {
	p := grayBuffer(3, 2, 3)
	out, err := EncodeFull(p)
	if err != nil {
		t.Fatal(err)
	}

	// Small enough for no separators.
	if len(out) != 3*2*4 {
		t.Fatalf("output is %d bytes, want %d", len(out), 3*2*4)
	}

	for px := 0; px < 6; px++ {
		got := out[px*4 : px*4+4]
		want := p.Data[px*3 : px*3+3]
		if !bytes.Equal(got[:3], want) {
			t.Errorf("pixel %d channels %x, want %x", px, got[:3], want)
		}
		if got[3] != 0xFF {
			t.Errorf("pixel %d alpha %#x, want opaque", px, got[3])
		}
	}
}

func TestEncodeUpdateFixture(t *testing.T) {
	p := &PixelBuffer{
		Width:    2,
		Height:   2,
		Channels: 3,
		Data: []byte{
			0x01, 0x02, 0x03, 0x04, 0x05, 0x06,
			0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c,
		},
	}

	stream, size, err := EncodeUpdate(p, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	wantHex := "0000000002010203040506" + "00032000020708090a0b0c" + "ef69"
	want, _ := hex.DecodeString(wantHex)
	if !bytes.Equal(stream, want) {
		t.Errorf("stream\n got %x\nwant %x", stream, want)
	}

	// 44 hex chars -> 22 bytes, +2 for the trailer.
	if !bytes.Equal(size, []byte{0x00, 0x18}) {
		t.Errorf("size field %x, want 0018", size)
	}
}

func TestEncodeUpdateOffsets(t *testing.T) {
	p := grayBuffer(1, 3, 3)
	stream, _, err := EncodeUpdate(p, 5, 7)
	if err != nil {
		t.Fatal(err)
	}

	// Row r addresses (x+r)*800+y; one pixel per row.
	offsets := []int{5*800 + 7, 6*800 + 7, 7*800 + 7}
	for r, off := range offsets {
		row := stream[r*8 : r*8+8]
		got := int(row[0])<<16 | int(row[1])<<8 | int(row[2])
		if got != off {
			t.Errorf("row %d offset %d, want %d", r, got, off)
		}
		if w := int(row[3])<<8 | int(row[4]); w != 1 {
			t.Errorf("row %d width %d, want 1", r, w)
		}
	}
}

func TestEncodeUpdateLongStreamSeparators(t *testing.T) {
	// One 100-pixel row: 6+4+600 = 610 hex chars, above the 500-char
	// separator threshold.
	p := grayBuffer(100, 1, 3)
	stream, size, err := EncodeUpdate(p, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	// Size counts the unseparated stream plus trailer only.
	if !bytes.Equal(size, []byte{0x01, 0x33}) {
		t.Errorf("size field %x, want 0133", size)
	}

	// 610 chars split as 498+112, one 00 pair between, plus trailer.
	if want := (610 + 2 + 4) / 2; len(stream) != want {
		t.Fatalf("stream is %d bytes, want %d", len(stream), want)
	}
	if stream[249] != 0x00 {
		t.Errorf("separator byte is %#x", stream[249])
	}
	if !bytes.Equal(stream[len(stream)-2:], []byte{0xef, 0x69}) {
		t.Errorf("trailer %x", stream[len(stream)-2:])
	}
}

func TestEncodeRejectsMalformed(t *testing.T) {
	if _, err := EncodeFull(&PixelBuffer{Width: 0, Height: 2, Channels: 4}); err == nil {
		t.Error("zero width accepted")
	}
	if _, _, err := EncodeUpdate(grayBuffer(2, 2, 3), -1, 0); err == nil {
		t.Error("negative origin accepted")
	}
	if _, err := EncodeFull(&PixelBuffer{Width: 2, Height: 2, Channels: 2, Data: make([]byte, 8)}); err == nil {
		t.Error("two-channel buffer accepted")
	}
	if _, err := EncodeFull(&PixelBuffer{Width: 2, Height: 2, Channels: 4, Data: make([]byte, 3)}); err == nil {
		t.Error("short data accepted")
	}
}

func TestFromImageByteOrder(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 0x01, G: 0x02, B: 0x03, A: 0xFF})

	p := FromImage(img)
	if p.Width != 1 || p.Height != 1 || p.Channels != 4 {
		t.Fatalf("unexpected buffer shape %+v", p)
	}
	if !bytes.Equal(p.Data, []byte{0x03, 0x02, 0x01, 0xFF}) {
		t.Errorf("pixel bytes %x, want BGRA 030201ff", p.Data)
	}
}
