package proto

import (
	"image"
)

// Control is the device-facing API of a panel driver.
type Control interface {
	Connect() error
	Restart() error
	Close() error

	ShowImage(image image.Image) error
	UpdateRegion(posX uint16, posY uint16, image image.Image) error
}

// Transport is a byte stream to the panel. ResetInput discards any
// pending unread reply so the next read sees a fresh one.
type Transport interface {
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
	ResetInput() error
	Close() error
}
