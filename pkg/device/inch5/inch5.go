package inch5

import (
	"image"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"usblcd/pkg/bitmap"
	"usblcd/pkg/proto"
)

const padPreImage = 0x2c

// New builds a driver over a serial port. The port is opened (and the
// device autodetected, if the serial has no name) on Connect.
func New(serial *proto.Serial, logger *zap.Logger, opts ...Option) proto.Control {
	dev := &Inch5{
		serial:     serial,
		logger:     logger,
		policy:     Strict,
		maxRetries: 10,
		backoff:    100 * time.Millisecond,
	}

	for _, opt := range opts {
		opt(dev)
	}

	return dev
}

// NewWith builds a driver over an already-open transport.
func NewWith(t proto.Transport, logger *zap.Logger, opts ...Option) proto.Control {
	dev := New(nil, logger, opts...).(*Inch5)
	dev.transport = t
	return dev
}

type Inch5 struct {
	mu sync.Mutex

	serial    *proto.Serial
	transport proto.Transport
	logger    *zap.Logger

	policy     Policy
	maxRetries int
	backoff    time.Duration

	connected bool
	closed    bool
}

type Option func(i *Inch5)

// WithPolicy sets how acknowledgement mismatches are handled.
func WithPolicy(p Policy) Option {
	return func(i *Inch5) { i.policy = p }
}

// WithMaxRetries bounds the region-update resend loop.
func WithMaxRetries(n int) Option {
	return func(i *Inch5) { i.maxRetries = n }
}

// WithBackoff sets the wait between resend attempts.
func WithBackoff(d time.Duration) Option {
	return func(i *Inch5) { i.backoff = d }
}

// Connect opens the transport if needed and runs the init handshake:
// device info, stop video, stop media. The media-stop acknowledgement
// must match its literal reply.
func (i *Inch5) Connect() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.closed {
		return errors.New("session closed")
	}

	if i.transport == nil {
		if err := i.serial.Open(&proto.Options{
			DTR:         true,
			RTS:         true,
			BaudRate:    115200,
			ReadTimeout: 2 * time.Second,
		}); err != nil {
			return errors.Wrap(err, "open serial")
		}
		i.transport = i.serial
	}

	if err := i.sendCmd(GetDevice, nil, 0x00); err != nil {
		return err
	}
	if _, err := i.readReply(); err != nil {
		return err
	}

	if err := i.sendCmd(StopVideo, nil, 0x00); err != nil {
		return err
	}
	if _, err := i.readReply(); err != nil {
		return err
	}

	if err := i.sendCmd(MediaStop, nil, 0x00); err != nil {
		return err
	}
	if err := i.expectReply(replyMediaStop); err != nil {
		return errors.Wrap(err, "media-stop handshake")
	}

	i.connected = true
	return nil
}

// ShowImage transmits a full frame and waits for the panel to
// acknowledge it.
func (i *Inch5) ShowImage(img image.Image) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if !i.connected {
		return ErrNotConnected
	}

	stream, err := bitmap.EncodeFull(bitmap.FromImage(img))
	if err != nil {
		return err
	}

	if err := i.sendCmd(PreImage, nil, padPreImage); err != nil {
		return err
	}
	if err := i.sendCmd(DisplayImage, nil, 0x00); err != nil {
		return err
	}
	if err := i.sendStream(stream); err != nil {
		return err
	}
	if err := i.expectReply(replyFullImage); err != nil {
		return errors.Wrap(err, "full image")
	}

	if err := i.sendCmd(PostImage, nil, 0x00); err != nil {
		return err
	}
	if _, err := i.readReply(); err != nil {
		return err
	}

	if err := i.sendCmd(QueryStatus, nil, 0x00); err != nil {
		return err
	}
	if _, err := i.readReply(); err != nil {
		return err
	}

	return nil
}

// UpdateRegion transmits a rectangular update at (posX, posY),
// repeating the whole send sequence while the panel reports a nonzero
// resend count, up to the retry bound.
func (i *Inch5) UpdateRegion(posX uint16, posY uint16, img image.Image) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if !i.connected {
		return ErrNotConnected
	}

	stream, sizeField, err := bitmap.EncodeUpdate(bitmap.FromImage(img), int(posX), int(posY))
	if err != nil {
		return err
	}

	for attempt := 0; attempt < i.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(i.backoff)
		}

		if err := i.sendCmd(PreImage, nil, padPreImage); err != nil {
			return err
		}
		if err := i.sendCmd(UpdateImage, sizeField, 0x00); err != nil {
			return err
		}
		if err := i.sendStream(stream); err != nil {
			return err
		}
		if _, err := i.readReply(); err != nil {
			return err
		}

		if err := i.sendCmd(PostImage, nil, 0x00); err != nil {
			return err
		}
		if _, err := i.readReply(); err != nil {
			return err
		}

		if err := i.sendCmd(QueryStatus, nil, 0x00); err != nil {
			return err
		}
		reply, err := i.readReply()
		if err != nil {
			return err
		}

		if n, ok := reply.ResendCount(); ok && n == 0 {
			return nil
		}
		i.logger.With(zap.String("reply", reply.Text)).Warn("panel requests resend")
	}

	return &RetryError{Attempts: i.maxRetries}
}

// Restart reboots the panel. The session must reconnect afterwards.
func (i *Inch5) Restart() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if !i.connected {
		return ErrNotConnected
	}

	if err := i.sendCmd(Restart, nil, 0x00); err != nil {
		return err
	}

	i.connected = false
	return nil
}

// Close notifies the panel once and releases the transport. Safe to
// call multiple times.
func (i *Inch5) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.closed {
		return nil
	}
	i.closed = true

	var err error
	if i.connected {
		err = i.sendCmd(OnExit, nil, 0x00)
		i.connected = false
	}

	if i.transport != nil {
		if cerr := i.transport.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
