package inch5

import (
	"fmt"
	"time"

	"github.com/inhies/go-bytesize"
	"go.uber.org/zap"
)

func (i *Inch5) sendCmd(cmd Command, payload []byte, pad byte) error {
	i.logger.With(zap.Stringer("cmd", cmd)).Debug("send")
	return i.writeBytes(buildFrame(cmd.Bytes(), payload, pad))
}

func (i *Inch5) sendStream(stream []byte) error {
	return i.writeBytes(padBlocks(stream, 0x00))
}

func (i *Inch5) writeBytes(bs []byte) error {
	if err := i.transport.ResetInput(); err != nil {
		return err
	}

	start := time.Now()
	sent, err := i.transport.Write(bs)
	if err != nil {
		return err
	}

	head := bs
	if len(head) > 64 {
		head = head[:64]
	}

	i.logger.With(
		zap.Int("sent", sent),
		zap.String("size", bytesize.New(float64(len(bs))).String()),
		zap.String("cost", time.Since(start).String()),
		zap.String("head", fmt.Sprintf("%x", head)),
	).Debug("transfer")

	return nil
}

// readReply reads one reply, retrying while the panel yields nothing
// or the not-ready sentinel. After the attempt bound it returns
// whatever was last read rather than blocking further.
func (i *Inch5) readReply() (Reply, error) {
	var reply Reply

	buf := make([]byte, replySize)
	for attempt := 0; attempt < readAttempts; attempt++ {
		n, err := i.transport.Read(buf)
		if err != nil {
			return Reply{}, err
		}

		reply = parseReply(buf[:n])
		if reply.Kind == ReplyText {
			break
		}
		if reply.Kind == ReplyNotReady {
			i.logger.Debug("panel not initialized, retrying read")
		}
	}

	if reply.Kind == ReplyText {
		i.logger.With(zap.String("response", reply.Text)).Debug("read-reply")
	} else {
		i.logger.Debug("read-reply: empty")
	}
	return reply, nil
}

// expectReply reads one reply and compares it against a literal
// acknowledgement, honoring the session's mismatch policy.
func (i *Inch5) expectReply(want string) error {
	reply, err := i.readReply()
	if err != nil {
		return err
	}

	if err := reply.Expect(want); err != nil {
		if i.policy == Lenient {
			i.logger.With(zap.Error(err)).Debug("acknowledgement mismatch ignored")
			return nil
		}
		return err
	}
	return nil
}
