package inch5

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf8"
)

type ReplyKind int

const (
	// ReplyEmpty is a reply that is all padding, usually a timed-out
	// read.
	ReplyEmpty ReplyKind = iota

	// ReplyNotReady marks the panel's pre-init sentinel; the read
	// should be retried, it is not a valid empty reply.
	ReplyNotReady

	// ReplyUnparseable is a reply that does not decode as text.
	ReplyUnparseable

	ReplyText
)

type Reply struct {
	Kind ReplyKind
	Text string
}

// parseReply strips trailing null padding and classifies the raw reply.
func parseReply(raw []byte) Reply {
	if bytes.HasPrefix(raw, notReadySentinel) {
		return Reply{Kind: ReplyNotReady}
	}

	text := strings.TrimRight(string(raw), "\x00")
	if text == "" {
		return Reply{Kind: ReplyEmpty}
	}
	if !utf8.ValidString(text) {
		return Reply{Kind: ReplyUnparseable}
	}
	return Reply{Kind: ReplyText, Text: text}
}

// ResendCount extracts the panel's needReSend counter. The second
// return is false when the reply carries no resend marker.
func (r Reply) ResendCount() (int, bool) {
	if r.Kind != ReplyText {
		return 0, false
	}

	i := strings.Index(r.Text, resendMarker)
	if i < 0 {
		return 0, false
	}

	rest := r.Text[i+len(resendMarker):]
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Expect compares the reply text against a literal acknowledgement.
func (r Reply) Expect(want string) error {
	if r.Text == want {
		return nil
	}
	return &ExpectError{Expected: want, Actual: r.Text}
}

// Policy decides how an acknowledgement mismatch is handled.
type Policy int

const (
	// Strict aborts the operation on a mismatched acknowledgement.
	Strict Policy = iota

	// Lenient logs the mismatch and carries on.
	Lenient
)
