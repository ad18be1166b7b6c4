package inch5

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseReplyEmpty(t *testing.T) {
	for _, size := range []int{0, 1, 64, replySize} {
		r := parseReply(make([]byte, size))
		if r.Kind != ReplyEmpty {
			t.Errorf("all-null buffer of %d bytes parsed as %v", size, r.Kind)
		}
	}
}

func TestParseReplyNotReady(t *testing.T) {
	raw := append(append([]byte{}, notReadySentinel...), 0x01, 0x02)
	r := parseReply(raw)
	if r.Kind != ReplyNotReady {
		t.Fatalf("sentinel buffer parsed as %v", r.Kind)
	}

	// The sentinel alone must never read as a valid empty reply.
	if r := parseReply(notReadySentinel); r.Kind != ReplyNotReady {
		t.Errorf("bare sentinel parsed as %v", r.Kind)
	}
}

func TestParseReplyText(t *testing.T) {
	raw := append([]byte("media_stop"), bytes.Repeat([]byte{0x00}, 20)...)
	r := parseReply(raw)
	if r.Kind != ReplyText {
		t.Fatalf("parsed as %v", r.Kind)
	}
	if r.Text != "media_stop" {
		t.Errorf("text %q, want %q", r.Text, "media_stop")
	}
}

func TestParseReplyUnparseable(t *testing.T) {
	r := parseReply([]byte{0xfe, 0xff, 0xfe})
	if r.Kind != ReplyUnparseable {
		t.Errorf("binary garbage parsed as %v", r.Kind)
	}
}

func TestResendCount(t *testing.T) {
	tests := []struct {
		text string
		n    int
		ok   bool
	}{
		{"needReSend:0", 0, true},
		{"needReSend:3", 3, true},
		{"render_ok needReSend:12 tail", 12, true},
		{"needReSend:", 0, false},
		{"render_ok", 0, false},
	}

	for _, tt := range tests {
		r := Reply{Kind: ReplyText, Text: tt.text}
		n, ok := r.ResendCount()
		if n != tt.n || ok != tt.ok {
			t.Errorf("%q: got (%d, %v), want (%d, %v)", tt.text, n, ok, tt.n, tt.ok)
		}
	}

	if _, ok := (Reply{Kind: ReplyEmpty}).ResendCount(); ok {
		t.Error("empty reply reported a resend count")
	}
}

func TestReplyExpect(t *testing.T) {
	r := Reply{Kind: ReplyText, Text: "full_png_sucess"}
	if err := r.Expect("full_png_sucess"); err != nil {
		t.Errorf("matching reply rejected: %v", err)
	}

	err := Reply{Kind: ReplyText, Text: "nope"}.Expect("full_png_sucess")
	var ee *ExpectError
	if !errors.As(err, &ee) {
		t.Fatalf("mismatch returned %T", err)
	}
	if ee.Expected != "full_png_sucess" || ee.Actual != "nope" {
		t.Errorf("unexpected error fields: %+v", ee)
	}

	// Empty replies mismatch too, with an empty actual.
	if err := (Reply{Kind: ReplyEmpty}).Expect("x"); err == nil {
		t.Error("empty reply matched a non-empty expectation")
	}
}
