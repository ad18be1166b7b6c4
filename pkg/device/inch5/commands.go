package inch5

import (
	"encoding/hex"
	"fmt"
)

// Command identifies one panel operation. The wire opcodes are fixed
// byte sequences captured from the vendor application; they are
// resolved from the table below once at startup.
type Command int

const (
	GetDevice Command = iota
	UpdateImage
	StopVideo
	DisplayImage
	QueryStatus
	Restart
	PreImage
	MediaStop
	PostImage
	OnExit
)

const (
	// BlockSize is the fixed alignment of every transmitted message.
	BlockSize = 250

	// replySize is the read buffer size for one device reply.
	replySize = 1024

	// readAttempts bounds the empty/not-ready read retry loop.
	readAttempts = 5

	replyMediaStop = "media_stop"
	replyFullImage = "full_png_sucess"
	resendMarker   = "needReSend:"
)

// notReadySentinel prefixes replies sent before the panel finished
// initializing; such reads must be retried.
var notReadySentinel = []byte{0x5e, 0x41, 0xef, 0x69}

var cmdTable = []struct {
	cmd  Command
	name string
	hex  string
}{
	{GetDevice, "get-device", "01ef6900000001000000c5d3"},
	{UpdateImage, "update-image", "ccef690000"},
	{StopVideo, "stop-video", "79ef6900000001"},
	{DisplayImage, "display-image", "c8ef69001770"},
	{QueryStatus, "query-status", "cfef6900000001"},
	{Restart, "restart", "84ef6900000001"},
	{PreImage, "pre-image", "2c"},
	{MediaStop, "media-stop", "96ef6900000001"},
	{PostImage, "post-image", "86ef6900000001"},
	{OnExit, "on-exit", "87ef6900000001"},
}

var (
	cmdBytes = map[Command][]byte{}
	cmdNames = map[Command]string{}
)

func init() {
	for _, e := range cmdTable {
		bs, err := hex.DecodeString(e.hex)
		if err != nil {
			panic(fmt.Sprintf("bad opcode %s: %v", e.name, err))
		}
		cmdBytes[e.cmd] = bs
		cmdNames[e.cmd] = e.name
	}
}

// Bytes returns the opcode's wire bytes. Callers must not mutate the
// returned slice.
func (c Command) Bytes() []byte {
	return cmdBytes[c]
}

func (c Command) String() string {
	if name, ok := cmdNames[c]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(c))
}
