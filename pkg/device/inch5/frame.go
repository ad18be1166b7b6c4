package inch5

// buildFrame concatenates an opcode and payload into one message,
// aligned to the block size.
func buildFrame(opcode, payload []byte, pad byte) []byte {
	msg := make([]byte, 0, len(opcode)+len(payload))
	msg = append(msg, opcode...)
	msg = append(msg, payload...)
	return padBlocks(msg, pad)
}

// padBlocks appends pad bytes until the message length is an exact
// multiple of BlockSize. Already-aligned messages pass through
// untouched.
func padBlocks(msg []byte, pad byte) []byte {
	rem := len(msg) % BlockSize
	if rem == 0 {
		return msg
	}
	out := make([]byte, 0, len(msg)+BlockSize-rem)
	out = append(out, msg...)
	for i := 0; i < BlockSize-rem; i++ {
		out = append(out, pad)
	}
	return out
}
