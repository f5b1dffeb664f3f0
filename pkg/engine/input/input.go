package input

import (
	"context"
	"errors"
	"io"
	"time"
)

const (
	keyEscape    = 0x1b
	keyCtrlC     = 0x03
	keyBackspace = 0x7f
)

// DecodeKeys translates a chunk of raw terminal bytes into key codes.
// Arrow keys arrive as CSI (ESC [) or SS3 (ESC O) sequences; other escape
// sequences are discarded. A lone ESC decodes to "escape".
func DecodeKeys(buf []byte) []string {
	var codes []string
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		switch {
		case b == keyEscape:
			if i+1 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
				code, n := decodeEscapeSequence(buf[i+2:])
				if code != "" {
					codes = append(codes, code)
				}
				i += 1 + n
				continue
			}
			codes = append(codes, "escape")
		case b == keyCtrlC:
			codes = append(codes, "ctrl_c")
		case b == '\r' || b == '\n':
			codes = append(codes, "enter")
		case b == keyBackspace || b == '\b':
			codes = append(codes, "backspace")
		case b == ' ':
			codes = append(codes, "space")
		case b > ' ' && b < keyBackspace:
			if b >= 'A' && b <= 'Z' {
				b += 'a' - 'A'
			}
			codes = append(codes, string(rune(b)))
		}
	}
	return codes
}

// decodeEscapeSequence reads the body of a CSI/SS3 sequence (after "ESC [").
// It returns the arrow code, if any, and the number of bytes consumed.
func decodeEscapeSequence(body []byte) (string, int) {
	for n, b := range body {
		// Parameter and intermediate bytes precede the final byte.
		if b < 0x40 || b > 0x7e {
			continue
		}
		switch b {
		case 'A':
			return "arrow_up", n + 1
		case 'B':
			return "arrow_down", n + 1
		case 'C':
			return "arrow_right", n + 1
		case 'D':
			return "arrow_left", n + 1
		}
		return "", n + 1
	}
	return "", len(body)
}

// ReadTerminal reads r until it fails or ctx is cancelled, sending one
// RawInput press per decoded key. The channel is closed on return.
func ReadTerminal(ctx context.Context, r io.Reader, out chan<- RawInput) error {
	defer close(out)
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		now := time.Now()
		for _, code := range DecodeKeys(buf[:n]) {
			select {
			case out <- RawInput{Device: DeviceTerminal, Code: code, Edge: EdgePress, Timestamp: now}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}
