package binconv

import "fmt"

// TextToBytes packs text into a fixed-width field. Text shorter than width is
// padded with zero bytes on the right; text longer than width fails with
// ErrOverflow. Truncation never happens silently.
func TextToBytes(text string, width int) ([]byte, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: text width %d", ErrOverflow, width)
	}
	if len(text) > width {
		return nil, fmt.Errorf("%w: %d-character text does not fit width %d", ErrOverflow, len(text), width)
	}
	out := make([]byte, width)
	copy(out, text)
	return out, nil
}

// BytesToText converts a fixed-width text field back to a string, stripping
// the trailing zero padding added by TextToBytes. Interior zero bytes are
// preserved.
func BytesToText(b []byte) string {
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return string(b[:end])
}
