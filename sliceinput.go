package picojson

// sliceInputBuffer is a borrowed byte slice with a cursor.
// is_past_end is true only once the cursor strictly exceeds the length,
// which lets the tokenizer's finish() run one step beyond the last byte.
type sliceInputBuffer struct {
	data []byte
	pos  int
}

func newSliceInputBuffer(data []byte) sliceInputBuffer {
	return sliceInputBuffer{data: data}
}

func (b *sliceInputBuffer) currentPos() int { return b.pos }

func (b *sliceInputBuffer) currentAbsPos() int { return b.pos }

// readByte implements byteSource for slice mode: pos is the absolute
// position of the byte about to be returned (before the cursor advances).
func (b *sliceInputBuffer) readByte() (byte, int, bool, *ParseError) {
	pos := b.pos
	c, ok := b.consumeByte()
	return c, pos, ok, nil
}

func (b *sliceInputBuffer) dataLen() int { return len(b.data) }

func (b *sliceInputBuffer) isPastEnd() bool { return b.pos > len(b.data) }

// consumeByte returns the next byte and advances the cursor, or reports
// end-of-data (ok=false) without error once the cursor reaches the length.
func (b *sliceInputBuffer) consumeByte() (byte, bool) {
	if b.pos >= len(b.data) {
		b.pos++
		return 0, false
	}
	c := b.data[b.pos]
	b.pos++
	return c, true
}

// slice returns data[start:end] with bounds checking.
func (b *sliceInputBuffer) slice(start, end int) ([]byte, bool) {
	if start < 0 || end < start || end > len(b.data) {
		return nil, false
	}
	return b.data[start:end], true
}

// setAnchor and clearAnchor are no-ops in slice mode: the whole input
// stays resident for the parser's lifetime, so nothing can compact it away.
func (b *sliceInputBuffer) setAnchor(int) {}
func (b *sliceInputBuffer) clearAnchor()  {}
