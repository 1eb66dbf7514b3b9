package picojson

import "io"

// Reader is the minimal streaming input abstraction. It maps
// directly onto io.Reader: Read returns the number of bytes read and, once
// the source is exhausted, io.EOF (possibly together with a final nonzero
// n, per the standard io.Reader contract). Any other error is surfaced to
// the caller of NextEvent as ErrKindReader.
type Reader = io.Reader

// streamBuffer is a fixed-capacity sliding window over a Reader. The
// caller-supplied scratch slice serves double duty: it is both the ring
// buffer of not-yet-tokenized input and, since the window always contains
// the live bytes of whatever
// string/key/number is currently being accumulated, the home of that
// token's content too. Escapes are resolved by patching bytes in place
// (overwrite + shift-left) rather than copying into a second area — the
// single-scratch-buffer constructor (NewStreamParser(reader, scratch)) makes
// that the natural realization, since the decoded form of an escape is
// never longer than the raw bytes it replaces.
type streamBuffer struct {
	reader io.Reader
	buf    []byte
	base   int // absolute stream position corresponding to buf[0]
	tail   int // buf-relative index one past the last live byte
	cursor int // buf-relative read cursor, in [0, tail]
	anchor int // buf-relative start of the in-progress token, or -1
	eof    bool
}

func newStreamBuffer(r io.Reader, scratch []byte) *streamBuffer {
	return &streamBuffer{reader: r, buf: scratch, anchor: -1}
}

func (s *streamBuffer) currentAbsPos() int { return s.base + s.cursor }

// readByte implements byteSource for stream mode: pos is the absolute
// position of the byte about to be returned (before the cursor advances).
func (s *streamBuffer) readByte() (byte, int, bool, *ParseError) {
	pos := s.currentAbsPos()
	b, ok, err := s.nextByte()
	return b, pos, ok, err
}

// setAnchor protects the byte at absolute position pos (and everything
// after it) from compaction, until clearAnchor is called. Callers must
// pass the actual start of the in-progress token rather than relying on
// the current cursor, since by the time a Begin event is dispatched the
// cursor has already advanced past that token's first byte.
func (s *streamBuffer) setAnchor(pos int) { s.anchor = pos - s.base }
func (s *streamBuffer) clearAnchor()      { s.anchor = -1 }

// nextByte returns the next byte, advancing the cursor and refilling from
// the reader as needed. ok is false only at legitimate end-of-stream.
func (s *streamBuffer) nextByte() (byte, bool, *ParseError) {
	for {
		if s.cursor < s.tail {
			b := s.buf[s.cursor]
			s.cursor++
			return b, true, nil
		}
		if s.eof {
			return 0, false, nil
		}
		if err := s.refill(); err != nil {
			return 0, false, err
		}
	}
}

// refill makes room if necessary (compacting around the anchor/cursor) and
// performs one Read call.
func (s *streamBuffer) refill() *ParseError {
	if s.tail == len(s.buf) {
		dropTo := s.cursor
		if s.anchor >= 0 {
			dropTo = s.anchor
		}
		if dropTo == 0 {
			return simpleErr(ErrKindScratchFull, s.currentAbsPos())
		}
		s.compact(dropTo)
	}

	n, err := s.reader.Read(s.buf[s.tail:])
	if n > 0 {
		s.tail += n
	}
	switch {
	case err == io.EOF:
		s.eof = true
	case err != nil:
		return readerErr(s.currentAbsPos(), err)
	case n == 0:
		// A read of 0 bytes with no error means end-of-stream.
		s.eof = true
	}
	return nil
}

// compact shifts the live window so buf-relative index dropTo becomes the
// new 0, preserving everything at and after the anchor.
func (s *streamBuffer) compact(dropTo int) {
	n := copy(s.buf, s.buf[dropTo:s.tail])
	s.base += dropTo
	s.cursor -= dropTo
	if s.anchor >= 0 {
		s.anchor -= dropTo
	}
	s.tail = n
}

// slice returns the live window's bytes for [startAbs, endAbs), or ok=false
// if that range has fallen outside the currently resident window.
func (s *streamBuffer) slice(startAbs, endAbs int) ([]byte, bool) {
	start, end := startAbs-s.base, endAbs-s.base
	if start < 0 || end < start || end > s.tail {
		return nil, false
	}
	return s.buf[start:end], true
}

// patchEscape overwrites the raw bytes of an escape sequence
// [rawStartAbs, rawEndAbs) with its decoded form, then closes the gap by
// shifting subsequent live bytes left. decoded must not be longer than the
// span it replaces (an escape sequence never decodes to more bytes than
// it spans in the raw input).
func (s *streamBuffer) patchEscape(rawStartAbs, rawEndAbs int, decoded []byte) *ParseError {
	start, end := rawStartAbs-s.base, rawEndAbs-s.base
	if start < 0 || end < start || end > s.tail || len(decoded) > end-start {
		return unexpectedErr(s.currentAbsPos(), "invalid escape patch bounds")
	}
	copy(s.buf[start:], decoded)
	writeEnd := start + len(decoded)
	shrink := end - writeEnd
	if shrink > 0 {
		copy(s.buf[writeEnd:], s.buf[end:s.tail])
		s.tail -= shrink
		s.cursor -= shrink
		if s.anchor > writeEnd {
			s.anchor -= shrink
		}
	}
	return nil
}
