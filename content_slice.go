package picojson

import "unicode/utf8"

// sliceContentBuilder is the copy-on-escape content engine for slice-mode
// input: while no escape has been seen, the value stays a borrowed view of
// the input; the first escape copies everything seen so far into scratch
// and switches to materializing.
type sliceContentBuilder struct {
	input   *sliceInputBuffer
	scratch []byte

	start   int // absolute position of the first content byte
	litFrom int // absolute position up to which literal bytes are already accounted for
	copying bool
	n       int // bytes written into scratch so far
}

func newSliceContentBuilder(input *sliceInputBuffer, scratch []byte) *sliceContentBuilder {
	return &sliceContentBuilder{input: input, scratch: scratch}
}

func (s *sliceContentBuilder) begin(startPos int) {
	s.start, s.litFrom, s.copying, s.n = startPos, startPos, false, 0
}

// onEscapeBegin is called when the tokenizer reports the backslash of an
// escape sequence at escPos: everything borrowed so far must be copied
// into scratch before the decoded escape bytes are appended.
func (s *sliceContentBuilder) onEscapeBegin(escPos int) *ParseError {
	s.copying = true
	return s.copyLiteral(escPos)
}

// onSimpleEscapeEnd appends a simple escape's single decoded byte.
func (s *sliceContentBuilder) onSimpleEscapeEnd(_, escEnd int, decoded byte) *ParseError {
	var tmp [1]byte
	tmp[0] = decoded
	return s.appendDecoded(tmp[:], escEnd)
}

// onUnicodeEscapeEnd drives the surrogate collector for a completed
// \uXXXX. A pending high surrogate (n == 0) produces no output yet, but
// its raw span must still be skipped rather than later copied as literal
// content once the pair completes.
func (s *sliceContentBuilder) onUnicodeEscapeEnd(_, escEnd int, cp uint16, collector *surrogateCollector) *ParseError {
	var tmp [4]byte
	n, err := collector.feed(cp, &tmp)
	if err != nil {
		return err
	}
	if n == 0 {
		s.litFrom = escEnd
		return nil
	}
	return s.appendDecoded(tmp[:n], escEnd)
}

func (s *sliceContentBuilder) copyLiteral(uptoPos int) *ParseError {
	span, ok := s.input.slice(s.litFrom, uptoPos)
	if !ok {
		return unexpectedErr(uptoPos, "invalid literal span")
	}
	if s.n+len(span) > len(s.scratch) {
		return simpleErr(ErrKindScratchFull, uptoPos)
	}
	copy(s.scratch[s.n:], span)
	s.n += len(span)
	s.litFrom = uptoPos
	return nil
}

// appendDecoded appends an escape's decoded bytes and advances litFrom
// past its raw span.
func (s *sliceContentBuilder) appendDecoded(decoded []byte, escEnd int) *ParseError {
	if s.n+len(decoded) > len(s.scratch) {
		return simpleErr(ErrKindScratchFull, escEnd)
	}
	copy(s.scratch[s.n:], decoded)
	s.n += len(decoded)
	s.litFrom = escEnd
	return nil
}

// finish materializes the final value: a borrowed slice if no escape was
// ever seen, or the accumulated scratch view otherwise.
func (s *sliceContentBuilder) finish(endPos int) (Str, *ParseError) {
	if !s.copying {
		span, ok := s.input.slice(s.start, endPos)
		if !ok {
			return Str{}, unexpectedErr(endPos, "invalid string span")
		}
		if !utf8.Valid(span) {
			return Str{}, simpleErr(ErrKindInvalidUTF8, endPos)
		}
		return Str{Kind: Borrowed, Value: unsafeString(span)}, nil
	}
	if err := s.copyLiteral(endPos); err != nil {
		return Str{}, err
	}
	if !utf8.Valid(s.scratch[:s.n]) {
		return Str{}, simpleErr(ErrKindInvalidUTF8, endPos)
	}
	return Str{Kind: Unescaped, Value: unsafeString(s.scratch[:s.n])}, nil
}
