package picojson

import "golang.org/x/exp/constraints"

// byteSource abstracts the two input modes (slice and stream) behind the one
// interface ParserCore actually needs.
type byteSource interface {
	readByte() (b byte, pos int, ok bool, err *ParseError)
	currentAbsPos() int
	slice(start, end int) ([]byte, bool)

	// setAnchor/clearAnchor protect an in-progress lexeme's start position
	// from stream-mode compaction; no-ops in slice mode, where
	// the whole input is always resident.
	setAnchor(pos int)
	clearAnchor()
}

// contentEngine abstracts the two string-content realizations — copy-on-escape
// for slices, in-place patching for streams — behind the one interface
// ParserCore drives.
type contentEngine interface {
	begin(startPos int)
	onEscapeBegin(escPos int) *ParseError
	onSimpleEscapeEnd(escStart, escEnd int, decoded byte) *ParseError
	onUnicodeEscapeEnd(escStart, escEnd int, cp uint16, collector *surrogateCollector) *ParseError
	finish(endPos int) (Str, *ParseError)
}

// Parser is the pull-parser core, assembling public Events by
// driving a Tokenizer over bytes pulled from a byteSource, and dispatching
// to a contentEngine and the number parser. DC is the nesting
// depth-counter type; the bit-stack bucket shape (scalar or array) is
// chosen by whichever bitStack[DC] the constructor builds, not by a type
// parameter here. Most callers want the DefaultBucket/DefaultCounter
// instantiation returned by NewDefaultSliceParser/NewDefaultStreamParser.
type Parser[DC constraints.Unsigned] struct {
	tok       *Tokenizer[DC]
	src       byteSource
	content   contentEngine
	surrogate surrogateCollector
	cfg       Config

	numStart int

	pending    tokEvents
	pendingIdx int

	sawFinish bool
	done      bool
	err       *ParseError
}

func newParser[DC constraints.Unsigned](stack bitStack[DC], src byteSource, content contentEngine, opts []Option) (*Parser[DC], error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Parser[DC]{
		tok:     NewTokenizer[DC](stack),
		src:     src,
		content: content,
		cfg:     cfg,
	}, nil
}

// NewSliceParser returns a parser reading from a complete in-memory byte
// slice, with nesting tracked in a single scalar bucket of type T. scratch
// is only needed if input contains escapes; it may be nil/empty for
// escape-free documents (any escape then reports ErrKindScratchFull).
func NewSliceParser[T constraints.Unsigned, DC constraints.Unsigned](input, scratch []byte, opts ...Option) (*Parser[DC], error) {
	buf := newSliceInputBuffer(input)
	var stack BitStack[T, DC]
	return newParser[DC](&stack, &buf, newSliceContentBuilder(&buf, scratch), opts)
}

// NewStreamParser returns a parser reading from an arbitrary Reader, with
// nesting tracked in a single scalar bucket of type T. scratch is
// mandatory: it is both the input ring buffer and the home of
// materialized string/key content.
func NewStreamParser[T constraints.Unsigned, DC constraints.Unsigned](r Reader, scratch []byte, opts ...Option) (*Parser[DC], error) {
	buf := newStreamBuffer(r, scratch)
	var stack BitStack[T, DC]
	return newParser[DC](&stack, buf, newStreamContentBuilder(buf), opts)
}

// NewSliceParserArrayBitStack is NewSliceParser with nesting tracked across
// n elements of T instead of a single scalar bucket, for documents nested
// deeper than one machine word's bit width can address.
func NewSliceParserArrayBitStack[T constraints.Unsigned, DC constraints.Unsigned](n int, input, scratch []byte, opts ...Option) (*Parser[DC], error) {
	buf := newSliceInputBuffer(input)
	stack := NewArrayBitStack[T, DC](n)
	return newParser[DC](stack, &buf, newSliceContentBuilder(&buf, scratch), opts)
}

// NewStreamParserArrayBitStack is NewStreamParser with nesting tracked
// across n elements of T instead of a single scalar bucket.
func NewStreamParserArrayBitStack[T constraints.Unsigned, DC constraints.Unsigned](n int, r Reader, scratch []byte, opts ...Option) (*Parser[DC], error) {
	buf := newStreamBuffer(r, scratch)
	stack := NewArrayBitStack[T, DC](n)
	return newParser[DC](stack, buf, newStreamContentBuilder(buf), opts)
}

// NewDefaultSliceParser is NewSliceParser instantiated with the
// default BitStackConfig: a 32-level nesting limit backed by an 8-bit
// counter.
func NewDefaultSliceParser(input, scratch []byte, opts ...Option) (*Parser[DefaultCounter], error) {
	return NewSliceParser[DefaultBucket, DefaultCounter](input, scratch, opts...)
}

// NewDefaultStreamParser is NewStreamParser with the same default
// BitStackConfig as NewDefaultSliceParser.
func NewDefaultStreamParser(r Reader, scratch []byte, opts ...Option) (*Parser[DefaultCounter], error) {
	return NewStreamParser[DefaultBucket, DefaultCounter](r, scratch, opts...)
}

// NextEvent returns the next semantic event, or EndDocument once the
// document is fully consumed. Once an error is returned, every subsequent
// call returns that same error again.
func (p *Parser[DC]) NextEvent() (Event, *ParseError) {
	if p.done {
		if p.err != nil {
			return Event{}, p.err
		}
		return Event{Kind: EndDocument}, nil
	}

	for {
		for p.pendingIdx < p.pending.n {
			ev := p.pending.ev[p.pendingIdx]
			p.pendingIdx++
			pub, produced, err := p.dispatch(ev)
			if err != nil {
				if err.Kind == ErrKindInvalidUnicodeCodepoint {
					// The surrogate collector has no position of its own:
					// point at the escape, or the closing quote, that
					// exposed the broken pair.
					err.Offset = ev.pos
					if ev.kind == tokEscapeEndSimple || ev.kind == tokEscapeEndUnicode {
						err.Offset = ev.escStart
					}
				}
				p.done, p.err = true, err
				return Event{}, err
			}
			if produced {
				return pub, nil
			}
		}

		b, pos, ok, err := p.src.readByte()
		if err != nil {
			p.done, p.err = true, err
			return Event{}, err
		}
		if !ok {
			if p.sawFinish {
				p.done = true
				return Event{Kind: EndDocument}, nil
			}
			p.sawFinish = true
			out, ferr := p.tok.Finish(pos)
			if ferr != nil {
				p.done, p.err = true, ferr
				return Event{}, ferr
			}
			p.pending, p.pendingIdx = out, 0
			if p.pending.n == 0 {
				p.done = true
				return Event{Kind: EndDocument}, nil
			}
			continue
		}

		wasInString := p.tok.InString()
		out, ferr := p.tok.Feed(pos, b)
		if ferr != nil {
			p.done, p.err = true, ferr
			return Event{}, ferr
		}
		if out.n == 0 && wasInString {
			// A literal content byte inside a string/key:
			// a pending high surrogate not immediately completed by the
			// next \u escape is an error.
			if serr := p.surrogate.interrupt(); serr != nil {
				serr.Offset = pos
				p.done, p.err = true, serr
				return Event{}, serr
			}
		}
		p.pending, p.pendingIdx = out, 0
	}
}

func (p *Parser[DC]) dispatch(ev tokEvent) (Event, bool, *ParseError) {
	switch ev.kind {
	case tokObjectStart:
		return Event{Kind: StartObject}, true, nil
	case tokObjectEnd:
		return Event{Kind: EndObject}, true, nil
	case tokArrayStart:
		return Event{Kind: StartArray}, true, nil
	case tokArrayEnd:
		return Event{Kind: EndArray}, true, nil

	case tokKeyBegin, tokStringBegin:
		p.content.begin(ev.pos)
		return Event{}, false, nil

	case tokEscapeBegin:
		if err := p.content.onEscapeBegin(ev.pos); err != nil {
			return Event{}, false, err
		}
		return Event{}, false, nil

	case tokEscapeEndSimple:
		if err := p.surrogate.interrupt(); err != nil {
			return Event{}, false, err
		}
		if err := p.content.onSimpleEscapeEnd(ev.escStart, ev.escEnd, ev.byteVal); err != nil {
			return Event{}, false, err
		}
		return Event{}, false, nil

	case tokEscapeEndUnicode:
		if err := p.content.onUnicodeEscapeEnd(ev.escStart, ev.escEnd, ev.codepoint, &p.surrogate); err != nil {
			return Event{}, false, err
		}
		return Event{}, false, nil

	case tokKeyEnd:
		if err := p.surrogate.interrupt(); err != nil {
			return Event{}, false, err
		}
		s, err := p.content.finish(ev.pos)
		if err != nil {
			return Event{}, false, err
		}
		return Event{Kind: Key, Str: s}, true, nil

	case tokStringEnd:
		if err := p.surrogate.interrupt(); err != nil {
			return Event{}, false, err
		}
		s, err := p.content.finish(ev.pos)
		if err != nil {
			return Event{}, false, err
		}
		return Event{Kind: String, Str: s}, true, nil

	case tokNumberBegin:
		p.numStart = ev.pos
		p.src.setAnchor(ev.pos)
		return Event{}, false, nil

	case tokNumberEnd:
		raw, ok := p.src.slice(p.numStart, ev.pos)
		p.src.clearAnchor()
		if !ok {
			return Event{}, false, unexpectedErr(ev.pos, "invalid number span")
		}
		num, err := parseNumber(unsafeString(raw), p.cfg, p.numStart)
		if err != nil {
			return Event{}, false, err
		}
		return Event{Kind: Number, Num: num}, true, nil

	case tokTrue:
		return Event{Kind: Bool, Bool: true}, true, nil
	case tokFalse:
		return Event{Kind: Bool, Bool: false}, true, nil
	case tokNull:
		return Event{Kind: Null}, true, nil

	default:
		return Event{}, false, unexpectedErr(ev.pos, "unreachable tokenizer event")
	}
}

// InString reports whether the tokenizer is currently inside string/key
// content (as opposed to escape sub-states), for the literal-byte
// surrogate-interrupt check above.
func (t *Tokenizer[DC]) InString() bool { return t.state == stString }
