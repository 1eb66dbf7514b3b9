package picojson

import "testing"

// FuzzNextEvent checks that the slice parser never panics and, whenever it
// reports no error, produces a stream that ends in EndDocument with every
// container closed.
func FuzzNextEvent(f *testing.F) {
	for _, seed := range []string{
		``,
		`{}`,
		`[]`,
		`{"a": 1}`,
		`[1, 2, 3]`,
		`{"a": [1, {"b": true, "c": null}, "x\ny"]}`,
		`"😀"`,
		`"\uD83D"`,
		`01`,
		`-`,
		`{,}`,
		`[1,,2]`,
		`{"a": }`,
		`"unterminated`,
		`3.14159e+10`,
		`   `,
		`{"a": 1,}`,
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		scratch := make([]byte, 64)
		p, err := NewDefaultSliceParser([]byte(input), scratch)
		if err != nil {
			t.Fatalf("NewDefaultSliceParser rejected valid construction: %v", err)
		}

		depth := 0
		for {
			ev, perr := p.NextEvent()
			if perr != nil {
				return // malformed input reporting an error is expected
			}
			switch ev.Kind {
			case StartObject, StartArray:
				depth++
			case EndObject, EndArray:
				depth--
				if depth < 0 {
					t.Fatalf("closed more containers than were opened")
				}
			case EndDocument:
				if depth != 0 {
					t.Fatalf("reached EndDocument with %d containers still open", depth)
				}
				return
			}
		}
	})
}

// FuzzNextEventStream mirrors FuzzNextEvent for the Reader-based parser,
// split into small reads to exercise refill/compaction on arbitrary input.
func FuzzNextEventStream(f *testing.F) {
	for _, seed := range []string{
		``,
		`{"a": [1, {"b": true}], "c": "hello world"}`,
		`"😀"`,
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		scratch := make([]byte, 64)
		r := NewChunkReader([]byte(input), 3)
		p, err := NewDefaultStreamParser(r, scratch)
		if err != nil {
			t.Fatalf("NewDefaultStreamParser rejected valid construction: %v", err)
		}

		for {
			ev, perr := p.NextEvent()
			if perr != nil {
				return
			}
			if ev.Kind == EndDocument {
				return
			}
		}
	})
}
