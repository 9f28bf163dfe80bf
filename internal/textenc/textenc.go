// Package textenc resolves user-supplied encoding names and decodes file
// content to UTF-8 for scanning.
//
// Names are matched against the WHATWG encoding index (case-insensitive,
// aliases included), so "latin1", "ISO-8859-1" and "iso88591" all resolve.
// Decoded text is always UTF-8; the scanner never sees source bytes.
package textenc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding is returned when a name matches no supported encoding.
var ErrUnknownEncoding = errors.New("unknown encoding")

// ErrUndecodable is returned when content cannot be decoded under the
// resolved encoding.
var ErrUndecodable = errors.New("content not decodable")

// DefaultName is the encoding assumed when the caller specifies none.
const DefaultName = "utf-8"

// Encoding is a resolved character encoding, ready to wrap readers.
type Encoding struct {
	name string
	enc  encoding.Encoding
}

// Resolve maps a user-supplied encoding name to an Encoding.
//
// Returns ErrUnknownEncoding (wrapped with the offending name) when the
// index has no match.
func Resolve(name string) (*Encoding, error) {
	if name == "" {
		name = DefaultName
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		// Every encoding Get returns is in the index; keep the input
		// name if canonicalization ever fails.
		canonical = name
	}
	return &Encoding{name: canonical, enc: enc}, nil
}

// Name returns the canonical name of the encoding (e.g. "utf-8").
func (e *Encoding) Name() string {
	return e.name
}

// IsUTF8 reports whether the encoding is UTF-8 itself, in which case file
// bytes pass through undecoded.
func (e *Encoding) IsUTF8() bool {
	return e.name == DefaultName
}

// NewReader wraps r so reads yield UTF-8. UTF-8 sources are returned
// unwrapped; anything else goes through the encoding's decoder.
//
// The x/text decoders never fail on unmappable input: they substitute
// U+FFFD. Callers detect that per line via ValidateLine.
func (e *Encoding) NewReader(r io.Reader) io.Reader {
	if e.IsUTF8() {
		return r
	}
	return transform.NewReader(r, e.enc.NewDecoder())
}

// ValidateLine checks one decoded line for bytes the encoding could not
// represent.
//
// For UTF-8 sources the check is exact (utf8.Valid on the raw bytes). For
// decoded sources the replacement character marks an unmappable input byte;
// a legitimate U+FFFD in non-UTF-8 input is indistinguishable and also
// rejected.
func (e *Encoding) ValidateLine(line []byte) error {
	if e.IsUTF8() {
		if !utf8.Valid(line) {
			return fmt.Errorf("%w as %s", ErrUndecodable, e.name)
		}
		return nil
	}
	if bytes.ContainsRune(line, utf8.RuneError) {
		return fmt.Errorf("%w as %s", ErrUndecodable, e.name)
	}
	return nil
}

// Names returns the canonical names of all supported encodings, sorted.
//
// The set is the charmap table plus the Unicode family; names not present
// in the WHATWG index (a few legacy IBM code pages) are omitted since
// Resolve could not round-trip them.
func Names() []string {
	seen := map[string]bool{
		"utf-8":    true,
		"utf-16be": true,
		"utf-16le": true,
	}
	for _, enc := range charmap.All {
		name, err := htmlindex.Name(enc)
		if err != nil {
			continue
		}
		seen[name] = true
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
