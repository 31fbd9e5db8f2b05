package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

// DefaultEncoding is used when no encoding label is given.
const DefaultEncoding = "utf-8"

const byteOrderMark = "\ufeff"

// Load reads a comma-separated file with a header row into a Table.
//
// The encoding label names the file's character set (e.g. "utf-8", "latin-1",
// "windows-1252"); an empty label means UTF-8. Empty cells load as null,
// every other cell as a string.
func Load(path, encodingLabel string) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, &ParseError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &NotFoundError{Path: path}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return parse(path, data, encodingLabel)
}

// LoadMany loads several files with the same encoding and returns them keyed
// by base file name. It stops at the first failure.
func LoadMany(paths []string, encodingLabel string) (map[string]*Table, error) {
	tables := make(map[string]*Table, len(paths))
	for _, path := range paths {
		t, err := Load(path, encodingLabel)
		if err != nil {
			return nil, err
		}
		tables[filepath.Base(path)] = t
	}
	return tables, nil
}

func parse(path string, data []byte, encodingLabel string) (*Table, error) {
	text, line, err := decode(data, encodingLabel)
	if err != nil {
		return nil, &ParseError{Path: path, Line: line, Err: err}
	}

	r := csv.NewReader(strings.NewReader(text))
	// The header fixes the width; csv.Reader rejects any record that differs.
	r.FieldsPerRecord = 0

	header, err := r.Read()
	if err == io.EOF {
		return nil, &ParseError{Path: path, Err: errors.New("missing header row")}
	}
	if err != nil {
		return nil, csvError(path, err)
	}

	var rows [][]Value
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvError(path, err)
		}

		row := make([]Value, len(record))
		for i, cell := range record {
			if cell != "" {
				row[i] = String(cell)
			}
		}
		rows = append(rows, row)
	}

	t, err := NewTable(uniqueHeader(header), rows)
	if err != nil {
		return nil, &ParseError{Path: path, Line: 1, Err: err}
	}
	return t, nil
}

// uniqueHeader names empty header cells "Unnamed: <i>" (0-based position) and
// suffixes repeated names with ".1", ".2", ... so the first occurrence keeps
// its name. Spreadsheet exports with a trailing comma or a repeated extra
// column therefore still load.
func uniqueHeader(header []string) []string {
	names := make([]string, len(header))
	counts := make(map[string]int, len(header))
	for i, name := range header {
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		for n := counts[name]; n > 0; n = counts[name] {
			counts[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n)
		}
		names[i] = name
		counts[name]++
	}
	return names
}

var (
	errInvalidUTF8 = errors.New("invalid UTF-8 byte sequence")
	errUndecodable = errors.New("byte sequence not valid in the given encoding")
	errNotASCII    = errors.New("byte outside the US-ASCII range")
)

var replacementRune = []byte(string(utf8.RuneError))

var utf8Labels = map[string]bool{DefaultEncoding: true, "utf8": true, "utf_8": true}

// asciiLabels are checked byte by byte; WHATWG maps them to windows-1252,
// which would accept any high byte.
var asciiLabels = map[string]bool{
	"ascii": true, "us-ascii": true, "usascii": true, "us_ascii": true,
	"ansi_x3.4-1968": true, "iso646-us": true, "csascii": true,
	"cp367": true, "ibm367": true, "646": true,
}

// decode converts raw bytes to UTF-8 text and drops a leading byte-order mark.
// On failure it also returns the 1-based line of the offending input, or zero
// when no line applies.
func decode(data []byte, label string) (string, int, error) {
	name := strings.ToLower(strings.TrimSpace(label))
	if name == "" {
		name = DefaultEncoding
	}

	text := data
	switch {
	case utf8Labels[name]:
	case asciiLabels[name]:
		for i, b := range data {
			if b >= utf8.RuneSelf {
				return "", lineAt(data, i), fmt.Errorf("%w: 0x%02x", errNotASCII, b)
			}
		}
	default:
		enc, err := resolveEncoding(name)
		if err != nil {
			return "", 0, fmt.Errorf("unsupported encoding %q", label)
		}
		text, err = enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", 0, fmt.Errorf("cannot decode as %s: %w", label, err)
		}
		if i := substitutedRune(enc, data, text); i >= 0 {
			return "", lineAt(text, i), fmt.Errorf("%w (%s)", errUndecodable, label)
		}
	}

	if !utf8.Valid(text) {
		return "", lineAt(text, invalidOffset(text)), errInvalidUTF8
	}
	return strings.TrimPrefix(string(text), byteOrderMark), 0, nil
}

// resolveEncoding maps a lower-cased label other than UTF-8 or ASCII to an
// encoding, trying WHATWG names before IANA ones.
func resolveEncoding(name string) (encoding.Encoding, error) {
	candidates := []string{name, strings.NewReplacer("-", "", "_", "").Replace(name)}
	for _, candidate := range candidates {
		if enc, err := htmlindex.Get(candidate); err == nil {
			return enc, nil
		}
		if enc, err := ianaindex.IANA.Encoding(candidate); err == nil && enc != nil {
			return enc, nil
		}
	}
	return nil, errors.New("unknown label")
}

// substitutedRune returns the offset in text of the first U+FFFD the decoder
// produced for bytes it could not map, or -1 when there is none.
//
// x/text decoders replace undecodable input with U+FFFD instead of failing.
// For encodings that cannot represent U+FFFD any occurrence is a substitution;
// for Unicode encodings only occurrences beyond those literally present in
// the input are.
func substitutedRune(enc encoding.Encoding, data, text []byte) int {
	first := bytes.Index(text, replacementRune)
	if first < 0 {
		return -1
	}

	one, err := enc.NewEncoder().Bytes(replacementRune)
	if err != nil {
		return first
	}
	two, err := enc.NewEncoder().Bytes(append(append([]byte(nil), replacementRune...), replacementRune...))
	if err != nil || len(two) <= len(one) {
		return first
	}
	// The second rune's bytes carry no byte-order mark.
	encoded := two[len(one):]
	if bytes.Count(text, replacementRune) > bytes.Count(data, encoded) {
		return first
	}
	return -1
}

// lineAt returns the 1-based line of offset i in text.
func lineAt(text []byte, i int) int {
	return bytes.Count(text[:i], []byte{'\n'}) + 1
}

// invalidOffset returns the offset of the first invalid UTF-8 sequence.
func invalidOffset(text []byte) int {
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRune(text[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(text)
}

func csvError(path string, err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &ParseError{Path: path, Line: perr.Line, Err: perr.Err}
	}
	return &ParseError{Path: path, Err: err}
}
