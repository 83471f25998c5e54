package message

import (
	"bytes"
	"io"
	"mime"
	"strings"
	"unicode/utf8"

	mimecharset "github.com/mailchannels/go-mimeparse/charset"
)

// wordDecoder is the package-level RFC 2047 decoder, its CharsetReader
// pluggable exactly like the teacher's mail.Dec pattern
// (mail/iconv/iconv.go, mail/encoding/encoding.go): there, a package-level
// *mime.WordDecoder had its CharsetReader swapped to choose an iconv or
// x/net/html/charset backend. Here it's wired once, to this package's own
// perfect-hash charset dispatch (spec.md §4.4) instead of a whole-backend
// swap.
var wordDecoder = &mime.WordDecoder{
	CharsetReader: charsetReader,
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	fn, ok := mimecharset.DecoderFor([]byte(label))
	if !ok {
		return input, nil
	}
	raw, err := io.ReadAll(input)
	if err != nil {
		return nil, err
	}
	return strings.NewReader(fn(raw)), nil
}

// decodeEncodedWordAt attempts to parse a single RFC 2047 encoded-word
// "=?charset?Q-or-B?text?=" at the start of data. It returns (0, "", false)
// if data doesn't begin with one, matching the
// decode_rfc2047(stream, pos) -> (consumed, optional) collaborator
// contract of spec.md §6.
func decodeEncodedWordAt(data []byte) (consumed int, decoded string, ok bool) {
	if len(data) < 6 || data[0] != '=' || data[1] != '?' {
		return 0, "", false
	}
	end := findEncodedWordEnd(data)
	if end < 0 {
		return 0, "", false
	}
	token := string(data[:end])
	out, err := wordDecoder.Decode(token)
	if err != nil {
		return 0, "", false
	}
	return end, out, true
}

// findEncodedWordEnd locates the index just past the closing "?=" of the
// encoded-word starting at data[0:], scanning past exactly two interior
// '?' delimiters (charset?encoding?text?=), or returns -1.
func findEncodedWordEnd(data []byte) int {
	qCount := 0
	for i := 2; i < len(data)-1; i++ {
		if data[i] == '?' {
			qCount++
			if qCount == 3 && data[i+1] == '=' {
				return i + 2
			}
		}
		if data[i] == ' ' || data[i] == '\n' || data[i] == '\r' {
			return -1
		}
	}
	return -1
}

// decodeAdjacentEncodedWords collapses "=?c?e?a?= =?c?e?b?=" runs the way
// RFC 2047 requires (whitespace between adjacent encoded-words is not part
// of the decoded text), using mime.WordDecoder.DecodeHeader for any value
// that contains at least one encoded-word.
func decodeAdjacentEncodedWords(s string) string {
	if !bytes.Contains([]byte(s), []byte("=?")) {
		return s
	}
	out, err := wordDecoder.DecodeHeader(s)
	if err != nil {
		return s
	}
	return out
}

func lossyUTF8Bytes(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}
