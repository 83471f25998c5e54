package message

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mailchannels/go-mimeparse/charset"
)

// ContentTypeAttribute is one (name, value) parameter pair of a parsed
// Content-Type header, in source order. Names are lowercased; values
// preserve original case.
type ContentTypeAttribute struct {
	Name  string
	Value string
}

// ContentType is a parsed Content-Type header value (spec.md §3).
type ContentType struct {
	Type       string
	SubType    string
	Attributes []ContentTypeAttribute
}

// Get looks up an attribute by name (case-insensitive), mirroring the
// lowercased-at-store invariant of Attributes.
func (c *ContentType) Get(name string) (string, bool) {
	if c == nil {
		return "", false
	}
	name = strings.ToLower(name)
	for _, a := range c.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// isTSpecial matches the RFC 2045 tspecials that terminate a bare token.
var isTSpecial = [128]bool{
	'(': true, ')': true, '<': true, '>': true, '@': true,
	',': true, ';': true, ':': true, '\\': true, '"': true,
	'/': true, '[': true, ']': true, '?': true, '=': true,
}

func isTokenByte(c byte) bool {
	return c > 32 && c < 128 && !isTSpecial[c]
}

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 32
	}
	return c
}

// ctCursor walks data[pos:] for the Content-Type state machine. It treats
// both "\r\n" and bare "\n" as line breaks and understands header folding
// (a line break followed by space/tab continues the value).
type ctCursor struct {
	data []byte
	pos  int
}

func (c *ctCursor) eof() bool { return c.pos >= len(c.data) }

func (c *ctCursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.data[c.pos]
}

func (c *ctCursor) peekAt(off int) byte {
	if c.pos+off >= len(c.data) {
		return 0
	}
	return c.data[c.pos+off]
}

// advance moves past one logical byte, skipping CR, and transparently
// absorbing "LF WSP" header folds into a single space. Returns false at a
// terminating (non-folded) LF or EOF.
func (c *ctCursor) advance() bool {
	for !c.eof() {
		ch := c.data[c.pos]
		if ch == '\r' {
			c.pos++
			continue
		}
		if ch == '\n' {
			next := c.peekAt(1)
			if next == ' ' || next == '\t' {
				c.pos++ // consume the LF; the WSP is consumed normally next
				continue
			}
			return false
		}
		c.pos++
		return true
	}
	return false
}

func (c *ctCursor) skipWSPAndFold() {
	for !c.eof() {
		ch := c.data[c.pos]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r':
			c.pos++
		case ch == '\n' && (c.peekAt(1) == ' ' || c.peekAt(1) == '\t'):
			c.pos++
		default:
			return
		}
	}
}

func (c *ctCursor) atTerminator() bool {
	if c.eof() {
		return true
	}
	ch := c.data[c.pos]
	return ch == '\n' && !(c.peekAt(1) == ' ' || c.peekAt(1) == '\t')
}

// skipComment discards an RFC 822 comment, handling nesting and
// backslash-escapes, from an opening '(' at the cursor.
func (c *ctCursor) skipComment() {
	depth := 0
	for !c.eof() {
		ch := c.data[c.pos]
		switch {
		case ch == '\\':
			c.pos += 2
			continue
		case ch == '(':
			depth++
			c.pos++
		case ch == ')':
			depth--
			c.pos++
			if depth == 0 {
				return
			}
		case ch == '\n' && (c.peekAt(1) == ' ' || c.peekAt(1) == '\t'):
			c.pos++
		case ch == '\r':
			c.pos++
		default:
			c.pos++
		}
	}
}

// token scans a bare RFC 2045 token, lower-casing if lower is set.
func (c *ctCursor) token(lower bool) string {
	var b strings.Builder
	for !c.eof() && isTokenByte(c.data[c.pos]) {
		ch := c.data[c.pos]
		if lower {
			ch = lowerASCII(ch)
		}
		b.WriteByte(ch)
		c.pos++
	}
	return b.String()
}

// quotedString scans a "..." value, handling backslash-escapes and eliding
// folded CRLFs from the result (RFC 2045 quoted-string with folding).
func (c *ctCursor) quotedString() string {
	if c.peek() != '"' {
		return ""
	}
	c.pos++
	var b strings.Builder
	for !c.eof() {
		ch := c.data[c.pos]
		switch {
		case ch == '"':
			c.pos++
			return b.String()
		case ch == '\\':
			c.pos++
			if !c.eof() {
				b.WriteByte(c.data[c.pos])
				c.pos++
			}
		case ch == '\r':
			c.pos++
		case ch == '\n':
			if c.peekAt(1) == ' ' || c.peekAt(1) == '\t' {
				c.pos++ // fold elided from value
			} else {
				return b.String()
			}
		default:
			b.WriteByte(ch)
			c.pos++
		}
	}
	return b.String()
}

// rawValue scans an unquoted value up to ';' or a terminating LF, applying
// RFC 2047 encoded-word decoding at token starts.
func (c *ctCursor) rawValue() string {
	var b strings.Builder
	for !c.eof() {
		ch := c.data[c.pos]
		if ch == ';' {
			return b.String()
		}
		if ch == '\n' {
			if c.peekAt(1) == ' ' || c.peekAt(1) == '\t' {
				c.pos++
				continue
			}
			return b.String()
		}
		if ch == '\r' {
			c.pos++
			continue
		}
		if ch == '=' && c.peekAt(1) == '?' {
			if consumed, decoded, ok := decodeEncodedWordAt(c.data[c.pos:]); ok {
				b.WriteString(decoded)
				c.pos += consumed
				continue
			}
		}
		b.WriteByte(ch)
		c.pos++
	}
	return b.String()
}

type rfc2231Segment struct {
	num     int
	value   string
	encoded bool
}

// parseContentType implements the Content-Type state machine of spec.md
// §4.2: it consumes bytes from data[pos:], stopping at the first
// non-continuation LF, and returns the parsed value (or nil for Empty).
// newPos is the offset just past the consumed value (at the terminating
// LF, not past it).
func parseContentType(data []byte, pos int) (ct *ContentType, newPos int) {
	c := &ctCursor{data: data, pos: pos}
	c.skipWSPAndFold()

	if c.eof() || c.peek() == '/' || c.peek() == ';' {
		return nil, c.pos
	}

	typ := c.token(true)
	if typ == "" {
		return nil, c.pos
	}

	result := &ContentType{Type: typ}

	if c.peek() == '/' {
		c.pos++
		result.SubType = c.token(true)
	}

	segments := map[string][]rfc2231Segment{}
	langSeen := map[string]bool{}
	segCharset := map[string]string{}

	for {
		c.skipWSPAndFold()
		if c.eof() {
			break
		}
		if c.peek() == '(' {
			c.skipComment()
			continue
		}
		if c.atTerminator() {
			break
		}
		if c.peek() == ';' {
			c.pos++
			continue
		}
		if !isTokenByte(c.peek()) {
			break
		}

		name := c.token(false)
		if name == "" {
			break
		}

		isContinuation := false
		segNum := 0
		isEncodedSegment := false
		baseName := name

		if idx := strings.IndexByte(name, '*'); idx >= 0 {
			isContinuation = true
			baseName = name[:idx]
			rest := name[idx+1:]
			if strings.HasSuffix(rest, "*") {
				isEncodedSegment = true
				rest = rest[:len(rest)-1]
			} else if rest == "" {
				// "name*=" with no segment number: one encoded segment.
				isEncodedSegment = true
			}
			if rest != "" {
				if n, err := strconv.Atoi(rest); err == nil && n >= 0 && n <= 9999 {
					segNum = n
				} else {
					segNum = 0
				}
			}
		}
		lowerBase := strings.ToLower(baseName)

		c.skipWSPAndFold()
		if c.peek() != '=' {
			continue
		}
		c.pos++
		c.skipWSPAndFold()

		var raw string
		if c.peek() == '"' {
			raw = c.quotedString()
		} else {
			raw = c.rawValue()
		}

		if !isContinuation {
			result.Attributes = append(result.Attributes, ContentTypeAttribute{
				Name: lowerBase, Value: raw,
			})
			continue
		}

		value := raw
		if isEncodedSegment && segNum == 0 {
			if i := strings.Index(raw, "'"); i >= 0 {
				if j := strings.Index(raw[i+1:], "'"); j >= 0 {
					charsetName := raw[:i]
					lang := raw[i+1 : i+1+j]
					value = raw[i+1+j+1:]
					if charsetName != "" {
						segCharset[lowerBase] = charsetName
					}
					if lang != "" {
						if !langSeen[lowerBase] {
							result.Attributes = append(result.Attributes, ContentTypeAttribute{
								Name: lowerBase + "-language", Value: lang,
							})
							langSeen[lowerBase] = true
						} else {
							value = "'" + raw
						}
					}
					segments[lowerBase] = append(segments[lowerBase], rfc2231Segment{
						num: segNum, value: value, encoded: true,
					})
					continue
				}
			}
		}
		segments[lowerBase] = append(segments[lowerBase], rfc2231Segment{
			num: segNum, value: value, encoded: isEncodedSegment,
		})
	}

	for name, segs := range segments {
		sort.Slice(segs, func(i, j int) bool { return segs[i].num < segs[j].num })
		var merged strings.Builder
		anyEncoded := false
		for _, s := range segs {
			merged.WriteString(s.value)
			if s.encoded {
				anyEncoded = true
			}
		}
		final := merged.String()
		if anyEncoded {
			decodedBytes, _ := hexDecode([]byte(final))
			csName := segCharset[name]
			if csName != "" {
				if fn, ok := charset.DecoderFor([]byte(csName)); ok {
					final = fn(decodedBytes)
				} else {
					final = lossyUTF8Bytes(decodedBytes)
				}
			} else {
				final = lossyUTF8Bytes(decodedBytes)
			}
		}
		result.Attributes = append(result.Attributes, ContentTypeAttribute{Name: name, Value: final})
	}

	return result, c.pos
}

// hexDecode percent-decodes "%XX" sequences (case-insensitive hex),
// passing through any other byte unchanged. It is the decode_hex
// collaborator named in spec.md §6.
func hexDecode(in []byte) ([]byte, bool) {
	out := make([]byte, 0, len(in))
	allValid := true
	for i := 0; i < len(in); i++ {
		if in[i] == '%' && i+2 < len(in) {
			hi, okHi := hexVal(in[i+1])
			lo, okLo := hexVal(in[i+2])
			if okHi && okLo {
				out = append(out, hi<<4|lo)
				i += 2
				continue
			}
			allValid = false
		}
		out = append(out, in[i])
	}
	return out, allValid
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
