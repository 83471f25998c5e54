package message

import (
	"net/mail"
	"strings"
	"time"

	"github.com/mailchannels/go-mimeparse/internal/addrparse"
)

// HeaderValueKind tags the variant held by a HeaderValue, the
// parse_headers collaborator's per-field output (spec.md §6).
type HeaderValueKind int

const (
	// ValueRaw holds free-form text (RFC 2047 encoded-words already
	// decoded), used for any header without a dedicated structured parser.
	ValueRaw HeaderValueKind = iota
	// ValueContentType holds a parsed Content-Type.
	ValueContentType
	// ValueAddressList holds a parsed address-list (To, From, Cc, Bcc,
	// Reply-To, Sender and their Resent- variants).
	ValueAddressList
	// ValueDate holds a parsed Date header.
	ValueDate
	// ValueMessageID holds the bracket-stripped content of a Message-ID,
	// In-Reply-To, or References header (References may carry more than
	// one msg-id, hence the slice).
	ValueMessageID
)

// Address is one parsed mailbox entry of an address-list header.
type Address struct {
	DisplayName string
	LocalPart   string
	Domain      string
}

// HeaderValue is the parsed value of one header line, tagged by Kind.
type HeaderValue struct {
	Kind HeaderValueKind

	Raw         string
	ContentType *ContentType
	Addresses   []Address
	Group       string
	Date        time.Time
	DateValid   bool
	MessageIDs  []string
}

// Header is one (name, parsed-value) pair, preserving source order and
// duplicates (spec.md §3).
type Header struct {
	Name  string
	Value HeaderValue
}

// structuredParsers dispatches recognized header names (ASCII-lowercased)
// to their per-field HeaderValue parser. Unknown or free-form headers fall
// through to parseRawHeader. Content-Type has its own consumption rule
// (parseContentType tracks its own position) so it is dispatched specially
// by parseHeaderBlock rather than listed here.
var structuredParsers = map[string]func(raw string) HeaderValue{
	"to":          parseAddressHeader,
	"from":        parseAddressHeader,
	"cc":          parseAddressHeader,
	"bcc":         parseAddressHeader,
	"reply-to":    parseAddressHeader,
	"sender":      parseAddressHeader,
	"resent-to":   parseAddressHeader,
	"resent-from": parseAddressHeader,
	"resent-cc":   parseAddressHeader,
	"resent-bcc":  parseAddressHeader,
	"date":        parseDateHeader,
	"resent-date": parseDateHeader,
	"message-id":  parseMessageIDHeader,
	"in-reply-to": parseMessageIDHeader,
	"references":  parseMessageIDHeader,
}

// parseHeaderBlock implements the parse_headers collaborator of spec.md
// §4.5/§6: it reads lines from data[pos:] until a blank line, splitting
// each at the first ':', lowercasing the name, and dispatching to a
// structured per-field parser or the raw-text fallback. Folded
// continuation lines (next line starting with space/tab) extend the
// previous header's raw value. Returns ok == false only when no header
// line could be read at all (immediate blank line or EOF), matching the
// "no header read" exit condition of the walker's main loop step 1.
func parseHeaderBlock(data []byte, pos int) (headers []Header, newPos int, ok bool) {
	for pos < len(data) {
		lineEnd := indexLineEnd(data, pos)
		if lineEnd == pos || (lineEnd == pos+1 && data[pos] == '\r') {
			// Blank line: end of header block.
			pos = skipCRLF(data, pos)
			return headers, pos, len(headers) > 0
		}

		colon := indexByteUpTo(data, pos, lineEnd, ':')
		if colon < 0 {
			// Not a well-formed "name: value" line; skip it and keep
			// scanning rather than aborting the whole block.
			pos = advanceToNextLine(data, lineEnd)
			continue
		}

		name := strings.ToLower(strings.TrimSpace(string(data[pos:colon])))
		valueStart := colon + 1

		if name == "content-type" {
			ct, afterCT := parseContentType(data, valueStart)
			headers = append(headers, Header{Name: name, Value: HeaderValue{Kind: ValueContentType, ContentType: ct}})
			pos = advanceToNextLine(data, afterCT)
			continue
		}

		rawEnd := indexUnfoldedLineEnd(data, valueStart)
		raw := unfoldValue(data[valueStart:rawEnd])
		raw = strings.TrimSpace(raw)

		if parser, known := structuredParsers[name]; known {
			headers = append(headers, Header{Name: name, Value: parser(raw)})
		} else {
			headers = append(headers, Header{Name: name, Value: parseRawHeader(raw)})
		}
		pos = advanceToNextLine(data, rawEnd)
	}
	return headers, pos, len(headers) > 0
}

// indexLineEnd returns the offset of the line break starting at or after
// pos, scanning only to the first unfolded LF (i.e. the end of *this*
// line, not the end of a folded value).
func indexLineEnd(data []byte, pos int) int {
	for i := pos; i < len(data); i++ {
		if data[i] == '\n' {
			if i > pos && data[i-1] == '\r' {
				return i - 1
			}
			return i
		}
	}
	return len(data)
}

func indexByteUpTo(data []byte, from, to int, b byte) int {
	for i := from; i < to && i < len(data); i++ {
		if data[i] == b {
			return i
		}
	}
	return -1
}

// indexUnfoldedLineEnd returns the offset of the first LF not followed by
// a continuation WSP, i.e. the true end of a (possibly folded) header
// value starting at pos.
func indexUnfoldedLineEnd(data []byte, pos int) int {
	for i := pos; i < len(data); i++ {
		if data[i] == '\n' {
			next := byte(0)
			if i+1 < len(data) {
				next = data[i+1]
			}
			if next == ' ' || next == '\t' {
				continue
			}
			if i > pos && data[i-1] == '\r' {
				return i - 1
			}
			return i
		}
	}
	return len(data)
}

// unfoldValue removes the CRLF/LF line breaks of folded lines, per RFC 5322
// §2.2.3 unfolding: the continuation line's leading whitespace is kept, so
// each fold leaves just that whitespace between the joined pieces.
func unfoldValue(b []byte) string {
	var out strings.Builder
	out.Grow(len(b))
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case '\r', '\n':
			continue
		default:
			out.WriteByte(b[i])
		}
	}
	return out.String()
}

// advanceToNextLine moves past the line break at pos (one CRLF or bare
// LF), landing at the start of the following line.
func advanceToNextLine(data []byte, pos int) int {
	if pos < len(data) && data[pos] == '\r' {
		pos++
	}
	if pos < len(data) && data[pos] == '\n' {
		pos++
	}
	return pos
}

// parseRawHeader is the raw-text per-field parser named in spec.md §6: it
// decodes any RFC 2047 encoded-words present and otherwise passes the
// value through unchanged.
func parseRawHeader(raw string) HeaderValue {
	return HeaderValue{Kind: ValueRaw, Raw: decodeAdjacentEncodedWords(raw)}
}

// parseAddressHeader adapts internal/addrparse's mailbox-list/group
// grammar to the HeaderValue contract, decoding RFC 2047 encoded-words in
// display names first (addrparse operates on already-decoded text).
func parseAddressHeader(raw string) HeaderValue {
	decoded := decodeAdjacentEncodedWords(raw)
	list, err := addrparse.ParseList([]byte(decoded))
	if err != nil && len(list.List) == 0 && list.Group == "" {
		return HeaderValue{Kind: ValueAddressList, Raw: decoded}
	}
	addrs := make([]Address, 0, len(list.List))
	for _, m := range list.List {
		addrs = append(addrs, Address{DisplayName: m.DisplayName, LocalPart: m.LocalPart, Domain: m.Domain})
	}
	return HeaderValue{Kind: ValueAddressList, Raw: decoded, Addresses: addrs, Group: list.Group}
}

// parseDateHeader wraps net/mail.ParseDate, the standard library's RFC
// 5322 §3.3 date-time parser (which already tolerates the obsolete
// two-digit-year and missing-seconds forms this header must accept).
func parseDateHeader(raw string) HeaderValue {
	t, err := mail.ParseDate(raw)
	if err != nil {
		return HeaderValue{Kind: ValueDate, Raw: raw}
	}
	return HeaderValue{Kind: ValueDate, Raw: raw, Date: t, DateValid: true}
}

// parseMessageIDHeader extracts the "<...>" msg-id token(s) from a
// Message-ID, In-Reply-To, or References header, stripping the angle
// brackets. References may carry a whitespace-separated list.
func parseMessageIDHeader(raw string) HeaderValue {
	var ids []string
	i := 0
	for i < len(raw) {
		start := strings.IndexByte(raw[i:], '<')
		if start < 0 {
			break
		}
		start += i
		end := strings.IndexByte(raw[start:], '>')
		if end < 0 {
			break
		}
		end += start
		ids = append(ids, raw[start+1:end])
		i = end + 1
	}
	return HeaderValue{Kind: ValueMessageID, Raw: raw, MessageIDs: ids}
}
