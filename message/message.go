// Package message implements an RFC 5322 / MIME email parser: it turns an
// opaque byte buffer into a structured, navigable Message with decoded
// textual bodies, enumerated attachments, and recursive message/rfc822
// support.
//
// Parsing is single-threaded and purely synchronous: Parse takes the whole
// input up front, there are no suspension points, and the returned Message
// borrows from the input slice for the lifetime of the result.
package message

import "fmt"

// TransferEncoding is the content-transfer-encoding applied to a Part's
// body, as declared (or defaulted) by its Content-Transfer-Encoding header.
type TransferEncoding int

const (
	EncodingNone TransferEncoding = iota
	EncodingBase64
	EncodingQuotedPrintable
)

func (e TransferEncoding) String() string {
	switch e {
	case EncodingBase64:
		return "base64"
	case EncodingQuotedPrintable:
		return "quoted-printable"
	default:
		return "identity"
	}
}

// Kind classifies a part's Content-Type, combining superType/subType into
// the walker's routing decisions (spec.md §4.1 classification table).
type Kind int

const (
	KindOther Kind = iota
	KindMessage
	KindMultipartMixed
	KindMultipartAlternative
	KindMultipartRelated
	KindMultipartDigest
	KindMultipartOther
	KindTextPlain
	KindTextHTML
	KindTextOther
	KindInline
)

func (k Kind) isMultipart() bool {
	switch k {
	case KindMultipartMixed, KindMultipartAlternative, KindMultipartRelated,
		KindMultipartDigest, KindMultipartOther:
		return true
	default:
		return false
	}
}

func (k Kind) isText() bool {
	return k == KindTextPlain || k == KindTextHTML || k == KindTextOther
}

// BodyKind tags the variant held by a Part's Body.
type BodyKind int

const (
	BodyMultipart BodyKind = iota
	BodyText
	BodyHTML
	BodyBinary
	BodyInlineBinary
	BodyMessage
)

// Body is the tagged-variant payload of a Part, per spec.md §3.
type Body struct {
	Kind BodyKind

	// Children holds child part indices when Kind == BodyMultipart.
	Children []int

	// Text holds decoded text when Kind is BodyText or BodyHTML.
	Text string

	// Bytes holds the raw payload when Kind is BodyBinary or
	// BodyInlineBinary.
	Bytes []byte

	// Nested holds the parsed child message when Kind == BodyMessage.
	// NestedRaw is not set by Parse: a nested message whose header block
	// cannot be read is attached as a Nested Message with no parts.
	Nested    *Message
	NestedRaw []byte
}

// Part is one MIME entity: a leaf body or a multipart/message container.
type Part struct {
	Headers []Header

	Encoding          TransferEncoding
	IsEncodingProblem bool

	ContentType *ContentType

	Body Body

	OffsetHeader int
	OffsetBody   int
	OffsetEnd    int

	kind Kind
}

// RawHeaders returns the exact raw header block bytes for this part,
// borrowed from the root message's buffer.
func (p *Part) RawHeaders(root *Message) []byte {
	return root.raw[p.OffsetHeader:p.OffsetBody]
}

// IsAttachment reports whether this part's body is classified as a
// non-inline attachment leaf (Binary, or a nested message/rfc822).
func (p *Part) IsAttachment() bool {
	return p.Body.Kind == BodyBinary || p.Body.Kind == BodyMessage
}

// IsInline reports whether this part's body is an InlineBinary leaf: a
// non-text leaf that routing placed inline (such as an inline
// image/audio/video). Inline text leaves keep their Text/Html kind and
// report false.
func (p *Part) IsInline() bool {
	return p.Body.Kind == BodyInlineBinary
}

// ContentTypeHeader returns the parsed Content-Type of this part, or nil if
// none was present.
func (p *Part) ContentTypeHeader() *ContentType {
	return p.ContentType
}

// Message is the root of one parse: a raw buffer plus the flat part vector
// and the three index vectors described in spec.md §3.
type Message struct {
	raw []byte

	Parts []*Part

	TextBody    []int
	HTMLBody    []int
	Attachments []int
}

// Raw returns the full byte buffer this Message was parsed from.
func (m *Message) Raw() []byte { return m.raw }

// Root returns parts[0], the top-level container/leaf of the parse.
func (m *Message) Root() *Part {
	if len(m.Parts) == 0 {
		return nil
	}
	return m.Parts[0]
}

// PartsInOrder returns part indices in pre-order (container before
// children), a convenience for dumping/debugging. It is not used by the
// walker and carries no invariant of its own.
func (m *Message) PartsInOrder() []int {
	var out []int
	var visit func(idx int)
	visit = func(idx int) {
		out = append(out, idx)
		if idx < 0 || idx >= len(m.Parts) {
			return
		}
		p := m.Parts[idx]
		if p.Body.Kind == BodyMultipart {
			for _, c := range p.Body.Children {
				visit(c)
			}
		}
	}
	if len(m.Parts) > 0 {
		visit(0)
	}
	return out
}

func (m *Message) String() string {
	return fmt.Sprintf("Message{parts=%d text=%d html=%d attachments=%d}",
		len(m.Parts), len(m.TextBody), len(m.HTMLBody), len(m.Attachments))
}
