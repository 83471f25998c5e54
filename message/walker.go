package message

import (
	"strings"

	"github.com/mailchannels/go-mimeparse/charset"
	"github.com/mailchannels/go-mimeparse/internal/logging"
)

// log is the package-level diagnostic logger for the walker's recovery
// paths (spec.md §7): a degraded leaf, an exhausted decode-recovery chain,
// a recursion-depth cutoff. It never affects parsing decisions, only what
// gets reported about them. Callers embedding this library can replace it
// with logging.Discard() or their own logging.Logger.
var log logging.Logger = logging.New("warn")

// SetLogger replaces the walker's diagnostic logger.
func SetLogger(l logging.Logger) { log = l }

// maxWalkDepth caps the nested message/rfc822 and multipart recursion
// depth (spec.md §5, §9 open question: the source enforces no limit; a
// reimplementation SHOULD). On overflow the offending container is closed
// as a zero-length Binary leaf with IsEncodingProblem set, the same shape
// used for an exhausted decode-recovery chain.
var maxWalkDepth = 100

// SetMaxDepth overrides the recursion-depth cutoff, e.g. from config.Config
// as loaded by cmd/mimedump. n <= 0 is ignored.
func SetMaxDepth(n int) {
	if n > 0 {
		maxWalkDepth = n
	}
}

// levelState is one level's worth of the walker's parser state (spec.md
// §4.1), pushed/popped on an explicit stack rather than recursing in the
// host language's call stack: entering a nested message/rfc822 swaps the
// entire Message being built, which a plain recursive-descent function
// can't do without threading an extra return channel through every frame.
type levelState struct {
	kind          Kind
	boundary      []byte
	inAlternative bool

	// leafBoundary is the nearest enclosing boundary a single-leaf
	// message/rfc822 wrapper must decode up to, inherited down through any
	// chain of boundary-less wrapper levels. It is unused (and equal to
	// boundary) at every level that has a boundary of its own.
	leafBoundary []byte

	parts int

	htmlParts int
	textParts int

	needHTMLBody bool
	needTextBody bool

	partID     int
	subPartIDs []int

	offsetHeader int
	offsetBody   int
	offsetEnd    int

	depth int
}

// effectiveBoundary returns the boundary a leaf directly at level l should
// decode up to: l's own boundary if it has one, otherwise the nearest
// enclosing boundary inherited through leafBoundary.
func effectiveBoundary(l levelState) []byte {
	if len(l.boundary) > 0 {
		return l.boundary
	}
	return l.leafBoundary
}

// frame is one entry of the walker's explicit stack: the parent level plus
// (only when a message/rfc822 was entered) the Message the child is being
// built into.
type frame struct {
	state       levelState
	parentMsg   *Message
	enteringMsg bool
}

type walker struct {
	root  *Message
	depth int
}

// Parse is the primary entry point (spec.md §6): it transforms raw into a
// structured Message, or returns nil when not even one header line could
// be read. The returned Message borrows from raw for its lifetime.
func Parse(raw []byte) *Message {
	w := &walker{}
	msg := &Message{raw: raw}
	ok := w.run(msg, 0, len(raw))
	if !ok {
		return nil
	}
	return msg
}

// run drives the main loop of spec.md §4.1 against msg starting at pos,
// using an explicit stack of levelStates for multipart/message recursion.
// It returns false only when the very first header block of the top-level
// message could not be read at all.
func (w *walker) run(msg *Message, pos int, end int) bool {
	cur := levelState{
		kind:         KindOther,
		needHTMLBody: true,
		needTextBody: true,
		partID:       -1,
	}
	var stack []frame
	curMsg := msg
	first := true

	for {
		headers, afterHeaders, ok := parseHeaderBlock(curMsg.raw, pos)
		if !ok {
			if first {
				return false
			}
			if len(cur.boundary) == 0 && len(stack) > 0 {
				// A nested message/rfc822 whose body has no readable
				// header block: attach it (with no parts) to its parent
				// part and resume the parent's sibling loop.
				var next int
				curMsg, next = w.finishBoundarylessLeaf(curMsg, &cur, &stack, pos)
				if next < 0 {
					return true
				}
				pos = next
				continue
			}
			// Truncated input: unwind every open container at the current
			// position (spec.md §7 "unterminated multipart" semantics).
			w.unwindAll(curMsg, &cur, &stack, pos)
			return true
		}
		first = false

		partID := len(curMsg.Parts)
		part := &Part{
			Headers:      headers,
			OffsetHeader: pos,
			OffsetBody:   afterHeaders,
		}
		curMsg.Parts = append(curMsg.Parts, part)
		cur.parts++
		cur.subPartIDs = append(cur.subPartIDs, partID)

		ct := contentTypeOf(headers)
		kind := classify(ct, cur.kind == KindMultipartDigest)
		part.ContentType = ct
		part.kind = kind
		part.Encoding = transferEncodingOf(headers)

		if kind.isMultipart() {
			boundary, usable := boundaryOf(ct)
			if usable {
				tokenStart, contentEnd, afterToken, _, found := seekNextPart(curMsg.raw, afterHeaders, boundary)
				if found {
					part.OffsetBody = seekCRLF(curMsg.raw, tokenStart)
					_ = contentEnd

					if w.depth+1 > maxWalkDepth {
						log.WithField("depth", w.depth+1).Warn("recursion depth exceeded, truncating multipart container")
						part.Body = Body{Kind: BodyBinary}
						part.IsEncodingProblem = true
						part.OffsetEnd = part.OffsetBody
						var next int
						curMsg, next = w.closeCutoffPart(curMsg, &cur, &stack, part.OffsetEnd)
						if next < 0 {
							return true
						}
						pos = next
						continue
					}

					stack = append(stack, frame{state: cur})
					w.depth++
					cur = levelState{
						kind:          kind,
						boundary:      boundary,
						leafBoundary:  boundary,
						inAlternative: cur.inAlternative || kind == KindMultipartAlternative,
						needHTMLBody:  true,
						needTextBody:  true,
						partID:        partID,
						htmlParts:     len(curMsg.HTMLBody),
						textParts:     len(curMsg.TextBody),
						offsetHeader:  pos,
						offsetBody:    part.OffsetBody,
						depth:         w.depth,
					}
					pos = afterToken
					continue
				}
			}
			// No usable boundary: degrade to TextOther and fall through to
			// leaf handling (spec.md §7 "missing boundary" semantics).
			log.Warn("multipart part has no usable boundary, degrading to text")
			kind = KindTextOther
			part.kind = kind
		}

		if kind == KindMessage && part.Encoding == EncodingNone {
			if w.depth+1 > maxWalkDepth {
				log.WithField("depth", w.depth+1).Warn("recursion depth exceeded, truncating nested message")
				part.Body = Body{Kind: BodyBinary}
				part.IsEncodingProblem = true
				part.OffsetEnd = part.OffsetBody
				curMsg.Attachments = append(curMsg.Attachments, partID)
				var next int
				curMsg, next = w.closeCutoffPart(curMsg, &cur, &stack, part.OffsetEnd)
				if next < 0 {
					return true
				}
				pos = next
				continue
			}

			child := &Message{raw: curMsg.raw}
			stack = append(stack, frame{state: cur, parentMsg: curMsg, enteringMsg: true})
			w.depth++
			curMsg.Attachments = append(curMsg.Attachments, partID)
			cur = levelState{
				kind: KindMessage,
				// This synthetic wrapper level has no boundary of its own
				// (it always contains exactly one part), so boundary stays
				// nil to keep the finishBoundarylessLeaf/attach-to-parent
				// path below. leafBoundary instead carries the nearest
				// real enclosing boundary, inherited through any chain of
				// boundary-less wrappers, so a single-leaf body still
				// knows where to stop instead of running to EOF of the
				// shared raw buffer.
				boundary:      nil,
				leafBoundary:  effectiveBoundary(cur),
				inAlternative: false,
				needHTMLBody:  true,
				needTextBody:  true,
				partID:        0,
				offsetHeader:  afterHeaders,
				offsetBody:    afterHeaders,
				depth:         w.depth,
			}
			curMsg = child
			pos = afterHeaders
			continue
		}

		// Leaf part: decode up to the boundary (or EOF) and classify the
		// body per spec.md §4.1 steps 6-9.
		bodyEnd, _, _ := w.decodeLeaf(curMsg, part, effectiveBoundary(cur))
		part.OffsetEnd = bodyEnd
		w.routeLeafBody(curMsg, &cur, part, partID)

		if len(cur.boundary) == 0 {
			// This level has no boundary: it's either the true top-level
			// root (stack empty — done), or the synthetic wrapper level of
			// a nested message/rfc822 whose entire content was this one
			// leaf (stack non-empty — attach it to the parent part and
			// resume the parent's own sibling loop).
			var next int
			curMsg, next = w.finishBoundarylessLeaf(curMsg, &cur, &stack, part.OffsetEnd)
			if next < 0 {
				return true
			}
			pos = next
			continue
		}

		var next int
		curMsg, next = w.closeAndContinue(curMsg, &cur, &stack)
		if next < 0 {
			return true
		}
		pos = next
	}
}

// closeCutoffPart closes the part just marked as an encoding problem by the
// recursion-depth cutoff and resumes the sibling loop. It mirrors the
// ordinary leaf-closing branch below: when cur has its own boundary, the
// cutoff part is just another sibling and closeAndContinue looks for the
// next boundary occurrence; when cur.boundary is empty, cur is itself the
// synthetic wrapper level of an enclosing message/rfc822 (its one permitted
// child was the part that got cut off), so closing it means finishing the
// wrapper via finishBoundarylessLeaf, not terminating the whole parse.
func (w *walker) closeCutoffPart(curMsg *Message, cur *levelState, stack *[]frame, closePos int) (*Message, int) {
	if len(cur.boundary) == 0 {
		return w.finishBoundarylessLeaf(curMsg, cur, stack, closePos)
	}
	return w.closeAndContinue(curMsg, cur, stack)
}

// finishBoundarylessLeaf handles the case where the current level has no
// active boundary and the part just emitted was a leaf (not a multipart
// container): if the stack is empty this level was the true top-level
// root and the parse is complete; otherwise it was the synthetic wrapper
// level of a nested message/rfc822 whose body was a single leaf, so that
// leaf's owning Message is attached directly to the parent container Part
// and the parent's own sibling/close loop resumes.
func (w *walker) finishBoundarylessLeaf(curMsg *Message, cur *levelState, stack *[]frame, closePos int) (*Message, int) {
	w.depth--
	if len(*stack) == 0 {
		return curMsg, -1
	}
	top := (*stack)[len(*stack)-1]
	*stack = (*stack)[:len(*stack)-1]
	if top.enteringMsg {
		parentMsg := top.parentMsg
		parentPart := parentMsg.Parts[top.state.subPartIDs[len(top.state.subPartIDs)-1]]
		parentPart.Body.Kind = BodyMessage
		parentPart.Body.Nested = curMsg
		parentPart.OffsetEnd = closePos
		*cur = top.state
		return w.closeNextOrContinue(parentMsg, cur, stack, closePos)
	}
	*cur = top.state
	return w.closeNextOrContinue(curMsg, cur, stack, closePos)
}

// decodeLeaf selects and runs a transfer decoder for part's body region,
// bounded by boundary (empty when none is active), applies the recovery
// chain of spec.md §7/§4.1 step 6 on failure, and stores the classified
// body on part. It returns the position just past the leaf's content
// (bodyEnd), the position just past the input the decoder consumed
// (resumeAt), and ok, which is false only when the recovery chain was
// exhausted and part was left as an empty, flagged Binary body.
func (w *walker) decodeLeaf(msg *Message, part *Part, boundary []byte) (bodyEnd int, resumeAt int, ok bool) {
	data := msg.raw[part.OffsetBody:]

	var consumed int
	var out []byte
	var decodedOK bool

	switch part.Encoding {
	case EncodingQuotedPrintable:
		consumed, out, decodedOK = DecodeQuotedPrintable(data, boundary, false)
	case EncodingBase64:
		consumed, out, decodedOK = DecodeBase64(data, boundary, false)
	default:
		consumed, out, decodedOK = rawToBoundary(data, boundary)
	}

	if !decodedOK {
		// Recovery chain: re-read raw bounded, then raw unbounded, then
		// give up with an empty, flagged Binary part.
		log.WithField("encoding", part.Encoding.String()).Warn("transfer-decoding failed, attempting recovery")
		if c, raw, rok := rawToBoundary(data, boundary); rok {
			consumed, out, decodedOK = c, raw, true
		} else if c, raw, rok := rawToBoundary(data, nil); rok {
			consumed, out, decodedOK = c, raw, true
		} else {
			log.Warn("recovery chain exhausted, emitting empty binary part")
			part.IsEncodingProblem = true
			part.Body = Body{Kind: BodyBinary}
			return part.OffsetBody, part.OffsetBody, false
		}
		part.IsEncodingProblem = true
	}

	bodyEnd = part.OffsetBody + trimmedContentLen(data, consumed, boundary)
	resumeAt = part.OffsetBody + consumed

	part.Body = bodyFromBytes(part, out)
	return bodyEnd, resumeAt, decodedOK
}

// trimmedContentLen mirrors spec.md §4.1 step 7: offset_end steps back
// over the boundary line and its preceding CRLF, never going below
// offset_body. When no boundary is active the raw decoder already
// consumed exactly to EOF, so no trimming is needed.
func trimmedContentLen(data []byte, consumed int, boundary []byte) int {
	if len(boundary) == 0 {
		return consumed
	}
	tokenStart, contentEnd, _, _, found := seekNextPart(data, 0, boundary)
	if !found {
		return consumed
	}
	_ = tokenStart
	if contentEnd < 0 {
		return 0
	}
	return contentEnd
}

// bodyFromBytes classifies a leaf's decoded bytes into the Body variant of
// spec.md §4.1 step 8: Text, Html, Binary or InlineBinary. BodyMessage is
// never produced here: an identity-encoded message/rfc822 part is parsed
// as a nested Message by run and never reaches decodeLeaf, and a
// message/rfc822 part with any other encoding is decoded here as Binary.
func bodyFromBytes(part *Part, out []byte) Body {
	if part.kind.isText() {
		decoded := decodeTextBytes(out, part.ContentType)
		if part.kind == KindTextHTML {
			return Body{Kind: BodyHTML, Text: decoded}
		}
		return Body{Kind: BodyText, Text: decoded}
	}
	if part.kind == KindInline {
		return Body{Kind: BodyInlineBinary, Bytes: out}
	}
	return Body{Kind: BodyBinary, Bytes: out}
}

// decodeTextBytes resolves the charset attribute of ct, falling back to
// golang.org/x/net/html/charset sniffing (and from there to lossy UTF-8)
// when none is declared or the declared name is outside the closed alias
// set, and transcodes out to a Go string.
func decodeTextBytes(out []byte, ct *ContentType) string {
	if ct != nil {
		if name, found := ct.Get("charset"); found {
			if fn, ok := charset.DecoderFor([]byte(name)); ok {
				return fn(out)
			}
		}
	}
	return charset.DecodeWithSniffedFallback(out)
}

// rawToBoundary reads data up to the next occurrence of boundary (or to
// EOF when boundary is empty) without applying any transfer decoding; this
// is both the "identity" transfer-encoding path and the recovery-chain
// fallback of spec.md §7.
func rawToBoundary(data []byte, boundary []byte) (consumed int, out []byte, ok bool) {
	if len(boundary) == 0 {
		if len(data) == 0 {
			return 0, nil, false
		}
		return len(data), data, true
	}
	tokenStart, contentEnd, _, _, found := seekNextPart(data, 0, boundary)
	if !found {
		return 0, nil, false
	}
	return tokenStart + len(boundary), data[:contentEnd], true
}

// routeLeafBody implements the body-routing rules of spec.md §4.1 step 9.
func (w *walker) routeLeafBody(msg *Message, cur *levelState, part *Part, partID int) {
	isHTML := part.Body.Kind == BodyHTML
	isPlainText := part.Body.Kind == BodyText
	isAnyText := isHTML || isPlainText

	if cur.kind == KindMultipartAlternative {
		switch {
		case isHTML:
			msg.HTMLBody = append(msg.HTMLBody, partID)
			cur.needTextBody = false
		case isPlainText:
			msg.TextBody = append(msg.TextBody, partID)
			cur.needHTMLBody = false
		default:
			msg.Attachments = append(msg.Attachments, partID)
		}
		return
	}

	disposition, _ := rawHeaderValue(part.Headers, "content-disposition")
	isAttachmentDisposition := strings.HasPrefix(strings.ToLower(strings.TrimSpace(disposition)), "attachment")

	_, hasName := part.ContentType.Get("name")
	isFirst := cur.parts == 1
	inline := !isAttachmentDisposition &&
		(isFirst || (cur.kind != KindMultipartRelated && (part.kind == KindInline || !hasName)))

	if inline {
		part.Body.Kind = bodyKindForInline(part.Body.Kind)
		switch {
		case isHTML:
			msg.HTMLBody = append(msg.HTMLBody, partID)
			if !cur.needHTMLBody {
				msg.Attachments = append(msg.Attachments, partID)
			}
		case isPlainText:
			msg.TextBody = append(msg.TextBody, partID)
			if !cur.needTextBody {
				msg.Attachments = append(msg.Attachments, partID)
			}
		default:
			msg.Attachments = append(msg.Attachments, partID)
			if cur.needHTMLBody {
				msg.HTMLBody = append(msg.HTMLBody, partID)
			}
			if cur.needTextBody {
				msg.TextBody = append(msg.TextBody, partID)
			}
		}
		return
	}

	msg.Attachments = append(msg.Attachments, partID)
	if !isAnyText {
		if cur.needHTMLBody {
			msg.HTMLBody = append(msg.HTMLBody, partID)
		}
		if cur.needTextBody {
			msg.TextBody = append(msg.TextBody, partID)
		}
	}
}

// bodyKindForInline promotes a Binary body to InlineBinary when routing
// decides the leaf is inline; text bodies are left as Text/Html (their
// Body.Kind already distinguishes them). IsInline/IsAttachment read
// Body.Kind alone, so an inline text leaf reports neither.
func bodyKindForInline(k BodyKind) BodyKind {
	if k == BodyBinary {
		return BodyInlineBinary
	}
	return k
}

// closeAndContinue implements the boundary-consumed loop of spec.md §4.1
// step 10: it reads past the just-emitted leaf's boundary occurrence, and
// if that boundary closes the multipart, pops the stack (possibly several
// levels, for nested message/rfc822 wrappers with no parts of their own)
// until it lands on a level still expecting more siblings, or the whole
// parse is done. Returns the Message the next sibling's headers should be
// read from (which changes when a close pops back out of a message/rfc822
// wrapper) and a position: -1 means the entire tree has been closed (the
// caller should stop), a non-negative position resumes parsing headers for
// the next sibling there (whether or not a close occurred).
func (w *walker) closeAndContinue(msg *Message, cur *levelState, stack *[]frame) (*Message, int) {
	if len(cur.boundary) == 0 {
		return msg, -1
	}
	data := msg.raw
	from := msg.Parts[cur.subPartIDs[len(cur.subPartIDs)-1]].OffsetEnd
	tokenStart, _, afterToken, closed, found := seekNextPart(data, from, cur.boundary)
	if !found {
		// Unterminated multipart: close here at the current position.
		return w.closeLevel(msg, cur, stack, len(data))
	}
	if !closed {
		return msg, afterToken
	}
	return w.closeLevel(msg, cur, stack, tokenStart)
}

// closeLevel finalizes cur's container Part (offset_end, Multipart body,
// alternative-fallback mirroring), pops the stack, and either returns the
// Message/position for the parent's sibling loop or (msg, -1) if the stack
// is now empty.
func (w *walker) closeLevel(curMsg *Message, cur *levelState, stack *[]frame, closePos int) (*Message, int) {
	for {
		container := curMsg.Parts[cur.partID]
		container.OffsetEnd = closePos
		container.Body = Body{Kind: BodyMultipart, Children: cur.subPartIDs}
		applyAlternativeFallback(curMsg, cur)
		w.depth--

		if len(*stack) == 0 {
			return curMsg, -1
		}
		top := (*stack)[len(*stack)-1]
		*stack = (*stack)[:len(*stack)-1]

		if top.enteringMsg {
			// The level we just closed was the synthetic top container of
			// a nested message; attach it to the parent's Part and resume
			// the parent's own sibling loop.
			parentMsg := top.parentMsg
			parentPart := parentMsg.Parts[top.state.subPartIDs[len(top.state.subPartIDs)-1]]
			parentPart.Body.Kind = BodyMessage
			parentPart.Body.Nested = curMsg
			parentPart.OffsetEnd = closePos
			*cur = top.state
			return w.closeNextOrContinue(parentMsg, cur, stack, closePos)
		}

		*cur = top.state
		return w.closeNextOrContinue(curMsg, cur, stack, closePos)
	}
}

// closeNextOrContinue resumes the boundary-consumed loop one level up:
// having just closed a child container, look for the parent's own next
// sibling (or close) at the parent's boundary. A parent with no boundary
// is either the top-level root (done) or the wrapper level of an enclosing
// message/rfc822, which is finished and attached in turn.
func (w *walker) closeNextOrContinue(msg *Message, cur *levelState, stack *[]frame, from int) (*Message, int) {
	if len(cur.boundary) == 0 {
		if len(*stack) > 0 {
			return w.finishBoundarylessLeaf(msg, cur, stack, from)
		}
		return msg, -1
	}
	data := msg.raw
	_, _, afterToken, closed, found := seekNextPart(data, from, cur.boundary)
	if !found {
		// Unterminated multipart: close it at the end of the data.
		return w.closeLevel(msg, cur, stack, len(data))
	}
	if closed {
		return w.closeLevel(msg, cur, stack, afterToken)
	}
	return msg, afterToken
}

// applyAlternativeFallback implements the alternative fallback rule of
// spec.md §4.1: when a MultipartAlternative container's branch needed both
// html and text bodies but only produced one, mirror it into the other
// list. Per the documented open question in spec.md §9, the "found text
// only" branch slices text_body from the html_parts snapshot (not
// text_parts), preserved here rather than "fixed".
func applyAlternativeFallback(msg *Message, cur *levelState) {
	if cur.kind != KindMultipartAlternative {
		return
	}
	if !cur.needHTMLBody && !cur.needTextBody {
		return
	}
	htmlFound := len(msg.HTMLBody) > cur.htmlParts
	textFound := len(msg.TextBody) > cur.textParts
	if htmlFound && !textFound {
		msg.TextBody = append(msg.TextBody, msg.HTMLBody[cur.htmlParts:]...)
	} else if textFound && !htmlFound && cur.htmlParts <= len(msg.TextBody) {
		msg.HTMLBody = append(msg.HTMLBody, msg.TextBody[cur.htmlParts:]...)
	}
}

// unwindAll closes every open container down the stack at pos, attaching
// any pending nested message to its parent (spec.md §7's "unterminated
// multipart or nested message" semantics for plain EOF truncation).
func (w *walker) unwindAll(curMsg *Message, cur *levelState, stack *[]frame, pos int) {
	if cur.partID < 0 {
		return
	}
	w.closeLevel(curMsg, cur, stack, pos)
}

func contentTypeOf(headers []Header) *ContentType {
	for _, h := range headers {
		if h.Name == "content-type" {
			return h.Value.ContentType
		}
	}
	return nil
}

func transferEncodingOf(headers []Header) TransferEncoding {
	for _, h := range headers {
		if h.Name == "content-transfer-encoding" {
			switch strings.ToLower(strings.TrimSpace(h.Value.Raw)) {
			case "base64":
				return EncodingBase64
			case "quoted-printable":
				return EncodingQuotedPrintable
			}
		}
	}
	return EncodingNone
}

func rawHeaderValue(headers []Header, name string) (string, bool) {
	for _, h := range headers {
		if h.Name == name {
			return h.Value.Raw, true
		}
	}
	return "", false
}

func boundaryOf(ct *ContentType) ([]byte, bool) {
	if ct == nil {
		return nil, false
	}
	b, ok := ct.Get("boundary")
	if !ok || b == "" {
		return nil, false
	}
	return append([]byte("--"), b...), true
}

// classify implements the classification table of spec.md §4.1.
func classify(ct *ContentType, parentIsDigest bool) Kind {
	if ct == nil {
		if parentIsDigest {
			return KindMessage
		}
		return KindTextPlain
	}
	typ := strings.ToLower(ct.Type)
	sub := strings.ToLower(ct.SubType)
	switch typ {
	case "multipart":
		switch sub {
		case "mixed":
			return KindMultipartMixed
		case "alternative":
			return KindMultipartAlternative
		case "related":
			return KindMultipartRelated
		case "digest":
			return KindMultipartDigest
		default:
			return KindMultipartOther
		}
	case "text":
		switch sub {
		case "plain":
			return KindTextPlain
		case "html":
			return KindTextHTML
		default:
			return KindTextOther
		}
	case "image", "audio", "video":
		return KindInline
	case "message":
		if sub == "rfc822" || sub == "global" {
			return KindMessage
		}
		return KindOther
	default:
		return KindOther
	}
}
