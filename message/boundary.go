package message

import "bytes"

// This file implements the boundary-utility collaborators named in
// spec.md §6 (seek_crlf, skip_crlf, skip_multipart_end, is_boundary_end,
// seek_next_part) as used directly by the walker to hop between sibling
// parts and to open/close multipart containers. They operate on raw,
// pre-decode bytes: MIME boundary delimiter lines are never subject to a
// part's content-transfer-encoding, so locating them never requires
// decoding first.

// seekCRLF scans backward from pos to find the start of the line break
// (CR or LF) immediately preceding pos, returning pos unchanged if none is
// found directly behind it (i.e. pos is already at a line start).
func seekCRLF(data []byte, pos int) int {
	end := pos
	if end > 0 && data[end-1] == '\n' {
		end--
		if end > 0 && data[end-1] == '\r' {
			end--
		}
	}
	return end
}

// skipCRLF advances pos past one CRLF or bare LF, if present.
func skipCRLF(data []byte, pos int) int {
	if pos < len(data) && data[pos] == '\r' {
		pos++
	}
	if pos < len(data) && data[pos] == '\n' {
		pos++
	}
	return pos
}

// isBoundaryEnd reports whether the bytes at pos are "--" (a final
// boundary) or a line break (CRLF/LF), either of which confirms a matched
// boundary token actually delimits a part rather than being incidental
// content. It also reports true when pos is at the end of data.
func isBoundaryEnd(data []byte, pos int) bool {
	if pos+1 < len(data) && data[pos] == '-' && data[pos+1] == '-' {
		return true
	}
	if pos < len(data) && (data[pos] == '\n' || data[pos] == '\r') {
		return true
	}
	return pos >= len(data)
}

// skipMultipartEnd reports whether the boundary occurrence at pos is
// closing ("--boundary--"): true iff the two bytes immediately following
// the boundary token are "--".
func skipMultipartEnd(data []byte, pos int) bool {
	return pos+1 < len(data) && data[pos] == '-' && data[pos+1] == '-'
}

// lineAnchored reports whether pos is the start of a line: either the very
// start of data, or the byte immediately before it is a line break.
func lineAnchored(data []byte, pos int) bool {
	return pos == 0 || data[pos-1] == '\n'
}

// seekNextPart scans data[from:] for the next line-anchored occurrence of
// "--boundary". It returns:
//   - tokenStart:  the offset of the boundary token itself ("--boundary")
//   - contentEnd:  the offset of the line break preceding tokenStart
//     (data[from:contentEnd] is the content that precedes the boundary,
//     with the delimiting CRLF excluded)
//   - afterToken:  the offset just past the boundary token's own trailing
//     line break (ready to parse the next header block), or just past the
//     "--" close marker plus any trailing padding/CRLF when closed
//   - closed:      true if this occurrence is "--boundary--"
//   - found:       false if no boundary occurrence exists in data[from:]
func seekNextPart(data []byte, from int, boundary []byte) (tokenStart, contentEnd, afterToken int, closed, found bool) {
	search := from
	for {
		idx := bytes.Index(data[search:], boundary)
		if idx < 0 {
			return 0, 0, 0, false, false
		}
		tokenStart = search + idx
		if !lineAnchored(data, tokenStart) {
			search = tokenStart + 1
			continue
		}
		break
	}

	contentEnd = seekCRLF(data, tokenStart)
	if contentEnd < from {
		contentEnd = from
	}

	after := tokenStart + len(boundary)
	closed = skipMultipartEnd(data, after)
	if closed {
		after += 2
	}
	// transport padding: *(WSP)
	for after < len(data) && (data[after] == ' ' || data[after] == '\t') {
		after++
	}
	after = skipCRLF(data, after)
	return tokenStart, contentEnd, after, closed, true
}
