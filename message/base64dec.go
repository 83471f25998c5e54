package message

import "encoding/base64"

// DecodeBase64 is the base64 collaborator contract of spec.md §6/§4.3: a
// boundary-aware decoder with the same (consumed, ok) failure signal as
// DecodeQuotedPrintable. Out of spec.md's scope by signature (base64
// decoding itself is mechanical); grounded on the teacher's
// base64.NewDecoder(base64.StdEncoding, ...) idiom in mail/envelope.go
// (fromBase64), generalized to stop at a MIME boundary instead of
// consuming to EOF. isWord is accepted for contract symmetry with
// DecodeQuotedPrintable (RFC 2047 "B" encoding is plain base64 with no
// boundary, so it has no effect here).
func DecodeBase64(data []byte, boundary []byte, isWord bool) (consumed int, out []byte, ok bool) {
	var region []byte
	if len(boundary) == 0 {
		region = data
		consumed = len(data)
	} else {
		tokenStart, contentEnd, _, _, found := seekNextPart(data, 0, boundary)
		if !found {
			return 0, nil, false
		}
		region = data[:contentEnd]
		consumed = tokenStart + len(boundary)
	}

	clean := make([]byte, 0, len(region))
	for _, b := range region {
		if isBase64Alphabet(b) {
			clean = append(clean, b)
		}
	}
	if len(clean) == 0 {
		return 0, nil, false
	}

	decoded := make([]byte, base64.StdEncoding.DecodedLen(len(clean)))
	n, err := base64.StdEncoding.Decode(decoded, padBase64(clean))
	if err != nil {
		// Tolerate trailing garbage the way mail user agents commonly
		// produce it: decode what validates, drop the rest.
		n, err = decodeBase64Lenient(decoded, clean)
		if err != nil {
			return 0, nil, false
		}
	}
	return consumed, decoded[:n], true
}

func isBase64Alphabet(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	case b == '+' || b == '/' || b == '=':
		return true
	default:
		return false
	}
}

func padBase64(clean []byte) []byte {
	if rem := len(clean) % 4; rem != 0 {
		for i := 0; i < 4-rem; i++ {
			clean = append(clean, '=')
		}
	}
	return clean
}

// decodeBase64Lenient decodes clean one 4-byte quantum at a time, stopping
// at the first invalid quantum instead of failing the whole payload.
func decodeBase64Lenient(dst, clean []byte) (int, error) {
	total := 0
	for i := 0; i+4 <= len(clean); i += 4 {
		n, err := base64.StdEncoding.Decode(dst[total:], clean[i:i+4])
		if err != nil {
			break
		}
		total += n
	}
	if total == 0 {
		return 0, base64.CorruptInputError(0)
	}
	return total, nil
}
