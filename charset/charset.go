// Package charset resolves IANA charset names and aliases to a decode
// function via a perfect-hash style dispatch, per the closed alias set
// documented in aliases.go.
//
// Resolution is O(length(name)): a small fixed-position hash narrows the
// candidates to a single bucket, and a canonical-name compare against that
// bucket's few entries confirms the match. The hash itself is
// non-cryptographic; aliases whose hashes collide share a bucket and are
// told apart by the compare, never by probing.
package charset

import (
	"strings"
	"unicode/utf8"

	netcharset "golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/htmlindex"
)

// DecodeFunc converts a byte slice in some fixed charset to a UTF-8 string.
type DecodeFunc func([]byte) string

// hashPositions are the fixed byte offsets folded into the hash, per the
// spec: {0, 3, 6, 7, 8, 9, length-1}. Offsets beyond length-1 contribute
// nothing; length-1 is always added, and may coincide with one of the
// fixed offsets for short names.
var hashPositions = [6]int{0, 3, 6, 7, 8, 9}

// hashTable is H[256], a fixed mixing table for ASCII-lowercased input
// bytes. It is arbitrary but fixed; its entries lie in [1, 97], so a name
// of at most maxLen bytes hashes to at most 45 + 7*97 = 724, inside
// [hashFloor, hashCeil]. Collisions are caught by the canonical-name
// compare step.
var hashTable [256]int

func init() {
	for i := range hashTable {
		hashTable[i] = (i*131+17)%97 + 1
	}
}

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 32
	}
	return c
}

// hash computes length + sum of H[lower(name[i])] over the fixed position
// set, including the always-present length-1 position.
func hash(name []byte) int {
	n := len(name)
	h := n
	for _, p := range hashPositions {
		if p < n {
			h += hashTable[lowerByte(name[p])]
		}
	}
	h += hashTable[lowerByte(name[n-1])]
	return h
}

const (
	minLen    = 2
	maxLen    = 45
	hashFloor = 7
	hashCeil  = 764
)

type bucketEntry struct {
	canonicalAlias string // the lowercased alias string this bucket expects
	target         string // the canonical IANA/htmlindex name to decode as
}

// buckets is built once at init from the alias census in aliases.go. It is
// keyed by hash(lowercase alias) and holds, for each occupied bucket, every
// alias spelling that lands there.
var buckets map[int][]bucketEntry

func init() {
	buckets = make(map[int][]bucketEntry, len(charsetAliases)*4)
	for canonical, names := range charsetAliases {
		for _, n := range names {
			lower := strings.ToLower(n)
			h := hash([]byte(lower))
			buckets[h] = append(buckets[h], bucketEntry{canonicalAlias: lower, target: canonical})
		}
	}
}

// DecoderFor resolves name (an IANA charset name or alias, any case) to a
// decode function. It returns false if name is outside the closed alias
// set. Lookup is O(len(name)) and performs no allocation beyond the
// case-folded scratch copy.
func DecoderFor(name []byte) (DecodeFunc, bool) {
	n := len(name)
	if n < minLen || n > maxLen {
		return nil, false
	}
	lower := make([]byte, n)
	for i := 0; i < n; i++ {
		lower[i] = lowerByte(name[i])
	}
	h := hash(lower)
	if h < hashFloor || h > hashCeil {
		return nil, false
	}
	for _, e := range buckets[h] {
		if e.canonicalAlias == string(lower) {
			return decoderForTarget(e.target), true
		}
	}
	return nil, false
}

// decoderForTarget returns a DecodeFunc that transcodes bytes declared to
// be in the named IANA charset into UTF-8, falling back to UTF-8-with-
// replacement when the target encoding can't be resolved or the bytes
// don't decode cleanly (per spec.md's UTF-8 replacement-char fallback).
func decoderForTarget(target string) DecodeFunc {
	return func(b []byte) string {
		enc, err := htmlindex.Get(target)
		if err != nil || enc == nil {
			return lossyUTF8(b)
		}
		out, err := enc.NewDecoder().Bytes(b)
		if err != nil || out == nil {
			return lossyUTF8(b)
		}
		return string(out)
	}
}

func lossyUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}

// DecodeWithSniffedFallback decodes content whose Content-Type declared no
// charset (or one outside the closed alias set DecoderFor resolves): it
// defers to golang.org/x/net/html/charset's BOM/meta sniffing, the same
// fallback role that package plays for mail.Dec's CharsetReader in the
// teacher, before giving up to lossy UTF-8 (spec.md's replacement-char
// fallback). A sniff result x/net itself isn't certain of is not trusted —
// DetermineEncoding defaults to windows-1252 on total uncertainty, which is
// a worse guess than assuming UTF-8 for content with no declared charset.
func DecodeWithSniffedFallback(content []byte) string {
	enc, _, certain := netcharset.DetermineEncoding(content, "")
	if !certain {
		return lossyUTF8(content)
	}
	out, err := enc.NewDecoder().Bytes(content)
	if err != nil {
		return lossyUTF8(content)
	}
	return string(out)
}
