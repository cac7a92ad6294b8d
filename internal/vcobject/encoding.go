package vcobject

import (
	"encoding/hex"
	"hash/fnv"
	"sort"

	"google.golang.org/protobuf/encoding/protowire"
)

// Canonical field numbers for the hand-built wire encoding. There is no
// generated message behind these; protowire's varint/length-delimited
// primitives are used directly so the encoding stays a pure function of
// an object's logical fields, independent of Go map iteration order.
const (
	fieldKind         protowire.Number = 1
	fieldName         protowire.Number = 2
	fieldScheme       protowire.Number = 3
	fieldDependencies protowire.Number = 4
)

// canonicalEncode appends kind, name, scheme and the sorted dependency
// hash list as explicit protobuf wire fields, in fixed field-number
// order, to b.
func canonicalEncode(b []byte, kind, name, scheme string, deps []string) []byte {
	b = protowire.AppendTag(b, fieldKind, protowire.BytesType)
	b = protowire.AppendString(b, kind)

	b = protowire.AppendTag(b, fieldName, protowire.BytesType)
	b = protowire.AppendString(b, name)

	b = protowire.AppendTag(b, fieldScheme, protowire.BytesType)
	b = protowire.AppendString(b, scheme)

	sorted := sortedUnique(deps)
	for _, d := range sorted {
		b = protowire.AppendTag(b, fieldDependencies, protowire.BytesType)
		b = protowire.AppendString(b, d)
	}
	return b
}

// canonicalHash is FNV-1a128 over the canonical encoding, hex-encoded.
func canonicalHash(kind, name, scheme string, deps []string) string {
	buf := canonicalEncode(nil, kind, name, scheme, deps)
	h := fnv.New128a()
	h.Write(buf)
	return hex.EncodeToString(h.Sum(nil))
}

func sortedUnique(ss []string) []string {
	seen := make(map[string]bool, len(ss))
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
