package prune

import (
	"encoding/json"
	"strings"
)

// mapping relates one generated line to the source line it was copied from.
// Pruning only ever moves whole lines, so column zero segments suffice.
type mapping struct {
	genLine int
	srcLine int
}

type sourceMapV3 struct {
	Version  int      `json:"version"`
	File     string   `json:"file"`
	Sources  []string `json:"sources"`
	Names    []string `json:"names"`
	Mappings string   `json:"mappings"`
}

// generateMap encodes the mappings as a source map v3 document.
func generateMap(file, source string, mappings []mapping) []byte {
	maxLine := 0
	for _, m := range mappings {
		if m.genLine > maxLine {
			maxLine = m.genLine
		}
	}

	segments := make([]string, maxLine+1)
	prevSrcLine := 0
	for _, m := range mappings {
		var seg []byte
		seg = appendVLQ(seg, 0) // generated column
		seg = appendVLQ(seg, 0) // source index delta
		seg = appendVLQ(seg, m.srcLine-prevSrcLine)
		seg = appendVLQ(seg, 0) // source column delta
		segments[m.genLine] = string(seg)
		prevSrcLine = m.srcLine
	}

	doc := sourceMapV3{
		Version:  3,
		File:     file,
		Sources:  []string{source},
		Names:    []string{},
		Mappings: strings.Join(segments, ";"),
	}

	out, err := json.Marshal(doc)
	if err != nil {
		// The document is marshalable by construction.
		return nil
	}
	return out
}

const vlqAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// appendVLQ appends the base64 VLQ encoding of v.
func appendVLQ(dst []byte, v int) []byte {
	u := v << 1
	if v < 0 {
		u = (-v << 1) | 1
	}
	for {
		digit := u & 0x1f
		u >>= 5
		if u > 0 {
			digit |= 0x20
		}
		dst = append(dst, vlqAlphabet[digit])
		if u == 0 {
			return dst
		}
	}
}
