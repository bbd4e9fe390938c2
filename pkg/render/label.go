// Package render formats decoded ASN.1 nodes for display: one-line node
// labels, per-type value text, and raw hex dumps.
package render

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/gregLibert/asn1-explorer/pkg/asn1tree"
	"github.com/gregLibert/asn1-explorer/pkg/tlv"
)

// LABEL FORMAT:
// "(offset,length) TagDisplay" for every node, followed by " : DataText" for
// leaf nodes whose content produced a non-empty rendering.
//
// TagDisplay is the symbolic Universal type name when the class is
// Universal, and "<Class> (<tag number>)" for every other class.
//
// DataText is a fixed tag-to-renderer dispatch with a hex fallback; no
// renderer carries decision logic beyond its own value syntax.

// Label formats the display line for a node. hasChildren must reflect the
// node's child list at formatting time: nodes with children never show a
// value suffix.
func Label(t *asn1tree.Tree, id asn1tree.NodeID, hasChildren bool) string {
	n := t.Node(id)
	if n == nil {
		return ""
	}

	base := fmt.Sprintf("(%d,%d) %s", n.Offset, n.Length, TagDisplay(n))
	if hasChildren || n.Raw == nil {
		return base
	}

	if text := DataText(t, id); text != "" {
		return base + " : " + text
	}
	return base
}

// TagDisplay renders the type portion of a node label.
func TagDisplay(n *asn1tree.Node) string {
	if n.Class != asn1tree.ClassUniversal {
		return fmt.Sprintf("%s (%d)", n.Class, uint64(n.Tag))
	}
	return n.Tag.String()
}

// dataRenderers maps Universal tags to pure value renderers. Tags without an
// entry (integers, enumerated values, octet strings, unknown types) fall
// back to hex. BIT STRING is dispatched separately because its framing must
// be stripped through the tree accessor.
var dataRenderers = map[asn1tree.Tag]func([]byte) string{
	asn1tree.TagBoolean:          renderBoolean,
	asn1tree.TagNull:             renderNull,
	asn1tree.TagObjectIdentifier: renderOID,
	asn1tree.TagRelativeOID:      renderRelativeOID,
	asn1tree.TagUTF8String:       renderUnicodeText,
	asn1tree.TagNumericString:    renderASCIIText,
	asn1tree.TagPrintableString:  renderASCIIText,
	asn1tree.TagTeletexString:    renderASCIIText,
	asn1tree.TagVideotexString:   renderASCIIText,
	asn1tree.TagIA5String:        renderASCIIText,
	asn1tree.TagGraphicString:    renderASCIIText,
	asn1tree.TagVisibleString:    renderASCIIText,
	asn1tree.TagGeneralString:    renderASCIIText,
	asn1tree.TagBMPString:        renderBMPString,
	asn1tree.TagUTCTime:          renderUTCTime,
	asn1tree.TagGeneralizedTime:  renderGeneralizedTime,
}

// DataText renders the content of a node as display text. It returns an
// empty string when there is nothing to show (no content, NULL, empty
// value).
func DataText(t *asn1tree.Tree, id asn1tree.NodeID) string {
	n := t.Node(id)
	if n == nil || n.Raw == nil {
		return ""
	}

	if n.Class != asn1tree.ClassUniversal {
		return renderHex(n.Raw)
	}

	if n.Tag == asn1tree.TagBitString {
		if content, err := t.BitStringContent(id); err == nil {
			return renderHex(content)
		}
		return renderHex(n.Raw)
	}

	if r, ok := dataRenderers[n.Tag]; ok {
		return r(n.Raw)
	}
	return renderHex(n.Raw)
}

func renderHex(data []byte) string {
	return strings.ToUpper(hex.EncodeToString(data))
}

func renderBoolean(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	if data[0] != 0 {
		return "True"
	}
	return "False"
}

func renderNull([]byte) string {
	return ""
}

// renderOID decodes the dotted form of an OBJECT IDENTIFIER. The first
// subidentifier packs the two leading arcs.
func renderOID(data []byte) string {
	arcs, ok := decodeArcs(data)
	if !ok || len(arcs) == 0 {
		return renderHex(data)
	}

	var parts []string
	first := arcs[0]
	switch {
	case first < 40:
		parts = append(parts, "0", strconv.FormatUint(first, 10))
	case first < 80:
		parts = append(parts, "1", strconv.FormatUint(first-40, 10))
	default:
		parts = append(parts, "2", strconv.FormatUint(first-80, 10))
	}
	for _, arc := range arcs[1:] {
		parts = append(parts, strconv.FormatUint(arc, 10))
	}
	return strings.Join(parts, ".")
}

func renderRelativeOID(data []byte) string {
	arcs, ok := decodeArcs(data)
	if !ok || len(arcs) == 0 {
		return renderHex(data)
	}

	parts := make([]string, len(arcs))
	for i, arc := range arcs {
		parts[i] = strconv.FormatUint(arc, 10)
	}
	return strings.Join(parts, ".")
}

// decodeArcs reads the base-128 subidentifiers of an OID value. It reports
// failure on truncated input or oversized arcs.
func decodeArcs(data []byte) ([]uint64, bool) {
	var arcs []uint64
	var v uint64
	pending := false

	for _, b := range data {
		if v > (1<<57)-1 {
			return nil, false
		}
		v = v<<7 | uint64(b&0x7F)
		if b&0x80 != 0 {
			pending = true
			continue
		}
		arcs = append(arcs, v)
		v = 0
		pending = false
	}

	if pending {
		return nil, false
	}
	return arcs, true
}

func renderASCIIText(data []byte) string {
	return tlv.MakeSafeASCII(data)
}

func renderUnicodeText(data []byte) string {
	if !utf8.Valid(data) {
		return renderHex(data)
	}
	return sanitizeRunes(string(data))
}

func renderBMPString(data []byte) string {
	if len(data)%2 != 0 {
		return renderHex(data)
	}

	units := make([]uint16, 0, len(data)/2)
	for i := 0; i < len(data); i += 2 {
		units = append(units, uint16(data[i])<<8|uint16(data[i+1]))
	}
	return sanitizeRunes(string(utf16.Decode(units)))
}

func sanitizeRunes(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return '.'
	}, s)
}

var utcTimeLayouts = []string{
	"060102150405Z0700",
	"0601021504Z0700",
}

var generalizedTimeLayouts = []string{
	"20060102150405Z0700",
	"20060102150405.999Z0700",
	"20060102150405",
}

func renderUTCTime(data []byte) string {
	return renderTime(data, utcTimeLayouts)
}

func renderGeneralizedTime(data []byte) string {
	return renderTime(data, generalizedTimeLayouts)
}

func renderTime(data []byte, layouts []string) string {
	s := string(data)
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC().Format("2006-01-02 15:04:05 UTC")
		}
	}
	// Not a well-formed time value; show what is there.
	return tlv.MakeSafeASCII(data)
}
