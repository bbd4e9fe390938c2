package asn1tree

import "fmt"

// NodeID is a stable index into a Tree's node arena.
type NodeID int

// Class identifies the ASN.1 tag class of a node.
type Class uint8

const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

func (c Class) String() string {
	switch c {
	case ClassUniversal:
		return "Universal"
	case ClassApplication:
		return "Application"
	case ClassContextSpecific:
		return "ContextSpecific"
	case ClassPrivate:
		return "Private"
	default:
		return fmt.Sprintf("Class(%d)", uint8(c))
	}
}

// Kind distinguishes primitive values (direct byte payload) from constructed
// values (nested nodes).
type Kind uint8

const (
	Primitive Kind = iota
	Constructed
)

func (k Kind) String() string {
	if k == Constructed {
		return "Constructed"
	}
	return "Primitive"
}

// Tag is the ASN.1 tag number of a node. For Universal class nodes it
// identifies the standard type; for other classes it is an opaque number.
type Tag uint64

// Universal class tag numbers defined in X.680.
const (
	TagEOC              Tag = 0x00
	TagBoolean          Tag = 0x01
	TagInteger          Tag = 0x02
	TagBitString        Tag = 0x03
	TagOctetString      Tag = 0x04
	TagNull             Tag = 0x05
	TagObjectIdentifier Tag = 0x06
	TagObjectDescriptor Tag = 0x07
	TagExternal         Tag = 0x08
	TagReal             Tag = 0x09
	TagEnumerated       Tag = 0x0A
	TagEmbeddedPDV      Tag = 0x0B
	TagUTF8String       Tag = 0x0C
	TagRelativeOID      Tag = 0x0D
	TagSequence         Tag = 0x10
	TagSet              Tag = 0x11
	TagNumericString    Tag = 0x12
	TagPrintableString  Tag = 0x13
	TagTeletexString    Tag = 0x14
	TagVideotexString   Tag = 0x15
	TagIA5String        Tag = 0x16
	TagUTCTime          Tag = 0x17
	TagGeneralizedTime  Tag = 0x18
	TagGraphicString    Tag = 0x19
	TagVisibleString    Tag = 0x1A
	TagGeneralString    Tag = 0x1B
	TagUniversalString  Tag = 0x1C
	TagCharacterString  Tag = 0x1D
	TagBMPString        Tag = 0x1E
)

var universalTagNames = map[Tag]string{
	TagEOC:              "EndOfContent",
	TagBoolean:          "Boolean",
	TagInteger:          "Integer",
	TagBitString:        "BitString",
	TagOctetString:      "OctetString",
	TagNull:             "Null",
	TagObjectIdentifier: "ObjectIdentifier",
	TagObjectDescriptor: "ObjectDescriptor",
	TagExternal:         "External",
	TagReal:             "Real",
	TagEnumerated:       "Enumerated",
	TagEmbeddedPDV:      "EmbeddedPDV",
	TagUTF8String:       "UTF8String",
	TagRelativeOID:      "RelativeOID",
	TagSequence:         "Sequence",
	TagSet:              "Set",
	TagNumericString:    "NumericString",
	TagPrintableString:  "PrintableString",
	TagTeletexString:    "TeletexString",
	TagVideotexString:   "VideotexString",
	TagIA5String:        "IA5String",
	TagUTCTime:          "UTCTime",
	TagGeneralizedTime:  "GeneralizedTime",
	TagGraphicString:    "GraphicString",
	TagVisibleString:    "VisibleString",
	TagGeneralString:    "GeneralString",
	TagUniversalString:  "UniversalString",
	TagCharacterString:  "CharacterString",
	TagBMPString:        "BMPString",
}

// String returns the symbolic name of a Universal class tag number, or a
// generic "Universal (n)" form for numbers without one.
func (t Tag) String() string {
	if name, ok := universalTagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Universal (%d)", uint64(t))
}

// Node is one decoded ASN.1 value inside a Tree.
type Node struct {
	Class Class
	Kind  Kind
	Tag   Tag

	// Raw holds the content octets of a Primitive node. It is nil when the
	// tree was parsed with WithoutContent, and nil for Constructed nodes.
	// For BIT STRING nodes it includes the leading unused-bits octet; use
	// Tree.BitStringContent for the framed payload.
	Raw []byte

	// Offset is the position of the identifier octet in the source stream.
	// Length is the number of content octets.
	Offset int
	Length int

	children []NodeID
}

// ContentOffset returns the position of the first content octet, assuming
// minimal definite length encoding of the header.
func (n *Node) ContentOffset() int {
	return n.Offset + headerLength(uint64(n.Tag), n.Length)
}

// headerLength computes the encoded size of the identifier and length octets
// for a given tag number and content length (definite, minimal form).
func headerLength(tag uint64, contentLen int) int {
	idLen := 1
	if tag > 30 {
		idLen++
		for v := tag; v > 0x7F; v >>= 7 {
			idLen++
		}
	}

	lenLen := 1
	if contentLen >= 0x80 {
		for v := contentLen; v > 0; v >>= 8 {
			lenLen++
		}
	}

	return idLen + lenLen
}
