package asn1tree

import (
	"bytes"
	"fmt"
	"io"

	ber "github.com/go-asn1-ber/asn1-ber"
)

// PARSE LAYER:
// All BER/DER decoding is delegated to github.com/go-asn1-ber/asn1-ber.
// This file loops the reader over the input stream (one call per top-level
// value), converts each packet subtree into arena nodes, and reconstructs
// byte offsets.
//
// Offset bookkeeping:
// - Top-level offsets advance by the exact number of bytes the reader
//   consumed for each value.
// - Child offsets inside a constructed value are recomputed from the tag
//   number and content length, assuming minimal definite length encoding
//   (always true for DER input).
//
// A parse either yields the complete tree or fails; a failed parse never
// returns a partial tree.

type parseConfig struct {
	readContent bool
	baseOffset  int
}

// Option configures a parse.
type Option func(*parseConfig)

// WithoutContent skips copying primitive content octets into the nodes.
// Every content-dependent consumer (value rendering, encapsulated payload
// detection) is disabled for a tree parsed this way.
func WithoutContent() Option {
	return func(c *parseConfig) { c.readContent = false }
}

// WithBaseOffset rebases all node offsets by n. Used when the parsed bytes
// are a payload extracted from a larger stream, so nodes report their
// position in that stream.
func WithBaseOffset(n int) Option {
	return func(c *parseConfig) { c.baseOffset = n }
}

// Parse reads the whole stream and decodes it with ParseBytes.
func Parse(r io.Reader, opts ...Option) (*Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return ParseBytes(data, opts...)
}

// ParseBytes decodes one or more concatenated ASN.1 values from data into a
// fresh tree. Empty input yields an empty tree with no roots.
func ParseBytes(data []byte, opts ...Option) (t *Tree, err error) {
	cfg := parseConfig{readContent: true}
	for _, o := range opts {
		o(&cfg)
	}

	// The external reader is not hardened against every malformed input;
	// a panic during decode is reported as a plain parse failure.
	defer func() {
		if r := recover(); r != nil {
			t = nil
			err = fmt.Errorf("decoder panic: %v", r)
		}
	}()

	t = NewTree()
	reader := bytes.NewReader(data)
	offset := cfg.baseOffset

	for reader.Len() > 0 {
		remaining := reader.Len()

		packet, perr := ber.ReadPacket(reader)
		if perr != nil {
			return nil, fmt.Errorf("decoding value at offset %d: %w", offset, perr)
		}

		id := t.addPacket(packet, offset, cfg.readContent)
		t.roots = append(t.roots, id)

		offset += remaining - reader.Len()
	}

	return t, nil
}

// addPacket converts one reader packet (and its subtree) into arena nodes.
func (t *Tree) addPacket(p *ber.Packet, offset int, readContent bool) NodeID {
	n := &Node{
		Class:  classOf(p.ClassType),
		Kind:   kindOf(p.TagType),
		Tag:    Tag(p.Tag),
		Offset: offset,
		Length: p.Data.Len(),
	}
	id := t.add(n)

	if n.Kind == Primitive {
		if readContent {
			// Raw must be non-nil even for empty content: nil means
			// "content not read", not "zero-length value".
			n.Raw = make([]byte, p.Data.Len())
			copy(n.Raw, p.Data.Bytes())
		}
		return id
	}

	childOffset := offset + headerLength(uint64(p.Tag), n.Length)
	for _, child := range p.Children {
		cid := t.addPacket(child, childOffset, readContent)
		c := t.nodes[cid]
		childOffset += headerLength(uint64(c.Tag), c.Length) + c.Length
		n.children = append(n.children, cid)
	}

	return id
}

func classOf(c ber.Class) Class {
	switch c {
	case ber.ClassApplication:
		return ClassApplication
	case ber.ClassContext:
		return ClassContextSpecific
	case ber.ClassPrivate:
		return ClassPrivate
	default:
		return ClassUniversal
	}
}

func kindOf(t ber.Type) Kind {
	if t == ber.TypeConstructed {
		return Constructed
	}
	return Primitive
}
