package asn1tree

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gregLibert/asn1-explorer/pkg/tlv"
)

func TestParseBytes_SimpleSequence(t *testing.T) {
	// SEQUENCE { INTEGER 42, OCTET STRING FF }
	data := tlv.Hex("30 06", "02 01 2A", "04 01 FF")

	tree, err := ParseBytes(data)
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}

	roots := tree.Roots()
	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(roots))
	}

	seq := tree.Node(roots[0])
	if seq.Tag != TagSequence || seq.Kind != Constructed || seq.Class != ClassUniversal {
		t.Errorf("unexpected root node: %+v", seq)
	}
	if seq.Offset != 0 || seq.Length != 6 {
		t.Errorf("root range = (%d,%d), want (0,6)", seq.Offset, seq.Length)
	}

	kids := tree.Children(roots[0])
	if len(kids) != 2 {
		t.Fatalf("expected 2 children, got %d", len(kids))
	}

	integer := tree.Node(kids[0])
	if integer.Tag != TagInteger || integer.Offset != 2 || integer.Length != 1 {
		t.Errorf("integer = tag %v range (%d,%d), want Integer (2,1)", integer.Tag, integer.Offset, integer.Length)
	}
	if diff := cmp.Diff([]byte{0x2A}, integer.Raw); diff != "" {
		t.Errorf("integer content mismatch (-want +got):\n%s", diff)
	}

	octet := tree.Node(kids[1])
	if octet.Tag != TagOctetString || octet.Offset != 5 || octet.Length != 1 {
		t.Errorf("octet string = tag %v range (%d,%d), want OctetString (5,1)", octet.Tag, octet.Offset, octet.Length)
	}
}

func TestParseBytes_MultipleRoots(t *testing.T) {
	data := tlv.Hex("02 01 01", "02 01 02")

	tree, err := ParseBytes(data)
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}

	roots := tree.Roots()
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}

	if tree.Node(roots[0]).Offset != 0 {
		t.Errorf("first root offset = %d, want 0", tree.Node(roots[0]).Offset)
	}
	if tree.Node(roots[1]).Offset != 3 {
		t.Errorf("second root offset = %d, want 3", tree.Node(roots[1]).Offset)
	}
	if diff := cmp.Diff([]byte{0x02}, tree.Node(roots[1]).Raw); diff != "" {
		t.Errorf("second root content mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBytes_WithoutContent(t *testing.T) {
	data := tlv.Hex("02 01 2A")

	tree, err := ParseBytes(data, WithoutContent())
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}

	n := tree.Node(tree.Roots()[0])
	if n.Raw != nil {
		t.Errorf("Raw should be nil without content reading, got %X", n.Raw)
	}
	if n.Length != 1 {
		t.Errorf("Length = %d, want 1 (length is known even without content)", n.Length)
	}
}

func TestParseBytes_WithBaseOffset(t *testing.T) {
	data := tlv.Hex("30 03", "02 01 2A")

	tree, err := ParseBytes(data, WithBaseOffset(100))
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}

	seq := tree.Node(tree.Roots()[0])
	if seq.Offset != 100 {
		t.Errorf("root offset = %d, want 100", seq.Offset)
	}

	integer := tree.Node(tree.Children(tree.Roots()[0])[0])
	if integer.Offset != 102 {
		t.Errorf("child offset = %d, want 102", integer.Offset)
	}
}

func TestParseBytes_LongFormLength(t *testing.T) {
	// SEQUENCE { OCTET STRING of 130 bytes } uses two length octets on both
	// the outer and the inner header.
	inner := append(tlv.Hex("04 81 82"), bytes.Repeat([]byte{0xAA}, 130)...)
	data := append(tlv.Hex("30 81 85"), inner...)

	tree, err := ParseBytes(data)
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}

	root := tree.Roots()[0]
	octet := tree.Node(tree.Children(root)[0])
	if octet.Offset != 3 || octet.Length != 130 {
		t.Errorf("octet string range = (%d,%d), want (3,130)", octet.Offset, octet.Length)
	}
	if octet.ContentOffset() != 6 {
		t.Errorf("ContentOffset = %d, want 6", octet.ContentOffset())
	}
}

func TestParseBytes_Failures(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"Garbage", []byte{0xFF, 0xFF, 0xFF}},
		{"Truncated Value", tlv.Hex("30 05 02 01")},
		{"Trailing Garbage", tlv.Hex("02 01 2A FF")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := ParseBytes(tt.data)
			if err == nil {
				t.Fatalf("expected error, got tree with %d nodes", tree.Len())
			}
			if tree != nil {
				t.Error("a failed parse must not return a partial tree")
			}
		})
	}
}

func TestParseBytes_Empty(t *testing.T) {
	tree, err := ParseBytes(nil)
	if err != nil {
		t.Fatalf("ParseBytes(nil) failed: %v", err)
	}
	if tree.Len() != 0 || len(tree.Roots()) != 0 {
		t.Errorf("empty input should yield an empty tree, got %d nodes", tree.Len())
	}
}

func TestParse_Reader(t *testing.T) {
	tree, err := Parse(bytes.NewReader(tlv.Hex("02 01 2A")))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(tree.Roots()) != 1 {
		t.Errorf("expected 1 root, got %d", len(tree.Roots()))
	}
}

func TestGraft(t *testing.T) {
	carrier, err := ParseBytes(tlv.Hex("04 03 02 01 2A"))
	if err != nil {
		t.Fatalf("carrier parse failed: %v", err)
	}

	// The carrier's payload decoded on its own, rebased to its position in
	// the carrier stream.
	sub, err := ParseBytes(tlv.Hex("02 01 2A"), WithBaseOffset(2))
	if err != nil {
		t.Fatalf("payload parse failed: %v", err)
	}

	root := carrier.Roots()[0]
	added := carrier.Graft(root, sub)
	if added != 1 {
		t.Fatalf("Graft added %d children, want 1", added)
	}

	kids := carrier.Children(root)
	if len(kids) != 1 {
		t.Fatalf("expected 1 child after graft, got %d", len(kids))
	}

	grafted := carrier.Node(kids[0])
	if grafted.Tag != TagInteger || grafted.Offset != 2 || grafted.Length != 1 {
		t.Errorf("grafted node = tag %v range (%d,%d), want Integer (2,1)", grafted.Tag, grafted.Offset, grafted.Length)
	}
	if diff := cmp.Diff([]byte{0x2A}, grafted.Raw); diff != "" {
		t.Errorf("grafted content mismatch (-want +got):\n%s", diff)
	}

	// The carrier's own content is preserved alongside the grafted children.
	if carrier.Node(root).Raw == nil {
		t.Error("carrier raw content must survive grafting")
	}
}

func TestGraft_RemapsNestedIDs(t *testing.T) {
	carrier, _ := ParseBytes(tlv.Hex("04 05 30 03 02 01 07"))
	sub, _ := ParseBytes(tlv.Hex("30 03 02 01 07"), WithBaseOffset(2))

	root := carrier.Roots()[0]
	carrier.Graft(root, sub)

	seqID := carrier.Children(root)[0]
	seq := carrier.Node(seqID)
	if seq.Tag != TagSequence {
		t.Fatalf("grafted root tag = %v, want Sequence", seq.Tag)
	}

	inner := carrier.Children(seqID)
	if len(inner) != 1 {
		t.Fatalf("grafted subtree lost its children (got %d)", len(inner))
	}
	if got := carrier.Node(inner[0]); got == nil || got.Tag != TagInteger {
		t.Errorf("nested grafted child not reachable through remapped IDs")
	}
}

func TestBitStringContent(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		tree, _ := ParseBytes(tlv.Hex("03 03 00 AB CD"))
		content, err := tree.BitStringContent(tree.Roots()[0])
		if err != nil {
			t.Fatalf("BitStringContent failed: %v", err)
		}
		if diff := cmp.Diff(tlv.Hex("AB CD"), content); diff != "" {
			t.Errorf("content mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Invalid Unused Bit Count", func(t *testing.T) {
		tree, _ := ParseBytes(tlv.Hex("03 02 08 FF"))
		if _, err := tree.BitStringContent(tree.Roots()[0]); err == nil {
			t.Error("expected error for unused-bit count > 7")
		}
	})

	t.Run("No Content Read", func(t *testing.T) {
		tree, _ := ParseBytes(tlv.Hex("03 02 00 FF"), WithoutContent())
		_, err := tree.BitStringContent(tree.Roots()[0])
		if !errors.Is(err, ErrNoContent) {
			t.Errorf("expected ErrNoContent, got %v", err)
		}
	})

	t.Run("Wrong Tag", func(t *testing.T) {
		tree, _ := ParseBytes(tlv.Hex("04 01 FF"))
		_, err := tree.BitStringContent(tree.Roots()[0])
		if err == nil || !strings.Contains(err.Error(), "not a primitive BIT STRING") {
			t.Errorf("expected tag mismatch error, got %v", err)
		}
	})
}
