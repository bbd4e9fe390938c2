package render

import (
	"strings"
	"testing"

	"github.com/gregLibert/asn1-explorer/pkg/asn1tree"
	"github.com/gregLibert/asn1-explorer/pkg/tlv"
)

// parseOne decodes a single value and returns its tree and root ID.
func parseOne(t *testing.T, parts ...string) (*asn1tree.Tree, asn1tree.NodeID) {
	t.Helper()
	tree, err := asn1tree.ParseBytes(tlv.Hex(parts...))
	if err != nil {
		t.Fatalf("fixture parse failed: %v", err)
	}
	if len(tree.Roots()) != 1 {
		t.Fatalf("fixture must decode to a single value, got %d", len(tree.Roots()))
	}
	return tree, tree.Roots()[0]
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		data []string
		want string
	}{
		{
			name: "Integer Hex Value",
			data: []string{"02 01 2A"},
			want: "(0,1) Integer : 2A",
		},
		{
			name: "Octet String Raw Hex",
			data: []string{"04 03 02 01 2A"},
			want: "(0,3) OctetString : 02012A",
		},
		{
			name: "Boolean True",
			data: []string{"01 01 FF"},
			want: "(0,1) Boolean : True",
		},
		{
			name: "Boolean False",
			data: []string{"01 01 00"},
			want: "(0,1) Boolean : False",
		},
		{
			name: "Null Has No Suffix",
			data: []string{"05 00"},
			want: "(0,0) Null",
		},
		{
			name: "OID Dotted Notation",
			// 1.2.840.113549
			data: []string{"06 06 2A 86 48 86 F7 0D"},
			want: "(0,6) ObjectIdentifier : 1.2.840.113549",
		},
		{
			name: "UTF8 String Text",
			data: []string{"0C 05 68 65 6C 6C 6F"},
			want: "(0,5) UTF8String : hello",
		},
		{
			name: "Printable String Text",
			data: []string{"13 02 41 42"},
			want: "(0,2) PrintableString : AB",
		},
		{
			name: "Bit String Strips Framing Octet",
			data: []string{"03 03 00 AB CD"},
			want: "(0,3) BitString : ABCD",
		},
		{
			name: "Enumerated Falls Back To Hex",
			data: []string{"0A 01 05"},
			want: "(0,1) Enumerated : 05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, root := parseOne(t, tt.data...)
			if got := Label(tree, root, false); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLabel_NodeWithChildren(t *testing.T) {
	tree, root := parseOne(t, "30 03 02 01 2A")
	if got := Label(tree, root, true); got != "(0,3) Sequence" {
		t.Errorf("Label() = %q, want %q", got, "(0,3) Sequence")
	}
}

func TestLabel_NoContentRead(t *testing.T) {
	tree, err := asn1tree.ParseBytes(tlv.Hex("02 01 2A"), asn1tree.WithoutContent())
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := Label(tree, tree.Roots()[0], false); got != "(0,1) Integer" {
		t.Errorf("Label() = %q, want no value suffix without content", got)
	}
}

func TestTagDisplay_NonUniversalClasses(t *testing.T) {
	tests := []struct {
		name string
		data []string
		want string
	}{
		{"Context Specific", []string{"80 01 AA"}, "ContextSpecific (0)"},
		{"Context Specific Tag 3", []string{"83 01 AA"}, "ContextSpecific (3)"},
		{"Application", []string{"41 01 AA"}, "Application (1)"},
		{"Private", []string{"C2 01 AA"}, "Private (2)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, root := parseOne(t, tt.data...)
			if got := TagDisplay(tree.Node(root)); got != tt.want {
				t.Errorf("TagDisplay() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDataText_Times(t *testing.T) {
	t.Run("UTCTime", func(t *testing.T) {
		// 991231235959Z
		tree, root := parseOne(t, "17 0D 39 39 31 32 33 31 32 33 35 39 35 39 5A")
		if got := DataText(tree, root); got != "1999-12-31 23:59:59 UTC" {
			t.Errorf("DataText() = %q", got)
		}
	})

	t.Run("GeneralizedTime", func(t *testing.T) {
		// 20260830120000Z
		tree, root := parseOne(t, "18 0F 32 30 32 36 30 38 33 30 31 32 30 30 30 30 5A")
		if got := DataText(tree, root); got != "2026-08-30 12:00:00 UTC" {
			t.Errorf("DataText() = %q", got)
		}
	})

	t.Run("Malformed Time Falls Back To Text", func(t *testing.T) {
		tree, root := parseOne(t, "17 03 41 42 43")
		if got := DataText(tree, root); got != "ABC" {
			t.Errorf("DataText() = %q, want raw text fallback", got)
		}
	})
}

func TestRenderText_SanitizesControlBytes(t *testing.T) {
	// The decoder rejects control bytes in the string types it validates, so
	// the sanitize path is exercised on the renderers directly.
	if got := renderASCIIText([]byte{0x41, 0x00, 0x42}); got != "A.B" {
		t.Errorf("renderASCIIText() = %q, want %q", got, "A.B")
	}
	if got := renderUnicodeText([]byte("A\x07B")); got != "A.B" {
		t.Errorf("renderUnicodeText() = %q, want %q", got, "A.B")
	}
}

func TestRenderOID_Malformed(t *testing.T) {
	// Trailing continuation bit means a truncated arc.
	if got := renderOID(tlv.Hex("2A 86")); got != "2A86" {
		t.Errorf("renderOID() = %q, want hex fallback", got)
	}
}

func TestHexDump(t *testing.T) {
	dump := HexDump(tlv.Hex("30 06 02 01 2A 04 01 FF"))

	lines := strings.Split(strings.TrimRight(dump, "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 dump row, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "00000000  30 06 02 01 2A 04 01 FF") {
		t.Errorf("unexpected dump row: %q", lines[0])
	}
	if !strings.HasSuffix(lines[0], "|0...*...|") {
		t.Errorf("unexpected ASCII gutter: %q", lines[0])
	}
}

func TestHexDump_MultiRow(t *testing.T) {
	data := make([]byte, 20)
	for i := range data {
		data[i] = byte(i)
	}

	dump := HexDump(data)
	lines := strings.Split(strings.TrimRight(dump, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 dump rows, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "00000010  10 11 12 13") {
		t.Errorf("unexpected second row: %q", lines[1])
	}
}
