package asn1tree

import "testing"

func TestTagString(t *testing.T) {
	tests := []struct {
		tag  Tag
		want string
	}{
		{TagSequence, "Sequence"},
		{TagOctetString, "OctetString"},
		{TagInteger, "Integer"},
		{TagBitString, "BitString"},
		{Tag(99), "Universal (99)"},
	}

	for _, tt := range tests {
		if got := tt.tag.String(); got != tt.want {
			t.Errorf("Tag(%d).String() = %q, want %q", uint64(tt.tag), got, tt.want)
		}
	}
}

func TestHeaderLength(t *testing.T) {
	tests := []struct {
		name       string
		tag        uint64
		contentLen int
		want       int
	}{
		{"Short Tag Short Length", 0x10, 5, 2},
		{"Short Tag Boundary 127", 0x04, 127, 2},
		{"Short Tag Long Length 128", 0x04, 128, 3},
		{"Short Tag Two Length Octets", 0x04, 300, 4},
		{"High Tag Number 31", 31, 5, 3},
		{"High Tag Number 128", 128, 5, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := headerLength(tt.tag, tt.contentLen); got != tt.want {
				t.Errorf("headerLength(%d, %d) = %d, want %d", tt.tag, tt.contentLen, got, tt.want)
			}
		})
	}
}
