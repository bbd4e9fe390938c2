package render

import (
	"fmt"
	"strings"

	"github.com/gregLibert/asn1-explorer/pkg/tlv"
)

// HexDump renders data as a classic offset / hex / ASCII dump, 16 bytes per
// row with a gap after the eighth column.
func HexDump(data []byte) string {
	const width = 16

	var sb strings.Builder
	for i := 0; i < len(data); i += width {
		sb.WriteString(fmt.Sprintf("%08X  ", i))

		for j := 0; j < width; j++ {
			if i+j < len(data) {
				sb.WriteString(fmt.Sprintf("%02X ", data[i+j]))
			} else {
				sb.WriteString("   ")
			}
			if j == 7 {
				sb.WriteString(" ")
			}
		}

		end := min(i+width, len(data))
		sb.WriteString(" |")
		sb.WriteString(tlv.MakeSafeASCII(data[i:end]))
		sb.WriteString("|\n")
	}

	return sb.String()
}
