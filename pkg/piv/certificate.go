package piv

import (
	"fmt"
	"strings"

	"github.com/moov-io/bertlv"

	"github.com/gregLibert/asn1-explorer/pkg/tlv"
)

// CERTIFICATE DATA OBJECT (SP 800-73-4):
// A GET DATA response for a certificate object is a '53' envelope wrapping:
// - Tag '70': the DER-encoded X.509 certificate (mandatory).
// - Tag '71': CertInfo byte (bit 1 set = certificate is gzip-compressed).
// - Tag '72': MSCUID (legacy, optional).
// - Tag 'FE': Error detection code (empty on conforming cards).

// CertificateObject represents the unwrapped content of a PIV certificate
// data object.
type CertificateObject struct {
	Certificate        []byte `tlv:"70"`
	CertInfo           []byte `tlv:"71" fmt:"int"`
	MSCUID             []byte `tlv:"72"`
	ErrorDetectionCode []byte `tlv:"FE"`

	Unknown []bertlv.TLV `tlv:",unknown"`
}

// compressedFlag is bit 1 of the CertInfo byte.
const compressedFlag = 0x01

// IsCompressed reports whether CertInfo marks the certificate as
// gzip-compressed.
func (c *CertificateObject) IsCompressed() bool {
	return len(c.CertInfo) > 0 && c.CertInfo[0]&compressedFlag != 0
}

// ParseCertificateObject interprets a GET DATA response payload as a PIV
// certificate data object. The '53' envelope is unwrapped when present, so
// both full responses and pre-unwrapped object content are accepted.
func ParseCertificateObject(data []byte) (*CertificateObject, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty data cannot be parsed")
	}

	packets, err := bertlv.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("BER-TLV decode failed: %w", err)
	}

	if len(packets) > 0 && strings.EqualFold(packets[0].Tag, "53") {
		if len(packets[0].TLVs) > 0 {
			packets = packets[0].TLVs
		} else {
			inner, err := bertlv.Decode(packets[0].Value)
			if err != nil {
				return nil, fmt.Errorf("decoding '53' envelope content: %w", err)
			}
			packets = inner
		}
	}

	obj := &CertificateObject{}
	if err := tlv.UnmarshalFromPackets(packets, obj); err != nil {
		return nil, fmt.Errorf("failed to map certificate object: %w", err)
	}

	if len(obj.Certificate) == 0 {
		return nil, fmt.Errorf("missing mandatory certificate content (Tag 70)")
	}

	return obj, nil
}

// Describe generates a report of the certificate object's fields.
func (c *CertificateObject) Describe() string {
	var sb strings.Builder
	sb.WriteString("=== PIV CERTIFICATE OBJECT ===")

	tlv.WriteStructFields(&sb, "Object", c)

	if sb.Len() > 0 {
		sb.WriteString("\n")
	}
	compressed := "No"
	if c.IsCompressed() {
		compressed = "Yes"
	}
	sb.WriteString(fmt.Sprintf("    - Object.Compressed: %s", compressed))

	return strings.TrimRight(sb.String(), "\n")
}
