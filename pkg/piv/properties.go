package piv

import (
	"fmt"
	"strings"

	"github.com/moov-io/bertlv"

	"github.com/gregLibert/asn1-explorer/pkg/tlv"
)

// APPLICATION PROPERTY TEMPLATE (SP 800-73-4):
// The response to a PIV application SELECT is a '61' template describing the
// selected application: its identifier, a human-readable label, the tag
// allocation authority, and the cryptographic algorithms it supports.

// ApplicationProperties represents the PIV application property template
// returned by SELECT (Tag '61').
type ApplicationProperties struct {
	PIX              []byte `tlv:"4F"`
	ApplicationLabel []byte `tlv:"50" fmt:"ascii"`
	SpecificationURL []byte `tlv:"5F50" fmt:"ascii"`

	AllocationAuthority *AllocationAuthority `tlv:"79"`

	SupportedAlgorithms []AlgorithmIdentifier `tlv:"AC"`

	Unknown []bertlv.TLV `tlv:",unknown"`
}

// AllocationAuthority identifies the coexistent tag allocation authority
// (Tag '79').
type AllocationAuthority struct {
	AID []byte `tlv:"4F"`

	Unknown []bertlv.TLV `tlv:",unknown"`
}

// AlgorithmIdentifier is one entry of the supported algorithms list
// (Tag 'AC').
type AlgorithmIdentifier struct {
	Algorithm []byte `tlv:"80" fmt:"int"`
	OID       []byte `tlv:"06"`

	Unknown []bertlv.TLV `tlv:",unknown"`
}

// ParseApplicationProperties interprets raw SELECT response data as a PIV
// application property template.
func ParseApplicationProperties(data []byte) (*ApplicationProperties, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty data cannot be parsed")
	}

	packets, err := bertlv.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("BER-TLV decode failed: %w", err)
	}

	// The template must be wrapped in Tag '61'.
	var processingPackets []bertlv.TLV
	if len(packets) > 0 && strings.EqualFold(packets[0].Tag, "61") {
		processingPackets = packets[0].TLVs
	} else {
		return nil, fmt.Errorf("missing mandatory Application Property Template (Tag 61)")
	}

	props := &ApplicationProperties{}
	if err := tlv.UnmarshalFromPackets(processingPackets, props); err != nil {
		return nil, fmt.Errorf("failed to map application properties: %w", err)
	}

	return props, nil
}

// Describe generates a report of the application properties.
func (p *ApplicationProperties) Describe() string {
	var sb strings.Builder
	sb.WriteString("=== PIV APPLICATION PROPERTIES ===")

	tlv.WriteStructFields(&sb, "App", p)

	if p.AllocationAuthority != nil {
		tlv.WriteStructFields(&sb, "App.Authority", p.AllocationAuthority)
	}

	for i, alg := range p.SupportedAlgorithms {
		tlv.WriteStructFields(&sb, fmt.Sprintf("Alg[%d]", i+1), alg)
	}

	return strings.TrimRight(sb.String(), "\n")
}
