/*
Package piv implements the card-side access path to X.509 certificates stored
on PIV (Personal Identity Verification, NIST SP 800-73) smart cards.

A PIV card holds its certificates as BER-TLV data objects addressed by
'5FC1xx' tags. Reading one is a three-step flow:

 1. SELECT the PIV application by its AID.
 2. GET DATA (BER-TLV form) for the certificate data object of a key slot.
 3. Unwrap the response envelope (tag '53' wrapping '70'/'71'/'FE') to
    obtain the raw DER certificate bytes.

The Client type drives the flow over an iso7816 connection; the parse
helpers work on raw bytes and are usable without a card.
*/
package piv

import (
	"fmt"
	"strings"
)

// AID is the application identifier of the PIV card application, including
// the version suffix.
var AID = []byte{0xA0, 0x00, 0x00, 0x03, 0x08, 0x00, 0x00, 0x10, 0x00, 0x01, 0x00}

// Slot identifies a PIV key slot holding a certificate.
type Slot byte

const (
	// SlotAuthentication ('9A') holds the PIV Authentication certificate.
	SlotAuthentication Slot = 0x9A
	// SlotSignature ('9C') holds the Digital Signature certificate.
	SlotSignature Slot = 0x9C
	// SlotKeyManagement ('9D') holds the Key Management certificate.
	SlotKeyManagement Slot = 0x9D
	// SlotCardAuthentication ('9E') holds the Card Authentication certificate.
	SlotCardAuthentication Slot = 0x9E
)

// certificateObjectTags maps each slot to the BER-TLV tag of its certificate
// data object (SP 800-73-4, Part 1, Table 3).
var certificateObjectTags = map[Slot][]byte{
	SlotAuthentication:     {0x5F, 0xC1, 0x05},
	SlotSignature:          {0x5F, 0xC1, 0x0A},
	SlotKeyManagement:      {0x5F, 0xC1, 0x0B},
	SlotCardAuthentication: {0x5F, 0xC1, 0x01},
}

// ParseSlot interprets a textual slot name ("9a", "9C", ...).
func ParseSlot(s string) (Slot, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "9a":
		return SlotAuthentication, nil
	case "9c":
		return SlotSignature, nil
	case "9d":
		return SlotKeyManagement, nil
	case "9e":
		return SlotCardAuthentication, nil
	default:
		return 0, fmt.Errorf("unknown PIV slot %q (expected 9a, 9c, 9d or 9e)", s)
	}
}

// ObjectTag returns the BER-TLV tag of the slot's certificate data object.
func (s Slot) ObjectTag() ([]byte, error) {
	tag, ok := certificateObjectTags[s]
	if !ok {
		return nil, fmt.Errorf("slot %02X has no certificate data object", byte(s))
	}
	return tag, nil
}

func (s Slot) String() string {
	switch s {
	case SlotAuthentication:
		return "9A (PIV Authentication)"
	case SlotSignature:
		return "9C (Digital Signature)"
	case SlotKeyManagement:
		return "9D (Key Management)"
	case SlotCardAuthentication:
		return "9E (Card Authentication)"
	default:
		return fmt.Sprintf("Slot(%02X)", byte(s))
	}
}
