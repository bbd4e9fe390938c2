package view

import (
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"github.com/gregLibert/asn1-explorer/pkg/asn1tree"
)

// ENCAPSULATED DATA RESOLUTION:
// Certificates and PKCS structures routinely nest whole ASN.1 objects inside
// the payload of an OCTET STRING (extensions, wrapped keys) or BIT STRING
// (signatures, public keys). There is no cheap discriminator for "this
// payload is nested ASN.1" other than attempting the decode, so the Resolver
// simply tries, per node, and treats a failed decode as a normal branch.
//
// A node is resolved at most once: a successful attempt grafts the decoded
// values as children while keeping the raw payload, and the presence of
// children blocks any further attempt on that node.

// Outcome reports what a resolution attempt did.
type Outcome int

const (
	// OutcomeSkipped means the node was not eligible: wrong kind or tag, no
	// content available, or already resolved.
	OutcomeSkipped Outcome = iota
	// OutcomeRejected means the payload was offered to the decoder and
	// turned out not to be nested ASN.1. The node is unchanged.
	OutcomeRejected
	// OutcomeResolved means the payload decoded and its top-level values
	// were grafted onto the node.
	OutcomeResolved
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRejected:
		return "Rejected"
	case OutcomeResolved:
		return "Resolved"
	default:
		return "Skipped"
	}
}

// Resolver attempts to decode encapsulated payloads in a single tree.
type Resolver struct {
	tree   *asn1tree.Tree
	logger log.Logger
}

// NewResolver creates a resolver for the given tree. A nil logger disables
// diagnostics.
func NewResolver(tree *asn1tree.Tree, logger log.Logger) *Resolver {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Resolver{tree: tree, logger: logger}
}

// Resolve attempts to decode the payload of the addressed node as nested
// ASN.1 and graft the result. It never fails: ineligible nodes and
// undecodable payloads are reported through the Outcome and the node is left
// exactly as it was.
func (r *Resolver) Resolve(id asn1tree.NodeID) Outcome {
	node := r.tree.Node(id)
	if node == nil || node.Kind != asn1tree.Primitive || node.Raw == nil {
		return OutcomeSkipped
	}
	if node.Class != asn1tree.ClassUniversal {
		return OutcomeSkipped
	}
	if node.Tag != asn1tree.TagOctetString && node.Tag != asn1tree.TagBitString {
		return OutcomeSkipped
	}
	if len(r.tree.Children(id)) > 0 {
		// Already resolved on an earlier visit.
		return OutcomeSkipped
	}

	payload := node.Raw
	base := node.ContentOffset()

	if node.Tag == asn1tree.TagBitString {
		content, err := r.tree.BitStringContent(id)
		if err != nil {
			level.Debug(r.logger).Log("msg", "bit string framing rejected", "offset", node.Offset, "err", err)
			return OutcomeRejected
		}
		payload = content
		base++
	}

	sub, err := asn1tree.ParseBytes(payload, asn1tree.WithBaseOffset(base))
	if err != nil {
		level.Debug(r.logger).Log("msg", "payload is not nested ASN.1", "offset", node.Offset, "err", err)
		return OutcomeRejected
	}

	r.tree.Graft(id, sub)
	return OutcomeResolved
}
