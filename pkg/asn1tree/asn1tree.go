/*
Package asn1tree builds an addressable tree of decoded ASN.1 values on top of
the BER/DER reader from github.com/go-asn1-ber/asn1-ber.

The reader itself owns all tag/length/value decoding. This package converts
its packet graph into an arena of Node entries addressed by stable NodeID
indices, and annotates every node with its byte range in the source stream.

# Arena Model

Nodes are never shared by pointer between trees. A Tree holds a flat slice of
nodes plus the list of top-level roots; parent/child relationships are index
lists. This keeps two operations cheap and unambiguous:

  - Children(id) returns the ordered child list of a node.
  - Graft(parent, sub) merges another tree into this one and appends its
    roots as new children of parent. Grafting is how encapsulated payloads
    discovered inside OCTET STRING and BIT STRING values are attached to
    their carrier node.

# Offsets

Each node records the position of its identifier octet (Offset) and its
content length in octets (Length). Offsets assume definite, minimal (DER
style) length encoding when locating children inside a constructed value.
WithBaseOffset rebases a whole parse, so values decoded out of a nested
payload can carry their position in the original stream.

# Content Access

Primitive nodes carry their content octets in Raw. Parsing with
WithoutContent leaves Raw nil, which disables every content-dependent
consumer downstream. BIT STRING content must be read through
BitStringContent, which strips the leading unused-bits octet; the raw field
keeps the full framed content.
*/
package asn1tree
