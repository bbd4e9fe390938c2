/*
Package view turns a stream of ASN.1 bytes into a forest of labeled display
nodes, ready for rendering by any tree-shaped output surface.

Two collaborating passes run over the decoded tree:

  - The Resolver inspects primitive OCTET STRING and BIT STRING nodes and
    attempts to reinterpret their payload as nested ASN.1. On success the
    discovered values are grafted onto the carrier node; on failure the node
    is left untouched. Most payloads are not nested ASN.1, so rejection is
    the expected outcome, not an error.

  - The Materializer walks the tree depth-first, invoking the Resolver on
    each node before reading its child list, and emits one DisplayNode per
    decoded node with a formatted label and a back-reference to its source.

Failure containment is strict: a payload that does not decode leaves its
carrier unchanged, a child that cannot be materialized is omitted while its
siblings proceed, and a stream that does not decode at all yields a single
sentinel node. Build never fails.
*/
package view
