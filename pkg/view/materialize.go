package view

import (
	"fmt"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"github.com/gregLibert/asn1-explorer/pkg/asn1tree"
	"github.com/gregLibert/asn1-explorer/pkg/render"
)

// InvalidStructureLabel is the label of the sentinel node produced when the
// input stream does not decode as ASN.1 at all.
const InvalidStructureLabel = "Invalid ASN.1 structure"

// DefaultMaxDepth bounds recursion on adversarially nested input.
const DefaultMaxDepth = 1000

// Options configures a display-tree build.
type Options struct {
	// ReadContent asks the decoder to read primitive values. When false,
	// labels carry no value text and encapsulated payload detection is
	// disabled (there is no payload to inspect).
	ReadContent bool

	// ParseEncapsulated gates the Resolver: when false, OCTET STRING and
	// BIT STRING payloads are shown as plain values.
	ParseEncapsulated bool

	// MaxDepth limits recursion depth; nodes beyond it are omitted. Zero or
	// negative selects DefaultMaxDepth.
	MaxDepth int

	// Logger receives debug diagnostics. Nil disables logging.
	Logger log.Logger
}

// DefaultOptions returns the options the CLI uses: full content reading and
// encapsulated payload parsing enabled.
func DefaultOptions() Options {
	return Options{
		ReadContent:       true,
		ParseEncapsulated: true,
		MaxDepth:          DefaultMaxDepth,
	}
}

func (o Options) logger() log.Logger {
	if o.Logger == nil {
		return log.NewNopLogger()
	}
	return o.Logger
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// DisplayNode is one line of the rendered tree. It is pure output: labels
// are never mutated after construction, and the node does not own the
// decoded tree it points back into.
type DisplayNode struct {
	Label  string
	Source asn1tree.NodeID
	Depth  int

	// Encapsulated marks a node whose children were discovered by decoding
	// its own payload rather than by the original parse.
	Encapsulated bool

	Children []*DisplayNode
}

// Materializer flattens a decoded tree into DisplayNodes.
type Materializer struct {
	tree     *asn1tree.Tree
	resolver *Resolver
	opts     Options
	logger   log.Logger
}

// NewMaterializer creates a materializer over a decoded tree.
func NewMaterializer(tree *asn1tree.Tree, opts Options) *Materializer {
	logger := opts.logger()
	return &Materializer{
		tree:     tree,
		resolver: NewResolver(tree, logger),
		opts:     opts,
		logger:   logger,
	}
}

// Materialize produces the display subtree rooted at id. Children that
// cannot be materialized are omitted; their siblings are unaffected.
func (m *Materializer) Materialize(id asn1tree.NodeID, depth int) (*DisplayNode, error) {
	node := m.tree.Node(id)
	if node == nil {
		return nil, fmt.Errorf("node %d out of range", id)
	}
	if depth > m.opts.maxDepth() {
		return nil, fmt.Errorf("depth limit %d exceeded", m.opts.maxDepth())
	}

	outcome := OutcomeSkipped
	if m.opts.ParseEncapsulated {
		// Resolution must happen before the child list is read, so children
		// discovered inside the payload are part of this same pass.
		outcome = m.resolver.Resolve(id)
	}

	kids := m.tree.Children(id)

	dn := &DisplayNode{
		Label:  render.Label(m.tree, id, len(kids) > 0),
		Source: id,
		Depth:  depth,
	}
	if outcome == OutcomeResolved && len(kids) > 0 {
		dn.Encapsulated = true
	}

	childDepth := depth
	if len(kids) > 0 {
		childDepth++
	}

	for _, cid := range kids {
		child, err := m.Materialize(cid, childDepth)
		if err != nil {
			level.Debug(m.logger).Log("msg", "child omitted", "parent", id, "child", cid, "err", err)
			continue
		}
		dn.Children = append(dn.Children, child)
	}

	return dn, nil
}

// Build decodes data and materializes the display forest, one DisplayNode
// per top-level value. It never fails: undecodable input yields a single
// sentinel node.
func Build(data []byte, opts Options) []*DisplayNode {
	var parseOpts []asn1tree.Option
	if !opts.ReadContent {
		parseOpts = append(parseOpts, asn1tree.WithoutContent())
	}

	tree, err := asn1tree.ParseBytes(data, parseOpts...)
	if err != nil {
		level.Debug(opts.logger()).Log("msg", "top-level decode failed", "err", err)
		return []*DisplayNode{{Label: InvalidStructureLabel}}
	}

	nodes := BuildTree(tree, opts)
	if len(nodes) == 0 {
		return []*DisplayNode{{Label: InvalidStructureLabel}}
	}
	return nodes
}

// BuildTree materializes an already decoded tree.
func BuildTree(tree *asn1tree.Tree, opts Options) []*DisplayNode {
	m := NewMaterializer(tree, opts)

	var out []*DisplayNode
	for _, root := range tree.Roots() {
		dn, err := m.Materialize(root, 0)
		if err != nil {
			level.Debug(m.logger).Log("msg", "top-level value omitted", "root", root, "err", err)
			continue
		}
		out = append(out, dn)
	}
	return out
}

// Stats summarizes a display forest for report footers.
type Stats struct {
	Nodes        int
	MaxDepth     int
	Encapsulated int
}

// Summarize walks a display forest and counts nodes, the deepest level, and
// resolved encapsulated payloads.
func Summarize(nodes []*DisplayNode) Stats {
	var s Stats
	for _, n := range nodes {
		summarizeInto(n, &s)
	}
	return s
}

func summarizeInto(n *DisplayNode, s *Stats) {
	s.Nodes++
	if n.Depth > s.MaxDepth {
		s.MaxDepth = n.Depth
	}
	if n.Encapsulated {
		s.Encapsulated++
	}
	for _, c := range n.Children {
		summarizeInto(c, s)
	}
}
