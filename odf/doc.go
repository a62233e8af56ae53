// Package odf provides the Objects tree carried inside O-MI messages.
//
// # Overview
//
// An Objects tree is a hierarchy of addressable nodes: the root (always
// named "Objects"), Objects, which group other nodes, and InfoItems, which
// may carry a timestamped value and hold metadata InfoItems as children.
//
//	tree := odf.Objects(
//	    odf.Object("Building",
//	        odf.InfoItem("Temperature", &odf.Value{Type: "xs:double", Text: "21.5"}),
//	    ),
//	)
//
// # Tree Constraints
//
// A valid tree has non-empty identifiers that are unique among siblings, no
// node that is its own ancestor and no node reachable twice. Identifiers may
// repeat in different subtrees.
//
// # Paths
//
// Nodes are addressed by slash separated identifiers starting at the root,
// for example "Objects/Building/Temperature". Slashes and backslashes inside
// an identifier are escaped with a backslash. See JoinPath, SplitPath and
// Lookup.
//
// # Merging
//
// Merge unions two trees by identifier. It never resolves a value conflict
// silently: two different values for the same node are a MergeConflict.
// BuildNode uses the same rules for duplicate children.
//
// # Related Packages
//
//   - github.com/signadot/go-omi/omi - envelopes carrying Objects trees
//   - github.com/signadot/go-omi/parse - decodes envelopes from XML
//   - github.com/signadot/go-omi/encode - encodes envelopes to XML
package odf
