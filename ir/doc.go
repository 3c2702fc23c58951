// Package ir provides the value representation produced by XML conversion.
//
// # Overview
//
// A converted document is a tree of nodes. A Node is a recursive tagged
// union over four types:
//
//   - NullType: null value (empty element content)
//   - StringType: string value (character data)
//   - ObjectType: key-value pairs with ordered, unique keys
//   - ArrayType: ordered list of nodes
//
// The tree is readily representable in JSON and YAML. It contains no
// position information from the input document, making it purely semantic.
//
// # Node Structure
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there will always be the same number of fields as values. Fields are
// always string typed and appear at most once; key order is the order in
// which keys were first seen in the input document. Conversion uses three
// reserved key forms inside objects:
//
//   - "@name" carries the value of an XML attribute named name
//   - "#text" carries inline character data of a mixed element
//   - "#cdata" carries concatenated CDATA content of an element
//
// Each node maintains parent-child relationships (Parent, ParentIndex,
// ParentField) allowing navigation from any node to the root.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.Null()})
//
// FromMap orders keys lexically; FromKeyVals preserves the given order.
//
// # Path Operations
//
// Use Path() to get a JSONPath-style path string for a node:
//
//	path := node.Path() // e.g., "$.doc.item[0]"
//
// Use GetPath() to navigate to a single node, or ListPath() to collect all
// matches of a path containing [*] or .. segments.
//
// # Comparison
//
// Nodes can be compared for equality and ordering:
//
//	equal := ir.Equal(a, b)
//
// Object comparison is order sensitive, since key order carries document
// order information here.
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself or clone nodes
// for each goroutine.
//
// # Related Packages
//
//   - github.com/signadot/xj/parse - Converts XML into IR nodes
//   - github.com/signadot/xj/encode - Encodes IR nodes to JSON or YAML
package ir
