package domain

import "time"

// NodeKind classifies a node of a parsed configuration document.
type NodeKind int

const (
	NodeNull NodeKind = iota
	NodeScalar
	NodeMapping
	NodeSequence
)

func (k NodeKind) String() string {
	switch k {
	case NodeScalar:
		return "scalar"
	case NodeMapping:
		return "mapping"
	case NodeSequence:
		return "sequence"
	default:
		return "null"
	}
}

// ScalarType is the resolved type of a scalar node.
type ScalarType string

const (
	ScalarString    ScalarType = "str"
	ScalarInt       ScalarType = "int"
	ScalarFloat     ScalarType = "float"
	ScalarBool      ScalarType = "bool"
	ScalarNull      ScalarType = "null"
	ScalarTimestamp ScalarType = "timestamp"
)

// Node is an untyped document tree. Parsers map their own trees into it so that
// validation and extraction do not depend on a particular syntax.
type Node struct {
	Kind   NodeKind
	Scalar ScalarType
	Value  string
	Line   int

	// Number is set for int and float scalars.
	Number float64
	// Time is set for timestamp scalars.
	Time time.Time

	Items  []Node  // sequence
	Fields []Field // mapping, document order
}

// Field is one key/value pair of a mapping node.
type Field struct {
	Key   string
	Value Node
}

// Get returns the value for key in a mapping node. The last occurrence wins,
// matching how YAML mappings are usually read.
func (n Node) Get(key string) (Node, bool) {
	if n.Kind != NodeMapping {
		return Node{}, false
	}
	var (
		out   Node
		found bool
	)
	for _, f := range n.Fields {
		if f.Key == key {
			out = f.Value
			found = true
		}
	}
	return out, found
}

func (n Node) IsNumber() bool {
	return n.Kind == NodeScalar && (n.Scalar == ScalarInt || n.Scalar == ScalarFloat)
}

// RawConfig is a parsed configuration document. It only lives for one pipeline run.
type RawConfig struct {
	Source string // file path, or "" for in-memory text
	Root   Node
}
