package yamlconfig

import (
	"time"

	"github.com/trexfeathers/WOPI/internal/domain"
	"gopkg.in/yaml.v3"
)

// maxDepth bounds alias chains; yaml.Node trees are not expanded on decode.
const maxDepth = 64

func mapNode(n *yaml.Node, depth int) domain.Node {
	if n == nil || depth > maxDepth {
		return domain.Node{Kind: domain.NodeNull, Scalar: domain.ScalarNull}
	}

	switch n.Kind {
	case yaml.AliasNode:
		return mapNode(n.Alias, depth+1)

	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return domain.Node{Kind: domain.NodeNull, Scalar: domain.ScalarNull, Line: n.Line}
		}
		return mapNode(n.Content[0], depth+1)

	case yaml.SequenceNode:
		out := domain.Node{Kind: domain.NodeSequence, Line: n.Line, Items: make([]domain.Node, 0, len(n.Content))}
		for _, c := range n.Content {
			out.Items = append(out.Items, mapNode(c, depth+1))
		}
		return out

	case yaml.MappingNode:
		out := domain.Node{Kind: domain.NodeMapping, Line: n.Line, Fields: make([]domain.Field, 0, len(n.Content)/2)}
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind == yaml.AliasNode && k.Alias != nil {
				k = k.Alias
			}
			out.Fields = append(out.Fields, domain.Field{
				Key:   k.Value,
				Value: mapNode(v, depth+1),
			})
		}
		return out

	case yaml.ScalarNode:
		return mapScalar(n)

	default:
		return domain.Node{Kind: domain.NodeNull, Scalar: domain.ScalarNull, Line: n.Line}
	}
}

func mapScalar(n *yaml.Node) domain.Node {
	out := domain.Node{Kind: domain.NodeScalar, Value: n.Value, Line: n.Line}

	switch n.ShortTag() {
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			out.Scalar = domain.ScalarString
			return out
		}
		out.Scalar = domain.ScalarFloat
		if n.ShortTag() == "!!int" {
			out.Scalar = domain.ScalarInt
		}
		out.Number = f

	case "!!timestamp":
		var t time.Time
		if err := n.Decode(&t); err != nil {
			out.Scalar = domain.ScalarString
			return out
		}
		out.Scalar = domain.ScalarTimestamp
		out.Time = t

	case "!!bool":
		out.Scalar = domain.ScalarBool

	case "!!null":
		out.Kind = domain.NodeNull
		out.Scalar = domain.ScalarNull

	default:
		out.Scalar = domain.ScalarString
	}

	return out
}
