package autodiff

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

// graphNode is a vertex of the exported graph: either a Variable or a Creator.
type graphNode struct {
	id    int64
	attrs []encoding.Attribute
}

func (n graphNode) ID() int64 { return n.id }

func (n graphNode) Attributes() []encoding.Attribute { return n.attrs }

// Graph converts the computation graph that produced v into a gonum directed
// graph. Edges run in forward direction: input -> Creator -> output.
// Outputs that were garbage collected are left out.
func Graph(v *Variable) graph.Directed {
	g := simple.NewDirectedGraph()
	b := &graphBuilder{g: g, ids: make(map[any]int64)}
	b.variable(v)

	seen := make(map[*Creator]bool)
	pending := []*Creator{}
	if v.creator != nil {
		pending = append(pending, v.creator)
		seen[v.creator] = true
	}
	for len(pending) > 0 {
		c := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		cNode := b.creator(c)
		for _, input := range c.inputs {
			g.SetEdge(g.NewEdge(b.variable(input), cNode))
			if input.creator != nil && !seen[input.creator] {
				seen[input.creator] = true
				pending = append(pending, input.creator)
			}
		}
		for _, output := range c.Outputs() {
			if output != nil {
				g.SetEdge(g.NewEdge(cNode, b.variable(output)))
			}
		}
	}
	return g
}

// DOT renders the computation graph that produced v in Graphviz DOT format.
// Variables are orange ellipses labeled with their name and shape; Creators are
// light blue boxes labeled with their Function.
func DOT(v *Variable) (string, error) {
	out, err := dot.Marshal(Graph(v), "deepzero", "", "  ")
	if err != nil {
		return "", errors.Wrapf(err, "DOT(%s)", v)
	}
	return string(out), nil
}

type graphBuilder struct {
	g   *simple.DirectedGraph
	ids map[any]int64
}

func (b *graphBuilder) node(key any, attrs ...encoding.Attribute) graph.Node {
	if id, found := b.ids[key]; found {
		return b.g.Node(id)
	}
	n := graphNode{id: int64(len(b.ids)), attrs: attrs}
	b.ids[key] = n.id
	b.g.AddNode(n)
	return n
}

func (b *graphBuilder) variable(v *Variable) graph.Node {
	label := strings.Trim(fmt.Sprint(v.data.Shape()), "()")
	if v.name != "" {
		label = v.name + ": " + label
	}
	return b.node(v,
		encoding.Attribute{Key: "label", Value: label},
		encoding.Attribute{Key: "color", Value: "orange"},
		encoding.Attribute{Key: "style", Value: "filled"},
	)
}

func (b *graphBuilder) creator(c *Creator) graph.Node {
	return b.node(c,
		encoding.Attribute{Key: "label", Value: functionName(c.function)},
		encoding.Attribute{Key: "color", Value: "lightblue"},
		encoding.Attribute{Key: "style", Value: "filled"},
		encoding.Attribute{Key: "shape", Value: "box"},
	)
}
