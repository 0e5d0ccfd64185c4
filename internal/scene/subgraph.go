package scene

import "errors"

// Subgraph is a disposable group of primitives. It owns every resource
// handle of its primitives and of any nested child subgraphs, so disposing
// the outermost subgraph releases everything exactly once.
type Subgraph struct {
	Name       string
	Primitives []*Primitive
	Children   []*Subgraph

	handles []Disposable
}

func NewSubgraph(name string) *Subgraph {
	return &Subgraph{Name: name}
}

// Add appends p and takes ownership of its handles.
func (g *Subgraph) Add(p *Primitive) *Primitive {
	g.Primitives = append(g.Primitives, p)
	g.handles = append(g.handles, p.Handles()...)
	return p
}

// AddChild nests c under g. Ownership of c's handles moves to g.
func (g *Subgraph) AddChild(c *Subgraph) {
	g.Children = append(g.Children, c)
	g.handles = append(g.handles, c.handles...)
	c.handles = nil
}

// Handles returns the number of resource handles g currently owns.
func (g *Subgraph) Handles() int { return len(g.handles) }

// Dispose releases every owned handle. All handles are attempted; failures
// are joined. A disposed subgraph owns nothing, so a second call is a no-op.
func (g *Subgraph) Dispose() error {
	var errs []error
	for _, h := range g.handles {
		if err := h.Dispose(); err != nil {
			errs = append(errs, err)
		}
	}
	g.handles = nil
	return errors.Join(errs...)
}

// Traverse visits primitives depth-first in insertion order: g's own
// primitives first, then each child.
func (g *Subgraph) Traverse(fn func(*Primitive)) {
	for _, p := range g.Primitives {
		fn(p)
	}
	for _, c := range g.Children {
		c.Traverse(fn)
	}
}

// Len is the total number of primitives in the tree.
func (g *Subgraph) Len() int {
	n := 0
	g.Traverse(func(*Primitive) { n++ })
	return n
}

// Count returns how many primitives of kind k the tree holds.
func (g *Subgraph) Count(k Kind) int {
	n := 0
	g.Traverse(func(p *Primitive) {
		if p.Kind == k {
			n++
		}
	})
	return n
}

// Collect returns the primitives of kind k in traversal order.
func (g *Subgraph) Collect(k Kind) []*Primitive {
	var out []*Primitive
	g.Traverse(func(p *Primitive) {
		if p.Kind == k {
			out = append(out, p)
		}
	})
	return out
}

// Histogram counts primitives per kind.
func (g *Subgraph) Histogram() map[Kind]int {
	h := make(map[Kind]int)
	g.Traverse(func(p *Primitive) { h[p.Kind]++ })
	return h
}
