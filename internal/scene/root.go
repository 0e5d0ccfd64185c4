package scene

// Root is the persistent top of the scene. Hosts draw whatever is attached.
type Root struct {
	children []*Subgraph
}

func NewRoot() *Root {
	return &Root{}
}

// Attach appends g. Tag uniqueness is the caller's concern.
func (r *Root) Attach(g *Subgraph) {
	r.children = append(r.children, g)
}

// Detach removes every child named name and returns the first one removed,
// or nil when none matched.
func (r *Root) Detach(name string) *Subgraph {
	var first *Subgraph
	kept := r.children[:0]
	for _, c := range r.children {
		if c.Name == name {
			if first == nil {
				first = c
			}
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(r.children); i++ {
		r.children[i] = nil
	}
	r.children = kept
	return first
}

// Find returns the first child named name.
func (r *Root) Find(name string) *Subgraph {
	for _, c := range r.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Children returns a copy of the attached subgraphs.
func (r *Root) Children() []*Subgraph {
	out := make([]*Subgraph, len(r.children))
	copy(out, r.children)
	return out
}

// Len is the number of attached subgraphs.
func (r *Root) Len() int { return len(r.children) }

// Traverse visits every primitive of every attached subgraph.
func (r *Root) Traverse(fn func(*Primitive)) {
	for _, c := range r.children {
		c.Traverse(fn)
	}
}
