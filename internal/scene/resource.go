package scene

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Domain errors for resource handling.
var (
	// ErrAlreadyDisposed indicates a handle was released twice.
	ErrAlreadyDisposed = errors.New("scene: resource already disposed")
)

// Disposable is anything owning GPU-resident state that must be released
// explicitly.
type Disposable interface {
	Dispose() error
}

// ResourceKind names the three classes of GPU resource a primitive owns.
type ResourceKind int

const (
	GeometryResource ResourceKind = iota
	MaterialResource
	TextureResource
)

func (k ResourceKind) String() string {
	switch k {
	case GeometryResource:
		return "geometry"
	case MaterialResource:
		return "material"
	case TextureResource:
		return "texture"
	}
	return fmt.Sprintf("resource(%d)", int(k))
}

// Device issues GPU resource handles. Every call yields a distinct handle.
type Device interface {
	NewGeometry(shape Shape) *Geometry
	NewMaterial(spec MaterialSpec) *Material
	NewTexture(text string) *Texture
}

// handle is the shared bookkeeping of a GPU resource.
type handle struct {
	id       uint64
	kind     ResourceKind
	disposed bool
	owner    *Tracker
}

func (h *handle) ID() uint64         { return h.id }
func (h *handle) Kind() ResourceKind { return h.kind }
func (h *handle) Disposed() bool     { return h.disposed }

func (h *handle) Dispose() error {
	if h.disposed {
		return fmt.Errorf("%s #%d: %w", h.kind, h.id, ErrAlreadyDisposed)
	}
	h.disposed = true
	if h.owner != nil {
		h.owner.release(h.kind)
	}
	return nil
}

// Geometry is the vertex data of a primitive.
type Geometry struct {
	handle
	Shape Shape
}

// Material holds shading parameters.
type Material struct {
	handle
	MaterialSpec
}

// Texture is a rasterized label image.
type Texture struct {
	handle
	Text string
}

// Tracker is an in-memory Device that counts live and total allocations
// per resource kind. It is safe for concurrent use.
type Tracker struct {
	nextID atomic.Uint64
	live   [3]atomic.Int64
	total  [3]atomic.Int64
}

func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) alloc(kind ResourceKind) handle {
	t.live[kind].Add(1)
	t.total[kind].Add(1)
	return handle{id: t.nextID.Add(1), kind: kind, owner: t}
}

func (t *Tracker) release(kind ResourceKind) {
	t.live[kind].Add(-1)
}

func (t *Tracker) NewGeometry(shape Shape) *Geometry {
	return &Geometry{handle: t.alloc(GeometryResource), Shape: shape}
}

func (t *Tracker) NewMaterial(spec MaterialSpec) *Material {
	return &Material{handle: t.alloc(MaterialResource), MaterialSpec: spec}
}

func (t *Tracker) NewTexture(text string) *Texture {
	return &Texture{handle: t.alloc(TextureResource), Text: text}
}

// Live returns the number of undisposed resources across all kinds.
func (t *Tracker) Live() int {
	var n int64
	for i := range t.live {
		n += t.live[i].Load()
	}
	return int(n)
}

// LiveOf returns the number of undisposed resources of one kind.
func (t *Tracker) LiveOf(kind ResourceKind) int { return int(t.live[kind].Load()) }

// Total returns the number of resources ever allocated.
func (t *Tracker) Total() int {
	var n int64
	for i := range t.total {
		n += t.total[i].Load()
	}
	return int(n)
}
