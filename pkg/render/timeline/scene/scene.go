package scene

import "github.com/matzehuels/timesnake/pkg/render/timeline/path"

// Scene is an ordered collection of drawable elements. Order is draw order:
// later elements paint over earlier ones. A Scene is owned by its caller and
// is not safe for concurrent mutation.
type Scene struct {
	elems []Element
}

// New returns an empty scene.
func New() *Scene { return &Scene{} }

// Add appends elements in the given order.
func (s *Scene) Add(e ...Element) { s.elems = append(s.elems, e...) }

// Elements returns the elements in draw order.
func (s *Scene) Elements() []Element { return append([]Element(nil), s.elems...) }

func (s *Scene) Len() int { return len(s.elems) }

// Counts returns the number of elements of each kind.
func (s *Scene) Counts() map[Kind]int {
	c := make(map[Kind]int, 3)
	for _, e := range s.elems {
		c[e.Kind()]++
	}
	return c
}

// Bounds returns the union of all element bounds. ok is false for an empty
// scene.
func (s *Scene) Bounds() (r path.Rect, ok bool) {
	for i, e := range s.elems {
		if i == 0 {
			r = e.Bounds()
			continue
		}
		r = r.Union(e.Bounds())
	}
	return r, len(s.elems) > 0
}
