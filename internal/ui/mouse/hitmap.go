// Package mouse maps rendered screen regions to identifiers so mouse
// events can be routed to what was drawn under the pointer.
package mouse

// Rect is a screen rectangle in cells, zero-based
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r covers no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Union returns the smallest rectangle covering both r and o
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1, y1 := max(r.X+r.W, o.X+o.W), max(r.Y+r.H, o.Y+o.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func (r Rect) area() int {
	return r.W * r.H
}

// Region is a named rectangle with optional data (e.g. a row index)
type Region struct {
	ID   string
	Rect Rect
	Data interface{}
}

// HitMap holds the regions of the last rendered frame
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty hit map
func NewHitMap() *HitMap {
	return &HitMap{}
}

// Clear removes all regions; call at the start of every frame
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// Add registers a region. Empty rectangles are ignored.
func (h *HitMap) Add(id string, rect Rect, data interface{}) {
	if rect.Empty() {
		return
	}
	h.regions = append(h.regions, Region{ID: id, Rect: rect, Data: data})
}

// HitTest returns the innermost region containing (x, y). When two regions
// of equal size overlap the later one wins.
func (h *HitMap) HitTest(x, y int) (Region, bool) {
	var best Region
	found := false
	for _, r := range h.regions {
		if !r.Rect.Contains(x, y) {
			continue
		}
		if !found || r.Rect.area() <= best.Rect.area() {
			best = r
			found = true
		}
	}
	return best, found
}

// Contains reports whether any region with the given id contains (x, y)
func (h *HitMap) Contains(id string, x, y int) bool {
	for _, r := range h.regions {
		if r.ID == id && r.Rect.Contains(x, y) {
			return true
		}
	}
	return false
}

// Find returns all regions with the given id in registration order
func (h *HitMap) Find(id string) []Region {
	var out []Region
	for _, r := range h.regions {
		if r.ID == id {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of registered regions
func (h *HitMap) Len() int {
	return len(h.regions)
}
