package geo

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

const (
	dimensions  = 2
	minChildren = 2
	maxChildren = 8

	// boundsPadding keeps degenerate (zero-width) bounding boxes valid for the R-tree.
	boundsPadding = 1e-9
)

// ringItem wraps one ring for R-tree indexing
type ringItem struct {
	ring orb.Ring
	rect *rtreego.Rect
}

func (r *ringItem) Bounds() *rtreego.Rect {
	return r.rect
}

// ZoneIndex answers "is this point inside any of these geometries" using an
// R-tree over ring bounding boxes followed by an exact ray-casting test.
// It is immutable after construction and safe for concurrent use.
type ZoneIndex struct {
	tree  *rtreego.Rtree
	rings int
}

// NewZoneIndex indexes every ring with at least three vertices.
func NewZoneIndex(geometries []orb.MultiPolygon) *ZoneIndex {
	tree := rtreego.NewTree(dimensions, minChildren, maxChildren)
	count := 0
	for _, geometry := range geometries {
		for _, polygon := range geometry {
			for _, ring := range polygon {
				if len(ring) < minRingVertices {
					continue
				}
				rect, err := boundsRect(ring.Bound())
				if err != nil {
					continue
				}
				tree.Insert(&ringItem{ring: ring, rect: rect})
				count++
			}
		}
	}

	return &ZoneIndex{
		tree:  tree,
		rings: count,
	}
}

// Len returns the number of indexed rings.
func (z *ZoneIndex) Len() int {
	return z.rings
}

// Contains reports whether point lies inside any indexed ring.
func (z *ZoneIndex) Contains(point orb.Point) bool {
	if z == nil || z.rings == 0 {
		return false
	}

	query := rtreego.Point{point[0], point[1]}.ToRect(boundsPadding)
	for _, candidate := range z.tree.SearchIntersect(query) {
		item, ok := candidate.(*ringItem)
		if !ok {
			continue
		}
		if PointInPolygon(point, item.ring) {
			return true
		}
	}

	return false
}

func boundsRect(bound orb.Bound) (*rtreego.Rect, error) {
	width := bound.Max[0] - bound.Min[0] + 2*boundsPadding
	height := bound.Max[1] - bound.Min[1] + 2*boundsPadding

	return rtreego.NewRect(
		rtreego.Point{bound.Min[0] - boundsPadding, bound.Min[1] - boundsPadding},
		[]float64{width, height},
	)
}
