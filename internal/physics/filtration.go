package physics

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"
)

// Bar is one persistence interval.
type Bar struct{ Birth, Death float64 }

// Barcode is the approximate persistence of a point cloud. H0 has one bar
// per point; survivors keep Death = +Inf. H1 bars are born at each edge
// that closes a cycle and die after a random fraction of the max radius.
type Barcode struct {
	H0 []Bar
	H1 []Bar
	// Merges counts union events, i.e. finite H0 deaths.
	Merges int
}

// PairEdge is a point pair with its distance.
type PairEdge struct {
	I, J int
	Dist float64
}

// PairwiseEdges returns every pair of points sorted by distance. Ties keep
// index order.
func PairwiseEdges(points []Vec2) []PairEdge {
	n := len(points)
	edges := make([]PairEdge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, PairEdge{I: i, J: j, Dist: points[i].Dist(points[j])})
		}
	}
	slices.SortStableFunc(edges, func(a, b PairEdge) int { return cmp.Compare(a.Dist, b.Dist) })
	return edges
}

// DSU is a disjoint-set forest with path compression.
type DSU struct{ parent []int }

func NewDSU(n int) *DSU {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &DSU{parent: p}
}

func (d *DSU) Find(i int) int {
	root := i
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[i] != root {
		d.parent[i], i = root, d.parent[i]
	}
	return root
}

// Union attaches i's root under j's root and reports whether they differed.
func (d *DSU) Union(i, j int) bool {
	ri, rj := d.Find(i), d.Find(j)
	if ri == rj {
		return false
	}
	d.parent[ri] = rj
	return true
}

// Filtration sweeps the sorted edges through a DSU. Every component is
// born at 0; on a merge the later-born root dies at the edge distance,
// with ties resolved against the first endpoint's root.
func Filtration(points []Vec2, maxRadius float64, rng *rand.Rand) Barcode {
	bc := Barcode{H0: make([]Bar, len(points))}
	for i := range bc.H0 {
		bc.H0[i] = Bar{Birth: 0, Death: math.Inf(1)}
	}
	if len(points) < 2 {
		return bc
	}

	dsu := NewDSU(len(points))
	for _, e := range PairwiseEdges(points) {
		ri, rj := dsu.Find(e.I), dsu.Find(e.J)
		if ri == rj {
			bc.H1 = append(bc.H1, Bar{Birth: e.Dist, Death: e.Dist + maxRadius*(0.2+rng.Float64()*0.8)})
			continue
		}
		if bc.H0[ri].Birth < bc.H0[rj].Birth {
			bc.H0[rj].Death = e.Dist
		} else {
			bc.H0[ri].Death = e.Dist
		}
		dsu.Union(e.I, e.J)
		bc.Merges++
	}
	return bc
}
