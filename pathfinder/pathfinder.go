package pathfinder

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/justmytwospence/firsttracks/aspect"
	"github.com/justmytwospence/firsttracks/raster"
)

// neighborOffsets holds the (dx, dy) offset for each of the 8-connected
// neighbors, in the fixed N, NE, E, SE, S, SW, W, NW order used elsewhere
// in this module so successor generation is deterministic.
var neighborOffsets = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// FindPath searches r from start to end under the constraints in opts,
// returning the least-cost path and search statistics, or ErrNoPath if the
// frontier empties before reaching end.
func FindPath(r *raster.Raster, start, end raster.Pixel, opts ...Option) (*Path, *Stats, error) {
	if r == nil || r.Elevation == nil || r.Azimuth == nil || r.Slope == nil {
		return nil, nil, ErrNilRaster
	}
	if !r.Elevation.SameDimensions(r.Azimuth) || !r.Elevation.SameDimensions(r.Slope) {
		return nil, nil, ErrDimensionMismatch
	}
	if !r.Elevation.InBounds(start.X, start.Y) || !r.Elevation.InBounds(end.X, end.Y) {
		return nil, nil, ErrOutOfBounds
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	run := &runner{r: r, cfg: cfg, end: end}
	run.stats = Stats{
		Width:                r.Width(),
		Height:               r.Height(),
		Start:                start,
		End:                  end,
		StraightLineDistance: distanceMeters(start, end),
	}
	if run.stats.StraightLineDistance > 0 {
		run.stats.StraightLineGradient = (r.Elevation.At(end.X, end.Y) - r.Elevation.At(start.X, start.Y)) / run.stats.StraightLineDistance
	}

	return run.search(start, end)
}

// runner holds the mutable state of a single FindPath execution, split from
// the top-level validation in FindPath so the search loop itself stays
// free of error-return plumbing.
type runner struct {
	r   *raster.Raster
	cfg Options
	end raster.Pixel

	gScore  map[raster.Pixel]int64
	parent  map[raster.Pixel]raster.Pixel
	visited map[raster.Pixel]bool
	pq      nodePQ

	stats Stats
}

func (run *runner) search(start, end raster.Pixel) (*Path, *Stats, error) {
	run.gScore = map[raster.Pixel]int64{start: 0}
	run.parent = make(map[raster.Pixel]raster.Pixel)
	run.visited = make(map[raster.Pixel]bool)
	run.pq = make(nodePQ, 0, 64)

	heap.Init(&run.pq)
	heap.Push(&run.pq, &node{pixel: start, g: 0, f: run.heuristic(start)})

	if run.cfg.Observer != nil {
		defer run.cfg.Observer.Flush()
	}

	for run.pq.Len() > 0 {
		cur := heap.Pop(&run.pq).(*node)
		if run.visited[cur.pixel] {
			continue
		}
		run.visited[cur.pixel] = true
		run.stats.NodesExplored++

		if run.cfg.Observer != nil {
			run.cfg.Observer.Visit(cur.pixel)
		}

		if cur.pixel == end {
			return run.reconstruct(end), &run.stats, nil
		}

		run.expand(cur)
	}

	return nil, &run.stats, ErrNoPath
}

// expand generates the successors of cur. The first aspect-blocked
// neighbor encountered aborts generation of every remaining neighbor for
// cur, even ones not yet examined — see the package doc for why.
func (run *runner) expand(cur *node) {
	e, a, g := run.r.Elevation, run.r.Azimuth, run.r.Slope
	width, height := e.Width, e.Height

	for _, d := range neighborOffsets {
		nx, ny := cur.pixel.X+d[0], cur.pixel.Y+d[1]
		if nx < 0 || nx >= width || ny < 0 || ny >= height {
			continue
		}
		np := raster.Pixel{X: nx, Y: ny}
		if run.visited[np] {
			continue
		}

		neighborSlope := g.At(nx, ny)
		if neighborSlope > run.cfg.AspectGradientThreshold && aspectBlocked(a.At(nx, ny), run.cfg.ExcludedAspects) {
			return
		}

		dist := distanceMeters(cur.pixel, np)
		dz := e.At(nx, ny) - e.At(cur.pixel.X, cur.pixel.Y)
		slope := dz / dist
		if slope >= run.cfg.MaxGradient {
			continue
		}

		cost := edgeCost(dist, slope)
		tentative := cur.g + cost
		if existing, ok := run.gScore[np]; ok && tentative >= existing {
			continue
		}

		run.gScore[np] = tentative
		run.parent[np] = cur.pixel
		heap.Push(&run.pq, &node{pixel: np, g: tentative, f: tentative + run.heuristic(np)})
	}
}

// aspectBlocked reports whether azimuth falls within any excluded aspect's
// arc, with the fixed 2.5-degree tolerance.
func aspectBlocked(azimuth float64, excluded []aspect.Aspect) bool {
	for _, ex := range excluded {
		if ex.Contains(azimuth, aspectTolerance) {
			return true
		}
	}

	return false
}

// distanceMeters is the Euclidean ground distance between two pixels under
// the fixed pixel size.
func distanceMeters(a, b raster.Pixel) float64 {
	dx := float64(b.X-a.X) * raster.PixelSizeMeters
	dy := float64(b.Y-a.Y) * raster.PixelSizeMeters

	return math.Sqrt(dx*dx + dy*dy)
}

// edgeCost computes the integer move cost for a step of length dist meters
// with gradient slope: a linear multiplier clamped to [1, 20], floored
// after multiplication.
func edgeCost(dist, slope float64) int64 {
	multiplier := 20 * slope
	if multiplier < 1 {
		multiplier = 1
	}
	if multiplier > 20 {
		multiplier = 20
	}

	return int64(math.Floor(dist * multiplier))
}

// heuristic is the consistent A* heuristic: straight-line distance in
// meters from p to the search's end pixel.
func (run *runner) heuristic(p raster.Pixel) int64 {
	return int64(math.Floor(distanceMeters(p, run.end)))
}

// reconstruct walks the parent map backward from end to build the ordered
// Path, attaching per-point georeferenced attributes along the way.
func (run *runner) reconstruct(end raster.Pixel) *Path {
	var pixels []raster.Pixel
	for p := end; ; {
		pixels = append(pixels, p)
		parent, hasParent := run.parent[p]
		if !hasParent {
			break
		}
		p = parent
	}
	// Reverse into start-to-end order.
	for i, j := 0, len(pixels)-1; i < j; i, j = i+1, j-1 {
		pixels[i], pixels[j] = pixels[j], pixels[i]
	}

	points := make([]PathPoint, 0, len(pixels))
	for _, p := range pixels {
		az := run.r.Azimuth.At(p.X, p.Y)
		lon, lat := run.r.Geo.PixelToLonLat(p)
		points = append(points, PathPoint{
			Lon:       lon,
			Lat:       lat,
			Elevation: run.r.Elevation.At(p.X, p.Y),
			Aspect:    aspect.FromAzimuth(az),
			Azimuth:   az,
		})
	}

	return &Path{Points: points, Cost: run.gScore[end]}
}

// formatAzimuth renders a degree bearing as the stringified form used for
// path-point attributes.
func formatAzimuth(azimuth float64) string {
	return fmt.Sprintf("%.1f", azimuth)
}

// node is one entry in the search's priority queue.
type node struct {
	pixel raster.Pixel
	g     int64
	f     int64
}

// nodePQ is a min-heap of *node ordered by f = g + h, using a lazy
// decrease-key: a cheaper path to an already-queued pixel is pushed as a
// new entry, and the stale one is skipped on pop via runner.visited.
type nodePQ []*node

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].f < pq[j].f }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*node)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
