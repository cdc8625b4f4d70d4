package pmtiles

import (
	"container/heap"
	"math"
	"strconv"

	"shopradar/internal/geo"

	"github.com/paulmach/orb"
)

// NodeID identifies a node of the road graph.
type NodeID int64

// Edge is a directed edge of the road graph.
type Edge struct {
	To       NodeID
	Distance float64 // meters
	Duration float64 // seconds
}

// RoadGraph is the routable network built from one or more tiles.
// Points closer than about a meter share a node, which stitches tiles together.
type RoadGraph struct {
	Nodes    map[NodeID]orb.Point
	Edges    map[NodeID][]Edge
	nextID   int64
	pointMap map[string]NodeID
}

// NewRoadGraph creates an empty graph.
func NewRoadGraph() *RoadGraph {
	return &RoadGraph{
		Nodes:    make(map[NodeID]orb.Point),
		Edges:    make(map[NodeID][]Edge),
		pointMap: make(map[string]NodeID),
	}
}

// AddSegment adds a segment travelled at speedKmh. One-way roads only get a
// forward edge when directed is set.
func (g *RoadGraph) AddSegment(segment *RoadSegment, speedKmh float64, directed bool) {
	if len(segment.Points) < 2 || speedKmh <= 0 {
		return
	}

	prev := g.node(segment.Points[0])
	for i := 1; i < len(segment.Points); i++ {
		curr := g.node(segment.Points[i])
		if curr == prev {
			continue
		}

		dist := geo.PointDistanceMeters(segment.Points[i-1], segment.Points[i])
		duration := dist / 1000 / speedKmh * 3600

		g.Edges[prev] = append(g.Edges[prev], Edge{To: curr, Distance: dist, Duration: duration})
		if !directed || !segment.OneWay {
			g.Edges[curr] = append(g.Edges[curr], Edge{To: prev, Distance: dist, Duration: duration})
		}
		prev = curr
	}
}

func (g *RoadGraph) node(point orb.Point) NodeID {
	key := pointKey(point)
	if id, ok := g.pointMap[key]; ok {
		return id
	}

	g.nextID++
	id := NodeID(g.nextID)
	g.Nodes[id] = point
	g.pointMap[key] = id

	return id
}

// pointKey rounds to 5 decimals (about a meter).
func pointKey(p orb.Point) string {
	return strconv.FormatFloat(p[1], 'f', 5, 64) + "," + strconv.FormatFloat(p[0], 'f', 5, 64)
}

// NearestNode returns the node closest to point and its distance in meters.
func (g *RoadGraph) NearestNode(point orb.Point) (NodeID, float64, bool) {
	var (
		nearest NodeID
		found   bool
	)
	best := math.MaxFloat64
	for id, nodePoint := range g.Nodes {
		if dist := geo.PointDistanceMeters(point, nodePoint); dist < best || (dist == best && id < nearest) {
			best, nearest, found = dist, id, true
		}
	}

	return nearest, best, found
}

// Path is a shortest path through the graph.
type Path struct {
	Nodes    []NodeID
	Distance float64 // meters
	Duration float64 // seconds
}

// Points returns the coordinates of the path nodes.
func (g *RoadGraph) Points(path Path) []orb.Point {
	points := make([]orb.Point, 0, len(path.Nodes))
	for _, id := range path.Nodes {
		points = append(points, g.Nodes[id])
	}

	return points
}

type queueItem struct {
	id       NodeID
	distance float64
}

type priorityQueue []queueItem

func (pq priorityQueue) Len() int           { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool { return pq[i].distance < pq[j].distance }
func (pq priorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x any)        { *pq = append(*pq, x.(queueItem)) }

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// ShortestPath runs Dijkstra on edge distance. It reports false when target is unreachable.
func (g *RoadGraph) ShortestPath(source, target NodeID) (Path, bool) {
	if _, ok := g.Nodes[source]; !ok {
		return Path{}, false
	}
	if _, ok := g.Nodes[target]; !ok {
		return Path{}, false
	}

	dist := map[NodeID]float64{source: 0}
	duration := map[NodeID]float64{source: 0}
	prev := make(map[NodeID]NodeID)
	visited := make(map[NodeID]bool)

	pq := &priorityQueue{{id: source}}
	for pq.Len() > 0 {
		current := heap.Pop(pq).(queueItem)
		if visited[current.id] {
			continue
		}
		visited[current.id] = true

		if current.id == target {
			return Path{
				Nodes:    walkBack(prev, source, target),
				Distance: dist[target],
				Duration: duration[target],
			}, true
		}

		for _, edge := range g.Edges[current.id] {
			if visited[edge.To] {
				continue
			}
			candidate := current.distance + edge.Distance
			if known, ok := dist[edge.To]; ok && known <= candidate {
				continue
			}
			dist[edge.To] = candidate
			duration[edge.To] = duration[current.id] + edge.Duration
			prev[edge.To] = current.id
			heap.Push(pq, queueItem{id: edge.To, distance: candidate})
		}
	}

	return Path{}, false
}

func walkBack(prev map[NodeID]NodeID, source, target NodeID) []NodeID {
	nodes := []NodeID{target}
	for id := target; id != source; {
		id = prev[id]
		nodes = append(nodes, id)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return nodes
}
