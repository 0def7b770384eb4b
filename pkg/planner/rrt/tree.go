package rrt

import "github.com/itohio/slam/pkg/geometry"

// noParent marks the root node of a tree.
const noParent = -1

// treeNode is a single RRT tree vertex, referencing its parent by index
// into the owning tree's arena rather than by pointer. This avoids
// parent-pointer reference cycles and makes the whole tree trivially
// freed when the arena goes out of scope.
type treeNode struct {
	location geometry.Point
	parent   int
}

// tree is an arena-backed RRT search tree rooted at index 0.
type tree struct {
	nodes []treeNode
}

func newTree(root geometry.Point) *tree {
	return &tree{nodes: []treeNode{{location: root, parent: noParent}}}
}

func (t *tree) add(location geometry.Point, parent int) int {
	t.nodes = append(t.nodes, treeNode{location: location, parent: parent})
	return len(t.nodes) - 1
}

func (t *tree) len() int {
	return len(t.nodes)
}

// nearest returns the index of the tree node closest (Euclidean) to
// target.
func (t *tree) nearest(target geometry.Point) int {
	best := 0
	bestDist := t.nodes[0].location.DistanceTo(target)
	for i := 1; i < len(t.nodes); i++ {
		d := t.nodes[i].location.DistanceTo(target)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// chainToRoot walks the parent chain from idx back to the root,
// returning the visited nodes in leaf-to-root order (idx first, the
// root node last).
func (t *tree) chainToRoot(idx int) []treeNode {
	var chain []treeNode
	for idx != noParent {
		chain = append(chain, t.nodes[idx])
		idx = t.nodes[idx].parent
	}
	return chain
}
