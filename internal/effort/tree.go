// Package effort builds an id-addressed arena over the flat project list and
// rolls recorded effort values up the work-breakdown forest.
package effort

import (
	"sort"

	"staffplan/internal/domain"
)

// node is one arena slot. Relationships are arena indexes, not pointers, so
// the forest carries no circular references.
type node struct {
	project  *domain.Project
	children []int
}

// Forest is an arena of project nodes with explicit child-index lists, built
// by a map-then-link pass over the flat project list.
type Forest struct {
	nodes []node
	byID  map[string]int
	roots []int
}

// BuildForest arranges projects into a forest. A project whose parent id does
// not resolve is treated as a root, so a partially loaded document still
// produces a usable tree. Children and roots are ordered by project code for
// stable traversal.
func BuildForest(projects []*domain.Project) *Forest {
	f := &Forest{byID: make(map[string]int, len(projects))}

	for _, p := range projects {
		f.byID[p.ID] = len(f.nodes)
		f.nodes = append(f.nodes, node{project: p})
	}

	for i, n := range f.nodes {
		p := n.project
		if p.ParentID != nil {
			if parentIdx, ok := f.byID[*p.ParentID]; ok {
				f.nodes[parentIdx].children = append(f.nodes[parentIdx].children, i)
				continue
			}
		}
		f.roots = append(f.roots, i)
	}

	byCode := func(indexes []int) {
		sort.Slice(indexes, func(a, b int) bool {
			return f.nodes[indexes[a]].project.Code < f.nodes[indexes[b]].project.Code
		})
	}
	byCode(f.roots)
	for i := range f.nodes {
		byCode(f.nodes[i].children)
	}

	return f
}

// Size returns the number of nodes in the forest.
func (f *Forest) Size() int { return len(f.nodes) }

// Project returns the project stored under id, or nil if absent.
func (f *Forest) Project(id string) *domain.Project {
	idx, ok := f.byID[id]
	if !ok {
		return nil
	}
	return f.nodes[idx].project
}

// RootIDs returns the ids of all root nodes in code order.
func (f *Forest) RootIDs() []string {
	return f.idsOf(f.roots)
}

// ChildIDs returns the ids of a node's direct children in code order.
func (f *Forest) ChildIDs(id string) []string {
	idx, ok := f.byID[id]
	if !ok {
		return nil
	}
	return f.idsOf(f.nodes[idx].children)
}

// IsLeaf reports whether the node has no children. Unknown ids are leaves.
func (f *Forest) IsLeaf(id string) bool {
	idx, ok := f.byID[id]
	if !ok {
		return true
	}
	return len(f.nodes[idx].children) == 0
}

// WalkPostOrder visits every node of the forest, children before parents.
func (f *Forest) WalkPostOrder(visit func(p *domain.Project, isLeaf bool)) {
	var walk func(idx int)
	walk = func(idx int) {
		for _, child := range f.nodes[idx].children {
			walk(child)
		}
		visit(f.nodes[idx].project, len(f.nodes[idx].children) == 0)
	}
	for _, root := range f.roots {
		walk(root)
	}
}

// SubtreeIDs returns id and all its descendants in pre-order. Unknown ids
// yield an empty slice.
func (f *Forest) SubtreeIDs(id string) []string {
	idx, ok := f.byID[id]
	if !ok {
		return nil
	}
	var ids []string
	var walk func(i int)
	walk = func(i int) {
		ids = append(ids, f.nodes[i].project.ID)
		for _, child := range f.nodes[i].children {
			walk(child)
		}
	}
	walk(idx)
	return ids
}

func (f *Forest) idsOf(indexes []int) []string {
	ids := make([]string, 0, len(indexes))
	for _, idx := range indexes {
		ids = append(ids, f.nodes[idx].project.ID)
	}
	return ids
}
