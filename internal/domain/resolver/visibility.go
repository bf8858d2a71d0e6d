// Package resolver decides what an actor may see, what price applies at an instant,
// and which records belong to whom. Every function is pure over the snapshot it is given;
// the current time is always an explicit argument.
package resolver

import (
	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryNode is a category placed in the display tree.
type CategoryNode struct {
	Category *entity.Category `json:"category"`
	Children []*CategoryNode  `json:"children"`
}

// CategoryIndex answers visibility lookups and exposes the category tree.
type CategoryIndex struct {
	nodes map[uuid.UUID]*CategoryNode
	roots []*CategoryNode
}

// BuildIndex arranges categories into a tree. Input order does not matter. Children whose
// parent is missing, and the node that closes a parent cycle, become roots.
func BuildIndex(categories []*entity.Category) *CategoryIndex {
	idx := &CategoryIndex{
		nodes: make(map[uuid.UUID]*CategoryNode, len(categories)),
	}

	// Pass 1: arena. Duplicate ids keep the first row.
	order := make([]uuid.UUID, 0, len(categories))
	for _, c := range categories {
		if c == nil {
			continue
		}
		if _, dup := idx.nodes[c.ID]; dup {
			continue
		}
		idx.nodes[c.ID] = &CategoryNode{Category: c, Children: []*CategoryNode{}}
		order = append(order, c.ID)
	}

	// Pass 2: decide each node's effective parent, breaking cycles as they are found.
	parents := make(map[uuid.UUID]uuid.UUID, len(order))
	for _, id := range order {
		parentID := idx.nodes[id].Category.ParentID
		if parentID == nil {
			continue
		}
		if _, ok := idx.nodes[*parentID]; !ok {
			continue
		}
		if closesCycle(parents, id, *parentID) {
			continue
		}
		parents[id] = *parentID
	}

	// Pass 3: attach in input order so sibling order is stable.
	for _, id := range order {
		node := idx.nodes[id]
		if parentID, ok := parents[id]; ok {
			parent := idx.nodes[parentID]
			parent.Children = append(parent.Children, node)

			continue
		}
		idx.roots = append(idx.roots, node)
	}

	return idx
}

// closesCycle walks up from parentID along the edges accepted so far and reports
// whether it reaches id. The visited set bounds the walk even on corrupt input.
func closesCycle(parents map[uuid.UUID]uuid.UUID, id, parentID uuid.UUID) bool {
	visited := make(map[uuid.UUID]struct{})
	current := parentID
	for {
		if current == id {
			return true
		}
		if _, seen := visited[current]; seen {
			return false
		}
		visited[current] = struct{}{}

		next, ok := parents[current]
		if !ok {
			return false
		}
		current = next
	}
}

// IsVisible returns the visibility flag of exactly that row. Unknown ids are visible
// so a dangling category reference never hides a product.
func (idx *CategoryIndex) IsVisible(id uuid.UUID) bool {
	node, ok := idx.nodes[id]
	if !ok {
		return true
	}

	return node.Category.IsVisible
}

// IsRefVisible is IsVisible for a nullable product->category reference.
func (idx *CategoryIndex) IsRefVisible(id *uuid.UUID) bool {
	if id == nil {
		return true
	}

	return idx.IsVisible(*id)
}

// IsKnown reports whether id resolves to a category row.
func (idx *CategoryIndex) IsKnown(id uuid.UUID) bool {
	_, ok := idx.nodes[id]

	return ok
}

// Tree returns the full tree, hidden categories included.
func (idx *CategoryIndex) Tree() []*CategoryNode {
	return idx.roots
}

// VisibleTree returns a copy of the tree without hidden categories. Visible descendants
// of a hidden category take its place, since visibility is not inherited.
func (idx *CategoryIndex) VisibleTree() []*CategoryNode {
	return visibleNodes(idx.roots)
}

type pruneFrame struct {
	source []*CategoryNode
	target *[]*CategoryNode
}

func visibleNodes(roots []*CategoryNode) []*CategoryNode {
	result := []*CategoryNode{}
	stack := []pruneFrame{{source: roots, target: &result}}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Walk the source level in order. Hidden nodes splice their children into
		// the same target, visible nodes get a fresh copy with its own target.
		pending := append([]*CategoryNode(nil), frame.source...)
		for len(pending) > 0 {
			node := pending[0]
			pending = pending[1:]

			if !node.Category.IsVisible {
				pending = append(append([]*CategoryNode(nil), node.Children...), pending...)

				continue
			}

			clone := &CategoryNode{Category: node.Category, Children: []*CategoryNode{}}
			*frame.target = append(*frame.target, clone)
			if len(node.Children) > 0 {
				stack = append(stack, pruneFrame{source: node.Children, target: &clone.Children})
			}
		}
	}

	return result
}
