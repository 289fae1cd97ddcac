package array

import (
	arena "github.com/pavanmanishd/arenaindex"
)

// node is one index tree node. It lives in the arena, so it links to its
// children and its element by Ref. A node may hold an element and have
// children at the same time: position i ends at the depth where its base-W
// digits run out, so small positions end shallow.
type node struct {
	children arena.Ref // width child Refs; zero until the first descent
	item     arena.Ref
	size     uint64
}

// locate walks the index tree to the node addressing position i. Position i is
// read least significant base-width digit first: while i > 0 the walk descends
// into child i%width and continues with i/width.
//
// With create set, missing child tables and nodes are allocated on the way
// down. Without it, locate returns nil at the first missing link.
func (x *Array) locate(i int, create bool) (*node, error) {
	n := arena.At[node](x.arena, x.root)
	for i > 0 && n != nil {
		digit := i % x.width
		i /= x.width

		if n.children.IsZero() {
			if !create {
				return nil, nil
			}
			_, ref, err := arena.AllocSlice[arena.Ref](x.arena, x.width)
			if err != nil {
				return nil, err
			}
			n.children = ref
		}
		kids := arena.SliceAt[arena.Ref](x.arena, n.children, x.width)
		if kids[digit].IsZero() {
			if !create {
				return nil, nil
			}
			_, ref, err := arena.Alloc[node](x.arena)
			if err != nil {
				return nil, err
			}
			kids[digit] = ref
		}
		n = arena.At[node](x.arena, kids[digit])
	}
	return n, nil
}
