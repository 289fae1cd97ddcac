// Package array implements an indexed sequence stored entirely inside an
// arena.
//
// Elements and the index tree that locates them are allocated from the
// arena the array is bound to; nothing is freed individually. Push and Pop
// work at the tail, Get and Set address any position below Len.
//
// # Index Tree
//
// A position is located by its base-W digits, least significant first, where
// W is the width given at creation (DefaultWidth is 16). Position 0 is the
// root itself. For W = 10:
//
//	42   -> root.children[2].children[4]
//	198  -> root.children[8].children[9].children[1]
//	1024 -> root.children[4].children[2].children[0].children[1]
//
// Child tables and nodes are created on first use and never removed, so a
// Pop followed by a Push at the same length reuses the existing path and
// only allocates the element bytes. Lookups take O(log_W n) hops.
//
// # Lifetime
//
// An array shares its arena's lifetime. After the arena is reset the array
// is empty, and the next Push places a new root in the reset arena. After
// the arena is closed the array is empty and Push fails with arena.ErrClosed.
// Several arrays may share one arena; resetting it empties all of them.
package array
