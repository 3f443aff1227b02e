package Trees

// A node in the LinkedBST. l and r exclusively own the children; there is
// no link back to the parent.
type node[T any] struct {
	v    T
	l, r *node[T]
}

// frame is a stack entry pairing a node with its depth. Used wherever a walk
// needs to know how far below the root it is without recursing.
type frame[T any] struct {
	n *node[T]
	d uint
}
