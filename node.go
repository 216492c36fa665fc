package skipmap

// nodeID addresses a node inside the store's arena. The zero ID is the
// head sentinel, so a zero-valued splice journal already names head as
// the predecessor at every level.
type nodeID int32

const (
	headID nodeID = 0
	nilID  nodeID = -1
)

// node is a single entry: an immutable key, its value, and one forward
// link per level of its tower. len(next) is the tower height, fixed at
// allocation.
type node struct {
	key   []byte
	value []byte
	next  []nodeID
}

// nodeStore owns every node in the list. Nodes live in a single
// append-only arena and reference each other by index, so links cannot
// form cycles and no node identity escapes the store.
type nodeStore struct {
	arena []node
}

// newNodeStore returns a store holding only the head sentinel, which
// carries a forward slot for every level the list may ever use.
func newNodeStore(maxHeight int) *nodeStore {
	head := node{next: make([]nodeID, maxHeight)}
	for i := range head.next {
		head.next[i] = nilID
	}
	return &nodeStore{arena: []node{head}}
}

// alloc appends a node with the given tower height and returns its ID.
func (s *nodeStore) alloc(key, value []byte, height int) nodeID {
	n := node{key: key, value: value, next: make([]nodeID, height)}
	for i := range n.next {
		n.next[i] = nilID
	}
	s.arena = append(s.arena, n)
	return nodeID(len(s.arena) - 1)
}

// at returns the node for an ID. The pointer is invalidated by the next
// alloc; never hold it across one.
func (s *nodeStore) at(id nodeID) *node {
	return &s.arena[id]
}

// next returns the successor of id at the given level, or nilID.
func (s *nodeStore) next(id nodeID, level int) nodeID {
	return s.arena[id].next[level]
}

func (s *nodeStore) setNext(id nodeID, level int, succ nodeID) {
	s.arena[id].next[level] = succ
}

// len reports the number of entries, excluding the head sentinel.
func (s *nodeStore) len() int {
	return len(s.arena) - 1
}
