// Package node implements the switchboard/shaftline power-balance
// solver: symmetric/asymmetric load sharing among running sources,
// capacity redistribution when a source would be overloaded, and
// base_load_order promotion of priority sources (spec §4.6, §4.7).
package node

// Kind distinguishes an electrical switchboard from a mechanical
// shaftline; both share the same balance algorithm (spec §4.7: "same
// algebra but simpler").
type Kind int

const (
	KindSwitchboard Kind = iota
	KindShaftline
)

// Node is a bus hosting components partitioned by role. Per the
// "flat arena" redesign note (spec §9), a Node holds indices into an
// externally-owned component arena rather than owning components
// directly; bus-tie/PTI-PTO cross-links are likewise plain indexed
// references, not true graph cycles.
type Node struct {
	ID           uint32
	Kind         Kind
	SourceIdx    []int
	ConsumerIdx  []int
	StorageIdx   []int
	PTIPTOIdx    []int
	BusTiePeers  []uint32 // ids of nodes this node can pool with when the tie is closed
}

// New constructs an empty Node.
func New(id uint32, kind Kind) Node {
	return Node{ID: id, Kind: kind}
}
