// Package arch models the declared structure of one node in a distributed
// publish/subscribe architecture: its endpoints, callbacks, and the latency
// paths through it. Values are built once by an extraction layer and are
// immutable afterwards, so they can be read concurrently without locks.
package arch

// NodeIdentity is the architecture-level key for a node. NodeID
// disambiguates when several node instances share a name; it is empty when
// the extraction layer did not assign one.
type NodeIdentity struct {
	nodeName string
	nodeID   string
}

// NewNodeIdentity creates an identity. Pass an empty nodeID when no
// disambiguating id exists.
func NewNodeIdentity(nodeName, nodeID string) NodeIdentity {
	return NodeIdentity{nodeName: nodeName, nodeID: nodeID}
}

// NodeName returns the node name.
func (i NodeIdentity) NodeName() string {
	return i.nodeName
}

// NodeID returns the disambiguating id and whether one was assigned.
func (i NodeIdentity) NodeID() (string, bool) {
	return i.nodeID, i.nodeID != ""
}

// Equal reports field-wise equality.
func (i NodeIdentity) Equal(other NodeIdentity) bool {
	return i == other
}

// Hash returns a structural hash consistent with Equal.
func (i NodeIdentity) Hash() uint64 {
	return hashFields("node_identity", i.nodeName, i.nodeID)
}
