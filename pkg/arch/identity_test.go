package arch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeIdentity_Equal(t *testing.T) {
	tests := []struct {
		name  string
		a, b  NodeIdentity
		equal bool
	}{
		{
			name:  "same name and id",
			a:     NewNodeIdentity("nodeA", "id0"),
			b:     NewNodeIdentity("nodeA", "id0"),
			equal: true,
		},
		{
			name:  "same name, both without id",
			a:     NewNodeIdentity("nodeA", ""),
			b:     NewNodeIdentity("nodeA", ""),
			equal: true,
		},
		{
			name:  "different name",
			a:     NewNodeIdentity("nodeA", "id0"),
			b:     NewNodeIdentity("nodeB", "id0"),
			equal: false,
		},
		{
			name:  "different id",
			a:     NewNodeIdentity("nodeA", "id0"),
			b:     NewNodeIdentity("nodeA", "id1"),
			equal: false,
		},
		{
			name:  "id present vs absent",
			a:     NewNodeIdentity("nodeA", "id0"),
			b:     NewNodeIdentity("nodeA", ""),
			equal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
			assert.Equal(t, tt.equal, tt.b.Equal(tt.a))
			if tt.equal {
				assert.Equal(t, tt.a.Hash(), tt.b.Hash())
			}
		})
	}
}

func TestNodeIdentity_Accessors(t *testing.T) {
	id := NewNodeIdentity("nodeA", "instance-2")
	assert.Equal(t, "nodeA", id.NodeName())

	nodeID, ok := id.NodeID()
	assert.True(t, ok)
	assert.Equal(t, "instance-2", nodeID)

	anon := NewNodeIdentity("nodeA", "")
	_, ok = anon.NodeID()
	assert.False(t, ok)
}
