package arch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNode_Summary(t *testing.T) {
	group := NewCallbackGroup("nodeA", "group0", CallbackGroupKindMutuallyExclusive, []Callback{
		NewSubscriptionCallback("nodeA", "cb0", "Sym", "/in", Known([]string{"/out"})),
	})
	node := NewNode(
		"nodeA",
		[]Publisher{NewPublisher("nodeA", "/out", Known([]string{"cb0"}))},
		[]Subscription{NewSubscription("nodeA", "/in", "cb0")},
		nil,
		Known([]CallbackGroup{group}),
		Unknown[VariablePassing](),
		nil,
	)

	rendered := node.Summary().String()

	// The rendering must be parseable YAML with the expected content.
	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(rendered), &decoded))

	assert.Equal(t, "nodeA", decoded["node"])
	assert.Equal(t, []any{"/out"}, decoded["publish_topics"])
	assert.Equal(t, []any{"/in"}, decoded["subscribe_topics"])
	assert.Equal(t, []any{"cb0"}, decoded["callbacks"])
	assert.NotNil(t, decoded["callback_groups"])
}

// Unknown information renders as null, known-empty as an empty sequence.
func TestNode_SummaryUnknownVsEmpty(t *testing.T) {
	unknown := NewNode("nodeA", nil, nil, nil,
		Unknown[CallbackGroup](), Unknown[VariablePassing](), nil)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(unknown.Summary().String()), &decoded))
	assert.Nil(t, decoded["callbacks"])
	assert.Nil(t, decoded["callback_groups"])
	assert.Equal(t, []any{}, decoded["publish_topics"])

	empty := NewNode("nodeA", nil, nil, nil,
		Known([]CallbackGroup{}), Unknown[VariablePassing](), nil)

	require.NoError(t, yaml.Unmarshal([]byte(empty.Summary().String()), &decoded))
	assert.Equal(t, []any{}, decoded["callbacks"])
	assert.Equal(t, []any{}, decoded["callback_groups"])
}

func TestLeafSummaries(t *testing.T) {
	pub := NewPublisher("nodeA", "/out", Unknown[string]())
	assert.Equal(t, "/out", pub.Summary()["topic"])
	assert.Nil(t, pub.Summary()["callbacks"])

	cb := NewTimerCallback("nodeA", "tick", "Sym", 100, Unknown[string]())
	sum := cb.Summary()
	assert.Equal(t, "timer_callback", sum["kind"])
	assert.Equal(t, int64(100), sum["period_ns"])

	ctx := NewMessageContext(ContextKindUseLatestMessage, "nodeA", "/in", "/out", nil)
	assert.Equal(t, "use_latest_message", ctx.Summary()["kind"])

	sub := NewSubscription("nodeA", "/in", "cb0")
	path := NewNodePath("nodeA", &sub, nil, []string{"cb0"}, nil)
	pathSum := path.Summary()
	assert.Equal(t, "/in", pathSum["subscribe_topic"])
	_, hasPub := pathSum["publish_topic"]
	assert.False(t, hasPub)
}
