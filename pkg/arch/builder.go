package arch

import (
	"fmt"

	"github.com/hollis-dev/pathscope/pkg/logging"
	"github.com/hollis-dev/pathscope/pkg/validation"
)

// NodeBuilder accumulates extraction-layer output for one node and freezes
// it into an immutable Node. Build is one-shot: the builder is not reused
// and is not safe for concurrent use.
type NodeBuilder struct {
	nodeName         string
	logger           logging.Logger
	publishers       []Publisher
	subscriptions    []Subscription
	paths            []NodePath
	callbackGroups   Optional[CallbackGroup]
	variablePassings Optional[VariablePassing]
	messageContexts  []MessageContext
}

// NewNodeBuilder starts a builder for the named node. Callback groups and
// variable passings stay Unknown unless set explicitly.
func NewNodeBuilder(nodeName string) *NodeBuilder {
	return &NodeBuilder{
		nodeName:         nodeName,
		logger:           logging.NewNopLogger(),
		callbackGroups:   Unknown[CallbackGroup](),
		variablePassings: Unknown[VariablePassing](),
	}
}

// WithLogger sets the logger used during Build.
func (b *NodeBuilder) WithLogger(logger logging.Logger) *NodeBuilder {
	b.logger = logger
	return b
}

// AddPublisher appends a publisher, keeping declared order.
func (b *NodeBuilder) AddPublisher(p Publisher) *NodeBuilder {
	b.publishers = append(b.publishers, p)
	return b
}

// AddSubscription appends a subscription, keeping declared order.
func (b *NodeBuilder) AddSubscription(s Subscription) *NodeBuilder {
	b.subscriptions = append(b.subscriptions, s)
	return b
}

// AddPath appends a node path, keeping declared order.
func (b *NodeBuilder) AddPath(p NodePath) *NodeBuilder {
	b.paths = append(b.paths, p)
	return b
}

// AddMessageContext appends a message context, keeping declared order.
func (b *NodeBuilder) AddMessageContext(m MessageContext) *NodeBuilder {
	b.messageContexts = append(b.messageContexts, m)
	return b
}

// SetCallbackGroups marks callback groups as extracted, possibly empty.
func (b *NodeBuilder) SetCallbackGroups(groups []CallbackGroup) *NodeBuilder {
	if groups == nil {
		groups = []CallbackGroup{}
	}
	b.callbackGroups = Known(groups)
	return b
}

// SetVariablePassings marks variable passings as extracted, possibly empty.
func (b *NodeBuilder) SetVariablePassings(passings []VariablePassing) *NodeBuilder {
	if passings == nil {
		passings = []VariablePassing{}
	}
	b.variablePassings = Known(passings)
	return b
}

// Build validates the accumulated inputs and freezes them into a Node.
func (b *NodeBuilder) Build() (*Node, error) {
	rec := &validation.NodeRecord{
		NodeName: b.nodeName,
	}
	for _, p := range b.publishers {
		rec.PublishTopics = append(rec.PublishTopics, p.TopicName())
	}
	for _, s := range b.subscriptions {
		rec.SubscribeTopics = append(rec.SubscribeTopics, s.TopicName())
	}
	if groups, ok := b.callbackGroups.Get(); ok {
		for _, g := range groups {
			rec.GroupNames = append(rec.GroupNames, g.GroupName())
			rec.CallbackNames = append(rec.CallbackNames, g.CallbackNames()...)
		}
	}
	if err := validation.ValidateNodeRecord(rec); err != nil {
		return nil, fmt.Errorf("build node %s: %w", b.nodeName, err)
	}

	b.logDuplicateTopics(CollectionPublishers, rec.PublishTopics)
	b.logDuplicateTopics(CollectionSubscriptions, rec.SubscribeTopics)

	node := NewNode(
		b.nodeName,
		b.publishers,
		b.subscriptions,
		b.paths,
		b.callbackGroups,
		b.variablePassings,
		b.messageContexts,
	)

	b.logger.Debug("node structure built",
		logging.Node(b.nodeName),
		logging.Int("publishers", len(b.publishers)),
		logging.Int("subscriptions", len(b.subscriptions)),
		logging.Int("paths", len(b.paths)),
		logging.Bool("callback_groups_known", b.callbackGroups.IsKnown()),
		logging.Bool("variable_passings_known", b.variablePassings.IsKnown()),
		logging.Int("message_contexts", len(b.messageContexts)),
	)
	return node, nil
}

// logDuplicateTopics notes duplicated topic names. Duplicates are legal and
// preserved; lookups resolve them first-match, which downstream analysis
// may want to know about.
func (b *NodeBuilder) logDuplicateTopics(collection string, topics []string) {
	seen := make(map[string]int, len(topics))
	for _, topic := range topics {
		seen[topic]++
	}
	for topic, count := range seen {
		if count > 1 {
			b.logger.Debug("duplicate topic name declared",
				logging.Node(b.nodeName),
				logging.Operation(collection),
				logging.Topic(topic),
				logging.Count(count),
			)
		}
	}
}
