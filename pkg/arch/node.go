package arch

import "slices"

// Node is the immutable read-model of one node's declared structure. It is
// built once by the extraction layer and shared with analysis consumers;
// every method is a pure read, so unsynchronized concurrent reads are safe.
type Node struct {
	nodeName         string
	publishers       []Publisher
	subscriptions    []Subscription
	paths            []NodePath
	callbackGroups   Optional[CallbackGroup]
	variablePassings Optional[VariablePassing]
	messageContexts  []MessageContext
}

// NewNode assembles a node structure. Sequence order is preserved exactly
// as declared, including duplicate topic names. Prefer NodeBuilder, which
// validates its inputs.
func NewNode(
	nodeName string,
	publishers []Publisher,
	subscriptions []Subscription,
	paths []NodePath,
	callbackGroups Optional[CallbackGroup],
	variablePassings Optional[VariablePassing],
	messageContexts []MessageContext,
) *Node {
	return &Node{
		nodeName:         nodeName,
		publishers:       slices.Clone(publishers),
		subscriptions:    slices.Clone(subscriptions),
		paths:            slices.Clone(paths),
		callbackGroups:   callbackGroups,
		variablePassings: variablePassings,
		messageContexts:  slices.Clone(messageContexts),
	}
}

// NodeName returns the node name, unique within one architecture snapshot.
func (n *Node) NodeName() string {
	return n.nodeName
}

// Identity returns the node's architecture-level identity. The structural
// snapshot itself carries no disambiguating id.
func (n *Node) Identity() NodeIdentity {
	return NewNodeIdentity(n.nodeName, "")
}

// Publishers returns the node's publishers in declared order.
func (n *Node) Publishers() []Publisher {
	return slices.Clone(n.publishers)
}

// Subscriptions returns the node's subscriptions in declared order.
func (n *Node) Subscriptions() []Subscription {
	return slices.Clone(n.subscriptions)
}

// Paths returns the modeled latency paths through the node.
func (n *Node) Paths() []NodePath {
	return slices.Clone(n.paths)
}

// CallbackGroups returns the node's callback groups; Unknown when they were
// not extracted for this node.
func (n *Node) CallbackGroups() Optional[CallbackGroup] {
	return n.callbackGroups
}

// VariablePassings returns the node's variable passings; Unknown when they
// were not extracted for this node.
func (n *Node) VariablePassings() Optional[VariablePassing] {
	return n.variablePassings
}

// MessageContexts returns the node's message contexts in declared order.
func (n *Node) MessageContexts() []MessageContext {
	return slices.Clone(n.messageContexts)
}

// PublishTopicNames projects the topic names of Publishers, same length and
// order, duplicates preserved.
func (n *Node) PublishTopicNames() []string {
	names := make([]string, len(n.publishers))
	for i, p := range n.publishers {
		names[i] = p.TopicName()
	}
	return names
}

// SubscribeTopicNames projects the topic names of Subscriptions, same
// length and order, duplicates preserved.
func (n *Node) SubscribeTopicNames() []string {
	names := make([]string, len(n.subscriptions))
	for i, s := range n.subscriptions {
		names[i] = s.TopicName()
	}
	return names
}

// Callbacks flattens the callback groups in group order, then in-group
// order. Unknown exactly when CallbackGroups is Unknown.
func (n *Node) Callbacks() Optional[Callback] {
	groups, ok := n.callbackGroups.Get()
	if !ok {
		return Unknown[Callback]()
	}
	callbacks := make([]Callback, 0)
	for _, g := range groups {
		callbacks = append(callbacks, g.Callbacks()...)
	}
	return Known(callbacks)
}

// CallbackNames projects the names of Callbacks, under the same Unknown
// condition.
func (n *Node) CallbackNames() Optional[string] {
	callbacks, ok := n.Callbacks().Get()
	if !ok {
		return Unknown[string]()
	}
	names := make([]string, len(callbacks))
	for i, cb := range callbacks {
		names[i] = cb.CallbackName()
	}
	return Known(names)
}

// CallbackGroupNames projects the names of CallbackGroups, under the same
// Unknown condition.
func (n *Node) CallbackGroupNames() Optional[string] {
	groups, ok := n.callbackGroups.Get()
	if !ok {
		return Unknown[string]()
	}
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.GroupName()
	}
	return Known(names)
}

// GetPublisher returns the publisher on topicName. When several publishers
// share the topic name, the first in declared order wins. Returns a
// LookupError wrapping ErrNotFound when no publisher matches.
func (n *Node) GetPublisher(topicName string) (Publisher, error) {
	for _, p := range n.publishers {
		if p.TopicName() == topicName {
			return p, nil
		}
	}
	return Publisher{}, newLookupError("GetPublisher", n.nodeName, CollectionPublishers, topicName)
}

// GetSubscription returns the subscription on topicName; the first in
// declared order wins under duplicates. Returns a LookupError wrapping
// ErrNotFound when no subscription matches.
func (n *Node) GetSubscription(topicName string) (Subscription, error) {
	for _, s := range n.subscriptions {
		if s.TopicName() == topicName {
			return s, nil
		}
	}
	return Subscription{}, newLookupError("GetSubscription", n.nodeName, CollectionSubscriptions, topicName)
}
