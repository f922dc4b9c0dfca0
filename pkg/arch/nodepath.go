package arch

import "slices"

// NodePath is one modeled subscribe-to-publish latency path through a node:
// the callbacks it crosses plus the message context that ties the output
// occurrence to the input occurrence. Head paths have no subscription and
// tail paths have no publisher.
type NodePath struct {
	nodeName     string
	subscription *Subscription
	publisher    *Publisher
	childNames   []string
	context      *MessageContext
}

// NewNodePath creates a node path. Pass nil for an absent endpoint or
// context; childCallbackNames is the ordered list of callbacks crossed.
func NewNodePath(nodeName string, subscription *Subscription, publisher *Publisher, childCallbackNames []string, context *MessageContext) NodePath {
	p := NodePath{
		nodeName:   nodeName,
		childNames: slices.Clone(childCallbackNames),
	}
	if subscription != nil {
		s := *subscription
		p.subscription = &s
	}
	if publisher != nil {
		pub := *publisher
		p.publisher = &pub
	}
	if context != nil {
		c := *context
		p.context = &c
	}
	return p
}

// NodeName returns the owning node name.
func (p NodePath) NodeName() string {
	return p.nodeName
}

// Subscription returns the path's input endpoint, when present.
func (p NodePath) Subscription() (Subscription, bool) {
	if p.subscription == nil {
		return Subscription{}, false
	}
	return *p.subscription, true
}

// Publisher returns the path's output endpoint, when present.
func (p NodePath) Publisher() (Publisher, bool) {
	if p.publisher == nil {
		return Publisher{}, false
	}
	return *p.publisher, true
}

// SubscribeTopicName projects the input topic, when an input endpoint exists.
func (p NodePath) SubscribeTopicName() (string, bool) {
	if p.subscription == nil {
		return "", false
	}
	return p.subscription.TopicName(), true
}

// PublishTopicName projects the output topic, when an output endpoint exists.
func (p NodePath) PublishTopicName() (string, bool) {
	if p.publisher == nil {
		return "", false
	}
	return p.publisher.TopicName(), true
}

// ChildCallbackNames returns the callbacks crossed, in path order.
func (p NodePath) ChildCallbackNames() []string {
	return slices.Clone(p.childNames)
}

// MessageContext returns the derivation policy tying output to input, when
// one was modeled.
func (p NodePath) MessageContext() (MessageContext, bool) {
	if p.context == nil {
		return MessageContext{}, false
	}
	return *p.context, true
}

// Equal reports field-wise equality.
func (p NodePath) Equal(other NodePath) bool {
	if p.nodeName != other.nodeName || !slices.Equal(p.childNames, other.childNames) {
		return false
	}
	if (p.subscription == nil) != (other.subscription == nil) ||
		(p.publisher == nil) != (other.publisher == nil) ||
		(p.context == nil) != (other.context == nil) {
		return false
	}
	if p.subscription != nil && !p.subscription.Equal(*other.subscription) {
		return false
	}
	if p.publisher != nil && !p.publisher.Equal(*other.publisher) {
		return false
	}
	if p.context != nil && !p.context.Equal(*other.context) {
		return false
	}
	return true
}
