package arch

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Summary is a YAML-renderable diagnostic view of a value object. Unknown
// optional information renders as null, a known-empty sequence as [].
type Summary map[string]any

// String renders the summary as YAML.
func (s Summary) String() string {
	out, err := yaml.Marshal(map[string]any(s))
	if err != nil {
		return fmt.Sprintf("summary render failed: %v", err)
	}
	return string(out)
}

func optionalSummary[T any](o Optional[T]) any {
	items, ok := o.Get()
	if !ok {
		return nil
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// Summary returns a diagnostic view of the publisher.
func (p Publisher) Summary() Summary {
	return Summary{
		"node":      p.nodeName,
		"topic":     p.topicName,
		"callbacks": optionalSummary(p.callbackNames),
	}
}

// Summary returns a diagnostic view of the subscription.
func (s Subscription) Summary() Summary {
	return Summary{
		"node":     s.nodeName,
		"topic":    s.topicName,
		"callback": s.callbackName,
	}
}

// Summary returns a diagnostic view of the callback.
func (c Callback) Summary() Summary {
	sum := Summary{
		"node":           c.nodeName,
		"name":           c.callbackName,
		"kind":           string(c.kind),
		"publish_topics": optionalSummary(c.publishTopicNames),
	}
	switch c.kind {
	case CallbackKindTimer:
		sum["period_ns"] = int64(c.period)
	case CallbackKindSubscription:
		sum["subscribe_topic"] = c.subscribeTopic
	}
	return sum
}

// Summary returns a diagnostic view of the group and its callbacks.
func (g CallbackGroup) Summary() Summary {
	return Summary{
		"node":      g.nodeName,
		"name":      g.groupName,
		"kind":      string(g.kind),
		"callbacks": g.CallbackNames(),
	}
}

// Summary returns a diagnostic view of the message context.
func (m MessageContext) Summary() Summary {
	return Summary{
		"kind":            string(m.kind),
		"node":            m.nodeName,
		"subscribe_topic": m.subscribeTopicName,
		"publish_topic":   m.publishTopicName,
		"callbacks":       emptyIfNil(m.callbackNames),
	}
}

// Summary returns a diagnostic view of the variable passing.
func (v VariablePassing) Summary() Summary {
	return Summary{
		"node":           v.nodeName,
		"callback_write": v.callbackNameWrite,
		"callback_read":  v.callbackNameRead,
	}
}

// Summary returns a diagnostic view of the path endpoints and policy.
func (p NodePath) Summary() Summary {
	sum := Summary{
		"node":      p.nodeName,
		"callbacks": emptyIfNil(p.childNames),
	}
	if topic, ok := p.SubscribeTopicName(); ok {
		sum["subscribe_topic"] = topic
	}
	if topic, ok := p.PublishTopicName(); ok {
		sum["publish_topic"] = topic
	}
	if ctx, ok := p.MessageContext(); ok {
		sum["message_context"] = string(ctx.Kind())
	}
	return sum
}

// Summary returns a diagnostic view of the whole node structure.
func (n *Node) Summary() Summary {
	paths := make([]Summary, len(n.paths))
	for i, p := range n.paths {
		paths[i] = p.Summary()
	}
	contexts := make([]Summary, len(n.messageContexts))
	for i, m := range n.messageContexts {
		contexts[i] = m.Summary()
	}
	var callbackNames any
	if names, ok := n.CallbackNames().Get(); ok {
		callbackNames = emptyIfNil(names)
	}
	var groupSummaries any
	if groups, ok := n.callbackGroups.Get(); ok {
		sums := make([]Summary, len(groups))
		for i, g := range groups {
			sums[i] = g.Summary()
		}
		groupSummaries = sums
	}
	return Summary{
		"node":             n.nodeName,
		"publish_topics":   emptyIfNil(n.PublishTopicNames()),
		"subscribe_topics": emptyIfNil(n.SubscribeTopicNames()),
		"callbacks":        callbackNames,
		"callback_groups":  groupSummaries,
		"paths":            paths,
		"message_contexts": contexts,
	}
}

// emptyIfNil normalizes a nil slice to an empty one so YAML renders [] rather
// than null; null is reserved for unknown.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
