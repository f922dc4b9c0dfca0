package arch

import (
	"slices"
	"strconv"
	"time"
)

// CallbackKind classifies what triggers a callback.
type CallbackKind string

const (
	CallbackKindTimer        CallbackKind = "timer_callback"
	CallbackKindSubscription CallbackKind = "subscription_callback"
)

// String implements fmt.Stringer for CallbackKind.
func (k CallbackKind) String() string {
	return string(k)
}

// Callback is one named unit of logic scheduled on a node, triggered by a
// timer or by a subscription.
type Callback struct {
	nodeName          string
	callbackName      string
	kind              CallbackKind
	symbol            string
	period            time.Duration // timer callbacks only
	subscribeTopic    string        // subscription callbacks only
	publishTopicNames Optional[string]
}

// NewTimerCallback creates a callback triggered by a timer with the given
// period.
func NewTimerCallback(nodeName, callbackName, symbol string, period time.Duration, publishTopicNames Optional[string]) Callback {
	return Callback{
		nodeName:          nodeName,
		callbackName:      callbackName,
		kind:              CallbackKindTimer,
		symbol:            symbol,
		period:            period,
		publishTopicNames: publishTopicNames,
	}
}

// NewSubscriptionCallback creates a callback triggered by messages on
// subscribeTopic.
func NewSubscriptionCallback(nodeName, callbackName, symbol, subscribeTopic string, publishTopicNames Optional[string]) Callback {
	return Callback{
		nodeName:          nodeName,
		callbackName:      callbackName,
		kind:              CallbackKindSubscription,
		symbol:            symbol,
		subscribeTopic:    subscribeTopic,
		publishTopicNames: publishTopicNames,
	}
}

// NodeName returns the owning node name.
func (c Callback) NodeName() string {
	return c.nodeName
}

// CallbackName returns the callback name.
func (c Callback) CallbackName() string {
	return c.callbackName
}

// Kind returns what triggers the callback.
func (c Callback) Kind() CallbackKind {
	return c.kind
}

// Symbol returns the source symbol the callback was extracted from.
func (c Callback) Symbol() string {
	return c.symbol
}

// Period returns the timer period; ok is false for non-timer callbacks.
func (c Callback) Period() (time.Duration, bool) {
	return c.period, c.kind == CallbackKindTimer
}

// SubscribeTopicName returns the triggering topic; ok is false for
// non-subscription callbacks.
func (c Callback) SubscribeTopicName() (string, bool) {
	return c.subscribeTopic, c.kind == CallbackKindSubscription
}

// PublishTopicNames returns the topics this callback publishes on, when
// extracted.
func (c Callback) PublishTopicNames() Optional[string] {
	return c.publishTopicNames
}

// Equal reports field-wise equality.
func (c Callback) Equal(other Callback) bool {
	return c.nodeName == other.nodeName &&
		c.callbackName == other.callbackName &&
		c.kind == other.kind &&
		c.symbol == other.symbol &&
		c.period == other.period &&
		c.subscribeTopic == other.subscribeTopic &&
		equalOptional(c.publishTopicNames, other.publishTopicNames)
}

// Hash returns a structural hash consistent with Equal.
func (c Callback) Hash() uint64 {
	fields := []string{
		"callback", c.nodeName, c.callbackName, string(c.kind),
		c.symbol, strconv.FormatInt(int64(c.period), 10), c.subscribeTopic,
	}
	if names, ok := c.publishTopicNames.Get(); ok {
		fields = append(fields, names...)
	}
	return hashFields(fields...)
}

// CallbackGroupKind classifies how a group's callbacks may be scheduled
// relative to each other.
type CallbackGroupKind string

const (
	CallbackGroupKindMutuallyExclusive CallbackGroupKind = "mutually_exclusive"
	CallbackGroupKindReentrant         CallbackGroupKind = "reentrant"
)

// String implements fmt.Stringer for CallbackGroupKind.
func (k CallbackGroupKind) String() string {
	return string(k)
}

// CallbackGroup is an ordered scheduling grouping of one node's callbacks.
type CallbackGroup struct {
	nodeName  string
	groupName string
	kind      CallbackGroupKind
	callbacks []Callback
}

// NewCallbackGroup creates a callback group. Callback order is preserved.
func NewCallbackGroup(nodeName, groupName string, kind CallbackGroupKind, callbacks []Callback) CallbackGroup {
	return CallbackGroup{
		nodeName:  nodeName,
		groupName: groupName,
		kind:      kind,
		callbacks: slices.Clone(callbacks),
	}
}

// NodeName returns the owning node name.
func (g CallbackGroup) NodeName() string {
	return g.nodeName
}

// GroupName returns the group name.
func (g CallbackGroup) GroupName() string {
	return g.groupName
}

// Kind returns the scheduling kind.
func (g CallbackGroup) Kind() CallbackGroupKind {
	return g.kind
}

// Callbacks returns the group's callbacks in declared order.
func (g CallbackGroup) Callbacks() []Callback {
	return slices.Clone(g.callbacks)
}

// CallbackNames returns the names of the group's callbacks in order.
func (g CallbackGroup) CallbackNames() []string {
	names := make([]string, len(g.callbacks))
	for i, cb := range g.callbacks {
		names[i] = cb.CallbackName()
	}
	return names
}

// Equal reports field-wise equality, including callback order.
func (g CallbackGroup) Equal(other CallbackGroup) bool {
	return g.nodeName == other.nodeName &&
		g.groupName == other.groupName &&
		g.kind == other.kind &&
		slices.EqualFunc(g.callbacks, other.callbacks, Callback.Equal)
}
