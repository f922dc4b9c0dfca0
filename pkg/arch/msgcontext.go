package arch

import "slices"

// MessageContextKind names the policy by which an output message occurrence
// is derived from input occurrence(s).
type MessageContextKind string

const (
	// ContextKindCallbackChain: the output occurs strictly after the
	// triggering input within one callback invocation.
	ContextKindCallbackChain MessageContextKind = "callback_chain"
	// ContextKindUseLatestMessage: the output is derived from whichever
	// input occurrence was most recently observed (fan-in).
	ContextKindUseLatestMessage MessageContextKind = "use_latest_message"
	// ContextKindInheritUniqueStamp: the output carries the unique stamp of
	// the input it was derived from.
	ContextKindInheritUniqueStamp MessageContextKind = "inherit_unique_stamp"
	// ContextKindTilde: the output topic is the node-private remapping of
	// the input topic.
	ContextKindTilde MessageContextKind = "tilde"
	// ContextKindUndefined: the policy could not be determined.
	ContextKindUndefined MessageContextKind = "UNDEFINED"
)

// String implements fmt.Stringer for MessageContextKind.
func (k MessageContextKind) String() string {
	return string(k)
}

// MessageContext relates one input occurrence to one output occurrence via
// a named derivation policy. It carries the model only; latency arithmetic
// happens downstream.
type MessageContext struct {
	kind               MessageContextKind
	nodeName           string
	subscribeTopicName string
	publishTopicName   string
	callbackNames      []string
}

// NewMessageContext creates a message context. callbackNames are the
// callbacks involved in the derivation, in declared order.
func NewMessageContext(kind MessageContextKind, nodeName, subscribeTopicName, publishTopicName string, callbackNames []string) MessageContext {
	return MessageContext{
		kind:               kind,
		nodeName:           nodeName,
		subscribeTopicName: subscribeTopicName,
		publishTopicName:   publishTopicName,
		callbackNames:      slices.Clone(callbackNames),
	}
}

// Kind returns the derivation policy.
func (m MessageContext) Kind() MessageContextKind {
	return m.kind
}

// NodeName returns the owning node name.
func (m MessageContext) NodeName() string {
	return m.nodeName
}

// SubscribeTopicName returns the input topic of the derivation.
func (m MessageContext) SubscribeTopicName() string {
	return m.subscribeTopicName
}

// PublishTopicName returns the output topic of the derivation.
func (m MessageContext) PublishTopicName() string {
	return m.publishTopicName
}

// CallbackNames returns the involved callback names in declared order.
func (m MessageContext) CallbackNames() []string {
	return slices.Clone(m.callbackNames)
}

// Equal reports field-wise equality, including callback order.
func (m MessageContext) Equal(other MessageContext) bool {
	return m.kind == other.kind &&
		m.nodeName == other.nodeName &&
		m.subscribeTopicName == other.subscribeTopicName &&
		m.publishTopicName == other.publishTopicName &&
		slices.Equal(m.callbackNames, other.callbackNames)
}

// Hash returns a structural hash consistent with Equal.
func (m MessageContext) Hash() uint64 {
	fields := []string{
		"message_context", string(m.kind), m.nodeName,
		m.subscribeTopicName, m.publishTopicName,
	}
	fields = append(fields, m.callbackNames...)
	return hashFields(fields...)
}

// VariablePassing is a data dependency between two callbacks of one node
// that is not mediated by a topic.
type VariablePassing struct {
	nodeName          string
	callbackNameWrite string
	callbackNameRead  string
}

// NewVariablePassing creates a variable passing from the writing callback
// to the reading callback.
func NewVariablePassing(nodeName, callbackNameWrite, callbackNameRead string) VariablePassing {
	return VariablePassing{
		nodeName:          nodeName,
		callbackNameWrite: callbackNameWrite,
		callbackNameRead:  callbackNameRead,
	}
}

// NodeName returns the owning node name.
func (v VariablePassing) NodeName() string {
	return v.nodeName
}

// CallbackNameWrite returns the writing callback name.
func (v VariablePassing) CallbackNameWrite() string {
	return v.callbackNameWrite
}

// CallbackNameRead returns the reading callback name.
func (v VariablePassing) CallbackNameRead() string {
	return v.callbackNameRead
}

// Equal reports field-wise equality.
func (v VariablePassing) Equal(other VariablePassing) bool {
	return v == other
}

// Hash returns a structural hash consistent with Equal.
func (v VariablePassing) Hash() uint64 {
	return hashFields("variable_passing", v.nodeName, v.callbackNameWrite, v.callbackNameRead)
}
