package arch

// Publisher is a node's outbound binding to a topic. Topic names are not
// guaranteed unique within one node.
type Publisher struct {
	nodeName      string
	topicName     string
	callbackNames Optional[string]
}

// NewPublisher creates a publisher binding. callbackNames lists the
// callbacks that publish on the topic; pass Unknown when not extracted.
func NewPublisher(nodeName, topicName string, callbackNames Optional[string]) Publisher {
	return Publisher{
		nodeName:      nodeName,
		topicName:     topicName,
		callbackNames: callbackNames,
	}
}

// NodeName returns the owning node name.
func (p Publisher) NodeName() string {
	return p.nodeName
}

// TopicName returns the published topic name.
func (p Publisher) TopicName() string {
	return p.topicName
}

// CallbackNames returns the publishing callback names, when extracted.
func (p Publisher) CallbackNames() Optional[string] {
	return p.callbackNames
}

// Equal reports field-wise equality.
func (p Publisher) Equal(other Publisher) bool {
	return p.nodeName == other.nodeName &&
		p.topicName == other.topicName &&
		equalOptional(p.callbackNames, other.callbackNames)
}

// Hash returns a structural hash consistent with Equal.
func (p Publisher) Hash() uint64 {
	fields := []string{"publisher", p.nodeName, p.topicName}
	if names, ok := p.callbackNames.Get(); ok {
		fields = append(fields, names...)
	}
	return hashFields(fields...)
}

// Subscription is a node's inbound binding to a topic.
type Subscription struct {
	nodeName     string
	topicName    string
	callbackName string
}

// NewSubscription creates a subscription binding. callbackName is the
// callback triggered by the subscription; pass an empty string when not
// extracted.
func NewSubscription(nodeName, topicName, callbackName string) Subscription {
	return Subscription{
		nodeName:     nodeName,
		topicName:    topicName,
		callbackName: callbackName,
	}
}

// NodeName returns the owning node name.
func (s Subscription) NodeName() string {
	return s.nodeName
}

// TopicName returns the subscribed topic name.
func (s Subscription) TopicName() string {
	return s.topicName
}

// CallbackName returns the bound callback name and whether one was extracted.
func (s Subscription) CallbackName() (string, bool) {
	return s.callbackName, s.callbackName != ""
}

// Equal reports field-wise equality.
func (s Subscription) Equal(other Subscription) bool {
	return s == other
}

// Hash returns a structural hash consistent with Equal.
func (s Subscription) Hash() uint64 {
	return hashFields("subscription", s.nodeName, s.topicName, s.callbackName)
}
