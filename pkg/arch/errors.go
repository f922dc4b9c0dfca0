package arch

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound = errors.New("not found")
)

// Collections searchable by lookup operations.
const (
	CollectionPublishers    = "publishers"
	CollectionSubscriptions = "subscriptions"
)

// LookupError provides structured information about a failed topic lookup.
type LookupError struct {
	Op         string // Operation that failed (e.g., "GetPublisher")
	NodeName   string // Node whose collections were searched
	Collection string // Collection searched (publishers or subscriptions)
	TopicName  string // Topic name that was requested
	Cause      error  // Underlying error
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	return fmt.Sprintf("%s node %s: topic %q not in %s: %v",
		e.Op, e.NodeName, e.TopicName, e.Collection, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *LookupError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *LookupError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

func newLookupError(op, nodeName, collection, topicName string) *LookupError {
	return &LookupError{
		Op:         op,
		NodeName:   nodeName,
		Collection: collection,
		TopicName:  topicName,
		Cause:      ErrNotFound,
	}
}
