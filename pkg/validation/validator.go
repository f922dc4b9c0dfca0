// Package validation checks the local well-formedness of extraction-layer
// inputs before they are frozen into architecture value objects. It never
// checks cross-node consistency; that belongs to the assembly layer.
package validation

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Validation constants
	MaxNameLength  = 256
	MaxTopicLength = 256

	// Regular expressions
	topicPattern = regexp.MustCompile(`^[~/]?[a-zA-Z0-9_][a-zA-Z0-9_/]*$`)
	namePattern  = regexp.MustCompile(`^[/]?[a-zA-Z0-9_][a-zA-Z0-9_/]*$`)
)

func init() {
	validate = validator.New()
}

// NodeRecord represents the extraction-layer input for one node structure.
type NodeRecord struct {
	NodeName        string   `json:"nodeName" validate:"required,max=256"`
	PublishTopics   []string `json:"publishTopics" validate:"omitempty,dive,required,max=256"`
	SubscribeTopics []string `json:"subscribeTopics" validate:"omitempty,dive,required,max=256"`
	CallbackNames   []string `json:"callbackNames" validate:"omitempty,dive,required,max=256"`
	GroupNames      []string `json:"groupNames" validate:"omitempty,dive,required,max=256"`
}

// ValidateNodeRecord validates the assembled inputs of one node structure.
func ValidateNodeRecord(rec *NodeRecord) error {
	if rec == nil {
		return errors.New("node record cannot be nil")
	}

	// Validate using struct tags
	if err := validate.Struct(rec); err != nil {
		return formatValidationError(err)
	}

	if err := ValidateNodeName(rec.NodeName); err != nil {
		return fmt.Errorf("NodeName: %w", err)
	}
	for _, topic := range rec.PublishTopics {
		if err := ValidateTopicName(topic); err != nil {
			return fmt.Errorf("PublishTopics: %w", err)
		}
	}
	for _, topic := range rec.SubscribeTopics {
		if err := ValidateTopicName(topic); err != nil {
			return fmt.Errorf("SubscribeTopics: %w", err)
		}
	}
	for _, name := range rec.CallbackNames {
		if err := ValidateCallbackName(name); err != nil {
			return fmt.Errorf("CallbackNames: %w", err)
		}
	}
	for _, name := range rec.GroupNames {
		if err := ValidateCallbackName(name); err != nil {
			return fmt.Errorf("GroupNames: %w", err)
		}
	}

	return nil
}

// ValidateNodeName validates a node name
func ValidateNodeName(name string) error {
	if name == "" {
		return errors.New("node name cannot be empty")
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("node name '%s' exceeds maximum length of %d characters", name, MaxNameLength)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("node name '%s' contains invalid characters (alphanumeric, underscore and slash allowed)", name)
	}
	return nil
}

// ValidateTopicName validates a topic name
func ValidateTopicName(name string) error {
	if name == "" {
		return errors.New("topic name cannot be empty")
	}
	if len(name) > MaxTopicLength {
		return fmt.Errorf("topic name '%s' exceeds maximum length of %d characters", name, MaxTopicLength)
	}
	if !topicPattern.MatchString(name) {
		return fmt.Errorf("topic name '%s' is invalid (must start with letter, ~ or /, followed by alphanumeric, underscore or slash)", name)
	}
	return nil
}

// ValidateCallbackName validates a callback or callback-group name
func ValidateCallbackName(name string) error {
	if name == "" {
		return errors.New("callback name cannot be empty")
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("callback name '%s' exceeds maximum length of %d characters", name, MaxNameLength)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("callback name '%s' contains invalid characters (alphanumeric, underscore and slash allowed)", name)
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}
