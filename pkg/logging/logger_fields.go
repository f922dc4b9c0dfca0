package logging

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Field helpers for common model attributes
func Node(name string) Field {
	return String("node", name)
}

func Topic(name string) Field {
	return String("topic", name)
}

func Operation(op string) Field {
	return String("operation", op)
}

func Count(n int) Field {
	return Int("count", n)
}
