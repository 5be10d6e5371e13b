package apitype

// Command is any payload sent to a topic.
type Command interface{}
