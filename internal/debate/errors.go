package debate

import "errors"

// ValidationError is a client input error. Its message is sent back verbatim.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

var (
	ErrActionRequired           = &ValidationError{msg: "Action is required"}
	ErrInvalidAction            = &ValidationError{msg: "Invalid action"}
	ErrTopicRequired            = &ValidationError{msg: "Topic is required"}
	ErrTopicAndArgumentRequired = &ValidationError{msg: "Topic and argument are required"}

	ErrGenerationFailed = errors.New("text generation failed")
)

const (
	MsgMethodNotAllowed    = "Method not allowed"
	MsgInternalServerError = "Internal server error"
	MsgInvalidRequestBody  = "Invalid request body"
)
