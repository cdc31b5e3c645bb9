package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPrompt 空 prompt 在调用模型前就被拒绝。
	ErrEmptyPrompt = errors.New("please enter a prompt to generate code")
	// ErrUnknownModel means the model is not on the menu.
	ErrUnknownModel = errors.New("model not in menu")
)

// RemoteError wraps a failed inference call. It is never retried.
type RemoteError struct {
	Model Model
	Err   error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Model.Name, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Hint is the follow-up advice shown next to a remote failure.
func (e *RemoteError) Hint() string {
	return "This model may not be available on the free tier. Try selecting a different model from the dropdown."
}
