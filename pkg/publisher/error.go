package publisher

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindRateLimitExceeded Kind = "rate-limit-exceeded"
	KindValidationFailed  Kind = "validation-failed"
	KindDeployFailed      Kind = "deploy-failed"
	KindPreviewFailed     Kind = "preview-failed"
)

// Pipeline stages that can fail.
type Stage string

const (
	StageAdmit        Stage = "admit"
	StageRender       Stage = "render"
	StagePackage      Stage = "package"
	StageName         Stage = "name"
	StageCreateSite   Stage = "create-site"
	StageCreateDeploy Stage = "create-deploy"
)

// Error is the only error type returned from Deploy and Preview.
// Message is safe to show to the caller. Err holds the underlying cause.
type Error struct {
	Kind    Kind
	Stage   Stage
	Message string
	Err     error
}

func (err *Error) Error() string {
	return err.Message
}

func (err *Error) Unwrap() error {
	return err.Err
}

// Remote reports whether the failure happened while talking to the hosting provider.
func (err *Error) Remote() bool {
	return err.Stage == StageCreateSite || err.Stage == StageCreateDeploy
}

func Errorf(kind Kind, stage Stage, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Stage:   stage,
		Message: fmt.Sprintf(format, args...),
	}
}

func ErrorWrap(kind Kind, stage Stage, message string, err error) *Error {
	return &Error{
		Kind:    kind,
		Stage:   stage,
		Message: message,
		Err:     err,
	}
}

// ErrorKind returns the category of an error. Errors not produced by this
// package are reported as failed deploys.
func ErrorKind(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if !errors.As(err, &e) {
		return KindDeployFailed
	}
	return e.Kind
}
