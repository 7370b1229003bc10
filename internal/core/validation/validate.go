package validation

import (
	"fmt"
	"net/http"

	"didgah/internal/core/document"
)

// Error خطای اعتبارسنجی همراه کد وضعیت HTTP
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string { return e.Message }

func invalid(format string, args ...any) *Error {
	return &Error{Code: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// PostBodyValidator اعتبارسنجی ساختاری بدنه پست
type PostBodyValidator struct{}

// NewPostBodyValidator سازنده PostBodyValidator
func NewPostBodyValidator() *PostBodyValidator { return &PostBodyValidator{} }

// ValidatePost بررسی می‌کند بدنه یک سند پست معتبر باشد:
// author مسیر سند و comments لیستی از کامنت‌ها با author مسیر سند.
// فیلدهای اضافی آزادند.
func (v *PostBodyValidator) ValidatePost(body document.Fields) *Error {
	if len(body) == 0 {
		return invalid("request body is empty")
	}
	raw, ok := body["author"]
	if !ok {
		return invalid("author is required")
	}
	path, ok := raw.(string)
	if !ok {
		return invalid("author must be a document path")
	}
	if _, err := document.ParsePath(path); err != nil {
		return invalid("author must be a document path")
	}
	raw, ok = body["comments"]
	if !ok {
		return invalid("comments is required")
	}
	comments, ok := raw.([]any)
	if !ok {
		return invalid("comments must be a list")
	}
	for i, c := range comments {
		comment, ok := c.(map[string]any)
		if !ok {
			return invalid("comment %d must be an object", i)
		}
		path, ok := comment["author"].(string)
		if !ok {
			return invalid("comment %d author must be a document path", i)
		}
		if _, err := document.ParsePath(path); err != nil {
			return invalid("comment %d author must be a document path", i)
		}
	}
	return nil
}
