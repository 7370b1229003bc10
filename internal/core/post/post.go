package post

import (
	"fmt"

	"didgah/internal/core/document"
)

// نام کالکشن‌ها در دیتابیس
const (
	Collection     = "posts"
	UserCollection = "users"
)

// EncodeRefs تبدیل فیلد author و author هر کامنت از مسیر متنی به Ref.
// فیلدها درجا تغییر می‌کنند؛ فراخواننده باید کپی بدهد.
func EncodeRefs(fields document.Fields) error {
	path, ok := fields["author"].(string)
	if !ok {
		return fmt.Errorf("author is not a document path")
	}
	ref, err := document.ParsePath(path)
	if err != nil {
		return fmt.Errorf("invalid author: %w", err)
	}
	fields["author"] = ref

	raw, ok := fields["comments"]
	if !ok {
		return nil
	}
	comments, ok := raw.([]any)
	if !ok {
		return fmt.Errorf("comments is not a list")
	}
	for i, c := range comments {
		comment, ok := c.(map[string]any)
		if !ok {
			return fmt.Errorf("comment %d is not an object", i)
		}
		path, ok := comment["author"].(string)
		if !ok {
			return fmt.Errorf("comment %d author is not a document path", i)
		}
		ref, err := document.ParsePath(path)
		if err != nil {
			return fmt.Errorf("invalid comment %d author: %w", i, err)
		}
		comment["author"] = ref
	}
	return nil
}

// DecodeRefs تبدیل Refهای author به مسیر متنی برای پاسخ JSON.
// مقدارهای غیر Ref دست نمی‌خورند.
func DecodeRefs(fields document.Fields) {
	if ref, ok := fields["author"].(document.Ref); ok {
		fields["author"] = ref.Path()
	}
	comments, ok := fields["comments"].([]any)
	if !ok {
		return
	}
	for _, c := range comments {
		comment, ok := c.(map[string]any)
		if !ok {
			continue
		}
		if ref, ok := comment["author"].(document.Ref); ok {
			comment["author"] = ref.Path()
		}
	}
}
