package document

import (
	"fmt"
	"strings"
)

// Fields محتوای یک سند به صورت نگاشت نام فیلد به مقدار
type Fields = map[string]any

// Ref اشاره‌گر تایپ‌دار به یک سند مشخص در یک کالکشن مشخص
type Ref struct {
	Collection string
	ID         string
}

// ParsePath تبدیل مسیر متنی "<collection>/<documentId>" به Ref
func ParsePath(path string) (Ref, error) {
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Ref{}, fmt.Errorf("invalid document path: %q", path)
	}
	return Ref{Collection: parts[0], ID: parts[1]}, nil
}

// Path مسیر متنی Ref به شکل "<collection>/<documentId>"
func (r Ref) Path() string {
	return r.Collection + "/" + r.ID
}
