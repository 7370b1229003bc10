package post

import (
	"context"

	"didgah/internal/core/document"
)

// PostRepository پورت برای ذخیره‌سازی و بازیابی اسناد پست
type PostRepository interface {
	FindByID(ctx context.Context, id string) (document.Fields, error)
	Create(ctx context.Context, fields document.Fields) (string, error)
	Update(ctx context.Context, id string, fields document.Fields) error
	Delete(ctx context.Context, id string) error
}
