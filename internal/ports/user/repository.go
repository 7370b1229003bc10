package user

import (
	"context"

	"didgah/internal/core/document"
)

// UserRepository پورت برای خواندن و بازنویسی اسناد کاربر.
// Replace کل سند را با فیلدهای داده‌شده بازنویسی می‌کند.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (document.Fields, error)
	Replace(ctx context.Context, id string, fields document.Fields) error
}
