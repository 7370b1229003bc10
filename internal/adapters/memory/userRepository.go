package memory

import (
	"context"
	"sync"

	"didgah/internal/core/document"
	"didgah/internal/core/errs"
)

// UserRepositoryMemory پیاده‌سازی UserRepository در حافظه برای تست
type UserRepositoryMemory struct {
	mu   sync.Mutex
	docs map[string]document.Fields
}

// NewUserRepositoryMemory سازنده UserRepositoryMemory
func NewUserRepositoryMemory() *UserRepositoryMemory {
	return &UserRepositoryMemory{docs: make(map[string]document.Fields)}
}

func (repo *UserRepositoryMemory) FindByID(ctx context.Context, id string) (document.Fields, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	fields, exists := repo.docs[id]
	if !exists {
		return nil, errs.New(errs.KindNotFound, "user not found")
	}
	return document.Clone(fields), nil
}

// Replace مثل Set در Firestore: سند را می‌سازد یا کامل بازنویسی می‌کند
func (repo *UserRepositoryMemory) Replace(ctx context.Context, id string, fields document.Fields) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.docs[id] = document.Clone(fields)
	return nil
}
