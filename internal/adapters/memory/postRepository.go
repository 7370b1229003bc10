package memory

import (
	"context"
	"sync"

	"github.com/gofrs/uuid"

	"didgah/internal/core/document"
	"didgah/internal/core/errs"
)

// PostRepositoryMemory پیاده‌سازی PostRepository در حافظه برای تست
type PostRepositoryMemory struct {
	mu   sync.Mutex
	docs map[string]document.Fields
}

// NewPostRepositoryMemory سازنده PostRepositoryMemory
func NewPostRepositoryMemory() *PostRepositoryMemory {
	return &PostRepositoryMemory{docs: make(map[string]document.Fields)}
}

func (repo *PostRepositoryMemory) FindByID(ctx context.Context, id string) (document.Fields, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	fields, exists := repo.docs[id]
	if !exists {
		return nil, errs.New(errs.KindNotFound, "post not found")
	}
	return document.Clone(fields), nil
}

func (repo *PostRepositoryMemory) Create(ctx context.Context, fields document.Fields) (string, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	id := uuid.Must(uuid.NewV4()).String()
	repo.docs[id] = document.Clone(fields)
	return id, nil
}

func (repo *PostRepositoryMemory) Update(ctx context.Context, id string, fields document.Fields) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	existing, exists := repo.docs[id]
	if !exists {
		return errs.New(errs.KindNotFound, "post not found")
	}
	for k, v := range document.Clone(fields) {
		existing[k] = v
	}
	return nil
}

func (repo *PostRepositoryMemory) Delete(ctx context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.docs[id]; !exists {
		return errs.New(errs.KindNotFound, "post not found")
	}
	delete(repo.docs, id)
	return nil
}
