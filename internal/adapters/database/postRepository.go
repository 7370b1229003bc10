package database

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"didgah/internal/core/document"
	"didgah/internal/core/errs"
	"didgah/internal/core/post"
)

// PostRepositoryDatabase پیاده‌سازی PostRepository روی Firestore
type PostRepositoryDatabase struct {
	client *firestore.Client
}

// NewPostRepositoryDatabase سازنده PostRepositoryDatabase
func NewPostRepositoryDatabase(client *firestore.Client) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{client: client}
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id string) (document.Fields, error) {
	snap, err := repo.client.Collection(post.Collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, errs.Wrap(errs.KindNotFound, "post not found", err)
	}
	if err != nil {
		return nil, err
	}
	return domainFields(snap.Data()), nil
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, fields document.Fields) (string, error) {
	ref := repo.client.Collection(post.Collection).NewDoc()
	if _, err := ref.Set(ctx, storageFields(repo.client, fields)); err != nil {
		return "", err
	}
	return ref.ID, nil
}

// Update فیلدهای داده‌شده را روی سند موجود بازنویسی می‌کند.
// برخلاف Set، روی سند غایب خطا می‌دهد و سند تازه نمی‌سازد.
func (repo *PostRepositoryDatabase) Update(ctx context.Context, id string, fields document.Fields) error {
	stored := storageFields(repo.client, fields)
	updates := make([]firestore.Update, 0, len(stored))
	for k, v := range stored {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	_, err := repo.client.Collection(post.Collection).Doc(id).Update(ctx, updates)
	return err
}

func (repo *PostRepositoryDatabase) Delete(ctx context.Context, id string) error {
	_, err := repo.client.Collection(post.Collection).Doc(id).Delete(ctx)
	return err
}
