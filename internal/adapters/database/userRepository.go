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

// UserRepositoryDatabase پیاده‌سازی UserRepository روی Firestore
type UserRepositoryDatabase struct {
	client *firestore.Client
}

// NewUserRepositoryDatabase سازنده UserRepositoryDatabase
func NewUserRepositoryDatabase(client *firestore.Client) *UserRepositoryDatabase {
	return &UserRepositoryDatabase{client: client}
}

func (repo *UserRepositoryDatabase) FindByID(ctx context.Context, id string) (document.Fields, error) {
	snap, err := repo.client.Collection(post.UserCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, errs.Wrap(errs.KindNotFound, "user not found", err)
	}
	if err != nil {
		return nil, err
	}
	return domainFields(snap.Data()), nil
}

// Replace کل سند کاربر را با فیلدهای داده‌شده بازنویسی می‌کند
func (repo *UserRepositoryDatabase) Replace(ctx context.Context, id string, fields document.Fields) error {
	doc := repo.client.Collection(post.UserCollection).Doc(id)
	_, err := doc.Set(ctx, storageFields(repo.client, fields))
	return err
}
