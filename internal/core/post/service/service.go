package postapp

import (
	"context"

	"didgah/internal/core/document"
	"didgah/internal/core/errs"
	postEntity "didgah/internal/core/post"
	postPort "didgah/internal/ports/post"
	userPort "didgah/internal/ports/user"

	"go.uber.org/zap"
)

type PostService struct {
	PostRepository postPort.PostRepository
	UserRepository userPort.UserRepository
	Logger         *zap.Logger
}

func NewPostService(
	postRepo postPort.PostRepository,
	userRepo userPort.UserRepository,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		PostRepository: postRepo,
		UserRepository: userRepo,
		Logger:         logger,
	}
}

// GetPost خواندن یک پست و تبدیل Refهای author به مسیر متنی
func (s *PostService) GetPost(ctx context.Context, id string) (document.Fields, error) {
	fields, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	postEntity.DecodeRefs(fields)
	return fields, nil
}

// CreatePost ایجاد پست جدید و افزودن Ref آن به لیست posts نویسنده.
// دو نوشتن جدا و غیر اتمیک: قطع بین آن‌ها پست بدون backlink به‌جا می‌گذارد.
func (s *PostService) CreatePost(ctx context.Context, body document.Fields) (string, error) {
	data := document.Clone(body)
	if err := postEntity.EncodeRefs(data); err != nil {
		s.Logger.Error("Error adding new post", zap.Error(err))
		return "", errs.Wrap(errs.KindInternal, "failed to encode document refs", err)
	}

	id, err := s.PostRepository.Create(ctx, data)
	if err != nil {
		s.Logger.Error("Error adding new post", zap.Error(err))
		return "", errs.Wrap(errs.KindInternal, "failed to create post", err)
	}

	author := data["author"].(document.Ref)
	if err := s.appendToUserPosts(ctx, author.ID, id); err != nil {
		s.Logger.Error("Error adding new post",
			zap.String("postID", id), zap.String("userID", author.ID), zap.Error(err))
		return "", err
	}
	return id, nil
}

// UpdatePost بازنویسی فیلدهای داده‌شده روی سند موجود (merge).
// تغییر author لیست posts کاربرها را جابه‌جا نمی‌کند.
func (s *PostService) UpdatePost(ctx context.Context, id string, body document.Fields) error {
	data := document.Clone(body)
	if err := postEntity.EncodeRefs(data); err != nil {
		s.Logger.Error("Error updating post", zap.String("postID", id), zap.Error(err))
		return errs.Wrap(errs.KindInternal, "failed to encode document refs", err)
	}
	if err := s.PostRepository.Update(ctx, id, data); err != nil {
		s.Logger.Error("Error updating post", zap.String("postID", id), zap.Error(err))
		return err
	}
	return nil
}

// DeletePost حذف پست و برداشتن Ref آن از لیست posts نویسنده.
// حذف و به‌روزرسانی کاربر اتمیک نیستند؛ هر خطا پس از حذف، Ref آویزان به‌جا می‌گذارد.
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	fields, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		s.Logger.Error("Error deleting post", zap.String("postID", id), zap.Error(err))
		return err
	}
	if err := s.PostRepository.Delete(ctx, id); err != nil {
		s.Logger.Error("Error deleting post", zap.String("postID", id), zap.Error(err))
		return err
	}
	author, ok := fields["author"].(document.Ref)
	if !ok {
		err := errs.New(errs.KindInternal, "post document has no author reference")
		s.Logger.Error("Error deleting post", zap.String("postID", id), zap.Error(err))
		return err
	}
	if err := s.removeFromUserPosts(ctx, author.ID, id); err != nil {
		s.Logger.Error("Error deleting post",
			zap.String("postID", id), zap.String("userID", author.ID), zap.Error(err))
		return err
	}
	return nil
}

func (s *PostService) appendToUserPosts(ctx context.Context, userID, postID string) error {
	user, err := s.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	posts, ok := user["posts"].([]any)
	if !ok {
		return errs.New(errs.KindInternal, "user document has no posts list")
	}
	user["posts"] = append(posts, document.Ref{Collection: postEntity.Collection, ID: postID})
	return s.UserRepository.Replace(ctx, userID, user)
}

func (s *PostService) removeFromUserPosts(ctx context.Context, userID, postID string) error {
	user, err := s.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	posts, ok := user["posts"].([]any)
	if !ok {
		return errs.New(errs.KindInternal, "user document has no posts list")
	}
	target := document.Ref{Collection: postEntity.Collection, ID: postID}
	idx := -1
	for i, p := range posts {
		if ref, ok := p.(document.Ref); ok && ref == target {
			idx = i
			break
		}
	}
	if idx < 0 {
		return errs.New(errs.KindInternal, "post reference missing from user posts list")
	}
	user["posts"] = append(posts[:idx], posts[idx+1:]...)
	return s.UserRepository.Replace(ctx, userID, user)
}
