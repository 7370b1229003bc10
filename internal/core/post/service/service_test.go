package postapp

import (
	"context"
	"testing"

	"didgah/internal/adapters/memory"
	"didgah/internal/core/document"
	"didgah/internal/core/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*PostService, *memory.PostRepositoryMemory, *memory.UserRepositoryMemory) {
	t.Helper()
	postRepo := memory.NewPostRepositoryMemory()
	userRepo := memory.NewUserRepositoryMemory()
	return NewPostService(postRepo, userRepo, zap.NewNop()), postRepo, userRepo
}

func seedUser(t *testing.T, userRepo *memory.UserRepositoryMemory, id string, posts []any) {
	t.Helper()
	err := userRepo.Replace(context.Background(), id, document.Fields{
		"name":  "Test User",
		"posts": posts,
	})
	require.NoError(t, err)
}

func postBody() document.Fields {
	return document.Fields{
		"author": "users/u1",
		"title":  "hello",
		"comments": []any{
			map[string]any{"author": "users/u1", "text": "hi"},
		},
	}
}

func TestCreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("Success create then get round trip", func(t *testing.T) {
		svc, _, userRepo := newTestService(t)
		seedUser(t, userRepo, "u1", []any{})

		body := postBody()
		id, err := svc.CreatePost(ctx, body)
		require.NoError(t, err)
		require.NotEmpty(t, id)

		// بدنه ورودی نباید تغییر کرده باشد
		assert.Equal(t, "users/u1", body["author"])
		assert.Equal(t, "users/u1", body["comments"].([]any)[0].(map[string]any)["author"])

		got, err := svc.GetPost(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "users/u1", got["author"])
		assert.Equal(t, "hello", got["title"])
		assert.Equal(t, "users/u1", got["comments"].([]any)[0].(map[string]any)["author"])
		assert.Equal(t, "hi", got["comments"].([]any)[0].(map[string]any)["text"])
	})

	t.Run("Success appends exactly one ref to user posts", func(t *testing.T) {
		svc, _, userRepo := newTestService(t)
		existing := document.Ref{Collection: "posts", ID: "old"}
		seedUser(t, userRepo, "u1", []any{existing})

		id, err := svc.CreatePost(ctx, postBody())
		require.NoError(t, err)

		user, err := userRepo.FindByID(ctx, "u1")
		require.NoError(t, err)
		posts := user["posts"].([]any)
		require.Len(t, posts, 2)
		assert.Equal(t, existing, posts[0])
		assert.Equal(t, document.Ref{Collection: "posts", ID: id}, posts[1])
	})

	t.Run("Error author user missing", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.CreatePost(ctx, postBody())
		assert.Error(t, err)
	})

	t.Run("Error user document without posts list", func(t *testing.T) {
		svc, _, userRepo := newTestService(t)
		require.NoError(t, userRepo.Replace(ctx, "u1", document.Fields{"name": "x"}))

		_, err := svc.CreatePost(ctx, postBody())
		assert.Error(t, err)
		assert.Equal(t, errs.KindInternal, errs.KindOf(err))
	})
}

func TestGetPost(t *testing.T) {
	ctx := context.Background()

	t.Run("Error not found", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.GetPost(ctx, "missing")
		require.Error(t, err)
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})
}

func TestUpdatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("Success merge keeps untouched fields", func(t *testing.T) {
		svc, _, userRepo := newTestService(t)
		seedUser(t, userRepo, "u1", []any{})

		body := postBody()
		body["mood"] = "calm"
		id, err := svc.CreatePost(ctx, body)
		require.NoError(t, err)

		update := document.Fields{
			"author": "users/u1",
			"title":  "edited",
			"comments": []any{
				map[string]any{"author": "users/u2", "text": "new"},
			},
		}
		require.NoError(t, svc.UpdatePost(ctx, id, update))

		got, err := svc.GetPost(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "edited", got["title"])
		assert.Equal(t, "calm", got["mood"]) // فیلد غایب در بدنه دست نخورده می‌ماند
		assert.Equal(t, "users/u2", got["comments"].([]any)[0].(map[string]any)["author"])
	})

	t.Run("Success does not move user back-reference on author change", func(t *testing.T) {
		svc, _, userRepo := newTestService(t)
		seedUser(t, userRepo, "u1", []any{})
		seedUser(t, userRepo, "u2", []any{})

		id, err := svc.CreatePost(ctx, postBody())
		require.NoError(t, err)

		update := postBody()
		update["author"] = "users/u2"
		require.NoError(t, svc.UpdatePost(ctx, id, update))

		u1, err := userRepo.FindByID(ctx, "u1")
		require.NoError(t, err)
		assert.Len(t, u1["posts"].([]any), 1)

		u2, err := userRepo.FindByID(ctx, "u2")
		require.NoError(t, err)
		assert.Empty(t, u2["posts"].([]any))
	})

	t.Run("Error post missing", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		err := svc.UpdatePost(ctx, "missing", postBody())
		assert.Error(t, err)
	})
}

func TestDeletePost(t *testing.T) {
	ctx := context.Background()

	t.Run("Success removes post and user back-reference", func(t *testing.T) {
		svc, _, userRepo := newTestService(t)
		other := document.Ref{Collection: "posts", ID: "other"}
		seedUser(t, userRepo, "u1", []any{other})

		id, err := svc.CreatePost(ctx, postBody())
		require.NoError(t, err)

		require.NoError(t, svc.DeletePost(ctx, id))

		_, err = svc.GetPost(ctx, id)
		require.Error(t, err)
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))

		user, err := userRepo.FindByID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, []any{other}, user["posts"])
	})

	t.Run("Error post missing", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		err := svc.DeletePost(ctx, "missing")
		assert.Error(t, err)
	})

	t.Run("Error author user missing is a hard failure", func(t *testing.T) {
		// رفتار تثبیت‌شده: حذف پستی که نویسنده‌اش دیگر وجود ندارد خطا است،
		// هرچند خود پست پیش از خطا حذف شده است
		svc, postRepo, _ := newTestService(t)

		id, err := postRepo.Create(ctx, document.Fields{
			"author":   document.Ref{Collection: "users", ID: "ghost"},
			"comments": []any{},
		})
		require.NoError(t, err)

		err = svc.DeletePost(ctx, id)
		require.Error(t, err)
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))

		_, err = postRepo.FindByID(ctx, id)
		assert.Error(t, err) // پست حذف شده، Ref آویزان باقی مانده
	})

	t.Run("Error ref missing from user posts list", func(t *testing.T) {
		svc, postRepo, userRepo := newTestService(t)
		seedUser(t, userRepo, "u1", []any{})

		id, err := postRepo.Create(ctx, document.Fields{
			"author":   document.Ref{Collection: "users", ID: "u1"},
			"comments": []any{},
		})
		require.NoError(t, err)

		err = svc.DeletePost(ctx, id)
		require.Error(t, err)
		assert.Equal(t, errs.KindInternal, errs.KindOf(err))
	})
}
