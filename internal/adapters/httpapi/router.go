package httpapi

import (
	"context"

	"didgah/internal/core/document"
	"didgah/internal/core/validation"

	"github.com/gin-gonic/gin"
)

// PostUseCase اینترفیسِ لازم برای کنترلر/روتر (Inbound Port)
type PostUseCase interface {
	GetPost(ctx context.Context, id string) (document.Fields, error)
	CreatePost(ctx context.Context, body document.Fields) (string, error)
	UpdatePost(ctx context.Context, id string, body document.Fields) error
	DeletePost(ctx context.Context, id string) error
}

// PostValidator قرارداد اعتبارسنجی بدنه درخواست؛ از بیرون تزریق می‌شود
type PostValidator interface {
	ValidatePost(body document.Fields) *validation.Error
}

// فقط روتینگ: UseCase و Validator از بیرون تزریق می‌شوند
func SetupRoutes(postUC PostUseCase, v PostValidator) *gin.Engine {
	r := gin.Default()
	pc := NewPostController(postUC, v)

	api := r.Group("/api")
	api.GET("/posts/:postId", pc.GetPost)
	api.POST("/posts", pc.CreatePost)
	api.PATCH("/posts/:postId", pc.UpdatePost)
	api.DELETE("/posts/:postId", pc.DeletePost)
	return r
}
