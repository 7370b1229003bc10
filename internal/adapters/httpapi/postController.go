package httpapi

import (
	"net/http"

	"didgah/internal/core/document"
	"didgah/internal/core/errs"

	"github.com/gin-gonic/gin"
)

type PostController struct {
	pc PostUseCase
	v  PostValidator
}

func NewPostController(pc PostUseCase, v PostValidator) *PostController {
	return &PostController{pc: pc, v: v}
}

func (ctl *PostController) GetPost(c *gin.Context) {
	fields, err := ctl.pc.GetPost(c.Request.Context(), c.Param("postId"))
	if err != nil {
		if errs.KindOf(err) == errs.KindNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error getting post"})
		return
	}
	c.JSON(http.StatusOK, fields)
}

func (ctl *PostController) CreatePost(c *gin.Context) {
	var body document.Fields
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if verr := ctl.v.ValidatePost(body); verr != nil {
		c.JSON(verr.Code, gin.H{"error": verr.Message})
		return
	}
	if _, err := ctl.pc.CreatePost(c.Request.Context(), body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding new post"})
		return
	}
	// پاسخ همان بدنه اصلی با مسیرهای متنی است
	c.JSON(http.StatusCreated, body)
}

func (ctl *PostController) UpdatePost(c *gin.Context) {
	var body document.Fields
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if verr := ctl.v.ValidatePost(body); verr != nil {
		c.JSON(verr.Code, gin.H{"error": verr.Message})
		return
	}
	if err := ctl.pc.UpdatePost(c.Request.Context(), c.Param("postId"), body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating post"})
		return
	}
	c.JSON(http.StatusOK, body)
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	if err := ctl.pc.DeletePost(c.Request.Context(), c.Param("postId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
