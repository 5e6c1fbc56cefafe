package controller

import (
	"errors"
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	CommentService *service.CommentService
	CourseService  *service.CourseService
}

func NewCommentController(commentService *service.CommentService, courseService *service.CourseService) *CommentController {
	return &CommentController{
		CommentService: commentService,
		CourseService:  courseService,
	}
}

type AddCommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

// AddComment godoc
// @Summary 发表评论
// @Tags 评论
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "课程ID"
// @Param   body body AddCommentRequest true "评论内容"
// @Success 201 {object} util.Response "成功"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/courses/{id}/comments [post]
func (c *CommentController) AddComment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID := util.MustParseUint(ctx.Param("id"))

	var req AddCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exists, err := c.CourseService.CourseExists(courseID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if !exists {
		util.NotFound(ctx, "课程不存在")
		return
	}

	if err := c.CommentService.AddComment(claims.Username, courseID, req.Comment); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "用户不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, nil)
}

// GetComments godoc
// @Summary 课程评论列表
// @Tags 评论
// @Produce  json
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response{data=[]model.Comment} "成功"
// @Router /api/courses/{id}/comments [get]
func (c *CommentController) GetComments(ctx *gin.Context) {
	courseID := util.MustParseUint(ctx.Param("id"))

	comments, err := c.CommentService.GetComments(courseID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, comments)
}

// DeleteComment godoc
// @Summary 删除评论
// @Description 删除当前用户在某课程下的一条评论
// @Tags 评论
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "评论ID"
// @Param   course_id query int true "课程ID"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "评论不存在"
// @Router /api/comments/{id} [delete]
func (c *CommentController) DeleteComment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	commentID := util.MustParseUint(ctx.Param("id"))
	courseID := util.MustParseUint(ctx.Query("course_id"))
	if courseID == 0 {
		util.BadRequest(ctx, "缺少课程ID")
		return
	}

	if err := c.CommentService.DeleteComment(commentID, claims.Username, courseID); err != nil {
		switch {
		case errors.Is(err, util.ErrCommentNotFound):
			util.NotFound(ctx, "评论不存在")
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "用户不存在")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}
