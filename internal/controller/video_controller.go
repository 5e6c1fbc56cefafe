package controller

import (
	"errors"
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type VideoController struct {
	VideoService *service.VideoService
}

func NewVideoController(videoService *service.VideoService) *VideoController {
	return &VideoController{VideoService: videoService}
}

// UploadVideo godoc
// @Summary 上传视频
// @Description 上传场次视频，自动探测时长并挂到当前用户的场次下
// @Tags 视频
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   title formData string true "视频标题"
// @Param   description formData string false "视频简介"
// @Param   video formData file true "视频文件"
// @Success 201 {object} util.Response{data=model.Video} "上传成功"
// @Failure 400 {object} util.Response "文件类型不合法"
// @Failure 404 {object} util.Response "没有可关联的场次"
// @Router /api/videos [post]
func (c *VideoController) UploadVideo(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	title := ctx.PostForm("title")
	if title == "" {
		util.BadRequest(ctx, "缺少视频标题")
		return
	}
	description := ctx.PostForm("description")

	file, err := ctx.FormFile("video")
	if err != nil {
		util.BadRequest(ctx, "缺少视频文件")
		return
	}

	video, err := c.VideoService.UploadVideo(ctx.Request.Context(), claims.Username, title, description, file)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "用户不存在")
		case errors.Is(err, util.ErrSessionNotFound):
			util.NotFound(ctx, "没有可关联的场次")
		case errors.Is(err, util.ErrInvalidVideoExt):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, video)
}

// GetVideo godoc
// @Summary 视频详情
// @Tags 视频
// @Produce  json
// @Param   id path int true "视频ID"
// @Success 200 {object} util.Response{data=model.Video} "成功"
// @Failure 404 {object} util.Response "视频不存在"
// @Router /api/videos/{id} [get]
func (c *VideoController) GetVideo(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	video, err := c.VideoService.GetVideo(id)
	if err != nil {
		if errors.Is(err, util.ErrVideoNotFound) {
			util.NotFound(ctx, "视频不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, video)
}

// GetCourseVideo godoc
// @Summary 课程主视频
// @Description 课程页展示的主视频URL
// @Tags 视频
// @Produce  json
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/courses/{id}/video [get]
func (c *VideoController) GetCourseVideo(ctx *gin.Context) {
	courseID := util.MustParseUint(ctx.Param("id"))

	url, err := c.VideoService.GetCourseVideoURL(courseID)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, "课程不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"video_url": url})
}

// DeleteVideo godoc
// @Summary 删除视频
// @Tags 视频
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "视频ID"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "视频不存在"
// @Router /api/videos/{id} [delete]
func (c *VideoController) DeleteVideo(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if err := c.VideoService.DeleteVideo(id); err != nil {
		if errors.Is(err, util.ErrVideoNotFound) {
			util.NotFound(ctx, "视频不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}
