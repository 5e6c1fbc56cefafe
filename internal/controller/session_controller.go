package controller

import (
	"errors"
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionService *service.SessionService
	CourseService  *service.CourseService
}

func NewSessionController(sessionService *service.SessionService, courseService *service.CourseService) *SessionController {
	return &SessionController{
		SessionService: sessionService,
		CourseService:  courseService,
	}
}

// 课程存在性在这一层把关，服务层不重复校验
func (c *SessionController) courseExists(ctx *gin.Context, courseID uint) bool {
	exists, err := c.CourseService.CourseExists(courseID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return false
	}
	if !exists {
		util.NotFound(ctx, "课程不存在")
		return false
	}
	return true
}

type SessionRequest struct {
	CourseID  uint   `json:"course_id" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// CreateSession godoc
// @Summary 创建场次
// @Description 为课程新建一条场次
// @Tags 场次
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body SessionRequest true "场次信息"
// @Success 201 {object} util.Response{data=object} "创建成功"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if !c.courseExists(ctx, req.CourseID) {
		return
	}

	id, err := c.SessionService.CreateSession(req.CourseID, req.StartTime, req.EndTime, claims.Username)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "用户不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, gin.H{"session_id": id})
}

// UpdateSession godoc
// @Summary 更新场次
// @Description 更新场次的课程和起止时间
// @Tags 场次
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "场次ID"
// @Param   body body SessionRequest true "场次信息"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "场次或课程不存在"
// @Router /api/sessions/{id} [put]
func (c *SessionController) UpdateSession(ctx *gin.Context) {
	sessionID := util.MustParseUint(ctx.Param("id"))

	var req SessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exists, err := c.SessionService.SessionExists(sessionID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if !exists {
		util.NotFound(ctx, "场次不存在")
		return
	}

	if !c.courseExists(ctx, req.CourseID) {
		return
	}

	rows, err := c.SessionService.UpdateSession(sessionID, req.CourseID, req.StartTime, req.EndTime)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if rows == 0 {
		util.NotFound(ctx, "场次不存在")
		return
	}
	util.Success(ctx, nil)
}

// DeleteSession godoc
// @Summary 删除场次
// @Tags 场次
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "场次ID"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "场次不存在"
// @Router /api/sessions/{id} [delete]
func (c *SessionController) DeleteSession(ctx *gin.Context) {
	sessionID := util.MustParseUint(ctx.Param("id"))

	exists, err := c.SessionService.SessionExists(sessionID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if !exists {
		util.NotFound(ctx, "场次不存在")
		return
	}

	rows, err := c.SessionService.DeleteSession(sessionID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if rows == 0 {
		util.NotFound(ctx, "场次不存在")
		return
	}
	util.Success(ctx, nil)
}

// GetSessionsByCourse godoc
// @Summary 课程场次列表
// @Tags 场次
// @Produce  json
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response{data=[]model.Session} "成功"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/courses/{id}/sessions [get]
func (c *SessionController) GetSessionsByCourse(ctx *gin.Context) {
	courseID := util.MustParseUint(ctx.Param("id"))

	if !c.courseExists(ctx, courseID) {
		return
	}

	sessions, err := c.SessionService.GetSessionsByCourse(courseID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, sessions)
}
