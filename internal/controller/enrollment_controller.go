package controller

import (
	"errors"
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	EnrollmentService *service.EnrollmentService
	CourseService     *service.CourseService
}

func NewEnrollmentController(enrollmentService *service.EnrollmentService, courseService *service.CourseService) *EnrollmentController {
	return &EnrollmentController{
		EnrollmentService: enrollmentService,
		CourseService:     courseService,
	}
}

type EnrollRequest struct {
	CourseID uint `json:"course_id" binding:"required"`
}

// Enroll godoc
// @Summary 报名课程
// @Description 为当前用户报名课程，生成个人报名场次
// @Tags 报名
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body EnrollRequest true "课程ID"
// @Success 201 {object} util.Response "报名成功"
// @Failure 404 {object} util.Response "课程或用户不存在"
// @Router /api/enroll [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exists, err := c.CourseService.CourseExists(req.CourseID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if !exists {
		util.NotFound(ctx, "课程不存在")
		return
	}

	if err := c.EnrollmentService.Enroll(req.CourseID, claims.Username); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "用户不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, nil)
}

// Withdraw godoc
// @Summary 退课
// @Description 删除当前用户在该课程下的报名记录和关联场次
// @Tags 报名
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body EnrollRequest true "课程ID"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 404 {object} util.Response "没有可退的报名"
// @Router /api/withdraw [post]
func (c *EnrollmentController) Withdraw(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	removed, err := c.EnrollmentService.Withdraw(claims.Username, req.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNoSessionsFound):
			util.NotFound(ctx, "没有可退的报名")
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "用户不存在")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"removed": removed})
}

// CheckEnrolled godoc
// @Summary 报名状态
// @Description 查询当前用户是否已报名某课程
// @Tags 报名
// @Produce  json
// @Security BearerAuth
// @Param   course_id query int true "课程ID"
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /api/enrollments/check [get]
func (c *EnrollmentController) CheckEnrolled(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID := util.MustParseUint(ctx.Query("course_id"))
	if courseID == 0 {
		util.BadRequest(ctx, "缺少课程ID")
		return
	}

	enrolled, err := c.EnrollmentService.CheckEnrolled(claims.Username, courseID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "用户不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"enrolled": enrolled})
}

// GetUserEnrollments godoc
// @Summary 我的报名
// @Description 当前用户已报名的课程，按场次粒度返回
// @Tags 报名
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Course} "成功"
// @Router /api/enrollments [get]
func (c *EnrollmentController) GetUserEnrollments(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courses, err := c.EnrollmentService.GetUserEnrollments(claims.Username)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "用户不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, courses)
}
