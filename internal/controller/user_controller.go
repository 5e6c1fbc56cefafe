package controller

import (
	"errors"
	"io"
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService    *service.UserService
	StorageService *service.StorageService
}

func NewUserController(userService *service.UserService, storageService *service.StorageService) *UserController {
	return &UserController{
		UserService:    userService,
		StorageService: storageService,
	}
}

func (c *UserController) currentUsername(ctx *gin.Context) (string, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return "", false
	}
	return claims.Username, true
}

// GetProfile godoc
// @Summary 获取个人资料
// @Tags 用户
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.User} "成功"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/user/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	username, ok := c.currentUsername(ctx)
	if !ok {
		return
	}

	user, err := c.UserService.GetProfile(username)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "用户不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, user)
}

type UpdateUsernameRequest struct {
	Username string `json:"username" binding:"required"`
}

// UpdateUsername godoc
// @Summary 修改用户名
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body UpdateUsernameRequest true "新用户名"
// @Success 200 {object} util.Response "成功"
// @Failure 409 {object} util.Response "用户名已被占用"
// @Router /api/user/username [put]
func (c *UserController) UpdateUsername(ctx *gin.Context) {
	username, ok := c.currentUsername(ctx)
	if !ok {
		return
	}

	var req UpdateUsernameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.UpdateUsername(req.Username, username); err != nil {
		switch {
		case errors.Is(err, util.ErrUsernameTaken):
			util.Error(ctx, 409, "该用户名已被占用")
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "用户不存在")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

type UpdateEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UpdateEmail godoc
// @Summary 修改邮箱
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body UpdateEmailRequest true "新邮箱"
// @Success 200 {object} util.Response "成功"
// @Router /api/user/email [put]
func (c *UserController) UpdateEmail(ctx *gin.Context) {
	username, ok := c.currentUsername(ctx)
	if !ok {
		return
	}

	var req UpdateEmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.UpdateEmail(req.Email, username); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "用户不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

type UpdatePasswordRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

// UpdatePassword godoc
// @Summary 修改密码
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body UpdatePasswordRequest true "新密码"
// @Success 200 {object} util.Response "成功"
// @Router /api/user/password [put]
func (c *UserController) UpdatePassword(ctx *gin.Context) {
	username, ok := c.currentUsername(ctx)
	if !ok {
		return
	}

	var req UpdatePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.UpdatePassword(username, req.Password); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "用户不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// UpdateProfilePic godoc
// @Summary 上传头像
// @Description 上传头像图片并更新个人资料
// @Tags 用户
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   image formData file true "头像图片"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 400 {object} util.Response "文件类型不合法"
// @Router /api/user/profile-pic [put]
func (c *UserController) UpdateProfilePic(ctx *gin.Context) {
	username, ok := c.currentUsername(ctx)
	if !ok {
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		util.BadRequest(ctx, "缺少头像文件")
		return
	}
	if !util.HasAllowedExtension(file.Filename, util.AllowedImageExtensions) {
		util.BadRequest(ctx, util.ErrInvalidImageExt.Error())
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	if _, err := util.ValidateMimeType(src, []string{util.MimeImage}); err != nil {
		util.BadRequest(ctx, util.ErrInvalidImageExt.Error())
		return
	}
	if seeker, ok := src.(io.Seeker); ok {
		seeker.Seek(0, io.SeekStart)
	}

	filename := util.GenerateUploadName("avatars", file.Filename)
	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if err := c.UserService.UpdateProfilePic(url, username); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "用户不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"profile_pic": url})
}

// GetUserImage godoc
// @Summary 获取头像地址
// @Tags 用户
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /api/user/image [get]
func (c *UserController) GetUserImage(ctx *gin.Context) {
	username, ok := c.currentUsername(ctx)
	if !ok {
		return
	}

	image, err := c.UserService.GetUserImage(username)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "用户不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"profile_pic": image})
}

// DeleteUser godoc
// @Summary 注销账号
// @Description 删除当前用户，名下还有课程时拒绝
// @Tags 用户
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response "成功"
// @Failure 409 {object} util.Response "名下存在课程"
// @Router /api/user [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.UserService.DeleteUser(claims.UserID); err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "用户不存在")
		case errors.Is(err, util.ErrUserHasCourses):
			util.Error(ctx, 409, "名下存在课程，无法注销")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}
