package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	ContactService *service.ContactService
}

func NewContactController(contactService *service.ContactService) *ContactController {
	return &ContactController{ContactService: contactService}
}

type ContactRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SendMessage godoc
// @Summary 提交留言
// @Description 访客或登录用户提交联系表单
// @Tags 联系
// @Accept  json
// @Produce  json
// @Param   body body ContactRequest true "留言内容"
// @Success 201 {object} util.Response "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/contact [post]
func (c *ContactController) SendMessage(ctx *gin.Context) {
	var req ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	// 未登录也允许留言，登录用户顺带记录用户名
	username := ""
	if claims := util.GetUserFromContext(ctx); claims != nil {
		username = claims.Username
	}

	if err := c.ContactService.SendMessage(req.Email, req.Subject, req.Message, username); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, nil)
}

// GetMessages godoc
// @Summary 留言列表
// @Tags 联系
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Contact} "成功"
// @Router /api/contact [get]
func (c *ContactController) GetMessages(ctx *gin.Context) {
	messages, err := c.ContactService.GetMessages()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, messages)
}
