package controller

import (
	"errors"
	"io"
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CourseController struct {
	CourseService  *service.CourseService
	VideoService   *service.VideoService
	StorageService *service.StorageService
}

func NewCourseController(
	courseService *service.CourseService,
	videoService *service.VideoService,
	storageService *service.StorageService,
) *CourseController {
	return &CourseController{
		CourseService:  courseService,
		VideoService:   videoService,
		StorageService: storageService,
	}
}

// 课程图片统一走表单上传，返回存储后端的访问地址
func (c *CourseController) storeImage(ctx *gin.Context, file *multipart.FileHeader) (string, bool) {
	if !util.HasAllowedExtension(file.Filename, util.AllowedImageExtensions) {
		util.BadRequest(ctx, util.ErrInvalidImageExt.Error())
		return "", false
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return "", false
	}
	defer src.Close()

	if _, err := util.ValidateMimeType(src, []string{util.MimeImage}); err != nil {
		util.BadRequest(ctx, util.ErrInvalidImageExt.Error())
		return "", false
	}
	if seeker, ok := src.(io.Seeker); ok {
		seeker.Seek(0, io.SeekStart)
	}

	filename := util.GenerateUploadName("courses", file.Filename)
	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return "", false
	}
	return url, true
}

// CreateCourse godoc
// @Summary 创建课程
// @Description 创建课程，同时生成占位视频行
// @Tags 课程
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   name formData string true "课程名称"
// @Param   description formData string true "课程简介"
// @Param   image formData file false "课程封面"
// @Success 201 {object} util.Response{data=model.Course} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	name := ctx.PostForm("name")
	description := ctx.PostForm("description")
	if name == "" || description == "" {
		util.BadRequest(ctx, "缺少课程名称或简介")
		return
	}

	image := ""
	if file, err := ctx.FormFile("image"); err == nil {
		url, ok := c.storeImage(ctx, file)
		if !ok {
			return
		}
		image = url
	}

	course, err := c.CourseService.CreateCourse(name, description, image, claims.Username)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "用户不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, course)
}

// GetAllCourses godoc
// @Summary 课程目录
// @Tags 课程
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Course} "成功"
// @Router /api/courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.CourseService.GetAllCourses()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// SearchCourses godoc
// @Summary 课程检索
// @Description 按名称子串检索，大小写不敏感
// @Tags 课程
// @Produce  json
// @Param   name query string true "检索词"
// @Success 200 {object} util.Response{data=[]model.Course} "成功"
// @Router /api/courses/search [get]
func (c *CourseController) SearchCourses(ctx *gin.Context) {
	name := ctx.Query("name")
	if name == "" {
		util.BadRequest(ctx, "缺少检索词")
		return
	}

	courses, err := c.CourseService.SearchByName(name)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// GetCourse godoc
// @Summary 课程详情
// @Tags 课程
// @Produce  json
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	course, err := c.CourseService.GetCourse(id)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, "课程不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	videoURL, err := c.VideoService.GetCourseVideoURL(id)
	if err != nil && !errors.Is(err, util.ErrCourseNotFound) {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"course":    course,
		"video_url": videoURL,
	})
}

// GetMyCourses godoc
// @Summary 我创建的课程
// @Tags 课程
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Course} "成功"
// @Router /api/courses/mine [get]
func (c *CourseController) GetMyCourses(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courses, err := c.CourseService.GetMyCourses(claims.Username)
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

// UpdateCourse godoc
// @Summary 更新课程
// @Description 更新课程信息和主视频URL，封面被替换时清理旧文件
// @Tags 课程
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "课程ID"
// @Param   name formData string true "课程名称"
// @Param   description formData string true "课程简介"
// @Param   video_url formData string false "主视频URL"
// @Param   image formData file false "课程封面"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	name := ctx.PostForm("name")
	description := ctx.PostForm("description")
	videoURL := ctx.PostForm("video_url")
	if name == "" || description == "" {
		util.BadRequest(ctx, "缺少课程名称或简介")
		return
	}

	image := ""
	if file, err := ctx.FormFile("image"); err == nil {
		url, ok := c.storeImage(ctx, file)
		if !ok {
			return
		}
		image = url
	}

	oldImage, err := c.CourseService.UpdateCourse(id, name, description, image, videoURL)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, "课程不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	// 封面换了才清理旧文件，清理失败不影响本次更新。
	// 库里存的是访问URL，删除前剥掉存储后端的前缀还原对象名。
	if image != "" && oldImage != "" && oldImage != image {
		filename := strings.TrimPrefix(oldImage, c.StorageService.GetURL(""))
		if err := c.StorageService.Delete(ctx.Request.Context(), filename); err != nil {
			logger.Log.Warn("remove old course image failed",
				zap.String("image", oldImage), zap.Error(err))
		}
	}

	util.Success(ctx, nil)
}

// DeleteCourse godoc
// @Summary 删除课程
// @Description 删除课程并级联删除其评论
// @Tags 课程
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if err := c.CourseService.DeleteCourse(id); err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, "课程不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}
