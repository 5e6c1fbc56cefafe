package app

import (
	"learnhub_backend/docs"
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/middleware"

	"learnhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerAuthorizedRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// 课程目录对游客开放
		public.GET("/courses", c.course.GetAllCourses)
		public.GET("/courses/search", c.course.SearchCourses)
		public.GET("/courses/:id", c.course.GetCourse)
		public.GET("/courses/:id/sessions", c.session.GetSessionsByCourse)
		public.GET("/courses/:id/comments", c.comment.GetComments)
		public.GET("/courses/:id/video", c.video.GetCourseVideo)
		public.GET("/videos/:id", c.video.GetVideo)

		public.POST("/contact", c.contact.SendMessage)
	}
}

func (a *App) registerAuthorizedRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/me", c.auth.Me)

	// 用户资料
	rg.GET("/user/profile", c.user.GetProfile)
	rg.PUT("/user/username", c.user.UpdateUsername)
	rg.PUT("/user/email", c.user.UpdateEmail)
	rg.PUT("/user/password", c.user.UpdatePassword)
	rg.PUT("/user/profile-pic", c.user.UpdateProfilePic)
	rg.GET("/user/image", c.user.GetUserImage)
	rg.DELETE("/user", c.user.DeleteUser)

	// 课程管理
	rg.POST("/courses", c.course.CreateCourse)
	rg.GET("/courses/mine", c.course.GetMyCourses)
	rg.PUT("/courses/:id", c.course.UpdateCourse)
	rg.DELETE("/courses/:id", c.course.DeleteCourse)

	// 场次管理
	rg.POST("/sessions", c.session.CreateSession)
	rg.PUT("/sessions/:id", c.session.UpdateSession)
	rg.DELETE("/sessions/:id", c.session.DeleteSession)

	// 报名
	rg.POST("/enroll", c.enrollment.Enroll)
	rg.POST("/withdraw", c.enrollment.Withdraw)
	rg.GET("/enrollments", c.enrollment.GetUserEnrollments)
	rg.GET("/enrollments/check", c.enrollment.CheckEnrolled)

	// 评论
	rg.POST("/courses/:id/comments", c.comment.AddComment)
	rg.DELETE("/comments/:id", c.comment.DeleteComment)

	// 视频
	rg.POST("/videos", c.video.UploadVideo)
	rg.DELETE("/videos/:id", c.video.DeleteVideo)

	// 留言管理
	rg.GET("/contact", c.contact.GetMessages)
}
