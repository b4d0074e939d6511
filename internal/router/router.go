package router

import (
	"Club_Community/internal/config"
	"Club_Community/internal/handler"
	"Club_Community/internal/middleware"
	"Club_Community/internal/pkg"
	"Club_Community/internal/repository/mysql"
	"Club_Community/internal/service"

	"github.com/gin-gonic/gin"
)

func InitRouter(cfg config.Config) *gin.Engine {
	r := gin.Default()

	notifier := service.NewNotifier(pkg.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	})

	auth := handler.NewAuthHandler(mysql.DB, cfg.DefaultCommunity)
	user := handler.NewUserHandler(mysql.DB, cfg.DefaultCommunity)
	community := handler.NewCommunityHandler(mysql.DB)
	membership := handler.NewMembershipHandler(mysql.DB)
	post := handler.NewPostHandler(mysql.DB)
	announcement := handler.NewAnnouncementHandler(mysql.DB)
	event := handler.NewEventHandler(mysql.DB, notifier)
	payment := handler.NewPaymentHandler(mysql.DB)
	album := handler.NewAlbumHandler(mysql.DB)
	upload := handler.NewUploadHandler(cfg.UploadDir)

	// 上传文件静态访问
	r.Static("/uploads", cfg.UploadDir)

	// 认证相关接口
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/wechat-sso", auth.WeChatSSO)
	}

	// token相关接口
	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", auth.TokenRefresh)
	}

	// 公开只读接口：社区与活动目录
	public := r.Group("/api")
	{
		public.GET("/communities", community.List)
		public.GET("/communities/by-name", community.GetByName)
		public.GET("/communities/:id", community.Get)
		public.GET("/events", event.List)
		public.GET("/events/:id", event.Get)
	}

	// 登录态接口
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.POST("/auth/logout", auth.Logout)

		// 用户
		api.GET("/users", user.List)
		api.GET("/users/:id", user.Get)
		api.PATCH("/users/:id", user.Update)

		// 社区
		api.POST("/communities", community.Create)

		// 会籍
		api.POST("/memberships", membership.Create)
		api.GET("/memberships", membership.List)
		api.PATCH("/memberships/:id", membership.Update)

		// 帖子
		api.POST("/posts", post.Create)
		api.GET("/posts", post.List)
		api.PATCH("/posts/:id/pin", post.SetPinned)
		api.DELETE("/posts/:id", post.Delete)
		api.POST("/posts/:id/comments", post.Comment)
		api.GET("/posts/:id/comments", post.ListComments)
		api.POST("/posts/:id/likes", post.Like)
		api.GET("/posts/:id/likes", post.LikeCount)

		// 公告
		api.POST("/announcements", announcement.Create)
		api.GET("/announcements", announcement.List)
		api.GET("/announcements/:id", announcement.Get)
		api.PATCH("/announcements/:id", announcement.Update)
		api.DELETE("/announcements/:id", announcement.Delete)

		// 活动
		api.POST("/events", event.Create)
		api.PATCH("/events/:id", event.Update)
		api.DELETE("/events/:id", event.Delete)
		api.POST("/events/:id/register", event.Register)
		api.DELETE("/events/:id/register", event.CancelRegistration)
		api.GET("/events/:id/registrations", event.ListRegistrations)

		// 缴费与看板
		api.POST("/payments", payment.Create)
		api.GET("/payments", payment.List)
		api.PATCH("/payments/:id", payment.Update)
		api.GET("/stats/dashboard", payment.DashboardStats)

		// 相册
		api.POST("/albums", album.Create)
		api.GET("/albums", album.List)
		api.GET("/albums/:id", album.Get)
		api.PATCH("/albums/:id", album.Update)
		api.DELETE("/albums/:id", album.Delete)
		api.POST("/albums/:id/photos", album.AddPhoto)
		api.GET("/albums/:id/photos", album.ListPhotos)
		api.DELETE("/albums/photos/:photo_id", album.DeletePhoto)

		// 上传
		api.POST("/upload", upload.Upload)
	}

	return r
}
