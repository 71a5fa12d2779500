package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/ktmtfamily/family-tree-api/internal/admin"
	"github.com/ktmtfamily/family-tree-api/internal/config"
	"github.com/ktmtfamily/family-tree-api/internal/event"
	"github.com/ktmtfamily/family-tree-api/internal/imagehost"
	"github.com/ktmtfamily/family-tree-api/internal/member"
	"github.com/ktmtfamily/family-tree-api/internal/meta"
	"github.com/ktmtfamily/family-tree-api/internal/shared/database"
	"github.com/ktmtfamily/family-tree-api/internal/shared/metrics"
	"github.com/ktmtfamily/family-tree-api/internal/shared/middleware"
)

// repositories groups the store-specific repository implementations
type repositories struct {
	members  member.Repository
	events   event.Repository
	settings admin.Repository
}

func newRepositories(conn database.Conn) (*repositories, error) {
	switch store := conn.(type) {
	case *database.Mongo:
		return &repositories{
			members:  member.NewMongoRepository(store.Users()),
			events:   event.NewMongoRepository(store.Events()),
			settings: admin.NewMongoRepository(store.Settings()),
		}, nil
	case *database.SQL:
		return &repositories{
			members:  member.NewGormRepository(store.DB),
			events:   event.NewGormRepository(store.DB),
			settings: admin.NewGormRepository(store.DB),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported store %T", conn)
	}
}

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, conn database.Conn, uploader imagehost.Uploader, recorder *metrics.Recorder) error {
	// Meta handler (banner, health check)
	metaHandler := meta.NewHandler(cfg, conn)
	router.GET("/", metaHandler.Root)
	router.GET("/health", metaHandler.Health)
	router.GET("/metrics", gin.WrapH(recorder.Handler()))

	// repository
	repos, err := newRepositories(conn)
	if err != nil {
		return err
	}

	// service
	memberService := member.NewMemberService(repos.members, uploader, cfg.Storage.PlaceholderPhotoURL)
	adminService := admin.NewAdminService(repos.settings, cfg.Admin)
	eventService := event.NewEventService(repos.events)

	// handler
	memberHandler := member.NewMemberHandler(memberService)
	adminHandler := admin.NewAdminHandler(adminService)
	eventHandler := event.NewEventHandler(eventService)

	// Public routes
	router.POST("/register", middleware.BodyLimit(cfg.Server.MaxUploadBytes), memberHandler.Register)
	router.POST("/login", memberHandler.Login)
	router.GET("/tree", memberHandler.Tree)
	router.GET("/events", eventHandler.List)

	// Admin routes. Only /admin/login checks credentials; the rest are open.
	adminGroup := router.Group("/admin")
	{
		adminGroup.POST("/login", adminHandler.Login)
		adminGroup.PUT("/change-password", adminHandler.ChangePassword)

		adminGroup.GET("/pending", memberHandler.ListPending)
		adminGroup.PUT("/approve/:id", memberHandler.Approve)
		adminGroup.DELETE("/reject/:id", memberHandler.Reject)

		adminGroup.POST("/events", eventHandler.Create)
		adminGroup.PUT("/events/:id", eventHandler.Update)
		adminGroup.DELETE("/events/:id", eventHandler.Delete)
	}

	return nil
}
