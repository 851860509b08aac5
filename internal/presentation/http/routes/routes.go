// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"github.com/ModelHouseContracting/modelhouse-go/internal/application/container"
	"github.com/ModelHouseContracting/modelhouse-go/internal/presentation/http/handlers"
	"github.com/ModelHouseContracting/modelhouse-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures the site API routes and middleware.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.CORSMiddleware(container.Config.AllowedOrigins))

	pageHandlers := handlers.NewPageHandlers(container.PageService, container.Documents, container.Logger, container.PerfTracker)
	adminHandlers := handlers.NewAdminHandlers(container.AdminService, container.Logger, container.PerfTracker)
	authHandlers := handlers.NewAuthHandlers(container.AuthService, container.Catalog, container.Config.AdminSessionTTL, container.Logger, container.PerfTracker)
	contactHandlers := handlers.NewContactHandlers(container.ContactService, container.Logger)
	healthHandlers := handlers.NewHealthHandlers(container.Documents, container.Sessions, container.Broadcaster, container.PerfTracker)
	eventsHandlers := handlers.NewEventsHandlers(container.Broadcaster, container.Documents, container.Logger)

	api := r.Group("/api/v1")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandlers.GetHealth)
		api.GET("/events", eventsHandlers.GetEvents)
		api.GET("/translations", pageHandlers.GetTranslations)

		// Page projections of the published document
		pages := api.Group("/pages")
		{
			pages.GET("/shell", pageHandlers.GetShell)
			pages.GET("/home", pageHandlers.GetHome)
			pages.GET("/services", pageHandlers.GetServices)
			pages.GET("/about", pageHandlers.GetAbout)
			pages.GET("/gallery", pageHandlers.GetGallery)
			pages.GET("/team", pageHandlers.GetTeam)
			pages.GET("/contact", pageHandlers.GetContact)
			pages.GET("/profile", pageHandlers.GetProfile)
		}

		api.POST("/contact", contactHandlers.Submit)

		adminAPI := api.Group("/admin")
		{
			adminAPI.POST("/login", authHandlers.Login)
			adminAPI.POST("/logout", authHandlers.Logout)

			// Session-scoped draft editor
			editor := adminAPI.Group("")
			editor.Use(middleware.AdminSessionMiddleware(container.AdminService))
			{
				editor.GET("/draft", adminHandlers.GetDraft)
				editor.PATCH("/draft/global", adminHandlers.UpdateGlobal)

				editor.PATCH("/draft/text/:lang/general", adminHandlers.UpdateGeneral)
				editor.PATCH("/draft/text/:lang/services/:key", adminHandlers.UpdateService)
				editor.PATCH("/draft/text/:lang/working-hours/:id", adminHandlers.UpdateWorkingHour)
				editor.PATCH("/draft/text/:lang/team-members/:id", adminHandlers.UpdateTeamMemberText)
				editor.PATCH("/draft/text/:lang/lists/:list/:index", adminHandlers.UpdateListItem)

				editor.POST("/draft/team-members", adminHandlers.AddTeamMember)
				editor.PATCH("/draft/team-members/:id/image", adminHandlers.UpdateTeamMemberImage)
				editor.DELETE("/draft/team-members/:id", adminHandlers.DeleteTeamMember)

				editor.POST("/draft/gallery", adminHandlers.AddGalleryProject)
				editor.POST("/draft/gallery/:id/edit", adminHandlers.BeginProjectEdit)
				editor.DELETE("/draft/gallery/:id", adminHandlers.DeleteGalleryProject)
				editor.PATCH("/draft/staged/gallery", adminHandlers.UpdateStagedProject)
				editor.POST("/draft/staged/gallery/commit", adminHandlers.CommitProjectEdit)
				editor.DELETE("/draft/staged/gallery", adminHandlers.CancelProjectEdit)

				editor.POST("/draft/team-photos", adminHandlers.AddTeamPhoto)
				editor.POST("/draft/team-photos/:id/edit", adminHandlers.BeginPhotoEdit)
				editor.DELETE("/draft/team-photos/:id", adminHandlers.DeleteTeamPhoto)
				editor.PATCH("/draft/staged/team-photos", adminHandlers.UpdateStagedPhoto)
				editor.POST("/draft/staged/team-photos/commit", adminHandlers.CommitPhotoEdit)
				editor.DELETE("/draft/staged/team-photos", adminHandlers.CancelPhotoEdit)

				editor.POST("/save", adminHandlers.Save)
				editor.POST("/publish", adminHandlers.Publish)
				editor.POST("/discard", adminHandlers.Discard)
			}
		}
	}

	return r
}

// SetupStoreRoutes configures the content store routes.
func SetupStoreRoutes(container *container.StoreContainer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())

	recordHandlers := handlers.NewRecordHandlers(container.RecordService, container.Logger, container.PerfTracker)
	healthHandlers := handlers.NewHealthHandlers(nil, nil, nil, container.PerfTracker)

	r.GET("/health", healthHandlers.GetHealth)

	records := r.Group("/content")
	{
		records.GET("", recordHandlers.ListRecords)
		records.GET("/:key", recordHandlers.GetRecord)
		records.PUT("/:key", middleware.BearerAuthMiddleware(container.Config.AuthToken), recordHandlers.PutRecord)
	}

	return r
}
