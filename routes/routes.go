package routes

import (
	"github.com/gin-gonic/gin"

	config "github.com/aidlink/aidlink-go/config"
	controllers "github.com/aidlink/aidlink-go/controllers"
	middleware "github.com/aidlink/aidlink-go/middleware"
	repositories "github.com/aidlink/aidlink-go/repositories"
	services "github.com/aidlink/aidlink-go/services"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config) {
	db := cfg.MongoClient.Database(cfg.DBName)

	events := repositories.NewMongoEventRepository(db)
	users := repositories.NewMongoUserRepository(db)
	orgs := repositories.NewMongoOrganizationRepository(db)
	admins := repositories.NewMongoAdminRepository(db)
	donations := repositories.NewMongoDonationRepository(db)

	eventSvc := services.NewEventService(events)
	donationSvc := services.NewDonationService(events, users, donations)

	// public
	r.POST("/api/user/register", controllers.RegisterUser(users))
	r.POST("/api/user/login", controllers.LoginUser(cfg, users))
	r.POST("/api/user/logout", controllers.LogoutUser())
	r.POST("/admin/auth/login", controllers.AdminLogin(cfg, admins))
	r.POST("/admin/auth/logout", controllers.AdminLogout())
	r.POST("/api/admin/register-organization", controllers.RegisterOrganization(orgs))

	// protected
	auth := middleware.AuthMiddleware(cfg)

	r.GET("/admin/auth/me", auth, controllers.AdminMe())

	// event browsing and donations are open to any authenticated caller
	eventsGroup := r.Group("/api/admin/events")
	eventsGroup.Use(auth)
	{
		eventsGroup.GET("", controllers.ListEvents(eventSvc))
		eventsGroup.GET("/:id", controllers.GetEvent(eventSvc))
		eventsGroup.POST("/:id/donate", controllers.DonateToEvent(donationSvc))
		eventsGroup.GET("/:id/donations", controllers.ListEventDonations(donationSvc))

		adminOnly := eventsGroup.Group("")
		adminOnly.Use(middleware.AdminOnly())
		{
			adminOnly.POST("", controllers.CreateEvent(eventSvc))
			adminOnly.POST("/:id/cover", controllers.UploadEventCover(eventSvc))
		}
	}

	// organization review is admin-only
	orgAdmin := r.Group("/api/admin")
	orgAdmin.Use(auth, middleware.AdminOnly())
	{
		orgAdmin.GET("/pending-organizations", controllers.ListPendingOrganizations(orgs))
		orgAdmin.POST("/approve-organization/:id", controllers.ApproveOrganization(orgs))
		orgAdmin.POST("/reject-organization/:id", controllers.RejectOrganization(orgs))
		orgAdmin.POST("/organizations/:id/register-event/:eventId", controllers.RegisterOrgForEvent(orgs))
		orgAdmin.GET("/organizations/approved-for-event/:eventId", controllers.ListApprovedOrgsForEvent(orgs))
		orgAdmin.GET("/organizations/:id", controllers.GetOrganization(orgs))
	}
}
