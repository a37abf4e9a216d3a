package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gardenhub/garden-api/docs"
	v1 "github.com/gardenhub/garden-api/internal/api/handler/v1"
	"github.com/gardenhub/garden-api/internal/api/middleware"
	"github.com/gardenhub/garden-api/internal/config"
	"github.com/gardenhub/garden-api/internal/repository"
	"github.com/gardenhub/garden-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, repos *repository.Repositories) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(repos)
	userHandler := s.initUserHandler(repos)
	plotHandler := s.initPlotHandler(repos)
	activityHandler := s.initActivityHandler(repos)
	resourceHandler := s.initResourceHandler(repos)
	eventHandler := s.initEventHandler(repos)
	s.MountHandlers(authHandler, userHandler, plotHandler, activityHandler, resourceHandler, eventHandler)

	return s
}

func (s *Server) initAuthHandler(repos *repository.Repositories) *v1.AuthHandler {
	svc := service.NewAuthService(repos.Users)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(repos *repository.Repositories) *v1.UserHandler {
	svc := service.NewUserService(repos.Users)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initPlotHandler(repos *repository.Repositories) *v1.PlotHandler {
	svc := service.NewPlotService(repos.Plots, repos.Users, repos.Activities)
	handler := v1.NewPlotHandler(svc)

	return handler
}

func (s *Server) initActivityHandler(repos *repository.Repositories) *v1.ActivityHandler {
	svc := service.NewActivityService(repos.Activities, repos.Plots)
	handler := v1.NewActivityHandler(svc)

	return handler
}

func (s *Server) initResourceHandler(repos *repository.Repositories) *v1.ResourceHandler {
	svc := service.NewResourceService(repos.Resources)
	handler := v1.NewResourceHandler(svc)

	return handler
}

func (s *Server) initEventHandler(repos *repository.Repositories) *v1.EventHandler {
	svc := service.NewEventService(repos.Events)
	handler := v1.NewEventHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	plotHandler *v1.PlotHandler,
	activityHandler *v1.ActivityHandler,
	resourceHandler *v1.ResourceHandler,
	eventHandler *v1.EventHandler,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/signup", authHandler.HandleSignup)
		public.POST("/auth/login", authHandler.HandleLogin)

		public.GET("/users", userHandler.HandleListUsers)
		public.GET("/users/:userID", userHandler.HandleGetUser)
		public.GET("/plots", plotHandler.HandleListPlots)
		public.GET("/plots/:plotID", plotHandler.HandleGetPlot)
		public.GET("/activities", activityHandler.HandleListActivities)
		public.GET("/activities/:activityID", activityHandler.HandleGetActivity)
		public.GET("/resources", resourceHandler.HandleListResources)
		public.GET("/resources/:resourceID", resourceHandler.HandleGetResource)
		public.GET("/events", eventHandler.HandleListEvents)
		public.GET("/events/:eventID", eventHandler.HandleGetEvent)
	}

	protected := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		protected.GET("/users/me", userHandler.HandleGetCurrentUser)
		protected.PUT("/users/:userID", userHandler.HandleUpdateUser)

		protected.POST("/plots", plotHandler.HandleCreatePlot)
		protected.PUT("/plots/:plotID", plotHandler.HandleUpdatePlot)
		protected.DELETE("/plots/:plotID", plotHandler.HandleDeletePlot)

		protected.POST("/activities", activityHandler.HandleCreateActivity)
		protected.PUT("/activities/:activityID", activityHandler.HandleUpdateActivity)
		protected.DELETE("/activities/:activityID", activityHandler.HandleDeleteActivity)

		protected.POST("/resources", resourceHandler.HandleCreateResource)
		protected.PUT("/resources/:resourceID", resourceHandler.HandleUpdateResource)
		protected.DELETE("/resources/:resourceID", resourceHandler.HandleDeleteResource)

		protected.POST("/events", eventHandler.HandleCreateEvent)
		protected.PUT("/events/:eventID", eventHandler.HandleUpdateEvent)
		protected.DELETE("/events/:eventID", eventHandler.HandleDeleteEvent)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Community Garden API"
	docs.SwaggerInfo.Description = "Management API for community garden members, plots, activities, resources and events."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
