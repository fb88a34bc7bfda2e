package main

import (
	"flag"
	"os"

	"workacare/internal/config"
	"workacare/internal/handler"
	"workacare/internal/logger"
	"workacare/internal/middleware"
	"workacare/internal/model"
	"workacare/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	db, err := cfg.OpenGormDB()
	if err != nil {
		logger.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(
		&model.Profile{},
		&model.SurveyResponse{},
		&model.SurveySubmission{},
		&model.AppSettings{},
		&model.CoachSession{},
		&model.Observation{},
		&model.Resource{},
		&model.SwotItem{},
		&model.StrategicGoal{},
		&model.StrategicResource{},
	); err != nil {
		logger.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	secret := []byte(cfg.Auth.JWTSecret)

	authSvc := service.NewAuthService(db)
	responseSvc := service.NewResponseService(db)
	dashboardSvc := service.NewDashboardService(responseSvc)
	settingsSvc := service.NewSettingsService(db)
	sessionSvc := service.NewSessionService(db)
	observationSvc := service.NewObservationService(db)
	resourceSvc := service.NewResourceService(db)
	strategySvc := service.NewStrategyService(db)
	aiSvc := service.NewAIService(cfg.AI)

	authH := handler.NewAuthHandler(authSvc, secret)
	responseH := handler.NewResponseHandler(responseSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc, aiSvc)
	reportH := handler.NewReportHandler(responseSvc)
	settingsH := handler.NewSettingsHandler(settingsSvc)
	sessionH := handler.NewSessionHandler(sessionSvc)
	observationH := handler.NewObservationHandler(observationSvc)
	resourceH := handler.NewResourceHandler(resourceSvc)
	strategyH := handler.NewStrategyHandler(strategySvc)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.POST("/api/auth/register", authH.Register)
	r.POST("/api/auth/login", authH.Login)

	api := r.Group("/api", middleware.JWTAuth(secret))
	api.GET("/me", authH.Me)

	api.GET("/surveys", responseH.Surveys)
	api.GET("/surveys/completed", responseH.Completed)
	api.POST("/responses", responseH.Save)
	api.GET("/responses", responseH.List)
	api.GET("/responses/export", responseH.Export)
	api.GET("/responses/:id/export", responseH.ExportOne)

	api.GET("/dashboard", dashboardH.Overview)
	api.POST("/dashboard/analysis", dashboardH.Analysis)
	api.POST("/reports", reportH.Generate)
	api.POST("/reports/export", reportH.Export)

	api.GET("/settings", settingsH.Get)
	api.POST("/settings/:kind", settingsH.AddItem)
	api.DELETE("/settings/:kind", settingsH.RemoveItem)

	api.GET("/resources", resourceH.List)

	supervisor := api.Group("", middleware.RequireRole("supervisor"))
	supervisor.DELETE("/responses/:id", responseH.Delete)

	supervisor.GET("/sessions", sessionH.List)
	supervisor.POST("/sessions", sessionH.Create)
	supervisor.PUT("/sessions/:id", sessionH.Save)
	supervisor.POST("/sessions/:id/complete", sessionH.Complete)
	supervisor.DELETE("/sessions/:id", sessionH.Delete)

	supervisor.GET("/observations", observationH.List)
	supervisor.POST("/observations", observationH.Create)
	supervisor.GET("/observations/checklist", observationH.Checklist)

	supervisor.POST("/resources", resourceH.Create)
	supervisor.DELETE("/resources/:id", resourceH.Delete)

	supervisor.GET("/strategy/swot", strategyH.ListSwot)
	supervisor.POST("/strategy/swot", strategyH.AddSwot)
	supervisor.DELETE("/strategy/swot/:id", strategyH.DeleteSwot)
	supervisor.GET("/strategy/goals", strategyH.ListGoals)
	supervisor.POST("/strategy/goals", strategyH.AddGoal)
	supervisor.PUT("/strategy/goals/:id/status", strategyH.UpdateGoalStatus)
	supervisor.DELETE("/strategy/goals/:id", strategyH.DeleteGoal)
	supervisor.GET("/strategy/resources", strategyH.ListResources)
	supervisor.POST("/strategy/resources", strategyH.AddResource)
	supervisor.PUT("/strategy/resources/:id/allocated", strategyH.SetResourceAllocated)
	supervisor.DELETE("/strategy/resources/:id", strategyH.DeleteResource)

	logger.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Error("server failed", "err", err)
	}
}
