package routes

import (
	"log"
	"time"

	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// shared services
	rt := services.NewRealtimeHub()
	ledgerSvc := services.NewLedgerService(config.DB, config.Ledger, rt)
	foodLogSvc := services.NewFoodLogService(ledgerSvc)
	exerciseSvc := services.NewExerciseLogService(ledgerSvc)
	sleepSvc := services.NewSleepService(ledgerSvc)
	bodySvc := services.NewBodyService(ledgerSvc)
	analyticsSvc := services.NewAnalyticsService(config.DB)
	foodSvc := services.NewFoodService(services.NewNutritionService(), services.NewRekognitionService())

	pushSvc, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push service unavailable: %v", err)
		pushSvc = nil
	}
	services.InitAlertDeps(config.DB, rt, pushSvc)

	// controllers
	userCtl := controllers.NewUserController(ledgerSvc)
	foodCtl := controllers.NewFoodController(foodSvc)
	foodLogCtl := controllers.NewFoodLogController(foodLogSvc)
	exerciseCtl := controllers.NewExerciseLogController(exerciseSvc)
	sleepCtl := controllers.NewSleepController(sleepSvc)
	bodyCtl := controllers.NewBodyController(bodySvc)
	ledgerCtl := controllers.NewLedgerController(ledgerSvc)
	analyticsCtl := controllers.NewAnalyticsController(analyticsSvc)
	realtimeCtl := controllers.NewRealtimeController(rt)
	deviceCtl := controllers.NewDeviceController(pushSvc)

	// writes share one sliding-window gate per user
	writeLimit := middlewares.RateLimitMiddleware(middlewares.NewRateLimiter(60, time.Minute))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", userCtl.GetProfile)
		user.PUT("/profile", userCtl.UpdateProfile)
		user.POST("/onboard", userCtl.Onboard)
		user.GET("/metabolics", userCtl.GetMetabolics)
		user.DELETE("/account", userCtl.DeleteAccount)
		user.POST("/mfa/toggle", userCtl.ToggleMFA)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
		user.POST("/devices", deviceCtl.Register)
	}

	// Food database lookups
	food := r.Group("/food")
	food.Use(middlewares.AuthMiddleware())
	{
		food.GET("/search", foodCtl.Search)
		food.POST("/recognize", foodCtl.Recognize)
		food.GET("/preview", foodCtl.Preview)
	}

	// Food log events
	foodLogs := r.Group("/food-logs")
	foodLogs.Use(middlewares.AuthMiddleware())
	{
		foodLogs.GET("", foodLogCtl.List)
		foodLogs.GET("/:id", foodLogCtl.Get)
		foodLogs.POST("", writeLimit, foodLogCtl.Create)
		foodLogs.PUT("/:id", writeLimit, foodLogCtl.Update)
		foodLogs.DELETE("/:id", writeLimit, foodLogCtl.Delete)
	}

	// Exercise log events
	exercises := r.Group("/exercises")
	exercises.Use(middlewares.AuthMiddleware())
	{
		exercises.GET("", exerciseCtl.List)
		exercises.POST("", writeLimit, exerciseCtl.Create)
		exercises.PUT("/:id", writeLimit, exerciseCtl.Update)
		exercises.DELETE("/:id", writeLimit, exerciseCtl.Delete)
	}

	// Sleep
	sleep := r.Group("/sleep")
	sleep.Use(middlewares.AuthMiddleware())
	{
		sleep.GET("", sleepCtl.Get)
		sleep.GET("/range", sleepCtl.ListRange)
		sleep.PUT("", writeLimit, sleepCtl.Upsert)
	}

	// Body measurements
	body := r.Group("/body")
	body.Use(middlewares.AuthMiddleware())
	{
		body.GET("", bodyCtl.Get)
		body.GET("/history", bodyCtl.List)
		body.PUT("", writeLimit, bodyCtl.Upsert)
		body.POST("/recalculate", writeLimit, bodyCtl.Recalculate)
	}

	// Daily ledger
	ledgerGroup := r.Group("/ledger")
	ledgerGroup.Use(middlewares.AuthMiddleware())
	{
		ledgerGroup.GET("/day", ledgerCtl.GetDay)
		ledgerGroup.GET("/range", ledgerCtl.GetRange)
	}

	// Analytics
	analytics := r.Group("/analytics")
	analytics.Use(middlewares.AuthMiddleware())
	{
		analytics.GET("/summary", analyticsCtl.GetAnalyticsSummary)
		analytics.GET("/weekly", analyticsCtl.GetWeeklyOverview)
	}

	// Goals + alerts
	goals := r.Group("/goals")
	goals.Use(middlewares.AuthMiddleware())
	{
		goals.GET("", controllers.GetDailyGoals)
		goals.PUT("", controllers.UpsertDailyGoals)
	}
	alerts := r.Group("/alerts")
	alerts.Use(middlewares.AuthMiddleware())
	{
		alerts.GET("", controllers.ListAlerts)
	}

	// Realtime
	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/ledger", realtimeCtl.LedgerWS)
	}

	return r
}
