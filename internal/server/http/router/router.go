package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/tnyamakura/loyaltylink/internal/server/http/handlers"
	"github.com/tnyamakura/loyaltylink/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.LoyaltyFacade, reporter handlers.HealthReporter, sessions middleware.SessionState, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	pointsHandler := handlers.NewPointsHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)
	quizHandler := handlers.NewQuizHandler(facade)
	partnerHandler := handlers.NewPartnerHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)
	qrHandler := handlers.NewQRHandler(facade)
	insightsHandler := handlers.NewInsightsHandler(facade)
	healthHandler := handlers.NewHealthHandler(reporter)

	api := engine.Group("/api")
	api.GET("/public/health", healthHandler.Check)

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/guest", authHandler.Guest)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me)
	auth.GET("/onboarding", authHandler.Onboarding)
	auth.POST("/onboarding/complete", authHandler.CompleteOnboarding)

	member := api.Group("")
	member.Use(middleware.SessionRequired(sessions))

	member.GET("/loyalty-points/:userId", pointsHandler.Balance)
	member.POST("/loyalty-points/add", pointsHandler.Add)
	member.GET("/transactions/:userId", pointsHandler.Transactions)

	admin := member.Group("/admin")
	admin.GET("/overview", adminHandler.Overview)
	admin.GET("/users", adminHandler.Users)
	admin.POST("/users", adminHandler.CreateUser)
	admin.PUT("/users/:id", adminHandler.UpdateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/partners", adminHandler.Partners)
	admin.POST("/partners", adminHandler.CreatePartner)
	admin.PUT("/partners/:id", adminHandler.UpdatePartner)
	admin.DELETE("/partners/:id", adminHandler.DeletePartner)
	admin.GET("/quizzes", adminHandler.Quizzes)
	admin.POST("/quizzes", adminHandler.CreateQuiz)
	admin.PUT("/quizzes/:id", adminHandler.UpdateQuiz)
	admin.DELETE("/quizzes/:id", adminHandler.DeleteQuiz)
	admin.POST("/quizzes/:id/regenerate", adminHandler.RegenerateQuiz)
	admin.GET("/promotions", adminHandler.Promotions)
	admin.POST("/promotions", adminHandler.CreatePromotion)
	admin.PUT("/promotions/:id", adminHandler.UpdatePromotion)
	admin.DELETE("/promotions/:id", adminHandler.DeletePromotion)

	quiz := member.Group("/quiz")
	quiz.POST("/generate", quizHandler.Generate)
	quiz.POST("/submit", quizHandler.Submit)
	quiz.GET("/categories", quizHandler.Categories)
	quiz.GET("/difficulty-levels", quizHandler.DifficultyLevels)
	quiz.POST("/location/verify", partnerHandler.VerifyLocation)
	quiz.POST("/ads/watch", partnerHandler.WatchAd)
	quiz.GET("/ads/progress", partnerHandler.AdProgress)
	quiz.GET("/ads/available", partnerHandler.AvailableAds)

	member.GET("/quizzes/:quizId", quizHandler.ByID)
	member.GET("/quizzes/:quizId/questions", quizHandler.Questions)

	member.GET("/partners/nearby", partnerHandler.Nearby)
	member.GET("/partners/:partnerId", partnerHandler.Details)
	member.POST("/location/checkin/:partnerId", partnerHandler.CheckIn)

	member.GET("/payments/methods", paymentHandler.Methods)
	member.POST("/payments/methods", paymentHandler.AddMethod)
	member.GET("/subscriptions/plans", paymentHandler.Plans)
	member.POST("/subscriptions/subscribe", paymentHandler.Subscribe)

	qr := member.Group("/qr")
	qr.POST("/generate", qrHandler.Generate)
	qr.POST("/scan", qrHandler.Scan)
	qr.GET("/history", qrHandler.History)

	insights := member.Group("/insights")
	insights.POST("/sentiment", insightsHandler.Sentiment)
	insights.POST("/recommendations", insightsHandler.Recommendations)
	insights.POST("/predictive", insightsHandler.Predictive)
	insights.POST("/behavior", insightsHandler.Behavior)
	insights.POST("/finetune", insightsHandler.Finetune)

	return engine
}
