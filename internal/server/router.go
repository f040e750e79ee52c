package server

import (
	auction "auction-house/internal/auctionService"
	handler "auction-house/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService *auction.AuctionService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	userHandler := handler.NewUserHandler(auctionService)
	auctionHandler := handler.NewAuctionHandler(auctionService)
	commentHandler := handler.NewCommentHandler(auctionService)

	tokenGate := TokenAuthMiddleware(auctionService)

	users := router.Group("/users")
	{
		users.GET("", userHandler.ListUsersHandler)
		users.POST("", userHandler.CreateUserHandler)
		users.GET("/:username", userHandler.GetUserHandler)
		users.PUT("/:username", userHandler.UpdateUserHandler)
	}

	router.POST("/login", userHandler.LoginHandler)

	auctions := router.Group("/auctions", tokenGate)
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.PUT("/:auction_id", auctionHandler.EditAuctionHandler)
		auctions.POST("/:auction_id/close", auctionHandler.CloseAuctionHandler)
		auctions.POST("/:auction_id/cancel", auctionHandler.CancelAuctionHandler)
	}

	router.GET("/items/:keyword", tokenGate, auctionHandler.SearchAuctionsHandler)
	router.GET("/user/activity", tokenGate, auctionHandler.UserActivityHandler)
	router.GET("/dbproj/bid/:auction_id/:bid_amount", tokenGate, auctionHandler.PlaceBidHandler)

	comments := router.Group("/comments", tokenGate)
	{
		comments.POST("", commentHandler.AddCommentHandler)
	}

	return router
}
