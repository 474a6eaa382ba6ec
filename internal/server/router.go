package server

import (
	handler "lot-auction/services/bidding/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(biddingService handler.BiddingServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // correlate responses and log lines
	router.Use(RequestLoggerMiddleware) // custom request logging

	biddingHandler := handler.NewBiddingHandler(biddingService)

	participants := router.Group("/participants")
	{
		participants.POST("", biddingHandler.RegisterParticipantHandler)
		participants.GET("/:participant_id", biddingHandler.GetParticipantHandler)
		participants.POST("/:participant_id/amount", biddingHandler.SubmitAmountHandler)
	}

	lots := router.Group("/lots")
	{
		lots.GET("", biddingHandler.ListLotsHandler)
		lots.GET("/:lot_id", biddingHandler.GetLotHandler)
		lots.POST("/:lot_id/intents", biddingHandler.OpenBidIntentHandler)
	}

	admin := router.Group("/admin")
	{
		admin.POST("/reload", biddingHandler.ReloadHandler)
	}

	return router
}
