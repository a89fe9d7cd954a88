package server

import (
	"net/http"

	accounthandler "grain-market/services/account/handler"
	auctionhandler "grain-market/services/auction/handler"
	cataloghandler "grain-market/services/catalog/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(
	accountService accounthandler.AccountServiceInterface,
	auctionService auctionhandler.AuctionServiceInterface,
	catalogService cataloghandler.CatalogServiceInterface,
	authMW *AuthMiddleware,
) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	accountHandler := accounthandler.NewAccountHandler(accountService)
	auctionHandler := auctionhandler.NewAuctionHandler(auctionService)
	catalogHandler := cataloghandler.NewCatalogHandler(catalogService)

	api := router.Group("/api")

	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", accountHandler.RegisterHandler)
		authRoutes.POST("/login", accountHandler.LoginHandler)
		authRoutes.GET("/me", authMW.Authenticate, accountHandler.MeHandler)
		authRoutes.GET("/pending-accreditations", authMW.Authenticate, authMW.RequireAdmin, accountHandler.PendingAccreditationsHandler)
		authRoutes.POST("/update-accreditation", authMW.Authenticate, authMW.RequireAdmin, accountHandler.UpdateAccreditationHandler)
	}

	auctions := api.Group("/auctions")
	{
		auctions.POST("/create", authMW.Authenticate, authMW.RequireAdmin, auctionHandler.CreateAuctionHandler)
		auctions.GET("/list", auctionHandler.ListAuctionsHandler)
		auctions.POST("/bid", authMW.Authenticate, authMW.RequireApprovedBuyer, auctionHandler.PlaceBidHandler)
		auctions.POST("/select-winner", authMW.Authenticate, authMW.RequireAdmin, auctionHandler.SelectWinnerHandler)
		auctions.GET("/:id", auctionHandler.GetAuctionHandler)
		auctions.GET("/:id/bids", authMW.Authenticate, authMW.RequireAdmin, auctionHandler.ListBidsHandler)
	}

	api.GET("/grains", catalogHandler.ListGrainsHandler)
	api.POST("/orders", catalogHandler.CreateOrderHandler)
	api.POST("/contacts", catalogHandler.CreateContactHandler)

	return router
}
