// Package api exposes the recommendation engine over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/fly2any/alt-airports-api/airports"
	"github.com/fly2any/alt-airports-api/config"
	"github.com/fly2any/alt-airports-api/engine"
	"github.com/fly2any/alt-airports-api/pkg/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, eng *engine.Engine, repo *airports.Repository, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "airports": repo.Len()})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/recommendations", CreateRecommendation(eng))

		v1.GET("/airports", ListAirports(repo))
		v1.GET("/airports/:code", GetAirport(repo))
		v1.GET("/airports/:code/nearby", GetNearbyAirports(eng))
	}
}
