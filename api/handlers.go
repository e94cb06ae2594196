package api

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/fly2any/alt-airports-api/airports"
	"github.com/fly2any/alt-airports-api/engine"
	"github.com/gin-gonic/gin"
)

// RecommendationRequest represents an alternative-airport recommendation request
type RecommendationRequest struct {
	Origin      string  `json:"origin" binding:"required"`
	Destination string  `json:"destination" binding:"required"`
	Date        string  `json:"date_bucket" binding:"required"`
	Cabin       string  `json:"cabin" binding:"omitempty,oneof=economy premium_economy business first"`
	RadiusKm    float64 `json:"radius_km" binding:"omitempty,min=0"`
	MaxPerSide  int     `json:"max_per_side" binding:"omitempty,min=0"`
}

var iataPattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

// CreateRecommendation returns a handler that runs the recommendation engine
// for a requested route.
func CreateRecommendation(eng *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RecommendationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		if !iataPattern.MatchString(req.Origin) || !iataPattern.MatchString(req.Destination) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Origin and destination must be 3-letter IATA codes"})
			return
		}

		cabin, err := engine.ParseCabin(req.Cabin)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		rec, err := eng.Recommend(c.Request.Context(), engine.Request{
			Origin:      req.Origin,
			Destination: req.Destination,
			DateBucket:  req.Date,
			Cabin:       cabin,
			RadiusKm:    req.RadiusKm,
			MaxPerSide:  req.MaxPerSide,
		})
		if err != nil {
			switch {
			case errors.Is(err, airports.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, engine.ErrInvalidRequest):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Recommendation failed: " + err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, rec)
	}
}

// ListAirports returns a handler for listing the airport reference set.
func ListAirports(repo *airports.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"airports": repo.All(),
			"count":    repo.Len(),
		})
	}
}

// GetAirport returns a handler for a single airport lookup.
func GetAirport(repo *airports.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		if !iataPattern.MatchString(code) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Airport code must be 3 letters"})
			return
		}
		airport, err := repo.FindByCode(code)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, airport)
	}
}

// GetNearbyAirports returns a handler that exposes candidate discovery
// around one airport.
func GetNearbyAirports(eng *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		if !iataPattern.MatchString(code) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Airport code must be 3 letters"})
			return
		}

		radiusKm, err := parseFloatQuery(c, "radius_km")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "radius_km must be a number"})
			return
		}
		maxResults, err := parseIntQuery(c, "max")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max must be an integer"})
			return
		}

		anchor, candidates, err := eng.Nearby(code, radiusKm, maxResults)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"airport":    anchor,
			"candidates": candidates,
			"count":      len(candidates),
		})
	}
}

func parseFloatQuery(c *gin.Context, name string) (float64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func parseIntQuery(c *gin.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
