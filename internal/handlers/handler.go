package handlers

import (
	"net/http"
	"sync"

	"building_directory/internal/logger"
	"building_directory/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// Options carries router-level settings resolved from configuration.
type Options struct {
	// CORSOrigins, when non-empty, enables CORS for the listed origins.
	CORSOrigins []string
}

var registerValidatorsOnce sync.Once

// registerValidators installs custom binding rules. Idempotent because the
// binding engine is process-global and tests build many routers.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("geocoords", func(fl validator.FieldLevel) bool {
				_, _, err := parseGeoCoordinates(fl.Field().String())
				return err == nil
			})
		}
	})
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes(opts Options) *gin.Engine {
	registerValidators()

	router := gin.New()
	router.Use(gin.Recovery(), h.requestIDMiddleware)
	if len(opts.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: opts.CORSOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{"Authorization", "Content-Type"},
		}))
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned buildings API
	h.registerBuildingRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerBuildingRoutes(r *gin.Engine) {
	buildings := r.Group("/api/v1.0/buildings")

	// Lookup by display name carries no caller identity and no token.
	buildings.GET("/buildingByName/:buildingDisplayName", h.getBuildingByDisplayName)

	authed := buildings.Group("", h.principalMiddleware)
	{
		authed.GET("/sortByName", h.listBuildingsByName)
		authed.GET("/sortByDistance", h.listBuildingsByDistance)
		authed.GET("/searchForBuildings/:searchString", h.searchBuildings)
		authed.GET("/rooms/:roomUpn", h.getRoomByUpn)
		authed.GET("/spaces/:spaceUpn", h.getWorkspaceByUpn)
		authed.GET("/:buildingUpn/rooms", h.listRoomsOfBuilding)
		authed.GET("/:buildingUpn/spaces", h.listSpacesOfBuilding)
		authed.GET("/:buildingUpn/schedule", h.getWorkspacesSchedule)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
