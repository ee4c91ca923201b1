package site

import (
	"github.com/gin-gonic/gin"

	"takeoutpages/internal/monitoring"
	"takeoutpages/internal/upstream"
)

// Server handles directory, storefront and admin requests.
type Server struct {
	router  *gin.Engine
	client  *upstream.Client
	monitor *monitoring.Monitor
}

// NewServer creates a new site server instance.
func NewServer(client *upstream.Client, monitor *monitoring.Monitor) *Server {
	server := &Server{
		router:  gin.Default(),
		client:  client,
		monitor: monitor,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures the API routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	s.router.GET("/pages/:state/:city/:slug", s.handleRestaurantPage)
	s.router.GET("/browse/states", s.handleStates)
	s.router.GET("/browse/:state/cities", s.handleCities)
	s.router.GET("/browse/:state/:city/restaurants", s.handleCityRestaurants)
	s.router.GET("/search", s.handleSearch)

	s.router.POST("/orders/:state/:city/:slug", s.handleCreateOrder)
	s.router.GET("/orders/:id", s.handleGetOrder)

	admin := s.router.Group("/admin")
	{
		admin.GET("/leads", s.handleLeads)
		admin.GET("/leads/csv", s.handleLeadsCSV)
		admin.GET("/menus/:state/:city/:slug", s.handleAdminMenu)
		admin.PUT("/menus/:state/:city/:slug", s.handleUpsertMenu)
		admin.PUT("/menus/:state/:city/:slug/template", s.handleSetTemplate)
		admin.GET("/ws", s.handleWebSocket)
	}
}

// Router returns the Gin router.
func (s *Server) Router() *gin.Engine {
	return s.router
}
