package site

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"takeoutpages/internal/demo"
	"takeoutpages/internal/models"
	"takeoutpages/internal/monitoring"
	"takeoutpages/internal/upstream"
)

func pagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.Query("page_size"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "takeoutpages is running"})
}

// handleRestaurantPage returns the full storefront view model for one
// restaurant. ?template= previews a different layout without storing it.
func (s *Server) handleRestaurantPage(c *gin.Context) {
	page := BuildRestaurantPage(
		c.Request.Context(),
		s.client,
		c.Param("state"),
		c.Param("city"),
		c.Param("slug"),
		c.Query("template"),
	)
	if page == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	s.monitor.RecordPageAssembly(page.TemplateKey, !page.OrderingEnabled)
	monitoring.PageAssemblies.WithLabelValues(page.TemplateKey).Inc()
	if !page.OrderingEnabled {
		monitoring.MockMenuFallbacks.Inc()
	}

	c.JSON(http.StatusOK, page)
}

func (s *Server) handleStates(c *gin.Context) {
	states, err := s.client.ListStates(c.Request.Context())
	if err != nil {
		monitoring.UpstreamErrors.WithLabelValues("browse").Inc()
		c.JSON(http.StatusBadGateway, gin.H{"error": "Directory is temporarily unavailable"})
		return
	}
	c.JSON(http.StatusOK, states)
}

func (s *Server) handleCities(c *gin.Context) {
	page, pageSize := pagination(c)
	state := c.Param("state")
	cities, err := s.client.ListCities(c.Request.Context(), state, page, pageSize)
	if err != nil {
		monitoring.UpstreamErrors.WithLabelValues("browse").Inc()
		c.JSON(http.StatusBadGateway, gin.H{"error": "Directory is temporarily unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hero": StateHero(state), "cities": cities})
}

func (s *Server) handleCityRestaurants(c *gin.Context) {
	page, pageSize := pagination(c)
	restaurants, err := s.client.ListRestaurants(c.Request.Context(), c.Param("state"), c.Param("city"), page, pageSize)
	if err != nil {
		monitoring.UpstreamErrors.WithLabelValues("browse").Inc()
		c.JSON(http.StatusBadGateway, gin.H{"error": "Directory is temporarily unavailable"})
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// handleSearch proxies full-text search. An empty query short-circuits to
// an empty page without touching the data API.
func (s *Server) handleSearch(c *gin.Context) {
	page, pageSize := pagination(c)
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusOK, models.Paginated[models.SearchResult]{
			Items:    []models.SearchResult{},
			Page:     page,
			PageSize: pageSize,
		})
		return
	}

	results, err := s.client.Search(c.Request.Context(), q, c.Query("state"), c.Query("city"), page, pageSize)
	if err != nil {
		monitoring.UpstreamErrors.WithLabelValues("search").Inc()
		c.JSON(http.StatusBadGateway, gin.H{"error": "Search is temporarily unavailable"})
		return
	}
	c.JSON(http.StatusOK, results)
}

// handleCreateOrder forwards an order payload to the data API. Any
// failure maps to one generic, retry-eligible message; the client keeps
// its cart and may resubmit.
func (s *Server) handleCreateOrder(c *gin.Context) {
	var payload models.OrderCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(payload.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order must contain at least one item"})
		return
	}

	order, err := s.client.CreateOrder(c.Request.Context(), c.Param("state"), c.Param("city"), c.Param("slug"), payload)
	if err != nil {
		monitoring.UpstreamErrors.WithLabelValues("orders").Inc()
		c.JSON(http.StatusBadGateway, gin.H{"error": "Unable to place order. Please try again."})
		return
	}

	s.monitor.IncrCounter("orders_placed_total")
	monitoring.OrdersPlaced.Inc()
	c.JSON(http.StatusCreated, order)
}

func (s *Server) handleGetOrder(c *gin.Context) {
	order, err := s.client.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// Admin handlers. The admin token rides on the upstream client; this
// service does not interpret it.

func (s *Server) handleLeads(c *gin.Context) {
	page, pageSize := pagination(c)
	leads, err := s.client.Leads(c.Request.Context(), upstream.LeadsQuery{
		State:    c.Query("state"),
		SortBy:   c.Query("sort_by"),
		SortDir:  c.Query("sort_dir"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		monitoring.UpstreamErrors.WithLabelValues("admin").Inc()
		c.JSON(http.StatusBadGateway, gin.H{"error": "Leads are temporarily unavailable"})
		return
	}
	c.JSON(http.StatusOK, leads)
}

func (s *Server) handleLeadsCSV(c *gin.Context) {
	csv, err := s.client.LeadsCSV(c.Request.Context(), upstream.LeadsQuery{
		State:   c.Query("state"),
		SortBy:  c.Query("sort_by"),
		SortDir: c.Query("sort_dir"),
	})
	if err != nil {
		monitoring.UpstreamErrors.WithLabelValues("admin").Inc()
		c.JSON(http.StatusBadGateway, gin.H{"error": "Export is temporarily unavailable"})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=leads.csv")
	c.Data(http.StatusOK, "text/csv", csv)
}

func (s *Server) handleAdminMenu(c *gin.Context) {
	menu, err := s.client.AdminMenu(c.Request.Context(), c.Param("state"), c.Param("city"), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
		return
	}
	c.JSON(http.StatusOK, menu)
}

func (s *Server) handleUpsertMenu(c *gin.Context) {
	var payload models.MenuUpsert
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	menu, err := s.client.UpsertMenu(c.Request.Context(), c.Param("state"), c.Param("city"), c.Param("slug"), payload)
	if err != nil {
		monitoring.UpstreamErrors.WithLabelValues("admin").Inc()
		c.JSON(http.StatusBadGateway, gin.H{"error": "Menu could not be saved"})
		return
	}
	c.JSON(http.StatusOK, menu)
}

// handleSetTemplate stores a restaurant's template choice. The key must
// name a known template; an empty key clears the stored preference.
func (s *Server) handleSetTemplate(c *gin.Context) {
	var payload models.TemplateUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if payload.TemplateKey != "" && !demo.IsTemplateKey(payload.TemplateKey) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown template key: " + payload.TemplateKey})
		return
	}

	detail, err := s.client.SetTemplate(c.Request.Context(), c.Param("state"), c.Param("city"), c.Param("slug"), payload.TemplateKey)
	if err != nil {
		monitoring.UpstreamErrors.WithLabelValues("admin").Inc()
		c.JSON(http.StatusBadGateway, gin.H{"error": "Template could not be saved"})
		return
	}
	c.JSON(http.StatusOK, detail)
}
