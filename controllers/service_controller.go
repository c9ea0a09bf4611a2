package controllers

import (
	"net/http"

	"github.com/UAShoshi/car-doctor-server/repository"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServiceController serves the read-only service catalog.
type ServiceController struct {
	repo repository.ServiceRepository
}

// NewServiceController creates a new ServiceController.
func NewServiceController(repo repository.ServiceRepository) *ServiceController {
	return &ServiceController{repo: repo}
}

// ListServices returns every catalog entry, unprojected.
func (sc *ServiceController) ListServices(c *gin.Context) {
	services, err := sc.repo.FindAll(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to fetch services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetServiceByID returns one catalog entry with only the booking-page fields.
// A nonexistent id yields a 200 with a null body, matching what the store
// hands back for an empty lookup.
func (sc *ServiceController) GetServiceByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	service, err := sc.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		zap.L().Error("Failed to fetch service", zap.String("id", id.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch service"})
		return
	}
	c.JSON(http.StatusOK, service)
}
