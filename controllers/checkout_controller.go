package controllers

import (
	"net/http"

	"github.com/UAShoshi/car-doctor-server/middleware"
	"github.com/UAShoshi/car-doctor-server/models"
	"github.com/UAShoshi/car-doctor-server/repository"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// UpdateStatusRequest is the body of PATCH /checkouts/:id.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CheckoutController handles order records.
type CheckoutController struct {
	repo     repository.CheckoutRepository
	validate *validator.Validate
}

// NewCheckoutController creates a new CheckoutController.
func NewCheckoutController(repo repository.CheckoutRepository, validate *validator.Validate) *CheckoutController {
	return &CheckoutController{repo: repo, validate: validate}
}

// ListCheckouts returns the authenticated user's orders. The email query
// parameter must be present and must match the token's email claim; the
// store query is always scoped by the claim, never by the raw parameter, so
// there is no way to list someone else's records.
func (cc *CheckoutController) ListCheckouts(c *gin.Context) {
	claimEmail, err := middleware.GetUserEmail(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}

	queryEmail := c.Query("email")
	if queryEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email query parameter is required"})
		return
	}
	if queryEmail != claimEmail {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	checkouts, err := cc.repo.FindByEmail(c.Request.Context(), claimEmail)
	if err != nil {
		zap.L().Error("Failed to fetch checkouts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch checkouts"})
		return
	}
	if checkouts == nil {
		checkouts = []models.Checkout{}
	}
	c.JSON(http.StatusOK, checkouts)
}

// CreateCheckout inserts the submitted order. Email and status are validated
// at the boundary; every other field the client sent is persisted verbatim.
func (cc *CheckoutController) CreateCheckout(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid JSON body"})
		return
	}

	email, _ := body["email"].(string)
	if err := cc.validate.Var(email, "required,email"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "a valid email is required"})
		return
	}

	status, _ := body["status"].(string)
	if status == "" {
		status = "pending"
	}
	delete(body, "email")
	delete(body, "status")
	delete(body, "_id")

	checkout := &models.Checkout{
		Email:  email,
		Status: status,
		Extra:  body,
	}

	insertedID, err := cc.repo.Insert(c.Request.Context(), checkout)
	if err != nil {
		zap.L().Error("Failed to insert checkout", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create checkout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": insertedID.Hex(), "acknowledged": true})
}

// UpdateCheckoutStatus sets the status field of one order. No existence
// check: a zero matched count passes through in the response.
func (cc *CheckoutController) UpdateCheckoutStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "status is required"})
		return
	}

	matched, modified, err := cc.repo.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		zap.L().Error("Failed to update checkout", zap.String("id", id.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update checkout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": matched, "modifiedCount": modified})
}

// DeleteCheckout removes one order by id.
func (cc *CheckoutController) DeleteCheckout(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	deleted, err := cc.repo.DeleteByID(c.Request.Context(), id)
	if err != nil {
		zap.L().Error("Failed to delete checkout", zap.String("id", id.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete checkout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
