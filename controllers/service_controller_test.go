package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/UAShoshi/car-doctor-server/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Mock Repository ---
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockServiceRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

// --- Tests ---

func TestListServices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success - 200 with all services", func(t *testing.T) {
		mockRepo := new(MockServiceRepository)
		sc := NewServiceController(mockRepo)

		seeded := []models.Service{
			{ID: primitive.NewObjectID(), Title: "Engine Oil Change", Price: 20, ServiceID: "01"},
			{ID: primitive.NewObjectID(), Title: "Full Car Repair", Price: 300, ServiceID: "02"},
		}
		mockRepo.On("FindAll", mock.Anything).Return(seeded, nil).Once()

		router := gin.New()
		router.GET("/services", sc.ListServices)

		req, _ := http.NewRequest(http.MethodGet, "/services", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Engine Oil Change")
		assert.Contains(t, recorder.Body.String(), "Full Car Repair")
		mockRepo.AssertExpectations(t)
	})

	t.Run("Store failure - 500", func(t *testing.T) {
		mockRepo := new(MockServiceRepository)
		sc := NewServiceController(mockRepo)
		mockRepo.On("FindAll", mock.Anything).Return(nil, errors.New("connection reset")).Once()

		router := gin.New()
		router.GET("/services", sc.ListServices)

		req, _ := http.NewRequest(http.MethodGet, "/services", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestGetServiceByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success - projected fields", func(t *testing.T) {
		mockRepo := new(MockServiceRepository)
		sc := NewServiceController(mockRepo)

		id := primitive.NewObjectID()
		svc := &models.Service{ID: id, Title: "Engine Oil Change", Price: 20, ServiceID: "01", Img: "https://example.com/oil.jpg"}
		mockRepo.On("FindByID", mock.Anything, id).Return(svc, nil).Once()

		router := gin.New()
		router.GET("/services/:id", sc.GetServiceByID)

		req, _ := http.NewRequest(http.MethodGet, "/services/"+id.Hex(), nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Engine Oil Change")
		assert.Contains(t, recorder.Body.String(), id.Hex())
		mockRepo.AssertExpectations(t)
	})

	t.Run("Nonexistent id - 200 with null body", func(t *testing.T) {
		mockRepo := new(MockServiceRepository)
		sc := NewServiceController(mockRepo)

		id := primitive.NewObjectID()
		mockRepo.On("FindByID", mock.Anything, id).Return(nil, nil).Once()

		router := gin.New()
		router.GET("/services/:id", sc.GetServiceByID)

		req, _ := http.NewRequest(http.MethodGet, "/services/"+id.Hex(), nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "null", recorder.Body.String())
		mockRepo.AssertExpectations(t)
	})

	t.Run("Malformed id - 400", func(t *testing.T) {
		mockRepo := new(MockServiceRepository)
		sc := NewServiceController(mockRepo)

		router := gin.New()
		router.GET("/services/:id", sc.GetServiceByID)

		req, _ := http.NewRequest(http.MethodGet, "/services/not-an-objectid", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockRepo.AssertNotCalled(t, "FindByID")
	})
}
