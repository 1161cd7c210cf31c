package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"orders-api/internal/models"
)

func TestErrorHandler_WritesGenericResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/boom", func(c *gin.Context) {
		c.Error(errors.New("store unreachable"))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	var errOut models.ErrorOutput
	if err := json.Unmarshal(w.Body.Bytes(), &errOut); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	if errOut.Error != "Internal server error" {
		t.Errorf("Error = %s, want Internal server error", errOut.Error)
	}
}

func TestErrorHandler_PreservesHandlerResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/reported", func(c *gin.Context) {
		c.Error(errors.New("store unreachable"))
		c.JSON(http.StatusInternalServerError, models.ErrorOutput{Error: "Internal server error"})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reported", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	var errOut models.ErrorOutput
	if err := json.Unmarshal(w.Body.Bytes(), &errOut); err != nil {
		t.Fatalf("Response body is not a single JSON object: %v, body: %s", err, w.Body.String())
	}

	if errOut.Error != "Internal server error" {
		t.Errorf("Error = %s, want Internal server error", errOut.Error)
	}
}

func TestErrorHandler_BindErrorsAreBadRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/bind", func(c *gin.Context) {
		c.Error(errors.New("unexpected token")).SetType(gin.ErrorTypeBind)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bind", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
