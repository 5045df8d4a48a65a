package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resale/backend/internal/interfaces/http/dto"
)

func TestSetupValidator(t *testing.T) {
	// Should not panic
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
	assert.NotNil(t, v)
}

func TestFormatValidationErrors(t *testing.T) {
	type quoteInput struct {
		Destination string `json:"destination" binding:"required,len=2"`
		WeightGrams int    `json:"weight_grams" binding:"required,gt=0"`
	}

	SetupValidator()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		var req quoteInput
		if err := c.ShouldBindJSON(&req); err != nil {
			details := FormatValidationErrors(err)
			c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse("Validation failed", "", details))
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	t.Run("reports each failed field by its json name", func(t *testing.T) {
		body := strings.NewReader(`{"destination": "USA", "weight_grams": 0}`)
		req := httptest.NewRequest("POST", "/test", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)

		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		require.Len(t, resp.Error.Details, 2)

		fields := []string{resp.Error.Details[0].Field, resp.Error.Details[1].Field}
		assert.Contains(t, fields, "destination")
		assert.Contains(t, fields, "weight_grams")
	})

	t.Run("accepts valid input", func(t *testing.T) {
		body := strings.NewReader(`{"destination": "US", "weight_grams": 450}`)
		req := httptest.NewRequest("POST", "/test", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("returns nil for non-validator errors", func(t *testing.T) {
		assert.Nil(t, FormatValidationErrors(assert.AnError))
	})
}

func TestValidationMessage(t *testing.T) {
	type input struct {
		Required string `validate:"required"`
		Min      int    `validate:"min=1"`
		Max      int    `validate:"max=100"`
		Len      string `validate:"len=2"`
		OneOf    string `validate:"oneof=jpy usd"`
		GT       int    `validate:"gt=0"`
	}

	v := validator.New()
	err := v.Struct(input{Required: "", Min: 0, Max: 500, Len: "abc", OneOf: "eur", GT: -1})
	require.Error(t, err)

	expected := map[string]string{
		"Required": "This field is required",
		"Min":      "Must be at least 1",
		"Max":      "Must be at most 100",
		"Len":      "Must be exactly 2 characters",
		"OneOf":    "Must be one of: jpy usd",
		"GT":       "Must be greater than 0",
	}

	validationErrs := err.(validator.ValidationErrors)
	for _, e := range validationErrs {
		t.Run(e.Field(), func(t *testing.T) {
			assert.Equal(t, expected[e.Field()], validationMessage(e))
		})
	}
}
