package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sushimonsters/restaurant-app/models"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// RespondJSON writes the standard envelope. Message is always an opaque
// flash-message key; the presentation layer localizes it.
func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// RespondServiceError maps a service-layer error kind onto an HTTP status and
// the given flash key. Unknown errors are treated as store failures.
func RespondServiceError(c *gin.Context, err error, flashKey string) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, models.ErrForbidden), errors.Is(err, models.ErrSelfModification):
		code = http.StatusForbidden
	case errors.Is(err, models.ErrInvalidInput), errors.Is(err, models.ErrInvalidStatus):
		code = http.StatusBadRequest
	}
	if code == http.StatusInternalServerError {
		ErrorLogger.Printf("store error: %v", err)
	}
	RespondJSON(c, code, flashKey, nil)
}

// FormatCurrencyUAH formats an amount as hryvnia, space-separated thousands
// and a comma decimal mark. Example: 1234.5 -> "1 234,50 UAH".
func FormatCurrencyUAH(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	return strings.Join(groups, " ") + "," + decimalPart + " UAH"
}
