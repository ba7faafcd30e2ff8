package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chartserver/internal/models"
	"chartserver/internal/services"
)

func handleInvalidInputError(c *gin.Context, err error) {
	zap.S().Infow("Invalid input error",
		"route", c.FullPath(),
		"error", err,
	)
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: err.Error()})
}

func handleNotFound(c *gin.Context, detail string) {
	zap.S().Infow("Not found",
		"route", c.FullPath(),
		"detail", detail,
	)
	c.JSON(http.StatusNotFound, models.ErrorResponse{Detail: detail})
}

func handleInternalServerError(c *gin.Context, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}
	zap.S().Errorw("Internal server error",
		"route", c.FullPath(),
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Detail: err.Error()})
}

// handleStoreError maps ErrNotFound to 404 with detail and everything else to 500.
func handleStoreError(c *gin.Context, err error, detail string) {
	if errors.Is(err, services.ErrNotFound) {
		handleNotFound(c, detail)
		return
	}
	handleInternalServerError(c, err)
}
