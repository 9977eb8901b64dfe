package handlers

import (
	"net/http"

	"product-compare/internal/api/models"
	"product-compare/internal/i18n"
	"product-compare/internal/model"

	"github.com/gin-gonic/gin"
)

func statusFor(kind model.ErrorKind) int {
	switch kind {
	case model.KindMissingField:
		return http.StatusBadRequest
	case model.KindInsufficientData, model.KindInvalidInput:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeError reports a domain error with its kind as the code and the
// user-facing text in the session language as a detail.
func writeError(c *gin.Context, err error, lang i18n.Language) {
	kind := model.KindOf(err)
	c.JSON(statusFor(kind), models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    string(kind),
			Message: err.Error(),
			Details: map[string]interface{}{
				"user_message": i18n.For(lang).Error(kind),
			},
		},
	})
}

func writeBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}

func labelsInfo(lang i18n.Language) models.LabelsInfo {
	lb := i18n.For(lang)
	return models.LabelsInfo{Metric: lb.MetricLabel, Best: lb.BestLabel, Mean: lb.MeanLabel}
}
