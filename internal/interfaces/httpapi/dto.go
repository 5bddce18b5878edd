package httpapi

import (
	"github.com/courtsight/nba-analytics/internal/domain/pipeline"
)

type tradeValidateRequest struct {
	PlayersA []string `json:"playersA" validate:"required,min=1,dive,required"`
	PlayersB []string `json:"playersB" validate:"required,min=1,dive,required"`
	Season   string   `json:"season" validate:"required"`
}

type pipelineStatusDTO struct {
	Active bool               `json:"active"`
	Report pipeline.RunReport `json:"report"`
}
