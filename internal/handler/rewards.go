package handler

import (
	"net/http"

	"cafe-commerce/internal/middleware"
	"cafe-commerce/internal/service"
	"cafe-commerce/pkg/response"

	"github.com/gin-gonic/gin"
)

type RewardsHandler struct {
	rewards *service.RewardsService
}

func NewRewardsHandler(rewards *service.RewardsService) *RewardsHandler {
	return &RewardsHandler{rewards: rewards}
}

func (h *RewardsHandler) GetLedger(ctx *gin.Context) {
	customer, transactions, err := h.rewards.GetLedger(ctx.Request.Context(), middleware.CustomerID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}

	response.OK(ctx, http.StatusOK, gin.H{
		"reward_points": customer.RewardPoints,
		"transactions":  transactions,
		"count":         len(transactions),
	})
}
