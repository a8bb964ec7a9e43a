package handler

import (
	"net/http"

	"cafe-commerce/internal/middleware"
	"cafe-commerce/internal/service"
	"cafe-commerce/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var req registerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}

	customer, err := h.auth.Register(ctx.Request.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	response.OK(ctx, http.StatusCreated, gin.H{
		"message":  "Registration successful",
		"customer": customer,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}

	token, customer, err := h.auth.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response.OK(ctx, http.StatusOK, gin.H{
		"message":      "Login successful",
		"access_token": token,
		"customer":     customer,
	})
}

func (h *AuthHandler) GetProfile(ctx *gin.Context) {
	customer, err := h.auth.GetProfile(ctx.Request.Context(), middleware.CustomerID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}

	response.OK(ctx, http.StatusOK, gin.H{"customer": customer})
}

type updateProfileRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func (h *AuthHandler) UpdateProfile(ctx *gin.Context) {
	var req updateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}

	customer, err := h.auth.UpdateProfile(ctx.Request.Context(), middleware.CustomerID(ctx), service.UpdateProfileInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	response.OK(ctx, http.StatusOK, gin.H{
		"message":  "Profile updated successfully",
		"customer": customer,
	})
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

func (h *AuthHandler) ChangePassword(ctx *gin.Context) {
	var req changePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}

	err := h.auth.ChangePassword(ctx.Request.Context(), middleware.CustomerID(ctx), req.OldPassword, req.NewPassword)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response.OK(ctx, http.StatusOK, gin.H{"message": "Password changed successfully"})
}
