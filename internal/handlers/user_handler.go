package handlers

import (
	"net/http"

	"kyc-service/internal/models"
	"kyc-service/internal/services"
	"kyc-service/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.IUserService
}

func NewUserHandler(userService services.IUserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/users", h.CreateUser)
	router.GET("/users/:id", h.GetUser)
	router.PUT("/users/:id", h.UpdateUser)
	router.DELETE("/users/:id", h.DeleteUser)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("BAD_REQUEST", err.Error()))
		return
	}
	if req.Aadhaar != nil && !utils.ValidateAadhaar(*req.Aadhaar) {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("BAD_REQUEST", "aadhaar must be 12 digits"))
		return
	}

	userID, err := h.userService.CreateUser(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.CreateSuccessResponse(models.CreateUserResponse{UserID: userID}))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := utils.GetParamAsInt64(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("BAD_REQUEST", err.Error()))
		return
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(user))
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := utils.GetParamAsInt64(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("BAD_REQUEST", err.Error()))
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("BAD_REQUEST", err.Error()))
		return
	}
	if req.IsEmpty() {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("BAD_REQUEST", "no fields to update"))
		return
	}
	if req.Aadhaar != nil && !utils.ValidateAadhaar(*req.Aadhaar) {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("BAD_REQUEST", "aadhaar must be 12 digits"))
		return
	}

	if err := h.userService.UpdateUser(id, &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{"status": "updated"}))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := utils.GetParamAsInt64(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("BAD_REQUEST", err.Error()))
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{"status": "deleted"}))
}
