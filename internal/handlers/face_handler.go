package handlers

import (
	"net/http"

	"kyc-service/internal/services"
	"kyc-service/utils"

	"github.com/gin-gonic/gin"
)

type FaceHandler struct {
	faceService services.IFaceService
}

func NewFaceHandler(faceService services.IFaceService) *FaceHandler {
	return &FaceHandler{
		faceService: faceService,
	}
}

func (h *FaceHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/users/:id/face", h.UploadFace)
	router.GET("/users/:id/face", h.ListFaces)
	router.DELETE("/faces/:face_id", h.DeleteFace)
}

func (h *FaceHandler) UploadFace(c *gin.Context) {
	userID, err := utils.GetParamAsInt64(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("BAD_REQUEST", err.Error()))
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("BAD_REQUEST", "File required"))
		return
	}
	defer file.Close()

	result, err := h.faceService.UploadFace(c.Request.Context(), userID, file, header)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.CreateSuccessResponse(result))
}

func (h *FaceHandler) ListFaces(c *gin.Context) {
	userID, err := utils.GetParamAsInt64(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("BAD_REQUEST", err.Error()))
		return
	}

	faces, err := h.faceService.ListFaces(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(faces))
}

func (h *FaceHandler) DeleteFace(c *gin.Context) {
	faceID, err := utils.GetParamAsInt64(c, "face_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("BAD_REQUEST", err.Error()))
		return
	}

	if err := h.faceService.DeleteFace(faceID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{"status": "deleted"}))
}
