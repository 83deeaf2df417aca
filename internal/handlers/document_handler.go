package handlers

import (
	"net/http"

	"kyc-service/internal/services"
	"kyc-service/utils"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	documentService services.IDocumentService
}

func NewDocumentHandler(documentService services.IDocumentService) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
	}
}

func (h *DocumentHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/users/:id/documents", h.UploadDocument)
	router.GET("/users/:id/documents", h.ListDocuments)
	router.DELETE("/documents/:doc_id", h.DeleteDocument)
}

func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	userID, err := utils.GetParamAsInt64(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("BAD_REQUEST", err.Error()))
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("BAD_REQUEST", "File and doc_type required"))
		return
	}
	defer file.Close()

	docType := c.Request.FormValue("doc_type")
	if docType == "" {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("BAD_REQUEST", "File and doc_type required"))
		return
	}

	result, err := h.documentService.UploadDocument(c.Request.Context(), userID, docType, file, header)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.CreateSuccessResponse(result))
}

func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	userID, err := utils.GetParamAsInt64(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("BAD_REQUEST", err.Error()))
		return
	}

	docs, err := h.documentService.ListDocuments(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(docs))
}

func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	docID, err := utils.GetParamAsInt64(c, "doc_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("BAD_REQUEST", err.Error()))
		return
	}

	if err := h.documentService.DeleteDocument(docID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{"status": "deleted"}))
}
