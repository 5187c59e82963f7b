package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/sefazor/shootbook-backend/internal/service"
)

type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

func (h *PortfolioHandler) List(c *fiber.Ctx) error {
	photographerID, ok := paramID(c, "id")
	if !ok {
		return badID(c, "photographer")
	}

	images, err := h.portfolioService.List(c.UserContext(), photographerID)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(models.ListResponse(images, int64(len(images)), "Portfolio retrieved successfully"))
}

// Upload multipart "file" alanını bekler
func (h *PortfolioHandler) Upload(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "No file uploaded")
	}

	image, err := h.portfolioService.Upload(c.UserContext(), userID, file)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(image, "Image uploaded successfully"))
}

func (h *PortfolioHandler) Delete(c *fiber.Ctx) error {
	imageID, ok := paramID(c, "imageId")
	if !ok {
		return badID(c, "image")
	}

	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.portfolioService.Delete(c.UserContext(), userID, imageID); err != nil {
		return handleError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Image deleted successfully"))
}
