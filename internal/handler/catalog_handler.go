package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/sefazor/shootbook-backend/internal/service"
	"github.com/sefazor/shootbook-backend/pkg/utils"
)

// CatalogHandler public listeleme ve admin CRUD uçları. Adminler
// ?all=true ile pasif kayıtları da görebilir.
type CatalogHandler struct {
	catalogService *service.CatalogService
	validator      *utils.Validator
}

func NewCatalogHandler(catalogService *service.CatalogService, validator *utils.Validator) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		validator:      validator,
	}
}

func isAdmin(c *fiber.Ctx) bool {
	role, _ := c.Locals("userRole").(models.Role)
	return role == models.RoleAdmin
}

func (h *CatalogHandler) ListLocations(c *fiber.Ctx) error {
	list, err := h.catalogService.ListLocations(c.UserContext(), isAdmin(c) && queryBool(c, "all"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.ListResponse(list, int64(len(list)), ""))
}

func (h *CatalogHandler) CreateLocation(c *fiber.Ctx) error {
	var req models.LocationRequest
	if msg := bindBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}
	l, err := h.catalogService.CreateLocation(c.UserContext(), req)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(l, "Location created"))
}

func (h *CatalogHandler) UpdateLocation(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c, "location")
	}
	var req models.LocationRequest
	if msg := bindBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}
	l, err := h.catalogService.UpdateLocation(c.UserContext(), id, req)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.SuccessResponse(l, "Location updated"))
}

func (h *CatalogHandler) DeleteLocation(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c, "location")
	}
	if err := h.catalogService.DeleteLocation(c.UserContext(), id); err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Location deleted"))
}

func (h *CatalogHandler) ListEquipment(c *fiber.Ctx) error {
	list, err := h.catalogService.ListEquipment(c.UserContext(), c.Query("category"), isAdmin(c) && queryBool(c, "all"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.ListResponse(list, int64(len(list)), ""))
}

func (h *CatalogHandler) CreateEquipment(c *fiber.Ctx) error {
	var req models.EquipmentRequest
	if msg := bindBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}
	e, err := h.catalogService.CreateEquipment(c.UserContext(), req)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(e, "Equipment created"))
}

func (h *CatalogHandler) UpdateEquipment(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c, "equipment")
	}
	var req models.EquipmentRequest
	if msg := bindBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}
	e, err := h.catalogService.UpdateEquipment(c.UserContext(), id, req)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.SuccessResponse(e, "Equipment updated"))
}

func (h *CatalogHandler) DeleteEquipment(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c, "equipment")
	}
	if err := h.catalogService.DeleteEquipment(c.UserContext(), id); err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Equipment deleted"))
}

func (h *CatalogHandler) ListTransport(c *fiber.Ctx) error {
	list, err := h.catalogService.ListTransport(c.UserContext(), isAdmin(c) && queryBool(c, "all"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.ListResponse(list, int64(len(list)), ""))
}

func (h *CatalogHandler) CreateTransport(c *fiber.Ctx) error {
	var req models.TransportRequest
	if msg := bindBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}
	t, err := h.catalogService.CreateTransport(c.UserContext(), req)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(t, "Transport created"))
}

func (h *CatalogHandler) UpdateTransport(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c, "transport")
	}
	var req models.TransportRequest
	if msg := bindBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}
	t, err := h.catalogService.UpdateTransport(c.UserContext(), id, req)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.SuccessResponse(t, "Transport updated"))
}

func (h *CatalogHandler) DeleteTransport(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badID(c, "transport")
	}
	if err := h.catalogService.DeleteTransport(c.UserContext(), id); err != nil {
		return handleError(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Transport deleted"))
}
