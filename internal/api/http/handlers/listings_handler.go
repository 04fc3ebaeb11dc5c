package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bruinrent/internal/api/dto"
	"github.com/spec-kit/bruinrent/internal/auth"
	"github.com/spec-kit/bruinrent/internal/service"
	apperrors "github.com/spec-kit/bruinrent/pkg/util"
)

// ListingsHandler manages listing endpoints. All routes sit behind the auth
// middleware, so a principal is always present.
type ListingsHandler struct {
	service *service.ListingService
}

// NewListingsHandler constructs handler.
func NewListingsHandler(listingService *service.ListingService) *ListingsHandler {
	return &ListingsHandler{service: listingService}
}

// List handles GET /api/listings.
func (h *ListingsHandler) List(c *fiber.Ctx) error {
	listings, err := h.service.List(c.Context())
	if err != nil {
		return err
	}

	items := dto.NewListingResponses(listings)
	return c.JSON(fiber.Map{
		"status":  "success",
		"results": len(items),
		"count":   len(items),
		"data":    items,
	})
}

// MyListings handles GET /api/listings/my-listings.
func (h *ListingsHandler) MyListings(c *fiber.Ctx) error {
	principal, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	listings, err := h.service.ListByOwner(c.Context(), principal.ID)
	if err != nil {
		return err
	}

	items := dto.NewListingResponses(listings)
	return c.JSON(fiber.Map{
		"status":  "success",
		"results": len(items),
		"count":   len(items),
		"data":    items,
	})
}

// Get handles GET /api/listings/:id.
func (h *ListingsHandler) Get(c *fiber.Ctx) error {
	listing, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   dto.NewListingResponse(listing),
	})
}

// Create handles POST /api/listings.
func (h *ListingsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CreateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	listing, err := h.service.Create(c.Context(), principal.ID, service.ListingCreateInput{
		Title:            req.Title,
		Price:            req.Price,
		Address:          req.Address,
		Bedrooms:         req.Bedrooms,
		DistanceFromUCLA: req.DistanceFromUCLA,
		LeaseDuration:    req.LeaseDuration,
		Description:      req.Description,
		Images:           req.Images,
		Availability:     req.Availability,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   dto.NewListingResponse(listing),
	})
}

// Update handles PUT /api/listings/:id.
func (h *ListingsHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.UpdateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	listing, err := h.service.Update(c.Context(), c.Params("id"), principal.ID, service.ListingPatch{
		Title:            req.Title,
		Price:            req.Price,
		Address:          req.Address,
		Bedrooms:         req.Bedrooms,
		DistanceFromUCLA: req.DistanceFromUCLA,
		LeaseDuration:    req.LeaseDuration,
		Description:      req.Description,
		Images:           req.Images,
		Availability:     req.Availability,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   dto.NewListingResponse(listing),
	})
}

// Delete handles DELETE /api/listings/:id.
func (h *ListingsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.service.Delete(c.Context(), c.Params("id"), principal.ID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Listing deleted successfully",
	})
}
