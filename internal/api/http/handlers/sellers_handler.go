package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/estate-service/internal/api/dto"
	"github.com/spec-kit/estate-service/internal/auth"
	"github.com/spec-kit/estate-service/internal/domain"
	"github.com/spec-kit/estate-service/internal/locale"
	"github.com/spec-kit/estate-service/internal/service"
	apperrors "github.com/spec-kit/estate-service/pkg/util"
)

// SellersHandler manages seller-profile endpoints.
type SellersHandler struct {
	service *service.SellerService
}

// NewSellersHandler constructs handler.
func NewSellersHandler(sellerService *service.SellerService) *SellersHandler {
	return &SellersHandler{service: sellerService}
}

// AddSeller POST /seller/addSeller. Self-service: creates an unverified
// profile for the caller.
func (h *SellersHandler) AddSeller(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateSellerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError(locale.MsgInvalidPayload, nil)
	}

	seller, err := h.service.RegisterSeller(c.Context(), principal.User.ID, service.SellerCreateInput{
		City:     req.City,
		Location: req.Location,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": locale.MsgSellerCreated,
		"seller":  sellerResponse(seller),
	})
}

// AddVerifiedSeller POST /seller/addVerifiedSeller. Admin path: verified
// profile plus role promotion for the target user.
func (h *SellersHandler) AddVerifiedSeller(c *fiber.Ctx) error {
	var req dto.CreateVerifiedSellerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError(locale.MsgInvalidPayload, nil)
	}
	if req.UserID == "" {
		return apperrors.NewMissingField(locale.MsgFillAllFields)
	}

	seller, err := h.service.RegisterVerifiedSeller(c.Context(), req.UserID, service.SellerCreateInput{
		City:     req.City,
		Location: req.Location,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": locale.MsgSellerCreated,
		"seller":  sellerResponse(seller),
	})
}

// GetSellerByID GET /seller/getSellerById/:id.
func (h *SellersHandler) GetSellerByID(c *fiber.Ctx) error {
	seller, err := h.service.GetSeller(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": locale.MsgSellerFetched,
		"seller":  sellerResponse(seller),
	})
}

func sellerResponse(seller *domain.Seller) dto.SellerResponse {
	return dto.SellerResponse{
		ID:        seller.ID,
		UserID:    seller.UserID,
		City:      seller.City,
		Location:  seller.Location,
		Verified:  seller.Verified,
		CreatedAt: seller.CreatedAt,
		UpdatedAt: seller.UpdatedAt,
	}
}
