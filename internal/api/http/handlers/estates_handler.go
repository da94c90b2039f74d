package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/estate-service/internal/api/dto"
	"github.com/spec-kit/estate-service/internal/auth"
	"github.com/spec-kit/estate-service/internal/domain"
	"github.com/spec-kit/estate-service/internal/locale"
	"github.com/spec-kit/estate-service/internal/service"
	apperrors "github.com/spec-kit/estate-service/pkg/util"
)

// EstatesHandler manages listing endpoints.
type EstatesHandler struct {
	service *service.EstateService
}

// NewEstatesHandler constructs handler.
func NewEstatesHandler(estateService *service.EstateService) *EstatesHandler {
	return &EstatesHandler{service: estateService}
}

// CreateEstate POST /estate/createEstate. Multipart form: listing fields plus
// one or more files under "images".
func (h *EstatesHandler) CreateEstate(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return apperrors.NewValidationError(locale.MsgInvalidPayload, nil)
	}

	wantSeller, _ := strconv.ParseBool(formValue(form, "want_seller"))
	input := service.EstateCreateInput{
		Name:            formValue(form, "name"),
		PresentationImg: formValue(form, "presentation_img"),
		Description:     formValue(form, "description"),
		Price:           formValue(form, "price"),
		Type:            formValue(form, "type"),
		CategoryID:      formValue(form, "category"),
		City:            formValue(form, "city"),
		Address:         formValue(form, "address"),
		Status:          formValue(form, "status"),
		Characteristics: formValue(form, "characteristics"),
		WantSeller:      wantSeller,
	}

	estate, err := h.service.CreateEstate(c.Context(), principal.User.ID, input, form.File["images"])
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": locale.MsgEstateCreated,
		"estate":  estateResponse(estate),
	})
}

// ListEstates GET /estate/getEstates.
func (h *EstatesHandler) ListEstates(c *fiber.Ctx) error {
	estates, err := h.service.ListEstates(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": locale.MsgEstatesFetched,
		"estates": estateResponses(estates),
	})
}

// GetEstateInfo GET /estate/getEstateInfo/:id.
func (h *EstatesHandler) GetEstateInfo(c *fiber.Ctx) error {
	estate, err := h.service.GetEstate(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": locale.MsgEstateFetched,
		"estate":  estateResponse(estate),
	})
}

// ListEstatesFromUser POST /estate/getEstatesFromUser/:id.
func (h *EstatesHandler) ListEstatesFromUser(c *fiber.Ctx) error {
	estates, err := h.service.ListEstatesByOwner(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": locale.MsgEstatesFetched,
		"estates": estateResponses(estates),
	})
}

// ApproveEstate POST /estate/approveEstate/:id.
func (h *EstatesHandler) ApproveEstate(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	estate, err := h.service.ApproveEstate(c.Context(), principal.User.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": locale.MsgEstateApproved,
		"estate":  estateResponse(estate),
	})
}

// ListPendingEstates GET /estate/getNoApprovedEstates.
func (h *EstatesHandler) ListPendingEstates(c *fiber.Ctx) error {
	estates, err := h.service.ListPendingEstates(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": locale.MsgEstatesFetched,
		"estates": estateResponses(estates),
	})
}

// AssignSeller PUT /estate/assignSeller.
func (h *EstatesHandler) AssignSeller(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.AssignSellerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError(locale.MsgInvalidPayload, nil)
	}

	estate, err := h.service.AssignSeller(c.Context(), principal.User.ID, req.EstateID, req.SellerID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": locale.MsgSellerAssigned,
		"estate":  estateResponse(estate),
	})
}

func formValue(form *multipart.Form, key string) string {
	values := form.Value[key]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func estateResponse(estate *domain.Estate) dto.EstateResponse {
	return dto.EstateResponse{
		ID:              estate.ID,
		Name:            estate.Name,
		PresentationImg: estate.PresentationImg,
		Description:     estate.Description,
		Price:           estate.Price,
		Type:            estate.Type,
		CategoryID:      estate.CategoryID,
		UserID:          estate.UserID,
		SellerID:        estate.SellerID,
		City:            estate.City,
		Address:         estate.Address,
		Status:          estate.Status,
		Characteristics: estate.Characteristics,
		Images:          estate.Images,
		WantSeller:      estate.WantSeller,
		CreatedAt:       estate.CreatedAt,
		UpdatedAt:       estate.UpdatedAt,
	}
}

func estateResponses(estates []domain.Estate) []dto.EstateResponse {
	items := make([]dto.EstateResponse, 0, len(estates))
	for i := range estates {
		items = append(items, estateResponse(&estates[i]))
	}
	return items
}
