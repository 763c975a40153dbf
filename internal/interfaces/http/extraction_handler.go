package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jcamargo/almacen-api/internal/application/dto"
	"github.com/jcamargo/almacen-api/internal/application/inventory"
	"github.com/jcamargo/almacen-api/internal/domain"
)

// ExtractionHandler maneja las peticiones HTTP para Extraction.
type ExtractionHandler struct {
	uc *inventory.ExtractionUseCase
}

// NewExtractionHandler construye el handler.
func NewExtractionHandler(uc *inventory.ExtractionUseCase) *ExtractionHandler {
	return &ExtractionHandler{uc: uc}
}

// List godoc
// @Summary      Listar extracciones con detalles
// @Tags         extractions
// @Produce      json
// @Success      200  {array}  dto.ExtractionResponse
// @Router       /extractions [get]
func (h *ExtractionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar una extracción (descuenta stock)
// @Tags         extractions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExtractionRequest  true  "Líneas de la extracción"
// @Success      201   {object}  dto.CreateExtractionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /extractions [post]
func (h *ExtractionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExtractionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Formato inválido. Se requiere 'products' como lista",
		})
	}
	if in.Products == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Formato inválido. Se requiere 'products' como lista",
		})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		var validationErr *domain.StockValidationError
		if errors.As(err, &validationErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error:   "Validación fallida",
				Details: validationErr.Detalles,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Error interno: " + err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar descripción de una extracción
// @Tags         extractions
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la extracción"
// @Param        body  body  dto.UpdateExtractionRequest  true  "Descripción"
// @Success      200   {object}  dto.UpdateExtractionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /extractions/{id} [patch]
func (h *ExtractionHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.notFound(c, 0)
	}
	var in dto.UpdateExtractionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return h.notFound(c, id)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar una extracción (opcionalmente restaurando stock)
// @Tags         extractions
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la extracción"
// @Param        body  body  dto.DeleteExtractionRequest  false  "restoreStock: 0|1"
// @Success      200   {object}  dto.DeleteExtractionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /extractions/{id} [delete]
func (h *ExtractionHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.notFound(c, 0)
	}
	// Cuerpo opcional; sin cuerpo o ilegible equivale a restoreStock=0.
	var in dto.DeleteExtractionRequest
	_ = c.BodyParser(&in)
	out, err := h.uc.Delete(c.UserContext(), id, in.RestoreStock == 1)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return h.notFound(c, id)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Error al eliminar la extracción: " + err.Error(),
		})
	}
	return c.JSON(out)
}

func (h *ExtractionHandler) notFound(c *fiber.Ctx, id int64) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: fmt.Sprintf("No se encontró ninguna extracción con ID %d", id),
	})
}
