package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
	"github.com/tu-usuario/almacen-pro/pkg/validator"
)

// InventoryHandler maneja el libro de movimientos (protegido).
type InventoryHandler struct {
	register *inventory.RegisterMovementUseCase
	query    *inventory.MovementQueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(register *inventory.RegisterMovementUseCase, query *inventory.MovementQueryUseCase) *InventoryHandler {
	return &InventoryHandler{register: register, query: query}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  Cantidad siempre positiva; el signo del efecto lo determina el tipo (IN, OUT, AJ-P, AJ-N, DEV).
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Field: errs[0].FailedField})
	}

	result, err := h.register.Register(c.Context(), inventory.MovementInput{
		ProductID:   in.ProductID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		SupplierID:  in.SupplierID,
		WarehouseID: in.WarehouseID,
		Date:        in.Date,
		Lot:         in.Lot,
		Serial:      in.Serial,
		ExpiryDate:  in.ExpiryDate,
		RefDoc:      in.RefDoc,
		Reason:      in.Reason,
		Notes:       in.Notes,
		CreatedBy:   GetUserID(c),
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: verr.Message, Field: verr.Field})
		}
		var serr *domain.InsufficientStockError
		if errors.As(err, &serr) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: serr.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto, proveedor o bodega no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterMovementResponse{
		Movement:     inventory.ToMovementResponse(result.Movement),
		CurrentStock: result.CurrentStock,
	})
}

// ListMovements godoc
// @Summary      Listar movimientos
// @Description  Historial del libro en orden de fecha descendente, con filtros por producto, tipo y rango de fechas.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  int     false  "Filtrar por producto"
// @Param        type        query  string  false  "IN | OUT | AJ-P | AJ-N | DEV"
// @Param        from        query  string  false  "Fecha inicial (RFC 3339 o 2006-01-02)"
// @Param        to          query  string  false  "Fecha final"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	f, errResp := movementFilterFromQuery(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}
	out, err := h.query.List(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetMovement godoc
// @Summary      Obtener movimiento por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "UUID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/{id} [get]
func (h *InventoryHandler) GetMovement(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.query.Get(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
	}
	return c.JSON(out)
}

// movementFilterFromQuery arma el filtro desde la query string.
func movementFilterFromQuery(c *fiber.Ctx) (repository.MovementFilter, *dto.ErrorResponse) {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	f := repository.MovementFilter{
		Type:   c.Query("type"),
		Limit:  limit,
		Offset: offset,
	}
	if pid := c.QueryInt("product_id", 0); pid > 0 {
		id := int64(pid)
		f.ProductID = &id
	}
	if from := c.Query("from"); from != "" {
		t, err := parseDate(from)
		if err != nil {
			return f, &dto.ErrorResponse{Code: "VALIDATION", Message: "fecha 'from' inválida", Field: "from"}
		}
		f.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := parseDate(to)
		if err != nil {
			return f, &dto.ErrorResponse{Code: "VALIDATION", Message: "fecha 'to' inválida", Field: "to"}
		}
		f.To = &t
	}
	return f, nil
}

// parseDate acepta RFC 3339 completo o solo fecha.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
