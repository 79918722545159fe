package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
	"github.com/tu-usuario/almacen-pro/internal/application/usecase"
	"github.com/tu-usuario/almacen-pro/internal/domain"
)

// ReportHandler reportes y descargas (protegido).
type ReportHandler struct {
	reports *usecase.ReportUseCase
	query   *inventory.MovementQueryUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(reports *usecase.ReportUseCase, query *inventory.MovementQueryUseCase) *ReportHandler {
	return &ReportHandler{reports: reports, query: query}
}

// Summary godoc
// @Summary      Resumen de inventario
// @Description  Stock total agregado y cantidad de productos distintos.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventorySummaryResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.reports.Summary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos bajo stock mínimo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(100)
// @Success      200  {object}  dto.LowStockListResponse
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.reports.LowStock(c.Context(), c.QueryInt("limit", 100))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExportMovements godoc
// @Summary      Exportar movimientos a Excel
// @Description  Descarga un .xlsx del libro de movimientos con los mismos filtros del listado.
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        product_id  query  int     false  "Filtrar por producto"
// @Param        type        query  string  false  "IN | OUT | AJ-P | AJ-N | DEV"
// @Param        from        query  string  false  "Fecha inicial"
// @Param        to          query  string  false  "Fecha final"
// @Success      200  {file}  file
// @Router       /api/reports/movements.xlsx [get]
func (h *ReportHandler) ExportMovements(c *fiber.Ctx) error {
	f, errResp := movementFilterFromQuery(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}
	data, name, err := h.query.ExportExcel(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, name))
	return c.Send(data)
}

// Kardex godoc
// @Summary      Kardex de producto en PDF
// @Description  Historial cronológico del producto con saldo acumulado por asiento.
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/kardex/{id} [get]
func (h *ReportHandler) Kardex(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	data, name, err := h.query.Kardex(int64(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, name))
	return c.Send(data)
}

// LedgerCheck godoc
// @Summary      Verificación contable del libro
// @Description  Compara la suma de efectos con signo del historial contra el stock actual del producto.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  inventory.LedgerCheckResult
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/ledger-check/{id} [get]
func (h *ReportHandler) LedgerCheck(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	out, err := h.query.LedgerCheck(int64(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
