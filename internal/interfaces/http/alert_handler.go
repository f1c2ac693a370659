package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Abasto-api/internal/application/alerts"
	"github.com/jhoicas/Abasto-api/internal/application/dto"
	"github.com/jhoicas/Abasto-api/internal/application/reports"
	"github.com/jhoicas/Abasto-api/internal/domain"
	"github.com/jhoicas/Abasto-api/internal/domain/repository"
	"github.com/jhoicas/Abasto-api/pkg/logger"
)

// alertComputer es el contrato mínimo del motor de alertas para el handler.
type alertComputer interface {
	ComputeAlerts(ctx context.Context, companyID string) ([]alerts.Alert, error)
}

// AlertHandler expone las alertas de stock bajo (protegido, módulo "alerts").
type AlertHandler struct {
	engine      alertComputer
	report      *reports.LowStockReportUseCase
	companyRepo repository.CompanyRepository
	log         *logger.Logger
}

// NewAlertHandler construye el handler.
func NewAlertHandler(engine alertComputer, report *reports.LowStockReportUseCase, companyRepo repository.CompanyRepository, log *logger.Logger) *AlertHandler {
	return &AlertHandler{engine: engine, report: report, companyRepo: companyRepo, log: log}
}

// LowStock godoc
// @Summary      Alertas de stock bajo
// @Description  Calcula las alertas vigentes de la empresa: productos con
//
//	movimientos recientes cuyo stock por bodega está en o por debajo
//	del umbral. days_until_stockout = 2147483647 significa "sin
//	proyección" (sin ventas en la ventana).
//
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockAlertListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/alerts/low-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	companyID, ok := h.authorizeCompany(c)
	if !ok {
		return nil // authorizeCompany ya escribió la respuesta
	}
	list, err := h.engine.ComputeAlerts(c.Context(), companyID)
	if err != nil {
		// El detalle queda en el log, nunca en la respuesta.
		h.log.Error().Err(err).Str("company_id", companyID).Msg("cálculo de alertas falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(dto.NewLowStockAlertList(list))
}

// LowStockPDF godoc
// @Summary      Reporte PDF de stock bajo
// @Tags         alerts
// @Security     Bearer
// @Produce      application/pdf
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/alerts/low-stock/pdf [get]
func (h *AlertHandler) LowStockPDF(c *fiber.Ctx) error {
	companyID, ok := h.authorizeCompany(c)
	if !ok {
		return nil
	}
	pdfBytes, err := h.report.Generate(c.Context(), companyID)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
		}
		h.log.Error().Err(err).Str("company_id", companyID).Msg("reporte de stock bajo falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock-bajo.pdf"`)
	return c.Send(pdfBytes)
}

// authorizeCompany valida que el companyId de la ruta exista y coincida con el
// del token. Escribe la respuesta de error y devuelve ok=false si no pasa.
func (h *AlertHandler) authorizeCompany(c *fiber.Ctx) (string, bool) {
	companyID := c.Params("companyId")
	if companyID == "" {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "companyId es requerido"})
		return "", false
	}
	if tokenCompany := GetCompanyID(c); tokenCompany != companyID {
		// Empresa ajena: prohibido, sin filtrar si existe o no.
		_ = c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado a la empresa"})
		return "", false
	}
	company, err := h.companyRepo.GetByID(companyID)
	if err != nil {
		h.log.Error().Err(err).Str("company_id", companyID).Msg("consulta de empresa falló")
		_ = c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
		return "", false
	}
	if company == nil {
		_ = c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
		return "", false
	}
	return companyID, true
}
