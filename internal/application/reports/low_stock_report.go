package reports

import (
	"context"
	"fmt"

	"github.com/jhoicas/Abasto-api/internal/application/alerts"
	"github.com/jhoicas/Abasto-api/internal/domain"
	"github.com/jhoicas/Abasto-api/internal/domain/entity"
	"github.com/jhoicas/Abasto-api/internal/domain/repository"
)

// AlertComputer calcula las alertas de stock bajo de una empresa.
type AlertComputer interface {
	ComputeAlerts(ctx context.Context, companyID string) ([]alerts.Alert, error)
}

// AlertReportGenerator renderiza el reporte de alertas (PDF u otro formato).
type AlertReportGenerator interface {
	GenerateLowStockReport(ctx context.Context, company *entity.Company, items []alerts.Alert) ([]byte, error)
}

// LowStockReportUseCase arma el reporte imprimible de alertas de stock bajo:
// los mismos datos del endpoint JSON, en un documento para compras.
type LowStockReportUseCase struct {
	computer    AlertComputer
	generator   AlertReportGenerator
	companyRepo repository.CompanyRepository
}

// NewLowStockReportUseCase construye el caso de uso.
func NewLowStockReportUseCase(
	computer AlertComputer,
	generator AlertReportGenerator,
	companyRepo repository.CompanyRepository,
) *LowStockReportUseCase {
	return &LowStockReportUseCase{computer: computer, generator: generator, companyRepo: companyRepo}
}

// Generate calcula las alertas vigentes y devuelve los bytes del PDF.
func (uc *LowStockReportUseCase) Generate(ctx context.Context, companyID string) ([]byte, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.computer.ComputeAlerts(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("reporte stock bajo: calcular alertas: %w", err)
	}
	return uc.generator.GenerateLowStockReport(ctx, company, items)
}
