package usecase

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// ReportUseCase proyecciones de lectura para reportes: agregados de stock y
// lista de bajo stock. No impone invariantes sobre el libro.
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// Summary stock total agregado y cantidad de productos distintos.
func (uc *ReportUseCase) Summary(ctx context.Context) (*dto.InventorySummaryResponse, error) {
	total, err := uc.repo.TotalStock(ctx)
	if err != nil {
		return nil, err
	}
	count, err := uc.repo.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.InventorySummaryResponse{TotalStock: total, ProductCount: count}, nil
}

// LowStock productos con stock actual <= stock mínimo.
func (uc *ReportUseCase) LowStock(ctx context.Context, limit int) (*dto.LowStockListResponse, error) {
	if limit <= 0 {
		limit = 100
	}
	list, err := uc.repo.ListLowStock(ctx, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p))
	}
	return &dto.LowStockListResponse{Total: len(items), Items: items}, nil
}
