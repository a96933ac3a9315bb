package usecase

import (
	"context"

	"github.com/lucasrprt/stocksync/internal/domain"
)

// StockFileGateway defines the byte-level codecs for the two inventory
// sources. The usecase layer depends on this interface, not on a concrete
// implementation.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -source=interface.go StockFileGateway
type StockFileGateway interface {
	ParsePhysicalStock(ctx context.Context, raw []byte) ([]domain.PhysicalRecord, error)
	ParsePlatformExport(ctx context.Context, raw []byte) (*domain.PlatformTable, error)
	MarshalPlatformExport(table *domain.PlatformTable) ([]byte, error)
}
