// Package reports arma los reportes de lectura del libro de movimientos.
package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/souhailwaf/wareho/internal/domain/entity"
	"github.com/souhailwaf/wareho/internal/domain/repository"
)

// Tamaño de página al recorrer el libro de movimientos.
const kardexPageSize = 1000

// KardexRow una línea del kardex: el movimiento más el saldo acumulado del
// artículo después de aplicarlo.
type KardexRow struct {
	Movement *entity.Movement
	Balance  decimal.Decimal
}

// KardexPDFGenerator puerto del render PDF del kardex.
type KardexPDFGenerator interface {
	GenerateKardexPDF(ctx context.Context, item *entity.Item, rows []KardexRow) ([]byte, error)
}

// KardexUseCase genera el kardex por artículo: el libro de movimientos en
// orden cronológico con saldo corrido, renderizado a PDF.
type KardexUseCase struct {
	itemRepo     repository.ItemRepository
	movementRepo repository.MovementRepository
	generator    KardexPDFGenerator
}

// NewKardexUseCase construye el caso de uso.
func NewKardexUseCase(itemRepo repository.ItemRepository, movementRepo repository.MovementRepository, generator KardexPDFGenerator) *KardexUseCase {
	return &KardexUseCase{itemRepo: itemRepo, movementRepo: movementRepo, generator: generator}
}

// GenerateKardexPDF arma y renderiza el kardex de un artículo.
// from/to acotan opcionalmente el rango de fechas.
func (uc *KardexUseCase) GenerateKardexPDF(ctx context.Context, itemID string, from, to *time.Time) ([]byte, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	// Se recorre el libro completo por páginas: el saldo corrido solo es
	// correcto si arranca desde el primer asiento del rango.
	var movements []*entity.Movement
	for offset := 0; ; offset += kardexPageSize {
		page, err := uc.movementRepo.ListByItem(ctx, itemID, from, to, kardexPageSize, offset)
		if err != nil {
			return nil, err
		}
		movements = append(movements, page...)
		if len(page) < kardexPageSize {
			break
		}
	}

	// El repositorio lista descendente; el kardex se lee cronológico.
	rows := make([]KardexRow, 0, len(movements))
	balance := decimal.Zero
	for i := len(movements) - 1; i >= 0; i-- {
		m := movements[i]
		balance = balance.Add(itemEffect(m))
		rows = append(rows, KardexRow{Movement: m, Balance: balance})
	}
	return uc.generator.GenerateKardexPDF(ctx, item, rows)
}

// itemEffect devuelve el efecto del movimiento sobre el total del artículo en
// bodega: PUTAWAY es neutro (reubicación interna), PICK resta, ADJUST ya viene
// como delta firmado.
func itemEffect(m *entity.Movement) decimal.Decimal {
	switch m.Type {
	case entity.MovementTypeRECEIVE:
		return m.Quantity
	case entity.MovementTypePICK:
		return m.Quantity.Neg()
	case entity.MovementTypeADJUST:
		return m.Quantity
	default: // PUTAWAY
		return decimal.Zero
	}
}
