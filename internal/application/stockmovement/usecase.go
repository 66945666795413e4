package stockmovement

import (
	"context"
	"errors"

	"github.com/souhailwaf/wareho/internal/domain"
	"github.com/souhailwaf/wareho/internal/domain/entity"
	"github.com/souhailwaf/wareho/pkg/logger"
	"github.com/souhailwaf/wareho/pkg/metrics"
)

// Intentos máximos ante conflicto de concurrencia optimista. Cada reintento
// re-ejecuta la operación completa desde cero (releer, revalidar, reaplicar).
const maxConflictRetries = 3

// UseCase envuelve cada operación del Service en una transacción (TxRunner) y
// reintenta de forma acotada solo ante ErrConcurrencyConflict. Los fallos de
// regla de negocio (stock insuficiente, recurso inactivo) nunca se reintentan.
type UseCase struct {
	txRunner TxRunner
	svc      *Service
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, svc *Service, log *logger.Logger) *UseCase {
	return &UseCase{txRunner: txRunner, svc: svc, log: log}
}

// Receive ejecuta una entrada de bodega transaccional.
func (uc *UseCase) Receive(ctx context.Context, in ReceiveInput) (*entity.Movement, error) {
	return uc.run(ctx, entity.MovementTypeRECEIVE, func(r Repos) (*entity.Movement, error) {
		return uc.svc.Receive(ctx, r, in)
	})
}

// Putaway ejecuta una reubicación interna transaccional.
func (uc *UseCase) Putaway(ctx context.Context, in PutawayInput) (*entity.Movement, error) {
	return uc.run(ctx, entity.MovementTypePUTAWAY, func(r Repos) (*entity.Movement, error) {
		return uc.svc.Putaway(ctx, r, in)
	})
}

// Pick ejecuta una salida de despacho transaccional.
func (uc *UseCase) Pick(ctx context.Context, in PickInput) (*entity.Movement, error) {
	return uc.run(ctx, entity.MovementTypePICK, func(r Repos) (*entity.Movement, error) {
		return uc.svc.Pick(ctx, r, in)
	})
}

// Adjust ejecuta una corrección por conteo transaccional.
func (uc *UseCase) Adjust(ctx context.Context, in AdjustInput) (*entity.Movement, error) {
	return uc.run(ctx, entity.MovementTypeADJUST, func(r Repos) (*entity.Movement, error) {
		return uc.svc.Adjust(ctx, r, in)
	})
}

// run ejecuta op dentro de TxRunner.Run. Si el commit u otra escritura reporta
// ErrConcurrencyConflict, la transacción ya fue revertida y la mutación en
// memoria descartada; se re-dirige la operación completa hasta
// maxConflictRetries veces antes de propagar el conflicto al caller.
func (uc *UseCase) run(ctx context.Context, movType string, op func(r Repos) (*entity.Movement, error)) (*entity.Movement, error) {
	var mv *entity.Movement
	var err error
	for attempt := 1; attempt <= maxConflictRetries; attempt++ {
		err = uc.txRunner.Run(ctx, func(r Repos) error {
			var opErr error
			mv, opErr = op(r)
			return opErr
		})
		if err == nil {
			metrics.MovementsTotal.WithLabelValues(movType).Inc()
			return mv, nil
		}
		if !errors.Is(err, domain.ErrConcurrencyConflict) {
			return nil, err
		}
		metrics.MovementConflictsTotal.WithLabelValues(movType).Inc()
		uc.log.Warn().
			Str("type", movType).
			Int("attempt", attempt).
			Msg("conflicto de concurrencia en movimiento; reintentando")
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	return nil, err
}
