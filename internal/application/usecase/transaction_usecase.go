package usecase

import (
	"github.com/jhoicas/comptalink-api/internal/application/dto"
	"github.com/jhoicas/comptalink-api/internal/domain"
	"github.com/jhoicas/comptalink-api/internal/domain/entity"
	"github.com/jhoicas/comptalink-api/internal/domain/repository"
)

// TransactionUseCase casos de uso de movimientos de caja.
type TransactionUseCase struct {
	txRepo repository.TransactionRepository
}

// NewTransactionUseCase construye el caso de uso de transacciones.
func NewTransactionUseCase(txRepo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{txRepo: txRepo}
}

// Create registra un movimiento de caja del propio actor.
// El tipo debe pertenecer al conjunto cerrado income|expense y el monto ser positivo.
func (uc *TransactionUseCase) Create(actor Actor, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	txType := entity.TransactionType(in.Type)
	if !txType.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount <= 0 || in.Category == "" || in.Date.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	tx, err := uc.txRepo.Create(&entity.Transaction{
		UserID:      actor.ID,
		Type:        txType,
		Amount:      in.Amount,
		Category:    in.Category,
		Description: in.Description,
		Date:        in.Date,
	})
	if err != nil {
		return nil, err
	}
	resp := dto.ToTransactionResponse(tx)
	return &resp, nil
}

// ListByActor devuelve los movimientos del actor, fecha descendente.
func (uc *TransactionUseCase) ListByActor(actor Actor) ([]dto.TransactionResponse, error) {
	list, err := uc.txRepo.ListByUser(actor.ID)
	if err != nil {
		return nil, err
	}
	return dto.ToTransactionResponses(list), nil
}
