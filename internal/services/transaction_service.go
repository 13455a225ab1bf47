package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "wealthyways/internal/errors"
	"wealthyways/internal/models"
	"wealthyways/internal/pagination"
)

// transactionService handles transaction persistence and queries.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// AddTransaction persists a transaction exactly as given. The caller supplies
// the signed amount; no sign or type consistency check happens here.
func (s *transactionService) AddTransaction(
	date, description, category string,
	amount float64,
	transactionType models.TransactionType,
) (*models.Transaction, error) {
	transaction := &models.Transaction{
		Date:        date,
		Description: description,
		Category:    category,
		Amount:      amount,
		Type:        transactionType,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// GetTransactions returns transactions newest first, optionally limited to a month.
func (s *transactionService) GetTransactions(month string) ([]models.Transaction, error) {
	q, err := s.monthQuery(month)
	if err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	if err := q.Order("t_date DESC").Order("id DESC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// GetTransactionsPage is the paginated form of GetTransactions.
func (s *transactionService) GetTransactionsPage(month string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	q, err := s.monthQuery(month)
	if err != nil {
		return nil, err
	}
	q = q.Session(&gorm.Session{})

	var totalItems int64
	if err := q.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := q.Scopes(pagination.Paginate(page)).
		Order("t_date DESC").Order("id DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page, totalItems)
	return &result, nil
}

// monthQuery scopes the transactions table to [first of month, first of next month).
func (s *transactionService) monthQuery(month string) (*gorm.DB, error) {
	q := s.db.Model(&models.Transaction{})
	if month == "" {
		return q, nil
	}

	start, end, err := MonthRange(month)
	if err != nil {
		return nil, err
	}
	return q.Where("t_date >= ? AND t_date < ?", start, end), nil
}

// GetTransactionByID retrieves a single transaction.
func (s *transactionService) GetTransactionByID(id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// DeleteTransaction removes the transaction with id. Deleting a missing id is a no-op.
func (s *transactionService) DeleteTransaction(id uint) error {
	if err := s.db.Where("id = ?", id).Delete(&models.Transaction{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ListMonths returns the distinct months that have transactions, newest
// first. An empty ledger yields just the current month.
func (s *transactionService) ListMonths() ([]string, error) {
	var months []string
	err := s.db.Raw("SELECT DISTINCT substr(t_date, 1, 7) AS month FROM transactions ORDER BY month DESC").
		Scan(&months).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if len(months) == 0 {
		return []string{CurrentMonthKey()}, nil
	}
	return months, nil
}
