package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"wealthyways/internal/logger"
	"wealthyways/internal/models"
	"wealthyways/internal/pagination"
	"wealthyways/internal/services"
	"wealthyways/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// --- mock transaction service ---

type mockTransactionService struct {
	addTransactionFn      func(date, description, category string, amount float64, t models.TransactionType) (*models.Transaction, error)
	getTransactionsFn     func(month string) ([]models.Transaction, error)
	getTransactionsPageFn func(month string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	getTransactionByIDFn  func(id uint) (*models.Transaction, error)
	deleteTransactionFn   func(id uint) error
	listMonthsFn          func() ([]string, error)
}

func (m *mockTransactionService) AddTransaction(date, description, category string, amount float64, t models.TransactionType) (*models.Transaction, error) {
	if m.addTransactionFn != nil {
		return m.addTransactionFn(date, description, category, amount, t)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) GetTransactions(month string) ([]models.Transaction, error) {
	if m.getTransactionsFn != nil {
		return m.getTransactionsFn(month)
	}
	return nil, nil
}

func (m *mockTransactionService) GetTransactionsPage(month string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	if m.getTransactionsPageFn != nil {
		return m.getTransactionsPageFn(month, page)
	}
	page.Defaults()
	resp := pagination.NewPageResponse([]models.Transaction{}, page, 0)
	return &resp, nil
}

func (m *mockTransactionService) GetTransactionByID(id uint) (*models.Transaction, error) {
	if m.getTransactionByIDFn != nil {
		return m.getTransactionByIDFn(id)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) DeleteTransaction(id uint) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(id)
	}
	return nil
}

func (m *mockTransactionService) ListMonths() ([]string, error) {
	if m.listMonthsFn != nil {
		return m.listMonthsFn()
	}
	return []string{}, nil
}

// --- mock budget service ---

type mockBudgetService struct {
	addBudgetFn     func(month, category string, limit float64) (*models.Budget, error)
	getBudgetsFn    func(month string) ([]models.Budget, error)
	getBudgetByIDFn func(id uint) (*models.Budget, error)
	deleteBudgetFn  func(id uint) error
}

func (m *mockBudgetService) AddBudget(month, category string, limit float64) (*models.Budget, error) {
	if m.addBudgetFn != nil {
		return m.addBudgetFn(month, category, limit)
	}
	return &models.Budget{}, nil
}

func (m *mockBudgetService) GetBudgets(month string) ([]models.Budget, error) {
	if m.getBudgetsFn != nil {
		return m.getBudgetsFn(month)
	}
	return nil, nil
}

func (m *mockBudgetService) GetBudgetByID(id uint) (*models.Budget, error) {
	if m.getBudgetByIDFn != nil {
		return m.getBudgetByIDFn(id)
	}
	return &models.Budget{}, nil
}

func (m *mockBudgetService) DeleteBudget(id uint) error {
	if m.deleteBudgetFn != nil {
		return m.deleteBudgetFn(id)
	}
	return nil
}

// --- mock goal service ---

type mockGoalService struct {
	addGoalFn            func(name string, target, current float64, deadline *string) (*models.Goal, error)
	getGoalsFn           func() ([]models.Goal, error)
	getGoalByIDFn        func(id uint) (*models.Goal, error)
	updateGoalProgressFn func(id uint, current float64) error
	deleteGoalFn         func(id uint) error
}

func (m *mockGoalService) AddGoal(name string, target, current float64, deadline *string) (*models.Goal, error) {
	if m.addGoalFn != nil {
		return m.addGoalFn(name, target, current, deadline)
	}
	return &models.Goal{}, nil
}

func (m *mockGoalService) GetGoals() ([]models.Goal, error) {
	if m.getGoalsFn != nil {
		return m.getGoalsFn()
	}
	return nil, nil
}

func (m *mockGoalService) GetGoalByID(id uint) (*models.Goal, error) {
	if m.getGoalByIDFn != nil {
		return m.getGoalByIDFn(id)
	}
	return &models.Goal{}, nil
}

func (m *mockGoalService) UpdateGoalProgress(id uint, current float64) error {
	if m.updateGoalProgressFn != nil {
		return m.updateGoalProgressFn(id, current)
	}
	return nil
}

func (m *mockGoalService) DeleteGoal(id uint) error {
	if m.deleteGoalFn != nil {
		return m.deleteGoalFn(id)
	}
	return nil
}

// --- mock summary service ---

type mockSummaryService struct {
	summarizeMonthFn func(month string) (*services.MonthSummary, error)
}

func (m *mockSummaryService) SummarizeMonth(month string) (*services.MonthSummary, error) {
	if m.summarizeMonthFn != nil {
		return m.summarizeMonthFn(month)
	}
	return services.Summarize(month, nil, nil), nil
}

// --- helpers ---

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}
