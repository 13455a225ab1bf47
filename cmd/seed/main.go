// Command seed fills the ledger with a few months of plausible demo data.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"wealthyways/internal/categories"
	"wealthyways/internal/config"
	"wealthyways/internal/database"
	"wealthyways/internal/logger"
	"wealthyways/internal/models"
	"wealthyways/internal/services"
)

var expenseCategories = []string{
	"Food & Drinks", "Groceries", "Transport", "Bills & Utilities",
	"Shopping", "Entertainment", "Health", "Education", "Travel", "Others",
}

type seeder struct {
	faker        *gofakeit.Faker
	transactions services.TransactionServicer
	budgets      services.BudgetServicer
	goals        services.GoalServicer
}

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	months := flag.Int("months", 3, "number of months to generate, ending with the current month")
	seed := flag.Uint64("seed", 0, "random seed (0 picks a random one)")
	flag.Parse()

	if err := run(*months, *seed); err != nil {
		logger.Get().Fatalf("Seed error: %v", err)
	}
}

func run(months int, seed uint64) error {
	if months < 1 {
		return fmt.Errorf("months must be positive, got %d", months)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	dbConfig, err := database.NewConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	db := dbManager.DB()
	s := &seeder{
		faker:        gofakeit.New(seed),
		transactions: services.NewTransactionService(db),
		budgets:      services.NewBudgetService(db),
		goals:        services.NewGoalService(db),
	}

	n, err := s.seed(time.Now(), months)
	if err != nil {
		return err
	}
	logger.Get().Infof("Seeded %d transactions over %d month(s)", n, months)
	return nil
}

// seed writes months of data ending with the month of now and returns the
// number of transactions created.
func (s *seeder) seed(now time.Time, months int) (int, error) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1-months, 0)
	created := 0

	for m := 0; m < months; m++ {
		start := first.AddDate(0, m, 0)
		monthKey := services.MonthKey(start)
		days := start.AddDate(0, 1, -1).Day()

		if _, err := s.transactions.AddTransaction(start.Format("2006-01-02"), s.faker.Company()+" payroll",
			"Salary", s.amount(3000, 6000), models.TransactionTypeIncome); err != nil {
			return created, err
		}
		created++

		for i, count := 0, s.faker.IntRange(15, 30); i < count; i++ {
			category := s.faker.RandomString(expenseCategories)
			date := start.AddDate(0, 0, s.faker.IntRange(0, days-1)).Format("2006-01-02")
			amount := models.SignedAmount(models.TransactionTypeExpense, s.amount(5, 250))
			if _, err := s.transactions.AddTransaction(date, s.faker.Company(), category, amount, models.TransactionTypeExpense); err != nil {
				return created, err
			}
			created++
		}

		for _, category := range []string{categories.DefaultBudgetCategory, categories.DefaultTransactionCategory, "Transport"} {
			if _, err := s.budgets.AddBudget(monthKey, category, s.amount(200, 800)); err != nil {
				return created, err
			}
		}
	}

	deadline := now.AddDate(1, 0, 0).Format("2006-01-02")
	if _, err := s.goals.AddGoal("Emergency fund", 10000, s.amount(0, 5000), &deadline); err != nil {
		return created, err
	}
	if _, err := s.goals.AddGoal(s.faker.ProductName(), s.amount(500, 3000), 0, nil); err != nil {
		return created, err
	}

	return created, nil
}

func (s *seeder) amount(lo, hi float64) float64 {
	return math.Round(s.faker.Price(lo, hi)*100) / 100
}
