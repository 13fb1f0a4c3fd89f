package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"smarta/internal/domain"
	"smarta/internal/finance"
)

// loggedIn guards the data endpoints.
func (s *Server) loggedIn(c *fiber.Ctx) error {
	sess, err := s.sessions.Current(c.UserContext())
	if err != nil {
		return err
	}
	if !sess.LoggedIn {
		return fiber.NewError(fiber.StatusUnauthorized, "not logged in")
	}
	return nil
}

type transactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
	Categories   []string             `json:"categories"`
	Income       decimal.Decimal      `json:"income"`
	Expense      decimal.Decimal      `json:"expense"`
}

func (s *Server) handleTransactions(c *fiber.Ctx) error {
	if err := s.loggedIn(c); err != nil {
		return err
	}
	txs := finance.Search(finance.FilterByCategory(finance.Transactions(), c.Query("category")), c.Query("q"))
	income, expense := finance.Totals(txs)
	return c.JSON(transactionsResponse{
		Transactions: txs,
		Categories:   finance.Categories(),
		Income:       income,
		Expense:      expense,
	})
}

func (s *Server) handleInsight(c *fiber.Ctx) error {
	if err := s.loggedIn(c); err != nil {
		return err
	}
	return c.JSON(finance.BuildInsight(finance.ExpenseBreakdown(), finance.MonthlyComparison()))
}

type goalView struct {
	domain.Goal
	Progress float64 `json:"progress"`
}

type goalsResponse struct {
	Goals  []goalView     `json:"goals"`
	Health finance.Health `json:"health"`
}

func (s *Server) handleGoals(c *fiber.Ctx) error {
	if err := s.loggedIn(c); err != nil {
		return err
	}
	goals := finance.Goals()
	views := make([]goalView, 0, len(goals))
	for _, g := range goals {
		views = append(views, goalView{Goal: g, Progress: finance.GoalProgress(g)})
	}
	return c.JSON(goalsResponse{Goals: views, Health: finance.HealthScore(finance.DefaultHealthInputs())})
}

func (s *Server) handleNotifications(c *fiber.Ctx) error {
	if err := s.loggedIn(c); err != nil {
		return err
	}
	return c.JSON(finance.Notifications())
}

type dashboardResponse struct {
	Balance decimal.Decimal       `json:"balance"`
	Income  decimal.Decimal       `json:"income"`
	Expense decimal.Decimal       `json:"expense"`
	Chart   []domain.MonthFigures `json:"chart"`
	Recent  []domain.Transaction  `json:"recent"`
}

func (s *Server) handleDashboard(c *fiber.Ctx) error {
	if err := s.loggedIn(c); err != nil {
		return err
	}
	ov, err := s.banking.Accounts(c.UserContext())
	if err != nil {
		return err
	}
	txs := finance.Transactions()
	if len(txs) > 4 {
		txs = txs[:4]
	}
	return c.JSON(dashboardResponse{
		Balance: ov.Total,
		Income:  finance.MonthlyIncome,
		Expense: finance.MonthlyExpense,
		Chart:   finance.DashboardChart(),
		Recent:  txs,
	})
}
