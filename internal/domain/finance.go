package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxType tells income from expense.
type TxType string

const (
	TxIncome  TxType = "income"
	TxExpense TxType = "expense"
)

// Transaction is one ledger line. Amount is signed: expenses are negative.
type Transaction struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Type     TxType          `json:"type"`
	Category string          `json:"category"`
	Date     time.Time       `json:"date"`
}

// Goal is a savings target.
type Goal struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Target   decimal.Decimal `json:"target"`
	Current  decimal.Decimal `json:"current"`
	Deadline time.Time       `json:"deadline"`
}

// AccountType tells banks from e-wallets.
type AccountType string

const (
	AccountBank    AccountType = "bank"
	AccountEWallet AccountType = "ewallet"
)

// BankAccount is a bank or e-wallet account the user may link.
type BankAccount struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          AccountType     `json:"type"`
	AccountNumber string          `json:"account_number"`
	Balance       decimal.Decimal `json:"balance"`
	Connected     bool            `json:"connected"`
}

// NotificationType classifies a notification.
type NotificationType string

const (
	NotifyWarning  NotificationType = "warning"
	NotifySuccess  NotificationType = "success"
	NotifyInfo     NotificationType = "info"
	NotifyReminder NotificationType = "reminder"
)

// Notification is an entry in the notification feed.
type Notification struct {
	ID      string           `json:"id"`
	Type    NotificationType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Time    string           `json:"time"`
}

// CategoryAmount is one slice of an expense breakdown.
type CategoryAmount struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// MonthFigures is income against expense for one month.
type MonthFigures struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}
