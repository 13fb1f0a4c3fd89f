package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"smarta/internal/domain"
)

// AllCategories is the pseudo-category that disables filtering.
const AllCategories = "Semua"

func idr(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

var transactions = []domain.Transaction{
	{ID: "1", Title: "Gaji Bulanan", Amount: idr(8_500_000), Type: domain.TxIncome, Category: "Gaji", Date: date("2025-12-01")},
	{ID: "2", Title: "Belanja Bulanan", Amount: idr(-1_250_000), Type: domain.TxExpense, Category: "Belanja", Date: date("2025-12-03")},
	{ID: "3", Title: "Bayar Listrik", Amount: idr(-450_000), Type: domain.TxExpense, Category: "Utilitas", Date: date("2025-12-05")},
	{ID: "4", Title: "Makan Siang", Amount: idr(-85_000), Type: domain.TxExpense, Category: "Makanan", Date: date("2025-12-10")},
	{ID: "5", Title: "Bensin", Amount: idr(-200_000), Type: domain.TxExpense, Category: "Transportasi", Date: date("2025-12-12")},
	{ID: "6", Title: "Freelance Project", Amount: idr(3_500_000), Type: domain.TxIncome, Category: "Freelance", Date: date("2025-12-15")},
	{ID: "7", Title: "Kopi & Snack", Amount: idr(-65_000), Type: domain.TxExpense, Category: "Makanan", Date: date("2025-12-18")},
	{ID: "8", Title: "Hadiah Ulang Tahun", Amount: idr(-350_000), Type: domain.TxExpense, Category: "Hadiah", Date: date("2025-12-20")},
}

var categories = []string{AllCategories, "Belanja", "Makanan", "Transportasi", "Utilitas", "Gaji", "Freelance", "Hadiah"}

var expenseBreakdown = []domain.CategoryAmount{
	{Name: "Makanan", Value: idr(1_500_000)},
	{Name: "Transportasi", Value: idr(800_000)},
	{Name: "Belanja", Value: idr(1_250_000)},
	{Name: "Utilitas", Value: idr(650_000)},
	{Name: "Hiburan", Value: idr(500_000)},
	{Name: "Lainnya", Value: idr(500_000)},
}

var monthlyComparison = []domain.MonthFigures{
	{Month: "Nov", Income: idr(8_000_000), Expense: idr(6_200_000)},
	{Month: "Des", Income: idr(12_000_000), Expense: idr(5_200_000)},
}

// Dashboard chart values are in thousands of rupiah.
var dashboardChart = []domain.MonthFigures{
	{Month: "Jan", Income: idr(4000), Expense: idr(2400)},
	{Month: "Feb", Income: idr(3000), Expense: idr(1398)},
	{Month: "Mar", Income: idr(5000), Expense: idr(3800)},
	{Month: "Apr", Income: idr(4500), Expense: idr(3908)},
	{Month: "May", Income: idr(6000), Expense: idr(4800)},
	{Month: "Jun", Income: idr(5500), Expense: idr(3800)},
}

var goals = []domain.Goal{
	{ID: "1", Title: "Liburan ke Jepang", Target: idr(25_000_000), Current: idr(12_500_000), Deadline: date("2026-06-01")},
	{ID: "2", Title: "Dana Darurat", Target: idr(30_000_000), Current: idr(25_000_000), Deadline: date("2026-12-31")},
	{ID: "3", Title: "DP Motor Baru", Target: idr(8_000_000), Current: idr(3_500_000), Deadline: date("2026-09-01")},
}

var notifications = []domain.Notification{
	{ID: "1", Type: domain.NotifyWarning, Title: "Peringatan Pengeluaran", Message: "Pengeluaran kategori Makanan minggu ini sudah mencapai 75% dari budget bulanan.", Time: "2 jam yang lalu"},
	{ID: "2", Type: domain.NotifySuccess, Title: "Target Tercapai!", Message: "Selamat! Anda berhasil mencapai 50% dari target \"Liburan ke Jepang\". Pertahankan!", Time: "5 jam yang lalu"},
	{ID: "3", Type: domain.NotifyInfo, Title: "Insight Positif", Message: "Pengeluaran bulan ini turun 16% dari bulan lalu. Kamu melakukan pekerjaan yang hebat!", Time: "1 hari yang lalu"},
	{ID: "4", Type: domain.NotifyReminder, Title: "Reminder Pembayaran", Message: "Tagihan listrik jatuh tempo dalam 3 hari (8 Januari). Jangan lupa bayar ya!", Time: "1 hari yang lalu"},
	{ID: "5", Type: domain.NotifyInfo, Title: "Tips Keuangan", Message: "Dengan savings rate 56.7%, Anda bisa mulai mempertimbangkan investasi jangka panjang.", Time: "2 hari yang lalu"},
	{ID: "6", Type: domain.NotifySuccess, Title: "Kebiasaan Baik!", Message: "Anda konsisten mencatat transaksi selama 30 hari berturut-turut. Luar biasa!", Time: "3 hari yang lalu"},
}

var seedAccounts = []domain.BankAccount{
	{ID: "1", Name: "BCA", Type: domain.AccountBank, AccountNumber: "****1234", Balance: idr(5_250_000), Connected: true},
	{ID: "2", Name: "Mandiri", Type: domain.AccountBank, AccountNumber: "****5678", Balance: idr(3_100_000), Connected: true},
	{ID: "3", Name: "GoPay", Type: domain.AccountEWallet, AccountNumber: "081234567890", Balance: idr(450_000), Connected: true},
	{ID: "4", Name: "OVO", Type: domain.AccountEWallet, AccountNumber: "081234567890", Balance: idr(275_000), Connected: false},
	{ID: "5", Name: "DANA", Type: domain.AccountEWallet, AccountNumber: "081234567890", Balance: idr(0), Connected: false},
}

// Savings position used by the goal screen's health score.
var (
	TotalSavings   = idr(25_000_000)
	MonthlyIncome  = idr(12_000_000)
	MonthlyExpense = idr(5_200_000)
)

// Transactions returns the ledger.
func Transactions() []domain.Transaction { return append([]domain.Transaction(nil), transactions...) }

// Categories returns the filter categories, AllCategories first.
func Categories() []string { return append([]string(nil), categories...) }

// ExpenseBreakdown returns this month's expenses per category.
func ExpenseBreakdown() []domain.CategoryAmount {
	return append([]domain.CategoryAmount(nil), expenseBreakdown...)
}

// MonthlyComparison returns last month and this month.
func MonthlyComparison() []domain.MonthFigures {
	return append([]domain.MonthFigures(nil), monthlyComparison...)
}

// DashboardChart returns the six-month income/expense series.
func DashboardChart() []domain.MonthFigures {
	return append([]domain.MonthFigures(nil), dashboardChart...)
}

// Goals returns the savings goals.
func Goals() []domain.Goal { return append([]domain.Goal(nil), goals...) }

// Notifications returns the feed, newest first.
func Notifications() []domain.Notification {
	return append([]domain.Notification(nil), notifications...)
}

// SeedAccounts returns the account list a new install starts with.
func SeedAccounts() []domain.BankAccount {
	return append([]domain.BankAccount(nil), seedAccounts...)
}
