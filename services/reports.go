package services

import (
	"sort"

	"jointbank/backend/models"

	"github.com/shopspring/decimal"
)

// SpendingByCategory totals the debit transactions per category, in the order
// categories first appear. Uncategorised debits are grouped under
// "Uncategorized".
func SpendingByCategory(transactions []models.Transaction) []models.CategoryTotal {
	totals := []models.CategoryTotal{}
	index := map[string]int{}

	for _, tx := range transactions {
		if tx.Type != models.TransactionDebit {
			continue
		}

		category := "Uncategorized"
		if tx.Category != nil && *tx.Category != "" {
			category = *tx.Category
		}

		i, ok := index[category]
		if !ok {
			i = len(totals)
			index[category] = i
			totals = append(totals, models.CategoryTotal{Category: category, Total: decimal.Zero})
		}
		totals[i].Total = totals[i].Total.Add(tx.Amount)
	}

	return totals
}

// MonthlyOverview sums income (credits) and spending (debits) per calendar
// month, oldest month first. Pending transactions are not counted.
func MonthlyOverview(transactions []models.Transaction) []models.MonthlyTotal {
	byMonth := map[string]*models.MonthlyTotal{}
	var months []string

	for _, tx := range transactions {
		if tx.Type != models.TransactionDebit && tx.Type != models.TransactionCredit {
			continue
		}

		month := tx.Date.UTC().Format("2006-01")
		total, ok := byMonth[month]
		if !ok {
			total = &models.MonthlyTotal{Month: month, Income: decimal.Zero, Spending: decimal.Zero}
			byMonth[month] = total
			months = append(months, month)
		}

		if tx.Type == models.TransactionCredit {
			total.Income = total.Income.Add(tx.Amount)
		} else {
			total.Spending = total.Spending.Add(tx.Amount)
		}
	}

	// YYYY-MM keys order correctly as strings
	sort.Strings(months)

	overview := make([]models.MonthlyTotal, 0, len(months))
	for _, month := range months {
		overview = append(overview, *byMonth[month])
	}
	return overview
}
