package services

import (
	"fmt"
	"strings"

	"jointbank/backend/models"
)

// ParseTypeFilter validates a type filter from a query string. An empty
// value means all types.
func ParseTypeFilter(s string) (models.TypeFilter, error) {
	switch filter := models.TypeFilter(s); filter {
	case "":
		return models.FilterAll, nil
	case models.FilterAll, models.FilterDebit, models.FilterCredit:
		return filter, nil
	}
	return "", fmt.Errorf("%w: unknown transaction type filter %q", ErrInvalidInput, s)
}

// FilterTransactions returns the transactions matching both the search term
// and the type filter, in input order. The search term is matched
// case-insensitively against the description and category and is used as
// given, whitespace included. The input slice is not modified.
func FilterTransactions(transactions []models.Transaction, searchTerm string, filter models.TypeFilter) []models.Transaction {
	term := strings.ToLower(searchTerm)

	filtered := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if matchesSearch(tx, term) && matchesType(tx, filter) {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// matchesSearch expects an already lower-cased term
func matchesSearch(tx models.Transaction, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(tx.Description), term) {
		return true
	}
	return tx.Category != nil && strings.Contains(strings.ToLower(*tx.Category), term)
}

func matchesType(tx models.Transaction, filter models.TypeFilter) bool {
	return filter == models.FilterAll || string(tx.Type) == string(filter)
}
