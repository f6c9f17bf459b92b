package db

import (
	"database/sql"

	"github.com/in4matic/wallet-api/models"
)

const transactionColumns = "id, user_id, amount, category, date, is_income, comment, created_at, updated_at"

func scanTransaction(row interface{ Scan(...any) error }, t *models.Transaction) error {
	return row.Scan(&t.ID, &t.UserID, &t.Amount, &t.Category, &t.Date, &t.IsIncome, &t.Comment, &t.CreatedAt, &t.UpdatedAt)
}

// CreateTransaction inserts t and fills in its generated fields.
func (s *Storage) CreateTransaction(t *models.Transaction) error {
	return s.DB.QueryRow(
		`INSERT INTO transactions (user_id, amount, category, date, is_income, comment)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		t.UserID, t.Amount, t.Category, t.Date, t.IsIncome, t.Comment,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// GetTransaction returns the transaction with the given id, or nil when
// absent. Ownership is the caller's problem.
func (s *Storage) GetTransaction(id int) (*models.Transaction, error) {
	var t models.Transaction
	err := scanTransaction(s.DB.QueryRow(
		"SELECT "+transactionColumns+" FROM transactions WHERE id = $1", id,
	), &t)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetTransactions returns all transactions owned by userID.
func (s *Storage) GetTransactions(userID int) ([]models.Transaction, error) {
	rows, err := s.DB.Query(
		"SELECT "+transactionColumns+" FROM transactions WHERE user_id = $1 ORDER BY id", userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTransactions(rows)
}

// GetTransactionsByMonth returns userID's transactions whose canonical
// DD-MM-YYYY date falls in the given month and year.
func (s *Storage) GetTransactionsByMonth(userID, month, year int) ([]models.Transaction, error) {
	rows, err := s.DB.Query(
		`SELECT `+transactionColumns+` FROM transactions
		 WHERE user_id = $1
		   AND EXTRACT(MONTH FROM to_date(date, 'DD-MM-YYYY')) = $2
		   AND EXTRACT(YEAR FROM to_date(date, 'DD-MM-YYYY')) = $3
		 ORDER BY id`,
		userID, month, year,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTransactions(rows)
}

// UpdateTransaction writes the full row and refreshes updated_at.
func (s *Storage) UpdateTransaction(t *models.Transaction) error {
	return s.DB.QueryRow(
		`UPDATE transactions
		 SET amount = $1, category = $2, date = $3, is_income = $4, comment = $5, updated_at = now()
		 WHERE id = $6
		 RETURNING updated_at`,
		t.Amount, t.Category, t.Date, t.IsIncome, t.Comment, t.ID,
	).Scan(&t.UpdatedAt)
}

// DeleteTransaction removes the transaction with the given id.
func (s *Storage) DeleteTransaction(id int) error {
	_, err := s.DB.Exec("DELETE FROM transactions WHERE id = $1", id)
	return err
}

func collectTransactions(rows *sql.Rows) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := scanTransaction(rows, &t); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
