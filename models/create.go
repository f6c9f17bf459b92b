package models

type RegisterRequest struct {
	Name     string `json:"name" example:"John Doe"`
	Email    string `json:"email" example:"john@example.com"`
	Password string `json:"password" example:"password123"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"john@example.com"`
	Password string `json:"password" example:"password123"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// CreateTransaction carries a new transaction. IsIncome is a pointer so a
// missing field can be told apart from an explicit false.
type CreateTransaction struct {
	Amount   float64 `json:"amount" example:"250.50"`
	Category string  `json:"category" example:"Products"`
	Date     string  `json:"date" example:"2024-03-15"`
	IsIncome *bool   `json:"isIncome"`
	Comment  string  `json:"comment" example:"groceries"`
}

// UpdateTransaction carries a partial update; nil fields are left untouched.
type UpdateTransaction struct {
	Amount   *float64 `json:"amount"`
	Category *string  `json:"category"`
	Date     *string  `json:"date"`
	IsIncome *bool    `json:"isIncome"`
	Comment  *string  `json:"comment"`
}
