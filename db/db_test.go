package db

import (
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/in4matic/wallet-api/models"
)

// setupTestDB connects to the test database and truncates all tables so
// every test starts from a clean state.
func setupTestDB(t *testing.T) *Storage {
	_ = godotenv.Load("../.env")

	connStr := os.Getenv("POSTGRES_TEST_URL")
	if connStr == "" {
		t.Skip("POSTGRES_TEST_URL not set")
	}

	store, err := NewStorage(connStr)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	_, err = store.DB.Exec("TRUNCATE TABLE transactions, blacklisted_tokens, users RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}

	return store
}

func TestCreateAndGetUser(t *testing.T) {
	store := setupTestDB(t)
	defer store.Close()

	user, err := store.CreateUser("John Doe", "john@example.com", "password123")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	if user.ID == 0 {
		t.Error("Expected user ID to be set, got 0")
	}
	if user.Email != "john@example.com" {
		t.Errorf("Expected email 'john@example.com', got %s", user.Email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")); err != nil {
		t.Error("Password hash does not match")
	}

	fetched, err := store.GetUserByEmail("john@example.com")
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}
	if fetched == nil {
		t.Fatal("Expected user, got nil")
	}
	if fetched.ID != user.ID || fetched.Name != "John Doe" {
		t.Errorf("Expected user {ID: %d, Name: John Doe}, got %+v", user.ID, fetched)
	}

	byID, err := store.GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("Failed to get user by id: %v", err)
	}
	if byID == nil || byID.Email != "john@example.com" {
		t.Errorf("Expected user with email 'john@example.com', got %+v", byID)
	}

	missing, err := store.GetUserByEmail("nobody@example.com")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil user, got %+v", missing)
	}

	_, err = store.CreateUser("Shorty", "short@example.com", "short")
	if err == nil || err.Error() != "password must be at least 6 characters" {
		t.Errorf("Expected error 'password must be at least 6 characters', got %v", err)
	}
}

func TestRefreshTokenStorage(t *testing.T) {
	store := setupTestDB(t)
	defer store.Close()

	user, err := store.CreateUser("John Doe", "john@example.com", "password123")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	if err := store.UpdateRefreshToken(user.ID, "token-1"); err != nil {
		t.Fatalf("Failed to update refresh token: %v", err)
	}
	fetched, err := store.GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}
	if fetched.RefreshToken != "token-1" {
		t.Errorf("Expected refresh token 'token-1', got %s", fetched.RefreshToken)
	}

	// Rotation replaces the stored value.
	if err := store.UpdateRefreshToken(user.ID, "token-2"); err != nil {
		t.Fatalf("Failed to rotate refresh token: %v", err)
	}
	fetched, _ = store.GetUserByID(user.ID)
	if fetched.RefreshToken != "token-2" {
		t.Errorf("Expected refresh token 'token-2', got %s", fetched.RefreshToken)
	}
}

func TestTokenBlacklist(t *testing.T) {
	store := setupTestDB(t)
	defer store.Close()

	ttl := time.Hour

	blacklisted, err := store.IsTokenBlacklisted("some-token", ttl)
	if err != nil {
		t.Fatalf("Failed to check blacklist: %v", err)
	}
	if blacklisted {
		t.Error("Expected token not to be blacklisted")
	}

	if err := store.BlacklistToken("some-token", ttl); err != nil {
		t.Fatalf("Failed to blacklist token: %v", err)
	}
	blacklisted, err = store.IsTokenBlacklisted("some-token", ttl)
	if err != nil {
		t.Fatalf("Failed to check blacklist: %v", err)
	}
	if !blacklisted {
		t.Error("Expected token to be blacklisted")
	}

	// Double insert is a no-op.
	if err := store.BlacklistToken("some-token", ttl); err != nil {
		t.Fatalf("Expected no error on duplicate blacklist, got %v", err)
	}

	// A row older than the TTL no longer counts, and the next insert purges it.
	_, err = store.DB.Exec(
		"UPDATE blacklisted_tokens SET created_at = $1 WHERE token = $2",
		time.Now().Add(-2*ttl), "some-token",
	)
	if err != nil {
		t.Fatalf("Failed to age blacklist row: %v", err)
	}
	blacklisted, err = store.IsTokenBlacklisted("some-token", ttl)
	if err != nil {
		t.Fatalf("Failed to check blacklist: %v", err)
	}
	if blacklisted {
		t.Error("Expected expired blacklist entry to be ignored")
	}

	if err := store.BlacklistToken("other-token", ttl); err != nil {
		t.Fatalf("Failed to blacklist token: %v", err)
	}
	var count int
	if err := store.DB.QueryRow("SELECT COUNT(*) FROM blacklisted_tokens").Scan(&count); err != nil {
		t.Fatalf("Failed to count blacklist rows: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected expired rows to be purged, got %d rows", count)
	}
}

func TestTransactionsCRUD(t *testing.T) {
	store := setupTestDB(t)
	defer store.Close()

	user, err := store.CreateUser("John Doe", "john@example.com", "password123")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	tx := &models.Transaction{
		UserID:   user.ID,
		Amount:   250.50,
		Category: "Products",
		Date:     "15-03-2024",
		IsIncome: false,
		Comment:  "groceries",
	}
	if err := store.CreateTransaction(tx); err != nil {
		t.Fatalf("Failed to create transaction: %v", err)
	}
	if tx.ID == 0 {
		t.Error("Expected transaction ID to be set, got 0")
	}
	if tx.CreatedAt.IsZero() || tx.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be set")
	}

	fetched, err := store.GetTransaction(tx.ID)
	if err != nil {
		t.Fatalf("Failed to get transaction: %v", err)
	}
	if fetched == nil {
		t.Fatal("Expected transaction, got nil")
	}
	if fetched.Amount != 250.50 || fetched.Category != "Products" || fetched.Date != "15-03-2024" {
		t.Errorf("Expected transaction {Amount: 250.50, Category: Products, Date: 15-03-2024}, got %+v", fetched)
	}

	fetched.Amount = 99.99
	fetched.Category = "Car"
	if err := store.UpdateTransaction(fetched); err != nil {
		t.Fatalf("Failed to update transaction: %v", err)
	}
	updated, _ := store.GetTransaction(tx.ID)
	if updated.Amount != 99.99 || updated.Category != "Car" {
		t.Errorf("Expected transaction {Amount: 99.99, Category: Car}, got %+v", updated)
	}

	list, err := store.GetTransactions(user.ID)
	if err != nil {
		t.Fatalf("Failed to list transactions: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("Expected 1 transaction, got %d", len(list))
	}

	if err := store.DeleteTransaction(tx.ID); err != nil {
		t.Fatalf("Failed to delete transaction: %v", err)
	}
	gone, err := store.GetTransaction(tx.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if gone != nil {
		t.Errorf("Expected nil transaction after delete, got %+v", gone)
	}
}

func TestGetTransactionsByMonth(t *testing.T) {
	store := setupTestDB(t)
	defer store.Close()

	user, err := store.CreateUser("John Doe", "john@example.com", "password123")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	other, err := store.CreateUser("Jane Doe", "jane@example.com", "password123")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	seed := []models.Transaction{
		{UserID: user.ID, Amount: 100, Category: "Income", Date: "15-03-2024", IsIncome: true},
		{UserID: user.ID, Amount: 50, Category: "Income", Date: "02-03-2024", IsIncome: true},
		{UserID: user.ID, Amount: 30, Category: "Products", Date: "20-04-2024"},
		{UserID: other.ID, Amount: 70, Category: "Car", Date: "10-03-2024"},
	}
	for i := range seed {
		if err := store.CreateTransaction(&seed[i]); err != nil {
			t.Fatalf("Failed to create transaction: %v", err)
		}
	}

	march, err := store.GetTransactionsByMonth(user.ID, 3, 2024)
	if err != nil {
		t.Fatalf("Failed to filter transactions: %v", err)
	}
	if len(march) != 2 {
		t.Errorf("Expected 2 transactions for 03/2024, got %d", len(march))
	}
	for _, tx := range march {
		if tx.UserID != user.ID {
			t.Errorf("Expected only the owner's transactions, got user %d", tx.UserID)
		}
	}

	april, err := store.GetTransactionsByMonth(user.ID, 4, 2024)
	if err != nil {
		t.Fatalf("Failed to filter transactions: %v", err)
	}
	if len(april) != 1 || april[0].Category != "Products" {
		t.Errorf("Expected the single April expense, got %+v", april)
	}

	empty, err := store.GetTransactionsByMonth(user.ID, 1, 2023)
	if err != nil {
		t.Fatalf("Failed to filter transactions: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected 0 transactions for 01/2023, got %d", len(empty))
	}
}
