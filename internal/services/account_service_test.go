package services

import (
	"testing"

	"budgetcore/internal/models"
	"budgetcore/internal/pagination"
	"budgetcore/internal/testutil"
)

func TestCreateAccount(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		ws := testutil.NewWorkspaceID()

		account, err := svc.CreateAccount(ws, " Savings ", models.AccountTypeSavings, "eur")
		testutil.AssertNoError(t, err)

		if account.ID == "" {
			t.Fatal("expected account ID to be set")
		}
		if account.Name != "Savings" {
			t.Errorf("expected name Savings, got %s", account.Name)
		}
		if account.Type != models.AccountTypeSavings {
			t.Errorf("expected type savings, got %s", account.Type)
		}
		if account.Currency != "EUR" {
			t.Errorf("expected currency EUR, got %s", account.Currency)
		}
		if !account.IsActive {
			t.Error("expected account to be active")
		}
	})

	t.Run("defaults", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		account, err := svc.CreateAccount(testutil.NewWorkspaceID(), "Wallet", "", "")
		testutil.AssertNoError(t, err)

		if account.Type != models.AccountTypeChecking {
			t.Errorf("expected type checking, got %s", account.Type)
		}
		if account.Currency != "USD" {
			t.Errorf("expected currency USD, got %s", account.Currency)
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		_, err := svc.CreateAccount(testutil.NewWorkspaceID(), "   ", models.AccountTypeCash, "USD")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetWorkspaceAccounts(t *testing.T) {
	t.Run("scoped_to_workspace", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		ws := testutil.NewWorkspaceID()
		testutil.CreateTestAccount(t, db, ws)
		testutil.CreateTestAccount(t, db, ws)
		testutil.CreateTestAccount(t, db, testutil.NewWorkspaceID())

		result, err := svc.GetWorkspaceAccounts(ws, pagination.PageRequest{Page: 1, PageSize: 1})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Errorf("expected 2 total items, got %d", result.TotalItems)
		}
		if len(result.Data) != 1 {
			t.Errorf("expected 1 item on the page, got %d", len(result.Data))
		}
		if result.TotalPages != 2 {
			t.Errorf("expected 2 pages, got %d", result.TotalPages)
		}
	})
}

func TestGetAccountByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		ws := testutil.NewWorkspaceID()
		created := testutil.CreateTestAccount(t, db, ws)

		account, err := svc.GetAccountByID(ws, created.ID)
		testutil.AssertNoError(t, err)
		if account.Name != created.Name {
			t.Errorf("expected name %s, got %s", created.Name, account.Name)
		}
	})

	t.Run("other_workspace", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		created := testutil.CreateTestAccount(t, db, testutil.NewWorkspaceID())

		_, err := svc.GetAccountByID(testutil.NewWorkspaceID(), created.ID)
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})
}
