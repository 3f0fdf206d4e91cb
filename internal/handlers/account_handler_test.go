package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "budgetcore/internal/errors"
	"budgetcore/internal/models"
)

func setupAccountRouter(accounts *mockAccountService, audit *mockAuditService) *gin.Engine {
	handler := NewAccountHandler(accounts, audit)
	r := newTestRouter()
	r.POST("/accounts", handler.CreateAccount)
	r.GET("/accounts", handler.GetAccounts)
	r.GET("/accounts/:id", handler.GetAccount)
	return r
}

func TestAccountHandler_CreateAccount(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupAccountRouter(&mockAccountService{}, audit)

		rec := doRequest(r, "POST", "/accounts", `{"name":"Joint","type":"savings","currency":"EUR"}`)

		assertStatus(t, rec, http.StatusCreated)
		account := parseJSON(t, rec)["account"].(map[string]interface{})
		if account["type"] != "savings" || account["currency"] != "EUR" {
			t.Errorf("unexpected account %v", account)
		}
		audit.assertLogged(t, "CREATE_ACCOUNT")
	})

	t.Run("rejects unknown type and currency", func(t *testing.T) {
		tests := map[string]string{
			"type":     `{"name":"X","type":"brokerage"}`,
			"currency": `{"name":"X","currency":"XYZ"}`,
			"name":     `{"type":"cash"}`,
		}
		for name, body := range tests {
			t.Run(name, func(t *testing.T) {
				r := setupAccountRouter(&mockAccountService{}, &mockAuditService{})
				rec := doRequest(r, "POST", "/accounts", body)
				assertStatus(t, rec, http.StatusBadRequest)
			})
		}
	})
}

func TestAccountHandler_GetAccount(t *testing.T) {
	accounts := &mockAccountService{
		getFn: func(string, string) (*models.Account, error) { return nil, apperrors.ErrAccountNotFound },
	}
	r := setupAccountRouter(accounts, &mockAuditService{})

	rec := doRequest(r, "GET", "/accounts/"+testID, "")

	assertStatus(t, rec, http.StatusNotFound)
	assertErrorCode(t, parseJSON(t, rec), "ACCOUNT_NOT_FOUND")
}

func TestAccountHandler_GetAccounts(t *testing.T) {
	r := setupAccountRouter(&mockAccountService{}, &mockAuditService{})
	rec := doRequest(r, "GET", "/accounts", "")
	assertStatus(t, rec, http.StatusOK)
}
