package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jos3lo89/ice-pos-server/constants"
	"github.com/jos3lo89/ice-pos-server/model"
	"github.com/stretchr/testify/assert"
)

func TestOpenCashSession(t *testing.T) {
	app, db := setupApp(t)
	cajero := seedUser(t, db, constants.ROLE_CAJERO)
	token := tokenFor(t, cajero)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/cash-sessions/open", token,
		map[string]any{"openingBalance": 50})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, constants.SESSION_OPEN, data["status"])
	assert.True(t, asDecimal(t, data["openingBalance"]).Equal(d("50")))

	// A second open for the same cashier must be refused.
	resp = doRequest(t, app, http.MethodPost, "/api/v1/cash-sessions/open", token,
		map[string]any{"openingBalance": 10})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestCloseCashSessionReconciles(t *testing.T) {
	app, db := setupApp(t)
	cajero := seedUser(t, db, constants.ROLE_CAJERO)
	token := tokenFor(t, cajero)
	session := seedOpenSession(t, db, cajero.ID, "50.00")

	// A cash sale of 100 in this session; card sales never touch the drawer.
	cash := model.Payment{
		PaymentNumber: "PAY-001",
		OrderID:       uuid.NewString(),
		CajeroID:      cajero.ID,
		CashSessionID: session.ID,
		Method:        constants.METHOD_CASH,
		Amount:        d("100.00"),
		Status:        constants.PAYMENT_PAID,
	}
	assert.NoError(t, db.Create(&cash).Error)
	card := model.Payment{
		PaymentNumber: "PAY-002",
		OrderID:       uuid.NewString(),
		CajeroID:      cajero.ID,
		CashSessionID: session.ID,
		Method:        constants.METHOD_CARD,
		Amount:        d("35.00"),
		Status:        constants.PAYMENT_PAID,
	}
	assert.NoError(t, db.Create(&card).Error)

	resp := doRequest(t, app, http.MethodPost,
		"/api/v1/cash-sessions/"+session.ID+"/transactions", token,
		map[string]any{"type": constants.CASH_OUT, "amount": 10, "description": "Compra de hielo"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// expected = 50 opening + 100 cash sales - 10 egreso = 140
	resp = doRequest(t, app, http.MethodPost,
		"/api/v1/cash-sessions/"+session.ID+"/close", token,
		map[string]any{"actualBalance": 140})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	details := data["details"].(map[string]any)
	assert.True(t, asDecimal(t, details["opening"]).Equal(d("50")))
	assert.True(t, asDecimal(t, details["sales_cash"]).Equal(d("100")))
	assert.True(t, asDecimal(t, details["manual_transactions"]).Equal(d("-10")))
	assert.True(t, asDecimal(t, details["expected"]).Equal(d("140")))
	assert.True(t, asDecimal(t, details["difference"]).Equal(d("0")))
	assert.Equal(t, true, details["is_balanced"])

	var got model.CashSession
	assert.NoError(t, db.First(&got, "id = ?", session.ID).Error)
	assert.Equal(t, constants.SESSION_CLOSED, got.Status)
	assert.NotNil(t, got.ClosedAt)
	assert.True(t, got.ExpectedBalance.Equal(d("140")))
	assert.True(t, got.Difference.IsZero())
}

func TestCloseCashSessionReportsShortage(t *testing.T) {
	app, db := setupApp(t)
	cajero := seedUser(t, db, constants.ROLE_CAJERO)
	token := tokenFor(t, cajero)
	session := seedOpenSession(t, db, cajero.ID, "100.00")

	resp := doRequest(t, app, http.MethodPost,
		"/api/v1/cash-sessions/"+session.ID+"/close", token,
		map[string]any{"actualBalance": 95.50})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	details := body["data"].(map[string]any)["details"].(map[string]any)
	assert.True(t, asDecimal(t, details["difference"]).Equal(d("-4.50")))
	assert.Equal(t, false, details["is_balanced"])
}

func TestCloseCashSessionGuards(t *testing.T) {
	app, db := setupApp(t)
	cajero := seedUser(t, db, constants.ROLE_CAJERO)
	token := tokenFor(t, cajero)
	session := seedOpenSession(t, db, cajero.ID, "50.00")

	resp := doRequest(t, app, http.MethodPost,
		"/api/v1/cash-sessions/"+session.ID+"/close", token,
		map[string]any{"actualBalance": 50})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Closing twice is a bad request: the session is already immutable.
	resp = doRequest(t, app, http.MethodPost,
		"/api/v1/cash-sessions/"+session.ID+"/close", token,
		map[string]any{"actualBalance": 50})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	other := seedUser(t, db, constants.ROLE_CAJERO)
	foreign := seedOpenSession(t, db, other.ID, "10.00")
	resp = doRequest(t, app, http.MethodPost,
		"/api/v1/cash-sessions/"+foreign.ID+"/close", token,
		map[string]any{"actualBalance": 10})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodPost,
		"/api/v1/cash-sessions/"+uuid.NewString()+"/close", token,
		map[string]any{"actualBalance": 10})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCashTransactionOnClosedSession(t *testing.T) {
	app, db := setupApp(t)
	cajero := seedUser(t, db, constants.ROLE_CAJERO)
	token := tokenFor(t, cajero)
	session := seedOpenSession(t, db, cajero.ID, "50.00")
	db.Model(&model.CashSession{}).Where("id = ?", session.ID).
		Update("status", constants.SESSION_CLOSED)

	resp := doRequest(t, app, http.MethodPost,
		"/api/v1/cash-sessions/"+session.ID+"/transactions", token,
		map[string]any{"type": constants.CASH_IN, "amount": 5, "description": "Sencillo extra"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestGetCurrentSession(t *testing.T) {
	app, db := setupApp(t)
	cajero := seedUser(t, db, constants.ROLE_CAJERO)
	token := tokenFor(t, cajero)

	resp := doRequest(t, app, http.MethodGet, "/api/v1/cash-sessions/current", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["data"].(map[string]any)["hasActiveSession"])

	seedOpenSession(t, db, cajero.ID, "25.00")

	resp = doRequest(t, app, http.MethodGet, "/api/v1/cash-sessions/current", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, true, data["hasActiveSession"])
	session := data["session"].(map[string]any)
	assert.True(t, asDecimal(t, session["openingBalance"]).Equal(d("25")))
}

func TestCashSessionsRequireCajeroRole(t *testing.T) {
	app, db := setupApp(t)
	mesero := seedUser(t, db, constants.ROLE_MESERO)
	token := tokenFor(t, mesero)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/cash-sessions/open", token,
		map[string]any{"openingBalance": 10})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}
