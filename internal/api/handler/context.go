package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the identity claims injected by the Auth middleware
// and fast-fails before any service call: an empty account id means the
// middleware did not run or the token lacked a subject.
func ctxIdentity(c echo.Context) (accountID, email, role string, err error) {
	accountID, _ = c.Get("account_id").(string)
	if accountID == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ = c.Get("email").(string)
	role, _ = c.Get("role").(string)
	return accountID, email, role, nil
}
