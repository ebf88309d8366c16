package reqrestests

import (
	"github.com/qa-contracts/reqres-contract-tests/framework/ldtest"
	"github.com/qa-contracts/reqres-contract-tests/servicedef"
)

func DoAuthTests(t *ldtest.T) {
	t.Run("login", func(t *ldtest.T) {
		t.Run("successful", func(t *ldtest.T) {
			api := NewServiceAPI(t)
			resp := api.Post(servicedef.LoginPath, servicedef.LoginCredentials.Form())
			api.RequireStatus(resp, 200)
			api.AssertFieldNotEmpty(resp, "token")
		})

		t.Run("missing password", func(t *ldtest.T) {
			api := NewServiceAPI(t)
			resp := api.Post(servicedef.LoginPath, servicedef.Credentials{Email: "peter@klaven"}.Form())
			api.RequireStatus(resp, 400)
			api.AssertField(resp, "error", servicedef.MissingPasswordError)
		})
	})

	t.Run("register", func(t *ldtest.T) {
		t.Run("successful", func(t *ldtest.T) {
			api := NewServiceAPI(t)
			resp := api.Post(servicedef.RegisterPath, servicedef.RegisterCredentials.Form())
			api.RequireStatus(resp, 200)
			api.AssertField(resp, "id", servicedef.RegisteredUserID)
			api.AssertFieldNotEmpty(resp, "token")
		})

		t.Run("missing password", func(t *ldtest.T) {
			api := NewServiceAPI(t)
			resp := api.Post(servicedef.RegisterPath, servicedef.Credentials{Email: "sydney@fife"}.Form())
			api.RequireStatus(resp, 400)
			api.AssertField(resp, "error", servicedef.MissingPasswordError)
		})
	})
}
