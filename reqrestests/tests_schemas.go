package reqrestests

import (
	"fmt"

	"github.com/qa-contracts/reqres-contract-tests/framework/harness"
	"github.com/qa-contracts/reqres-contract-tests/framework/ldtest"
	"github.com/qa-contracts/reqres-contract-tests/servicedef"
)

func DoSchemaTests(t *ldtest.T) {
	schemaTest := func(schemaName string, send func(*ServiceAPI) *harness.Response) func(*ldtest.T) {
		return func(t *ldtest.T) {
			api := NewServiceAPI(t)
			resp := send(api)
			api.RequireStatus(resp, 200)
			api.AssertSchema(resp, schemaName)
		}
	}

	t.Run("list users", schemaTest(ListUserSchema, func(api *ServiceAPI) *harness.Response {
		return api.Get(servicedef.UsersPath, servicedef.PageQuery(2))
	}))

	t.Run("single user", schemaTest(SingleUserSchema, func(api *ServiceAPI) *harness.Response {
		return api.Get(servicedef.UserPath(fmt.Sprint(servicedef.KnownUser.ID)), nil)
	}))

	t.Run("list resources", schemaTest(ListResourcesSchema, func(api *ServiceAPI) *harness.Response {
		return api.Get(servicedef.ResourcesPath, nil)
	}))

	t.Run("single resource", schemaTest(SingleResourceSchema, func(api *ServiceAPI) *harness.Response {
		return api.Get(servicedef.ResourcePath(fmt.Sprint(servicedef.KnownResource.ID)), nil)
	}))

	t.Run("login successful", schemaTest(LoginSuccessfulSchema, func(api *ServiceAPI) *harness.Response {
		return api.Post(servicedef.LoginPath, servicedef.LoginCredentials.Form())
	}))
}
