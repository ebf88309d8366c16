package reqrestests

import (
	"github.com/qa-contracts/reqres-contract-tests/framework/ldtest"
	"github.com/qa-contracts/reqres-contract-tests/servicedef"
)

// Every test creates its own user, since ids generated by the service are not predictable
// and tests must not depend on each other.
func DoUserLifecycleTests(t *ldtest.T) {
	t.Run("create", func(t *ldtest.T) {
		api := NewServiceAPI(t)
		resp := api.Post(servicedef.UsersPath, servicedef.NewUser.Form())
		api.RequireStatus(resp, 201)
		api.AssertField(resp, "name", servicedef.NewUser.Name)
		api.AssertField(resp, "job", servicedef.NewUser.Job)
		api.AssertFieldNotEmpty(resp, "id")
	})

	t.Run("update", func(t *ldtest.T) {
		api := NewServiceAPI(t)
		id := createUser(api)
		resp := api.Put(servicedef.UserPath(id), servicedef.UpdatedUser.Form())
		api.RequireStatus(resp, 200)
		api.AssertField(resp, "job", servicedef.UpdatedUser.Job)
	})

	t.Run("patch", func(t *ldtest.T) {
		api := NewServiceAPI(t)
		id := createUser(api)
		resp := api.Patch(servicedef.UserPath(id), servicedef.UpdatedUser.Form())
		api.RequireStatus(resp, 200)
		api.AssertField(resp, "job", servicedef.UpdatedUser.Job)
	})

	t.Run("delete", func(t *ldtest.T) {
		api := NewServiceAPI(t)
		id := createUser(api)
		resp := api.Delete(servicedef.UserPath(id))
		api.RequireStatus(resp, 204)
	})
}

func createUser(api *ServiceAPI) string {
	resp := api.Post(servicedef.UsersPath, servicedef.NewUser.Form())
	api.RequireStatus(resp, 201)
	return api.RequireID(resp, "id")
}
