package reqrestests

import (
	"fmt"

	"github.com/qa-contracts/reqres-contract-tests/framework/ldtest"
	"github.com/qa-contracts/reqres-contract-tests/servicedef"
)

func DoUserTests(t *ldtest.T) {
	for _, page := range []int{1, 2} {
		t.Run(fmt.Sprintf("list users page %d", page), func(t *ldtest.T) {
			api := NewServiceAPI(t)
			resp := api.Get(servicedef.UsersPath, servicedef.PageQuery(page))
			api.RequireStatus(resp, 200)
			api.AssertField(resp, "page", page)
			api.AssertFieldNotEmpty(resp, "data")
		})
	}

	t.Run("single user", func(t *ldtest.T) {
		user := servicedef.KnownUser
		api := NewServiceAPI(t)
		resp := api.Get(servicedef.UserPath(fmt.Sprint(user.ID)), nil)
		api.RequireStatus(resp, 200)
		api.AssertField(resp, "data.id", user.ID)
		api.AssertField(resp, "data.email", user.Email)
		api.AssertField(resp, "data.first_name", user.FirstName)
		api.AssertField(resp, "data.last_name", user.LastName)
	})

	t.Run("single user not found", func(t *ldtest.T) {
		api := NewServiceAPI(t)
		resp := api.Get(servicedef.UserPath(servicedef.MissingID), nil)
		api.RequireStatus(resp, 404)
		api.AssertEmptyBody(resp)
	})
}
