package reqrestests

import (
	"fmt"

	"github.com/qa-contracts/reqres-contract-tests/framework/ldtest"
	"github.com/qa-contracts/reqres-contract-tests/servicedef"
)

func DoResourceTests(t *ldtest.T) {
	t.Run("list resources", func(t *ldtest.T) {
		api := NewServiceAPI(t)
		resp := api.Get(servicedef.ResourcesPath, nil)
		api.RequireStatus(resp, 200)
		api.AssertFieldNotEmpty(resp, "data")
		api.AssertField(resp, "total", servicedef.TotalResources)
		api.AssertField(resp, "support.text", servicedef.SupportText)
	})

	t.Run("list resources page 2", func(t *ldtest.T) {
		api := NewServiceAPI(t)
		resp := api.Get(servicedef.ResourcesPath, servicedef.PageQuery(2))
		api.RequireStatus(resp, 200)
		api.AssertField(resp, "page", 2)
		api.AssertFieldNotEmpty(resp, "data")
	})

	t.Run("single resource", func(t *ldtest.T) {
		resource := servicedef.KnownResource
		api := NewServiceAPI(t)
		resp := api.Get(servicedef.ResourcePath(fmt.Sprint(resource.ID)), nil)
		api.RequireStatus(resp, 200)
		api.AssertField(resp, "data", resource.AsMap())
	})

	t.Run("single resource not found", func(t *ldtest.T) {
		api := NewServiceAPI(t)
		resp := api.Get(servicedef.ResourcePath(servicedef.MissingID), nil)
		api.RequireStatus(resp, 404)
		api.AssertEmptyBody(resp)
	})
}
