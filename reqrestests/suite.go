package reqrestests

import (
	"github.com/qa-contracts/reqres-contract-tests/framework/ldtest"
)

// Names of the schema documents that the tests use.
const (
	ListUserSchema        = "list_user"
	SingleUserSchema      = "single_user"
	ListResourcesSchema   = "list_resources"
	SingleResourceSchema  = "single_resources"
	LoginSuccessfulSchema = "login_successful"
)

// AllSchemas lists every schema document the suite needs.
var AllSchemas = []string{
	ListUserSchema,
	SingleUserSchema,
	ListResourcesSchema,
	SingleResourceSchema,
	LoginSuccessfulSchema,
}

func RunTestSuite(
	sc SuiteContext,
	filter ldtest.Filter,
	testLogger ldtest.TestLogger,
) ldtest.Results {
	config := ldtest.TestConfiguration{
		Filter:     filter,
		TestLogger: testLogger,
		Context:    sc,
	}
	return ldtest.Run(config, func(t *ldtest.T) {
		t.Run("users", DoUserTests)
		t.Run("resources", DoResourceTests)
		t.Run("auth", DoAuthTests)
		t.Run("user lifecycle", DoUserLifecycleTests)
		t.Run("schemas", DoSchemaTests)
	})
}
