package servicedef

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialsOmitEmptyFields(t *testing.T) {
	assert.Equal(t, url.Values{"email": {"peter@klaven"}}, Credentials{Email: "peter@klaven"}.Form())
	assert.Equal(t, "email=eve.holt%40reqres.in&password=cityslicka", LoginCredentials.Form().Encode())
}

func TestUserParamsForm(t *testing.T) {
	assert.Equal(t, "job=zion+resident&name=morpheus", UpdatedUser.Form().Encode())
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/api/users/2", UserPath("2"))
	assert.Equal(t, "/api/unknown/23", ResourcePath(MissingID))
	assert.Equal(t, "/api/users/a%2Fb", UserPath("a/b"))
	assert.Equal(t, "page=2", PageQuery(2).Encode())
}
