package servicedef

import (
	"net/url"
	"strconv"
)

// Endpoint paths of the service under test, relative to its base URL.
const (
	UsersPath     = "/api/users"
	ResourcesPath = "/api/unknown"
	LoginPath     = "/api/login"
	RegisterPath  = "/api/register"
)

// UserPath returns the path of a single user.
func UserPath(id string) string {
	return UsersPath + "/" + url.PathEscape(id)
}

// ResourcePath returns the path of a single resource.
func ResourcePath(id string) string {
	return ResourcesPath + "/" + url.PathEscape(id)
}

// PageQuery returns the query parameters for one page of a paginated listing.
func PageQuery(page int) url.Values {
	return url.Values{"page": {strconv.Itoa(page)}}
}
