// Package servicedef describes the requests that the tests send to the service and the
// fixed data that the service is known to return.
package servicedef

import "net/url"

// Credentials are the form parameters for the login and register endpoints. An empty
// field is omitted from the form entirely, which is how the tests provoke "missing"
// errors.
type Credentials struct {
	Email    string
	Password string
}

func (c Credentials) Form() url.Values {
	form := url.Values{}
	if c.Email != "" {
		form.Set("email", c.Email)
	}
	if c.Password != "" {
		form.Set("password", c.Password)
	}
	return form
}

// UserParams are the form parameters for creating or updating a user.
type UserParams struct {
	Name string
	Job  string
}

func (u UserParams) Form() url.Values {
	return url.Values{"name": {u.Name}, "job": {u.Job}}
}
