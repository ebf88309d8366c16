package servicedef

// User is a user record as returned by the service.
type User struct {
	ID        int
	Email     string
	FirstName string
	LastName  string
}

// Resource is a resource record as returned by the service.
type Resource struct {
	ID           int
	Name         string
	Year         int
	Color        string
	PantoneValue string
}

// AsMap returns the resource in the same shape as its JSON representation.
func (r Resource) AsMap() map[string]interface{} {
	return map[string]interface{}{
		"id":            r.ID,
		"name":          r.Name,
		"year":          r.Year,
		"color":         r.Color,
		"pantone_value": r.PantoneValue,
	}
}

// Data that the service always returns.
var (
	KnownUser = User{ID: 2, Email: "janet.weaver@reqres.in", FirstName: "Janet", LastName: "Weaver"}

	KnownResource = Resource{ID: 2, Name: "fuchsia rose", Year: 2001, Color: "#C74375", PantoneValue: "17-2031"}

	// MissingID is an id that no user or resource has.
	MissingID = "23"

	TotalResources = 12

	SupportText = "To keep ReqRes free, contributions towards server costs are appreciated!"

	// Credentials of a user who is allowed to log in and register. Registering returns
	// RegisteredUserID.
	LoginCredentials    = Credentials{Email: "eve.holt@reqres.in", Password: "cityslicka"}
	RegisterCredentials = Credentials{Email: "eve.holt@reqres.in", Password: "pistol"}
	RegisteredUserID    = 4

	NewUser     = UserParams{Name: "morpheus", Job: "leader"}
	UpdatedUser = UserParams{Name: "morpheus", Job: "zion resident"}

	MissingPasswordError = "Missing password"
)
