package reqrestests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/qa-contracts/reqres-contract-tests/servicedef"
)

const (
	fakePerPage   = 6
	fakeItemCount = 12
	fakeToken     = "QpwL5tke4Pnpja7X4"
	fakeCreatedID = "123"
)

var fakeSupport = map[string]interface{}{
	"url":  "https://reqres.in/#support-heading",
	"text": servicedef.SupportText,
}

// fakeService behaves like the real service for every request the suite sends. Tests
// break it on purpose by setting mutations or statuses, keyed by "METHOD /path".
type fakeService struct {
	mutations map[string]func(body []byte) []byte
	statuses  map[string]int
}

func newFakeService() *fakeService {
	return &fakeService{
		mutations: make(map[string]func([]byte) []byte),
		statuses:  make(map[string]int),
	}
}

func (f *fakeService) handler() http.Handler {
	router := chi.NewRouter()
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Route(servicedef.UsersPath, func(r chi.Router) {
		r.Get("/", f.listUsers)
		r.Post("/", f.createUser)
		r.Get("/{id}", f.getUser)
		r.Put("/{id}", f.updateUser)
		r.Patch("/{id}", f.updateUser)
		r.Delete("/{id}", f.deleteUser)
	})
	router.Route(servicedef.ResourcesPath, func(r chi.Router) {
		r.Get("/", f.listResources)
		r.Get("/{id}", f.getResource)
	})
	router.Post(servicedef.LoginPath, f.login)
	router.Post(servicedef.RegisterPath, f.register)
	return router
}

func (f *fakeService) writeJSON(w http.ResponseWriter, r *http.Request, status int, value interface{}) {
	body, _ := json.Marshal(value)
	key := r.Method + " " + r.URL.Path
	if mutate := f.mutations[key]; mutate != nil {
		body = mutate(body)
	}
	if s, ok := f.statuses[key]; ok {
		status = s
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (f *fakeService) writeNoContent(w http.ResponseWriter, r *http.Request) {
	status := http.StatusNoContent
	if s, ok := f.statuses[r.Method+" "+r.URL.Path]; ok {
		status = s
	}
	w.WriteHeader(status)
}

func fakeUser(id int) map[string]interface{} {
	u := servicedef.User{ID: id, Email: fmt.Sprintf("user%d@reqres.in", id),
		FirstName: fmt.Sprintf("First%d", id), LastName: fmt.Sprintf("Last%d", id)}
	if id == servicedef.KnownUser.ID {
		u = servicedef.KnownUser
	}
	return map[string]interface{}{
		"id":         u.ID,
		"email":      u.Email,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"avatar":     fmt.Sprintf("https://reqres.in/img/faces/%d-image.jpg", id),
	}
}

func fakeResource(id int) map[string]interface{} {
	if id == servicedef.KnownResource.ID {
		return servicedef.KnownResource.AsMap()
	}
	return servicedef.Resource{
		ID:           id,
		Name:         fmt.Sprintf("color %d", id),
		Year:         2000 + id,
		Color:        fmt.Sprintf("#%06X", id*4096),
		PantoneValue: fmt.Sprintf("15-%04d", id),
	}.AsMap()
}

func (f *fakeService) page(w http.ResponseWriter, r *http.Request, item func(int) map[string]interface{}) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	data := []interface{}{}
	for id := (page-1)*fakePerPage + 1; id <= page*fakePerPage && id <= fakeItemCount; id++ {
		data = append(data, item(id))
	}
	f.writeJSON(w, r, http.StatusOK, map[string]interface{}{
		"page":        page,
		"per_page":    fakePerPage,
		"total":       fakeItemCount,
		"total_pages": fakeItemCount / fakePerPage,
		"data":        data,
		"support": fakeSupport,
	})
}

func (f *fakeService) single(w http.ResponseWriter, r *http.Request, item func(int) map[string]interface{}) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 || id > fakeItemCount {
		f.writeJSON(w, r, http.StatusNotFound, map[string]interface{}{})
		return
	}
	f.writeJSON(w, r, http.StatusOK, map[string]interface{}{
		"data":    item(id),
		"support": fakeSupport,
	})
}

func (f *fakeService) listUsers(w http.ResponseWriter, r *http.Request)     { f.page(w, r, fakeUser) }
func (f *fakeService) getUser(w http.ResponseWriter, r *http.Request)       { f.single(w, r, fakeUser) }
func (f *fakeService) listResources(w http.ResponseWriter, r *http.Request) { f.page(w, r, fakeResource) }
func (f *fakeService) getResource(w http.ResponseWriter, r *http.Request)   { f.single(w, r, fakeResource) }

func (f *fakeService) createUser(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	f.writeJSON(w, r, http.StatusCreated, map[string]interface{}{
		"name":      r.PostForm.Get("name"),
		"job":       r.PostForm.Get("job"),
		"id":        fakeCreatedID,
		"createdAt": "2026-01-01T00:00:00.000Z",
	})
}

func (f *fakeService) updateUser(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	f.writeJSON(w, r, http.StatusOK, map[string]interface{}{
		"name":      r.PostForm.Get("name"),
		"job":       r.PostForm.Get("job"),
		"updatedAt": "2026-01-01T00:00:00.000Z",
	})
}

func (f *fakeService) deleteUser(w http.ResponseWriter, r *http.Request) {
	f.writeNoContent(w, r)
}

func (f *fakeService) login(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	switch {
	case r.PostForm.Get("email") == "":
		f.writeJSON(w, r, http.StatusBadRequest, map[string]interface{}{"error": "Missing email or username"})
	case r.PostForm.Get("password") == "":
		f.writeJSON(w, r, http.StatusBadRequest, map[string]interface{}{"error": servicedef.MissingPasswordError})
	default:
		f.writeJSON(w, r, http.StatusOK, map[string]interface{}{"token": fakeToken})
	}
}

func (f *fakeService) register(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	switch {
	case r.PostForm.Get("password") == "":
		f.writeJSON(w, r, http.StatusBadRequest, map[string]interface{}{"error": servicedef.MissingPasswordError})
	case r.PostForm.Get("email") != servicedef.RegisterCredentials.Email:
		f.writeJSON(w, r, http.StatusBadRequest,
			map[string]interface{}{"error": "Note: Only defined users succeed registration"})
	default:
		f.writeJSON(w, r, http.StatusOK,
			map[string]interface{}{"id": servicedef.RegisteredUserID, "token": fakeToken})
	}
}
