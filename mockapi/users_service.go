package mockapi

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dummyapi/user-api-contract-tests/apidef"
	"github.com/dummyapi/user-api-contract-tests/framework"
	"github.com/dummyapi/user-api-contract-tests/framework/helpers"

	"github.com/gorilla/mux"
	"golang.org/x/exp/slices"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const defaultPicture = "https://example.com/portraits/default.jpg"

// UsersService is an in-memory implementation of the user API contract, used
// by the harness's own tests so they do not depend on the real remote service.
//
// It reproduces the remote service's observed behavior as closely as possible,
// including its status-code quirks (400 for a GET of an unknown id, 404 for a
// DELETE of the same id) - see the comments in the apidef package.
type UsersService struct {
	appID       string
	handler     http.Handler
	debugLogger framework.Logger
	users       []storedUser
	nextID      int64
	lock        sync.RWMutex
}

type storedUser struct {
	id           string
	title        string
	firstName    string
	lastName     string
	email        string
	picture      string
	registerDate string
}

func NewUsersService(appID string, debugLogger framework.Logger) *UsersService {
	if debugLogger == nil {
		debugLogger = framework.NullLogger()
	}
	s := &UsersService{
		appID:       appID,
		debugLogger: debugLogger,
		nextID:      time.Now().Unix() << 16, // so ids from different service instances rarely collide
	}

	router := mux.NewRouter()
	// the create path must be registered before the {id} path or it would be
	// matched as a user id
	router.HandleFunc(apidef.PathCreateUser, s.createUser).Methods("POST")
	router.HandleFunc(apidef.PathUsers, s.listUsers).Methods("GET")
	router.HandleFunc(apidef.PathUsers+"/{id}", s.getUser).Methods("GET")
	router.HandleFunc(apidef.PathUsers+"/{id}", s.updateUser).Methods("PUT")
	router.HandleFunc(apidef.PathUsers+"/{id}", s.deleteUser).Methods("DELETE")
	s.handler = s.requireAppID(router)

	return s
}

func (s *UsersService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// SeedUsers adds n generated users directly to the store, for scenarios that
// need a collection of at least a certain size.
func (s *UsersService) SeedUsers(n int) {
	s.lock.Lock()
	defer s.lock.Unlock()
	for i := 0; i < n; i++ {
		u := storedUser{
			id:           s.makeID(),
			title:        "mr",
			firstName:    fmt.Sprintf("Seed%d", i),
			lastName:     "User",
			picture:      defaultPicture,
			registerDate: time.Now().UTC().Format(time.RFC3339),
		}
		u.email = strings.ToLower(fmt.Sprintf("seed%d.%s@example.com", i, u.id))
		s.users = append(s.users, u)
	}
}

// UserCount returns the current number of stored users.
func (s *UsersService) UserCount() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return len(s.users)
}

func (s *UsersService) requireAppID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := r.Header.Get(apidef.HeaderAppID)
		switch {
		case got == "":
			s.respondError(w, http.StatusForbidden, apidef.ErrorAppIDMissing, ldvalue.Null())
		case got != s.appID:
			s.respondError(w, http.StatusForbidden, apidef.ErrorAppIDNotExist, ldvalue.Null())
		default:
			next.ServeHTTP(w, r)
		}
	})
}

func (s *UsersService) listUsers(w http.ResponseWriter, r *http.Request) {
	page := queryIntParam(r, apidef.QueryParamPage, apidef.DefaultPage)
	limit := queryIntParam(r, apidef.QueryParamLimit, apidef.DefaultLimit)
	if page < 0 || limit <= 0 {
		s.respondError(w, http.StatusBadRequest, apidef.ErrorParamsNotValid, ldvalue.Null())
		return
	}

	s.lock.RLock()
	defer s.lock.RUnlock()

	// a page beyond the data still gets a normal response, with an empty data
	// list and the requested page and limit echoed back
	data := ldvalue.ArrayBuild()
	start := page * limit
	for i := start; i < start+limit && i < len(s.users); i++ {
		data.Add(s.users[i].summaryJSON())
	}
	body := ldvalue.ObjectBuild().
		Set("data", data.Build()).
		Set(apidef.FieldTotal, ldvalue.Int(len(s.users))).
		Set(apidef.QueryParamPage, ldvalue.Int(page)).
		Set(apidef.QueryParamLimit, ldvalue.Int(limit)).
		Build()
	s.respondJSON(w, http.StatusOK, body)
}

func (s *UsersService) getUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.lock.RLock()
	defer s.lock.RUnlock()

	i := slices.IndexFunc(s.users, func(u storedUser) bool { return u.id == id })
	if i < 0 {
		// the remote service rejects reads of unknown ids with a 400, not a
		// 404; keep the same behavior here
		s.respondError(w, http.StatusBadRequest, apidef.ErrorParamsNotValid, ldvalue.Null())
		return
	}
	s.respondJSON(w, http.StatusOK, s.users[i].fullJSON())
}

func (s *UsersService) createUser(w http.ResponseWriter, r *http.Request) {
	body := readBodyJSON(r)

	detail := ldvalue.ObjectBuild()
	valid := true
	for _, f := range []string{apidef.FieldFirstName, apidef.FieldLastName, apidef.FieldEmail} {
		if body.GetByKey(f).StringValue() == "" {
			detail.Set(f, ldvalue.String(fmt.Sprintf("Path `%s` is required.", f)))
			valid = false
		}
	}
	if !valid {
		s.respondError(w, http.StatusBadRequest, apidef.ErrorBodyNotValid, detail.Build())
		return
	}
	email := strings.ToLower(body.GetByKey(apidef.FieldEmail).StringValue())

	s.lock.Lock()
	defer s.lock.Unlock()

	if slices.IndexFunc(s.users, func(u storedUser) bool { return u.email == email }) >= 0 {
		detail := ldvalue.ObjectBuild().Set(apidef.FieldEmail, ldvalue.String(apidef.MessageEmailAlreadyUsed)).Build()
		s.respondError(w, http.StatusBadRequest, apidef.ErrorBodyNotValid, detail)
		return
	}

	u := storedUser{
		id:           s.makeID(),
		title:        body.GetByKey(apidef.FieldTitle).StringValue(),
		firstName:    body.GetByKey(apidef.FieldFirstName).StringValue(),
		lastName:     body.GetByKey(apidef.FieldLastName).StringValue(),
		email:        email,
		picture:      defaultPicture,
		registerDate: time.Now().UTC().Format(time.RFC3339),
	}
	s.users = append(s.users, u)
	s.debugLogger.Printf("created user %s (%s)", u.id, u.email)
	s.respondJSON(w, http.StatusOK, u.fullJSON())
}

func (s *UsersService) updateUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	body := readBodyJSON(r)

	s.lock.Lock()
	defer s.lock.Unlock()

	i := slices.IndexFunc(s.users, func(u storedUser) bool { return u.id == id })
	if i < 0 {
		s.respondError(w, http.StatusNotFound, apidef.ErrorResourceNotFound, ldvalue.Null())
		return
	}
	// id and email are immutable; the remote service silently ignores them in
	// update bodies, as it does any unknown keys
	for _, f := range body.Keys() {
		value := body.GetByKey(f).StringValue()
		switch f {
		case apidef.FieldTitle:
			s.users[i].title = value
		case apidef.FieldFirstName:
			s.users[i].firstName = value
		case apidef.FieldLastName:
			s.users[i].lastName = value
		}
	}
	s.debugLogger.Printf("updated user %s", id)
	s.respondJSON(w, http.StatusOK, s.users[i].fullJSON())
}

func (s *UsersService) deleteUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.lock.Lock()
	defer s.lock.Unlock()

	i := slices.IndexFunc(s.users, func(u storedUser) bool { return u.id == id })
	if i < 0 {
		s.respondError(w, http.StatusNotFound, apidef.ErrorResourceNotFound, ldvalue.Null())
		return
	}
	s.users = append(s.users[:i], s.users[i+1:]...)
	s.debugLogger.Printf("deleted user %s", id)
	s.respondJSON(w, http.StatusOK, ldvalue.ObjectBuild().Set(apidef.FieldID, ldvalue.String(id)).Build())
}

func (s *UsersService) makeID() string {
	s.nextID++
	return fmt.Sprintf("%024x", s.nextID)
}

func (s *UsersService) respondJSON(w http.ResponseWriter, status int, body ldvalue.Value) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body.JSONString()))
}

func (s *UsersService) respondError(w http.ResponseWriter, status int, code string, detail ldvalue.Value) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(helpers.AsJSON(apidef.ErrorResponse{Error: code, Data: detail}))
}

func (u storedUser) summaryJSON() ldvalue.Value {
	return ldvalue.ObjectBuild().
		Set(apidef.FieldID, ldvalue.String(u.id)).
		Set(apidef.FieldTitle, ldvalue.String(u.title)).
		Set(apidef.FieldFirstName, ldvalue.String(u.firstName)).
		Set(apidef.FieldLastName, ldvalue.String(u.lastName)).
		Set(apidef.FieldPicture, ldvalue.String(u.picture)).
		Build()
}

func (u storedUser) fullJSON() ldvalue.Value {
	return ldvalue.ObjectBuild().
		Set(apidef.FieldID, ldvalue.String(u.id)).
		Set(apidef.FieldTitle, ldvalue.String(u.title)).
		Set(apidef.FieldFirstName, ldvalue.String(u.firstName)).
		Set(apidef.FieldLastName, ldvalue.String(u.lastName)).
		Set(apidef.FieldEmail, ldvalue.String(u.email)).
		Set(apidef.FieldPicture, ldvalue.String(u.picture)).
		Set("registerDate", ldvalue.String(u.registerDate)).
		Build()
}

func queryIntParam(r *http.Request, name string, defaultValue int) int {
	if s := r.URL.Query().Get(name); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		return -1
	}
	return defaultValue
}

func readBodyJSON(r *http.Request) ldvalue.Value {
	data, _ := io.ReadAll(r.Body)
	return ldvalue.Parse(data)
}
