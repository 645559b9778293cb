package router

import (
	"net/http"

	"listkeeper/app/controllers"
	"listkeeper/app/middleware"

	"github.com/gorilla/mux"
)

// New builds the route table. Every list operation sits behind the login
// guard; the auth endpoints stay public.
func New(auth *controllers.AuthController, lists *controllers.ListController, guard *middleware.Guard) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/login", auth.Login).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/logout", auth.Logout).Methods(http.MethodGet)
	r.HandleFunc("/register", auth.Register).Methods(http.MethodGet, http.MethodPost)

	r.Handle("/", guard.RequireLogin(http.HandlerFunc(lists.Index))).Methods(http.MethodGet)
	r.Handle("/add", guard.RequireLogin(http.HandlerFunc(lists.Add))).Methods(http.MethodPost)
	r.Handle("/edit", guard.RequireLogin(http.HandlerFunc(lists.Edit))).Methods(http.MethodPost)
	r.Handle("/remove", guard.RequireLogin(http.HandlerFunc(lists.Remove))).Methods(http.MethodPost)
	r.Handle("/toggle", guard.RequireLogin(http.HandlerFunc(lists.Toggle))).Methods(http.MethodPost)
	r.Handle("/clear", guard.RequireLogin(http.HandlerFunc(lists.Clear))).Methods(http.MethodPost)

	return r
}
