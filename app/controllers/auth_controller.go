package controllers

import (
	"errors"
	"net/http"

	"listkeeper/app/dto"
	"listkeeper/app/services"
	"listkeeper/app/session"
	"listkeeper/app/views"
	"listkeeper/global"
)

type AuthController struct {
	Users    *services.UserService
	Sessions *session.Manager
	Views    *views.Renderer
}

func NewAuthController(users *services.UserService, sessions *session.Manager, v *views.Renderer) *AuthController {
	return &AuthController{Users: users, Sessions: sessions, Views: v}
}

// Register shows the form on GET and creates the account on POST. All
// validation failures render their specific message and write nothing.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		c.Views.Render(w, "register.html", nil)
		return
	}
	form, err := dto.ParseRegisterForm(r)
	if err != nil {
		c.Views.Error(w, err.Error())
		return
	}
	if err := c.Users.Register(r.Context(), form.Username, form.Password); err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			c.Views.Error(w, "Username already exists")
			return
		}
		global.Logger.Error().Err(err).Msg("register user")
		c.Views.Error(w, "Something went wrong, please try again")
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Login clears any existing session up front, for GET and POST alike, so no
// stale identity survives a failed attempt.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	c.Sessions.Clear(w, r)

	if r.Method == http.MethodGet {
		c.Views.Render(w, "login.html", nil)
		return
	}
	form, err := dto.ParseLoginForm(r)
	if err != nil {
		c.Views.Error(w, err.Error())
		return
	}
	u, err := c.Users.Authenticate(r.Context(), form.Username, form.Password)
	if err != nil {
		// One message for unknown username and wrong password both.
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.Views.Error(w, "Invalid username and/or password")
			return
		}
		global.Logger.Error().Err(err).Msg("authenticate user")
		c.Views.Error(w, "Something went wrong, please try again")
		return
	}
	if err := c.Sessions.SetUserID(w, r, u.ID); err != nil {
		global.Logger.Error().Err(err).Msg("store session")
		c.Views.Error(w, "Something went wrong, please try again")
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	c.Sessions.Clear(w, r)
	http.Redirect(w, r, "/login", http.StatusFound)
}
