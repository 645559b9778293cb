package controllers

import (
	"net/http"

	"listkeeper/app/dto"
	"listkeeper/app/middleware"
	"listkeeper/app/services"
	"listkeeper/app/views"
	"listkeeper/global"
)

type ListController struct {
	Lists *services.ListService
	Views *views.Renderer
}

func NewListController(lists *services.ListService, v *views.Renderer) *ListController {
	return &ListController{Lists: lists, Views: v}
}

// Index renders the caller's list in the order picked by the sort query
// parameter.
func (c *ListController) Index(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	sort := services.ParseSort(r.URL.Query().Get("sort"))
	items, err := c.Lists.Items(r.Context(), userID, sort)
	if err != nil {
		c.internal(w, err, "load list")
		return
	}
	c.Views.Render(w, "index.html", map[string]any{"Items": items, "Sort": string(sort)})
}

func (c *ListController) Add(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	form, err := dto.ParseAddForm(r)
	if err != nil {
		c.Views.Error(w, err.Error())
		return
	}
	if err := c.Lists.Add(r.Context(), userID, form.Item, form.Quantity); err != nil {
		c.internal(w, err, "add item")
		return
	}
	redirectSorted(w, r, form.Sort)
}

func (c *ListController) Edit(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	form, err := dto.ParseEditForm(r)
	if err != nil {
		c.Views.Error(w, err.Error())
		return
	}
	if err := c.Lists.SetQuantity(r.Context(), userID, form.ItemID, form.Quantity); err != nil {
		c.internal(w, err, "edit item")
		return
	}
	redirectSorted(w, r, form.Sort)
}

func (c *ListController) Remove(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	form, err := dto.ParseRemoveForm(r)
	if err != nil {
		c.Views.Error(w, err.Error())
		return
	}
	if err := c.Lists.Remove(r.Context(), userID, form.ItemID); err != nil {
		c.internal(w, err, "remove item")
		return
	}
	redirectSorted(w, r, form.Sort)
}

func (c *ListController) Toggle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	form, err := dto.ParseToggleForm(r)
	if err != nil {
		c.Views.Error(w, err.Error())
		return
	}
	if err := c.Lists.Toggle(r.Context(), userID, form.ItemID); err != nil {
		c.internal(w, err, "toggle item")
		return
	}
	redirectSorted(w, r, form.Sort)
}

func (c *ListController) Clear(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	if err := c.Lists.Clear(r.Context(), userID); err != nil {
		c.internal(w, err, "clear list")
		return
	}
	redirectSorted(w, r, r.PostFormValue("sort"))
}

func (c *ListController) internal(w http.ResponseWriter, err error, msg string) {
	global.Logger.Error().Err(err).Msg(msg)
	c.Views.Error(w, "Something went wrong, please try again")
}

// redirectSorted sends the caller back to the list view with the sort
// selector it submitted, so the chosen order survives the mutation.
func redirectSorted(w http.ResponseWriter, r *http.Request, raw string) {
	sort := services.ParseSort(raw)
	http.Redirect(w, r, "/?sort="+string(sort), http.StatusSeeOther)
}
