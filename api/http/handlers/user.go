package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/usermanagement/api/http/presenter"
	"github.com/artem13815/usermanagement/pkg/user"
)

type UserHandler struct {
	uc user.UseCase
}

func NewUserHandler(uc user.UseCase) *UserHandler { return &UserHandler{uc: uc} }

type createUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       int    `json:"age"`
	Country   string `json:"country"`
	Province  string `json:"province"`
	City      string `json:"city"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (r createUserRequest) toInput() user.CreateUser {
	return user.CreateUser{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Age:       r.Age,
		Country:   r.Country,
		Province:  r.Province,
		City:      r.City,
		Email:     r.Email,
		Password:  r.Password,
	}
}

// Create handles single user creation.
// @Summary Create user
// @Tags    users
// @Accept  json
// @Produce json
// @Param   input body createUserRequest true "user payload"
// @Success 201 {object} user.User
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /user [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	created, err := h.uc.Create(c.Context(), req.toInput())
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderLocation, fmt.Sprintf("/api/user/%d", created.ID))
	return presenter.JSON(c, http.StatusCreated, created)
}

type bulkCreateRequest struct {
	Users []createUserRequest `json:"users"`
}

// BulkCreate handles batched user creation, 1 to 1000 records at a time.
// @Summary Bulk create users
// @Tags    users
// @Accept  json
// @Produce json
// @Param   input body bulkCreateRequest true "batch payload"
// @Success 200 {array} user.User
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /user/bulk-create [post]
func (h *UserHandler) BulkCreate(c *fiber.Ctx) error {
	var req bulkCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if len(req.Users) == 0 || len(req.Users) > user.MaxBatchSize {
		return presenter.Error(c, http.StatusBadRequest, user.ErrBatchSize.Error())
	}

	in := make([]user.CreateUser, len(req.Users))
	for i, r := range req.Users {
		in[i] = r.toInput()
	}
	created, err := h.uc.CreateBatch(c.Context(), in)
	if err != nil {
		var verr user.ErrValidation
		if errors.As(err, &verr) {
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		}
		return err
	}
	return presenter.JSON(c, http.StatusOK, created)
}

// List handles paginated listing with optional filters.
// @Summary List users
// @Tags    users
// @Produce json
// @Param   page     query int    false "page number (1-based)"
// @Param   pageSize query int    false "page size"
// @Param   age      query int    false "filter by age"
// @Param   country  query string false "filter by country"
// @Security BearerAuth
// @Success 200 {object} user.PaginatedResult
// @Router  /user [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	q := parseListQuery(c)
	result, err := h.uc.List(c.Context(), q)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, result)
}

// GetByID returns one user; soft-deleted users read as absent.
// @Summary Get user by id
// @Tags    users
// @Produce json
// @Param   id path int true "user id"
// @Security BearerAuth
// @Success 200 {object} user.User
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /user/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid user id")
	}
	u, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, err.Error())
		}
		return err
	}
	return presenter.JSON(c, http.StatusOK, u)
}

type updateUserRequest struct {
	ID        int64   `json:"id"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Age       *int    `json:"age"`
	Country   *string `json:"country"`
	Province  *string `json:"province"`
	City      *string `json:"city"`
	Email     *string `json:"email"`
}

// Update merges the supplied fields over the stored record. Omitted
// fields keep their previous values.
// @Summary Update user
// @Tags    users
// @Accept  json
// @Produce json
// @Param   id    path int               true "user id"
// @Param   input body updateUserRequest true "fields to update"
// @Security BearerAuth
// @Success 200 {object} user.User
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /user/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid user id")
	}
	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.ID != id {
		return presenter.Error(c, http.StatusBadRequest, "path id does not match body id")
	}

	patch := user.Patch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
		Country:   req.Country,
		Province:  req.Province,
		City:      req.City,
		Email:     req.Email,
	}
	updated, err := h.uc.Update(c.Context(), id, patch)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, err.Error())
		}
		return err
	}
	return presenter.JSON(c, http.StatusOK, updated)
}

// Delete removes a user. No existence check; the response is 204
// whether or not the id was present.
// @Summary Delete user
// @Tags    users
// @Param   id path int true "user id"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /user/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid user id")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
