package controllers

import (
	"context"
	"net/http"
	"time"

	"hotel-management/constants"
	"hotel-management/dto"
	"hotel-management/middleware"
	"hotel-management/response"
	"hotel-management/services"
	"hotel-management/validator"

	"github.com/gin-gonic/gin"
)

// AuthAPI là các thao tác tài khoản mà controller cần
type AuthAPI interface {
	Register(ctx context.Context, input dto.RegisterInput) error
	Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResponse, error)
	Logout(ctx context.Context, identity services.Identity) error
}

type AuthController struct {
	Auth         AuthAPI
	CookieSecure bool
}

func NewAuthController(auth AuthAPI, cookieSecure bool) AuthController {
	return AuthController{Auth: auth, CookieSecure: cookieSecure}
}

// Register godoc
// @Summary  Create an operator account
// @Tags     auth
// @Accept   json
// @Produce  plain
// @Param    user body dto.RegisterInput true "account"
// @Success  200 {string} string
// @Failure  409 {object} response.ErrorBody
// @Failure  422 {object} response.ErrorBody
// @Router   /user/register [put]
func (a AuthController) Register(c *gin.Context) {
	var input dto.RegisterInput
	if !bind(c, &input) {
		return
	}
	if err := a.Auth.Register(c.Request.Context(), input); err != nil {
		response.Error(c, err)
		return
	}
	response.Text(c, "User registration completed.")
}

// Login godoc
// @Summary  Log in with id and password (form fields)
// @Tags     auth
// @Accept   x-www-form-urlencoded
// @Produce  json
// @Param    id       formData string true "operator id"
// @Param    password formData string true "password"
// @Success  200 {object} dto.LoginResponse
// @Failure  401 {object} response.ErrorBody
// @Router   /login [post]
func (a AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, validator.BindError(err))
		return
	}

	resp, err := a.Auth.Login(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	maxAge := int(time.Until(resp.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.AccessTokenCookie, resp.AccessToken, maxAge, "/", "", a.CookieSecure, true)
	response.Success(c, resp)
}

// Logout godoc
// @Summary  Revoke the current session
// @Tags     auth
// @Produce  plain
// @Security BearerAuth
// @Success  200 {string} string
// @Failure  401 {object} response.ErrorBody
// @Router   /logout [post]
func (a AuthController) Logout(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	if err := a.Auth.Logout(c.Request.Context(), identity); err != nil {
		response.Error(c, err)
		return
	}
	c.SetCookie(constants.AccessTokenCookie, "", -1, "/", "", a.CookieSecure, true)
	response.Text(c, "Logout completed.")
}
