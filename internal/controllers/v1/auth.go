package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/auth"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
)

// RegisterAuthRoutes registers the routes for authentication with
// the RouterGroup that is passed.
//
// Signup and login are public, all other routes use requireAuth.
func RegisterAuthRoutes(r *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	{
		r.OPTIONS("/signup", OptionsAuth)
		r.POST("/signup", Signup)
		r.OPTIONS("/login", OptionsAuth)
		r.POST("/login", Login)
	}

	{
		r.OPTIONS("/logout", OptionsAuth)
		r.POST("/logout", requireAuth, Logout)
		r.OPTIONS("/user", OptionsUser)
		r.GET("/user", requireAuth, GetUser)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Authentication
// @Success		204
// @Router			/v1/auth/signup [options]
// @Router			/v1/auth/login [options]
// @Router			/v1/auth/logout [options]
func OptionsAuth(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Authentication
// @Success		204
// @Router			/v1/auth/user [options]
func OptionsUser(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Sign up
// @Description	Creates a new user and returns a session for it
// @Tags			Authentication
// @Accept			json
// @Produce		json
// @Success		201		{object}	SessionResponse
// @Failure		400		{object}	SessionResponse
// @Failure		500		{object}	SessionResponse
// @Param			signup	body		SignupEditable	true	"Signup"
// @Router			/v1/auth/signup [post]
func Signup(c *gin.Context) {
	var signup SignupEditable
	err := httputil.BindData(c, &signup)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	result, err := auth.FromContext(c).Signup(models.DB, signup.Email, signup.Password, signup.Currency)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	data := newSession(result)
	c.JSON(http.StatusCreated, SessionResponse{Data: &data})
}

// @Summary		Log in
// @Description	Verifies the credentials and returns a new session
// @Tags			Authentication
// @Accept			json
// @Produce		json
// @Success		200			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		401			{object}	SessionResponse
// @Failure		500			{object}	SessionResponse
// @Param			credentials	body		Credentials	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var credentials Credentials
	err := httputil.BindData(c, &credentials)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	result, err := auth.FromContext(c).Login(models.DB, credentials.Email, credentials.Password)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	data := newSession(result)
	c.JSON(http.StatusOK, SessionResponse{Data: &data})
}

// @Summary		Log out
// @Description	Ends the session the request is authenticated with. The token can not be used afterwards.
// @Tags			Authentication
// @Security		BearerAuth
// @Success		204
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/auth/logout [post]
func Logout(c *gin.Context) {
	err := auth.FromContext(c).Logout(models.DB, auth.SessionID(c))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Get user
// @Description	Returns the authenticated user
// @Tags			Authentication
// @Security		BearerAuth
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	UserResponse
// @Failure		500	{object}	UserResponse
// @Router			/v1/auth/user [get]
func GetUser(c *gin.Context) {
	var user models.User
	err := models.DB.First(&user, "id = ?", auth.UserID(c)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	data := newUser(user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}
