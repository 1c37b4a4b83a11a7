package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"todoapp/internal/adapter/http/dto"
	"todoapp/internal/adapter/http/middleware"
	"todoapp/internal/auth"
	"todoapp/internal/core/domain"
	"todoapp/internal/core/ports"
	"todoapp/pkg/apierrors"
)

type AuthHandler struct {
	authService ports.AuthService
	sessions    ports.SessionManager
}

func NewAuthHandler(authService ports.AuthService, sessions ports.SessionManager) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login handles the HTML login form: on success it sets the session cookie
// and redirects to the todo list, on failure it re-renders the form with a
// generic message.
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{"msg": "Incorrect Username or Password"})
		return
	}

	user, err := h.authService.Authenticate(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.HTML(http.StatusOK, "login.html", gin.H{"msg": "Incorrect Username or Password"})
			return
		}

		zap.L().Error("failed to authenticate user", zap.Error(err))
		c.HTML(http.StatusOK, "login.html", gin.H{"msg": "Something went wrong"})
		return
	}

	if err := h.setSessionCookie(c, user); err != nil {
		zap.L().Error("failed to issue session token", zap.Error(err))
		c.HTML(http.StatusOK, "login.html", gin.H{"msg": "Something went wrong"})
		return
	}

	c.Redirect(http.StatusFound, "/todos")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
	c.HTML(http.StatusOK, "login.html", gin.H{"msg": "Logout Successful"})
}

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

// Register handles the HTML registration form. A password mismatch, a taken
// username, and a taken email all produce the same generic message so the
// response does not leak which accounts exist.
func (h *AuthHandler) Register(c *gin.Context) {
	var form dto.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "register.html", gin.H{"msg": "Invalid Registration Request"})
		return
	}

	if form.Password != form.Password2 {
		c.HTML(http.StatusOK, "register.html", gin.H{"msg": "Invalid Registration Request"})
		return
	}

	_, err := h.authService.Register(c.Request.Context(), ports.RegisterInput{
		Email:     form.Email,
		Username:  form.Username,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Password:  form.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRegistration) {
			c.HTML(http.StatusOK, "register.html", gin.H{"msg": "Invalid Registration Request"})
			return
		}

		zap.L().Error("failed to register user", zap.Error(err))
		c.HTML(http.StatusOK, "register.html", gin.H{"msg": "Something went wrong"})
		return
	}

	c.HTML(http.StatusOK, "login.html", gin.H{"msg": "User successfully created"})
}

// CreateUser is the JSON registration endpoint.
func (h *AuthHandler) CreateUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRegistration, lang),
		)
		return
	}

	_, err := h.authService.Register(c.Request.Context(), ports.RegisterInput{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRegistration) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRegistration, lang),
			)
			return
		}

		zap.L().Error("failed to create user", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateUser, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": http.StatusCreated, "message": "User has been created successfully"})
}

// Token is the OAuth2-style issuance endpoint: form credentials in, bearer
// token out. The cookie is set as well so browser clients end up logged in.
func (h *AuthHandler) Token(c *gin.Context) {
	lang := middleware.GetLang(c)

	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang),
		)
		return
	}

	user, err := h.authService.Authenticate(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang),
			)
			return
		}

		zap.L().Error("failed to authenticate user", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailIssueToken, lang),
		)
		return
	}

	token, err := h.sessions.Issue(domain.Identity{Username: user.Username, UserID: user.ID})
	if err != nil {
		zap.L().Error("failed to issue session token", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailIssueToken, lang),
		)
		return
	}

	h.writeSessionCookie(c, token)
	c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, user domain.User) error {
	token, err := h.sessions.Issue(domain.Identity{Username: user.Username, UserID: user.ID})
	if err != nil {
		return err
	}
	h.writeSessionCookie(c, token)
	return nil
}

// The cookie is HttpOnly with no max-age: it lives for the browser session,
// while the token inside carries its own expiry.
func (h *AuthHandler) writeSessionCookie(c *gin.Context, token string) {
	c.SetCookie(auth.CookieName, token, 0, "/", "", false, true)
}
