package handlers

import (
	"errors"
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/mdd-dev/mdd/internal/apperr"
	"github.com/mdd-dev/mdd/internal/services"
	"github.com/mdd-dev/mdd/internal/types"
	"github.com/mdd-dev/mdd/internal/utils"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&r.Email, validation.Required, validation.Length(3, 255), is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 100), validation.By(passwordComplexity)),
	)
}

// passwordComplexity requires at least one upper case letter, one lower
// case letter, one digit and one symbol.
func passwordComplexity(value interface{}) error {
	password, _ := value.(string)

	var upper, lower, digit, symbol bool

	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}

	if !upper || !lower || !digit || !symbol {
		return errors.New("must contain an upper case letter, a lower case letter, a digit and a symbol")
	}

	return nil
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Identifier, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

func Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperr.Validation("Invalid request"))
		return
	}

	if err := req.Validate(); err != nil {
		respondError(ctx, apperr.Validation(err.Error()))
		return
	}

	token, err := services.Register(req.Name, req.Email, req.Password)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.AuthSuccess{Token: token})
}

func Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperr.Validation("Invalid request"))
		return
	}

	if err := req.Validate(); err != nil {
		respondError(ctx, apperr.Validation(err.Error()))
		return
	}

	token, err := services.Login(req.Identifier, req.Password)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.AuthSuccess{Token: token})
}

// Logout has no server-side effect: tokens are stateless and remain valid
// until expiry, the client simply drops its copy.
func Logout(ctx *gin.Context) {
	ctx.String(http.StatusOK, "disconnected !")
}

func Me(ctx *gin.Context) {
	email, err := utils.CurrentUserEmail(ctx)

	if err != nil {
		respondError(ctx, apperr.Unauthenticated(types.MsgAuthRequired))
		return
	}

	profile, err := services.Me(email)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

func UpdateAccount(ctx *gin.Context) {
	email, err := utils.CurrentUserEmail(ctx)

	if err != nil {
		respondError(ctx, apperr.Unauthenticated(types.MsgAuthRequired))
		return
	}

	var req RegisterRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperr.Validation("Invalid request"))
		return
	}

	if err := req.Validate(); err != nil {
		respondError(ctx, apperr.Validation(err.Error()))
		return
	}

	token, err := services.UpdateAccount(email, req.Name, req.Email, req.Password)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.AuthSuccess{Token: token})
}
