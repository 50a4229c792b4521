package http

import (
	"admin-srv/internal/auth"
	"admin-srv/internal/model"
)

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Remember bool   `json:"remember"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Email:    r.Email,
		Password: r.Password,
		Remember: r.Remember,
	}
}

type signupReq struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

func (r signupReq) toInput() auth.SignupInput {
	return auth.SignupInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
	}
}

type sessionResp struct {
	User model.User `json:"user"`
}

func (h *handler) newSessionResp(o auth.SessionOutput) sessionResp {
	return sessionResp{User: o.User}
}
