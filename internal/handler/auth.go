package handler

import (
	"net/http"

	"github.com/agora-dev/agora/internal/domain"
	"github.com/agora-dev/agora/internal/service"
	"github.com/agora-dev/agora/internal/utils"
)

type credentials struct {
	Username string `validate:"required" json:"username"`
	Password string `validate:"required" json:"password"`
}

type authResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := utils.DecodeValidate(r.Body, &creds); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	token, err := h.auth.Register(domain.Credentials{Username: creds.Username, Password: creds.Password})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, authResponse{
		Message:     "User created successfully",
		AccessToken: token,
		Username:    creds.Username,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := utils.DecodeValidate(r.Body, &creds); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	token, err := h.auth.Login(domain.Credentials{Username: creds.Username, Password: creds.Password})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, authResponse{
		Message:     "Logged in successfully",
		AccessToken: token,
		Username:    creds.Username,
	})
}

// Me is the one endpoint where a missing or invalid token is an error
// instead of a downgrade to anonymous.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	username, err := service.RequireIdentity(identityFromRequest(r))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, map[string]string{"username": username})
}
