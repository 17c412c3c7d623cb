package wallet

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/finmock/finmock/pkg/utils"
	"github.com/finmock/finmock/pkg/validator"
)

type Handler struct {
	Repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) GetWallet(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]

	wallet, err := h.Repo.GetByCustomerID(customerID)
	if err != nil {
		utils.WriteMessage(w, http.StatusNotFound, "Wallet not found")
		return
	}

	utils.WriteJSON(w, http.StatusOK, wallet)
}

func (h *Handler) UpdateLimits(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]

	if _, err := h.Repo.GetByCustomerID(customerID); err != nil {
		utils.WriteMessage(w, http.StatusNotFound, "Wallet not found")
		return
	}

	var payload LimitsPayload
	if status, err := utils.DecodeJSONBody(w, r, &payload); err != nil {
		utils.WriteMessage(w, status, "Invalid request")
		return
	}

	var v validator.Validator
	if payload.DailyLimit != nil {
		v.Check(*payload.DailyLimit >= 0, "dailyLimit", "Must be >= 0")
	}
	if payload.MonthlyLimit != nil {
		v.Check(*payload.MonthlyLimit >= 0, "monthlyLimit", "Must be >= 0")
	}
	if v.HasErrors() {
		utils.WriteValidationError(w, v.Errors)
		return
	}

	updated, err := h.Repo.UpdateLimits(customerID, payload.DailyLimit, payload.MonthlyLimit)
	if err != nil {
		utils.WriteMessage(w, http.StatusNotFound, "Wallet not found")
		return
	}

	utils.WriteJSON(w, http.StatusOK, updated)
}
