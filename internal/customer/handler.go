package customer

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/finmock/finmock/internal/transaction"
	"github.com/finmock/finmock/internal/wallet"
	"github.com/finmock/finmock/pkg/id"
	"github.com/finmock/finmock/pkg/utils"
	"github.com/finmock/finmock/pkg/validator"
)

// Generator produces the companion records that accompany a freshly created
// customer. The production implementation is randomized; tests substitute a
// deterministic fake.
type Generator interface {
	WalletFor(customerID string) wallet.Wallet
	TransactionsFor(customerID string) []transaction.Transaction
}

type Handler struct {
	Repo Repository
	Gen  Generator
}

func NewHandler(repo Repository, gen Generator) *Handler {
	return &Handler{Repo: repo, Gen: gen}
}

func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	page, pageSize := utils.GetPageParams(r)
	q := r.URL.Query()

	filter := ListFilter{
		Search:    q.Get("search"),
		KYCStatus: KYCStatus(q.Get("kycStatus")),
	}
	// only the exact literal "true" enables the filter's true branch; an
	// absent parameter applies no filter at all
	if _, present := q["isActive"]; present {
		isActive := q.Get("isActive") == "true"
		filter.IsActive = &isActive
	}

	list, total := h.Repo.List(filter)
	data := utils.PageSlice(list, page, pageSize)

	utils.WriteJSON(w, http.StatusOK, utils.NewPagedResponse(page, pageSize, total, data))
}

func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	c, err := h.Repo.Get(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteMessage(w, http.StatusNotFound, "Customer not found")
		return
	}
	utils.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var payload Payload
	if status, err := utils.DecodeJSONBody(w, r, &payload); err != nil {
		utils.WriteMessage(w, status, "Invalid request")
		return
	}

	if errs := validatePayload(payload); len(errs) > 0 {
		utils.WriteValidationError(w, errs)
		return
	}

	now := time.Now().UTC()
	c := Customer{
		ID:          id.New(),
		Name:        payload.Name,
		Email:       payload.Email,
		Phone:       payload.Phone,
		NationalID:  payload.NationalID,
		Address:     *payload.Address,
		DateOfBirth: payload.DateOfBirth,
		KYCStatus:   KYCUnknown,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// every customer comes with one wallet and a synthetic history
	h.Repo.Create(c, h.Gen.WalletFor(c.ID), h.Gen.TransactionsFor(c.ID))

	utils.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	existing, err := h.Repo.Get(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteMessage(w, http.StatusNotFound, "Customer not found")
		return
	}

	var payload Payload
	if status, err := utils.DecodeJSONBody(w, r, &payload); err != nil {
		utils.WriteMessage(w, status, "Invalid request")
		return
	}

	// partial updates are not supported: the full payload is re-validated
	if errs := validatePayload(payload); len(errs) > 0 {
		utils.WriteValidationError(w, errs)
		return
	}

	updated := *existing
	updated.Name = payload.Name
	updated.Email = payload.Email
	updated.Phone = payload.Phone
	updated.NationalID = payload.NationalID
	updated.Address = *payload.Address
	updated.DateOfBirth = payload.DateOfBirth
	if payload.KYCStatus != nil {
		updated.KYCStatus = *payload.KYCStatus
	}
	if payload.IsActive != nil {
		updated.IsActive = *payload.IsActive
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := h.Repo.Replace(updated); err != nil {
		utils.WriteMessage(w, http.StatusNotFound, "Customer not found")
		return
	}

	utils.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Delete(mux.Vars(r)["id"]); err != nil {
		utils.WriteMessage(w, http.StatusNotFound, "Customer not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// validatePayload collects every missing required field in one pass.
func validatePayload(p Payload) []validator.FieldError {
	var v validator.Validator

	v.Check(p.Name != "", "name", "Name is required")
	v.Check(p.Email != "", "email", "Email is required")
	v.Check(p.Phone != "", "phone", "Phone is required")
	v.Check(p.DateOfBirth != "", "dateOfBirth", "Date of birth is required")
	v.Check(p.NationalID != 0, "nationalId", "National ID is required")

	if p.Address == nil {
		v.AddError("address", "Address is required")
	} else {
		v.Check(p.Address.Country != "", "address.country", "Country is required")
		v.Check(p.Address.City != "", "address.city", "City is required")
		v.Check(p.Address.PostalCode != "", "address.postalCode", "Postal code is required")
		v.Check(p.Address.Line1 != "", "address.line1", "Address line1 is required")
	}

	return v.Errors
}
