package transaction

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/finmock/finmock/pkg/utils"
)

type Handler struct {
	Repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{Repo: repo}
}

// ListTransactions serves the customer-scoped transaction listing. An unknown
// customer id yields an empty page, not a 404: scoping is just another filter.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]
	page, pageSize := utils.GetPageParams(r)
	q := r.URL.Query()

	filter := ListFilter{
		CustomerID:        customerID,
		Type:              Type(q.Get("type")),
		TransferDirection: Direction(q.Get("transferDirection")),
		Currency:          q.Get("currency"),
		From:              parseTimeParam(q.Get("from")),
		To:                parseTimeParam(q.Get("to")),
	}

	list, total := h.Repo.List(filter)
	data := utils.PageSlice(list, page, pageSize)

	utils.WriteJSON(w, http.StatusOK, utils.NewPagedResponse(page, pageSize, total, data))
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseTimeParam returns nil for an absent or unparsable value; a date
// filter that cannot be read is skipped rather than rejected.
func parseTimeParam(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}
