package transaction

import "time"

type Type string

const (
	TypeDebit  Type = "DEBIT"
	TypeCredit Type = "CREDIT"
)

type Direction string

const (
	DirectionIncoming Direction = "INCOMING"
	DirectionOutgoing Direction = "OUTGOING"
)

// Transaction is a synthetic ledger entry. Direction follows type by
// construction: CREDIT entries are INCOMING, DEBIT entries OUTGOING.
// MerchantName marks merchant/POS payments; ReceiverName and
// ReceiverWalletNumber appear together on outgoing peer-to-peer transfers.
type Transaction struct {
	ID                   string    `json:"id"`
	CustomerID           string    `json:"customerId"`
	Type                 Type      `json:"type"`
	Amount               float64   `json:"amount"`
	Currency             string    `json:"currency"`
	CreatedAt            time.Time `json:"createdAt"`
	Description          string    `json:"description"`
	TransferDirection    Direction `json:"transferDirection"`
	MerchantName         string    `json:"merchantName,omitempty"`
	ReceiverName         string    `json:"receiverName,omitempty"`
	ReceiverWalletNumber string    `json:"receiverWalletNumber,omitempty"`
}
