package models

import "time"

// SaleLine is one item on a POS ticket: a catalogue service or a retail
// product sold over the counter.
type SaleLine struct {
	Kind      string  `bson:"kind" json:"kind"` // "service" or "product"
	RefID     string  `bson:"refId,omitempty" json:"refId,omitempty"`
	Label     string  `bson:"label" json:"label"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	UnitPrice float64 `bson:"unitPrice" json:"unitPrice"`
}

// Cart is an open POS ticket, held in Redis until checkout.
type Cart struct {
	StaffID       string     `json:"staffId"`
	ClientID      string     `json:"clientId,omitempty"`
	AppointmentID string     `json:"appointmentId,omitempty"`
	Lines         []SaleLine `json:"lines"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Total sums the cart lines.
func (c Cart) Total() float64 {
	var total float64
	for _, l := range c.Lines {
		total += float64(l.Quantity) * l.UnitPrice
	}
	return total
}

// Sale is a completed checkout.
type Sale struct {
	ID            string     `bson:"id" json:"id"`
	StaffID       string     `bson:"staffId" json:"staffId"`
	ClientID      string     `bson:"clientId,omitempty" json:"clientId,omitempty"`
	AppointmentID string     `bson:"appointmentId,omitempty" json:"appointmentId,omitempty"`
	Lines         []SaleLine `bson:"lines" json:"lines"`
	Total         float64    `bson:"total" json:"total"`
	Currency      string     `bson:"currency" json:"currency"`
	Method        string     `bson:"method" json:"method"` // "card" or "cash"
	PaymentID     string     `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
}
