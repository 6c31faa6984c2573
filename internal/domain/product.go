package domain

import (
	"encoding/json"
	"time"
)

// Product is a catalog record. OurID is the externally visible sequential
// identifier assigned from the persisted counter. AnArray and AnObject carry
// untyped auxiliary JSON supplied by clients.
type Product struct {
	OurID     string          `json:"ourId"`
	Name      string          `json:"name"`
	Price     float64         `json:"price"`
	AnArray   json.RawMessage `json:"anArray,omitempty"`
	AnObject  json.RawMessage `json:"anObject,omitempty"`
	CreatedAt time.Time       `json:"-"`
}
