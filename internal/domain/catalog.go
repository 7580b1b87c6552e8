package domain

import "context"

// PriceBreak is one (minimum order quantity, unit price) pair. Mouser quotes
// prices as localized currency strings, e.g. "$0.15" or "0,12 €".
type PriceBreak struct {
	Quantity int    `json:"Quantity"`
	Price    string `json:"Price"`
	Currency string `json:"Currency,omitempty"`
}

// CatalogPart is one hit returned by the Mouser search API.
type CatalogPart struct {
	MouserPartNumber       string       `json:"MouserPartNumber"`
	ManufacturerPartNumber string       `json:"ManufacturerPartNumber,omitempty"`
	Manufacturer           string       `json:"Manufacturer,omitempty"`
	Description            string       `json:"Description,omitempty"`
	Packaging              string       `json:"Packaging"`
	Availability           string       `json:"Availability,omitempty"`
	PriceBreaks            []PriceBreak `json:"PriceBreaks"`
}

// SearchResults carries the parts list of a catalog response.
type SearchResults struct {
	NumberOfResult int           `json:"NumberOfResult"`
	Parts          []CatalogPart `json:"Parts"`
}

// APIError is an application-level error entry in a catalog response.
type APIError struct {
	ID           int    `json:"Id,omitempty"`
	Code         string `json:"Code,omitempty"`
	Message      string `json:"Message,omitempty"`
	PropertyName string `json:"PropertyName,omitempty"`
}

// CatalogResponse is the envelope returned by both Mouser search endpoints.
type CatalogResponse struct {
	Errors        []APIError     `json:"Errors,omitempty"`
	SearchResults *SearchResults `json:"SearchResults"`
}

// Parts returns the flattened parts list, nil-safe.
func (r *CatalogResponse) Parts() []CatalogPart {
	if r == nil || r.SearchResults == nil {
		return nil
	}
	return r.SearchResults.Parts
}

// CatalogClient defines the interface to the external component catalog.
// Both operations collapse every service failure (transport error, non-2xx,
// malformed payload, application error list) to a nil response so callers
// never have to distinguish "service down" from "no match". The returned
// error is non-nil only when the context is cancelled.
type CatalogClient interface {
	SearchByPartNumber(ctx context.Context, partNumber string) (*CatalogResponse, error)
	SearchByKeyword(ctx context.Context, keyword string) (*CatalogResponse, error)
}
