package models

import "time"

// Product is a catalog listing owned by a seller. SellerID is a back-reference
// to User.ID with no enforced foreign key; deleting a user does not cascade.
//
// ImageURI follows the image-asset contract: a value prefixed "local:<name>"
// resolves to a bundled asset, any other non-empty value is treated as a
// direct fetchable URI. The services store it verbatim.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Quantity    string    `json:"quantity"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	FishingDate string    `json:"fishingDate"`
	ImageURI    string    `json:"imageUri,omitempty"`
	SellerID    string    `json:"sellerId"`
	SellerName  string    `json:"sellerName"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LocalImagePrefix marks an ImageURI that resolves to a bundled asset
// instead of a remote URL.
const LocalImagePrefix = "local:"
