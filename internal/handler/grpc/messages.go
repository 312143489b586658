package grpc

import "github.com/MKhiriev/food-catalog/models"

type ListItemsRequest struct {
	// Category is a selector token; unknown tokens list everything.
	Category string `json:"category"`
}

type GetItemRequest struct {
	ID string `json:"id"`
}

type CountsRequest struct{}

type SubmitItemRequest struct {
	Item models.ItemCandidate `json:"item"`
}

type DeleteItemRequest struct {
	ID string `json:"id"`
}

type DeleteItemResponse struct {
	Deleted bool `json:"deleted"`
}

type AuthorizeRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
