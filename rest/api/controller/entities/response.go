// Package entities holds the response envelopes shared by the
// dashboard controllers.
package entities

// ListResponse wraps a collection payload. Count always equals
// len(Data) as delivered, after every filter and limit was applied.
type ListResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Count   int         `json:"count"`
}

// ItemResponse wraps a single resource payload.
type ItemResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

func List(data interface{}, count int) *ListResponse {
	return &ListResponse{
		Success: true,
		Data:    data,
		Count:   count,
	}
}

func Item(data interface{}) *ItemResponse {
	return &ItemResponse{
		Success: true,
		Data:    data,
	}
}
