package domain

// Page is the canonical shape every backend list response is normalised into.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}
