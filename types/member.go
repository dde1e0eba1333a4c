// Package types
package types

type Member struct {
	ID           int64  `json:"id"`
	Name         string `json:"name" validate:"required,max=200"`
	Party        string `json:"party" validate:"max=200"`
	Constituency string `json:"constituency" validate:"max=200"`
	Email        string `json:"email" validate:"required,email"`
}
