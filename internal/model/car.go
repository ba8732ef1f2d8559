package model

import "strings"

// Car is a vehicle that mods can be assigned to.
type Car struct {
	ID       int64  `json:"id"`
	Make     string `json:"make"`
	Model    string `json:"model"`
	Nickname string `json:"nickname,omitempty"`
	Year     string `json:"year,omitempty"`
}

// DisplayName returns the car's nickname, falling back to make and model.
func (c Car) DisplayName() string {
	if c.Nickname != "" {
		return c.Nickname
	}
	return strings.TrimSpace(c.Make + " " + c.Model)
}
