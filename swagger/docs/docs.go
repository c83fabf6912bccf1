// Package docs holds go-swagger definitions shared by several routes.
package docs

import "github.com/xfwduke/blueking-dbm/pkg/model"

// swagger:response
type Error struct {
	// The error message
	// in: body
	Message string
}

// swagger:response Health
type _ struct {
	// in: body
	Body struct {
		// required: true
		Status string `json:"status"`
	}
}

// swagger:response CloneRecords
type _ struct {
	// in: body
	_ []model.CloneRecord
}

// swagger:response Menus
type _ struct {
	// in: body
	_ []model.Menu
}
