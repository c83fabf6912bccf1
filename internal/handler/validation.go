package handler

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/xfwduke/blueking-dbm/pkg/model"
)

func ticketType(fl validator.FieldLevel) bool {
	return model.TicketType(fl.Field().String()).Valid()
}

// RegisterValidation registers the custom validation tags with the Gin validator. It needs to be
// called before any route binds a request using one of these tags.
func RegisterValidation() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("error getting validation engine")
	}
	return v.RegisterValidation("ticketType", ticketType)
}
