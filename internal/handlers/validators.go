package handlers

import (
	"github.com/arsipku/arsip_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// archivestatus restricts bound status fields to the known retention
// statuses.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("archivestatus", func(fl validator.FieldLevel) bool {
			return domain.ArchiveStatus(fl.Field().String()).IsValid()
		})
	}
}
