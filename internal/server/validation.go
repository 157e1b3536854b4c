package server

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"bld/internal/models"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// registerValidations adds the `project` tag to gin's validator engine.
func registerValidations() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		registerErr = v.RegisterValidation("project", func(fl validator.FieldLevel) bool {
			return models.IsValidProject(fl.Field().String())
		})
	})
	return registerErr
}

// parseDate accepts a bare YYYY-MM-DD (midnight UTC) or an RFC 3339 timestamp.
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", raw)
	}
	return t.UTC(), nil
}
