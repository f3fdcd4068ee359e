package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Leganyst/homeservice-platform/internal/marketplace"
)

// translate переводит ошибки GORM в доменные.
// Требует gorm.Config{TranslateError: true}: уникальность и внешние ключи
// распознаются по кодам драйвера, а не по тексту сообщения.
func translate(err error, entity string) error {
	if err == nil {
		return nil
	}
	var de *marketplace.Error
	if errors.As(err, &de) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return marketplace.WithCause(marketplace.NotFound("%s not found", entity), err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return marketplace.WithCause(marketplace.Conflict("%s already exists", entity), err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return marketplace.WithCause(marketplace.NotFound("%s references a missing record", entity), err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return marketplace.WithCause(marketplace.Invalid(entity, "violates a value constraint"), err)
	}
	return err
}
