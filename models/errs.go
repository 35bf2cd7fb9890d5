package models

import "github.com/pkg/errors"

// Базовые ошибки операций, по ним контроллер выбирает http статус
var (
	ErrValidation = errors.New("некорректные данные запроса")
	ErrForbidden  = errors.New("операция недоступна")
	ErrNotFound   = errors.New("запись не найдена")
	ErrConflict   = errors.New("запись уже существует")
)
