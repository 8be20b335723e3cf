package repo

import "errors"

// Общие ошибки репозиториев.
var (
	// ErrNotFound — запись не найдена в БД.
	ErrNotFound = errors.New("not found")

	// ErrConcurrentUpdate — конкурентная запись в историю одного
	// агрегата: номер события уже занят другим writer'ом.
	ErrConcurrentUpdate = errors.New("concurrent update")

	// ErrUnknownEventKind — в истории встретилось событие
	// с неизвестным именем.
	ErrUnknownEventKind = errors.New("unknown event kind")
)
