package storage

import "errors"

var (
	// ErrAuthNotFound: в хранилище нет токена
	ErrAuthNotFound = errors.New("no saved login")

	// ErrStorageClosed: обращение к закрытой базе
	ErrStorageClosed = errors.New("client database is closed")
)
