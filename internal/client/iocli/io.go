// Package iocli абстрагирует терминальный ввод-вывод клиента.
package iocli

//go:generate moq -out io_mock.go . IO

// IO определяет ввод и вывод экранов клиента
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	// ReadInput печатает prompt и возвращает строку без пробелов по краям.
	// io.EOF означает, что ввод закончился.
	ReadInput(prompt string) (string, error)
	// ReadPassword читает строку без эха, если ввод идет с терминала
	ReadPassword(prompt string) (string, error)
	Write(p []byte) (n int, err error)
}
