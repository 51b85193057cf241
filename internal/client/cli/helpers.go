package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	clientapi "github.com/iudanet/resumeai/internal/client/api"
	pkgapi "github.com/iudanet/resumeai/pkg/api"
)

// errorText возвращает сообщение ошибки для строки "Error: ..."
func errorText(err error) string {
	if apiErr, ok := clientapi.AsError(err); ok {
		return apiErr.Error()
	}
	return err.Error()
}

// isNotFound сообщает, что сервер ответил 404
func isNotFound(err error) bool {
	return clientapi.StatusOf(err) == 404
}

// confirm задает вопрос да/нет, по умолчанию "нет"
func (c *Cli) confirm(prompt string) (bool, error) {
	answer, err := c.io.ReadInput(prompt + " [y/N]: ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes", "д", "да":
		return true, nil
	default:
		return false, nil
	}
}

// newFlagSet создает набор флагов подкоманды, ошибки возвращаются, а не печатаются
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// requireArg возвращает первый позиционный аргумент
func requireArg(args []string, usage string) (string, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return "", fmt.Errorf("missing argument. Usage: resumeai %s", usage)
	}
	return strings.TrimSpace(args[0]), nil
}

// shortID: первые 8 символов id
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// pickIndex разбирает номер элемента списка (с 1)
func pickIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || i < 1 || i > n {
		return 0, fmt.Errorf("invalid number %q: expected 1..%d", s, n)
	}
	return i - 1, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func statusLabel(s pkgapi.SessionStatus) string {
	switch s {
	case pkgapi.StatusInProgress:
		return "in progress"
	case pkgapi.StatusCompleted:
		return "completed"
	case pkgapi.StatusAbandoned:
		return "abandoned"
	default:
		return string(s)
	}
}

// progressBar рисует прогресс вида [#####-----] 50%
func progressBar(percentage int) string {
	const width = 20
	p := min(max(percentage, 0), 100)
	filled := p * width / 100
	return fmt.Sprintf("[%s%s] %d%%", strings.Repeat("#", filled), strings.Repeat("-", width-filled), p)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
