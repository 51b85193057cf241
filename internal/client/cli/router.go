package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

var (
	// ErrLoginRequired: защищенная команда без активной сессии
	ErrLoginRequired = errors.New("please login first: run 'resumeai login'")
	// ErrUnknownCommand: команды нет в таблице маршрутов
	ErrUnknownCommand = errors.New("unknown command")
)

type route struct {
	run       func(ctx context.Context, args []string) error
	Name      string
	Usage     string
	Summary   string
	Protected bool
}

func (c *Cli) routes() []route {
	return []route{
		{Name: "register", Usage: "register", Summary: "Create an account and log in", run: c.runRegister},
		{Name: "login", Usage: "login", Summary: "Log in", run: c.runLogin},
		{Name: "logout", Usage: "logout", Summary: "Log out and forget the local session", run: c.runLogout},
		{Name: "status", Usage: "status", Summary: "Show authentication status", run: c.runStatus},
		{Name: "refresh", Usage: "refresh", Summary: "Refresh the access token", Protected: true, run: c.runRefresh},
		{Name: "start", Usage: "start [ru|en]", Summary: "Start a new interview", Protected: true, run: c.runStart},
		{Name: "interview", Usage: "interview [session-id]", Summary: "Continue an interview (last one by default)", Protected: true, run: c.runInterview},
		{Name: "complete", Usage: "complete [--save] <session-id>", Summary: "Finish an interview and show the resume", Protected: true, run: c.runComplete},
		{Name: "sessions", Usage: "sessions", Summary: "Browse your interview sessions", Protected: true, run: c.runSessions},
		{Name: "resumes", Usage: "resumes [--offset N]", Summary: "List generated resumes", Protected: true, run: c.runResumes},
		{Name: "resume", Usage: "resume <resume-id>", Summary: "Show a resume as markdown", Protected: true, run: c.runResume},
		{Name: "download", Usage: "download [--format pdf|docx|txt] <resume-id>", Summary: "Download a resume file", Protected: true, run: c.runDownload},
		{Name: "regenerate", Usage: "regenerate [--template T] [--language ru|en] <resume-id>", Summary: "Regenerate a resume", Protected: true, run: c.runRegenerate},
		{Name: "profile", Usage: "profile [edit]", Summary: "Show or edit your profile", Protected: true, run: c.runProfile},
		{Name: "password", Usage: "password", Summary: "Change your password", Protected: true, run: c.runPassword},
	}
}

// lookup находит маршрут, "/" и пустая команда ведут на start
func (c *Cli) lookup(command string) (route, bool) {
	name := strings.TrimPrefix(strings.ToLower(command), "/")
	if name == "" {
		name = "start"
	}
	for _, r := range c.routes() {
		if r.Name == name {
			return r, true
		}
	}
	return route{}, false
}

// Run выполняет команду. Ошибка уже выведена строкой "Error: ...",
// вызывающему остается только код возврата.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "help", "-h", "--help":
		return c.PrintUsage()
	}

	r, ok := c.lookup(command)
	if !ok {
		err := fmt.Errorf("%w: %s", ErrUnknownCommand, command)
		c.io.Println("Error:", err.Error())
		_ = c.PrintUsage()
		return err
	}

	if r.Protected && !c.session.IsAuthenticated() {
		c.io.Println("Error:", ErrLoginRequired.Error())
		return ErrLoginRequired
	}

	c.logger.DebugContext(ctx, "running command", slog.String("command", r.Name), slog.Int("args", len(args)))

	if err := r.run(ctx, args); err != nil {
		c.io.Println("Error:", errorText(err))
		return err
	}
	return nil
}
