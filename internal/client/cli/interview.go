package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/iudanet/resumeai/internal/client/interview"
	pkgapi "github.com/iudanet/resumeai/pkg/api"
)

const interviewHelp = "Type your answer and press Enter. Commands: /end finish early, /quit continue later."

func (c *Cli) runInterview(ctx context.Context, args []string) error {
	var sessionID string
	if len(args) > 0 {
		sessionID = strings.TrimSpace(args[0])
	} else {
		last, err := c.prefs.GetLastSession(ctx)
		if err != nil {
			return fmt.Errorf("failed to read last session: %w", err)
		}
		sessionID = last
	}
	if sessionID == "" {
		return fmt.Errorf("no interview to continue. Run 'resumeai start' to begin one")
	}

	session, err := c.api.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}

	if session.Status.Terminal() {
		c.io.Printf("This interview is already %s.\n", statusLabel(session.Status))
		if session.Status == pkgapi.StatusCompleted {
			c.io.Println()
			return c.showCompletion(ctx, session.ID, false)
		}
		return nil
	}
	return c.interview(ctx, *session)
}

// interview ведет диалог до завершения или выхода пользователя
func (c *Cli) interview(ctx context.Context, session pkgapi.InterviewSession) error {
	if err := c.prefs.SaveLastSession(ctx, session.ID); err != nil {
		c.logger.WarnContext(ctx, "failed to save last session", slog.Any("error", err))
	}

	chat := interview.NewChat(c.api, session, c.logger)

	c.io.Println("=== Interview ===")
	c.io.Println(interviewHelp)
	c.io.Println()

	if err := chat.LoadHistory(ctx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.io.Println("Error:", chat.Snapshot().Error)
	}

	snap := chat.Snapshot()
	for _, m := range snap.Messages {
		c.printMessage(m)
	}
	c.io.Printf("Progress: %s\n", progressBar(snap.Progress.Percentage))

	for {
		if chat.State() == interview.StateCompleted {
			return c.finishInterview(ctx, chat)
		}

		input, err := c.io.ReadInput("> ")
		if errors.Is(err, io.EOF) {
			c.printLater(chat.SessionID())
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}

		switch strings.ToLower(input) {
		case "/quit", "/exit":
			c.printLater(chat.SessionID())
			return nil
		case "/help":
			c.io.Println(interviewHelp)
			continue
		case "/end":
			leave, err := c.endDialog(ctx, chat)
			if err != nil {
				return err
			}
			if leave {
				return nil
			}
			continue
		}

		resp, err := chat.Send(ctx, input)
		switch {
		case errors.Is(err, interview.ErrEmptyInput):
			continue
		case ctx.Err() != nil:
			return ctx.Err()
		case err != nil:
			c.io.Println("Error:", errorText(err))
			continue
		}

		c.printMessage(resp.AIResponse)
		c.io.Printf("Progress: %s\n", progressBar(resp.Progress.Percentage))
	}
}

// endDialog показывает диалог досрочного завершения. Возвращает true, если экран закрывается.
func (c *Cli) endDialog(ctx context.Context, chat *interview.Chat) (bool, error) {
	if err := chat.BeginEnd(); err != nil {
		c.io.Println("Error:", err.Error())
		return false, nil
	}

	progress := chat.Snapshot().Progress
	c.io.Println()
	c.io.Println("=== Finish the interview? ===")
	c.io.Printf("Progress: %s\n", progressBar(progress.Percentage))
	if !progress.Done() {
		c.io.Println("Not all sections are covered yet, the resume may be incomplete.")
	}
	c.io.Println("  [c] Complete now and generate the resume")
	c.io.Println("  [l] Return later")
	c.io.Println("  [b] Back to the interview")

	for {
		choice, err := c.io.ReadInput("Choice [c/l/b]: ")
		if errors.Is(err, io.EOF) {
			choice = "l"
		} else if err != nil {
			return false, fmt.Errorf("failed to read choice: %w", err)
		}

		switch strings.ToLower(choice) {
		case "c":
			c.io.Println("Completing the interview...")
			if _, err := chat.Complete(ctx); err != nil {
				if ctx.Err() != nil {
					return false, ctx.Err()
				}
				c.io.Println("Error:", chat.Snapshot().Error)
				return false, nil
			}
			return true, c.finishInterview(ctx, chat)
		case "l":
			if err := chat.ReturnLater(); err != nil {
				return false, err
			}
			c.printLater(chat.SessionID())
			return true, nil
		case "b":
			return false, chat.CancelEnd()
		default:
			c.io.Println("Please choose c, l or b.")
		}
	}
}

// finishInterview выдерживает паузу и открывает экран завершения
func (c *Cli) finishInterview(ctx context.Context, chat *interview.Chat) error {
	c.io.Println()
	c.io.Println("✓ Interview complete! Preparing your resume...")
	if err := c.sleep(ctx, c.opts.CompletionDelay); err != nil {
		return err
	}
	c.io.Println()
	return c.showCompletion(ctx, chat.SessionID(), false)
}

func (c *Cli) printLater(sessionID string) {
	c.io.Println()
	c.io.Println("Your answers are saved.")
	c.io.Printf("Continue later with: resumeai interview %s\n", sessionID)
}

func (c *Cli) printMessage(m pkgapi.Message) {
	who := "You"
	if m.Role == pkgapi.RoleAI {
		who = "AI"
	}
	c.io.Printf("%s: %s\n", who, m.Content)
}
