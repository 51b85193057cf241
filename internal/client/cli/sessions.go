package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/iudanet/resumeai/internal/client/sessions"
	pkgapi "github.com/iudanet/resumeai/pkg/api"
)

const sessionsHelp = "Commands: o N open, c N complete, d N delete, m more, r refresh, q quit"

func (c *Cli) runSessions(ctx context.Context, _ []string) error {
	list := sessions.NewList(c.api, c.pageSize(), c.logger)

	if err := list.Refresh(ctx); err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	c.printSessions(list.Snapshot())

	for {
		input, err := c.io.ReadInput("sessions> ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read command: %w", err)
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(input), " ")
		switch strings.ToLower(cmd) {
		case "":
			continue
		case "q", "quit":
			return nil
		case "h", "help":
			c.io.Println(sessionsHelp)
			continue
		case "r", "refresh":
			_ = list.Refresh(ctx)
		case "m", "more":
			if err := list.LoadMore(ctx); errors.Is(err, sessions.ErrNoMore) {
				c.io.Println("All sessions are loaded.")
				continue
			}
		case "o", "open":
			session, ok := c.pickSession(list, arg)
			if !ok {
				continue
			}
			return c.openSession(ctx, session)
		case "c", "complete":
			session, ok := c.pickSession(list, arg)
			if !ok {
				continue
			}
			if session.Status != pkgapi.StatusInProgress {
				c.io.Println("Error: only interviews in progress can be completed")
				continue
			}
			c.io.Println("Completing the interview...")
			if resp, err := list.Complete(ctx, session.ID); err == nil {
				c.io.Printf("✓ Interview completed, resume %s\n", resp.ResumeID)
			}
		case "d", "delete":
			session, ok := c.pickSession(list, arg)
			if !ok {
				continue
			}
			yes, err := c.confirm(fmt.Sprintf("Delete session %s? This cannot be undone.", shortID(session.ID)))
			if err != nil {
				return err
			}
			if !yes {
				continue
			}
			if err := list.Delete(ctx, session.ID); err == nil {
				c.io.Println("✓ Session deleted")
			}
		default:
			c.io.Printf("Unknown command %q. %s\n", cmd, sessionsHelp)
			continue
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.printSessions(list.Snapshot())
	}
}

// pickSession разбирает номер сессии в текущем списке
func (c *Cli) pickSession(list *sessions.List, arg string) (pkgapi.InterviewSession, bool) {
	items := list.Snapshot().Items
	i, err := pickIndex(arg, len(items))
	if err != nil {
		c.io.Println("Error:", err.Error())
		return pkgapi.InterviewSession{}, false
	}
	return items[i], true
}

// openSession продолжает интервью или показывает результат завершенного
func (c *Cli) openSession(ctx context.Context, session pkgapi.InterviewSession) error {
	switch session.Status {
	case pkgapi.StatusInProgress:
		return c.interview(ctx, session)
	case pkgapi.StatusCompleted:
		return c.showCompletion(ctx, session.ID, false)
	default:
		return fmt.Errorf("interview %s is %s", shortID(session.ID), statusLabel(session.Status))
	}
}

func (c *Cli) printSessions(snap sessions.Snapshot) {
	c.io.Println()
	c.io.Println("=== Interview Sessions ===")
	c.io.Println()

	if snap.Error != "" {
		c.io.Println("Error:", snap.Error)
		c.io.Println()
	}

	if len(snap.Items) == 0 {
		c.io.Println("No sessions yet. Run 'resumeai start' to begin an interview.")
		return
	}

	for i, s := range snap.Items {
		c.io.Printf("%d. %s  [%s]  %s\n", i+1, formatTime(s.CreatedAt), statusLabel(s.Status), progressBar(s.Progress.Percentage))
		c.io.Printf("   ID: %s  language: %s  messages: %d\n", s.ID, s.Language, s.MessageCount)
		if r, ok := snap.Resumes[s.ID]; ok {
			c.io.Printf("   Resume: %s (%s)\n", resumeTitle(r), r.ID)
		}
	}

	c.io.Println()
	c.io.Printf("Showing %d of %d\n", len(snap.Items), snap.Total)
	if snap.HasMore {
		c.io.Println("Type 'm' to load more.")
	}
	c.io.Println(sessionsHelp)
}
