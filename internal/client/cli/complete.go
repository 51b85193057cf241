package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runComplete(ctx context.Context, args []string) error {
	fs := newFlagSet("complete")
	save := fs.Bool("save", false, "save the resume as markdown without asking")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	sessionID, err := requireArg(fs.Args(), "complete [--save] <session-id>")
	if err != nil {
		return err
	}
	return c.showCompletion(ctx, sessionID, *save)
}

// showCompletion показывает резюме сессии. Если сервер еще не сформировал
// резюме, интервью завершается и резюме запрашивается повторно.
func (c *Cli) showCompletion(ctx context.Context, sessionID string, save bool) error {
	resume, err := c.api.GetSessionResume(ctx, sessionID)
	if isNotFound(err) {
		c.io.Println("Generating your resume...")
		if _, err := c.api.CompleteInterview(ctx, sessionID); err != nil {
			return err
		}
		resume, err = c.api.GetSessionResume(ctx, sessionID)
	}
	if err != nil {
		return err
	}

	markdown, err := RenderMarkdown(resume.Data)
	if err != nil {
		return err
	}

	c.io.Println("=== Your Resume ===")
	c.io.Printf("Resume ID: %s (template %s, version %d)\n", resume.ID, resume.Template, resume.Version)
	c.io.Println()
	c.io.Printf("%s", markdown)
	c.io.Println()

	if !save {
		save, err = c.confirm("Save as markdown?")
		if err != nil {
			return err
		}
	}
	if save {
		path, err := c.saveFile(fmt.Sprintf("resume-%s.md", shortID(sessionID)), strings.NewReader(markdown))
		if err != nil {
			return err
		}
		c.io.Printf("✓ Saved to %s\n", path)
	}

	c.io.Printf("Download other formats with: resumeai download --format pdf %s\n", resume.ID)
	return nil
}
