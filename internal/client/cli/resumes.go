package cli

import (
	"context"
	"fmt"

	pkgapi "github.com/iudanet/resumeai/pkg/api"
)

func (c *Cli) runResumes(ctx context.Context, args []string) error {
	fs := newFlagSet("resumes")
	offset := fs.Int("offset", 0, "skip the first N resumes")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if *offset < 0 {
		return fmt.Errorf("offset must not be negative")
	}

	page, err := c.api.ListResumes(ctx, pkgapi.ListParams{Limit: c.pageSize(), Offset: *offset})
	if err != nil {
		return err
	}

	c.io.Println("=== Resumes ===")
	c.io.Println()

	if len(page.Items) == 0 {
		c.io.Println("No resumes found.")
		c.io.Println()
		c.io.Println("Complete an interview to generate your first resume.")
		return nil
	}

	for i, r := range page.Items {
		c.io.Printf("%d. %s\n", *offset+i+1, resumeTitle(r))
		c.io.Printf("   ID:       %s\n", r.ID)
		c.io.Printf("   Session:  %s\n", r.SessionID)
		c.io.Printf("   Template: %s, language %s, version %d\n", r.Template, r.Language, r.Version)
		c.io.Printf("   Updated:  %s\n", formatTime(r.UpdatedAt))
		c.io.Println()
	}

	c.io.Printf("Showing %d-%d of %d\n", *offset+1, *offset+len(page.Items), page.Total)
	if page.HasMore {
		c.io.Printf("More: resumeai resumes --offset %d\n", *offset+len(page.Items))
	}
	return nil
}

func (c *Cli) runResume(ctx context.Context, args []string) error {
	resumeID, err := requireArg(args, "resume <resume-id>")
	if err != nil {
		return err
	}

	resume, err := c.api.GetResume(ctx, resumeID)
	if err != nil {
		return err
	}

	markdown, err := RenderMarkdown(resume.Data)
	if err != nil {
		return err
	}

	c.io.Printf("%s", markdown)
	return nil
}

func (c *Cli) runRegenerate(ctx context.Context, args []string) error {
	fs := newFlagSet("regenerate")
	tmpl := fs.String("template", "", "modern, classic, minimal or creative")
	lang := fs.String("language", "", "ru or en")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	resumeID, err := requireArg(fs.Args(), "regenerate [--template T] [--language ru|en] <resume-id>")
	if err != nil {
		return err
	}

	req := pkgapi.RegenerateResumeRequest{Template: *tmpl, Language: *lang}
	if err := c.validator.Struct(req); err != nil {
		return err
	}

	c.io.Println("Regenerating...")
	resume, err := c.api.RegenerateResume(ctx, resumeID, req)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Resume regenerated: template %s, language %s, version %d\n",
		resume.Template, resume.Language, resume.Version)
	c.io.Printf("View it with: resumeai resume %s\n", resume.ID)
	return nil
}

func resumeTitle(r pkgapi.Resume) string {
	if r.Title != "" {
		return r.Title
	}
	return "Resume " + shortID(r.ID)
}

func (c *Cli) pageSize() int {
	if c.opts.PageSize > 0 {
		return c.opts.PageSize
	}
	return 10
}
