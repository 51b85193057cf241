package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	pkgapi "github.com/iudanet/resumeai/pkg/api"
)

func (c *Cli) runDownload(ctx context.Context, args []string) error {
	fs := newFlagSet("download")
	format := fs.String("format", string(pkgapi.FormatPDF), "pdf, docx or txt")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	resumeID, err := requireArg(fs.Args(), "download [--format pdf|docx|txt] <resume-id>")
	if err != nil {
		return err
	}

	f := pkgapi.ResumeFormat(*format)
	if !f.Valid() {
		return fmt.Errorf("unsupported format %q: use pdf, docx or txt", *format)
	}

	c.io.Printf("Downloading %s...\n", f)

	raw, err := c.api.DownloadResume(ctx, resumeID, f)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := raw.Body.Close(); cerr != nil {
			c.logger.WarnContext(ctx, "failed to close download body", slog.Any("error", cerr))
		}
	}()

	name := raw.Filename(fmt.Sprintf("resume_%s.%s", resumeID, f))
	path, err := c.saveFile(name, raw.Body)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Saved to %s\n", path)
	return nil
}

// saveFile записывает r в файл name внутри каталога загрузок
func (c *Cli) saveFile(name string, r io.Reader) (path string, err error) {
	if err := os.MkdirAll(c.opts.DownloadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}

	path = filepath.Join(c.opts.DownloadDir, filepath.Base(name))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	if _, err := io.Copy(file, r); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return path, nil
}
