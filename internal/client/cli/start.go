package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	pkgapi "github.com/iudanet/resumeai/pkg/api"
)

func (c *Cli) runStart(ctx context.Context, args []string) error {
	name := "there"
	if user := c.session.User(); user != nil {
		name = user.DisplayName()
	}

	c.io.Printf("Hello, %s!\n", name)
	c.io.Println("I will ask you about your experience, education and skills,")
	c.io.Println("and build a resume from your answers.")
	c.io.Println()

	lang, err := c.chooseLanguage(ctx, args)
	if err != nil {
		return err
	}

	req := pkgapi.CreateSessionRequest{Language: lang}
	if err := c.validator.Struct(req); err != nil {
		return err
	}

	session, err := c.api.CreateSession(ctx, req)
	if err != nil {
		return err
	}

	c.io.Printf("Interview started (session %s)\n", session.ID)
	c.io.Println()
	return c.interview(ctx, *session)
}

// chooseLanguage берет язык из аргумента или спрашивает, предлагая сохраненный
func (c *Cli) chooseLanguage(ctx context.Context, args []string) (pkgapi.Language, error) {
	def := pkgapi.LanguageRU
	saved, err := c.prefs.GetLanguage(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "failed to read saved language", slog.Any("error", err))
	} else if saved != "" {
		def = saved
	}

	var input string
	if len(args) > 0 {
		input = args[0]
	} else {
		input, err = c.io.ReadInput(fmt.Sprintf("Interview language [ru/en] (default %s): ", def))
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read language: %w", err)
		}
	}

	lang := def
	if v := strings.ToLower(strings.TrimSpace(input)); v != "" {
		lang = pkgapi.Language(v)
	}
	if lang != pkgapi.LanguageRU && lang != pkgapi.LanguageEN {
		return "", fmt.Errorf("unsupported language %q: use ru or en", lang)
	}

	if err := c.prefs.SaveLanguage(ctx, lang); err != nil {
		c.logger.WarnContext(ctx, "failed to save language", slog.Any("error", err))
	}
	return lang, nil
}
