// Package config загружает настройки клиента и devserver.
//
// Порядок применения (каждый следующий источник переопределяет предыдущий):
//
//  1. значения по умолчанию из тегов env;
//  2. файл .env (github.com/joho/godotenv), если он существует;
//  3. переменные окружения с префиксом RESUMEAI_ (клиент) или RESUMEAI_DEV_ (devserver);
//  4. флаги командной строки.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	// ClientEnvPrefix префикс переменных окружения клиента
	ClientEnvPrefix = "RESUMEAI_"
	// ServerEnvPrefix префикс переменных окружения devserver
	ServerEnvPrefix = "RESUMEAI_DEV_"
	// DefaultEnvFile файл с переменными окружения
	DefaultEnvFile = ".env"
)

// source описывает откуда читать переменные окружения
type source struct {
	lookuper envconfig.Lookuper
	envFile  string
}

// defaultSource читает окружение процесса и .env из текущей директории
func defaultSource() source {
	return source{
		lookuper: envconfig.OsLookuper(),
		envFile:  DefaultEnvFile,
	}
}

// processEnv заполняет target из окружения и .env с учетом префикса.
// Переменные процесса имеют приоритет над .env.
func processEnv(ctx context.Context, src source, prefix string, target any) error {
	lookupers := []envconfig.Lookuper{src.lookuper}

	if src.envFile != "" {
		fileEnv, err := godotenv.Read(src.envFile)
		switch {
		case err == nil:
			lookupers = append(lookupers, envconfig.MapLookuper(fileEnv))
		case errors.Is(err, fs.ErrNotExist):
			// .env не обязателен
		default:
			return fmt.Errorf("failed to read %s: %w", src.envFile, err)
		}
	}

	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   target,
		Lookuper: envconfig.PrefixLookuper(prefix, envconfig.MultiLookuper(lookupers...)),
	})
	if err != nil {
		return fmt.Errorf("failed to process environment: %w", err)
	}
	return nil
}
