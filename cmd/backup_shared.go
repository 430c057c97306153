package cmd

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/eslsoft/vocdeck/internal/infrastructure/config"
	"github.com/eslsoft/vocdeck/internal/usecase/backup"
)

func tablesFromConfig(key string) []string {
	return normalizeTables(viper.GetStringSlice(key))
}

func normalizeTables(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	result := make([]string, 0, len(values))
	for _, value := range values {
		name := strings.TrimSpace(value)
		if name == "" {
			continue
		}
		result = append(result, strings.ToLower(name))
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func bindFlagToViper(key string, flag *pflag.Flag) {
	if flag == nil {
		return
	}
	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func newBackupService(cfg *config.Config, batchSize int) (*backup.Service, error) {
	driver, err := cfg.DatabaseDriver()
	if err != nil {
		return nil, fmt.Errorf("解析数据库驱动失败: %w", err)
	}
	dsn, err := cfg.DatabaseURL()
	if err != nil {
		return nil, fmt.Errorf("解析数据库 DSN 失败: %w", err)
	}
	service, err := backup.NewService(driver, dsn, backup.WithBatchSize(batchSize))
	if err != nil {
		return nil, fmt.Errorf("创建快照服务失败: %w", err)
	}
	return service, nil
}

// closeChain closes in order and keeps the first error.
func closeChain(closers []func() error) func() error {
	return func() error {
		var first error
		for _, closer := range closers {
			if err := closer(); err != nil && first == nil {
				first = err
			}
		}
		return first
	}
}

// openSnapshotWriter opens path for writing, or returns stdout for "-".
// The gzip layer is closed before the file.
func openSnapshotWriter(stdout io.Writer, path string, gzipEnabled bool) (io.Writer, func() error, error) {
	var (
		writer  = stdout
		closers []func() error
	)
	if path != "-" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("创建输出目录失败: %w", err)
		}
		file, err := os.Create(path)
		if err != nil {
			return nil, nil, fmt.Errorf("创建快照文件失败: %w", err)
		}
		writer = file
		closers = append(closers, file.Close)
	}
	if gzipEnabled {
		gz := gzip.NewWriter(writer)
		writer = gz
		closers = append([]func() error{gz.Close}, closers...)
	}
	return writer, closeChain(closers), nil
}

// openSnapshotReader opens path for reading, or returns stdin for "-".
func openSnapshotReader(stdin io.Reader, path string, gzipEnabled bool) (io.Reader, func() error, error) {
	var (
		reader  = stdin
		closers []func() error
	)
	if path != "-" {
		file, err := os.Open(filepath.Clean(path))
		if err != nil {
			return nil, nil, fmt.Errorf("打开快照文件失败: %w", err)
		}
		reader = file
		closers = append(closers, file.Close)
	}
	if gzipEnabled {
		gzr, err := gzip.NewReader(reader)
		if err != nil {
			_ = closeChain(closers)()
			return nil, nil, fmt.Errorf("创建 gzip 读取器失败: %w", err)
		}
		reader = gzr
		closers = append([]func() error{gzr.Close}, closers...)
	}
	return reader, closeChain(closers), nil
}
