/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eslsoft/vocdeck/internal/usecase/backup"
)

const (
	importInputKey  = "backup.import.input"
	importGzipKey   = "backup.import.gzip"
	importTablesKey = "backup.import.tables"
	importMergeKey  = "backup.import.merge"
	importDriftKey  = "backup.import.allow_schema_drift"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "从 NDJSON 快照恢复牌组数据库",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		ctx := cmd.Context()

		inputPath := viper.GetString(importInputKey)
		if inputPath == "" {
			return errors.New("请通过 --input 指定快照文件或使用 - 表示标准输入")
		}
		gzipEnabled := viper.GetBool(importGzipKey)
		if !gzipEnabled && inputPath != "-" && strings.HasSuffix(strings.ToLower(inputPath), ".gz") {
			gzipEnabled = true
		}

		container, cleanup, err := loadWithStore()
		if err != nil {
			return err
		}
		migrateErr := container.Store.Migrate(ctx)
		cleanup()
		if migrateErr != nil {
			return fmt.Errorf("执行数据库迁移失败: %w", migrateErr)
		}

		service, err := newBackupService(container.Config, 0)
		if err != nil {
			return err
		}

		reader, closeAll, err := openSnapshotReader(cmd.InOrStdin(), inputPath, gzipEnabled)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := closeAll(); cerr != nil && err == nil {
				err = cerr
			}
		}()

		var importOpts []backup.ImportOption
		if tables := tablesFromConfig(importTablesKey); len(tables) > 0 {
			importOpts = append(importOpts, backup.WithImportTables(tables))
		}
		if viper.GetBool(importMergeKey) {
			importOpts = append(importOpts, backup.WithMerge())
		}
		if viper.GetBool(importDriftKey) {
			importOpts = append(importOpts, backup.WithSchemaDrift())
		}

		if err := service.Import(ctx, reader, importOpts...); err != nil {
			return fmt.Errorf("导入快照失败: %w", err)
		}

		if inputPath == "-" {
			cmd.Println("导入完成: 数据来源于标准输入")
		} else {
			cmd.Printf("导入完成: %s\n", inputPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringP("input", "i", "", "快照文件路径，使用 - 表示标准输入")
	importCmd.Flags().Bool("gzip", false, "输入为 gzip 压缩格式")
	importCmd.Flags().StringSlice("tables", nil, "仅导入指定表，逗号分隔或重复指定")
	importCmd.Flags().Bool("merge", false, "按主键合并到现有数据，而不是替换整张表")
	importCmd.Flags().Bool("allow-schema-drift", false, "允许导入表结构哈希不一致的快照")

	bindFlagToViper(importInputKey, importCmd.Flags().Lookup("input"))
	bindFlagToViper(importGzipKey, importCmd.Flags().Lookup("gzip"))
	bindFlagToViper(importTablesKey, importCmd.Flags().Lookup("tables"))
	bindFlagToViper(importMergeKey, importCmd.Flags().Lookup("merge"))
	bindFlagToViper(importDriftKey, importCmd.Flags().Lookup("allow-schema-drift"))
}
