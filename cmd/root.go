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
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eslsoft/vocdeck/internal/app"
	"github.com/eslsoft/vocdeck/internal/infrastructure/config"
	"github.com/eslsoft/vocdeck/internal/report"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vocdeck",
	Short: "基于 Lexique383 词表生成法语词汇与动词变位卡片",
	Long: `vocdeck 读取 Lexique383 词表与人工整理的参考表，
按频率筛选词条，生成词汇卡片、动词变位卡片、人工复核表以及变位练习骨架。`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件路径 (默认 ./vocdeck.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "日志级别 (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "日志格式 (text, json)")
	rootCmd.PersistentFlags().String("lexicon", "", "Lexique383 TSV 文件路径")
	rootCmd.PersistentFlags().String("output-dir", "", "输出目录")
	rootCmd.PersistentFlags().String("db-driver", "", "牌组数据库驱动 (sqlite3, postgres, pgx)")
	rootCmd.PersistentFlags().String("db-dsn", "", "牌组数据库连接串，默认在输出目录下创建 vocdeck.db")
	rootCmd.PersistentFlags().Bool("log-sql", false, "打印执行的 SQL")

	bindFlagToViper("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	bindFlagToViper("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	bindFlagToViper("lexicon.path", rootCmd.PersistentFlags().Lookup("lexicon"))
	bindFlagToViper("paths.output_dir", rootCmd.PersistentFlags().Lookup("output-dir"))
	bindFlagToViper("database.driver", rootCmd.PersistentFlags().Lookup("db-driver"))
	bindFlagToViper("database.dsn", rootCmd.PersistentFlags().Lookup("db-dsn"))
	bindFlagToViper("database.log_sql", rootCmd.PersistentFlags().Lookup("log-sql"))
}

// initConfig points viper at the --config file when one is given.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func loadPipeline() (*app.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}
	container, err := app.InitializePipeline(cfg)
	if err != nil {
		return nil, fmt.Errorf("初始化失败: %w", err)
	}
	return container, nil
}

func loadWithStore() (*app.Container, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}
	container, cleanup, err := app.InitializeWithStore(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("连接牌组数据库失败: %w", err)
	}
	return container, cleanup, nil
}

func printSummary(cmd *cobra.Command, summary *report.Summary) error {
	if summary == nil {
		return nil
	}
	return summary.Render(cmd.OutOrStdout())
}
