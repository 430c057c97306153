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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eslsoft/vocdeck/internal/app"
)

const buildStoreKey = "build.store"

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "生成词汇卡片、变位卡片、分级词表与变位练习骨架",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := viper.GetBool(buildStoreKey)

		var container *app.Container
		if store {
			c, cleanup, err := loadWithStore()
			if err != nil {
				return err
			}
			defer cleanup()
			container = c
		} else {
			c, err := loadPipeline()
			if err != nil {
				return err
			}
			container = c
		}

		summary, err := container.Deck.Build(cmd.Context(), store)
		if err != nil {
			return fmt.Errorf("生成卡片失败: %w", err)
		}
		return printSummary(cmd, summary)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().Bool("store", false, "同时将牌组写入数据库")
	buildCmd.Flags().String("filter", "", "CEL 卡片过滤表达式，例如 'freq >= 10 && level != \"autres\"'")
	buildCmd.Flags().String("order-by", "", "卡片排序，例如 'freq desc, text'")
	buildCmd.Flags().String("additions-dir", "", "补充词表所在目录")

	bindFlagToViper(buildStoreKey, buildCmd.Flags().Lookup("store"))
	bindFlagToViper("cards.filter", buildCmd.Flags().Lookup("filter"))
	bindFlagToViper("cards.order_by", buildCmd.Flags().Lookup("order-by"))
	bindFlagToViper("paths.additions_dir", buildCmd.Flags().Lookup("additions-dir"))
}
