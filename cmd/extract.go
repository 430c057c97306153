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
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "按词性分类导出筛选后的词条表",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := loadPipeline()
		if err != nil {
			return err
		}
		summary, err := container.Deck.Extract(cmd.Context())
		if err != nil {
			return fmt.Errorf("提取词条失败: %w", err)
		}
		return printSummary(cmd, summary)
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().String("categories-dir", "", "分类表输出目录")
	extractCmd.Flags().Int("top-n", 0, "受限词性保留的最大词条数")
	extractCmd.Flags().Int("min-category-size", 0, "独立成表的最小词条数")

	bindFlagToViper("paths.categories_dir", extractCmd.Flags().Lookup("categories-dir"))
	bindFlagToViper("selection.top_n", extractCmd.Flags().Lookup("top-n"))
	bindFlagToViper("selection.min_category_size", extractCmd.Flags().Lookup("min-category-size"))
}
