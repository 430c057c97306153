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

// reviewCmd represents the review command
var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "生成需要人工复核的形容词、动词、职业名词和无性别名词表",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := loadPipeline()
		if err != nil {
			return err
		}
		summary, err := container.Deck.Review(cmd.Context())
		if err != nil {
			return fmt.Errorf("生成复核表失败: %w", err)
		}
		return printSummary(cmd, summary)
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd)

	reviewCmd.Flags().Float64("threshold", 0, "进入复核表的最低频率")
	reviewCmd.Flags().String("data-dir", "", "人工整理参考表所在目录")

	bindFlagToViper("frequency.min_threshold", reviewCmd.Flags().Lookup("threshold"))
	bindFlagToViper("paths.data_dir", reviewCmd.Flags().Lookup("data-dir"))
}
