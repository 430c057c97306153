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

// dbInitCmd represents the db-init command
var dbInitCmd = &cobra.Command{
	Use:   "db-init",
	Short: "创建或升级牌组数据库表结构",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, cleanup, err := loadWithStore()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := container.Store.Migrate(cmd.Context()); err != nil {
			return fmt.Errorf("执行数据库迁移失败: %w", err)
		}
		driver, _ := container.Config.DatabaseDriver()
		container.Logger.WithField("driver", driver).Info("deck store schema is up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbInitCmd)
}
