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
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eslsoft/vocdeck/internal/entity"
	"github.com/eslsoft/vocdeck/internal/repository"
)

const (
	cardsFilterKey  = "cards.list.filter"
	cardsOrderByKey = "cards.list.order_by"
	cardsLimitKey   = "cards.list.limit"
)

// cardsCmd represents the cards command
var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "查询数据库中已保存的词汇卡片",
	Example: `  vocdeck cards --filter 'level == "b1" && word_type in ["m", "f"]' --order-by 'text' --limit 20
  vocdeck cards --filter 'text.startsWith("re") && freq > 5'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		container, cleanup, err := loadWithStore()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := cmd.Context()
		if err := container.Store.Migrate(ctx); err != nil {
			return fmt.Errorf("执行数据库迁移失败: %w", err)
		}

		cards, err := container.Deck.ListCards(ctx, &repository.ListVocabQuery{
			FilterOrder: repository.FilterOrder{
				Filter:  viper.GetString(cardsFilterKey),
				OrderBy: viper.GetString(cardsOrderByKey),
			},
			Limit: viper.GetInt(cardsLimitKey),
		})
		if err != nil {
			return fmt.Errorf("查询卡片失败: %w", err)
		}
		return writeCards(cmd.OutOrStdout(), cards)
	},
}

func init() {
	rootCmd.AddCommand(cardsCmd)

	cardsCmd.Flags().String("filter", "", "CEL 过滤表达式，仅支持 && 连接的比较、in 与 startsWith")
	cardsCmd.Flags().String("order-by", "", "排序，例如 'freq desc, text'")
	cardsCmd.Flags().Int("limit", 50, "最多返回的卡片数")

	bindFlagToViper(cardsFilterKey, cardsCmd.Flags().Lookup("filter"))
	bindFlagToViper(cardsOrderByKey, cardsCmd.Flags().Lookup("order-by"))
	bindFlagToViper(cardsLimitKey, cardsCmd.Flags().Lookup("limit"))
}

func writeCards(out io.Writer, cards []entity.VocabEntry) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FRENCH\tTYPE\tLEVEL\tFREQ\tSOURCE\tNOTES")
	for _, c := range cards {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			c.French,
			c.WordType,
			c.Level,
			strconv.FormatFloat(c.Frequency, 'f', 2, 64),
			c.Source,
			c.Notes,
		)
	}
	return tw.Flush()
}
