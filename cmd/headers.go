// Copyright © 2018 Radomirs Cirskis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"patch-dates/model"
)

// headersCmd represents the headers command
var headersCmd = &cobra.Command{
	Use:   "headers WORKBOOK",
	Short: "Show the header row mapping of a worksheet",
	Long: `Show the column letter each header of the worksheet's first row
resolves to, the way the patch command will match them.`,
	Run: func(cmd *cobra.Command, args []string) {

		debugCmd(cmd)
		if len(args) < 1 {
			log.Fatal("Missing workbook file name.")
		}
		fileName := args[0]
		sheetName := flagString(cmd, "sheet")

		archive, err := model.OpenArchive(fileName)
		if err != nil {
			log.Fatal(err)
		}
		defer archive.Close()

		headers, err := model.Headers(archive, sheetName)
		if err != nil {
			log.Fatal(err)
		}

		columns := make([]string, 0, len(headers))
		byColumn := make(map[string]string, len(headers))
		for header, column := range headers {
			columns = append(columns, column)
			byColumn[column] = header
		}
		sort.Slice(columns, func(i, j int) bool {
			return model.ColumnIndex(columns[i]) < model.ColumnIndex(columns[j])
		})
		for _, column := range columns {
			fmt.Printf("%s\t%s\n", column, byColumn[column])
		}
	},
}

func init() {
	RootCmd.AddCommand(headersCmd)
	headersCmd.Flags().StringP("sheet", "s", defaultSheet, "Worksheet name to inspect.")
}
