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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"patch-dates/model"
)

// sheetsCmd represents the sheets command
var sheetsCmd = &cobra.Command{
	Use:   "sheets WORKBOOK",
	Short: "List the worksheet names of a workbook",
	Long:  `List the worksheet names declared in the workbook manifest.`,
	Run: func(cmd *cobra.Command, args []string) {

		debugCmd(cmd)
		if len(args) < 1 {
			log.Fatal("Missing workbook file name.")
		}
		fileName := args[0]

		archive, err := model.OpenArchive(fileName)
		if err != nil {
			log.Fatal(err)
		}
		defer archive.Close()

		names, err := model.SheetNames(archive)
		if err != nil {
			log.Fatal(err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
	},
}

func init() {
	RootCmd.AddCommand(sheetsCmd)
}
