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
	"os"

	log "github.com/sirupsen/logrus"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"patch-dates/model"
)

const (
	defaultSheet      = "Sheet1"
	defaultRow        = 2
	defaultDateFormat = "%Y-%m-%d"
)

var (
	cfgFile string
	debug   bool
	verbose bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "patch-dates WORKBOOK",
	Short: "Update the Target Start/End Date cells of an Excel workbook",
	Long: `Updates one row of an Excel worksheet by matching column headers
and writing new Target Start Date and Target End Date values.

The workbook container is rewritten member by member: only the edited
worksheet (and the style table, when the date display style is applied)
is re-serialized, every other member is copied byte for byte. When
editing in place a .bak copy of the original is kept next to it unless
--no-backup is given.

Dates are parsed with the --date-format pattern, which accepts strptime
directives such as %Y-%m-%d or a Go reference layout.`,
	Args: cobra.ArbitraryArgs,
	Run:  patchDates,
}

func patchDates(cmd *cobra.Command, args []string) {

	debugCmd(cmd)
	if len(args) < 1 {
		log.Fatal("Missing workbook file name.")
	}
	fileName := args[0]
	if _, err := os.Stat(fileName); os.IsNotExist(err) {
		log.Fatalf("Workbook %q does not exist.", fileName)
	}

	startDate := flagString(cmd, "start-date")
	endDate := flagString(cmd, "end-date")
	if startDate == "" || endDate == "" {
		log.Fatal("Both --start-date and --end-date are required.")
	}
	dateFormat := flagString(cmd, "date-format")

	start, err := model.ParseDate(startDate, dateFormat)
	if err != nil {
		log.Fatal(err)
	}
	end, err := model.ParseDate(endDate, dateFormat)
	if err != nil {
		log.Fatal(err)
	}

	opts := model.Options{
		Path:      fileName,
		Sheet:     flagString(cmd, "sheet"),
		Row:       flagInt(cmd, "row"),
		StartDate: start,
		EndDate:   end,
		Output:    flagString(cmd, "output"),
		NoBackup:  flagBool(cmd, "no-backup"),
		NoStyle:   flagBool(cmd, "no-style"),
	}
	if verbose {
		log.Infof("Updating %q row %d of %q", opts.Sheet, opts.Row, fileName)
	}

	result, err := model.UpdateDates(opts)
	if err != nil {
		log.Fatal(err)
	}

	if result.Backup != "" {
		fmt.Printf("Backup saved to %s\n", result.Backup)
	}
	fmt.Printf("Updated %q row %d in %s\n", result.Sheet, result.Row, result.Dest)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {

	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.patch-dates.yaml)")
	RootCmd.PersistentFlags().BoolP("debug", "d", false, "Show debug output about what the program does.")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose mode. Produce more output about what the program does.")

	flags := RootCmd.Flags()
	flags.StringP("sheet", "s", defaultSheet, "Worksheet name to update.")
	flags.IntP("row", "r", defaultRow, "1-based row number to update (row 2 is the first data row).")
	flags.String("start-date", "", "New Target Start Date value (parsed with --date-format).")
	flags.String("end-date", "", "New Target End Date value (parsed with --date-format).")
	flags.String("date-format", defaultDateFormat, "Pattern for parsing the date values, strptime directives or a Go layout.")
	flags.StringP("output", "o", "", "Path for the updated workbook. Default: edit the workbook in place.")
	flags.Bool("no-backup", false, "Skip creating WORKBOOK.bak when editing in place.")
	flags.Bool("no-style", false, "Write bare serial numbers without the date-time display style.")

	viper.BindPFlag("sheet", flags.Lookup("sheet"))
	viper.BindPFlag("row", flags.Lookup("row"))
	viper.BindPFlag("date-format", flags.Lookup("date-format"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			log.Fatal(err)
		}

		// Search config in home directory with name ".patch-dates" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".patch-dates")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Info("Using config file:", viper.ConfigFileUsed())
	}
}
