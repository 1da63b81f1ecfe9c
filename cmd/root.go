/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valpere/travelrelay/internal/config"
)

var version = "0.1.0"

var (
	cfgFile string
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "travelrelay",
	Short: "Translation and place-photo relay",
	Long: `A small HTTP relay for the travel planner frontend.

It forwards translation requests to a hosted translation API and unwraps
its loosely shaped responses, and looks up place photos through the
Google Places API.

Use "travelrelay serve" to start the server.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(envFile); err != nil {
			return err
		}
		return config.Init(viper.GetViper(), cfgFile)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.travelrelay.yaml)")
	flags.StringVar(&envFile, "env-file", ".env", "dotenv file loaded into the environment at startup")
	flags.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	flags.String("log-format", "console", "Log format: console, json, pretty")

	viper.BindPFlag("log.level", flags.Lookup("log-level"))
	viper.BindPFlag("log.format", flags.Lookup("log-format"))
}
