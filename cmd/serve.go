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
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valpere/travelrelay/internal/config"
	"github.com/valpere/travelrelay/internal/places"
	"github.com/valpere/travelrelay/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP relay",
	Long: `Start the HTTP relay.

Endpoints:
  GET  /              health check
  POST /translate     translate {input_lang, output_lang, text}
  GET  /place-photos  first photo for ?query=<place>

The Google Places key is read from GOOGLE_PLACES_API_KEY, which may also
be set in a .env file in the working directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		provider, err := newLogProvider(cfg)
		if err != nil {
			return err
		}
		logger := provider.GetLogger("serve")

		if cfg.Places.APIKey != "" {
			logger.Info("places API key loaded")
		} else {
			logger.Warn("places API key missing", "env", config.PlacesKeyEnv)
		}

		rel, err := buildRelay(cfg, provider)
		if err != nil {
			return err
		}
		photos := places.New(cfg.Places, provider.GetLogger("places"))

		srv := server.New(cfg.Server, rel, photos, provider.GetLogger("server"))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("starting server",
			"addr", cfg.Server.Addr(),
			"provider", cfg.Translation.Provider,
		)
		return srv.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	flags := serveCmd.Flags()
	flags.String("host", "127.0.0.1", "Address to listen on")
	flags.IntP("port", "p", 5000, "Port to listen on")
	flags.String("provider", "magicloop", "Translation backend: magicloop, google")
	flags.String("endpoint", "", "Translation endpoint URL (magicloop)")
	flags.Duration("timeout", 0, "Timeout for outbound HTTP calls (0 = none)")

	viper.BindPFlag("server.host", flags.Lookup("host"))
	viper.BindPFlag("server.port", flags.Lookup("port"))
	viper.BindPFlag("translation.provider", flags.Lookup("provider"))
	viper.BindPFlag("translation.endpoint", flags.Lookup("endpoint"))
	viper.BindPFlag("http.timeout", flags.Lookup("timeout"))
}
