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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valpere/travelrelay/internal"
)

var (
	inputFile  string
	outputFile string
	sourceLang string
	targetLang string
)

var translateCmd = &cobra.Command{
	Use:   "translate [text...]",
	Short: "Translate text once through the configured backend",
	Long: `Translate text once through the same path the server uses and print
the result.

The text is taken from the arguments, from --input, or from stdin, in that
order. Failures are printed the way the server would return them.

Examples:
  travelrelay translate -s english -t hindi "Where is the station?"
  echo "Good morning" | travelrelay translate -s english -t tamil
  travelrelay translate -s english -t bengali -i note.txt -o note.bn.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if inputFile != "" && inputFile == outputFile {
			return fmt.Errorf("input file and output file cannot be the same")
		}

		text, err := readText(cmd, args)
		if err != nil {
			return err
		}
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("no text to translate")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		provider, err := newLogProvider(cfg)
		if err != nil {
			return err
		}
		rel, err := buildRelay(cfg, provider)
		if err != nil {
			return err
		}

		result := rel.Translate(cmd.Context(), internal.TranslationRequest{
			InputLang:  sourceLang,
			OutputLang: targetLang,
			Text:       text,
		})

		if outputFile == "" {
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		}

		if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(outputFile, []byte(result), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Translated %s to %s into %s\n", sourceLang, targetLang, outputFile)
		return nil
	},
}

func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func init() {
	rootCmd.AddCommand(translateCmd)

	flags := translateCmd.Flags()
	flags.StringVarP(&inputFile, "input", "i", "", "Input file to translate")
	flags.StringVarP(&outputFile, "output", "o", "", "Output file for the translation (default stdout)")
	flags.StringVarP(&sourceLang, "source", "s", "", "Source language name (required)")
	flags.StringVarP(&targetLang, "target", "t", "", "Target language name (required)")
	flags.StringP("credentials", "c", "", "Path to Google Cloud credentials (google provider)")
	flags.StringP("project", "p", "", "Google Cloud Project ID (google provider)")

	viper.BindPFlag("google.credentials", flags.Lookup("credentials"))
	viper.BindPFlag("google.project_id", flags.Lookup("project"))

	translateCmd.MarkFlagRequired("source")
	translateCmd.MarkFlagRequired("target")
}
