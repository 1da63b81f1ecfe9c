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
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/valpere/travelrelay/internal/probe"
)

var (
	checkURL     string
	checkTimeout time.Duration
)

var errCheckFailed = errors.New("server check failed")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that a running relay answers its health endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		ok := color.New(color.FgGreen)
		fail := color.New(color.FgRed)

		fmt.Fprintf(out, "Checking server at %s...\n", checkURL)

		status, err := probe.New(checkTimeout).Check(cmd.Context(), checkURL)
		if err != nil {
			var statusErr *probe.StatusError
			switch {
			case errors.As(err, &statusErr):
				fail.Fprintf(out, "✗ Server is running but returned status code: %d\n", statusErr.Code)
				fmt.Fprintf(out, "Response: %s\n", statusErr.Body)
			case errors.Is(err, probe.ErrUnreachable):
				fail.Fprintf(out, "✗ Cannot connect to server at %s\n", checkURL)
				fmt.Fprintln(out, "Make sure the server is running with: travelrelay serve")
			default:
				fail.Fprintf(out, "✗ Error checking server: %v\n", err)
			}
			fail.Fprintln(out, "Server check failed!")
			return errCheckFailed
		}

		ok.Fprintln(out, "✓ Server is running and accessible!")
		fmt.Fprintf(out, "Status: %s\n", status.Status)
		fmt.Fprintf(out, "Message: %s\n", status.Message)
		ok.Fprintln(out, "Server check passed!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkURL, "url", probe.DefaultURL, "Health endpoint to probe")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 5*time.Second, "Request timeout")
}
