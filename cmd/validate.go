package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"passportmrz/internal/config"
	"passportmrz/internal/verifier"
	"passportmrz/pkg/domain"
	"passportmrz/pkg/logger"
	"passportmrz/pkg/mrz"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errInvalidReport = errors.New("mrz report has invalid fields")

// validateCommand constructs the 'validate' subcommand that verifies an MRZ
// offline and prints the report as json.
func validateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validates a TD3 MRZ read from file or stdin and prints its report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			fieldsPath, _ := cmd.Flags().GetString("fields")
			checkerPath, _ := cmd.Flags().GetString("checker")
			allowExpired, _ := cmd.Flags().GetBool("allow-expired")

			input, err := readInput(cmd.InOrStdin(), args, fieldsPath, checkerPath)
			if err != nil {
				return err
			}

			options := verifier.NewOptions(cfg)
			if allowExpired {
				options.CheckExpiry = false
			}
			report, err := verifier.New(nil, getCountries(ctx, cfg), nil, options).Verify(ctx, input)
			if err != nil {
				return errors.Wrap(err, "could not verify mrz")
			}

			e := jx.Encoder{}
			report.Encode(&e)
			fmt.Fprintln(cmd.OutOrStdout(), e.String()) //nolint: errcheck

			if !report.Valid() {
				logger.Debug(ctx, "mrz report has invalid fields", zap.Strings("fields", report.InvalidFields()))

				return errInvalidReport
			}

			return nil
		},
	}

	cmd.Flags().String("fields", "", "JSON file with extracted fields; derived from the MRZ when empty")
	cmd.Flags().String("checker", "", "JSON file with checker output; computed from the MRZ when empty")
	cmd.Flags().Bool("allow-expired", false, "Do not fail documents past their expiry date")

	return cmd
}

func readInput(stdin io.Reader, args []string, fieldsPath, checkerPath string) (domain.VerificationInput, error) {
	var input domain.VerificationInput

	var raw []byte
	var err error
	if len(args) == 0 || args[0] == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(args[0])
	}
	if err != nil {
		return input, errors.Wrap(err, "could not read mrz")
	}
	input.MRZ = strings.TrimSpace(string(raw))

	if fieldsPath != "" {
		input.Fields = &mrz.Fields{}
		if err := readJSON(fieldsPath, input.Fields); err != nil {
			return input, errors.Wrap(err, "could not read fields")
		}
	}
	if checkerPath != "" {
		input.Checker = &mrz.CheckerReport{}
		if err := readJSON(checkerPath, input.Checker); err != nil {
			return input, errors.Wrap(err, "could not read checker output")
		}
	}

	return input, nil
}

func readJSON(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read file")
	}

	return errors.Wrap(json.Unmarshal(data, dst), "decode json")
}
