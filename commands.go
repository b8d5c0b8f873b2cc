package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/go-base32/go-base32/lib/base32"
	"github.com/go-base32/go-base32/lib/config"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "go-base32 [flags] [command]",
		Short: "encode and decode bytes with a human-friendly Base32 alphabet",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			config.InitConfig()
			if format, err := cmd.Flags().GetString("format"); err == nil && format != "" {
				config.ToolConfigProperties.Format = format
			}
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&config.CfgFile, "config", "",
		"config file (default $HOME/.go-base32/config.yaml)")
	cmd.PersistentFlags().StringP("format", "f", "",
		"payload format: hex, text or raw")

	cmd.AddCommand(NewEncodeCmd())
	cmd.AddCommand(NewDecodeCmd())
	cmd.AddCommand(NewValidCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

func NewEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [payload]",
		Short: "encode a byte payload to Base32 digits",
		Long:  "Encode a byte payload to Base32 digits. The payload is the argument, or stdin when omitted, interpreted per --format.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  cmdEncodeRun,
	}
}

func cmdEncodeRun(_ *cobra.Command, args []string) error {
	data, err := readPayload(args)
	if err != nil {
		return err
	}
	fmt.Println(base32.Encode(data).String())
	return nil
}

func NewDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <code>",
		Short: "decode Base32 digits back to bytes",
		Args:  cobra.ExactArgs(1),
		RunE:  cmdDecodeRun,
	}
}

func cmdDecodeRun(_ *cobra.Command, args []string) error {
	code, err := base32.NewCode(args[0])
	if err != nil {
		return err
	}
	return writePayload(os.Stdout, code.DecodeBytes())
}

func NewValidCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "valid <code>",
		Short: "canonicalize a code, failing on invalid digits",
		Args:  cobra.ExactArgs(1),
		RunE:  cmdValidRun,
	}
}

func cmdValidRun(_ *cobra.Command, args []string) error {
	code, err := base32.NewCode(args[0])
	if err != nil {
		return err
	}
	fmt.Println(code.String())
	return nil
}

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "version",
		RunE: cmdVersionRun,
	}
}

func cmdVersionRun(_ *cobra.Command, _ []string) error {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return errors.New("error during get version")
	}
	fmt.Println(info.Main.Version)
	return nil
}

// readPayload reads the payload from args[0] or stdin and interprets
// it according to the configured format.
func readPayload(args []string) ([]byte, error) {
	var raw []byte
	if len(args) > 0 {
		raw = []byte(args[0])
	} else {
		var err error
		raw, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, oops.Wrapf(err, "reading payload from stdin")
		}
	}

	switch format := config.ToolConfigProperties.Format; format {
	case config.FormatHex:
		data, err := hex.DecodeString(strings.TrimSpace(string(raw)))
		if err != nil {
			return nil, oops.Wrapf(err, "payload is not valid hex")
		}
		return data, nil
	case config.FormatText, config.FormatRaw:
		return raw, nil
	default:
		return nil, oops.With("format", format).Errorf("unknown payload format")
	}
}

// writePayload prints data to w according to the configured format.
// hex and text append a newline; raw writes the bytes untouched.
func writePayload(w io.Writer, data []byte) error {
	switch format := config.ToolConfigProperties.Format; format {
	case config.FormatHex:
		_, err := fmt.Fprintln(w, hex.EncodeToString(data))
		return err
	case config.FormatText:
		_, err := fmt.Fprintln(w, string(data))
		return err
	case config.FormatRaw:
		if _, err := w.Write(data); err != nil {
			return oops.Wrapf(err, "writing decoded payload")
		}
		return nil
	default:
		return oops.With("format", format).Errorf("unknown payload format")
	}
}
