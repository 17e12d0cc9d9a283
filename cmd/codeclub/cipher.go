package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/codeclub/internal/cipher"
)

const defaultCipher = "caesar"

var (
	cipherName  string
	cipherKey   string
	cipherShift int
	cipherRails int
)

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [text...]",
		Short: "Encrypt a message (reads stdin without arguments)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, args, false)
		},
	}
	addCipherFlags(cmd)
	return cmd
}

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [text...]",
		Short: "Decrypt a message with a known key (reads stdin without arguments)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, args, true)
		},
	}
	addCipherFlags(cmd)
	return cmd
}

func addCipherFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&cipherName, "cipher", "c", defaultCipher, "cipher name (see: codeclub ciphers)")
	cmd.Flags().StringVarP(&cipherKey, "key", "k", "", "keyword for keyword and vigenere ciphers")
	cmd.Flags().IntVarP(&cipherShift, "shift", "s", 3, "shift for the caesar cipher")
	cmd.Flags().IntVar(&cipherRails, "rails", 3, "rails for the rail fence cipher")
}

func runTransform(cmd *cobra.Command, args []string, decrypt bool) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}
	a, err := resolveAlphabet()
	if err != nil {
		return err
	}
	op, err := cipher.Get(strings.ToLower(cipherName))
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(cipher.Names(), ", "))
	}
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}

	params := cipher.Params{Key: cipherKey, Shift: cipherShift, Rails: cipherRails, Alphabet: a}
	var out string
	if decrypt {
		out, err = op.Decrypt(text, params)
	} else {
		out, err = op.Encrypt(text, params)
	}
	if err != nil {
		return fmt.Errorf("%s failed: %w", op.Name(), err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newCiphersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ciphers",
		Short: "List available ciphers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, op := range cipher.List() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", op.Name(), op.Description()); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}
			return nil
		},
	}
}
