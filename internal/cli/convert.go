package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vdparikh/roman"
)

func newEncodeCmd(a *app) *cobra.Command {
	var lower bool

	cmd := &cobra.Command{
		Use:   "encode N...",
		Short: "Print the canonical numeral for each integer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				n, err := strconv.ParseUint(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("encode %q: not an unsigned integer", arg)
				}

				digits, err := roman.FromInt(n)
				if err != nil {
					return fmt.Errorf("encode %q: %w", arg, err)
				}
				a.log.Debug("encoded", zap.Uint64("n", n), zap.Int("digits", len(digits)))

				if lower {
					fmt.Fprintln(out, digits.Lower())
				} else {
					fmt.Fprintln(out, digits.String())
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&lower, "lower", false, "print lowercase numerals")
	return cmd
}

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode GLYPHS...",
		Short: "Map each character to digits and print the value",
		Long: "Each argument is mapped glyph by glyph and the resulting digits are\n" +
			"summed with subtractive pairs. Non-canonical input is accepted.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				digits, err := mapGlyphs(arg)
				if err != nil {
					return fmt.Errorf("decode %q: %w", arg, err)
				}
				v := roman.ValueOf[uint64](digits)
				a.log.Debug("decoded", zap.String("input", arg), zap.Stringer("digits", digits), zap.Uint64("value", v))
				fmt.Fprintln(out, v)
			}
			return nil
		},
	}
}

func newGlyphCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "glyph CHAR...",
		Short: "Print the digits a single character denotes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				runes := []rune(arg)
				if len(runes) != 1 {
					return fmt.Errorf("glyph %q: expected exactly one character", arg)
				}

				digits, err := roman.FromChar(runes[0])
				if err != nil {
					return fmt.Errorf("glyph %q: %w", arg, err)
				}
				a.log.Debug("glyph", zap.String("char", arg), zap.Int("digits", len(digits)))

				fmt.Fprintf(out, "%s\t%d\n", digits, digits.Value())
			}
			return nil
		},
	}
}

// mapGlyphs concatenates the expansion of every character in s.
func mapGlyphs(s string) (roman.Digits, error) {
	var out roman.Digits
	for _, r := range s {
		ds, err := roman.FromChar(r)
		if err != nil {
			return nil, err
		}
		out = append(out, ds...)
	}
	return out, nil
}
