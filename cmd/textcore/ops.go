package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wygulmage/bytestring-text-core/text"
)

func newLengthCmd() *cobra.Command {
	var (
		inBytes bool
		atMost  int
	)

	cmd := &cobra.Command{
		Use:   "length [text]",
		Short: "Count scalar values (or bytes) in the input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			switch {
			case inBytes:
				fmt.Fprintln(cmd.OutOrStdout(), t.Len())
			case atMost >= 0:
				fmt.Fprintln(cmd.OutOrStdout(), t.CompareRuneCount(atMost))
			default:
				fmt.Fprintln(cmd.OutOrStdout(), t.RuneCount())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&inBytes, "bytes", false, "count bytes instead of scalar values")
	cmd.Flags().IntVar(&atMost, "at-most", -1, "print -1/0/1 comparing the count against this bound without counting past it")
	return cmd
}

func newTakeCmd() *cobra.Command {
	var (
		count   int
		fromEnd bool
	)

	cmd := &cobra.Command{
		Use:   "take [text]",
		Short: "Keep the first (or last) n scalar values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if fromEnd {
				t = t.TakeEnd(count)
			} else {
				t = t.Take(count)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of scalar values")
	cmd.Flags().BoolVar(&fromEnd, "end", false, "operate on the end of the input")
	_ = cmd.MarkFlagRequired("count")
	return cmd
}

func newDropCmd() *cobra.Command {
	var (
		count   int
		fromEnd bool
	)

	cmd := &cobra.Command{
		Use:   "drop [text]",
		Short: "Remove the first (or last) n scalar values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if fromEnd {
				t = t.DropEnd(count)
			} else {
				t = t.Drop(count)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of scalar values")
	cmd.Flags().BoolVar(&fromEnd, "end", false, "operate on the end of the input")
	_ = cmd.MarkFlagRequired("count")
	return cmd
}

func newSplitCmd() *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "split [text]",
		Short: "Split after the first n scalar values, printing both halves",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			prefix, suffix := t.SplitAt(index)
			fmt.Fprintln(cmd.OutOrStdout(), prefix.String())
			fmt.Fprintln(cmd.OutOrStdout(), suffix.String())
			return nil
		},
	}

	cmd.Flags().IntVarP(&index, "at", "n", 0, "split position in scalar values")
	_ = cmd.MarkFlagRequired("at")
	return cmd
}

func newReverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reverse [text]",
		Short: "Reverse the order of scalar values",
		Long: `Reverse the order of scalar values.

Reversal is rune-granular: each character's multi-byte encoding stays
intact. Combining marks are reordered along with everything else, so
the result may render differently while remaining valid UTF-8.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Reverse().String())
			return nil
		},
	}
}

func newFilterCmd() *cobra.Command {
	var (
		class  string
		invert bool
	)

	cmd := &cobra.Command{
		Use:   "filter [text]",
		Short: "Keep only scalar values in a rune class",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := classPredicate(class, invert)
			if err != nil {
				return err
			}
			t, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Filter(p).String())
			return nil
		},
	}

	cmd.Flags().StringVar(&class, "class", "letter", "rune class: letter, digit, lower, upper, space, punct")
	cmd.Flags().BoolVar(&invert, "invert", false, "keep values outside the class instead")
	return cmd
}

func newTrimCmd() *cobra.Command {
	var (
		class  string
		invert bool
		left   bool
		right  bool
	)

	cmd := &cobra.Command{
		Use:   "trim [text]",
		Short: "Drop leading and/or trailing scalar values in a rune class",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := classPredicate(class, invert)
			if err != nil {
				return err
			}
			t, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			both := !left && !right
			if left || both {
				t = t.DropWhile(p)
			}
			if right || both {
				t = t.DropWhileEnd(p)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&class, "class", "space", "rune class: letter, digit, lower, upper, space, punct")
	cmd.Flags().BoolVar(&invert, "invert", false, "trim values outside the class instead")
	cmd.Flags().BoolVar(&left, "left", false, "trim only the front")
	cmd.Flags().BoolVar(&right, "right", false, "trim only the end")
	return cmd
}

func newHeadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "head [text]",
		Short: "Print the first scalar value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			r, err := t.Head()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text.Singleton(r).String())
			return nil
		},
	}
}

func newLastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "last [text]",
		Short: "Print the final scalar value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			r, err := t.Last()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text.Singleton(r).String())
			return nil
		},
	}
}

func newTailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tail [text]",
		Short: "Print the input without its first scalar value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			rest, err := t.Tail()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rest.String())
			return nil
		},
	}
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [text]",
		Short: "Print the input without its final scalar value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			rest, err := t.Init()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rest.String())
			return nil
		},
	}
}
