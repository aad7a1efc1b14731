package options

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// PickOptions collect what goes into the pool for a one-shot pick.
type PickOptions struct {
	Categories []string
	Meals      []string
	Seed       *uint64
	Quiet      bool
}

func AddPickArgs(cmd *cobra.Command, o *PickOptions) {
	cmd.Flags().StringArrayVarP(&o.Categories, "category", "c", nil,
		"Add a category to the pool. Repeatable.")
	cmd.Flags().StringArrayVarP(&o.Meals, "meal", "m", nil,
		"Add a custom meal to the pool. Repeatable.")
	cmd.Flags().Var(&seedValue{target: &o.Seed}, "seed",
		"Seed the random draw for a reproducible pick.")
	cmd.Flags().BoolVarP(&o.Quiet, "quiet", "q", false,
		"Print only the picked meal.")
}

// seedValue leaves the target nil until the flag is set.
type seedValue struct {
	target **uint64
}

var _ pflag.Value = (*seedValue)(nil)

func (s *seedValue) String() string {
	if s.target == nil || *s.target == nil {
		return ""
	}
	return strconv.FormatUint(**s.target, 10)
}

func (s *seedValue) Set(v string) error {
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return err
	}
	*s.target = &n
	return nil
}

func (*seedValue) Type() string {
	return "uint64"
}
