// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// AddOptions captures the task text for add commands.
type AddOptions struct {
	Text string
}

// GetOptions selects what the today/history commands show.
type GetOptions struct {
	ShowID  bool
	History bool
	Date    string
}

// AddGetArgs wires display flags on the provided command.
func AddGetArgs(cmd *cobra.Command, o *GetOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "id", false,
		"Show task ids.")
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		`Show a specific day, example: --date="2026-08-26".`)
}

// IDOptions captures a task id (or unique prefix).
type IDOptions struct {
	ID string
}

// ReflectionOptions captures the optional finalize reflection.
type ReflectionOptions struct {
	Reflection string
}

// AddReflectionArgs wires the reflection flag on the provided command.
func AddReflectionArgs(cmd *cobra.Command, o *ReflectionOptions) {
	cmd.Flags().StringVarP(&o.Reflection, "reflection", "r", "",
		"Attach a reflection on the day.")
}

// CountsOptions selects the aggregation window for counts.
type CountsOptions struct {
	Date string
	All  bool
}

// AddCountsArgs wires aggregation flags on the provided command.
func AddCountsArgs(cmd *cobra.Command, o *CountsOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		`Count a specific day, example: --date="2026-08-26". Defaults to today.`)
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Count across the whole history.")
}

// ClearOptions guards the destructive clear command.
type ClearOptions struct {
	Confirm bool
}

// AddClearArgs wires the confirmation flag on the provided command.
func AddClearArgs(cmd *cobra.Command, o *ClearOptions) {
	cmd.Flags().BoolVar(&o.Confirm, "confirm", false,
		"Actually clear all stored history.")
}
