// Package cmd provides the CLI commands for cavetimer.
//
// This software is a derivative work based on Zeit (https://github.com/mrusme/zeit)
// Original work copyright (c) マリウス (mrusme)
// Modifications copyright (c) Manav Panchal
//
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.
package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/cavetimer/internal/caves"
	"github.com/manav03panchal/cavetimer/internal/config"
)

// Board flags shared by every command that shows caves.
var (
	flagStart    []string
	flagCooldown []string
)

func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&flagStart, "start", "s", nil,
		"Start time for a cave as ID=TIME (e.g. 1=08:30, 2=now, 3='20 minutes ago')")
	cmd.Flags().StringArrayVarP(&flagCooldown, "cooldown", "c", nil,
		"Cooldown for a cave as ID=HH:MM (e.g. 1=01:00)")

	_ = cmd.RegisterFlagCompletionFunc("start", completeCaveIDs)
	_ = cmd.RegisterFlagCompletionFunc("cooldown", completeCaveIDs)
}

// initialBoard builds the board described by the config and the board flags.
func initialBoard() (caves.Board, error) {
	return ctx.ApplyAssignments(ctx.NewBoard(), flagStart, flagCooldown)
}

// completeCaveIDs completes the ID= prefix of board flags.
func completeCaveIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	count := caves.DefaultCount
	if cfg, err := config.Load(flagConfig); err == nil {
		count = cfg.Board.CaveCount
	}

	var completions []string
	for i := 1; i <= count; i++ {
		id := strconv.Itoa(i) + "="
		if strings.HasPrefix(id, toComplete) {
			completions = append(completions, id)
		}
	}
	return completions, cobra.ShellCompDirectiveNoSpace | cobra.ShellCompDirectiveNoFileComp
}
