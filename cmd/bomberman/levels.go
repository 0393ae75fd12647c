package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bomberclassic/pkg/core"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level table",
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	table := core.DefaultLevelTable()
	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-4s %-14s %2s  %s\n", "No", "Bonus", "N", "Enemies")
	fmt.Printf("  %-4s %-14s %2s  %s\n", "--", "-----", "-", "-------")
	for i, content := range table {
		var parts []string
		for s, n := range content.Monsters {
			if n > 0 {
				parts = append(parts, fmt.Sprintf("%s×%d", core.Species(s), n))
			}
		}
		fmt.Printf("  %-4d %-14s %2d  %s\n", i+1, content.Bonus, content.EnemyCount(), strings.Join(parts, " "))
	}
	fmt.Println()
	fmt.Printf("Levels above %d reuse the last entry. Use 'bomberman play --level <n>' to start there.\n", len(table))
}
