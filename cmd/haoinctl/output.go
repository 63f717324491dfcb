package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hong0506/haoin-tools-sub002/internal/app"
	"github.com/hong0506/haoin-tools-sub002/internal/domain"
)

func writeJSON(value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printToolViews(views []app.ToolView, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(views)
	}
	if len(views) == 0 {
		fmt.Println("no tools found")
		return nil
	}
	for _, view := range views {
		marker := " "
		if view.Favorited {
			marker = "*"
		}
		badge := ""
		if view.Badge != domain.BadgeNone {
			badge = fmt.Sprintf(" [%s]", view.Badge)
		}
		fmt.Printf("%s %-22s %-20s %s%s\n", marker, view.ID, view.Category, view.Title, badge)
	}
	return nil
}

func printFavorites(ids []string, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(map[string]any{"favorites": ids})
	}
	if len(ids) == 0 {
		fmt.Println("no favorites")
		return nil
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}

func printRecents(entries []domain.RecentTool, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(map[string]any{"recentTools": entries})
	}
	if len(entries) == 0 {
		fmt.Println("no recent tools")
		return nil
	}
	for _, entry := range entries {
		fmt.Printf("%-22s %-30s %s\n", entry.ID, entry.Title, entry.AccessedAt().Format(time.RFC3339))
	}
	return nil
}
