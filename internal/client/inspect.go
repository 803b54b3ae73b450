package client

import (
	"fmt"

	"github.com/mdouchement/bwimport/pkg/libbw"
)

// Inspect decrypts an export file and prints its structure without importing it.
func Inspect(filename string) error {
	vault, err := convert(filename)
	if err != nil {
		return err
	}

	fmt.Println(vault.Root.Name)
	for _, group := range vault.Groups {
		fmt.Printf("+ %s\n", group.Name)
		printEntries(vault, group)
	}
	printEntries(vault, vault.Root)

	fmt.Printf("%d groups, %d entries\n", len(vault.Groups), len(vault.Entries))
	return nil
}

func printEntries(vault *libbw.Database, group *libbw.Group) {
	for _, entry := range vault.Entries {
		if entry.Group != group {
			continue
		}

		details := ""
		if entry.Username != "" {
			details = " (" + entry.Username + ")"
		}
		if len(entry.Tags) > 0 {
			details += fmt.Sprintf(" %v", entry.Tags)
		}
		fmt.Printf("  - %s%s\n", entry.Title, details)
	}
}
