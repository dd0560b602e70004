package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/polski/internal/catalog"
)

var conceptCmd = &cobra.Command{
	Use:   "concept",
	Short: "Browse and edit the concept catalog",
}

var conceptListCmd = &cobra.Command{
	Use:   "list",
	Short: "List concepts (optionally filtered by category or level)",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		level, _ := cmd.Flags().GetString("level")
		all, _ := cmd.Flags().GetBool("all")

		f := catalog.ConceptFilter{ActiveOnly: !all}
		if category != "" {
			c, ok := catalog.ParseCategory(category)
			if !ok {
				return fmt.Errorf("unknown category %q (want grammar or vocabulary)", category)
			}
			f.Category = c
		}
		if level != "" {
			l, ok := catalog.ParseLevel(level)
			if !ok {
				return fmt.Errorf("unknown level %q (want A1..C2)", level)
			}
			f.Difficulty = l
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		concepts, err := st.ConceptRepo().Find(cmd.Context(), f)
		if err != nil {
			return fmt.Errorf("list concepts: %w", err)
		}
		if len(concepts) == 0 {
			fmt.Println("No concepts found. Use `polski import` to load a catalog.")
			return nil
		}

		fmt.Printf("%-36s  %-32s  %-10s  %-5s  %s\n", "ID", "Name", "Category", "Level", "Tags")
		fmt.Println(strings.Repeat("─", 100))
		for _, c := range concepts {
			fmt.Printf("%-36s  %-32s  %-10s  %-5s  %s\n",
				c.ID, truncate(c.Name, 32), c.Category, c.Difficulty, strings.Join(c.Tags, ","))
		}
		fmt.Printf("\n%d concepts\n", len(concepts))
		return nil
	},
}

var conceptAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a single concept",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		level, _ := cmd.Flags().GetString("level")
		description, _ := cmd.Flags().GetString("description")
		examples, _ := cmd.Flags().GetStringArray("example")
		tags, _ := cmd.Flags().GetStringArray("tag")

		c := catalog.Concept{
			Name:        strings.TrimSpace(args[0]),
			Description: description,
			Examples:    examples,
			Tags:        tags,
			Active:      true,
		}
		var ok bool
		if c.Category, ok = catalog.ParseCategory(category); !ok {
			return fmt.Errorf("unknown category %q", category)
		}
		if c.Difficulty, ok = catalog.ParseLevel(level); !ok {
			return fmt.Errorf("unknown level %q", level)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		existing, err := st.ConceptRepo().FindByName(cmd.Context(), c.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("concept %q already exists (%s)", c.Name, existing.ID)
		}
		created, err := st.ConceptRepo().Create(cmd.Context(), c)
		if err != nil {
			return fmt.Errorf("create concept: %w", err)
		}
		fmt.Println(created.ID)
		return nil
	},
}

func init() {
	conceptListCmd.Flags().String("category", "", "Filter by category (grammar or vocabulary)")
	conceptListCmd.Flags().String("level", "", "Filter by CEFR level (A1..C2)")
	conceptListCmd.Flags().Bool("all", false, "Include inactive concepts")

	conceptAddCmd.Flags().String("category", string(catalog.CategoryVocabulary), "Category (grammar or vocabulary)")
	conceptAddCmd.Flags().String("level", string(catalog.LevelA1), "CEFR level")
	conceptAddCmd.Flags().String("description", "", "Short description")
	conceptAddCmd.Flags().StringArray("example", nil, "Example sentence (repeatable)")
	conceptAddCmd.Flags().StringArray("tag", nil, "Tag (repeatable)")

	conceptCmd.AddCommand(conceptListCmd)
	conceptCmd.AddCommand(conceptAddCmd)
}
