package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/factorykit/furnaceline/pkg/line"
)

// catalogCommand creates the catalog command listing supported entity types.
func (c *CLI) catalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List supported furnace and belt types",
		Long: `List supported furnace and belt types with their throughput data,
plus the furnace count needed to saturate each belt with each furnace.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog()
		},
	}
}

// runCatalog prints the entity catalogs and the sizing matrix.
func runCatalog() error {
	fmt.Println(StyleTitle.Render("Furnaces"))
	for _, name := range line.FurnaceTypes() {
		speed, err := line.FurnaceType(name).Speed()
		if err != nil {
			return err
		}
		printKeyValue(name, fmt.Sprintf("speed %.1f · %.4f items/s", speed, speed/line.SmeltingTime))
	}

	printNewline()
	fmt.Println(StyleTitle.Render("Belts"))
	for _, name := range line.BeltTypes() {
		rate, err := line.BeltType(name).Throughput()
		if err != nil {
			return err
		}
		printKeyValue(name, fmt.Sprintf("%.1f items/s", rate))
	}

	printNewline()
	fmt.Println(StyleTitle.Render("Furnaces per full belt"))
	for _, belt := range line.BeltTypes() {
		for _, furnace := range line.FurnaceTypes() {
			needed, err := line.FurnacesPerFullBelt(line.FurnaceType(furnace), line.BeltType(belt))
			if err != nil {
				return err
			}
			printKeyValue(belt+" / "+furnace, fmt.Sprintf("%.1f", needed))
		}
	}

	printNewline()
	printNextStep("Generate", "furnaceline generate --furnace stone-furnace --belt transport-belt")
	return nil
}
