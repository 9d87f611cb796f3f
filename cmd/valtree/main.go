// Command valtree validates YAML documents against a rule-tree descriptor and
// exports the synthesized JSON Schema.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	valtree "github.com/valtree/valtree"
	"github.com/valtree/valtree/internal/blueprint"
)

var (
	schemaFile string
	dataFile   string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "valtree",
	Short:         "Validate configuration documents against rule-tree schemas",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a YAML document against a schema descriptor",
	RunE: func(cmd *cobra.Command, args []string) error {
		rule, err := loadRule()
		if err != nil {
			return err
		}
		raw, err := os.ReadFile(dataFile)
		if err != nil {
			return fmt.Errorf("reading data: %w", err)
		}
		var data any
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("decoding data: %w", err)
		}
		if rule.Validate(data) {
			log.Info("document is valid", "schema", schemaFile, "data", dataFile)
			return nil
		}
		messages := rule.Errors().Messages()
		log.Error("document is invalid", "errors", len(messages))
		for _, msg := range messages {
			fmt.Fprintln(os.Stderr, color.RedString(msg))
		}
		os.Exit(1)
		return nil
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema synthesized from a schema descriptor",
	RunE: func(cmd *cobra.Command, args []string) error {
		rule, err := loadRule()
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(rule.Schema(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling schema: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}

func loadRule() (valtree.Rule, error) {
	f, err := os.Open(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("opening schema descriptor: %w", err)
	}
	defer f.Close()
	rule, err := blueprint.Load(f)
	if err != nil {
		return nil, err
	}
	log.Debug("built rule tree", "kind", rule.Name())
	return rule, nil
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&schemaFile, "schema", "s", "", "schema descriptor file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = rootCmd.MarkPersistentFlagRequired("schema")

	validateCmd.Flags().StringVarP(&dataFile, "file", "f", "", "data document to validate (YAML)")
	_ = validateCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(validateCmd, schemaCmd)

	cobra.OnInitialize(func() {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	})

	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
