package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/golemcloud/golem-examples/internal/branding"
	"github.com/golemcloud/golem-examples/internal/instantiate"
	"github.com/golemcloud/golem-examples/internal/model"
	"github.com/golemcloud/golem-examples/internal/registry"
)

var (
	newExample     string
	newLanguage    string
	newPackageName string
	newTarget      string
)

var newCmd = &cobra.Command{
	Use:   "new <component-name>",
	Short: "Create a new Golem component from a built-in example",
	Long: `Create a new Golem component from a built-in example.

Select the example by name with --example, or pick the default example of a
guest language with --language. The component is written to
<target>/<component-name>; the target defaults to the current directory.

Examples:
  ` + branding.CLIName() + ` new my-counter --language go
  ` + branding.CLIName() + ` new shopping-cart -e rust-default -p acme:shop`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVarP(&newExample, "example", "e", "", "Name of the example to use")
	newCmd.Flags().StringVarP(&newLanguage, "language", "l", "", "Use the default example of this guest language")
	newCmd.Flags().StringVarP(&newPackageName, "package-name", "p", "", "Package name of the generated component (namespace:name)")
	newCmd.Flags().StringVar(&newTarget, "target", "", "Directory to create the component in (default: current directory)")
	newCmd.MarkFlagsMutuallyExclusive("example", "language")
	newCmd.MarkFlagsOneRequired("example", "language")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	ex, err := selectExample(s.index, newExample, newLanguage)
	if err != nil {
		return err
	}

	pkg := s.settings.DefaultPackage
	if newPackageName != "" {
		pkg, err = model.ParsePackageName(newPackageName)
		if err != nil {
			return err
		}
	}

	target := newTarget
	if target == "" {
		target, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving current directory: %w", err)
		}
	}

	instructions, err := instantiate.New(s.catalog, logger).Instantiate(ex, model.ExampleParameters{
		ComponentName: model.ComponentName(args[0]),
		PackageName:   pkg,
		TargetPath:    target,
	})
	if err != nil {
		return fmt.Errorf("failed to instantiate example %s: %w", ex.Name, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), instructions)
	return nil
}

// selectExample resolves the --example or --language choice to an example.
func selectExample(idx *registry.Index, exampleName, language string) (model.Example, error) {
	if exampleName != "" {
		ex, ok := idx.Find(model.ExampleName(exampleName))
		if !ok {
			return model.Example{}, fmt.Errorf("unknown example %s. Use the list-examples command to see the available examples", exampleName)
		}
		return ex, nil
	}

	if language == "" {
		return model.Example{}, fmt.Errorf("either --example or --language is required")
	}
	lang, err := model.ParseGuestLanguage(language)
	if err != nil {
		return model.Example{}, err
	}
	ex, ok := idx.Default(lang)
	if !ok {
		return model.Example{}, fmt.Errorf("no default example for %s. Use the list-examples command to see the available examples", lang.Name())
	}
	return ex, nil
}
