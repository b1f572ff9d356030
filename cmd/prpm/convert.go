package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/prpm-io/prpm/pkg/canonical"
	"github.com/prpm-io/prpm/pkg/converters"
	"github.com/prpm-io/prpm/pkg/detect"
	"github.com/prpm-io/prpm/pkg/logger"
	"github.com/prpm-io/prpm/pkg/parsers"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>...",
	Short: "Convert configuration files to another editor format",
	Long: `Convert one or more configuration files to a target editor format.

The source format is auto-detected unless --from is given. Output goes to
stdout, or to --output-dir with one file per input. Conversions whose
quality score falls below --min-quality are rejected.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		target, _ := cmd.Flags().GetString("to")
		if target == "" {
			return errors.New("--to is required")
		}
		eco, err := lookupEcosystem(target)
		if err != nil {
			return err
		}
		if !eco.Convert {
			return errors.Errorf("format %q is detection-only and cannot be a conversion target", target)
		}

		outputDir, _ := cmd.Flags().GetString("output-dir")
		minQuality := viper.GetInt("min-quality")
		if cmd.Flags().Changed("min-quality") {
			minQuality, _ = cmd.Flags().GetInt("min-quality")
		}

		var merr *multierror.Error
		for _, path := range args {
			if err := convertFile(cmd, path, eco, outputDir, minQuality); err != nil {
				merr = multierror.Append(merr, errors.Wrapf(err, "converting %s", path))
				logger.G(ctx).WithField("file", path).WithError(err).Warn("conversion failed")
			}
		}
		return merr.ErrorOrNil()
	},
}

func convertFile(cmd *cobra.Command, path string, eco *ecosystem, outputDir string, minQuality int) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "failed to read input")
	}

	pkg, err := parseContent(cmd, path, string(content))
	if err != nil {
		return err
	}

	result, err := runConverter(cmd, pkg, eco.Format)
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		out.Warning(warning)
	}
	if result.QualityScore < minQuality {
		return errors.Errorf("quality score %d below minimum %d", result.QualityScore, minQuality)
	}

	if outputDir == "" {
		fmt.Fprint(cmd.OutOrStdout(), result.Content)
		return nil
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	dest := filepath.Join(outputDir, base+eco.Extension)
	if err := os.WriteFile(dest, []byte(result.Content), 0o644); err != nil {
		return errors.Wrap(err, "failed to write output")
	}
	out.Success(fmt.Sprintf("%s -> %s (quality %d)", path, dest, result.QualityScore))
	return nil
}

// parseContent resolves the source format (explicit or detected) and parses
// the raw text into a canonical package.
func parseContent(cmd *cobra.Command, path, content string) (*canonical.Package, error) {
	source, _ := cmd.Flags().GetString("from")
	if source == "" {
		detected := detect.Detect(content)
		if detected == canonical.FormatUnknown {
			return nil, errors.New("could not detect source format; pass --from")
		}
		source = string(detected)
		logger.G(cmd.Context()).WithFields(map[string]any{
			"file":   path,
			"format": source,
		}).Debug("detected source format")
	}

	eco, err := lookupEcosystem(source)
	if err != nil {
		return nil, err
	}
	if eco.Parse == nil {
		return nil, errors.Errorf("format %q is detection-only and cannot be parsed", source)
	}

	return eco.Parse(content, metadataFromFlags(cmd, path)), nil
}

// metadataFromFlags builds the package identity from flags, defaulting the
// name to the input file's base name.
func metadataFromFlags(cmd *cobra.Command, path string) parsers.Metadata {
	name, _ := cmd.Flags().GetString("name")
	if name == "" && path != "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	id, _ := cmd.Flags().GetString("id")
	version, _ := cmd.Flags().GetString("pkg-version")
	description, _ := cmd.Flags().GetString("description")
	author, _ := cmd.Flags().GetString("author")
	tags, _ := cmd.Flags().GetStringSlice("tags")

	return parsers.Metadata{
		ID:          id,
		Name:        name,
		Version:     version,
		Description: description,
		Author:      author,
		Tags:        tags,
	}
}

// runConverter dispatches to the target converter with its format-specific
// configuration taken from flags.
func runConverter(cmd *cobra.Command, pkg *canonical.Package, target canonical.Format) (*converters.Result, error) {
	switch target {
	case canonical.FormatCursor:
		globs, _ := cmd.Flags().GetStringSlice("globs")
		alwaysApply, _ := cmd.Flags().GetBool("always-apply")
		return converters.ConvertCursor(pkg, &converters.CursorOptions{
			Globs:       globs,
			AlwaysApply: alwaysApply,
		})
	case canonical.FormatKiro:
		inclusion, _ := cmd.Flags().GetString("inclusion")
		pattern, _ := cmd.Flags().GetString("file-match-pattern")
		domain, _ := cmd.Flags().GetString("domain")
		return converters.ConvertKiro(pkg, &converters.KiroOptions{
			Inclusion:        converters.InclusionMode(inclusion),
			FileMatchPattern: pattern,
			Domain:           domain,
		})
	case canonical.FormatCopilot:
		return converters.ConvertCopilot(pkg)
	case canonical.FormatClaude:
		return converters.ConvertClaude(pkg)
	default:
		return nil, errors.Errorf("no converter for format %q", target)
	}
}

func init() {
	convertCmd.Flags().String("from", "", "Source format (auto-detected when omitted)")
	convertCmd.Flags().String("to", "", "Target format (required)")
	convertCmd.Flags().String("output-dir", "", "Write converted files here instead of stdout")
	convertCmd.Flags().Int("min-quality", 0, "Reject conversions scoring below this (0-100)")

	convertCmd.Flags().String("id", "", "Package id")
	convertCmd.Flags().String("name", "", "Package name (defaults to the input file name)")
	convertCmd.Flags().String("pkg-version", "", "Package version")
	convertCmd.Flags().String("description", "", "Package description")
	convertCmd.Flags().String("author", "", "Package author")
	convertCmd.Flags().StringSlice("tags", nil, "Package tags")

	convertCmd.Flags().StringSlice("globs", nil, "cursor: glob patterns the rule applies to")
	convertCmd.Flags().Bool("always-apply", false, "cursor: apply the rule in every context")
	convertCmd.Flags().String("inclusion", "", "kiro: inclusion mode (always, manual, fileMatch)")
	convertCmd.Flags().String("file-match-pattern", "", "kiro: pattern for fileMatch inclusion")
	convertCmd.Flags().String("domain", "", "kiro: domain label overriding the document title")

	viper.SetDefault("min-quality", 0)
}
