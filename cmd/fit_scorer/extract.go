package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/fit-scorer/internal/ingestion"
	"github.com/jonathan/fit-scorer/internal/observability"
	"github.com/jonathan/fit-scorer/internal/parsing"
	"github.com/jonathan/fit-scorer/internal/schemas"
)

type extractFlags struct {
	jdFile          string
	companyInfoFile string
	outputFile      string
}

func newExtractCmd(c *cli) *cobra.Command {
	f := &extractFlags{}
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract prioritized requirements from a job description",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExtract(cmd, c, f)
		},
	}

	cmd.Flags().StringVar(&f.jdFile, "jd", "", "Path to the job description (text or HTML)")
	cmd.Flags().StringVar(&f.companyInfoFile, "company-info", "", "Path to a file describing the company")
	cmd.Flags().StringVarP(&f.outputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	_ = cmd.MarkFlagRequired("jd")
	return cmd
}

func runExtract(cmd *cobra.Command, c *cli, f *extractFlags) error {
	a, err := c.load()
	if err != nil {
		return err
	}
	defer a.close()

	jd, err := ingestion.ReadDocument(f.jdFile)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}
	companyInfo, err := readOptional(f.companyInfoFile)
	if err != nil {
		return fmt.Errorf("failed to read company info: %w", err)
	}

	ctx, cancel := a.withModelTimeout(cmd.Context())
	defer cancel()

	classifier, err := a.classifier(ctx)
	if err != nil {
		return err
	}
	extraction := parsing.NewExtractor(a.cat, classifier, a.logger).Extract(ctx, jd.Text, companyInfo)

	data, err := marshalOutput(extraction)
	if err != nil {
		return err
	}
	if err := schemas.ValidateExtraction(data); err != nil {
		var loadErr *schemas.SchemaLoadError
		if !errors.As(err, &loadErr) {
			return fmt.Errorf("extraction does not validate against schema: %w", err)
		}
		a.logger.Warn("could not validate extraction", zap.Error(err))
	}

	if a.cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintExtraction(extraction)
	}
	return writeOutput(cmd, f.outputFile, data)
}
