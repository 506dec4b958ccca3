package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/fit-scorer/internal/industry"
	"github.com/jonathan/fit-scorer/internal/ingestion"
	"github.com/jonathan/fit-scorer/internal/observability"
	"github.com/jonathan/fit-scorer/internal/parsing"
	"github.com/jonathan/fit-scorer/internal/policy"
	"github.com/jonathan/fit-scorer/internal/types"
)

type industryFlags struct {
	cvFile          string
	jdFile          string
	companyInfoFile string
	years           int
	currentIndustry string
	outputFile      string
}

func newIndustryCmd(c *cli) *cobra.Command {
	f := &industryFlags{}
	cmd := &cobra.Command{
		Use:   "industry",
		Short: "Assess how well a candidate transfers into the job's industry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runIndustry(cmd, c, f)
		},
	}

	cmd.Flags().StringVar(&f.cvFile, "cv", "", "Path to the CV (text or HTML)")
	cmd.Flags().StringVar(&f.jdFile, "jd", "", "Path to the job description (text or HTML)")
	cmd.Flags().StringVar(&f.companyInfoFile, "company-info", "", "Path to a file describing the company")
	cmd.Flags().IntVar(&f.years, "years", 0, "Years of experience, overriding what the CV states")
	cmd.Flags().StringVar(&f.currentIndustry, "current-industry", "", "The candidate's current industry")
	cmd.Flags().StringVarP(&f.outputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	_ = cmd.MarkFlagRequired("cv")
	_ = cmd.MarkFlagRequired("jd")
	return cmd
}

func runIndustry(cmd *cobra.Command, c *cli, f *industryFlags) error {
	a, err := c.load()
	if err != nil {
		return err
	}
	defer a.close()

	cv, err := ingestion.ReadDocument(f.cvFile)
	if err != nil {
		return fmt.Errorf("failed to read CV: %w", err)
	}
	jd, err := ingestion.ReadDocument(f.jdFile)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}
	companyInfo, err := readOptional(f.companyInfoFile)
	if err != nil {
		return fmt.Errorf("failed to read company info: %w", err)
	}

	// candidate parsing never classifies priorities, so the rules are enough
	profile := parsing.NewExtractor(a.cat, policy.NewRuleClassifier(a.cat), a.logger).ParseCandidate(cv.Text)
	years := profile.YearsExperience
	if f.years > 0 {
		years = f.years
	}

	alignment := industry.NewScorer(a.cat).Assess(types.IndustryInput{
		Experience:      profile.ExperienceLines,
		Skills:          profile.AllSkills(),
		JobDescription:  jd.Text,
		CompanyInfo:     companyInfo,
		YearsExperience: years,
		CurrentIndustry: f.currentIndustry,
	})

	data, err := marshalOutput(alignment)
	if err != nil {
		return err
	}
	if a.cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintIndustry(&alignment)
	}
	return writeOutput(cmd, f.outputFile, data)
}
