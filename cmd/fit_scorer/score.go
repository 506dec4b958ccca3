package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/fit-scorer/internal/db"
	"github.com/jonathan/fit-scorer/internal/ingestion"
	"github.com/jonathan/fit-scorer/internal/observability"
	"github.com/jonathan/fit-scorer/internal/schemas"
	"github.com/jonathan/fit-scorer/internal/types"
)

type scoreFlags struct {
	cvFile          string
	jdFile          string
	companyInfoFile string
	years           int
	currentIndustry string
	outputFile      string
}

func newScoreCmd(c *cli) *cobra.Command {
	f := &scoreFlags{}
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a CV against a job description",
		Long:  "Score a CV against a job description and print the fit breakdown as JSON that validates against the score_breakdown schema.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScore(cmd, c, f)
		},
	}

	cmd.Flags().StringVar(&f.cvFile, "cv", "", "Path to the CV (text or HTML)")
	cmd.Flags().StringVar(&f.jdFile, "jd", "", "Path to the job description (text or HTML)")
	cmd.Flags().StringVar(&f.companyInfoFile, "company-info", "", "Path to a file describing the company")
	cmd.Flags().IntVar(&f.years, "years", 0, "Years of experience, overriding what the CV states")
	cmd.Flags().StringVar(&f.currentIndustry, "current-industry", "", "The candidate's current industry")
	cmd.Flags().StringVarP(&f.outputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	cmd.Flags().String("database-url", "", "Postgres URL to persist the run (overrides DATABASE_URL)")
	_ = c.v.BindPFlag("database-url", cmd.Flags().Lookup("database-url"))

	_ = cmd.MarkFlagRequired("cv")
	_ = cmd.MarkFlagRequired("jd")
	return cmd
}

func runScore(cmd *cobra.Command, c *cli, f *scoreFlags) error {
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

	ctx, cancel := a.withModelTimeout(cmd.Context())
	defer cancel()

	engine, err := a.engine(ctx)
	if err != nil {
		return err
	}
	result := engine.Score(ctx, cv.Text, jd.Text, types.ScoreOptions{
		CompanyInfo:     companyInfo,
		YearsExperience: f.years,
		CurrentIndustry: f.currentIndustry,
	})

	data, err := marshalOutput(result)
	if err != nil {
		return err
	}
	if err := schemas.ValidateBreakdown(data); err != nil {
		var loadErr *schemas.SchemaLoadError
		if !errors.As(err, &loadErr) {
			return fmt.Errorf("score breakdown does not validate against schema: %w", err)
		}
		a.logger.Warn("could not validate score breakdown", zap.Error(err))
	}

	if a.cfg.DatabaseURL != "" {
		if err := saveRun(ctx, a, db.NewScoreRun(result, cv.Hash, jd.Hash)); err != nil {
			return err
		}
	}

	if a.cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintBreakdown(&result)
	}
	return writeOutput(cmd, f.outputFile, data)
}

func saveRun(ctx context.Context, a *app, run *db.ScoreRun) error {
	database, err := db.Connect(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to prepare database: %w", err)
	}
	if err := database.SaveScoreRun(ctx, run); err != nil {
		return err
	}
	a.logger.Info("score run saved", zap.String("id", run.ID.String()))
	return nil
}

// readOptional reads a cleaned document when path is set
func readOptional(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	return ingestion.ReadText(path)
}
