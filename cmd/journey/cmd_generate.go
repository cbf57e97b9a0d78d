package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"donorjourney/internal/articulation"
	"donorjourney/internal/journey"
	"donorjourney/internal/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (c *cli) generateCmd() *cobra.Command {
	var (
		profilePath string
		asJSON      bool
		markdown    bool
		inspect     bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a personalized journey for a donor profile",
		Long: `Reads a donor profile (YAML or JSON) and prints the generated journey.

Example profile:
  name: Alex
  language: English
  location: Central Singapore
  interests: ["Children & Youth Services"]
  donationCapacity: {min: 10, max: 50}
  preferredChannels: [Email]
  consent: true`,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := readProfile(profilePath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			profile = profile.WithDefaults()
			if err := profile.Validate(); err != nil {
				return err
			}

			ctx, cancel := withTimeout(cmd.Context(), c.cfg.GetLLMTimeout())
			defer cancel()

			gen, err := c.generator(ctx)
			if err != nil {
				return err
			}
			j, err := gen.Generate(ctx, profile)
			if err != nil {
				return c.generationFailed(err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(j)
			}

			md := articulation.Journey(j, profile.Name)
			if markdown {
				fmt.Fprint(out, md)
			} else {
				fmt.Fprint(out, renderMarkdown(md))
			}
			if inspect {
				for _, f := range journey.Inspect(j, profile) {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", f)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&profilePath, "profile", "p", "", "Donor profile file (\"-\" for stdin)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the journey as JSON")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Print raw Markdown instead of rendering it")
	cmd.Flags().BoolVar(&inspect, "inspect", false, "Report quality findings on stderr")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}

// withTimeout bounds ctx by d. Zero or negative means no limit, matching the
// Gemini client's reading of llm.timeout.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// generationFailed logs the cause and returns the user-facing error.
func (c *cli) generationFailed(err error) error {
	kind, _ := journey.KindOf(err)
	c.logger.Error("Generation failed", zap.Stringer("kind", kind), zap.Error(err))
	return fmt.Errorf("%s (%s): %w", session.UserMessage, kind, err)
}

func (c *cli) promptCmd() *cobra.Command {
	var (
		profilePath string
		withSchema  bool
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the generation request for a donor profile without sending it",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := readProfile(profilePath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			profile = profile.WithDefaults()
			if err := profile.Validate(); err != nil {
				return err
			}
			cat, err := c.catalog()
			if err != nil {
				return err
			}
			req, err := journey.BuildRequest(profile, cat)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, req.Prompt)
			if withSchema {
				data, err := json.MarshalIndent(req.Schema, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode schema: %w", err)
				}
				fmt.Fprintf(out, "\n%s\n", data)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&profilePath, "profile", "p", "", "Donor profile file (\"-\" for stdin)")
	cmd.Flags().BoolVar(&withSchema, "schema", false, "Also print the response schema as JSON")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}
