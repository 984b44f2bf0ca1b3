package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/constant"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/dto"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// voicePrefix marks an answer line as a path to a recorded audio file.
const voicePrefix = "@"

type Options struct {
	BaseURL  string
	Question string
	Probes   int
	Language string
	SurveyID string
	Timeout  time.Duration
}

func main() {
	opt := &Options{
		BaseURL: "http://localhost:3000/api",
		Timeout: 60 * time.Second,
	}

	cmd := &cobra.Command{
		Use:   "interview",
		Short: "Answer a survey interview from the terminal",
		RunE: func(cmd *cobra.Command, arguments []string) error {
			if err := opt.Validate(); err != nil {
				return err
			}
			return opt.Run(os.Stdin, os.Stdout)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opt.BaseURL, "api", opt.BaseURL, "Base URL of the survey API")
	flags.StringVar(&opt.Question, "question", "", "Create a new survey with this question")
	flags.IntVar(&opt.Probes, "probes", constant.DefaultSurveyProbes, "Follow-up questions before the interview closes")
	flags.StringVar(&opt.Language, "language", constant.DefaultSurveyLanguage, "Survey language")
	flags.StringVar(&opt.SurveyID, "survey", "", "Resume an existing survey by id")
	flags.DurationVar(&opt.Timeout, "timeout", opt.Timeout, "HTTP timeout per request")

	if err := cmd.Execute(); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}

func (o *Options) Validate() error {
	if (o.Question == "") == (o.SurveyID == "") {
		return errors.New("specify exactly one of --question or --survey")
	}
	if o.SurveyID != "" {
		if _, err := uuid.Parse(o.SurveyID); err != nil {
			return fmt.Errorf("invalid --survey: %w", err)
		}
	}
	return nil
}

func (o *Options) Run(in io.Reader, out io.Writer) error {
	c := newClient(strings.TrimRight(o.BaseURL, "/"), o.Timeout)

	id, err := o.surveyID(c)
	if err != nil {
		return err
	}

	state, err := c.State(id)
	if err != nil {
		return err
	}

	color.New(color.FgCyan).Fprintf(out, "Survey %s (%d/%d probes)\n", id, state.CompletedProbes, state.Probes)
	for _, m := range state.Messages {
		printMessage(out, m)
	}

	scanner := bufio.NewScanner(in)
	for !state.Completed {
		color.New(color.FgYellow).Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var res *dto.TurnResponse
		if path, ok := strings.CutPrefix(line, voicePrefix); ok {
			res, err = c.VoiceTurn(id, strings.TrimSpace(path))
		} else {
			res, err = c.Turn(id, line)
		}

		var apiErr *apiError
		if errors.As(err, &apiErr) && apiErr.Code < 500 && apiErr.Code != 404 {
			// 409 and 422 are retryable from the respondent's side
			color.New(color.FgRed).Fprintln(out, apiErr.Message)
			continue
		}
		if err != nil {
			return err
		}

		if res.UserMessage.IsAudio {
			printMessage(out, res.UserMessage)
		}
		printMessage(out, res.AIMessage)
		state = &res.State
	}

	color.New(color.FgGreen).Fprintf(out, "Interview complete (%d probes).\n", state.CompletedProbes)
	return nil
}

func (o *Options) surveyID(c *client) (uuid.UUID, error) {
	if o.SurveyID != "" {
		return uuid.Parse(o.SurveyID)
	}
	return c.CreateSurvey(dto.CreateSurveyRequest{
		Question: o.Question,
		Probes:   o.Probes,
		Language: o.Language,
	})
}

func printMessage(out io.Writer, m dto.MessageResponse) {
	if m.Role == constant.MessageRoleAI {
		color.New(color.FgCyan).Fprintf(out, "AI:  %s\n", m.DisplayContent)
		return
	}
	label := "You: "
	if m.IsAudio {
		label = "You (voice): "
	}
	fmt.Fprintf(out, "%s%s\n", label, m.Content)
}
