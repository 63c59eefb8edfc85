package main

import (
	"newsagent/internal/agent"
	"newsagent/internal/model"
	"time"

	"github.com/spf13/cobra"
)

func fetchCMD() *cobra.Command {
	var date string
	var topics []string

	var fetch = &cobra.Command{
		Use:   "fetch",
		Short: "Run the news pipeline once and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			svc, err := agent.FromConfig(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if topics == nil {
				topics = []string{}
			}

			result, err := svc.FetchNews(cmd.Context(), model.NewsQuery{Date: date, Topics: topics})
			if err != nil {
				return err
			}

			return printJSON(result)
		},
	}
	fetch.Flags().StringVar(&date, "date", time.Now().Format("2006-01-02"), "news date (YYYY-MM-DD)")
	fetch.Flags().StringArrayVar(&topics, "topic", nil, "topic to search for, repeatable")

	return fetch
}
