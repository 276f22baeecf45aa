package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"userscraper/config"
	"userscraper/internal/instagram"
)

func profileCMD() *cobra.Command {
	var (
		loginUser string
		password  string
		cfgPath   string
	)
	var profile = &cobra.Command{
		Use:   "profile <username>",
		Short: "Show an account's profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig(cfgPath)
			logger := log.New(os.Stdout, "[LOGIN] ", log.LstdFlags)

			client, err := instagram.New(instagram.Options{
				Timeout: cfg.General.RequestTimeout,
				Logger:  logger,
			})
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if loginUser != "" {
				if err := ensureLogin(ctx, client, openStore(cfg), loginUser, password, logger); err != nil {
					return err
				}
			}

			p, err := client.Profile(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s)\n", p.Username, p.FullName)
			if p.Biography != "" {
				fmt.Println(p.Biography)
			}
			fmt.Printf("id:        %s\n", p.ID)
			fmt.Printf("followers: %d\n", p.FollowersCount)
			fmt.Printf("followees: %d\n", p.FolloweesCount)
			fmt.Printf("posts:     %d\n", p.PostCount)
			fmt.Printf("private:   %v  verified: %v  business: %v\n", p.IsPrivate, p.IsVerified, p.IsBusinessAccount)
			if p.ExternalURL != "" {
				fmt.Printf("url:       %s\n", p.ExternalURL)
			}
			return nil
		},
	}
	profile.Flags().StringVarP(&loginUser, "user", "u", "", "log in as this account before the lookup")
	profile.Flags().StringVarP(&password, "password", "p", "", "login password (prompted when omitted)")
	profile.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default is .)")

	return profile
}
