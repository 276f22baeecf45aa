package main

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net"
	"os"

	"github.com/spf13/cobra"

	"userscraper/config"
	"userscraper/internal/diff"
	"userscraper/internal/instagram"
	"userscraper/internal/sessionstore"
	redis_store "userscraper/internal/sessionstore/redis"
	"userscraper/internal/telemetry"
)

func scrapeCMD() *cobra.Command {
	var (
		password     string
		targets      []string
		followers    bool
		followees    bool
		notFollowers bool
		count        int
		outDir       string
		cfgPath      string
	)
	var scrape = &cobra.Command{
		Use:   "scrape <username>",
		Short: "Scrape followers/followees of one or more accounts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig(cfgPath)
			logger := log.New(os.Stdout, "[SCRAPE] ", log.LstdFlags)

			plan, err := buildPlan(args[0], targets, followers, followees, notFollowers, count)
			if err != nil {
				return err
			}

			metrics := telemetry.NewMetrics()
			if cfg.Telemetry.Enabled {
				opsLogger := log.New(os.Stdout, "[OPS] ", log.LstdFlags)
				go func() {
					if err := metrics.Serve(cfg.Telemetry.MetricsPort, opsLogger); err != nil {
						logger.Printf("metrics server: %v", err)
					}
				}()
			}

			client, err := instagram.New(instagram.Options{
				Timeout: cfg.General.RequestTimeout,
				Logger:  log.New(os.Stdout, "[LOGIN] ", log.LstdFlags),
				Metrics: metrics,
			})
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := ensureLogin(ctx, client, openStore(cfg), plan.Login, password, logger); err != nil {
				return err
			}
			for _, target := range plan.Targets {
				if err := scrapeTarget(ctx, client, plan, target, outDir, logger); err != nil {
					return err
				}
			}
			return nil
		},
	}
	scrape.Flags().StringVarP(&password, "password", "p", "", "login password (prompted when omitted)")
	scrape.Flags().StringSliceVarP(&targets, "target", "t", nil, "accounts to scrape (default: the login account)")
	scrape.Flags().BoolVarP(&followers, "followers", "r", false, "scrape the target's followers")
	scrape.Flags().BoolVarP(&followees, "followees", "e", false, "scrape the target's followees")
	scrape.Flags().BoolVarP(&notFollowers, "not-followers", "n", false, "scrape accounts not following the target back")
	scrape.Flags().IntVarP(&count, "count", "c", 0, "amount of items to scrape (0 = all)")
	scrape.Flags().StringVarP(&outDir, "out-dir", "o", ".", "directory for result lists")
	scrape.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default is .)")

	return scrape
}

func openStore(cfg *config.Config) sessionstore.Store {
	if cfg.Session.Store == "redis" {
		r := cfg.Session.Redis
		return redis_store.New(net.JoinHostPort(r.Host, r.Port), r.Password, r.DB, r.TTL)
	}
	return sessionstore.NewFileStore(cfg.Session.DataDir)
}

// ensureLogin reuses a persisted session when it is still live, otherwise
// runs the full login flow (prompting for the password and two-factor code
// as needed) and persists the fresh session.
func ensureLogin(ctx context.Context, client *instagram.Client, store sessionstore.Store, username, password string, logger *log.Logger) error {
	if blob, err := store.Load(username); err == nil {
		if err := client.LoadSession(bytes.NewReader(blob)); err != nil {
			logger.Printf("saved session unusable: %v", err)
		} else if ok, err := client.IsLoggedIn(ctx); err == nil && ok {
			logger.Printf("reusing saved session for %s", username)
			return nil
		} else {
			logger.Printf("saved session for %s is no longer live", username)
		}
	} else if !errors.Is(err, sessionstore.ErrNotFound) {
		logger.Printf("session store: %v", err)
	}

	if password == "" {
		var err error
		password, err = promptSecret("Password: ")
		if err != nil {
			return err
		}
	}
	challenge, err := client.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if challenge != nil {
		code, err := promptSecret("Two-factor code: ")
		if err != nil {
			return err
		}
		if err := client.VerifyTwoFactor(ctx, code); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err := client.SaveSession(&buf); err != nil {
		return err
	}
	if err := store.Save(username, buf.Bytes()); err != nil {
		logger.Printf("could not persist session: %v", err)
	}
	return nil
}

func scrapeTarget(ctx context.Context, client *instagram.Client, plan scrapePlan, target, outDir string, logger *log.Logger) error {
	profile, err := client.Profile(ctx, target)
	if err != nil {
		return err
	}
	logger.Printf("%s: %d followers, %d followees, %d posts", target, profile.FollowersCount, profile.FolloweesCount, profile.PostCount)

	var followersSet, followeesSet *diff.Set
	if plan.Followers || plan.NotFollowers {
		followersSet, err = diff.Collect(ctx, client.Followers(profile.ID, plan.Count))
		if err != nil {
			return err
		}
	}
	if plan.Followees || plan.NotFollowers {
		followeesSet, err = diff.Collect(ctx, client.Followees(profile.ID, plan.Count))
		if err != nil {
			return err
		}
	}

	if plan.Followers {
		path, err := writeList(outDir, target+"-followers.txt", followersSet.Nodes())
		if err != nil {
			return err
		}
		logger.Printf("wrote %d followers to %s", followersSet.Len(), path)
	}
	if plan.Followees {
		path, err := writeList(outDir, target+"-followees.txt", followeesSet.Nodes())
		if err != nil {
			return err
		}
		logger.Printf("wrote %d followees to %s", followeesSet.Len(), path)
	}
	if plan.NotFollowers {
		notBack := diff.NotFollowingBack(followersSet, followeesSet)
		path, err := writeList(outDir, target+"-not-followers.txt", notBack)
		if err != nil {
			return err
		}
		logger.Printf("wrote %d accounts not following %s back to %s", len(notBack), target, path)
	}
	return nil
}
