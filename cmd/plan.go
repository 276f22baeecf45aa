package main

import "fmt"

// scrapePlan is the resolved intent of one scrape invocation.
type scrapePlan struct {
	Login        string
	Targets      []string
	Followers    bool
	Followees    bool
	NotFollowers bool
	Count        int
}

// buildPlan maps CLI flags to a plan. Targets default to the login
// account itself.
func buildPlan(login string, targets []string, followers, followees, notFollowers bool, count int) (scrapePlan, error) {
	if !followers && !followees && !notFollowers {
		return scrapePlan{}, fmt.Errorf("nothing to scrape: pass --followers, --followees or --not-followers")
	}
	if count < 0 {
		return scrapePlan{}, fmt.Errorf("--count must not be negative, got %d", count)
	}
	if len(targets) == 0 {
		targets = []string{login}
	}
	return scrapePlan{
		Login:        login,
		Targets:      targets,
		Followers:    followers,
		Followees:    followees,
		NotFollowers: notFollowers,
		Count:        count,
	}, nil
}
