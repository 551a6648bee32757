package util

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dixieflatline76/RandomBG/config"
	"github.com/google/go-github/v63/github"
	"golang.org/x/mod/semver"
)

const (
	githubOwner = "dixieflatline76"
	githubRepo  = "RandomBG"

	updateCheckTimeout = 15 * time.Second
)

// Release describes a newer published version, or the current one when no
// update exists.
type Release struct {
	UpdateAvailable bool
	CurrentVersion  string
	LatestVersion   string
	ReleaseURL      string
	ReleaseNotes    string
}

// CheckForUpdates asks GitHub for the latest published release and compares
// it against the running config.AppVersion.
func CheckForUpdates(ctx context.Context) (*Release, error) {
	ctx, cancel := context.WithTimeout(ctx, updateCheckTimeout)
	defer cancel()

	latest, _, err := github.NewClient(nil).Repositories.GetLatestRelease(ctx, githubOwner, githubRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest GitHub release: %w", err)
	}

	current := normalizeVersion(config.AppVersion)
	tag := normalizeVersion(latest.GetTagName())

	return &Release{
		UpdateAvailable: semver.Compare(tag, current) > 0,
		CurrentVersion:  current,
		LatestVersion:   tag,
		ReleaseURL:      latest.GetHTMLURL(),
		ReleaseNotes:    latest.GetBody(),
	}, nil
}

// normalizeVersion adds the "v" prefix semver.Compare expects.
func normalizeVersion(v string) string {
	if strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}
