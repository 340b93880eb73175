package projection

import (
	"strings"
	"time"

	"github.com/ymori/portfolio-server/internal/fields"
	"github.com/ymori/portfolio-server/internal/urlsafe"
)

// projectTimestampKeys are the timestamp sources considered for a project's
// last-modified date, on top of the storage-level update time. The github_*
// fields are written by the GitHub sync job.
var projectTimestampKeys = []string{
	"updated", "updated_at", "updatedAt",
	"github_pushed_at", "githubPushedAt",
	"github_updated_at", "githubUpdatedAt",
	"last_synced_at", "lastSyncedAt",
}

// Project projects one raw project document. storageUpdatedAt is the
// storage-level update time for the document; the zero value means unknown.
func Project(id string, record map[string]any, storageUpdatedAt time.Time) ProjectProjection {
	return ProjectProjection{
		ID:            id,
		Title:         biText(record, "title", "name"),
		Summary:       biText(record, "summary", "description"),
		LinkURL:       gatedURL(fields.Resolve(record, "url", "link", "site_url", "siteUrl")),
		RepoURL:       gatedURL(fields.Resolve(record, "repo", "repo_url", "repoUrl", "github")),
		CoverImageURL: coverImageURL(record),
		LastModified:  latestTimestamp(record, storageUpdatedAt, projectTimestampKeys...),
	}
}

// coverImageURL resolves the project's cover image. Only absolute http(s)
// URLs qualify; relative asset paths are left to the SPA and excluded here.
func coverImageURL(record map[string]any) string {
	raw := fields.ToScalar(fields.Resolve(record,
		"cover_image", "coverImage", "image", "image_url", "imageUrl", "thumbnail"))
	if !strings.Contains(raw, "://") {
		return ""
	}
	if url, ok := urlsafe.SafeURL(raw); ok {
		return url
	}
	return ""
}
