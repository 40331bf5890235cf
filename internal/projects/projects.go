// Package projects finds the project keys offered in the project menu.
//
// Sources are tried in order and the first one that yields at least one
// project wins. Failures are never fatal; they only move on to the next
// source, and the static list at the end always answers.
package projects

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/duailibe/jcli-create/internal/jira"
)

const (
	StaticName = "static"

	DefaultMaxIssues = 10
	ConnectorTimeout = 10 * time.Second
)

// Provider is one source of project menu entries.
type Provider interface {
	Name() string
	Projects(ctx context.Context) ([]string, error)
}

// Chain asks each provider in turn.
type Chain struct {
	Providers []Provider
	Logger    *slog.Logger
}

// Resolve returns the first non-empty result and the name of the provider
// that produced it. It returns no projects only if every provider came up
// empty.
func (c Chain) Resolve(ctx context.Context) ([]string, string) {
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	for _, provider := range c.Providers {
		list, err := provider.Projects(ctx)
		if err != nil {
			logger.Debug("project provider failed", "provider", provider.Name(), "error", err)
			continue
		}
		if len(list) == 0 {
			logger.Debug("project provider returned nothing", "provider", provider.Name())
			continue
		}
		logger.Debug("projects resolved", "provider", provider.Name(), "count", len(list))
		return list, provider.Name()
	}
	return nil, ""
}

// IssueLister is the part of the jcli client the issue-list source needs.
type IssueLister interface {
	ListIssues(ctx context.Context, maxIssues int) ([]byte, error)
}

// IssueListProvider collects the projects of a small page of issues listed
// by jcli, since jcli has no project listing of its own.
type IssueListProvider struct {
	Lister    IssueLister
	MaxIssues int
}

func (p IssueListProvider) Name() string { return "jcli-issues" }

func (p IssueListProvider) Projects(ctx context.Context) ([]string, error) {
	limit := p.MaxIssues
	if limit <= 0 {
		limit = DefaultMaxIssues
	}
	data, err := p.Lister.ListIssues(ctx, limit)
	if err != nil {
		return nil, err
	}
	return ParseIssueProjects(data)
}

type issueList struct {
	Issues []struct {
		Fields struct {
			Project *struct {
				Key  string `json:"key"`
				Name string `json:"name"`
			} `json:"project"`
		} `json:"fields"`
	} `json:"issues"`
}

// ParseIssueProjects extracts sorted unique "KEY - Name" (or "KEY") entries
// from jcli's JSON issue listing.
func ParseIssueProjects(data []byte) ([]string, error) {
	var list issueList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode issue list: %w", err)
	}

	seen := map[string]struct{}{}
	for _, issue := range list.Issues {
		project := issue.Fields.Project
		if project == nil || project.Key == "" {
			continue
		}
		label := project.Key
		if project.Name != "" {
			label = project.Key + " - " + project.Name
		}
		seen[label] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for label := range seen {
		out = append(out, label)
	}
	sort.Strings(out)
	return out, nil
}

// ConnectorProvider bypasses jcli and asks the JIRA REST API directly,
// using jcli's own connection settings.
type ConnectorProvider struct {
	ConfigPath string
	NewClient  func(cfg jira.Config, timeout time.Duration) jira.API
}

func (p ConnectorProvider) Name() string { return "jira-connector" }

func (p ConnectorProvider) Projects(ctx context.Context) ([]string, error) {
	if p.ConfigPath == "" {
		return nil, errors.New("no jira config path")
	}
	cfg, err := jira.LoadConfig(p.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	newClient := p.NewClient
	if newClient == nil {
		newClient = func(cfg jira.Config, timeout time.Duration) jira.API {
			return jira.NewClient(cfg, timeout)
		}
	}
	client := newClient(cfg, ConnectorTimeout)

	ctx, cancel := context.WithTimeout(ctx, ConnectorTimeout)
	defer cancel()

	if _, err := client.Myself(ctx); err != nil {
		return nil, fmt.Errorf("jira login: %w", err)
	}
	list, err := client.Projects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	out := make([]string, 0, len(list))
	for _, project := range list {
		if project.Key == "" {
			continue
		}
		out = append(out, project.Label())
	}
	return out, nil
}

// StaticProvider always answers with a fixed list.
type StaticProvider struct {
	List []string
}

// DefaultStatic is the list offered when nothing else could be reached.
func DefaultStatic() StaticProvider {
	return StaticProvider{List: []string{"NSTL", "OTHER"}}
}

func (p StaticProvider) Name() string { return StaticName }

func (p StaticProvider) Projects(context.Context) ([]string, error) {
	return append([]string(nil), p.List...), nil
}
