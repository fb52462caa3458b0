package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/BuzzLyutic/taskboard-api/internal/model"
	"github.com/BuzzLyutic/taskboard-api/internal/repo"
)

var keyPrefixStrip = regexp.MustCompile(`[^A-Z0-9]`)

// ProjectService owns projects, their 1:1 markdown specs and the sequential
// key-code allocator.
type ProjectService struct {
	projects repo.ProjectRepository
	specs    repo.SpecRepository
}

func NewProjectService(projects repo.ProjectRepository, specs repo.SpecRepository) *ProjectService {
	return &ProjectService{projects: projects, specs: specs}
}

type CreateProjectInput struct {
	BoardID     string `json:"boardId"`
	Name        string `json:"name"`
	KeyPrefix   string `json:"keyPrefix"`
	Description string `json:"description"`
}

func (s *ProjectService) Create(ctx context.Context, in CreateProjectInput) (model.Project, error) {
	if in.BoardID == "" {
		return model.Project{}, fmt.Errorf("%w: boardId is required", ErrValidation)
	}
	if strings.TrimSpace(in.Name) == "" {
		return model.Project{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	prefix, err := normalizeKeyPrefix(in.KeyPrefix)
	if err != nil {
		return model.Project{}, err
	}

	return s.projects.Create(ctx, model.Project{
		BoardID:     in.BoardID,
		Name:        in.Name,
		KeyPrefix:   prefix,
		Description: in.Description,
	})
}

// AllocateKey issues the next key code for the project. The issued sequence
// number is the pre-increment counter value, zero-padded to width 3; numbers
// past 999 simply widen. The increment is one atomic statement, so two
// racing calls cannot mint the same code.
func (s *ProjectService) AllocateKey(ctx context.Context, projectID string) (string, error) {
	p, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return "", err
	}

	next, err := s.projects.IncrementSeq(ctx, projectID)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%03d", p.KeyPrefix, next-1), nil
}

type SaveBuilderInput struct {
	BoardID     string  `json:"boardId"`
	ProjectID   *string `json:"projectId"`
	Name        string  `json:"name"`
	KeyPrefix   string  `json:"keyPrefix"`
	Description string  `json:"description"`
	Markdown    string  `json:"markdown"`
	Mode        string  `json:"mode"` // draft | save
}

type BuilderResult struct {
	Project model.Project     `json:"project"`
	Spec    model.ProjectSpec `json:"spec"`
}

// SaveBuilder creates or updates a project keyed by (board, prefix) and
// upserts its markdown spec in one pass.
func (s *ProjectService) SaveBuilder(ctx context.Context, in SaveBuilderInput) (BuilderResult, error) {
	if in.BoardID == "" {
		return BuilderResult{}, fmt.Errorf("%w: boardId is required", ErrValidation)
	}
	if strings.TrimSpace(in.Name) == "" {
		return BuilderResult{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	prefix, err := normalizeKeyPrefix(in.KeyPrefix)
	if err != nil {
		return BuilderResult{}, err
	}

	status := model.SpecDraft
	switch in.Mode {
	case "", "draft":
	case "save":
		status = model.SpecSaved
	default:
		return BuilderResult{}, fmt.Errorf("%w: unknown mode %q", ErrValidation, in.Mode)
	}

	var project model.Project
	if in.ProjectID != nil {
		project, err = s.projects.Get(ctx, *in.ProjectID)
		if err != nil {
			return BuilderResult{}, err
		}
		project.Name = in.Name
		project.KeyPrefix = prefix
		project.Description = in.Description
		project, err = s.projects.Update(ctx, project)
	} else {
		project, err = s.projects.UpsertByKeyPrefix(ctx, model.Project{
			BoardID:     in.BoardID,
			Name:        in.Name,
			KeyPrefix:   prefix,
			Description: in.Description,
		})
	}
	if err != nil {
		return BuilderResult{}, err
	}

	spec, err := s.specs.Upsert(ctx, project.ID, in.Markdown, status)
	if err != nil {
		return BuilderResult{}, err
	}

	return BuilderResult{Project: project, Spec: spec}, nil
}

// normalizeKeyPrefix uppercases, strips everything outside A-Z0-9 and checks
// the 2-8 length bound on what remains.
func normalizeKeyPrefix(raw string) (string, error) {
	prefix := keyPrefixStrip.ReplaceAllString(strings.ToUpper(raw), "")
	if len(prefix) < 2 || len(prefix) > 8 {
		return "", fmt.Errorf("%w: keyPrefix must be 2-8 alphanumeric characters", ErrValidation)
	}
	return prefix, nil
}
