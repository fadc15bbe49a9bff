package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/talentbase/recruiting-api/internal/core/domain"
	"github.com/talentbase/recruiting-api/internal/core/ports"
)

type stubJobRepo struct {
	created   *domain.Job
	lastPatch ports.UpdateJobPatch
	stored    *domain.Job
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	clone := *job
	clone.ID = 1
	r.created = &clone
	return &clone, nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id int64) (*domain.Job, error) {
	if r.stored == nil || r.stored.ID != id {
		return nil, domain.ErrJobNotFound
	}
	clone := *r.stored
	return &clone, nil
}

func (r *stubJobRepo) List(_ context.Context) ([]domain.Job, error) {
	if r.stored == nil {
		return []domain.Job{}, nil
	}
	return []domain.Job{*r.stored}, nil
}

func (r *stubJobRepo) Update(_ context.Context, id int64, patch ports.UpdateJobPatch) (*domain.Job, error) {
	if r.stored == nil || r.stored.ID != id {
		return nil, domain.ErrJobNotFound
	}
	r.lastPatch = patch
	clone := *r.stored
	return &clone, nil
}

func (r *stubJobRepo) Delete(_ context.Context, id int64) error {
	if r.stored == nil || r.stored.ID != id {
		return domain.ErrJobNotFound
	}
	r.stored = nil
	return nil
}

func TestJobService_Create_Defaults(t *testing.T) {
	repo := &stubJobRepo{}
	svc := NewJobService(repo)

	job, err := svc.Create(context.Background(), ports.CreateJobInput{
		Title:      "Backend Engineer",
		Department: "Engineering",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if job.Status != "Open" {
		t.Fatalf("expected default status Open, got %q", job.Status)
	}
	if job.CreatedBy != "Admin" {
		t.Fatalf("expected default created_by Admin, got %q", job.CreatedBy)
	}
	if len(job.Requirements) != 0 {
		t.Fatalf("expected empty requirements, got %v", job.Requirements)
	}
}

func TestJobService_Create_RequirementsNormalization(t *testing.T) {
	repo := &stubJobRepo{}
	svc := NewJobService(repo)

	tests := []struct {
		name string
		in   any
		want []string
	}{
		{"comma string", "Go, SQL ,Docker", []string{"Go", "SQL", "Docker"}},
		{"list", []any{"Go", " SQL "}, []string{"Go", "SQL"}},
		{"garbage", 12.5, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job, err := svc.Create(context.Background(), ports.CreateJobInput{
				Title: "T", Department: "D", Requirements: tt.in,
			})
			if err != nil {
				t.Fatalf("Create returned error: %v", err)
			}
			if !reflect.DeepEqual(job.Requirements, tt.want) {
				t.Fatalf("requirements = %v, want %v", job.Requirements, tt.want)
			}
		})
	}
}

func TestJobService_Create_Validation(t *testing.T) {
	svc := NewJobService(&stubJobRepo{})

	var ve *domain.ValidationError
	if _, err := svc.Create(context.Background(), ports.CreateJobInput{Department: "D"}); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for missing title, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateJobInput{Title: "T"}); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for missing department, got %v", err)
	}
}

func TestJobService_Update_PartialPatch(t *testing.T) {
	repo := &stubJobRepo{stored: &domain.Job{ID: 7, Title: "Old", Department: "Eng", Status: "Open"}}
	svc := NewJobService(repo)

	title := "New Title"
	if _, err := svc.Update(context.Background(), 7, ports.UpdateJobInput{Title: &title}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	patch := repo.lastPatch
	if patch.Title == nil || *patch.Title != "New Title" {
		t.Fatalf("expected title in patch, got %+v", patch.Title)
	}
	// Absent fields must stay nil so stored values are kept.
	if patch.Department != nil || patch.Description != nil || patch.Status != nil ||
		patch.Requirements != nil || patch.ClientID != nil {
		t.Fatalf("expected absent fields to be nil, got %+v", patch)
	}
}

func TestJobService_Update_ExplicitFalsyValues(t *testing.T) {
	repo := &stubJobRepo{stored: &domain.Job{ID: 7, Title: "Old", Status: "Open"}}
	svc := NewJobService(repo)

	empty := ""
	if _, err := svc.Update(context.Background(), 7, ports.UpdateJobInput{
		Description:  &empty,
		Requirements: []any{},
	}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	patch := repo.lastPatch
	if patch.Description == nil || *patch.Description != "" {
		t.Fatalf("explicitly empty description must be written, got %+v", patch.Description)
	}
	if patch.Requirements == nil || len(*patch.Requirements) != 0 {
		t.Fatalf("explicitly empty requirements must be written, got %+v", patch.Requirements)
	}
}

func TestJobService_Update_RequirementsCommaString(t *testing.T) {
	repo := &stubJobRepo{stored: &domain.Job{ID: 3, Title: "T"}}
	svc := NewJobService(repo)

	if _, err := svc.Update(context.Background(), 3, ports.UpdateJobInput{
		Requirements: "Kubernetes, Terraform",
	}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	want := []string{"Kubernetes", "Terraform"}
	if repo.lastPatch.Requirements == nil || !reflect.DeepEqual(*repo.lastPatch.Requirements, want) {
		t.Fatalf("requirements patch = %v, want %v", repo.lastPatch.Requirements, want)
	}
}

func TestJobService_Update_NotFound(t *testing.T) {
	svc := NewJobService(&stubJobRepo{})

	if _, err := svc.Update(context.Background(), 99, ports.UpdateJobInput{}); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}
