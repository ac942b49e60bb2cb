package candidatesrv_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Abraxas-365/talentpool/pkg/errx"
	"github.com/Abraxas-365/talentpool/pkg/kernel"
	"github.com/Abraxas-365/talentpool/talentpool/candidate"
	"github.com/Abraxas-365/talentpool/talentpool/candidate/candidatesrv"
)

type fakeRepo struct {
	pool    []candidate.Candidate
	listErr error
	calls   int
}

func (f *fakeRepo) List(ctx context.Context) ([]candidate.Candidate, error) {
	f.calls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.pool, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	for i := range f.pool {
		if f.pool[i].ID == id {
			return &f.pool[i], nil
		}
	}
	return nil, candidate.ErrCandidateNotFound()
}

func (f *fakeRepo) Exists(ctx context.Context, id kernel.CandidateID) (bool, error) {
	for i := range f.pool {
		if f.pool[i].ID == id {
			return true, nil
		}
	}
	return false, nil
}

type fakeCache struct {
	cached []candidate.Candidate
	hit    bool
	getErr error
	setErr error
	sets   int
}

func (f *fakeCache) GetList(ctx context.Context) ([]candidate.Candidate, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	return f.cached, f.hit, nil
}

func (f *fakeCache) SetList(ctx context.Context, candidates []candidate.Candidate, ttl time.Duration) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.cached = candidates
	f.hit = true
	return nil
}

func (f *fakeCache) Invalidate(ctx context.Context) error {
	f.cached = nil
	f.hit = false
	return nil
}

func pool() []candidate.Candidate {
	return []candidate.Candidate{{ID: "cand-1", Role: "Engineer"}}
}

func TestListCandidatesPopulatesCache(t *testing.T) {
	repo := &fakeRepo{pool: pool()}
	cache := &fakeCache{}
	svc := candidatesrv.NewCandidateService(repo, cache)

	got, err := svc.ListCandidates(context.Background())
	if err != nil {
		t.Fatalf("ListCandidates: %v", err)
	}
	if len(got.Candidates) != 1 || cache.sets != 1 {
		t.Errorf("got %d candidates, cache sets = %d; want 1 and 1", len(got.Candidates), cache.sets)
	}

	// Second call is served from the cache.
	if _, err := svc.ListCandidates(context.Background()); err != nil {
		t.Fatalf("ListCandidates: %v", err)
	}
	if repo.calls != 1 {
		t.Errorf("repo calls = %d, want 1", repo.calls)
	}
}

func TestListCandidatesCacheFailureFallsThrough(t *testing.T) {
	repo := &fakeRepo{pool: pool()}
	cache := &fakeCache{getErr: errors.New("redis down")}
	svc := candidatesrv.NewCandidateService(repo, cache)

	got, err := svc.ListCandidates(context.Background())
	if err != nil {
		t.Fatalf("a cache failure must not fail the listing: %v", err)
	}
	if len(got.Candidates) != 1 {
		t.Errorf("got %d candidates, want 1 from the database", len(got.Candidates))
	}
}

func TestListCandidatesDatabaseFailure(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("connection refused")}
	svc := candidatesrv.NewCandidateService(repo, &fakeCache{})

	_, err := svc.ListCandidates(context.Background())
	if !errx.IsType(err, errx.TypeUnavailable) {
		t.Errorf("err = %v, want unavailable", err)
	}
}

func TestGetCandidateByID(t *testing.T) {
	svc := candidatesrv.NewCandidateService(&fakeRepo{pool: pool()}, &fakeCache{})

	got, err := svc.GetCandidateByID(context.Background(), "cand-1")
	if err != nil {
		t.Fatalf("GetCandidateByID: %v", err)
	}
	if got.Role != "Engineer" {
		t.Errorf("Role = %q, want Engineer", got.Role)
	}

	if _, err := svc.GetCandidateByID(context.Background(), "cand-404"); !errx.IsType(err, errx.TypeNotFound) {
		t.Errorf("err = %v, want not-found", err)
	}
}
