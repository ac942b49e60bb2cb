package dashboard_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Abraxas-365/talentpool/pkg/errx"
	"github.com/Abraxas-365/talentpool/pkg/kernel"
	"github.com/Abraxas-365/talentpool/talentpool/dashboard"
	"github.com/Abraxas-365/talentpool/talentpool/introrequest"
)

type fakeShortlistClient struct {
	mu        sync.Mutex
	listed    []kernel.CandidateID
	addErr    error
	removeErr error
	addGate   chan struct{} // when set, Add blocks until closed
}

func (f *fakeShortlistClient) ListShortlist(ctx context.Context) ([]kernel.CandidateID, error) {
	return f.listed, nil
}

func (f *fakeShortlistClient) AddToShortlist(ctx context.Context, id kernel.CandidateID) error {
	if f.addGate != nil {
		<-f.addGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addErr
}

func (f *fakeShortlistClient) RemoveFromShortlist(ctx context.Context, id kernel.CandidateID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.removeErr
}

type fakeIntroClient struct {
	mu        sync.Mutex
	active    map[kernel.CandidateID]introrequest.Status
	submitErr error
	cancelErr error
}

func (f *fakeIntroClient) ListActiveIntros(ctx context.Context) (map[kernel.CandidateID]introrequest.Status, error) {
	return f.active, nil
}

func (f *fakeIntroClient) SubmitIntro(ctx context.Context, id kernel.CandidateID, message string) (introrequest.Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitErr != nil {
		return "", f.submitErr
	}
	return introrequest.StatusPending, nil
}

func (f *fakeIntroClient) CancelIntro(ctx context.Context, id kernel.CandidateID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cancelErr
}

// recorder counts renders and errors across goroutines.
type recorder struct {
	mu      sync.Mutex
	renders []dashboard.InteractionState
	errs    []error
}

func (r *recorder) render(s dashboard.InteractionState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renders = append(r.renders, s)
}

func (r *recorder) err(e error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, e)
}

func (r *recorder) renderCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.renders)
}

func (r *recorder) errCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.errs)
}

func newTestLedger(sl *fakeShortlistClient, ic *fakeIntroClient) (*dashboard.Ledger, *recorder) {
	rec := &recorder{}
	return dashboard.NewLedger(sl, ic, rec.render, rec.err), rec
}

func TestToggleShortlistOptimistic(t *testing.T) {
	ledger, rec := newTestLedger(&fakeShortlistClient{}, &fakeIntroClient{})

	ledger.ToggleShortlist(context.Background(), "cand-1")

	// The flip is visible before the confirmation completes.
	if !ledger.Snapshot().IsShortlisted("cand-1") {
		t.Fatal("star should be visible immediately")
	}

	ledger.Wait()
	if !ledger.Snapshot().IsShortlisted("cand-1") {
		t.Error("star should survive a successful confirmation")
	}
	if got := rec.renderCount(); got != 1 {
		t.Errorf("renders = %d, want 1 (no corrective render on success)", got)
	}
	if rec.errCount() != 0 {
		t.Errorf("errors = %d, want none", rec.errCount())
	}
}

func TestToggleShortlistRollsBackOnFailure(t *testing.T) {
	sl := &fakeShortlistClient{addErr: errors.New("backend down")}
	ledger, rec := newTestLedger(sl, &fakeIntroClient{})

	ledger.ToggleShortlist(context.Background(), "cand-1")
	ledger.Wait()

	if ledger.Snapshot().IsShortlisted("cand-1") {
		t.Error("failed add should roll the star back")
	}
	if got := rec.renderCount(); got != 2 {
		t.Errorf("renders = %d, want exactly 2 (optimistic + corrective)", got)
	}
	if rec.errCount() != 1 {
		t.Errorf("errors = %d, want 1", rec.errCount())
	}
}

func TestStaleShortlistConfirmationDiscarded(t *testing.T) {
	gate := make(chan struct{})
	sl := &fakeShortlistClient{addErr: errors.New("slow failure"), addGate: gate}
	ledger, rec := newTestLedger(sl, &fakeIntroClient{})

	// First toggle stars; its Add hangs on the gate.
	ledger.ToggleShortlist(context.Background(), "cand-1")
	// Second toggle unstars and confirms immediately.
	ledger.ToggleShortlist(context.Background(), "cand-1")
	// Now let the first confirmation fail. Its generation is stale, so the
	// rollback must be discarded instead of resurrecting the star.
	close(gate)
	ledger.Wait()

	if ledger.Snapshot().IsShortlisted("cand-1") {
		t.Error("stale failed confirmation must not overwrite the newer state")
	}
	if got := rec.renderCount(); got != 2 {
		t.Errorf("renders = %d, want 2 (two optimistic flips, no corrective)", got)
	}
	if rec.errCount() != 0 {
		t.Errorf("errors = %d, want none for a discarded confirmation", rec.errCount())
	}
}

func TestSubmitIntroDuplicateIsSynchronous(t *testing.T) {
	ic := &fakeIntroClient{active: map[kernel.CandidateID]introrequest.Status{
		"cand-1": introrequest.StatusPending,
	}}
	ledger, rec := newTestLedger(&fakeShortlistClient{}, ic)
	if err := ledger.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	before := rec.renderCount()

	err := ledger.SubmitIntro(context.Background(), "cand-1", "hello")
	if !errx.IsCode(err, introrequest.CodeAlreadyRequested) {
		t.Fatalf("err = %v, want already-requested conflict", err)
	}

	ledger.Wait()
	if got := rec.renderCount(); got != before {
		t.Errorf("renders = %d, want unchanged %d (no optimistic entry for a duplicate)", got, before)
	}
}

func TestSubmitIntroServerConflictKeepsPending(t *testing.T) {
	ic := &fakeIntroClient{submitErr: introrequest.ErrAlreadyRequested()}
	ledger, rec := newTestLedger(&fakeShortlistClient{}, ic)

	if err := ledger.SubmitIntro(context.Background(), "cand-1", ""); err != nil {
		t.Fatalf("SubmitIntro: %v", err)
	}
	ledger.Wait()

	// The server says an active request exists, so showing one is correct.
	if _, ok := ledger.Snapshot().IntroStatus("cand-1"); !ok {
		t.Error("conflict must keep the pending entry, not roll it back")
	}
	if got := rec.renderCount(); got != 1 {
		t.Errorf("renders = %d, want 1 (no corrective render)", got)
	}
	if rec.errCount() != 1 {
		t.Errorf("errors = %d, want the informational conflict reported once", rec.errCount())
	}
}

func TestSubmitIntroFailureRollsBack(t *testing.T) {
	ic := &fakeIntroClient{submitErr: errors.New("backend down")}
	ledger, rec := newTestLedger(&fakeShortlistClient{}, ic)

	if err := ledger.SubmitIntro(context.Background(), "cand-1", ""); err != nil {
		t.Fatalf("SubmitIntro: %v", err)
	}
	ledger.Wait()

	if _, ok := ledger.Snapshot().IntroStatus("cand-1"); ok {
		t.Error("failed submission should remove the optimistic entry")
	}
	if got := rec.renderCount(); got != 2 {
		t.Errorf("renders = %d, want 2 (optimistic + corrective)", got)
	}
	if rec.errCount() != 1 {
		t.Errorf("errors = %d, want 1", rec.errCount())
	}
}

func TestCancelIntroOnlyFromPending(t *testing.T) {
	ic := &fakeIntroClient{active: map[kernel.CandidateID]introrequest.Status{
		"cand-1": introrequest.StatusAccepted,
	}}
	ledger, _ := newTestLedger(&fakeShortlistClient{}, ic)
	if err := ledger.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := ledger.CancelIntro(context.Background(), "cand-1"); err == nil {
		t.Error("cancelling an accepted request should fail synchronously")
	}
	if err := ledger.CancelIntro(context.Background(), "cand-2"); err == nil {
		t.Error("cancelling a nonexistent request should fail synchronously")
	}
}

func TestCancelIntroRestoresOnFailure(t *testing.T) {
	ic := &fakeIntroClient{
		active:    map[kernel.CandidateID]introrequest.Status{"cand-1": introrequest.StatusPending},
		cancelErr: errors.New("backend down"),
	}
	ledger, rec := newTestLedger(&fakeShortlistClient{}, ic)
	if err := ledger.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := ledger.CancelIntro(context.Background(), "cand-1"); err != nil {
		t.Fatalf("CancelIntro: %v", err)
	}
	ledger.Wait()

	status, ok := ledger.Snapshot().IntroStatus("cand-1")
	if !ok || status != introrequest.StatusPending {
		t.Errorf("status = %v (%v), want restored PENDING", status, ok)
	}
	if rec.errCount() != 1 {
		t.Errorf("errors = %d, want 1", rec.errCount())
	}
}

func TestLoadPopulatesBothLists(t *testing.T) {
	sl := &fakeShortlistClient{listed: []kernel.CandidateID{"cand-1", "cand-2"}}
	ic := &fakeIntroClient{active: map[kernel.CandidateID]introrequest.Status{
		"cand-3": introrequest.StatusAccepted,
	}}
	ledger, _ := newTestLedger(sl, ic)

	if err := ledger.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	snap := ledger.Snapshot()
	if !snap.IsShortlisted("cand-1") || !snap.IsShortlisted("cand-2") {
		t.Error("shortlist not loaded")
	}
	if status, ok := snap.IntroStatus("cand-3"); !ok || status != introrequest.StatusAccepted {
		t.Errorf("intro status = %v (%v), want ACCEPTED", status, ok)
	}
}
