package dashboard

import (
	"context"
	"sync"

	"github.com/Abraxas-365/talentpool/pkg/errx"
	"github.com/Abraxas-365/talentpool/pkg/kernel"
	"github.com/Abraxas-365/talentpool/pkg/logx"
	"github.com/Abraxas-365/talentpool/talentpool/introrequest"
	"github.com/Abraxas-365/talentpool/talentpool/shortlist"
)

// Ledger tracks the company's per-candidate interactions (shortlist stars and
// intro requests) and keeps them in sync with the backend optimistically: the
// local state flips first and renders immediately, the server call confirms in
// the background, and a failure rolls the flip back with exactly one
// corrective render.
//
// Per-candidate generation counters resolve races between overlapping
// confirmations: a completion whose generation no longer matches the latest
// local write for that candidate is discarded, so a slow response can never
// overwrite a newer toggle.
type Ledger struct {
	shortlists ShortlistClient
	intros     IntroRequestClient

	// onRender receives a fresh snapshot after every visible state change.
	// onError receives failures from background confirmations; both may be nil.
	onRender func(InteractionState)
	onError  func(error)

	mu       sync.Mutex
	state    InteractionState
	shortGen map[kernel.CandidateID]uint64
	introGen map[kernel.CandidateID]uint64

	wg sync.WaitGroup
}

// NewLedger creates an empty ledger. Callbacks may be nil.
func NewLedger(shortlists ShortlistClient, intros IntroRequestClient, onRender func(InteractionState), onError func(error)) *Ledger {
	return &Ledger{
		shortlists: shortlists,
		intros:     intros,
		onRender:   onRender,
		onError:    onError,
		state:      NewInteractionState(),
		shortGen:   map[kernel.CandidateID]uint64{},
		introGen:   map[kernel.CandidateID]uint64{},
	}
}

// Load fetches both interaction lists from the backend and replaces the local
// state. Called once after sign-in, before the first render.
func (l *Ledger) Load(ctx context.Context) error {
	shortlisted, err := l.shortlists.ListShortlist(ctx)
	if err != nil {
		return err
	}
	intros, err := l.intros.ListActiveIntros(ctx)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.state = NewInteractionState()
	for _, id := range shortlisted {
		l.state.Shortlist[id] = true
	}
	for id, status := range intros {
		l.state.Intros[id] = status
	}
	snapshot := l.snapshotLocked()
	l.mu.Unlock()

	l.render(snapshot)
	return nil
}

// Reset drops all local state, for sign-out.
func (l *Ledger) Reset() {
	l.mu.Lock()
	l.state = NewInteractionState()
	l.shortGen = map[kernel.CandidateID]uint64{}
	l.introGen = map[kernel.CandidateID]uint64{}
	snapshot := l.snapshotLocked()
	l.mu.Unlock()

	l.render(snapshot)
}

// Snapshot returns a copy of the current interaction state.
func (l *Ledger) Snapshot() InteractionState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

// Wait blocks until all background confirmations have completed.
func (l *Ledger) Wait() {
	l.wg.Wait()
}

// ToggleShortlist flips the star for a candidate. The flip renders
// immediately; the matching server call runs in the background. On failure the
// flip is rolled back with one corrective render and the error is reported.
func (l *Ledger) ToggleShortlist(ctx context.Context, id kernel.CandidateID) {
	l.mu.Lock()
	desired := !l.state.Shortlist[id]
	if desired {
		l.state.Shortlist[id] = true
	} else {
		delete(l.state.Shortlist, id)
	}
	l.shortGen[id]++
	gen := l.shortGen[id]
	snapshot := l.snapshotLocked()
	l.mu.Unlock()

	l.render(snapshot)

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()

		var err error
		if desired {
			err = l.shortlists.AddToShortlist(ctx, id)
		} else {
			err = l.shortlists.RemoveFromShortlist(ctx, id)
			// Removing an entry the server never had means the desired
			// state already holds.
			if errx.IsCode(err, shortlist.CodeEntryNotFound) {
				err = nil
			}
		}
		if err == nil {
			return
		}

		l.mu.Lock()
		if l.shortGen[id] != gen {
			// A newer toggle superseded this one; its confirmation will
			// settle the state.
			l.mu.Unlock()
			logx.Debugf("discarding stale shortlist confirmation for %s", id)
			return
		}
		if desired {
			delete(l.state.Shortlist, id)
		} else {
			l.state.Shortlist[id] = true
		}
		rollback := l.snapshotLocked()
		l.mu.Unlock()

		l.render(rollback)
		l.report(err)
	}()
}

// SubmitIntro records a pending intro request for the candidate and confirms
// it in the background. A candidate that already has an active request never
// produces a second one: the duplicate is reported synchronously. If the
// server itself answers "already requested", the pending entry stays — the
// conflict means an active request exists there, so showing one is correct —
// and the error is surfaced as information rather than rolled back.
func (l *Ledger) SubmitIntro(ctx context.Context, id kernel.CandidateID, message string) error {
	l.mu.Lock()
	if status, exists := l.state.Intros[id]; exists {
		l.mu.Unlock()
		return introrequest.ErrAlreadyRequested().WithDetail("existing_status", status)
	}
	l.state.Intros[id] = introrequest.StatusPending
	l.introGen[id]++
	gen := l.introGen[id]
	snapshot := l.snapshotLocked()
	l.mu.Unlock()

	l.render(snapshot)

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()

		status, err := l.intros.SubmitIntro(ctx, id, message)

		l.mu.Lock()
		if l.introGen[id] != gen {
			l.mu.Unlock()
			logx.Debugf("discarding stale intro confirmation for %s", id)
			return
		}

		switch {
		case err == nil:
			if status == "" || status == l.state.Intros[id] {
				l.mu.Unlock()
				return
			}
			l.state.Intros[id] = status
		case errx.IsCode(err, introrequest.CodeAlreadyRequested):
			l.mu.Unlock()
			l.report(err)
			return
		default:
			delete(l.state.Intros, id)
		}
		corrective := l.snapshotLocked()
		l.mu.Unlock()

		l.render(corrective)
		if err != nil {
			l.report(err)
		}
	}()
	return nil
}

// CancelIntro withdraws a pending intro request. Only pending requests can be
// cancelled; anything else is rejected synchronously. The entry disappears
// immediately and is restored if the server refuses.
func (l *Ledger) CancelIntro(ctx context.Context, id kernel.CandidateID) error {
	l.mu.Lock()
	status, exists := l.state.Intros[id]
	if !exists || status != introrequest.StatusPending {
		l.mu.Unlock()
		return introrequest.ErrNotPending().WithDetail("status", status)
	}
	delete(l.state.Intros, id)
	l.introGen[id]++
	gen := l.introGen[id]
	snapshot := l.snapshotLocked()
	l.mu.Unlock()

	l.render(snapshot)

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()

		err := l.intros.CancelIntro(ctx, id)
		// An entry the server no longer has is as cancelled as it gets.
		if errx.IsCode(err, introrequest.CodeRequestNotFound) {
			err = nil
		}
		if err == nil {
			return
		}

		l.mu.Lock()
		if l.introGen[id] != gen {
			l.mu.Unlock()
			logx.Debugf("discarding stale cancel confirmation for %s", id)
			return
		}
		l.state.Intros[id] = introrequest.StatusPending
		rollback := l.snapshotLocked()
		l.mu.Unlock()

		l.render(rollback)
		l.report(err)
	}()
	return nil
}

func (l *Ledger) snapshotLocked() InteractionState {
	out := NewInteractionState()
	for id, v := range l.state.Shortlist {
		out.Shortlist[id] = v
	}
	for id, s := range l.state.Intros {
		out.Intros[id] = s
	}
	return out
}

func (l *Ledger) render(s InteractionState) {
	if l.onRender != nil {
		l.onRender(s)
	}
}

func (l *Ledger) report(err error) {
	if l.onError != nil {
		l.onError(err)
	}
}
