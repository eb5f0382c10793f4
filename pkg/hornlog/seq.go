package hornlog

import (
	"context"
	"sync"
)

// Seq is a lazy, potentially unbounded sequence of answer substitutions,
// with an error channel: pulling the next answer can terminate the
// sequence with an error instead of producing a value (spec.md §6, §7).
//
// Seq is built the way the teacher repo builds its Stream type — a
// goroutine feeding a channel, guarded by a context.Context — except that
// Seq is pull-based (Next) rather than push-based, and carries errors
// alongside values instead of requiring a second channel.
//
// Every boundary between two answers is a suspension point: Next blocks
// until the producer goroutine has the next answer ready, the caller's
// context is cancelled, or the sequence is exhausted. Dropping a Seq
// without draining it — calling Close — releases the producer goroutine
// without emitting any further answer.
type Seq struct {
	out     chan seqItem
	stop    chan struct{}
	closeMu sync.Once
}

type seqItem struct {
	sub Subst
	err error
}

// NewSeq builds a Seq whose answers are produced by produce, which is run
// on its own goroutine. produce calls emit for each answer in order; emit
// returns false if the consumer has stopped pulling (via Close, or by
// cancelling ctx), in which case produce should stop doing further work
// and return promptly. A non-nil error returned by produce terminates the
// sequence with that error after any answers already emitted.
//
// This is the primitive external-predicate hooks are expected to use to
// build their own Seq values (see Hook).
func NewSeq(ctx context.Context, produce func(ctx context.Context, emit func(Subst) bool) error) *Seq {
	s := &Seq{
		out:  make(chan seqItem),
		stop: make(chan struct{}),
	}
	go func() {
		defer close(s.out)
		emit := func(sub Subst) bool {
			select {
			case s.out <- seqItem{sub: sub}:
				return true
			case <-s.stop:
				return false
			case <-ctx.Done():
				return false
			}
		}
		if err := produce(ctx, emit); err != nil {
			select {
			case s.out <- seqItem{err: err}:
			case <-s.stop:
			case <-ctx.Done():
			}
		}
	}()
	return s
}

// Next blocks until the next answer is available, the sequence is
// exhausted, or ctx is done. ok is false with a nil error when the
// sequence is exhausted; a non-nil error means the sequence has
// terminated abnormally and no further answers will follow.
func (s *Seq) Next(ctx context.Context) (sub Subst, err error, ok bool) {
	select {
	case item, open := <-s.out:
		if !open {
			return Subst{}, nil, false
		}
		if item.err != nil {
			return Subst{}, item.err, false
		}
		return item.sub, nil, true
	case <-ctx.Done():
		return Subst{}, ctx.Err(), false
	}
}

// Close releases the producer goroutine, if it is still running. It is
// safe to call Close more than once, and safe to call it whether or not
// the sequence has been fully drained. No answer is emitted after Close
// returns.
func (s *Seq) Close() {
	s.closeMu.Do(func() {
		close(s.stop)
	})
}

// EmptySeq returns a Seq with no answers and no error — the default
// external-predicate hook's result, and the result of solve(goal, 0).
func EmptySeq() *Seq {
	s := &Seq{out: make(chan seqItem), stop: make(chan struct{})}
	close(s.out)
	return s
}

// SingleSeq returns a Seq with exactly one answer, sub.
func SingleSeq(sub Subst) *Seq {
	return NewSeq(context.Background(), func(_ context.Context, emit func(Subst) bool) error {
		emit(sub)
		return nil
	})
}

// Collect drains seq fully, returning every answer in order, or the first
// error encountered. It is mainly useful in tests and in hosts that know
// the answer sequence is finite.
func Collect(ctx context.Context, seq *Seq) ([]Subst, error) {
	defer seq.Close()
	var answers []Subst
	for {
		sub, err, ok := seq.Next(ctx)
		if err != nil {
			return answers, err
		}
		if !ok {
			return answers, nil
		}
		answers = append(answers, sub)
	}
}
