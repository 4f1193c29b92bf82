package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m-zajac/majorleaguegithub/internal/app"
	"github.com/sirupsen/logrus"
)

// KVStore provides simple kv data storage
type KVStore interface {
	ReadKey(key []byte) ([]byte, error)
	UpdateKey(key []byte, data []byte) error
	DeleteKey(key []byte) error
	// ForEach calls fn for every stored pair. Key and data are valid only until fn returns.
	ForEach(fn func(key []byte, data []byte) error) error
}

const (
	contributorsKeyPrefix = "co/"
	hiringKey             = "hi"

	updatesQueueSize = 1000

	defaultRetryBackoff = 30 * time.Second
)

// ClientWithStaleData wraps BackendClient and returns snapshots saved in db if possible.
//
// If snapshot is not available (or its ttl is exceeded), update is scheduled, and app.ScheduledForLaterError is returned with empty data.
// If snapshot is available, ttl is ok, but refreshTTL is exceeded, additional job for update is scheduled. Existing data is returned immediately.
// If snapshot is available and no ttl is exceeded, then data is returned immediately.
// If the last update of a missing snapshot failed, that error is returned instead of app.ScheduledForLaterError.
// Failed update is retried in background at most once per retryBackoff.
//
// Contributors and hiring are snapshotted, states and regions are passed to the wrapped client.
type ClientWithStaleData struct {
	client        app.BackendClient
	store         KVStore
	ttl           time.Duration
	refreshTTL    time.Duration
	updateTimeout time.Duration
	purgeInterval time.Duration
	retryBackoff  time.Duration
	l             logrus.FieldLogger

	failuresMu sync.Mutex
	failures   map[string]updateFailure

	updates chan updateRequest

	// Chan for controlling scheduler - only used for unit testing.
	schedulerPendingOps chan int

	stop func()
	wg   sync.WaitGroup
}

var _ app.BackendClient = &ClientWithStaleData{}

// NewClientWithStaleData creates new ClientWithStaleData instance.
func NewClientWithStaleData(
	client app.BackendClient,
	store KVStore,
	ttl time.Duration,
	refreshTTL time.Duration,
	l logrus.FieldLogger,
) (*ClientWithStaleData, error) {
	if refreshTTL > ttl {
		return nil, fmt.Errorf("refresh ttl (%s) can't be greater than ttl (%s)", refreshTTL, ttl)
	}

	return &ClientWithStaleData{
		client:        client,
		store:         store,
		ttl:           ttl,
		refreshTTL:    refreshTTL,
		updateTimeout: time.Minute,
		purgeInterval: ttl,
		retryBackoff:  defaultRetryBackoff,
		l:             l,
		failures:      make(map[string]updateFailure),
		updates:       make(chan updateRequest, updatesQueueSize),
	}, nil
}

// RunScheduler runs internal scheduling goroutine.
// Doesn't block.
func (c *ClientWithStaleData) RunScheduler() {
	ctx, cancel := context.WithCancel(context.Background())
	c.stop = cancel

	var purge <-chan time.Time
	if c.purgeInterval > 0 {
		ticker := time.NewTicker(c.purgeInterval)
		purge = ticker.C
		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			<-ctx.Done()
			ticker.Stop()
		}()
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		pending := make(map[string]bool)
		done := make(chan string)

		for {
			// This is intended for blocking scheduler for unit testing.
			// In standard execution this is always nil.
			if c.schedulerPendingOps != nil {
				select {
				case c.schedulerPendingOps <- len(pending):
				case <-ctx.Done():
					return
				}
			}

			select {
			case req := <-c.updates:
				if pending[req.key] {
					continue
				}
				pending[req.key] = true

				c.wg.Add(1)
				go func(req updateRequest) {
					defer c.wg.Done()

					c.l.Infof("ClientWithStaleData: scheduled update for %s...", req.key)
					err := c.update(ctx, req)
					if err != nil {
						c.l.Errorf("ClientWithStaleData scheduler: updating %s: %v", req.key, err)
					} else {
						c.l.Infof("ClientWithStaleData: scheduled update for %s done", req.key)
					}
					if ctx.Err() == nil {
						c.recordUpdate(req.key, err)
					}

					select {
					case done <- req.key:
					case <-ctx.Done():
					}
				}(req)
			case key := <-done:
				delete(pending, key)

			case <-purge:
				if n, err := c.PurgeExpired(); err != nil {
					c.l.Errorf("ClientWithStaleData scheduler: purging expired snapshots: %v", err)
				} else if n > 0 {
					c.l.Infof("ClientWithStaleData: purged %d expired snapshots", n)
				}

			// Finish
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Contributors returns ranked contributors matching the filter.
//
// Returns data from db if available.
func (c *ClientWithStaleData) Contributors(ctx context.Context, filter app.Filter) ([]app.Contributor, error) {
	req := updateRequest{
		key:    contributorsKeyPrefix + filter.Key(),
		kind:   contributorsSnapshot,
		filter: filter,
	}

	data, err := c.store.ReadKey([]byte(req.key))
	if err != nil {
		return nil, fmt.Errorf("reading contributors snapshot: %w", err)
	}
	if data != nil {
		var entry contributorsDBEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			return nil, fmt.Errorf("unserializing contributors snapshot: %w", err)
		}
		if c.usable(entry.Created, req) {
			return entry.Data, nil
		}
	}

	return nil, c.missing(req)
}

// Hiring returns hiring manager with job openings.
//
// Returns data from db if available.
func (c *ClientWithStaleData) Hiring(ctx context.Context) (*app.Hiring, error) {
	req := updateRequest{
		key:  hiringKey,
		kind: hiringSnapshot,
	}

	data, err := c.store.ReadKey([]byte(req.key))
	if err != nil {
		return nil, fmt.Errorf("reading hiring snapshot: %w", err)
	}
	if data != nil {
		var entry hiringDBEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			return nil, fmt.Errorf("unserializing hiring snapshot: %w", err)
		}
		if c.usable(entry.Created, req) {
			return entry.Data, nil
		}
	}

	return nil, c.missing(req)
}

// States returns all states directly from wrapped client.
func (c *ClientWithStaleData) States(ctx context.Context) ([]app.State, error) {
	return c.client.States(ctx)
}

// Regions returns all regions directly from wrapped client.
func (c *ClientWithStaleData) Regions(ctx context.Context) ([]app.Region, error) {
	return c.client.Regions(ctx)
}

// PurgeExpired deletes snapshots older than ttl. Returns number of deleted snapshots.
func (c *ClientWithStaleData) PurgeExpired() (int, error) {
	var expired [][]byte
	if err := c.store.ForEach(func(key []byte, data []byte) error {
		var header struct {
			Created int64
		}
		if err := json.Unmarshal(data, &header); err != nil || c.expired(header.Created) {
			expired = append(expired, append([]byte(nil), key...))
		}
		return nil
	}); err != nil {
		return 0, fmt.Errorf("iterating snapshots: %w", err)
	}

	for _, key := range expired {
		if err := c.store.DeleteKey(key); err != nil {
			return 0, fmt.Errorf("deleting snapshot %s: %w", key, err)
		}
	}

	return len(expired), nil
}

// Close stops scheduler and waits for running updates.
func (c *ClientWithStaleData) Close() {
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
	c.wg.Wait()
}

// usable tells if snapshot created at given time can be returned.
// Schedules background refresh for snapshots older than refreshTTL.
func (c *ClientWithStaleData) usable(created int64, req updateRequest) bool {
	if c.expired(created) {
		return false
	}
	if time.Unix(created, 0).Add(c.refreshTTL).Before(time.Now()) {
		select {
		case c.updates <- req:
		default:
			c.l.Warnf("ClientWithStaleData: no free slots left, skipping refresh of %s", req.key)
		}
	}

	return true
}

func (c *ClientWithStaleData) expired(created int64) bool {
	return !time.Unix(created, 0).Add(c.ttl).After(time.Now())
}

// missing handles a read that found no usable snapshot.
func (c *ClientWithStaleData) missing(req updateRequest) error {
	c.failuresMu.Lock()
	f, failed := c.failures[req.key]
	retry := failed && time.Since(f.at) >= c.retryBackoff
	if retry {
		f.at = time.Now()
		c.failures[req.key] = f
	}
	c.failuresMu.Unlock()

	if !failed {
		return c.schedule(req)
	}
	if retry {
		if err := c.schedule(req); !app.IsScheduledForLaterError(err) {
			return err
		}
	}

	return f.err
}

// recordUpdate remembers failed update for the key, successful update clears it.
func (c *ClientWithStaleData) recordUpdate(key string, err error) {
	c.failuresMu.Lock()
	defer c.failuresMu.Unlock()

	if err == nil {
		delete(c.failures, key)
		return
	}
	c.failures[key] = updateFailure{
		err: err,
		at:  time.Now(),
	}
}

func (c *ClientWithStaleData) schedule(req updateRequest) error {
	select {
	case c.updates <- req:
		return app.ScheduledForLaterError("scheduled")
	default:
		return errors.New("stale data scheduler: no free slots left")
	}
}

func (c *ClientWithStaleData) update(ctx context.Context, req updateRequest) error {
	ctx, cancel := context.WithTimeout(ctx, c.updateTimeout)
	defer cancel()

	var entry interface{}
	switch req.kind {
	case contributorsSnapshot:
		contributors, err := c.client.Contributors(ctx, req.filter)
		if err != nil {
			return fmt.Errorf("calling client.Contributors: %w", err)
		}
		entry = contributorsDBEntry{
			Created: time.Now().Unix(),
			Data:    contributors,
		}
	case hiringSnapshot:
		hiring, err := c.client.Hiring(ctx)
		if err != nil {
			return fmt.Errorf("calling client.Hiring: %w", err)
		}
		entry = hiringDBEntry{
			Created: time.Now().Unix(),
			Data:    hiring,
		}
	default:
		return fmt.Errorf("unknown snapshot kind %d", req.kind)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("serializing data for save: %w", err)
	}
	if err := c.store.UpdateKey([]byte(req.key), data); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	return nil
}

type snapshotKind int

const (
	contributorsSnapshot snapshotKind = iota + 1
	hiringSnapshot
)

type contributorsDBEntry struct {
	Created int64
	Data    []app.Contributor
}

type hiringDBEntry struct {
	Created int64
	Data    *app.Hiring
}

type updateFailure struct {
	err error
	at  time.Time
}

type updateRequest struct {
	key    string
	kind   snapshotKind
	filter app.Filter
}
