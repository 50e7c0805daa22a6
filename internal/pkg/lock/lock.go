// Package lock provides per-channel locking for betting rounds.
//
// Locks are created lazily: the first bet in a channel materializes the
// channel's mutex in a shared registry. The registry itself is guarded by
// sync.Map's atomic LoadOrStore, so creating a lock never contends with
// holding one.
package lock

import "sync"

// ChannelLock is a registry of per-channel mutexes keyed by chat ID.
type ChannelLock struct {
	locks sync.Map // map[int64]*sync.Mutex
}

// NewChannelLock creates an empty lock registry.
func NewChannelLock() *ChannelLock {
	return &ChannelLock{}
}

// getLock retrieves or creates the mutex for a chat.
func (cl *ChannelLock) getLock(chatID int64) *sync.Mutex {
	if v, ok := cl.locks.Load(chatID); ok {
		return v.(*sync.Mutex)
	}
	v, _ := cl.locks.LoadOrStore(chatID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// Lock acquires the lock for a chat.
func (cl *ChannelLock) Lock(chatID int64) {
	cl.getLock(chatID).Lock()
}

// Unlock releases the lock for a chat.
func (cl *ChannelLock) Unlock(chatID int64) {
	if v, ok := cl.locks.Load(chatID); ok {
		v.(*sync.Mutex).Unlock()
	}
}

// TryLock attempts to acquire the lock without blocking.
func (cl *ChannelLock) TryLock(chatID int64) bool {
	return cl.getLock(chatID).TryLock()
}

// WithLock executes fn while holding the chat's lock.
func (cl *ChannelLock) WithLock(chatID int64, fn func() error) error {
	cl.Lock(chatID)
	defer cl.Unlock(chatID)
	return fn()
}
