package keypad

import "sync"

// sessionLocks — мьютекс на каждую сессию: нажатия одной сессии идут строго по очереди,
// разные сессии не блокируют друг друга. Запись удаляется, когда её никто не держит.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*sessionLock)}
}

// lock захватывает мьютекс сессии и возвращает функцию освобождения.
func (l *sessionLocks) lock(id string) (unlock func()) {
	l.mu.Lock()
	sl, ok := l.locks[id]
	if !ok {
		sl = &sessionLock{}
		l.locks[id] = sl
	}
	sl.refs++
	l.mu.Unlock()

	sl.mu.Lock()
	return func() {
		sl.mu.Unlock()
		l.mu.Lock()
		sl.refs--
		if sl.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

// size — число сессий с активными или ожидающими нажатиями.
func (l *sessionLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
