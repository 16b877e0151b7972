package create_booking

import "sync"

// inFlight реестр выполняющихся отправок по паре (сессия, врач)
type inFlight struct {
	mu      sync.Mutex
	pending map[string]struct{}
}

func newInFlight() *inFlight {
	return &inFlight{pending: make(map[string]struct{})}
}

// acquire возвращает false, если для пары уже идет отправка
func (g *inFlight) acquire(token, doctorID string) bool {
	key := token + "\x00" + doctorID

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.pending[key]; ok {
		return false
	}
	g.pending[key] = struct{}{}
	return true
}

func (g *inFlight) release(token, doctorID string) {
	g.mu.Lock()
	delete(g.pending, token+"\x00"+doctorID)
	g.mu.Unlock()
}
