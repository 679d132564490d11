package trigger

// StampHook получает каждую новую отметку срабатывания, например для сохранения снимка
type StampHook func(placeID string, firedAtMs int64)

// CooldownTracker хранит время последнего срабатывания каждого места.
// Не потокобезопасен: владеет им один обработчик позиций.
type CooldownTracker struct {
	lastFired map[string]int64
	onStamp   StampHook
}

// NewCooldownTracker создает трекер из снимка прошлой сессии (может быть nil)
func NewCooldownTracker(snapshot map[string]int64, onStamp StampHook) *CooldownTracker {
	lastFired := make(map[string]int64, len(snapshot))
	for id, ts := range snapshot {
		lastFired[id] = ts
	}
	return &CooldownTracker{
		lastFired: lastFired,
		onStamp:   onStamp,
	}
}

// IsCooled сообщает, может ли место сработать снова.
// Нулевой период означает отсутствие подавления.
func (t *CooldownTracker) IsCooled(placeID string, nowMs, cooldownMs int64) bool {
	if cooldownMs <= 0 {
		return true
	}
	last, ok := t.lastFired[placeID]
	if !ok {
		return true
	}
	return nowMs-last > cooldownMs
}

// Stamp записывает время срабатывания, перезаписывая предыдущее
func (t *CooldownTracker) Stamp(placeID string, nowMs int64) {
	t.lastFired[placeID] = nowMs
	if t.onStamp != nil {
		t.onStamp(placeID, nowMs)
	}
}

// LastFired время последнего срабатывания места
func (t *CooldownTracker) LastFired(placeID string) (int64, bool) {
	ts, ok := t.lastFired[placeID]
	return ts, ok
}

// Snapshot копия состояния для сохранения
func (t *CooldownTracker) Snapshot() map[string]int64 {
	snapshot := make(map[string]int64, len(t.lastFired))
	for id, ts := range t.lastFired {
		snapshot[id] = ts
	}
	return snapshot
}
